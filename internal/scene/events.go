package scene

// EventType identifies a pointer event.
type EventType int

const (
	PointerOver EventType = iota
	PointerDown
)

// Button identifies the pointer button of a PointerDown event.
type Button int

const (
	ButtonPrimary Button = iota
	ButtonAuxiliary
	ButtonSecondary
)

// PointerEvent is delivered to handlers subscribed with Node.On.
type PointerEvent struct {
	Type   EventType
	X, Y   float64
	Button Button
	Target *Node
}

// Handler receives pointer events.
type Handler func(PointerEvent)
