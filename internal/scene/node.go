package scene

// Kind identifies what a node draws.
type Kind int

const (
	KindContainer Kind = iota
	KindGraphics
	KindText
)

// String makes Kind satisfy the fmt.Stringer interface.
func (k Kind) String() string {
	switch k {
	case KindContainer:
		return "Container"
	case KindGraphics:
		return "Graphics"
	case KindText:
		return "Text"
	default:
		return "Unknown"
	}
}

// Color is a packed 0xRRGGBB value.
type Color uint32

// RGB unpacks the colour into its channels.
func (c Color) RGB() (r, g, b uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// Node is an element of the retained scene tree. Containers group children,
// graphics nodes are filled rectangles and text nodes carry a measured label.
type Node struct {
	Kind        Kind
	Label       string
	Bounds      Rect
	Fill        Color
	Alpha       float64
	Text        string
	FontSize    float64
	FontFamily  string
	Interactive bool
	ZIndex      int

	// Data carries caller metadata, e.g. the grid cell a container renders.
	Data any

	parent    *Node
	owner     *Stage
	children  []*Node
	handlers  map[EventType][]Handler
	destroyed bool
}

// NewContainer creates an empty container node.
func NewContainer(label string) *Node {
	return &Node{Kind: KindContainer, Label: label, Alpha: 1}
}

// NewGraphics creates a filled rectangle.
func NewGraphics(rect Rect, fill Color, alpha float64) *Node {
	return &Node{Kind: KindGraphics, Bounds: rect, Fill: fill, Alpha: alpha}
}

// NewText creates a text node at (x, y) whose bounds are measured with m.
func NewText(text string, x, y, fontSize float64, family string, fill Color, m Measurer) *Node {
	w, h := m.MeasureText(text, fontSize, family)
	return &Node{
		Kind:       KindText,
		Text:       text,
		Bounds:     Rect{X: x, Y: y, Width: w, Height: h},
		Fill:       fill,
		Alpha:      1,
		FontSize:   fontSize,
		FontFamily: family,
	}
}

// AddChild appends child to n, detaching it from any previous parent.
func (n *Node) AddChild(child *Node) {
	if child.parent != nil {
		child.parent.removeChild(child)
	}
	child.parent = n
	n.children = append(n.children, child)
}

// Children returns the node's children in insertion order.
func (n *Node) Children() []*Node {
	return n.children
}

// Parent returns the node's parent, or nil when detached.
func (n *Node) Parent() *Node {
	return n.parent
}

// Destroyed reports whether Destroy has been called.
func (n *Node) Destroyed() bool {
	return n.destroyed
}

// On subscribes h to events of type t and returns n for chaining.
func (n *Node) On(t EventType, h Handler) *Node {
	if n.handlers == nil {
		n.handlers = make(map[EventType][]Handler)
	}
	n.handlers[t] = append(n.handlers[t], h)
	return n
}

// Listeners returns the number of handlers subscribed to t.
func (n *Node) Listeners(t EventType) int {
	return len(n.handlers[t])
}

// Emit delivers ev to every handler subscribed to ev.Type.
func (n *Node) Emit(ev PointerEvent) {
	if n.destroyed {
		return
	}
	for _, h := range n.handlers[ev.Type] {
		h(ev)
	}
}

// Destroy detaches the node and releases its children and handlers.
// A destroyed node never emits events again.
func (n *Node) Destroy() {
	if n.destroyed {
		return
	}
	if n.parent != nil {
		n.parent.removeChild(n)
	}
	for _, c := range n.children {
		c.parent = nil
		c.Destroy()
	}
	n.children = nil
	n.handlers = nil
	n.Data = nil
	n.destroyed = true
}

func (n *Node) removeChild(child *Node) bool {
	for i, c := range n.children {
		if c != child {
			continue
		}
		copy(n.children[i:], n.children[i+1:])
		n.children[len(n.children)-1] = nil
		n.children = n.children[:len(n.children)-1]
		child.parent = nil
		if n.owner != nil {
			n.owner.forget(child)
		}
		return true
	}
	return false
}

// hit returns the topmost interactive leaf under (x, y).
func (n *Node) hit(x, y float64) *Node {
	if n.destroyed {
		return nil
	}
	if n.Kind != KindContainer {
		if n.Interactive && n.Bounds.Contains(x, y) {
			return n
		}
		return nil
	}
	var best *Node
	bestZ := 0
	for i := len(n.children) - 1; i >= 0; i-- {
		c := n.children[i]
		found := c.hit(x, y)
		if found == nil {
			continue
		}
		if best == nil || c.ZIndex > bestZ {
			best, bestZ = found, c.ZIndex
		}
	}
	return best
}
