package scene

// Stage is the root of a scene tree. Top-level children are indexed by label
// so they can be looked up and removed without a scan.
type Stage struct {
	Width  float64
	Height float64

	root    *Node
	index   map[string]*Node
	hovered *Node
}

// NewStage creates an empty stage covering width x height pixels.
func NewStage(width, height float64) *Stage {
	s := &Stage{
		Width:  width,
		Height: height,
		index:  make(map[string]*Node),
	}
	s.root = NewContainer("stage")
	s.root.owner = s
	return s
}

// Bounds returns the stage's coordinate space.
func (s *Stage) Bounds() Rect {
	return Rect{Width: s.Width, Height: s.Height}
}

// AddChild inserts n at the top level. A labelled node replaces the index
// entry of an earlier node with the same label; callers that need unique
// labels remove the old node first.
func (s *Stage) AddChild(n *Node) {
	s.root.AddChild(n)
	if n.Label != "" {
		s.index[n.Label] = n
	}
}

// RemoveChild detaches n from the stage without destroying it.
func (s *Stage) RemoveChild(n *Node) bool {
	return s.root.removeChild(n)
}

// ChildByLabel returns the top-level node with the given label, or nil.
func (s *Stage) ChildByLabel(label string) *Node {
	return s.index[label]
}

// Children returns the top-level nodes in insertion order.
func (s *Stage) Children() []*Node {
	return s.root.children
}

// Len returns the number of top-level nodes.
func (s *Stage) Len() int {
	return len(s.root.children)
}

// HitTest returns the topmost interactive leaf under (x, y), or nil.
func (s *Stage) HitTest(x, y float64) *Node {
	if !s.Bounds().Contains(x, y) {
		return nil
	}
	return s.root.hit(x, y)
}

// PointerMove tracks the hovered node and emits PointerOver when the pointer
// enters a different interactive node.
func (s *Stage) PointerMove(x, y float64) *Node {
	target := s.HitTest(x, y)
	if target == s.hovered {
		return target
	}
	s.hovered = target
	if target != nil {
		target.Emit(PointerEvent{Type: PointerOver, X: x, Y: y, Target: target})
	}
	return target
}

// PointerDown emits PointerDown on the node under (x, y). It reports whether
// a node was hit.
func (s *Stage) PointerDown(x, y float64, button Button) bool {
	target := s.HitTest(x, y)
	if target == nil {
		return false
	}
	target.Emit(PointerEvent{Type: PointerDown, X: x, Y: y, Button: button, Target: target})
	return true
}

func (s *Stage) forget(n *Node) {
	if n.Label != "" && s.index[n.Label] == n {
		delete(s.index, n.Label)
	}
	if s.hovered != nil && (s.hovered == n || s.hovered.Parent() == n) {
		s.hovered = nil
	}
}
