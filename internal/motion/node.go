package motion

// Node is an element in a nested layout. Rect is relative to the parent's origin.
// Nodes with an empty ID are plain containers and produce no transition.
type Node struct {
	ID       string
	Rect     Rect
	Children []Node
}

// Flatten resolves root to absolute transitions in depth-first paint order.
func Flatten(root Node, spring SpringParams) []Transition {
	var out []Transition
	var walk func(n Node, ox, oy float64)
	walk = func(n Node, ox, oy float64) {
		abs := n.Rect.Translate(ox, oy)
		if n.ID != "" {
			out = append(out, Transition{ID: n.ID, Target: abs, Spring: spring})
		}
		for _, c := range n.Children {
			walk(c, abs.X, abs.Y)
		}
	}
	walk(root, 0, 0)
	return out
}
