package yamled

import "github.com/signadot/yamled-format/go-yamled/ir"

type VisitResult int

const (
	VisitKeep VisitResult = iota
	VisitRemove
)

// VisitFunc is called once per node with the keys of its mapping
// ancestors. The callback may mutate the node it is given but must
// not splice the list; returning VisitRemove removes the node (and,
// for mappings, its span) after the pass completes.
type VisitFunc func(n *ir.Node, ancestors ir.Path) VisitResult

// Visit walks the node list once, left to right, maintaining the
// ancestor key stack from indentation alone: entries indented at or
// beyond the current structural node are popped before it is
// visited, and its own key is pushed after a keep decision.
// Removals are applied after the pass so indices stay stable during
// the scan.
func (d *Document) Visit(f VisitFunc) {
	type frame struct {
		key    string
		indent int
	}
	var stack []frame
	var removed []int
	for i, n := range d.nodes {
		if n.Kind.Structural() {
			for len(stack) > 0 && stack[len(stack)-1].indent >= n.Indent {
				stack = stack[:len(stack)-1]
			}
		}
		keys := make(ir.Path, len(stack))
		for j, fr := range stack {
			keys[j] = fr.key
		}
		if f(n, keys) == VisitRemove {
			removed = append(removed, i)
			continue
		}
		if n.Kind.Structural() && n.Key != "" {
			stack = append(stack, frame{key: n.Key, indent: n.Indent})
		}
	}
	for j := len(removed) - 1; j >= 0; j-- {
		i := removed[j]
		d.splice(i, 1+spanLen(d.nodes, i))
	}
}
