package parse

import (
	"strings"

	"github.com/signadot/yamled-format/go-yamled/ir"
)

// attachComments resolves comment runs in a single left-to-right
// scan. A run of consecutive comment lines attaches to the next
// structural node unless a blank line intervenes; a run followed by
// a blank line stays floating, in place. A trailing run with no
// following node also stays floating. A run is always attached or
// floated as a whole, never split.
func attachComments(nodes []*ir.Node) []*ir.Node {
	res := make([]*ir.Node, 0, len(nodes))
	var pending []*ir.Node
	flush := func() {
		res = append(res, pending...)
		pending = nil
	}
	for _, n := range nodes {
		switch n.Kind {
		case ir.Comment:
			pending = append(pending, n)
		case ir.BlankLine:
			flush()
			res = append(res, n)
		default:
			if len(pending) != 0 {
				lines := make([]string, len(pending))
				for i, c := range pending {
					lines[i] = c.Raw
				}
				n.Comment = strings.Join(lines, "\n")
				pending = nil
			}
			res = append(res, n)
		}
	}
	flush()
	return res
}
