package ir

// IndentStep is the number of spaces per logical depth level.
const IndentStep = 2

type Kind int

const (
	KeyValue Kind = iota
	MappingStart
	SequenceItem
	Comment
	BlankLine
	LiteralBlock
	FoldedBlock
)

func (k Kind) String() string {
	return map[Kind]string{
		KeyValue:     "KeyValue",
		MappingStart: "MappingStart",
		SequenceItem: "SequenceItem",
		Comment:      "Comment",
		BlankLine:    "BlankLine",
		LiteralBlock: "LiteralBlock",
		FoldedBlock:  "FoldedBlock",
	}[k]
}

// Structural reports whether nodes of this kind carry document
// structure, as opposed to comments and blank lines.
func (k Kind) Structural() bool {
	switch k {
	case Comment, BlankLine:
		return false
	default:
		return true
	}
}

// Block reports whether the kind is a multi-line block scalar.
func (k Kind) Block() bool {
	return k == LiteralBlock || k == FoldedBlock
}

// Node is the atomic unit of both the token stream and the tree.
//
// Children is populated only on nodes built fresh from semantic data
// (mirror nodes, nodes created by Add); the tokenizer always emits a
// flat list. Raw holds the original source text of the node and is
// consulted by the encoder to reproduce exact formatting when the
// value is semantically unchanged. For block scalars Raw spans all of
// the node's physical lines, newline-joined.
type Node struct {
	Kind     Kind
	Key      string
	Value    Value
	Indent   int
	Children []*Node
	Comment  string
	Raw      string
}

func (n *Node) Clone() *Node {
	res := &Node{}
	n.CloneTo(res)
	return res
}

func (n *Node) CloneTo(dst *Node) *Node {
	dst.Kind = n.Kind
	dst.Key = n.Key
	dst.Value = n.Value.Clone()
	dst.Indent = n.Indent
	dst.Comment = n.Comment
	dst.Raw = n.Raw
	dst.Children = nil
	if len(n.Children) != 0 {
		dst.Children = make([]*Node, len(n.Children))
		for i, c := range n.Children {
			dst.Children[i] = c.Clone()
		}
	}
	return dst
}

// Depth returns the logical depth implied by the node's indentation.
func (n *Node) Depth() int {
	return n.Indent / IndentStep
}
