package encode

import (
	"bytes"
	"io"
	"strings"

	"github.com/signadot/yamled-format/go-yamled/ir"
	"github.com/signadot/yamled-format/go-yamled/token"
)

type encState struct {
	collapse bool
	colors   *Colors
}

// Encode writes the node list to w in document order. A trailing
// newline is appended only if the accumulated text does not already
// end with one; an empty node list renders as a single newline.
func Encode(nodes []*ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &encState{}
	for _, opt := range opts {
		opt(es)
	}
	buf := &bytes.Buffer{}
	for _, n := range nodes {
		encodeNode(n, buf, es)
	}
	if buf.Len() == 0 || buf.Bytes()[buf.Len()-1] != '\n' {
		buf.WriteByte('\n')
	}
	_, err := w.Write(buf.Bytes())
	return err
}

func encodeNode(n *ir.Node, buf *bytes.Buffer, es *encState) {
	if n.Comment != "" {
		for _, ln := range strings.Split(n.Comment, "\n") {
			buf.WriteString(es.color(CommentColor, ln))
			buf.WriteByte('\n')
		}
	}
	switch n.Kind {
	case ir.Comment:
		buf.WriteString(es.color(CommentColor, n.Raw))
		buf.WriteByte('\n')
	case ir.BlankLine:
		buf.WriteString(n.Raw)
		buf.WriteByte('\n')
	case ir.MappingStart:
		if n.Raw != "" {
			buf.WriteString(es.keyLine(n.Raw))
		} else {
			buf.WriteString(indentOf(n))
			buf.WriteString(es.color(KeyColor, n.Key))
			buf.WriteString(es.color(SepColor, ":"))
		}
		buf.WriteByte('\n')
	case ir.KeyValue:
		if raw, ok := token.RawKeyValue(n.Raw); ok && token.ScalarEqual(raw, n.Value) {
			buf.WriteString(es.keyLine(n.Raw))
		} else {
			buf.WriteString(indentOf(n))
			buf.WriteString(es.color(KeyColor, n.Key))
			buf.WriteString(es.color(SepColor, ":"))
			buf.WriteByte(' ')
			buf.WriteString(es.color(ValueColor, token.FormatScalar(n.Value)))
		}
		buf.WriteByte('\n')
	case ir.SequenceItem:
		if raw, ok := token.RawItemValue(n.Raw); ok && token.ScalarEqual(raw, n.Value) {
			buf.WriteString(es.itemLine(n.Raw))
		} else {
			buf.WriteString(indentOf(n))
			buf.WriteString(es.color(SepColor, "-"))
			buf.WriteByte(' ')
			buf.WriteString(es.color(ValueColor, token.FormatScalar(n.Value)))
		}
		buf.WriteByte('\n')
	case ir.LiteralBlock:
		encodeBlock(n, "|", buf, es)
	case ir.FoldedBlock:
		encodeBlock(n, ">", buf, es)
	}
	for _, c := range n.Children {
		encodeNode(c, buf, es)
	}
}

// encodeBlock emits a block scalar. The raw form is reused when it
// still tokenizes to the node's value; otherwise the header and the
// stored content are re-rendered, content lines indented one step
// past the header and blank content lines emitted with no
// indentation (block scalar convention).
func encodeBlock(n *ir.Node, marker string, buf *bytes.Buffer, es *encState) {
	if n.Raw != "" && !es.collapse && es.colors == nil && blockUnchanged(n) {
		buf.WriteString(n.Raw)
		buf.WriteByte('\n')
		return
	}
	buf.WriteString(indentOf(n))
	buf.WriteString(es.color(KeyColor, n.Key))
	buf.WriteString(es.color(SepColor, ":"))
	buf.WriteByte(' ')
	buf.WriteString(es.color(SepColor, marker))
	buf.WriteByte('\n')
	content := strings.TrimSuffix(n.Value.String, "\n")
	if content == "" {
		return
	}
	pad := strings.Repeat(" ", n.Indent+ir.IndentStep)
	for _, ln := range strings.Split(content, "\n") {
		if ln == "" {
			if es.collapse {
				continue
			}
			buf.WriteByte('\n')
			continue
		}
		buf.WriteString(pad)
		buf.WriteString(es.color(ValueColor, ln))
		buf.WriteByte('\n')
	}
}

// blockUnchanged re-tokenizes the node's raw lines and compares the
// resulting content against the stored value.
func blockUnchanged(n *ir.Node) bool {
	toks := token.Tokenize([]byte(n.Raw))
	if len(toks) != 1 || !toks[0].Kind.Block() {
		return false
	}
	return toks[0].Value.Equal(n.Value)
}

func indentOf(n *ir.Node) string {
	return strings.Repeat(" ", n.Indent)
}

// keyLine recolors a raw `key: ...` line; without colors it is
// returned verbatim.
func (es *encState) keyLine(raw string) string {
	if es.colors == nil {
		return raw
	}
	i := strings.Index(raw, ":")
	if i < 0 {
		return es.color(KeyColor, raw)
	}
	return es.color(KeyColor, raw[:i]) + es.color(SepColor, ":") + es.color(ValueColor, raw[i+1:])
}

func (es *encState) itemLine(raw string) string {
	if es.colors == nil {
		return raw
	}
	i := strings.Index(raw, "-")
	if i < 0 {
		return es.color(ValueColor, raw)
	}
	return raw[:i] + es.color(SepColor, "-") + es.color(ValueColor, raw[i+1:])
}

func (es *encState) color(attr ColorAttr, s string) string {
	if es.colors == nil || s == "" {
		return s
	}
	return es.colors.Color(attr, s)
}
