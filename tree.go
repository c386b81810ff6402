package yamled

import (
	"errors"
	"fmt"
	"strings"

	"github.com/signadot/yamled-format/go-yamled/debug"
	"github.com/signadot/yamled-format/go-yamled/ir"
	"github.com/signadot/yamled-format/go-yamled/parse"
)

// resolve is the single shared definition of path resolution: each
// segment matches the first top-level structural node of the current
// window whose key equals the segment, then the window narrows to
// that node's span for the next segment. Non-matching siblings are
// skipped together with their spans, so a nested key never matches a
// shallower segment.
func (d *Document) resolve(path ir.Path) (int, error) {
	if len(path) == 0 {
		return -1, ErrEmptyPath
	}
	lo, hi := 0, len(d.nodes)
	idx := -1
	for _, seg := range path {
		found := -1
		for i := lo; i < hi; {
			n := d.nodes[i]
			if !n.Kind.Structural() {
				i++
				continue
			}
			if n.Key == seg {
				found = i
				break
			}
			i += 1 + spanLen(d.nodes, i)
		}
		if found < 0 {
			return -1, fmt.Errorf("%w: %s", ErrPathNotFound, path)
		}
		idx = found
		lo, hi = found+1, found+1+spanLen(d.nodes, found)
	}
	return idx, nil
}

// spanLen counts the run of nodes after i belonging to its subtree
// under the hierarchy-by-indentation rule. Only structural nodes
// terminate the span: blank lines and floating comments between
// deeper-indented siblings are interior, while those trailing the
// last deeper-indented structural node stay outside.
func spanLen(nodes []*ir.Node, i int) int {
	base := nodes[i].Indent
	end := i
	for j := i + 1; j < len(nodes); j++ {
		n := nodes[j]
		if !n.Kind.Structural() {
			continue
		}
		if n.Indent <= base {
			break
		}
		end = j
	}
	return end - i
}

// Get returns the value at path.
func (d *Document) Get(path ir.Path) (ir.Value, error) {
	i, err := d.resolve(path)
	if err != nil {
		return ir.Value{}, err
	}
	return d.nodes[i].Value, nil
}

// Has reports whether path resolves.
func (d *Document) Has(path ir.Path) bool {
	_, err := d.resolve(path)
	return err == nil
}

// Set updates the value at path, creating the entry under the path's
// parent when it does not resolve yet. A scalar written over a
// scalar node mutates it in place, preserving its surroundings; a
// kind change (scalar over mapping, composite over scalar) replaces
// the node and its span with freshly built nodes.
func (d *Document) Set(path ir.Path, value any) error {
	if len(path) == 0 {
		return ErrEmptyPath
	}
	i, err := d.resolve(path)
	if errors.Is(err, ErrPathNotFound) {
		return d.Add(path.Parent(), path.Last(), value, "")
	}
	if err != nil {
		return err
	}
	n := d.nodes[i]
	fresh := parse.BuildValue(path.Last(), value, n.Indent)
	if debug.Tree() {
		debug.Logf("tree: set %s (%s) <- %#v\n", path, n.Kind, fresh.Value)
	}
	if fresh.Kind == n.Kind || (fresh.Kind == ir.KeyValue && n.Kind.Block() && fresh.Value.Type == ir.StringType) {
		n.Value = fresh.Value
		return nil
	}
	fresh.Comment = n.Comment
	d.splice(i, 1+spanLen(d.nodes, i), fresh)
	return nil
}

// Add inserts a new entry under parent. The new node's indentation
// follows the parent path's depth; it is placed immediately after
// the parent's last existing child, or appended at the document root
// when parent is empty.
func (d *Document) Add(parent ir.Path, key string, value any, comment string) error {
	node := parse.BuildValue(key, value, len(parent)*ir.IndentStep)
	node.Comment = indentComment(comment, node.Indent)
	if len(parent) == 0 {
		d.nodes = append(d.nodes, node)
		return nil
	}
	pi, err := d.resolve(parent)
	if err != nil {
		if errors.Is(err, ErrPathNotFound) {
			return fmt.Errorf("%w: %s", ErrParentNotFound, parent)
		}
		return err
	}
	at := pi + 1 + spanLen(d.nodes, pi)
	if debug.Tree() {
		debug.Logf("tree: add %s.%s at %d\n", parent, key, at)
	}
	d.splice(at, 0, node)
	return nil
}

// Delete removes the node at path together with its whole span:
// deleting a mapping removes every contiguously following
// deeper-indented node, up to the next node at equal or lesser
// indentation.
func (d *Document) Delete(path ir.Path) error {
	if len(path) == 0 {
		return ErrEmptyPath
	}
	i, err := d.resolve(path)
	if err != nil {
		return err
	}
	if debug.Tree() {
		debug.Logf("tree: delete %s [%d+%d]\n", path, i, spanLen(d.nodes, i))
	}
	d.splice(i, 1+spanLen(d.nodes, i))
	return nil
}

// GetComment returns the comment attached above the node at path,
// empty when none is attached.
func (d *Document) GetComment(path ir.Path) (string, error) {
	i, err := d.resolve(path)
	if err != nil {
		return "", err
	}
	return d.nodes[i].Comment, nil
}

// SetComment replaces the comment attached above the node at path.
func (d *Document) SetComment(path ir.Path, text string) error {
	i, err := d.resolve(path)
	if err != nil {
		return err
	}
	d.nodes[i].Comment = indentComment(text, d.nodes[i].Indent)
	return nil
}

// indentComment pads caller-supplied comment text to the node's
// indentation. Comments attached during parsing already carry their
// source indentation and pass through unchanged.
func indentComment(text string, indent int) string {
	if text == "" || indent == 0 {
		return text
	}
	pad := strings.Repeat(" ", indent)
	lines := strings.Split(text, "\n")
	for i, ln := range lines {
		if ln != "" && ln[0] != ' ' && ln[0] != '\t' {
			lines[i] = pad + ln
		}
	}
	return strings.Join(lines, "\n")
}

func (d *Document) splice(at, del int, ins ...*ir.Node) {
	res := make([]*ir.Node, 0, len(d.nodes)-del+len(ins))
	res = append(res, d.nodes[:at]...)
	res = append(res, ins...)
	res = append(res, d.nodes[at+del:]...)
	d.nodes = res
}
