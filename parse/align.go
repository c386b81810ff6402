package parse

import (
	"slices"
	"strings"

	"github.com/signadot/yamled-format/go-yamled/debug"
	"github.com/signadot/yamled-format/go-yamled/ir"
	"github.com/signadot/yamled-format/go-yamled/token"
)

// Align reconciles the tokenized nodes with the mirror built from
// the authoritative parsed value. Every token is kept, in order;
// alignment only transplants values. Tokens whose raw text already
// denotes the matched value keep their formatting at render time,
// because the encoder re-runs the same scalar comparison against
// Raw.
func Align(tokens, mirror []*ir.Node) []*ir.Node {
	if len(tokens) == 0 || len(mirror) == 0 {
		return tokens
	}
	mirror = pruneShadowedScalars(mirror, blockSet(tokens))
	lk := flatten(mirror)
	for idx, tok := range tokens {
		if !tok.Kind.Structural() {
			continue
		}
		path := ancestorPath(tokens, idx)
		var m *ir.Node
		switch tok.Kind {
		case ir.MappingStart, ir.LiteralBlock, ir.FoldedBlock:
			// mirror scalars shadowed by block tokens were pruned
			// above; the tokenized block form wins
			m = lk.take(alignKey{classContainer, path, tok.Key, tok.Indent})
		case ir.SequenceItem:
			m = lk.take(alignKey{classItem, path, token.FormatScalar(tok.Value), tok.Indent})
		case ir.KeyValue:
			m = lk.take(alignKey{classScalar, path, tok.Key, tok.Indent})
		}
		if m == nil {
			continue
		}
		// the token's own parse and the mirror went through the same
		// scalar rules, so adopting the mirror value both preserves
		// unchanged formatting and surfaces external updates
		tok.Value = m.Value.Clone()
		if debug.Align() {
			debug.Logf("align: %s %s.%s <- %#v\n", tok.Kind, path, tok.Key, tok.Value)
		}
	}
	return tokens
}

type alignClass int

const (
	classScalar alignClass = iota
	classContainer
	classItem
)

// alignKey identifies a mirror node by kind class, dotted ancestor
// path, local key (or canonical value for sequence items), and
// indentation.
type alignKey struct {
	class  alignClass
	path   string
	local  string
	indent int
}

type lookup map[alignKey][]*ir.Node

func (lk lookup) add(k alignKey, n *ir.Node) {
	lk[k] = append(lk[k], n)
}

// take pops the first unconsumed match. Documents with genuinely
// duplicate keys at the same depth resolve first-come-first-served;
// exhaustiveness against such documents is out of scope.
func (lk lookup) take(k alignKey) *ir.Node {
	ns := lk[k]
	if len(ns) == 0 {
		return nil
	}
	lk[k] = ns[1:]
	return ns[0]
}

func flatten(mirror []*ir.Node) lookup {
	lk := lookup{}
	var walk func(nodes []*ir.Node, prefix ir.Path)
	walk = func(nodes []*ir.Node, prefix ir.Path) {
		for _, n := range nodes {
			switch n.Kind {
			case ir.MappingStart:
				lk.add(alignKey{classContainer, prefix.String(), n.Key, n.Indent}, n)
				walk(n.Children, prefix.Child(n.Key))
			case ir.KeyValue:
				lk.add(alignKey{classScalar, prefix.String(), n.Key, n.Indent}, n)
			case ir.SequenceItem:
				lk.add(alignKey{classItem, prefix.String(), token.FormatScalar(n.Value), n.Indent}, n)
			}
		}
	}
	walk(mirror, nil)
	return lk
}

// blockSet collects the key+indent coordinates of tokenized block
// scalars.
func blockSet(tokens []*ir.Node) map[blockID]bool {
	res := map[blockID]bool{}
	for _, t := range tokens {
		if t.Kind.Block() {
			res[blockID{t.Key, t.Indent}] = true
		}
	}
	return res
}

type blockID struct {
	key    string
	indent int
}

// pruneShadowedScalars removes mirror KeyValue nodes whose key and
// indent coincide with a tokenized block scalar: the value parser
// flattens block scalars to plain strings, and matching those
// against the token would discard the block's faithful form.
func pruneShadowedScalars(mirror []*ir.Node, blocks map[blockID]bool) []*ir.Node {
	if len(blocks) == 0 {
		return mirror
	}
	res := slices.DeleteFunc(slices.Clone(mirror), func(n *ir.Node) bool {
		return n.Kind == ir.KeyValue && blocks[blockID{n.Key, n.Indent}]
	})
	for _, n := range res {
		if len(n.Children) != 0 {
			n.Children = pruneShadowedScalars(n.Children, blocks)
		}
	}
	return res
}

// ancestorPath reconstructs a token's dotted ancestor path by
// scanning backward for the nearest preceding mapping starts at
// strictly decreasing indentation. This is the same
// hierarchy-by-indentation rule the tree uses for resolution.
func ancestorPath(tokens []*ir.Node, idx int) string {
	var parts []string
	cur := tokens[idx].Indent
	for j := idx - 1; j >= 0 && cur > 0; j-- {
		t := tokens[j]
		if t.Kind == ir.MappingStart && t.Indent < cur {
			parts = append(parts, t.Key)
			cur = t.Indent
		}
	}
	slices.Reverse(parts)
	return strings.Join(parts, ".")
}
