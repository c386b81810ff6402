package parse

import (
	"github.com/goccy/go-yaml"

	"github.com/signadot/yamled-format/go-yamled/debug"
	"github.com/signadot/yamled-format/go-yamled/ir"
	"github.com/signadot/yamled-format/go-yamled/token"
)

type parseOpts struct {
	comments bool
}

type ParseOption func(*parseOpts)

// ParseComments controls the comment attachment pass. It defaults to
// true; with false, comment lines stay floating at their source
// positions.
func ParseComments(v bool) ParseOption {
	return func(o *parseOpts) { o.comments = v }
}

// Parse produces the enhanced node list for a document. It is
// best-effort and never fails: tokenization classifies every line,
// and a document the external value parser rejects simply passes
// through unaligned, preserving its text.
func Parse(d []byte, opts ...ParseOption) []*ir.Node {
	po := &parseOpts{comments: true}
	for _, f := range opts {
		f(po)
	}
	toks := token.Tokenize(d)
	if debug.Token() {
		for _, t := range toks {
			debug.Logf("token: %s %q\n", t.Kind, t.Raw)
		}
	}
	if po.comments {
		toks = attachComments(toks)
	}
	var v any
	if err := yaml.UnmarshalWithOptions(d, &v, yaml.UseOrderedMap()); err != nil {
		if debug.Align() {
			debug.Logf("parse: value parse failed, skipping alignment: %v\n", err)
		}
		return toks
	}
	return Align(toks, Mirror(v))
}
