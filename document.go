package yamled

import (
	"fmt"
	"os"

	"github.com/signadot/yamled-format/go-yamled/encode"
	"github.com/signadot/yamled-format/go-yamled/ir"
	"github.com/signadot/yamled-format/go-yamled/parse"
)

// Document owns the node list for one parsed source and is the
// mutable source of truth for all edits. It is single-threaded: no
// operation suspends, and concurrent mutation requires external
// synchronization.
type Document struct {
	nodes []*ir.Node
}

// Parse builds a Document from source text. Parsing is best-effort
// and never fails: unclassifiable lines are preserved verbatim as
// comments, and a document the value parser rejects is kept in its
// tokenized form.
func Parse(d []byte, opts ...parse.ParseOption) *Document {
	return &Document{nodes: parse.Parse(d, opts...)}
}

// Load reads and parses a file.
func Load(path string, opts ...parse.ParseOption) (*Document, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSourceUnreadable, err)
	}
	return Parse(d, opts...), nil
}

// Nodes exposes the underlying node list. Callers may mutate node
// fields but must not splice the list; structural changes go through
// Add and Delete.
func (d *Document) Nodes() []*ir.Node {
	return d.nodes
}

// Dump renders the document.
func (d *Document) Dump(opts ...encode.EncodeOption) []byte {
	return []byte(encode.String(d.nodes, opts...))
}

// Save renders the document to a file.
func (d *Document) Save(path string, opts ...encode.EncodeOption) error {
	if err := os.WriteFile(path, d.Dump(opts...), 0644); err != nil {
		return fmt.Errorf("%w: %v", ErrSourceUnwritable, err)
	}
	return nil
}
