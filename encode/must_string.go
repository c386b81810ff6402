package encode

import (
	"bytes"

	"github.com/signadot/yamled-format/go-yamled/ir"
)

// String renders nodes to a string. Writing to a buffer cannot
// fail, so no error is returned.
func String(nodes []*ir.Node, opts ...EncodeOption) string {
	buf := &bytes.Buffer{}
	if err := Encode(nodes, buf, opts...); err != nil {
		panic(err)
	}
	return buf.String()
}
