package yamled

import (
	"fmt"
	"strings"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/goccy/go-yaml"

	"github.com/signadot/yamled-format/go-yamled/debug"
	"github.com/signadot/yamled-format/go-yamled/ir"
)

// Patch applies an RFC 6902 JSON patch by replaying its add,
// replace, and remove operations through the tree, so every line the
// patch does not touch keeps its original formatting. Array-index
// pointer segments are not supported by this addressing scheme.
func (d *Document) Patch(patch []byte) error {
	ops, err := jsonpatch.DecodePatch(patch)
	if err != nil {
		return err
	}
	for _, op := range ops {
		kind := op.Kind()
		ptr, err := op.Path()
		if err != nil {
			return err
		}
		path := pointerPath(ptr)
		if debug.Patch() {
			debug.Logf("patch: %s %s\n", kind, path)
		}
		switch kind {
		case "add", "replace":
			v, err := opValue(op)
			if err != nil {
				return err
			}
			if err := d.Set(path, v); err != nil {
				return err
			}
		case "remove":
			if err := d.Delete(path); err != nil {
				return err
			}
		default:
			return fmt.Errorf("unsupported patch op %q", kind)
		}
	}
	return nil
}

func opValue(op jsonpatch.Operation) (any, error) {
	raw, ok := op["value"]
	if !ok || raw == nil {
		return nil, fmt.Errorf("patch op missing value")
	}
	// JSON is a YAML subset; decoding with the document's value
	// parser keeps composite values in the same ordered form
	var v any
	if err := yaml.UnmarshalWithOptions([]byte(*raw), &v, yaml.UseOrderedMap()); err != nil {
		return nil, err
	}
	return v, nil
}

func pointerPath(p string) ir.Path {
	p = strings.TrimPrefix(p, "/")
	if p == "" {
		return nil
	}
	parts := strings.Split(p, "/")
	for i, s := range parts {
		s = strings.ReplaceAll(s, "~1", "/")
		parts[i] = strings.ReplaceAll(s, "~0", "~")
	}
	return ir.Path(parts)
}
