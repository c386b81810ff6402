package parse

import (
	"fmt"
	"maps"
	"slices"

	"github.com/goccy/go-yaml"

	"github.com/signadot/yamled-format/go-yamled/ir"
)

// Mirror builds the idealized node list from the authoritative
// parsed document value. Mirror nodes carry correct values and
// fully-populated Children but no original formatting.
func Mirror(v any) []*ir.Node {
	switch x := normalize(v).(type) {
	case yaml.MapSlice:
		return mirrorMap(x, 0)
	case []any:
		return mirrorSeq(x, 0)
	default:
		return nil
	}
}

func mirrorMap(m yaml.MapSlice, indent int) []*ir.Node {
	res := make([]*ir.Node, 0, len(m))
	for _, item := range m {
		res = append(res, BuildValue(keyString(item.Key), item.Value, indent))
	}
	return res
}

func mirrorSeq(s []any, indent int) []*ir.Node {
	res := make([]*ir.Node, 0, len(s))
	for _, elt := range s {
		res = append(res, &ir.Node{
			Kind:   ir.SequenceItem,
			Indent: indent,
			Value:  ir.FromNative(normalize(elt)),
		})
	}
	return res
}

// BuildValue builds the node for one mapping entry: a scalar becomes
// a KeyValue, a composite a MappingStart whose Children carry the
// nested content one step deeper. Document.Add builds its fresh
// nodes through this same routine.
func BuildValue(key string, v any, indent int) *ir.Node {
	switch x := normalize(v).(type) {
	case yaml.MapSlice:
		return &ir.Node{
			Kind:     ir.MappingStart,
			Key:      key,
			Indent:   indent,
			Value:    ir.FromComposite(x),
			Children: mirrorMap(x, indent+ir.IndentStep),
		}
	case []any:
		return &ir.Node{
			Kind:     ir.MappingStart,
			Key:      key,
			Indent:   indent,
			Value:    ir.FromComposite(x),
			Children: mirrorSeq(x, indent+ir.IndentStep),
		}
	default:
		return &ir.Node{
			Kind:   ir.KeyValue,
			Key:    key,
			Indent: indent,
			Value:  ir.FromNative(x),
		}
	}
}

// normalize maps caller-supplied composites onto the ordered forms
// the external parser produces. Plain Go maps have no order; their
// keys are sorted for determinism.
func normalize(v any) any {
	switch x := v.(type) {
	case ir.Value:
		return x.Native()
	case map[string]any:
		res := make(yaml.MapSlice, 0, len(x))
		for _, k := range slices.Sorted(maps.Keys(x)) {
			res = append(res, yaml.MapItem{Key: k, Value: x[k]})
		}
		return res
	case map[string]string:
		res := make(yaml.MapSlice, 0, len(x))
		for _, k := range slices.Sorted(maps.Keys(x)) {
			res = append(res, yaml.MapItem{Key: k, Value: x[k]})
		}
		return res
	case []string:
		res := make([]any, len(x))
		for i := range x {
			res[i] = x[i]
		}
		return res
	default:
		return v
	}
}

func keyString(k any) string {
	if s, ok := k.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", k)
}
