package yamled

import (
	"github.com/expr-lang/expr"

	"github.com/signadot/yamled-format/go-yamled/ir"
)

// Select returns the dotted paths of structural nodes matching the
// where expression. The expression sees path, key, kind, indent, and
// value for each node, e.g.
//
//	doc.Select(`kind == "KeyValue" && key == "usage"`)
func (d *Document) Select(where string) ([]string, error) {
	program, err := expr.Compile(where, expr.AsBool())
	if err != nil {
		return nil, err
	}
	var (
		res     []string
		evalErr error
	)
	d.Visit(func(n *ir.Node, ancestors ir.Path) VisitResult {
		if evalErr != nil || !n.Kind.Structural() {
			return VisitKeep
		}
		path := ancestors
		if n.Key != "" {
			path = ancestors.Child(n.Key)
		}
		env := map[string]any{
			"path":   path.String(),
			"key":    n.Key,
			"kind":   n.Kind.String(),
			"indent": n.Indent,
			"value":  n.Value.Native(),
		}
		out, err := expr.Run(program, env)
		if err != nil {
			evalErr = err
			return VisitKeep
		}
		if ok, _ := out.(bool); ok {
			res = append(res, path.String())
		}
		return VisitKeep
	})
	if evalErr != nil {
		return nil, evalErr
	}
	return res, nil
}
