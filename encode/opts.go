package encode

type EncodeOption func(*encState)

// CollapseLiteralBlankLines drops every blank content line inside
// block scalars while rendering.
func CollapseLiteralBlankLines(v bool) EncodeOption {
	return func(es *encState) { es.collapse = v }
}

// EncodeColors renders with ANSI colors. Colored output is for
// display only; it is not byte-stable against re-parsing.
func EncodeColors(c *Colors) EncodeOption {
	return func(es *encState) { es.colors = c }
}
