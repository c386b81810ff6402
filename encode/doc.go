// Package encode renders a node list back to text. Wherever a
// node's raw source text still denotes its value, the raw text is
// emitted verbatim, so an unmutated parse round-trips byte for byte;
// mutated values are rendered with the default scalar formatting.
package encode
