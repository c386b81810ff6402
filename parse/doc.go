// Package parse builds the enhanced node list a Document operates
// on: it tokenizes source text, attaches leading comments to the
// structural nodes they describe, obtains the authoritative document
// value from the external YAML parser, and aligns the two so that
// every node carries both its original formatting and its correct
// value.
package parse
