// Package ir defines the node model shared by the tokenizer, the
// parser, the document tree, and the encoder.
//
// A document is a flat, ordered list of nodes, one per source line
// (block scalars collapse several physical lines into one node).
// Hierarchy is not represented with parent pointers: a node at indent
// d belongs to the nearest preceding mapping node at indent d-2.
package ir
