// Package yamled is a format-preserving editor for YAML-style
// configuration documents. It parses a document into a flat,
// lossless node list, exposes path-addressed reads, writes, deletes,
// and comment accessors over it, and renders it back to text that
// matches the original formatting wherever the semantic content is
// unchanged.
//
//	doc, err := yamled.Load("ahoy.yml")
//	if err != nil { ... }
//	doc.Set(ir.ParsePath("commands.build.usage"), "Build the site")
//	err = doc.Save("ahoy.yml")
//
// Full YAML is out of scope: anchors, aliases, tags, complex keys,
// and multi-document streams are not supported. A Document is not
// safe for concurrent mutation.
package yamled
