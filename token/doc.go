// Package token turns document text into the flat node sequence the
// rest of the engine operates on. One node is produced per physical
// line, except for block scalars, which collapse their header and
// content lines into a single node.
//
// Tokenization never fails: a line that fits no classification is
// emitted as a comment node so that round-tripping always reproduces
// it. Rejecting unknown lines here would break format preservation.
package token
