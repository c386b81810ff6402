package yamled

import diffpatch "github.com/sergi/go-diff/diffmatchpatch"

// Diff returns a human-readable colored diff between two renditions
// of a document. The CLI uses it to preview an edit before writing.
func Diff(from, to []byte) string {
	dmp := diffpatch.New()
	diffs := dmp.DiffMain(string(from), string(to), false)
	diffs = dmp.DiffCleanupSemantic(diffs)
	return dmp.DiffPrettyText(diffs)
}
