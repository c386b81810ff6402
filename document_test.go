package yamled

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/signadot/yamled-format/go-yamled/ir"
)

const ahoyDoc = "ahoyapi: v2\ncommands:\n  build:\n    usage: Build the site\n"

// siblings separated by a blank line inside one mapping span
const sectionedDoc = "commands:\n  build:\n    usage: Build\n\n  test:\n    usage: Test\nother: 1\n"

func TestGet(t *testing.T) {
	doc := Parse([]byte(ahoyDoc))
	v, err := doc.Get(ir.ParsePath("commands.build.usage"))
	if err != nil {
		t.Fatal(err)
	}
	if !v.Equal(ir.FromString("Build the site")) {
		t.Errorf("got %#v", v)
	}
	v, err = doc.Get(ir.ParsePath("ahoyapi"))
	if err != nil {
		t.Fatal(err)
	}
	if !v.Equal(ir.FromString("v2")) {
		t.Errorf("got %#v", v)
	}
}

func TestGetErrors(t *testing.T) {
	doc := Parse([]byte(ahoyDoc))
	if _, err := doc.Get(nil); !errors.Is(err, ErrEmptyPath) {
		t.Errorf("empty path: %v", err)
	}
	if _, err := doc.Get(ir.ParsePath("commands.missing")); !errors.Is(err, ErrPathNotFound) {
		t.Errorf("missing path: %v", err)
	}
	if _, err := doc.Get(ir.ParsePath("usage")); !errors.Is(err, ErrPathNotFound) {
		t.Errorf("deep key at root: %v", err)
	}
}

func TestGetNestedKeyNotAtRoot(t *testing.T) {
	// a key that only exists deeper must not satisfy a shallower path
	doc := Parse([]byte(ahoyDoc))
	for _, p := range []string{"usage", "build", "commands.usage"} {
		if _, err := doc.Get(ir.ParsePath(p)); !errors.Is(err, ErrPathNotFound) {
			t.Errorf("Get(%q): %v", p, err)
		}
	}
}

func TestGetAcrossBlankLines(t *testing.T) {
	doc := Parse([]byte(sectionedDoc))
	v, err := doc.Get(ir.ParsePath("commands.test.usage"))
	if err != nil {
		t.Fatal(err)
	}
	if !v.Equal(ir.FromString("Test")) {
		t.Errorf("got %#v", v)
	}
	v, err = doc.Get(ir.ParsePath("commands.build.usage"))
	if err != nil {
		t.Fatal(err)
	}
	if !v.Equal(ir.FromString("Build")) {
		t.Errorf("got %#v", v)
	}
}

func TestGetAcrossFloatingComment(t *testing.T) {
	in := "commands:\n  build:\n    usage: Build\n\n  # section two\n\n  test:\n    usage: Test\n"
	doc := Parse([]byte(in))
	v, err := doc.Get(ir.ParsePath("commands.test.usage"))
	if err != nil {
		t.Fatal(err)
	}
	if !v.Equal(ir.FromString("Test")) {
		t.Errorf("got %#v", v)
	}
}

func TestHas(t *testing.T) {
	doc := Parse([]byte(ahoyDoc))
	if !doc.Has(ir.ParsePath("commands.build")) {
		t.Error("commands.build missing")
	}
	if doc.Has(ir.ParsePath("commands.deploy")) {
		t.Error("commands.deploy present")
	}
}

func TestSetExisting(t *testing.T) {
	doc := Parse([]byte(ahoyDoc))
	if err := doc.Set(ir.ParsePath("commands.build.usage"), "Updated"); err != nil {
		t.Fatal(err)
	}
	want := "ahoyapi: v2\ncommands:\n  build:\n    usage: Updated\n"
	if d := cmp.Diff(want, string(doc.Dump())); d != "" {
		t.Errorf("dump (-want +got):\n%s", d)
	}
}

func TestSetSameValueKeepsBytes(t *testing.T) {
	in := "key:     oddly   spaced\n# tail\n"
	doc := Parse([]byte(in))
	if err := doc.Set(ir.ParsePath("key"), "oddly   spaced"); err != nil {
		t.Fatal(err)
	}
	if got := string(doc.Dump()); got != in {
		t.Errorf("got %q, want %q", got, in)
	}
}

func TestSetCreatesMissing(t *testing.T) {
	doc := Parse([]byte(ahoyDoc))
	if err := doc.Set(ir.ParsePath("commands.build.aliases"), "b"); err != nil {
		t.Fatal(err)
	}
	want := ahoyDoc + "    aliases: b\n"
	if d := cmp.Diff(want, string(doc.Dump())); d != "" {
		t.Errorf("dump (-want +got):\n%s", d)
	}
}

func TestSetKindChange(t *testing.T) {
	doc := Parse([]byte("a:\n  b: 1\nc: 2\n"))
	if err := doc.Set(ir.ParsePath("a"), "flattened"); err != nil {
		t.Fatal(err)
	}
	want := "a: flattened\nc: 2\n"
	if d := cmp.Diff(want, string(doc.Dump())); d != "" {
		t.Errorf("dump (-want +got):\n%s", d)
	}
}

func TestSetCompositeOverScalar(t *testing.T) {
	doc := Parse([]byte("a: 1\nb: 2\n"))
	if err := doc.Set(ir.ParsePath("a"), map[string]any{"x": 1, "y": 2}); err != nil {
		t.Fatal(err)
	}
	want := "a:\n  x: 1\n  y: 2\nb: 2\n"
	if d := cmp.Diff(want, string(doc.Dump())); d != "" {
		t.Errorf("dump (-want +got):\n%s", d)
	}
}

func TestSetBlockValue(t *testing.T) {
	doc := Parse([]byte("script: |\n  echo old\ndone: yes\n"))
	if err := doc.Set(ir.ParsePath("script"), "echo new\n"); err != nil {
		t.Fatal(err)
	}
	v, err := doc.Get(ir.ParsePath("script"))
	if err != nil {
		t.Fatal(err)
	}
	if v.String != "echo new\n" {
		t.Errorf("got %q", v.String)
	}
	// the block form survives the edit
	want := "script: |\n  echo new\ndone: yes\n"
	if d := cmp.Diff(want, string(doc.Dump())); d != "" {
		t.Errorf("dump (-want +got):\n%s", d)
	}
}

func TestAddRoot(t *testing.T) {
	doc := Parse([]byte("a: 1\n"))
	if err := doc.Add(nil, "b", 2, ""); err != nil {
		t.Fatal(err)
	}
	want := "a: 1\nb: 2\n"
	if got := string(doc.Dump()); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestAddWithComment(t *testing.T) {
	doc := Parse([]byte(ahoyDoc))
	if err := doc.Add(ir.ParsePath("commands.build"), "hidden", true, "# not shown in help"); err != nil {
		t.Fatal(err)
	}
	want := ahoyDoc + "    # not shown in help\n    hidden: true\n"
	if d := cmp.Diff(want, string(doc.Dump())); d != "" {
		t.Errorf("dump (-want +got):\n%s", d)
	}
}

func TestAddParentNotFound(t *testing.T) {
	doc := Parse([]byte(ahoyDoc))
	err := doc.Add(ir.ParsePath("commands.deploy"), "usage", "x", "")
	if !errors.Is(err, ErrParentNotFound) {
		t.Errorf("got %v", err)
	}
}

func TestDeleteSpan(t *testing.T) {
	doc := Parse([]byte(ahoyDoc))
	if err := doc.Delete(ir.ParsePath("commands")); err != nil {
		t.Fatal(err)
	}
	if got := string(doc.Dump()); got != "ahoyapi: v2\n" {
		t.Errorf("got %q", got)
	}
}

func TestDeleteSpansBlankLines(t *testing.T) {
	// interior blank lines belong to the span; the whole mapping goes
	doc := Parse([]byte(sectionedDoc))
	if err := doc.Delete(ir.ParsePath("commands")); err != nil {
		t.Fatal(err)
	}
	if got := string(doc.Dump()); got != "other: 1\n" {
		t.Errorf("got %q", got)
	}
}

func TestSetAcrossBlankLines(t *testing.T) {
	doc := Parse([]byte(sectionedDoc))
	if err := doc.Set(ir.ParsePath("commands.test.usage"), "Updated"); err != nil {
		t.Fatal(err)
	}
	want := "commands:\n  build:\n    usage: Build\n\n  test:\n    usage: Updated\nother: 1\n"
	if d := cmp.Diff(want, string(doc.Dump())); d != "" {
		t.Errorf("dump (-want +got):\n%s", d)
	}
}

func TestAddAfterBlankSeparatedChild(t *testing.T) {
	// insertion lands after the last structural child, before the
	// following sibling
	doc := Parse([]byte(sectionedDoc))
	if err := doc.Add(ir.ParsePath("commands.test"), "hidden", true, ""); err != nil {
		t.Fatal(err)
	}
	want := "commands:\n  build:\n    usage: Build\n\n  test:\n    usage: Test\n    hidden: true\nother: 1\n"
	if d := cmp.Diff(want, string(doc.Dump())); d != "" {
		t.Errorf("dump (-want +got):\n%s", d)
	}
}

func TestDeleteLeaf(t *testing.T) {
	doc := Parse([]byte(ahoyDoc))
	if err := doc.Delete(ir.ParsePath("commands.build.usage")); err != nil {
		t.Fatal(err)
	}
	want := "ahoyapi: v2\ncommands:\n  build:\n"
	if d := cmp.Diff(want, string(doc.Dump())); d != "" {
		t.Errorf("dump (-want +got):\n%s", d)
	}
	if err := doc.Delete(ir.ParsePath("commands.build.usage")); !errors.Is(err, ErrPathNotFound) {
		t.Errorf("second delete: %v", err)
	}
}

func TestComments(t *testing.T) {
	doc := Parse([]byte("# original\nkey: value\n"))
	c, err := doc.GetComment(ir.ParsePath("key"))
	if err != nil {
		t.Fatal(err)
	}
	if c != "# original" {
		t.Errorf("got %q", c)
	}
	if err := doc.SetComment(ir.ParsePath("key"), "# updated"); err != nil {
		t.Fatal(err)
	}
	want := "# updated\nkey: value\n"
	if got := string(doc.Dump()); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestCommentOnUncommented(t *testing.T) {
	doc := Parse([]byte("key: value\n"))
	c, err := doc.GetComment(ir.ParsePath("key"))
	if err != nil {
		t.Fatal(err)
	}
	if c != "" {
		t.Errorf("got %q", c)
	}
}

func TestVisitAncestors(t *testing.T) {
	doc := Parse([]byte(ahoyDoc))
	var paths []string
	doc.Visit(func(n *ir.Node, ancestors ir.Path) VisitResult {
		if n.Kind.Structural() && n.Key != "" {
			paths = append(paths, ancestors.Child(n.Key).String())
		}
		return VisitKeep
	})
	want := []string{"ahoyapi", "commands", "commands.build", "commands.build.usage"}
	if d := cmp.Diff(want, paths); d != "" {
		t.Errorf("paths (-want +got):\n%s", d)
	}
}

func TestVisitRemove(t *testing.T) {
	doc := Parse([]byte(ahoyDoc))
	doc.Visit(func(n *ir.Node, ancestors ir.Path) VisitResult {
		if n.Key == "commands" {
			return VisitRemove
		}
		return VisitKeep
	})
	if got := string(doc.Dump()); got != "ahoyapi: v2\n" {
		t.Errorf("got %q", got)
	}
}

func TestSelect(t *testing.T) {
	doc := Parse([]byte(ahoyDoc))
	paths, err := doc.Select(`key == "usage"`)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"commands.build.usage"}
	if !slices.Equal(paths, want) {
		t.Errorf("got %v, want %v", paths, want)
	}
	paths, err = doc.Select(`kind == "MappingStart"`)
	if err != nil {
		t.Fatal(err)
	}
	want = []string{"commands", "commands.build"}
	if !slices.Equal(paths, want) {
		t.Errorf("got %v, want %v", paths, want)
	}
}

func TestSelectBadExpr(t *testing.T) {
	doc := Parse([]byte(ahoyDoc))
	if _, err := doc.Select(`key ==`); err == nil {
		t.Error("no error")
	}
}

func TestPatch(t *testing.T) {
	doc := Parse([]byte(ahoyDoc))
	patch := []byte(`[
		{"op": "replace", "path": "/commands/build/usage", "value": "Updated"},
		{"op": "add", "path": "/commands/build/timeout", "value": 30},
		{"op": "remove", "path": "/ahoyapi"}
	]`)
	if err := doc.Patch(patch); err != nil {
		t.Fatal(err)
	}
	v, err := doc.Get(ir.ParsePath("commands.build.usage"))
	if err != nil {
		t.Fatal(err)
	}
	if !v.Equal(ir.FromString("Updated")) {
		t.Errorf("usage = %#v", v)
	}
	v, err = doc.Get(ir.ParsePath("commands.build.timeout"))
	if err != nil {
		t.Fatal(err)
	}
	if !v.Equal(ir.FromInt(30)) {
		t.Errorf("timeout = %#v", v)
	}
	if doc.Has(ir.ParsePath("ahoyapi")) {
		t.Error("ahoyapi survived remove")
	}
}

func TestPatchUnsupportedOp(t *testing.T) {
	doc := Parse([]byte(ahoyDoc))
	err := doc.Patch([]byte(`[{"op": "move", "from": "/a", "path": "/b"}]`))
	if err == nil {
		t.Error("no error")
	}
}

func TestLoadSave(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "in.yaml")
	if err := os.WriteFile(src, []byte(ahoyDoc), 0644); err != nil {
		t.Fatal(err)
	}
	doc, err := Load(src)
	if err != nil {
		t.Fatal(err)
	}
	if err := doc.Set(ir.ParsePath("ahoyapi"), "v3"); err != nil {
		t.Fatal(err)
	}
	dst := filepath.Join(dir, "out.yaml")
	if err := doc.Save(dst); err != nil {
		t.Fatal(err)
	}
	out, err := os.ReadFile(dst)
	if err != nil {
		t.Fatal(err)
	}
	want := "ahoyapi: v3\ncommands:\n  build:\n    usage: Build the site\n"
	if d := cmp.Diff(want, string(out)); d != "" {
		t.Errorf("saved (-want +got):\n%s", d)
	}
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if !errors.Is(err, ErrSourceUnreadable) {
		t.Errorf("got %v", err)
	}
}

func TestDiff(t *testing.T) {
	from := []byte("a: 1\n")
	to := []byte("a: 2\n")
	if Diff(from, to) == "" {
		t.Error("empty diff for differing texts")
	}
	if got := Diff(from, from); got != string(from) {
		t.Errorf("identical texts: %q", got)
	}
}
