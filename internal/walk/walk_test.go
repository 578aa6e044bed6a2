package walk

import (
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"testing"
)

// makeTree creates files (relative paths) under a fresh temp root.
func makeTree(t *testing.T, files ...string) string {
	t.Helper()
	root := t.TempDir()
	for _, f := range files {
		path := filepath.Join(root, filepath.FromSlash(f))
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(f), 0644); err != nil {
			t.Fatal(err)
		}
	}
	return root
}

func sorted(paths []string) []string {
	out := make([]string, len(paths))
	for i, p := range paths {
		out[i] = filepath.ToSlash(p)
	}
	sort.Strings(out)
	return out
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestAllRecursesAndRelativizes(t *testing.T) {
	root := makeTree(t, "a.py", "pkg/b.py", "pkg/sub/deep/c.go", "README")

	got, err := New(root, nil).All()
	if err != nil {
		t.Fatalf("All: %v", err)
	}
	want := []string{"README", "a.py", "pkg/b.py", "pkg/sub/deep/c.go"}
	if !equal(sorted(got), want) {
		t.Errorf("All = %v, want %v", sorted(got), want)
	}
}

func TestIgnoredDirectoryIsPruned(t *testing.T) {
	root := makeTree(t, "a.py", "node_modules/x.py", "node_modules/inner/y.py", "src/node_modules/z.py")

	got, err := New(root, []string{"node_modules"}).Files("py")
	if err != nil {
		t.Fatalf("Files: %v", err)
	}
	if !equal(sorted(got), []string{"a.py"}) {
		t.Errorf("Files = %v, want [a.py]", sorted(got))
	}
}

func TestIgnoredFileNameAnywhere(t *testing.T) {
	root := makeTree(t, "setup.py", "lib/setup.py", "lib/core.py")

	got, err := New(root, []string{"setup.py"}).Files("py")
	if err != nil {
		t.Fatalf("Files: %v", err)
	}
	if !equal(sorted(got), []string{"lib/core.py"}) {
		t.Errorf("Files = %v, want [lib/core.py]", sorted(got))
	}
}

func TestIgnoreIsNameNotPath(t *testing.T) {
	root := makeTree(t, "lib/vendor.py", "vendor/a.py")

	got, err := New(root, []string{"lib/vendor.py"}).Files("py")
	if err != nil {
		t.Fatalf("Files: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("a path entry must not match anything, got %v", sorted(got))
	}
}

func TestFilesExtensionMatch(t *testing.T) {
	root := makeTree(t, "a.py", "b.PY", "c.pyc", "d.py.bak", "Makefile", ".bashrc", "e.tar.gz")

	tests := []struct {
		ext  string
		want []string
	}{
		{"py", []string{"a.py"}},
		{"PY", []string{"b.PY"}},
		{"gz", []string{"e.tar.gz"}},
		{"", []string{".bashrc", "Makefile"}},
		{"rs", nil},
	}
	w := New(root, nil)
	for _, tt := range tests {
		got, err := w.Files(tt.ext)
		if err != nil {
			t.Fatalf("Files(%q): %v", tt.ext, err)
		}
		if !equal(sorted(got), tt.want) {
			t.Errorf("Files(%q) = %v, want %v", tt.ext, sorted(got), tt.want)
		}
	}
}

func TestExt(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"a.py", "py"},
		{"archive.tar.gz", "gz"},
		{"Makefile", ""},
		{".bashrc", ""},
		{".eslintrc.json", "json"},
		{"trailing.", ""},
	}
	for _, tt := range tests {
		if got := Ext(tt.name); got != tt.want {
			t.Errorf("Ext(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestDeepTree(t *testing.T) {
	parts := make([]string, 200)
	for i := range parts {
		parts[i] = "d"
	}
	deep := strings.Join(parts, "/") + "/leaf.py"
	root := makeTree(t, deep)

	got, err := New(root, nil).Files("py")
	if err != nil {
		t.Fatalf("Files: %v", err)
	}
	if !equal(sorted(got), []string{deep}) {
		t.Errorf("deep file not found")
	}
}

func TestSymlinks(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlink test not reliable on Windows")
	}
	root := makeTree(t, "real/a.py")

	if err := os.Symlink(filepath.Join(root, "real", "a.py"), filepath.Join(root, "link.py")); err != nil {
		t.Fatal(err)
	}
	// Directory link back to the root would loop forever if followed.
	if err := os.Symlink(root, filepath.Join(root, "real", "loop")); err != nil {
		t.Fatal(err)
	}
	if err := os.Symlink(filepath.Join(root, "gone.py"), filepath.Join(root, "dangling.py")); err != nil {
		t.Fatal(err)
	}

	got, err := New(root, nil).Files("py")
	if err != nil {
		t.Fatalf("Files: %v", err)
	}
	want := []string{"link.py", "real/a.py"}
	if !equal(sorted(got), want) {
		t.Errorf("Files = %v, want %v", sorted(got), want)
	}
}

func TestMissingRoot(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "absent"), nil).All()
	if err == nil {
		t.Fatal("expected error for missing root")
	}
}
