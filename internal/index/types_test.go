package index

import (
	"reflect"
	"testing"
)

func TestMatches(t *testing.T) {
	ix := New()
	ix.Set("a.py", "H1")

	if !ix.Matches("a.py", "H1") {
		t.Error("same digest should match")
	}
	if ix.Matches("a.py", "H2") {
		t.Error("changed digest must not match")
	}
	if ix.Matches("b.py", "") {
		t.Error("absent path must not match even an empty digest")
	}
}

func TestSetAtMostOnce(t *testing.T) {
	ix := &Index{}
	ix.Set("a.py", "H1")
	ix.Set("a.py", "H2")

	if ix.Len() != 1 {
		t.Fatalf("len = %d, want 1", ix.Len())
	}
	if h, _ := ix.Get("a.py"); h != "H2" {
		t.Errorf("a.py = %q, want H2", h)
	}
}

func TestPathsSorted(t *testing.T) {
	ix := New()
	ix.Set("z.py", "1")
	ix.Set("a.py", "2")
	ix.Set("m/b.py", "3")

	want := []string{"a.py", "m/b.py", "z.py"}
	if got := ix.Paths(); !reflect.DeepEqual(got, want) {
		t.Errorf("Paths = %v, want %v", got, want)
	}
}
