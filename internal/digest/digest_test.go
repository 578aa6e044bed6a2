package digest

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestFileKnownValues(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", "d41d8cd98f00b204e9800998ecf8427e"},
		{"a", "0cc175b9c0f1b6a831c399e269772661"},
		{"hello world", "5eb63bbbe01eeed093cb22bb8f5acdc3"},
	}
	dir := t.TempDir()
	for i, tt := range tests {
		path := filepath.Join(dir, fmt.Sprintf("f%d.txt", i))
		if err := os.WriteFile(path, []byte(tt.in), 0644); err != nil {
			t.Fatal(err)
		}
		got, err := File(path)
		if err != nil {
			t.Fatalf("File: %v", err)
		}
		if got != tt.want {
			t.Errorf("File(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestFileBinarySafe(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blob.bin")
	if err := os.WriteFile(path, []byte{0xff, 0xfe, 0x00, 0x80}, 0644); err != nil {
		t.Fatal(err)
	}
	got, err := File(path)
	if err != nil {
		t.Fatalf("invalid UTF-8 must still hash: %v", err)
	}
	if len(got) != 32 {
		t.Errorf("digest length = %d, want 32", len(got))
	}
}

func TestFileDeterministic(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.txt")
	if err := os.WriteFile(path, []byte("same"), 0644); err != nil {
		t.Fatal(err)
	}

	first, err := File(path)
	if err != nil {
		t.Fatal(err)
	}
	second, err := File(path)
	if err != nil {
		t.Fatal(err)
	}
	if first != second {
		t.Errorf("digest changed between reads: %s vs %s", first, second)
	}

	if err := os.WriteFile(path, []byte("different"), 0644); err != nil {
		t.Fatal(err)
	}
	third, err := File(path)
	if err != nil {
		t.Fatal(err)
	}
	if third == first {
		t.Error("digest should change with content")
	}
}

func TestFileMissing(t *testing.T) {
	_, err := File(filepath.Join(t.TempDir(), "missing.py"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !strings.Contains(err.Error(), "opening") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestFileIsDirectory(t *testing.T) {
	if _, err := File(t.TempDir()); err == nil {
		t.Fatal("expected error hashing a directory")
	}
}
