package fstheme

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCache_MemoizesLoads(t *testing.T) {
	tmp := t.TempDir()
	p := filepath.Join(tmp, "t.txt")
	if err := os.WriteFile(p, []byte("v1"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	c := NewCache(NewLoader(tmp, WithoutBuiltins()))
	first, err := c.LoadTheme("t")
	if err != nil {
		t.Fatalf("LoadTheme error: %v", err)
	}

	if err := os.WriteFile(p, []byte("v2"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	second, _ := c.LoadTheme("t")
	if first.Body != "v1" || second.Body != "v1" {
		t.Fatalf("expected cached body, got %q then %q", first.Body, second.Body)
	}

	c.Reset()
	third, _ := c.LoadTheme("t")
	if third.Body != "v2" {
		t.Fatalf("expected reload after Reset, got %q", third.Body)
	}
}

func TestCache_DoesNotCacheMisses(t *testing.T) {
	tmp := t.TempDir()
	c := NewCache(NewLoader(tmp, WithoutBuiltins()))

	if _, err := c.LoadTheme("late"); err == nil {
		t.Fatalf("expected miss")
	}
	if err := os.WriteFile(filepath.Join(tmp, "late.txt"), []byte("here"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	th, err := c.LoadTheme("late")
	if err != nil || th.Body != "here" {
		t.Fatalf("expected theme after it was added, got %+v, %v", th, err)
	}
}
