package env

import (
	"path/filepath"
	"testing"
)

func TestModDir(t *testing.T) {
	dir := ModDir()
	if dir == "" {
		t.Fatal("ModDir() returned empty path")
	}
	if got := filepath.Base(dir); got != ".gooseboy" {
		t.Errorf("ModDir() base = %q, want %q", got, ".gooseboy")
	}
	if !filepath.IsAbs(dir) {
		t.Errorf("ModDir() = %q, want absolute path", dir)
	}
}
