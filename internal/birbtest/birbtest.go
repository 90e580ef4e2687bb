// Package birbtest creates repository trees and configuration files for
// tests.
package birbtest

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/birb-linux/birb"
)

// WriteSources writes lines, newline-terminated, to a sources configuration
// file in a temporary directory and returns its path.
func WriteSources(t testing.TB, lines ...string) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), "birb-sources.conf")
	WriteFile(t, fn, strings.Join(lines, "\n")+"\n")
	return fn
}

// WriteSeed creates repoPath/pkg/seed.sh with the given content.
func WriteSeed(t testing.TB, repoPath, pkg, content string) string {
	t.Helper()
	fn := birb.SeedPath(repoPath, pkg)
	WriteFile(t, fn, content)
	return fn
}

// WriteFile wraps os.WriteFile, creating parent directories, and fails the
// test on failure.
func WriteFile(t testing.TB, fn, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(fn), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(fn, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

// RemoveAll wraps os.RemoveAll and fails the test on failure.
func RemoveAll(t testing.TB, path string) {
	t.Helper()
	if err := os.RemoveAll(path); err != nil {
		t.Fatalf("cleanup: %v", err)
	}
}
