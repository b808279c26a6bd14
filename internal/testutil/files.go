// Package testutil holds helpers shared by package tests.
package testutil

import (
	"os"
	"path/filepath"
	"strconv"
	"testing"
)

// WriteFile writes content to dir/name, creating dir if needed, and returns
// the full path. The test fails immediately on any I/O error.
func WriteFile(t testing.TB, dir, name, content string) string {
	t.Helper()

	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("testutil: create %s: %v", dir, err)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("testutil: write %s: %v", path, err)
	}
	return path
}

// Stock renders a YAML fixture with a single item.
func Stock(name string, sellIn, quality int) string {
	return "items:\n" +
		"  - name: \"" + name + "\"\n" +
		"    sell_in: " + strconv.Itoa(sellIn) + "\n" +
		"    quality: " + strconv.Itoa(quality) + "\n"
}
