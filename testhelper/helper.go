// Package testhelper provides shared fixtures and text helpers for tests.
package testhelper

import (
	"embed"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
)

//go:embed fixtures/*.opt
var fixtures embed.FS

var leadingIndent = regexp.MustCompile(`^[ \t]+`)

// TrimIndent removes the first line of src and the indentation of the second
// line from every following line, so option files can be written inline in
// tests with the surrounding Go indentation.
func TrimIndent(t *testing.T, src string) string {
	t.Helper()

	lines := strings.Split(src, "\n")

	var indent string
	if len(lines) > 1 {
		indent = leadingIndent.FindString(lines[1])
	}

	for i, line := range lines {
		lines[i] = strings.TrimPrefix(line, indent)
	}

	return strings.Join(lines[1:], "\n")
}

// Fixture returns the content of fixtures/<name>.
func Fixture(t *testing.T, name string) string {
	t.Helper()

	data, err := fs.ReadFile(fixtures, "fixtures/"+name)
	if err != nil {
		t.Fatalf("fixture %s: %v", name, err)
	}

	return string(data)
}

// FixtureFile writes fixtures/<name> into a temporary directory and returns
// its path, for code that reads from the file system.
func FixtureFile(t *testing.T, name string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(Fixture(t, name)), 0o644); err != nil {
		t.Fatalf("write fixture %s: %v", name, err)
	}

	return path
}
