package testutil

import (
	"os"
	"path/filepath"
	"strconv"
	"testing"
)

// WriteIconTree creates the given relative files under a fresh temp dir and
// returns its path. File contents are a placeholder byte; icon resolution
// only checks existence.
func WriteIconTree(t *testing.T, files ...string) string {
	t.Helper()
	dir := t.TempDir()
	for _, rel := range files {
		path := filepath.Join(dir, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("failed to create icon dir: %v", err)
		}
		if err := os.WriteFile(path, []byte{'x'}, 0o644); err != nil {
			t.Fatalf("failed to write icon file: %v", err)
		}
	}
	return dir
}

// WriteMenuFile stores a YAML menu document in a temp dir and returns its path.
func WriteMenuFile(t *testing.T, document string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(document), 0o644); err != nil {
		t.Fatalf("failed to write menu file: %v", err)
	}
	return path
}

// FakePicker writes an executable shell script that ignores stdin and prints
// the given line, standing in for fuzzel in process-level tests. The second
// return value is a file that captures the script's stdin for inspection.
func FakePicker(t *testing.T, output string, exitCode int) (string, string) {
	t.Helper()
	dir := t.TempDir()
	stdinPath := filepath.Join(dir, "stdin")
	script := "#!/bin/sh\ncat >" + stdinPath + "\n"
	if output != "" {
		script += "printf '%s\\n' " + shellQuote(output) + "\n"
	}
	if exitCode != 0 {
		script += "exit " + strconv.Itoa(exitCode) + "\n"
	}
	path := filepath.Join(dir, "fake-fuzzel")
	if err := os.WriteFile(path, []byte(script), 0o755); err != nil {
		t.Fatalf("failed to write fake picker: %v", err)
	}
	return path, stdinPath
}

func shellQuote(s string) string {
	out := "'"
	for _, r := range s {
		if r == '\'' {
			out += `'\''`
			continue
		}
		out += string(r)
	}
	return out + "'"
}
