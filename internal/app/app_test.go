package app

import (
	"errors"
	"strings"
	"testing"

	"github.com/Gingeh/uff/internal/menu"
	"github.com/Gingeh/uff/internal/testutil"
)

func TestLoadTreeReadsMenuFile(t *testing.T) {
	path := testutil.WriteMenuFile(t, "items:\n  - name: Terminal\n    command: [alacritty]\n")
	tree, err := LoadTree(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(tree.Root().Items) != 1 || tree.Root().Items[0].Name != "Terminal" {
		t.Fatalf("unexpected tree %#v", tree.Root())
	}
}

func TestLoadTreeReportsParseErrors(t *testing.T) {
	path := testutil.WriteMenuFile(t, "items:\n  - name: Broken\n    command: []\n")
	_, err := LoadTree(path)
	if err == nil {
		t.Fatal("expected parse error")
	}
	var parseErr *menu.ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected ParseError, got %T (%v)", err, err)
	}
}

func TestLoadTreeMissingFile(t *testing.T) {
	if _, err := LoadTree("/nonexistent/config.yaml"); err == nil {
		t.Fatal("expected error for missing menu file")
	}
}

func TestDefaultConfigPathShape(t *testing.T) {
	path := DefaultConfigPath()
	if !strings.HasSuffix(path, "/uff/config.yaml") {
		t.Fatalf("unexpected default config path %q", path)
	}
}
