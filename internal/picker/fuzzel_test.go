package picker

import (
	"context"
	"os"
	"os/exec"
	"testing"

	"github.com/Gingeh/uff/internal/testutil"
)

func requireShell(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("skipping: sh not available")
	}
}

func TestPickReturnsSelectionAndFeedsStdin(t *testing.T) {
	requireShell(t)
	bin, stdinPath := testutil.FakePicker(t, "Terminal", 0)
	f := NewFuzzel(bin)

	input := Format([]Row{{Name: "Terminal"}, {Name: "Dev"}})
	out, err := f.Pick(context.Background(), View{Input: input, Lines: 2})
	if err != nil {
		t.Fatalf("pick failed: %v", err)
	}
	if out != "Terminal\n" {
		t.Fatalf("expected selection line, got %q", out)
	}

	fed, err := os.ReadFile(stdinPath)
	if err != nil {
		t.Fatalf("failed to read captured stdin: %v", err)
	}
	if string(fed) != string(input) {
		t.Fatalf("expected formatted lines on stdin, got %q", string(fed))
	}
}

func TestPickDismissalExitCodeIsNotAnError(t *testing.T) {
	requireShell(t)
	bin, _ := testutil.FakePicker(t, "", 2)
	f := NewFuzzel(bin)

	out, err := f.Pick(context.Background(), View{Input: []byte("Terminal\n"), Lines: 1})
	if err != nil {
		t.Fatalf("expected dismissal to be normal, got %v", err)
	}
	if out != "" {
		t.Fatalf("expected no output on dismissal, got %q", out)
	}
}

func TestPickMissingBinaryIsFatal(t *testing.T) {
	f := NewFuzzel("/nonexistent/fuzzel-binary")
	if _, err := f.Pick(context.Background(), View{Input: []byte("x\n"), Lines: 1}); err == nil {
		t.Fatal("expected launch failure for missing binary")
	}
}

func TestNewFuzzelDefaultsBinary(t *testing.T) {
	if f := NewFuzzel(""); f.Binary != DefaultBinary {
		t.Fatalf("expected default binary, got %q", f.Binary)
	}
}
