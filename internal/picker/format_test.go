package picker

import "testing"

func TestFormatPlainLines(t *testing.T) {
	got := Format([]Row{{Name: "Terminal"}, {Name: "Dev"}})
	want := "Terminal\nDev\n"
	if string(got) != want {
		t.Fatalf("expected %q, got %q", want, string(got))
	}
}

func TestFormatAttachesIconOutOfBand(t *testing.T) {
	got := Format([]Row{
		{Name: "Terminal", IconPath: "/icons/terminal.png"},
		{Name: "Dev"},
	})
	want := "Terminal\x00icon\x1f/icons/terminal.png\nDev\n"
	if string(got) != want {
		t.Fatalf("expected %q, got %q", want, string(got))
	}
}

func TestFormatPreservesConfigOrder(t *testing.T) {
	rows := []Row{{Name: "z"}, {Name: "a"}, {Name: "m"}}
	if got := string(Format(rows)); got != "z\na\nm\n" {
		t.Fatalf("expected config order preserved, got %q", got)
	}
}

func TestFormatEmptyMenu(t *testing.T) {
	if got := Format(nil); len(got) != 0 {
		t.Fatalf("expected no output for empty menu, got %q", string(got))
	}
}
