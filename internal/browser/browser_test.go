package browser

import "testing"

func TestCommandFor_PerPlatform(t *testing.T) {
	name, args, err := commandFor("linux", "https://example.com")
	if err != nil {
		t.Fatalf("commandFor(linux) returned error: %v", err)
	}
	if name != "xdg-open" || len(args) != 1 || args[0] != "https://example.com" {
		t.Fatalf("commandFor(linux) = %q %v, want xdg-open [url]", name, args)
	}

	name, _, err = commandFor("darwin", "steam://store/12345")
	if err != nil {
		t.Fatalf("commandFor(darwin) returned error: %v", err)
	}
	if name != "open" {
		t.Fatalf("commandFor(darwin) = %q, want open", name)
	}

	name, args, err = commandFor("windows", "https://example.com")
	if err != nil {
		t.Fatalf("commandFor(windows) returned error: %v", err)
	}
	if name != "cmd" || len(args) != 3 {
		t.Fatalf("commandFor(windows) = %q %v, want cmd /c start", name, args)
	}
}

func TestCommandFor_Rejections(t *testing.T) {
	if _, _, err := commandFor("linux", "  "); err == nil {
		t.Fatalf("commandFor(empty url) returned nil error, want error")
	}
	if _, _, err := commandFor("plan9", "https://example.com"); err == nil {
		t.Fatalf("commandFor(plan9) returned nil error, want error")
	}
}
