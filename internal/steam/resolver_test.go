package steam

import (
	"context"
	"net/url"
	"sync/atomic"
	"testing"
	"time"
)

func TestDeepLink_Classification(t *testing.T) {
	cases := []struct {
		in       string
		wantURI  string
		wantKind LinkKind
	}{
		{"https://store.steampowered.com/app/12345/Rift/", "steam://store/12345", KindStore},
		{"https://www.store.steampowered.com/app/7/", "steam://store/7", KindStore},
		{"https://steamcommunity.com/app/440/discussions/", "steam://store/440", KindStore},
		{
			"https://store.steampowered.com/search/?term=rift",
			"steam://openurl/" + url.QueryEscape("https://store.steampowered.com/search/?term=rift"),
			KindOpenURL,
		},
		{
			"https://steamcommunity.com/groups/acme",
			"steam://openurl/" + url.QueryEscape("https://steamcommunity.com/groups/acme"),
			KindOpenURL,
		},
		// The path must carry digits for the narrow form.
		{
			"https://store.steampowered.com/app/rift/",
			"steam://openurl/" + url.QueryEscape("https://store.steampowered.com/app/rift/"),
			KindOpenURL,
		},
		{"https://example.com/app/12345/", "", KindWeb},
		{"https://twitter.com/acme", "", KindWeb},
		{"", "", KindNone},
		{"   ", "", KindNone},
		{"://bad", "", KindNone},
		{"mailto:hi@example.com", "", KindNone},
	}

	for _, tc := range cases {
		uri, kind := DeepLink(tc.in)
		if kind != tc.wantKind {
			t.Fatalf("DeepLink(%q) kind = %d, want %d", tc.in, kind, tc.wantKind)
		}
		if uri != tc.wantURI {
			t.Fatalf("DeepLink(%q) uri = %q, want %q", tc.in, uri, tc.wantURI)
		}
	}
}

func TestResolve_EmptyURLIsNoOp(t *testing.T) {
	r := &Resolver{
		Launch:  func(string) error { t.Fatalf("Launch called"); return nil },
		OpenWeb: func(string) error { t.Fatalf("OpenWeb called"); return nil },
		Window:  time.Millisecond,
	}
	outcome, err := r.Resolve(context.Background(), "", nil)
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if outcome != OutcomeNone {
		t.Fatalf("outcome = %d, want OutcomeNone", outcome)
	}
}

func TestResolve_NonSteamOpensDirectly(t *testing.T) {
	var opened []string
	r := &Resolver{
		Launch:  func(string) error { t.Fatalf("Launch called for non-Steam URL"); return nil },
		OpenWeb: func(u string) error { opened = append(opened, u); return nil },
		Window:  time.Millisecond,
	}
	outcome, err := r.Resolve(context.Background(), "https://twitter.com/acme", nil)
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if outcome != OutcomeWebDirect {
		t.Fatalf("outcome = %d, want OutcomeWebDirect", outcome)
	}
	if len(opened) != 1 || opened[0] != "https://twitter.com/acme" {
		t.Fatalf("opened = %v, want the original URL once", opened)
	}
}

func TestResolve_AcceptedBeforeTimeoutNeverOpensWeb(t *testing.T) {
	var launched []string
	var webOpens int32
	accepted := make(chan struct{}, 1)
	accepted <- struct{}{}

	r := &Resolver{
		Launch:  func(u string) error { launched = append(launched, u); return nil },
		OpenWeb: func(string) error { atomic.AddInt32(&webOpens, 1); return nil },
		Window:  time.Hour, // timeout must not be what commits
	}

	outcome, err := r.Resolve(context.Background(), "https://store.steampowered.com/app/12345/Rift/", accepted)
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if outcome != OutcomeAccepted {
		t.Fatalf("outcome = %d, want OutcomeAccepted", outcome)
	}
	if len(launched) != 1 || launched[0] != "steam://store/12345" {
		t.Fatalf("launched = %v, want the narrow deep link once", launched)
	}
	if n := atomic.LoadInt32(&webOpens); n != 0 {
		t.Fatalf("web opens = %d, want 0 when accepted", n)
	}
}

func TestResolve_TimeoutFallsBackExactlyOnce(t *testing.T) {
	var opened []string
	r := &Resolver{
		Launch:  func(string) error { return nil },
		OpenWeb: func(u string) error { opened = append(opened, u); return nil },
		Window:  5 * time.Millisecond,
	}

	accepted := make(chan struct{}) // never signalled
	original := "https://store.steampowered.com/search/?term=rift"
	outcome, err := r.Resolve(context.Background(), original, accepted)
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if outcome != OutcomeFallback {
		t.Fatalf("outcome = %d, want OutcomeFallback", outcome)
	}
	if len(opened) != 1 || opened[0] != original {
		t.Fatalf("opened = %v, want original URL exactly once", opened)
	}

	// A late accept signal after commitment must go nowhere; the
	// channel simply has no listener anymore.
	select {
	case accepted <- struct{}{}:
		t.Fatalf("late signal was consumed after commitment")
	default:
	}
}

func TestResolve_LaunchFailureDegradesToWeb(t *testing.T) {
	var opened int
	r := &Resolver{
		Launch:  func(string) error { return context.DeadlineExceeded },
		OpenWeb: func(string) error { opened++; return nil },
		Window:  time.Hour,
	}
	outcome, err := r.Resolve(context.Background(), "https://steamcommunity.com/groups/acme", nil)
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if outcome != OutcomeFallback || opened != 1 {
		t.Fatalf("outcome = %d opened = %d, want fallback with one open", outcome, opened)
	}
}

func TestResolve_ContextCancelCommitsNothing(t *testing.T) {
	var opened int32
	r := &Resolver{
		Launch:  func(string) error { return nil },
		OpenWeb: func(string) error { atomic.AddInt32(&opened, 1); return nil },
		Window:  time.Hour,
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	outcome, err := r.Resolve(ctx, "https://store.steampowered.com/app/12345/", make(chan struct{}))
	if err == nil {
		t.Fatalf("Resolve returned nil error, want context error")
	}
	if outcome != OutcomeNone {
		t.Fatalf("outcome = %d, want OutcomeNone", outcome)
	}
	if n := atomic.LoadInt32(&opened); n != 0 {
		t.Fatalf("web opens = %d, want 0 on cancellation", n)
	}
}

func TestNewResolver_WindowDefault(t *testing.T) {
	r := NewResolver(0)
	if r.Window != DefaultWindow {
		t.Fatalf("Window = %v, want %v", r.Window, DefaultWindow)
	}
	r = NewResolver(300 * time.Millisecond)
	if r.Window != 300*time.Millisecond {
		t.Fatalf("Window = %v, want 300ms", r.Window)
	}
}
