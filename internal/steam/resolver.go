package steam

import (
	"context"
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/softglow/foyer/internal/browser"
)

// LinkKind classifies a URL for handoff purposes.
type LinkKind int

const (
	// KindNone means the URL is empty or malformed; nothing is opened.
	KindNone LinkKind = iota
	// KindWeb means a normal web URL outside Steam's hosts; it opens
	// directly in the browser with no protocol attempt.
	KindWeb
	// KindStore means a store page with a numeric app id; the narrow
	// steam://store/<id> deep link applies.
	KindStore
	// KindOpenURL means a recognized Steam URL without an app id; the
	// generic steam://openurl/<encoded> deep link applies.
	KindOpenURL
)

// steamHosts are the web surfaces the native client can take over.
var steamHosts = map[string]struct{}{
	"store.steampowered.com": {},
	"steamcommunity.com":     {},
}

var appIDPattern = regexp.MustCompile(`(?:^|/)app/(\d+)(?:/|$)`)

// DeepLink classifies rawURL and, for Steam URLs, derives the native
// protocol URI. The returned URI is empty unless the kind is KindStore
// or KindOpenURL.
func DeepLink(rawURL string) (string, LinkKind) {
	trimmed := strings.TrimSpace(rawURL)
	if trimmed == "" {
		return "", KindNone
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return "", KindNone
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", KindNone
	}
	host := strings.ToLower(strings.TrimPrefix(u.Hostname(), "www."))
	if _, ok := steamHosts[host]; !ok {
		return "", KindWeb
	}
	if m := appIDPattern.FindStringSubmatch(u.Path); m != nil {
		return "steam://store/" + m[1], KindStore
	}
	return "steam://openurl/" + url.QueryEscape(trimmed), KindOpenURL
}

// Outcome is the committed result of a handoff attempt. Exactly one
// outcome is ever acted on per Resolve call.
type Outcome int

const (
	// OutcomeNone: nothing was opened (empty/malformed URL, or the
	// attempt was cancelled before committing).
	OutcomeNone Outcome = iota
	// OutcomeWebDirect: a non-Steam URL opened straight in the browser.
	OutcomeWebDirect
	// OutcomeAccepted: the native client took over; nothing further.
	OutcomeAccepted
	// OutcomeFallback: the handoff was declined; the original web URL
	// opened in the browser.
	OutcomeFallback
)

// Resolver attempts Steam deep-link handoffs with a browser fallback.
// The zero value is not usable; construct with NewResolver.
type Resolver struct {
	// Launch fires a protocol URI at the desktop's handler.
	Launch func(uri string) error
	// OpenWeb opens a plain web URL in the default browser.
	OpenWeb func(url string) error
	// Window bounds the wait for the native client to accept.
	Window time.Duration
}

// DefaultWindow is how long a handoff may remain unacknowledged before
// it is treated as declined.
const DefaultWindow = 150 * time.Millisecond

// NewResolver builds a Resolver using the system browser/protocol
// handler. A non-positive window falls back to DefaultWindow.
func NewResolver(window time.Duration) *Resolver {
	if window <= 0 {
		window = DefaultWindow
	}
	return &Resolver{
		Launch:  browser.Open,
		OpenWeb: browser.Open,
		Window:  window,
	}
}

// Resolve classifies rawURL and performs the handoff. There is no API
// that reports whether a native launch succeeded, so acceptance is
// inferred: accepted carries a signal when the terminal loses focus
// (the Steam client taking over the desktop). Resolve blocks for at
// most Window and commits exactly one outcome; signals arriving after
// commitment go nowhere.
func (r *Resolver) Resolve(ctx context.Context, rawURL string, accepted <-chan struct{}) (Outcome, error) {
	uri, kind := DeepLink(rawURL)
	switch kind {
	case KindNone:
		return OutcomeNone, nil
	case KindWeb:
		if err := r.OpenWeb(strings.TrimSpace(rawURL)); err != nil {
			return OutcomeNone, fmt.Errorf("open url: %w", err)
		}
		return OutcomeWebDirect, nil
	}

	web := strings.TrimSpace(rawURL)
	if err := r.Launch(uri); err != nil {
		// No protocol handler at all; the web page is still reachable.
		if err := r.OpenWeb(web); err != nil {
			return OutcomeNone, fmt.Errorf("open fallback url: %w", err)
		}
		return OutcomeFallback, nil
	}

	timer := time.NewTimer(r.Window)
	defer timer.Stop()

	select {
	case <-accepted:
		return OutcomeAccepted, nil
	case <-timer.C:
		if err := r.OpenWeb(web); err != nil {
			return OutcomeNone, fmt.Errorf("open fallback url: %w", err)
		}
		return OutcomeFallback, nil
	case <-ctx.Done():
		return OutcomeNone, ctx.Err()
	}
}
