// Package steam hands Steam web links off to the native Steam client.
//
// # Overview
//
// Links in the content document point at Steam's web surfaces
// (store.steampowered.com, steamcommunity.com). When the user has the
// Steam client installed, opening the native client is a much better
// experience than a browser tab, so the package derives a steam://
// deep link and tries that first, falling back to the web URL.
//
// # Deep Link Forms
//
// Two protocol URI shapes are emitted (never parsed):
//
//   - steam://store/<id> for store pages carrying a numeric app id in
//     an /app/<digits>/ path segment
//   - steam://openurl/<percent-encoded-url> for every other recognized
//     Steam URL (search pages, profiles, groups, discussions)
//
// Non-Steam URLs are opened directly in the browser with no protocol
// attempt. Empty or malformed URLs open nothing.
//
// # Acceptance Heuristic
//
// No platform reports whether a protocol launch actually reached an
// application. The only observable side effect of the Steam client
// taking over is the terminal losing input focus. Resolve therefore
// races three signals:
//
//   - the accepted channel (terminal focus lost) → handoff accepted
//   - a fixed timeout → handoff declined, open the web URL
//   - context cancellation → nothing committed
//
// The race is a single select, so exactly one branch commits and
// late-arriving signals are structurally ignored. The timer is always
// stopped on exit.
//
// # Wiring
//
// The UI owns focus reporting (tea.WithReportFocus) and forwards blur
// events into the accepted channel of the pending attempt. Launch and
// OpenWeb default to the system handler via the browser package and
// are injectable for tests.
package steam
