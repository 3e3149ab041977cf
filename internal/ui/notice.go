package ui

import (
	"strings"

	"github.com/softglow/foyer/internal/content"
)

// noticeVisible reports whether the notice banner should render.
// Disabled notices and already-dismissed notices are invisible to the
// rest of the page.
func noticeVisible(n *content.CookieNotice, dismissed bool) bool {
	return n != nil && n.Enabled && !dismissed && strings.TrimSpace(n.Message) != ""
}

// renderNotice renders the one-time notice banner pinned under the
// page. Dismissal persists a sentinel in prefs and the banner never
// returns.
func renderNotice(n *content.CookieNotice, st Styles, width int) string {
	parts := []string{n.Message}
	if strings.TrimSpace(n.MoreText) != "" {
		more := n.MoreText
		if strings.TrimSpace(n.MoreLink) != "" {
			more += " (" + n.MoreLink + ")"
		}
		parts = append(parts, more)
	}

	button := n.ButtonText
	if strings.TrimSpace(button) == "" {
		button = "OK"
	}
	parts = append(parts, "["+button+": press c]")

	return st.Banner.Width(width).Render(strings.Join(parts, "  "))
}
