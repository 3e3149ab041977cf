package ui

import (
	"strings"

	"github.com/softglow/foyer/internal/content"
)

// renderMasthead renders the page header: logo, title, subtitle, and
// the social link row. Social entries with an empty URL are hidden
// slots and render nothing.
func renderMasthead(bb *bodyBuilder, h *content.Header, st Styles, width int, focusIdx int) {
	if logo := bb.imagePlaceholder(resolveAsset(bb, h.Logo), st); logo != "" {
		bb.block(logo)
	}

	bb.block(st.Title.Width(width).Render(h.Title))
	if strings.TrimSpace(h.Subtitle) != "" {
		bb.block(st.Subtitle.Width(width).Render(h.Subtitle))
	}

	links := renderSocialRow(bb, h.SocialLinks, st, focusIdx)
	if links != "" {
		bb.blank()
		bb.block(links)
	}
	bb.blank()
}

// renderSocialRow renders the masthead links on one line and records a
// focus target per visible link.
func renderSocialRow(bb *bodyBuilder, links []content.SocialLink, st Styles, focusIdx int) string {
	var parts []string
	for _, link := range links {
		if strings.TrimSpace(link.URL) == "" {
			continue
		}
		idx := len(bb.targets)
		bb.addTarget(target{
			kind:  targetSocial,
			label: link.Name,
			url:   link.URL,
			line:  bb.line + 1, // the row renders one blank line below bb.line
		})

		style := st.Link
		if idx == focusIdx {
			style = st.Link.Bold(true).Reverse(true)
		}
		parts = append(parts, style.Render(glyphFor(link.Icon)+link.Name))
	}
	return strings.Join(parts, st.FaintText.Render("  ·  "))
}

// glyphFor maps the document's symbolic icon identifiers to terminal
// glyphs. Unknown identifiers render without a glyph.
func glyphFor(icon string) string {
	switch {
	case strings.Contains(icon, "steam"):
		return "◉ "
	case strings.Contains(icon, "discord"):
		return "◈ "
	case strings.Contains(icon, "twitter"), strings.Contains(icon, "x-"):
		return "✕ "
	case strings.Contains(icon, "youtube"):
		return "▶ "
	case strings.Contains(icon, "github"):
		return "⌥ "
	case strings.Contains(icon, "envelope"), strings.Contains(icon, "mail"):
		return "✉ "
	default:
		return ""
	}
}

func resolveAsset(bb *bodyBuilder, path string) string {
	if bb.av == nil || strings.TrimSpace(path) == "" {
		return ""
	}
	return bb.av.Resolve(path)
}
