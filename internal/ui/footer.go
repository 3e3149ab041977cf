package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/softglow/foyer/internal/content"
)

// renderFooter renders the footer: rule, rights line, optional
// additional text, optional link row.
func renderFooter(bb *bodyBuilder, f *content.Footer, st Styles, width int, focusIdx int) {
	bb.block(st.FaintText.Render(strings.Repeat("─", max(width, 1))))

	year := footerYear(f.Year, time.Now())
	rights := fmt.Sprintf("© %s %s. All rights reserved.", year, f.CompanyName)
	bb.block(st.MutedText.Width(width).Render(rights))

	if strings.TrimSpace(f.AdditionalText) != "" {
		bb.block(st.FaintText.Width(width).Render(f.AdditionalText))
	}

	if row := renderFooterLinks(bb, f.Links, st, focusIdx); row != "" {
		bb.block(row)
	}
}

// footerYear resolves the display year: "auto" (or absent) computes
// the current calendar year at render time, anything else is literal.
func footerYear(year string, now time.Time) string {
	trimmed := strings.TrimSpace(year)
	if trimmed == "" || strings.EqualFold(trimmed, "auto") {
		return fmt.Sprintf("%d", now.Year())
	}
	return trimmed
}

// renderFooterLinks renders the footer link row. Fragment URLs ("#id")
// open the matching modal on activation; web URLs open in the browser.
func renderFooterLinks(bb *bodyBuilder, links []content.FooterLink, st Styles, focusIdx int) string {
	var parts []string
	for _, link := range links {
		if strings.TrimSpace(link.URL) == "" {
			continue
		}
		idx := len(bb.targets)
		bb.addTarget(target{
			kind:  targetFooterLink,
			label: link.Name,
			url:   link.URL,
			line:  bb.line,
		})

		style := st.Link
		if idx == focusIdx {
			style = st.Link.Bold(true).Reverse(true)
		}
		parts = append(parts, style.Render(link.Name))
	}
	return strings.Join(parts, st.FaintText.Render("  ·  "))
}
