package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/softglow/foyer/internal/content"
)

// metaTitle picks the window title for a document: meta.title when
// present, otherwise the header title.
func metaTitle(doc *content.Document) string {
	if doc == nil {
		return ""
	}
	if doc.Meta != nil && strings.TrimSpace(doc.Meta.Title) != "" {
		return doc.Meta.Title
	}
	if doc.Header != nil {
		return doc.Header.Title
	}
	return ""
}

// applyMetaCmd updates the terminal window title. Re-invocation
// overwrites the previous title, so repeated loads stay idempotent.
// Description and preview fields have no terminal surface and are
// intentionally unused here.
func applyMetaCmd(doc *content.Document) tea.Cmd {
	title := strings.TrimSpace(metaTitle(doc))
	if title == "" {
		return nil
	}
	return tea.SetWindowTitle(title)
}
