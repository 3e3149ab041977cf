package ui

import (
	"log"

	"github.com/charmbracelet/lipgloss"

	"github.com/softglow/foyer/internal/content"
)

// openModal is one entry on the modal stack. Modals stack rather than
// replace each other; only the top one is interactive.
type openModal struct {
	id         string
	userOpened bool // user opens push history; programmatic opens replace
	prevFocus  int  // focus target restored on close
}

// modalStack tracks open modals plus the page's fragment, the analogue
// of the URL fragment used for modal deep links.
type modalStack struct {
	open     []openModal
	fragment string
}

// Open transitions a modal to open. It requires the id to exist in the
// document; otherwise it logs and no-ops. prevFocus is the target that
// regains focus on close. User opens push the fragment; programmatic
// opens (startup deep link, reload restore) replace it.
func (s *modalStack) Open(doc *content.Document, id string, user bool, prevFocus int) bool {
	if doc.Modal(id) == nil {
		log.Printf("modal %q not found, ignoring open", id)
		return false
	}
	if top := s.Top(); top != nil && top.id == id {
		return false // already open and on top
	}
	s.open = append(s.open, openModal{id: id, userOpened: user, prevFocus: prevFocus})
	s.fragment = id
	return true
}

// Close pops the top modal and returns the focus target to restore.
// The fragment is cleared only if it still names the closed modal;
// with stacked modals it reverts to the one underneath.
func (s *modalStack) Close() (prevFocus int, ok bool) {
	if len(s.open) == 0 {
		return 0, false
	}
	top := s.open[len(s.open)-1]
	s.open = s.open[:len(s.open)-1]
	if s.fragment == top.id {
		s.fragment = ""
		if next := s.Top(); next != nil {
			s.fragment = next.id
		}
	}
	return top.prevFocus, true
}

// CloseAll clears the stack, used when a fresh document arrives.
func (s *modalStack) CloseAll() {
	s.open = nil
	s.fragment = ""
}

// Top returns the active modal entry, or nil.
func (s *modalStack) Top() *openModal {
	if len(s.open) == 0 {
		return nil
	}
	return &s.open[len(s.open)-1]
}

// Fragment returns the current fragment value ("" when no modal is
// open).
func (s *modalStack) Fragment() string {
	return s.fragment
}

const (
	modalMaxWidth = 72
	modalMargin   = 8
)

// renderModalOverlay renders the top modal as a centered dialog over a
// blank page area. Background content is suspended (not scrollable)
// while a modal is open.
func renderModalOverlay(m *content.Modal, st Styles, width, height int) string {
	dialog := renderModalDialog(m, st, width)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, dialog)
}

func renderModalDialog(m *content.Modal, st Styles, width int) string {
	w := min(modalMaxWidth, width-modalMargin)
	if w < 20 {
		w = max(width-2, 10)
	}

	rows := []string{st.Title.Width(w).Render(m.Title)}
	for _, para := range m.Content {
		rows = append(rows, st.Text.Width(w).Render(para))
	}
	rows = append(rows, "", st.MutedText.Render("esc to close"))

	body := ""
	for i, r := range rows {
		if i > 0 {
			body += "\n"
		}
		body += r
	}
	return st.ModalFrame.Render(body)
}

// modalBounds returns the screen rectangle of the rendered dialog so
// mouse clicks can be classified as inside or outside. Clicking
// outside the dialog closes it.
func modalBounds(m *content.Modal, st Styles, width, height int) (x0, y0, x1, y1 int) {
	dialog := renderModalDialog(m, st, width)
	dw, dh := lipgloss.Size(dialog)
	x0 = (width - dw) / 2
	y0 = (height - dh) / 2
	return x0, y0, x0 + dw, y0 + dh
}
