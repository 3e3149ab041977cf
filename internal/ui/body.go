package ui

import (
	"fmt"
	"log"
	"strings"

	"github.com/softglow/foyer/internal/assets"
	"github.com/softglow/foyer/internal/content"
)

// targetKind distinguishes the activatable things on the page.
type targetKind int

const (
	targetSocial targetKind = iota
	targetItem
	targetFooterLink
)

// target is one keyboard-activatable element. URL may be empty (the
// slot renders nothing interactive), a "#id" fragment addressing a
// modal, or a web/Steam URL.
type target struct {
	kind  targetKind
	label string // accessibility label, derived from heading/name
	url   string
	line  int // first body line occupied by the target
}

// imageLine ties a rendered image placeholder to its body line so the
// lazy loader can judge viewport proximity.
type imageLine struct {
	line int
	url  string // resolved asset URL
}

// bodyView is one fully rendered page body plus the indexes the model
// needs for focus traversal and lazy image loading.
type bodyView struct {
	content string
	targets []target
	images  []imageLine
}

// assetView is the read side of the asset cache used while rendering.
type assetView interface {
	Resolve(path string) string
	Status(assetURL string) assets.Status
	Info(assetURL string) (assets.Info, bool)
}

// bodyBuilder accumulates blocks while tracking line positions.
type bodyBuilder struct {
	b       strings.Builder
	line    int
	av      assetView
	targets []target
	images  []imageLine
}

// block appends s followed by a newline and advances the line counter.
func (bb *bodyBuilder) block(s string) {
	bb.b.WriteString(s)
	bb.b.WriteByte('\n')
	bb.line += strings.Count(s, "\n") + 1
}

func (bb *bodyBuilder) blank() {
	bb.block("")
}

func (bb *bodyBuilder) addTarget(t target) {
	bb.targets = append(bb.targets, t)
}

func (bb *bodyBuilder) view() bodyView {
	return bodyView{
		content: strings.TrimRight(bb.b.String(), "\n"),
		targets: bb.targets,
		images:  bb.images,
	}
}

// renderBody renders the whole scrollable page: masthead, sections,
// footer. Each region is independent; an absent field skips only its
// own region. focusIdx is the index (into the returned targets) of the
// currently focused element, or -1.
func renderBody(doc *content.Document, st Styles, width int, av assetView, focusIdx int) bodyView {
	bb := &bodyBuilder{av: av}
	if doc == nil {
		return bb.view()
	}
	if width <= 0 {
		// No region to paint into; sibling renderers are unaffected
		// and the next resize redraws everything.
		log.Printf("render: zero-width body region, skipping")
		return bb.view()
	}

	if doc.Header != nil {
		renderMasthead(bb, doc.Header, st, width, focusIdx)
	}
	renderSections(bb, doc.Sections, st, width, focusIdx)
	if doc.Footer != nil {
		renderFooter(bb, doc.Footer, st, width, focusIdx)
	}
	return bb.view()
}

// imagePlaceholder returns the placeholder line for an asset and
// records its position, or "" when the asset failed: a broken image is
// hidden rather than rendered broken.
func (bb *bodyBuilder) imagePlaceholder(assetURL string, st Styles) string {
	if assetURL == "" {
		return ""
	}
	status := assets.StatusUnknown
	if bb.av != nil {
		status = bb.av.Status(assetURL)
	}
	if status == assets.StatusFailed {
		return ""
	}

	name := baseName(assetURL)
	caption := "▦ " + name
	switch status {
	case assets.StatusLoaded:
		if info, ok := bb.av.Info(assetURL); ok {
			caption = fmt.Sprintf("▦ %s (%d×%d)", name, info.Width, info.Height)
		}
	case assets.StatusLoading:
		caption += " …"
	}
	bb.images = append(bb.images, imageLine{line: bb.line, url: assetURL})
	return st.FaintText.Render(caption)
}
