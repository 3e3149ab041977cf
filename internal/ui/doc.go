// Package ui implements the terminal front end using Bubble Tea.
//
// # Overview
//
// The UI renders one content document as a scrollable page: a masthead
// with social links, bordered section items, a footer, plus modal
// dialogs, a dismissible notice banner, and a status bar. It follows
// the Elm architecture: a single Model holds all state, Update reacts
// to messages, and View renders the current state.
//
// # Architecture
//
// The model is also the bootstrap sequencer. Startup proceeds in a
// fixed order: the persisted theme is resolved before the first paint,
// the document is fetched behind a spinner, the renderers run when it
// arrives, and the page reveals only after the above-the-fold images
// settle or a deadline passes. Every path out of the sequence ends in
// a visible page, either the rendered document or a failure view.
//
// Rendering is split across files by region: body.go drives the full
// page and tracks line positions, header.go, sections.go, and
// footer.go render their regions, and modal.go renders dialogs over
// the page. The body builder records two indexes as it renders: the
// activatable targets for tab traversal, and the image placeholder
// lines for viewport-proximity lazy loading (images.go).
//
// Asynchronous work (document load, image fetches, Steam handoff)
// runs in commands tagged with a pass counter; results from a
// superseded render pass are dropped, which keeps reload and the
// one-shot bootstrap latch honest.
package ui
