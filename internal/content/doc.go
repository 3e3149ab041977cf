// Package content defines the content document schema and its HTTP loader.
//
// # Overview
//
// A page is described by a single JSON document. This package owns the
// strongly-typed representation of that document and the client that
// fetches it. Everything downstream (renderers, modals, the notice
// banner) consumes the Document value produced here and never touches
// the wire format again.
//
// # Architecture
//
// The package is split into two files:
//
//   - types.go: Document and its child records
//   - client.go: single-shot HTTP loader and typed errors
//
// # Document Shape
//
// Every top-level field of Document is optional. A renderer whose field
// is absent simply does not run; absence is never an error. Unknown
// fields at any level are ignored so the document can grow without
// breaking older builds.
//
// Text-bearing fields (Item.Text, Modal.Content) use the Paragraphs
// type, which accepts either a plain string (embedded newlines delimit
// paragraphs) or an explicit array of paragraph strings. Both spellings
// decode to the same value:
//
//	"text": "a\nb"      → Paragraphs{"a", "b"}
//	"text": ["a", "b"]  → Paragraphs{"a", "b"}
//
// # Loading
//
//	client, err := content.NewClient("https://example.com/content.json")
//	if err != nil {
//		log.Fatalf("bad content url: %v", err)
//	}
//	doc, err := client.Load(ctx)
//
// Load is single-shot: no retry, no caching. The caller (the bootstrap
// sequencer) decides recovery. Failures are typed:
//
//   - *FetchError: transport failure or non-2xx status
//   - *ParseError: body is not a well-formed document
//
// Both unwrap to their underlying cause.
//
// # Invariants
//
// Modal ids are expected to be unique within a document; Document.Modal
// resolves an id to the first matching modal, so duplicate ids degrade
// to first-wins rather than failing. A SocialLink or FooterLink with an
// empty URL is a hidden entry, not an error.
package content
