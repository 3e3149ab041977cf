package content

import (
	"encoding/json"
	"testing"
)

func TestParagraphs_StringAndListAreEquivalent(t *testing.T) {
	var fromString, fromList Item
	if err := json.Unmarshal([]byte(`{"text": "a\nb"}`), &fromString); err != nil {
		t.Fatalf("unmarshal string form: %v", err)
	}
	if err := json.Unmarshal([]byte(`{"text": ["a", "b"]}`), &fromList); err != nil {
		t.Fatalf("unmarshal list form: %v", err)
	}

	if len(fromString.Text) != 2 || len(fromList.Text) != 2 {
		t.Fatalf("paragraph counts = %d/%d, want 2/2", len(fromString.Text), len(fromList.Text))
	}
	for i := range fromString.Text {
		if fromString.Text[i] != fromList.Text[i] {
			t.Fatalf("paragraph %d = %q vs %q, want equal", i, fromString.Text[i], fromList.Text[i])
		}
	}
}

func TestParagraphs_EmptyStringIsNoParagraphs(t *testing.T) {
	var item Item
	if err := json.Unmarshal([]byte(`{"text": "  "}`), &item); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(item.Text) != 0 {
		t.Fatalf("Text = %#v, want empty", item.Text)
	}
}

func TestParagraphs_RejectsOtherShapes(t *testing.T) {
	var item Item
	if err := json.Unmarshal([]byte(`{"text": 7}`), &item); err == nil {
		t.Fatalf("unmarshal numeric text returned nil error, want error")
	}
}

func TestDocument_ModalLookup(t *testing.T) {
	doc := &Document{Modals: []Modal{
		{ID: "privacy", Title: "Privacy"},
		{ID: "terms", Title: "Terms"},
		{ID: "privacy", Title: "Duplicate"},
	}}

	if m := doc.Modal("terms"); m == nil || m.Title != "Terms" {
		t.Fatalf("Modal(terms) = %#v, want Terms", m)
	}
	if m := doc.Modal("privacy"); m == nil || m.Title != "Privacy" {
		t.Fatalf("Modal(privacy) = %#v, want first match", m)
	}
	if m := doc.Modal("missing"); m != nil {
		t.Fatalf("Modal(missing) = %#v, want nil", m)
	}
	if m := doc.Modal(""); m != nil {
		t.Fatalf("Modal(\"\") = %#v, want nil", m)
	}

	var nilDoc *Document
	if m := nilDoc.Modal("privacy"); m != nil {
		t.Fatalf("nil document Modal = %#v, want nil", m)
	}
}

func TestDocument_OptionalFieldsStayAbsent(t *testing.T) {
	var doc Document
	if err := json.Unmarshal([]byte(`{"header": {"title": "Acme"}}`), &doc); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if doc.Header == nil || doc.Header.Title != "Acme" {
		t.Fatalf("Header = %#v, want title Acme", doc.Header)
	}
	if doc.Meta != nil || doc.Footer != nil || doc.CookieNotice != nil {
		t.Fatalf("absent fields decoded non-nil: %#v", doc)
	}
	if len(doc.Sections) != 0 || len(doc.Modals) != 0 {
		t.Fatalf("absent slices decoded non-empty: %#v", doc)
	}
}
