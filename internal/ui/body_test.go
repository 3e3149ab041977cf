package ui

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/softglow/foyer/internal/assets"
	"github.com/softglow/foyer/internal/content"
)

// fakeAssets is a canned assetView for render tests.
type fakeAssets struct {
	base   string
	status map[string]assets.Status
	info   map[string]assets.Info
}

func (f *fakeAssets) Resolve(path string) string {
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	return f.base + "/" + strings.TrimPrefix(path, "/")
}

func (f *fakeAssets) Status(assetURL string) assets.Status {
	return f.status[assetURL]
}

func (f *fakeAssets) Info(assetURL string) (assets.Info, bool) {
	info, ok := f.info[assetURL]
	return info, ok
}

func testDocument() *content.Document {
	return &content.Document{
		Header: &content.Header{
			Title:    "Night Harbor",
			Subtitle: "A game about lighthouses",
			SocialLinks: []content.SocialLink{
				{Name: "Steam", URL: "https://store.steampowered.com/app/123/", Icon: "steam"},
				{Name: "Hidden", URL: ""},
				{Name: "Discord", URL: "https://discord.gg/abc", Icon: "discord"},
			},
		},
		Sections: []content.Section{
			{
				Title: "Games",
				Items: []content.Item{
					{Heading: "Night Harbor", Text: content.Paragraphs{"Out now."}, SteamURL: "https://store.steampowered.com/app/123/"},
					{},
				},
			},
		},
		Footer: &content.Footer{
			CompanyName: "Softglow",
			Year:        "auto",
			Links: []content.FooterLink{
				{Name: "Privacy", URL: "#privacy"},
				{Name: "Press Kit", URL: "https://example.com/press"},
			},
		},
		Modals: []content.Modal{
			{ID: "privacy", Title: "Privacy Policy", Content: content.Paragraphs{"We collect nothing."}},
		},
	}
}

func TestRenderBodyNilDocument(t *testing.T) {
	body := renderBody(nil, GetTheme("dark").Styles(), 80, &fakeAssets{}, -1)
	if body.content != "" {
		t.Errorf("content = %q, want empty", body.content)
	}
	if len(body.targets) != 0 {
		t.Errorf("len(targets) = %d, want 0", len(body.targets))
	}
}

func TestRenderBodyZeroWidth(t *testing.T) {
	body := renderBody(testDocument(), GetTheme("dark").Styles(), 0, &fakeAssets{}, -1)
	if body.content != "" {
		t.Errorf("content = %q, want empty for zero width", body.content)
	}
}

func TestRenderBodyTargetOrder(t *testing.T) {
	body := renderBody(testDocument(), GetTheme("dark").Styles(), 80, &fakeAssets{}, -1)

	// Two visible social links (one hidden), two items, two footer links.
	wantKinds := []targetKind{targetSocial, targetSocial, targetItem, targetItem, targetFooterLink, targetFooterLink}
	if len(body.targets) != len(wantKinds) {
		t.Fatalf("len(targets) = %d, want %d", len(body.targets), len(wantKinds))
	}
	for i, want := range wantKinds {
		if body.targets[i].kind != want {
			t.Errorf("targets[%d].kind = %d, want %d", i, body.targets[i].kind, want)
		}
	}

	if body.targets[0].label != "Steam" {
		t.Errorf("targets[0].label = %q, want %q", body.targets[0].label, "Steam")
	}
	// The social entry with an empty URL is skipped entirely.
	if body.targets[1].label != "Discord" {
		t.Errorf("targets[1].label = %q, want %q", body.targets[1].label, "Discord")
	}
	// The empty item is still focusable, with a positional label.
	if body.targets[3].label != "Item 2" {
		t.Errorf("targets[3].label = %q, want %q", body.targets[3].label, "Item 2")
	}
	if body.targets[4].url != "#privacy" {
		t.Errorf("targets[4].url = %q, want %q", body.targets[4].url, "#privacy")
	}
}

func TestRenderBodyTargetLinesAscend(t *testing.T) {
	body := renderBody(testDocument(), GetTheme("dark").Styles(), 80, &fakeAssets{}, -1)
	lines := strings.Count(body.content, "\n") + 1
	prev := -1
	for i, tgt := range body.targets {
		if tgt.line < prev {
			t.Errorf("targets[%d].line = %d, before previous %d", i, tgt.line, prev)
		}
		if tgt.line >= lines {
			t.Errorf("targets[%d].line = %d, beyond body of %d lines", i, tgt.line, lines)
		}
		prev = tgt.line
	}
}

func TestRenderBodyTextFormsEquivalent(t *testing.T) {
	// A string with embedded newlines and the equivalent list must
	// produce identical pages.
	asString := []byte(`{"sections":[{"title":"S","items":[{"heading":"H","text":"one\ntwo"}]}]}`)
	asList := []byte(`{"sections":[{"title":"S","items":[{"heading":"H","text":["one","two"]}]}]}`)

	var docString, docList content.Document
	if err := json.Unmarshal(asString, &docString); err != nil {
		t.Fatalf("Unmarshal(string form) error = %v", err)
	}
	if err := json.Unmarshal(asList, &docList); err != nil {
		t.Fatalf("Unmarshal(list form) error = %v", err)
	}

	st := GetTheme("dark").Styles()
	got := renderBody(&docString, st, 60, &fakeAssets{}, -1)
	want := renderBody(&docList, st, 60, &fakeAssets{}, -1)
	if got.content != want.content {
		t.Errorf("string form rendered differently from list form:\n%q\nvs\n%q", got.content, want.content)
	}
}

func TestRenderBodyFailedImageHidden(t *testing.T) {
	doc := &content.Document{
		Sections: []content.Section{{Items: []content.Item{
			{Heading: "With image", Image: "/img/broken.png"},
		}}},
	}
	av := &fakeAssets{
		base:   "https://example.com",
		status: map[string]assets.Status{"https://example.com/img/broken.png": assets.StatusFailed},
	}
	body := renderBody(doc, GetTheme("dark").Styles(), 80, av, -1)
	if strings.Contains(body.content, "broken.png") {
		t.Errorf("failed image still rendered a placeholder:\n%s", body.content)
	}
	if len(body.images) != 0 {
		t.Errorf("len(images) = %d, want 0 for a failed asset", len(body.images))
	}
}

func TestRenderBodyLoadedImageCaption(t *testing.T) {
	resolved := "https://example.com/img/cover.png"
	doc := &content.Document{
		Sections: []content.Section{{Items: []content.Item{
			{Heading: "With image", Image: "/img/cover.png"},
		}}},
	}
	av := &fakeAssets{
		base:   "https://example.com",
		status: map[string]assets.Status{resolved: assets.StatusLoaded},
		info:   map[string]assets.Info{resolved: {URL: resolved, Width: 64, Height: 32, Format: "png"}},
	}
	body := renderBody(doc, GetTheme("dark").Styles(), 80, av, -1)
	if !strings.Contains(body.content, "cover.png (64×32)") {
		t.Errorf("loaded image caption missing dimensions:\n%s", body.content)
	}
	if len(body.images) != 1 || body.images[0].url != resolved {
		t.Fatalf("images = %v, want one entry for %s", body.images, resolved)
	}
}

func TestRenderBodyFocusChangesOutput(t *testing.T) {
	st := GetTheme("dark").Styles()
	doc := testDocument()
	unfocused := renderBody(doc, st, 80, &fakeAssets{}, -1)
	focused := renderBody(doc, st, 80, &fakeAssets{}, 2)
	if unfocused.content == focused.content {
		t.Error("focusing a target did not change the rendered page")
	}
	if len(unfocused.targets) != len(focused.targets) {
		t.Errorf("target count changed with focus: %d vs %d", len(unfocused.targets), len(focused.targets))
	}
}

func TestFooterYear(t *testing.T) {
	now := timeAt2026(t)
	tests := []struct {
		year string
		want string
	}{
		{"auto", "2026"},
		{"AUTO", "2026"},
		{"", "2026"},
		{"  ", "2026"},
		{"2019", "2019"},
		{"2019-2024", "2019-2024"},
	}
	for _, tt := range tests {
		if got := footerYear(tt.year, now); got != tt.want {
			t.Errorf("footerYear(%q) = %q, want %q", tt.year, got, tt.want)
		}
	}
}

func timeAt2026(t *testing.T) time.Time {
	t.Helper()
	return time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
}
