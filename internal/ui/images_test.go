package ui

import (
	"reflect"
	"testing"

	"github.com/softglow/foyer/internal/content"
)

func TestEagerAssetsFirstNItems(t *testing.T) {
	// Images on items 1, 3, and 5; items 2 and 4 have none. The eager
	// count is over items, not images, so n=2 covers items 1 and 2 only.
	doc := &content.Document{
		Sections: []content.Section{
			{Items: []content.Item{
				{Heading: "one", Image: "/a.png"},
				{Heading: "two"},
				{Heading: "three", Image: "/b.png"},
			}},
			{Items: []content.Item{
				{Heading: "four"},
				{Heading: "five", Image: "/c.png"},
			}},
		},
	}
	av := &fakeAssets{base: "https://cdn.example.com"}

	got := eagerAssets(doc, 2, av)
	want := []string{"https://cdn.example.com/a.png"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("eagerAssets(n=2) = %v, want %v", got, want)
	}

	got = eagerAssets(doc, 5, av)
	want = []string{
		"https://cdn.example.com/a.png",
		"https://cdn.example.com/b.png",
		"https://cdn.example.com/c.png",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("eagerAssets(n=5) = %v, want %v", got, want)
	}
}

func TestEagerAssetsSpansSections(t *testing.T) {
	// Item counting continues across section boundaries.
	doc := &content.Document{
		Sections: []content.Section{
			{Items: []content.Item{{Image: "/a.png"}}},
			{Items: []content.Item{{Image: "/b.png"}}},
		},
	}
	got := eagerAssets(doc, 2, &fakeAssets{base: "https://x"})
	if len(got) != 2 {
		t.Errorf("eagerAssets(n=2) = %v, want both sections' images", got)
	}
}

func TestEagerAssetsEdgeCases(t *testing.T) {
	av := &fakeAssets{base: "https://x"}
	if got := eagerAssets(nil, 3, av); got != nil {
		t.Errorf("eagerAssets(nil doc) = %v, want nil", got)
	}
	doc := &content.Document{Sections: []content.Section{{Items: []content.Item{{Image: "/a.png"}}}}}
	if got := eagerAssets(doc, 0, av); got != nil {
		t.Errorf("eagerAssets(n=0) = %v, want nil", got)
	}
	if got := eagerAssets(doc, 3, nil); got != nil {
		t.Errorf("eagerAssets(nil assets) = %v, want nil", got)
	}
}

func TestVisibleAssets(t *testing.T) {
	images := []imageLine{
		{line: 0, url: "far-above"},
		{line: 15, url: "just-above"},
		{line: 25, url: "in-view"},
		{line: 40, url: "just-below"},
		{line: 100, url: "far-below"},
	}

	// Viewport rows 20..29, margin 10 either side: lines 10..40.
	got := visibleAssets(images, 20, 10)
	want := []string{"just-above", "in-view", "just-below"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("visibleAssets(top=20, h=10) = %v, want %v", got, want)
	}
}

func TestVisibleAssetsZeroHeight(t *testing.T) {
	images := []imageLine{{line: 5, url: "a"}}
	if got := visibleAssets(images, 0, 0); got != nil {
		t.Errorf("visibleAssets(height=0) = %v, want nil", got)
	}
}
