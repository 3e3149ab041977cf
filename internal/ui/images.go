package ui

import (
	"strings"

	"github.com/softglow/foyer/internal/content"
)

// proximityMargin is how many rows before a placeholder reaches the
// viewport its image starts loading, hiding fetch latency behind the
// scroll.
const proximityMargin = 10

// eagerAssets returns the resolved image URLs of the first n items in
// document order, counted across all sections. These are the
// above-the-fold images: they load before the page reveals. The set is
// computed once per pass, before any rendering, so render passes stay
// reentrant.
func eagerAssets(doc *content.Document, n int, av assetView) []string {
	if doc == nil || av == nil || n <= 0 {
		return nil
	}
	var urls []string
	itemNo := 0
	for _, section := range doc.Sections {
		for i := range section.Items {
			itemNo++
			if itemNo > n {
				return urls
			}
			if img := strings.TrimSpace(section.Items[i].Image); img != "" {
				if resolved := av.Resolve(img); resolved != "" {
					urls = append(urls, resolved)
				}
			}
		}
	}
	return urls
}

// visibleAssets returns the asset URLs whose placeholder lines fall
// within the viewport plus the proximity margin on both sides. The
// caller decides which of them still need fetching.
func visibleAssets(images []imageLine, top, height int) []string {
	if height <= 0 {
		return nil
	}
	lo := top - proximityMargin
	hi := top + height + proximityMargin
	var urls []string
	for _, img := range images {
		if img.line >= lo && img.line <= hi {
			urls = append(urls, img.url)
		}
	}
	return urls
}
