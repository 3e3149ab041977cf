// Package assets caches remote image metadata for the page renderers.
//
// # Overview
//
// A terminal cannot paint the page's images, but the layout still
// cares whether each image exists and what shape it has: loaded images
// render as framed placeholders with their dimensions, failed images
// are hidden entirely. This package fetches image headers and shares
// the outcomes between the fetch command goroutines and the UI loop.
//
// # Concurrency Model
//
// The Cache is the one mutation point shared across goroutines:
//
//	Producer (fetch commands):      Consumer (UI render):
//	Begin(url) → claim              Status(url) / Info(url)
//	Fetch(ctx, url) → record
//
// Begin claims a URL so each asset is fetched at most once per render
// pass regardless of how often the renderer asks for it; Fetch records
// either the decoded header or the failure. All access is guarded by
// an RWMutex. Reset clears every outcome at the start of a fresh pass
// so reloads retry previously failed assets.
//
// Only image.DecodeConfig is used, so a fetch reads just the header
// bytes it needs and never holds pixel data.
package assets
