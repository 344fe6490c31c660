package jwnews

import "context"

// Fetcher retrieves raw HTML from URLs.
// Implementations may use plain HTTP requests or browser automation for
// JavaScript-rendered pages.
type Fetcher interface {
	// Fetch retrieves the page at url and returns its HTML.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases network or browser resources.
	// Must be called when the Fetcher is no longer needed.
	Close() error
}
