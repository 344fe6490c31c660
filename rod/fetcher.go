// Package rod provides a browser-based implementation of jwnews.Fetcher
// for pages that render their content with JavaScript.
package rod

import (
	"context"
	"time"

	"github.com/fwojciec/jwnews"
	"github.com/go-rod/rod/lib/proto"
)

// DefaultFetchTimeout bounds a whole fetch, navigation included.
// Kept consistent with http.DefaultFetchTimeout (10s).
const DefaultFetchTimeout = 10 * time.Second

// DefaultUserAgent identifies the reader to jw.org. Mirrors the plain
// HTTP fetcher so both fetch paths present the same client.
const DefaultUserAgent = "jw-news-reader-api/1.0"

// Ensure Fetcher implements jwnews.Fetcher at compile time.
var _ jwnews.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves rendered HTML using Chrome browser automation. The
// underlying browser is recycled after a number of pages so long serving
// runs keep memory bounded. Fetcher is safe for concurrent use by
// multiple goroutines.
type Fetcher struct {
	manager   *BrowserManager
	timeout   time.Duration
	userAgent string
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the per-fetch timeout.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent sets the user agent presented by the browser.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// WithManager supplies a preconfigured BrowserManager, for callers that
// need a custom recycling threshold.
func WithManager(m *BrowserManager) Option {
	return func(f *Fetcher) {
		f.manager = m
	}
}

// NewFetcher creates a new Fetcher backed by a headless Chrome browser.
// Close must be called when the Fetcher is no longer needed.
//
// Returns an error if Chrome/Chromium cannot be found or launched.
func NewFetcher(opts ...Option) (*Fetcher, error) {
	f := &Fetcher{
		timeout:   DefaultFetchTimeout,
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}

	if f.manager == nil {
		manager, err := NewBrowserManager()
		if err != nil {
			return nil, err
		}
		f.manager = manager
	}

	return f, nil
}

// Fetch navigates to the URL and returns the rendered HTML.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	browser := f.manager.Browser()
	if browser == nil {
		return "", jwnews.Errorf(jwnews.EINVALID, "fetcher is closed")
	}

	page, err := browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return "", fetchError(ctx, err)
	}
	defer page.Close()

	page = page.Context(ctx)

	if f.userAgent != "" {
		override := &proto.NetworkSetUserAgentOverride{UserAgent: f.userAgent}
		if err := page.SetUserAgent(override); err != nil {
			return "", fetchError(ctx, err)
		}
	}

	if err := page.Navigate(url); err != nil {
		return "", fetchError(ctx, err)
	}

	if err := page.WaitLoad(); err != nil {
		return "", fetchError(ctx, err)
	}

	html, err := page.HTML()
	if err != nil {
		return "", fetchError(ctx, err)
	}

	f.manager.IncrementPageCount()
	return html, nil
}

// fetchError surfaces context cancellation and deadline errors directly;
// everything else maps to EUPSTREAM.
func fetchError(ctx context.Context, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}
	return jwnews.Errorf(jwnews.EUPSTREAM, "Upstream request failed: %v", err)
}

// Close releases browser resources.
func (f *Fetcher) Close() error {
	return f.manager.Close()
}

// LauncherPID returns the process ID of the browser launcher.
// This method exists for testing purposes to verify proper cleanup.
func (f *Fetcher) LauncherPID() int {
	return f.manager.LauncherPID()
}
