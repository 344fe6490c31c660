// Package http provides the HTTP implementations of jwnews interfaces:
// a Fetcher for retrieving jw.org pages and a Server exposing the
// extraction service as a JSON API.
package http

import (
	"context"
	"crypto/tls"
	"io"
	"net"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/fwojciec/jwnews"
)

const (
	// DefaultFetchTimeout bounds a whole fetch, connection included.
	// Kept consistent with rod.DefaultFetchTimeout (10s).
	DefaultFetchTimeout = 10 * time.Second

	// DefaultConnectTimeout bounds dialing and the TLS handshake.
	DefaultConnectTimeout = 5 * time.Second

	// DefaultUserAgent identifies the reader to jw.org.
	DefaultUserAgent = "jw-news-reader-api/1.0"

	// InsecureTLSEnv disables certificate verification when set to "1".
	// Intended for local testing against self-signed proxies.
	InsecureTLSEnv = "JW_NEWS_READER_INSECURE_SSL"

	acceptHeader         = "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8"
	acceptLanguageHeader = "en-US,en;q=0.9"
)

// Ensure Fetcher implements jwnews.Fetcher at compile time.
var _ jwnews.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves HTML pages over plain HTTP. It does not execute
// JavaScript; use rod.Fetcher for pages that render client-side.
type Fetcher struct {
	client         *http.Client
	timeout        time.Duration
	connectTimeout time.Duration
	userAgent      string
	insecureTLS    bool
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the overall request timeout.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithConnectTimeout sets the dial and TLS handshake timeout.
// Defaults to DefaultConnectTimeout (5s) if not specified.
func WithConnectTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.connectTimeout = d
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// WithInsecureTLS disables TLS certificate verification.
func WithInsecureTLS(insecure bool) Option {
	return func(f *Fetcher) {
		f.insecureTLS = insecure
	}
}

// NewFetcher creates a new HTTP-based Fetcher. Certificate verification
// starts from the InsecureTLSEnv environment variable; options override.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:        DefaultFetchTimeout,
		connectTimeout: DefaultConnectTimeout,
		userAgent:      DefaultUserAgent,
		insecureTLS:    os.Getenv(InsecureTLSEnv) == "1",
	}
	for _, opt := range opts {
		opt(f)
	}

	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout: f.connectTimeout,
		}).DialContext,
		TLSHandshakeTimeout: f.connectTimeout,
	}
	if f.insecureTLS {
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true}
	}

	f.client = &http.Client{
		Timeout:   f.timeout,
		Transport: transport,
	}

	return f
}

// Fetch retrieves the HTML page at url. Responses with an error status
// or a non-HTML content type are rejected.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", jwnews.Errorf(jwnews.EINVALID, "invalid URL: %v", err)
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", acceptHeader)
	req.Header.Set("Accept-Language", acceptLanguageHeader)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", jwnews.Errorf(jwnews.EUPSTREAM, "Upstream request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return "", jwnews.Errorf(jwnews.EUPSTREAM, "Upstream returned an error status: %d", resp.StatusCode)
	}

	contentType := resp.Header.Get("Content-Type")
	if !strings.Contains(contentType, "text/html") {
		return "", jwnews.Errorf(jwnews.EUNSUPPORTED, "URL did not return HTML")
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", jwnews.Errorf(jwnews.EUPSTREAM, "Upstream request failed: %v", err)
	}

	return string(body), nil
}

// Close releases idle connections held by the underlying client.
func (f *Fetcher) Close() error {
	f.client.CloseIdleConnections()
	return nil
}
