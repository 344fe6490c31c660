package main_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/fwojciec/jwnews"
	main "github.com/fwojciec/jwnews/cmd/jwnews"
	"github.com/fwojciec/jwnews/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestMain returns a Main whose fetcher serves pages from the given
// map and whose extractor returns a one-heading article titled after the
// page body.
func newTestMain(pages map[string]string) *main.Main {
	m := main.NewMain()
	m.Fetcher = &mock.Fetcher{
		FetchFn: func(ctx context.Context, url string) (string, error) {
			body, ok := pages[url]
			if !ok {
				return "", jwnews.Errorf(jwnews.EUPSTREAM, "Upstream returned an error status: 404")
			}
			return body, nil
		},
	}
	m.Extractor = &mock.ArticleExtractor{
		ExtractArticleFn: func(rawHTML, baseURL string) (*jwnews.Article, error) {
			title := strings.TrimSpace(rawHTML)
			return &jwnews.Article{
				Markdown:  "# " + title + "\n\nBody of " + title + ".",
				Title:     &title,
				SourceURL: baseURL,
				Images:    []jwnews.Image{},
			}, nil
		},
	}
	return m
}

func TestCmdExtract(t *testing.T) {
	t.Parallel()

	t.Run("prints a single article as markdown", func(t *testing.T) {
		t.Parallel()

		m := newTestMain(map[string]string{
			"https://www.jw.org/en/news/sample/": "Sample Article",
		})

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := m.Run(context.Background(), []string{"extract", "https://www.jw.org/en/news/sample/"}, stdout, stderr)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "# Sample Article")
		assert.Contains(t, stdout.String(), "Body of Sample Article.")
		assert.NotContains(t, stdout.String(), "## Article:")
		assert.NotContains(t, stderr.String(), "error:")
	})

	t.Run("formats multiple articles with source headers in input order", func(t *testing.T) {
		t.Parallel()

		m := newTestMain(map[string]string{
			"https://www.jw.org/en/news/first/":  "First Article",
			"https://www.jw.org/en/news/second/": "Second Article",
		})

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := m.Run(context.Background(), []string{
			"extract",
			"https://www.jw.org/en/news/first/",
			"https://www.jw.org/en/news/second/",
		}, stdout, stderr)

		require.NoError(t, err)
		out := stdout.String()
		first := strings.Index(out, "## Article: First Article")
		second := strings.Index(out, "## Article: Second Article")
		require.GreaterOrEqual(t, first, 0)
		require.GreaterOrEqual(t, second, 0)
		assert.Less(t, first, second)
	})

	t.Run("prints articles as a JSON array with --json", func(t *testing.T) {
		t.Parallel()

		m := newTestMain(map[string]string{
			"https://www.jw.org/en/news/sample/": "Sample Article",
		})

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := m.Run(context.Background(), []string{"extract", "https://www.jw.org/en/news/sample/", "--json"}, stdout, stderr)

		require.NoError(t, err)

		var got []jwnews.Article
		require.NoError(t, json.Unmarshal(stdout.Bytes(), &got))
		require.Len(t, got, 1)
		assert.Equal(t, "https://www.jw.org/en/news/sample/", got[0].SourceURL)
		require.NotNil(t, got[0].Title)
		assert.Equal(t, "Sample Article", *got[0].Title)
		assert.Equal(t, []jwnews.Image{}, got[0].Images)
	})

	t.Run("writes markdown files with --out", func(t *testing.T) {
		t.Parallel()

		m := newTestMain(map[string]string{
			"https://www.jw.org/en/news/sample/": "Sample Article",
		})

		dir := t.TempDir()
		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := m.Run(context.Background(), []string{
			"extract", "https://www.jw.org/en/news/sample/", "--out", dir,
		}, stdout, stderr)

		require.NoError(t, err)

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.True(t, strings.HasPrefix(entries[0].Name(), "sample-article-"))
		assert.True(t, strings.HasSuffix(entries[0].Name(), ".md"))

		content, err := os.ReadFile(filepath.Join(dir, entries[0].Name()))
		require.NoError(t, err)
		assert.Contains(t, string(content), "source: https://www.jw.org/en/news/sample/")
		assert.Contains(t, string(content), "# Sample Article")

		assert.Contains(t, stdout.String(), "Saved "+dir)
		assert.NotContains(t, stdout.String(), "Body of Sample Article.")
	})

	t.Run("reports per-URL failures and fails the command", func(t *testing.T) {
		t.Parallel()

		m := newTestMain(map[string]string{
			"https://www.jw.org/en/news/good/": "Good Article",
		})

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := m.Run(context.Background(), []string{
			"extract",
			"https://www.jw.org/en/news/good/",
			"https://www.jw.org/en/news/missing/",
		}, stdout, stderr)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "1 of 2 URLs failed")
		assert.Contains(t, stderr.String(), "error: https://www.jw.org/en/news/missing/:")
		assert.Contains(t, stderr.String(), "Upstream returned an error status: 404")
		assert.Contains(t, stdout.String(), "# Good Article")
	})

	t.Run("rejects off-domain URLs before fetching", func(t *testing.T) {
		t.Parallel()

		fetchCalled := false
		m := main.NewMain()
		m.Fetcher = &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				fetchCalled = true
				return "<html></html>", nil
			},
		}
		m.Extractor = &mock.ArticleExtractor{
			ExtractArticleFn: func(rawHTML, baseURL string) (*jwnews.Article, error) {
				return &jwnews.Article{SourceURL: baseURL, Images: []jwnews.Image{}}, nil
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := m.Run(context.Background(), []string{"extract", "https://example.com/en/news/sample/"}, stdout, stderr)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "1 of 1 URLs failed")
		assert.False(t, fetchCalled, "fetch should not run for an off-domain URL")
		assert.Contains(t, stderr.String(), "Only jw.org URLs are allowed")
	})

	t.Run("returns parse error when no URLs are given", func(t *testing.T) {
		t.Parallel()

		m := newTestMain(nil)

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := m.Run(context.Background(), []string{"extract"}, stdout, stderr)

		assert.Error(t, err)
	})
}

func TestCmdServe(t *testing.T) {
	t.Parallel()

	t.Run("serves until the context is canceled", func(t *testing.T) {
		t.Parallel()

		m := newTestMain(nil)

		ctx, cancel := context.WithCancel(context.Background())
		timer := time.AfterFunc(100*time.Millisecond, cancel)
		defer timer.Stop()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := m.Run(ctx, []string{"serve", "--addr", "127.0.0.1:0"}, stdout, stderr)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "Listening on http://127.0.0.1:")
		assert.Contains(t, stdout.String(), "Shutting down")
	})

	t.Run("returns error when the address is unavailable", func(t *testing.T) {
		t.Parallel()

		ln, err := net.Listen("tcp", "127.0.0.1:0")
		require.NoError(t, err)
		defer ln.Close()

		m := newTestMain(nil)

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err = m.Run(context.Background(), []string{"serve", "--addr", ln.Addr().String()}, stdout, stderr)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to listen")
	})
}

func TestRun(t *testing.T) {
	t.Parallel()

	t.Run("returns error when no command is given", func(t *testing.T) {
		t.Parallel()

		m := main.NewMain()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := m.Run(context.Background(), []string{}, stdout, stderr)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "no command specified")
	})

	t.Run("help prints usage without error", func(t *testing.T) {
		t.Parallel()

		m := main.NewMain()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := m.Run(context.Background(), []string{"--help"}, stdout, stderr)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "Usage:")
		assert.Contains(t, stdout.String(), "extract")
		assert.Contains(t, stdout.String(), "serve")
	})

	t.Run("rejects unknown commands", func(t *testing.T) {
		t.Parallel()

		m := main.NewMain()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := m.Run(context.Background(), []string{"bogus"}, stdout, stderr)

		assert.Error(t, err)
	})
}
