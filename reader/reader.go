// Package reader orchestrates article reads: URL validation, fetching,
// and extraction.
package reader

import (
	"context"

	"github.com/fwojciec/jwnews"
	"golang.org/x/sync/errgroup"
)

// Ensure Service implements jwnews.ArticleService.
var _ jwnews.ArticleService = (*Service)(nil)

// DefaultConcurrency bounds parallel reads in ReadAll when the service
// does not set its own limit.
const DefaultConcurrency = 4

// Service reads articles from jw.org. Each read validates the URL,
// fetches the page, and extracts the article.
type Service struct {
	Fetcher  jwnews.Fetcher
	Articles jwnews.ArticleExtractor

	// Concurrency bounds parallel reads in ReadAll. Zero or negative
	// means DefaultConcurrency.
	Concurrency int
}

// Result holds the outcome of reading a single URL.
type Result struct {
	URL     string
	Article *jwnews.Article
	Err     error
}

// ReadArticle validates url, fetches the page, and extracts the article.
// Validation failures return before any network access.
func (s *Service) ReadArticle(ctx context.Context, url string) (*jwnews.Article, error) {
	if err := jwnews.ValidateURL(url); err != nil {
		return nil, err
	}
	html, err := s.Fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}
	return s.Articles.ExtractArticle(html, url)
}

// ReadAll reads every URL with bounded concurrency. Results are ordered
// by input position. A failed read sets Err on its own result and never
// aborts the other reads.
func (s *Service) ReadAll(ctx context.Context, urls []string) []Result {
	concurrency := s.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	results := make([]Result, len(urls))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for i, url := range urls {
		g.Go(func() error {
			article, err := s.ReadArticle(gctx, url)
			results[i] = Result{URL: url, Article: article, Err: err}
			return nil
		})
	}
	_ = g.Wait()

	return results
}
