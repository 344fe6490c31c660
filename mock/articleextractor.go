package mock

import "github.com/fwojciec/jwnews"

var _ jwnews.ArticleExtractor = (*ArticleExtractor)(nil)

// ArticleExtractor is a mock implementation of jwnews.ArticleExtractor.
type ArticleExtractor struct {
	ExtractArticleFn func(rawHTML, baseURL string) (*jwnews.Article, error)
}

func (e *ArticleExtractor) ExtractArticle(rawHTML, baseURL string) (*jwnews.Article, error) {
	return e.ExtractArticleFn(rawHTML, baseURL)
}
