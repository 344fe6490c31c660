package mock

import (
	"context"

	"github.com/fwojciec/jwnews"
)

var _ jwnews.ArticleService = (*ArticleService)(nil)

// ArticleService is a mock implementation of jwnews.ArticleService.
type ArticleService struct {
	ReadArticleFn func(ctx context.Context, url string) (*jwnews.Article, error)
}

func (s *ArticleService) ReadArticle(ctx context.Context, url string) (*jwnews.Article, error) {
	return s.ReadArticleFn(ctx, url)
}
