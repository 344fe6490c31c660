package mock

import (
	"context"

	"github.com/fwojciec/jwnews"
)

var _ jwnews.ArticleStore = (*ArticleStore)(nil)

// ArticleStore is a mock implementation of jwnews.ArticleStore.
type ArticleStore struct {
	SaveArticleFn func(ctx context.Context, article *jwnews.Article) error
}

func (s *ArticleStore) SaveArticle(ctx context.Context, article *jwnews.Article) error {
	return s.SaveArticleFn(ctx, article)
}
