package jwnews

import "context"

// ArticleStore persists extracted articles.
type ArticleStore interface {
	// SaveArticle writes the article to the store. The article's
	// SourceURL and title determine where it ends up.
	SaveArticle(ctx context.Context, article *Article) error
}
