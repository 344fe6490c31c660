package zerolog

import (
	"context"
	"time"

	"github.com/fwojciec/jwnews"
	"github.com/rs/zerolog"
)

// Ensure LoggingArticleService implements jwnews.ArticleService.
var _ jwnews.ArticleService = (*LoggingArticleService)(nil)

// LoggingArticleService wraps an ArticleService with per-read logging.
type LoggingArticleService struct {
	next   jwnews.ArticleService
	logger zerolog.Logger
}

// NewLoggingArticleService creates a new LoggingArticleService.
func NewLoggingArticleService(next jwnews.ArticleService, logger zerolog.Logger) *LoggingArticleService {
	return &LoggingArticleService{next: next, logger: logger}
}

// ReadArticle delegates to the wrapped service and logs the outcome.
func (s *LoggingArticleService) ReadArticle(ctx context.Context, url string) (article *jwnews.Article, err error) {
	defer func(begin time.Time) {
		images := 0
		titled := false
		if article != nil {
			images = len(article.Images)
			titled = article.Title != nil
		}
		s.logger.Info().
			Str("url", url).
			Int("images", images).
			Bool("titled", titled).
			Dur("duration", time.Since(begin)).
			Err(err).
			Msg("read article")
	}(time.Now())
	return s.next.ReadArticle(ctx, url)
}
