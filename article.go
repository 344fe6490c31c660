package jwnews

import "context"

// Image is an image referenced by an article's content.
type Image struct {
	// URL is the image location. Always absolute by the time the
	// image appears in an extraction result.
	URL string `json:"url"`

	// Alt is the image's alternative text. Nil when the source markup
	// carried no alt attribute or only whitespace.
	Alt *string `json:"alt"`

	// Caption is the caption text attached to the image. Nil when the
	// image has no recognizable caption.
	Caption *string `json:"caption"`
}

// Article is the result of extracting one page.
type Article struct {
	// Markdown is the article body rendered as markdown.
	Markdown string `json:"markdown"`

	// Title is the detected article title. Nil when no title could be
	// determined from the page.
	Title *string `json:"title"`

	// SourceURL is the URL the article was extracted from.
	SourceURL string `json:"source_url"`

	// Images lists the article's images in document order. Never nil:
	// an article without images has an empty list.
	Images []Image `json:"images"`
}

// ArticleExtractor turns raw HTML into a structured Article.
//
// Implementations never issue network calls. baseURL is used to resolve
// relative references and becomes the article's SourceURL. Extraction
// degrades rather than fails: a page without recognizable content yields
// an article with empty markdown, not an error.
type ArticleExtractor interface {
	ExtractArticle(rawHTML, baseURL string) (*Article, error)
}

// ArticleService reads articles from pages on the trusted domain.
type ArticleService interface {
	// ReadArticle validates url, fetches the page and extracts its
	// article content. URL validation failures return EINVALID before
	// any network access happens.
	ReadArticle(ctx context.Context, url string) (*Article, error)
}
