package readability

import (
	"strings"

	"github.com/fwojciec/jwnews"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements jwnews.Extractor at compile time.
var _ jwnews.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract main content from HTML.
// The article pipeline uses it as the fallback content detector for
// pages without a recognizable article container.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main content.
func (e *Extractor) Extract(rawHTML string) (*jwnews.ExtractResult, error) {
	if rawHTML == "" {
		return nil, jwnews.Errorf(jwnews.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, err
	}

	return &jwnews.ExtractResult{
		Title:       article.Title,
		ContentHTML: article.Content,
	}, nil
}
