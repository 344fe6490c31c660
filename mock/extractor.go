package mock

import "github.com/fwojciec/jwnews"

var _ jwnews.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of jwnews.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*jwnews.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*jwnews.ExtractResult, error) {
	return e.ExtractFn(html)
}
