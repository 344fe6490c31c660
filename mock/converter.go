package mock

import "github.com/fwojciec/jwnews"

var _ jwnews.Converter = (*Converter)(nil)

// Converter is a mock implementation of jwnews.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
