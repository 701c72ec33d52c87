package mock

import "github.com/fwojciec/lumi"

var _ lumi.Converter = (*Converter)(nil)

// Converter is a mock implementation of lumi.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
