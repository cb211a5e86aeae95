package mock

import "github.com/0x7FFFFFFFFFFFFFFF/t2e"

var _ t2e.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of t2e.Extractor.
type Extractor struct {
	ExtractFn func(input string) ([]string, error)
}

func (e *Extractor) Extract(input string) ([]string, error) {
	return e.ExtractFn(input)
}
