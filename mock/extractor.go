package mock

import "github.com/fwojciec/ktorrent"

var _ ktorrent.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of ktorrent.Extractor.
type Extractor struct {
	ExtractFn func(html string, rule ktorrent.Rule) ([]string, error)
}

func (e *Extractor) Extract(html string, rule ktorrent.Rule) ([]string, error) {
	return e.ExtractFn(html, rule)
}
