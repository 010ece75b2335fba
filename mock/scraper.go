package mock

import (
	"context"

	"github.com/fwojciec/ktorrent"
)

var _ ktorrent.Scraper = (*Scraper)(nil)

// Scraper is a mock implementation of ktorrent.Scraper.
type Scraper struct {
	SearchFn     func(ctx context.Context, site *ktorrent.Site, query string) (*ktorrent.Listing, error)
	MagnetsFn    func(ctx context.Context, site *ktorrent.Site, postURL string) ([]string, error)
	MagnetsAllFn func(ctx context.Context, site *ktorrent.Site, postURLs []string) ([]*ktorrent.PostMagnets, error)
}

func (s *Scraper) Search(ctx context.Context, site *ktorrent.Site, query string) (*ktorrent.Listing, error) {
	return s.SearchFn(ctx, site, query)
}

func (s *Scraper) Magnets(ctx context.Context, site *ktorrent.Site, postURL string) ([]string, error) {
	return s.MagnetsFn(ctx, site, postURL)
}

func (s *Scraper) MagnetsAll(ctx context.Context, site *ktorrent.Site, postURLs []string) ([]*ktorrent.PostMagnets, error) {
	return s.MagnetsAllFn(ctx, site, postURLs)
}
