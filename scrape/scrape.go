// Package scrape coordinates fetching site pages, applying site rules to
// them and storing what was found.
package scrape

import (
	"context"
	"fmt"
	"time"

	"github.com/fwojciec/ktorrent"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency bounds MagnetsAll when Scraper.Concurrency is unset.
const DefaultConcurrency = 4

var _ ktorrent.Scraper = (*Scraper)(nil)

// Scraper implements ktorrent.Scraper on top of a Fetcher and an Extractor.
// Results is optional; when set every extracted value is stored.
type Scraper struct {
	Fetcher     ktorrent.Fetcher
	Extractor   ktorrent.Extractor
	Results     ktorrent.ResultService
	Concurrency int
	RetryDelays []time.Duration // nil means DefaultRetryDelays
	Logf        LogFunc
}

// Search fetches the site's search page for query and extracts titles and
// post URLs from it.
func (s *Scraper) Search(ctx context.Context, site *ktorrent.Site, query string) (*ktorrent.Listing, error) {
	if site.Title.IsZero() || site.Post.IsZero() {
		return nil, ktorrent.Errorf(ktorrent.EINVALID, "site %s: title and post rules required to search", site.Name)
	}
	searchURL, err := site.SearchURL(query)
	if err != nil {
		return nil, err
	}

	html, err := s.fetch(ctx, searchURL)
	if err != nil {
		return nil, fmt.Errorf("fetch search page: %w", err)
	}

	titles, err := s.Extractor.Extract(html, site.Title)
	if err != nil {
		return nil, err
	}
	hrefs, err := s.Extractor.Extract(html, site.Post)
	if err != nil {
		return nil, err
	}

	postURLs := make([]string, 0, len(hrefs))
	for _, href := range hrefs {
		u, err := ktorrent.ResolveReference(searchURL, href)
		if err != nil {
			return nil, err
		}
		postURLs = append(postURLs, u)
	}

	listing := &ktorrent.Listing{
		Site:     site.Name,
		URL:      searchURL,
		Titles:   titles,
		PostURLs: postURLs,
	}

	if err := s.save(ctx, site.Name, ktorrent.ResultTitle, searchURL, titles); err != nil {
		return nil, err
	}
	if err := s.save(ctx, site.Name, ktorrent.ResultPost, searchURL, postURLs); err != nil {
		return nil, err
	}

	return listing, nil
}

// Magnets fetches one post page, applies the site's magnet rule and returns
// the magnet URI found in each extracted value. Values holding no magnet
// are skipped.
func (s *Scraper) Magnets(ctx context.Context, site *ktorrent.Site, postURL string) ([]string, error) {
	if site.Magnet.IsZero() {
		return nil, ktorrent.Errorf(ktorrent.EINVALID, "site %s: magnet rule required", site.Name)
	}
	pageURL, err := site.ResolveURL(postURL)
	if err != nil {
		return nil, err
	}

	html, err := s.fetch(ctx, pageURL)
	if err != nil {
		return nil, fmt.Errorf("fetch post page: %w", err)
	}

	values, err := s.Extractor.Extract(html, site.Magnet)
	if err != nil {
		return nil, err
	}

	var magnets []string
	for _, v := range values {
		if m, ok := ktorrent.ParseMagnet(v); ok {
			magnets = append(magnets, m)
		}
	}

	if err := s.save(ctx, site.Name, ktorrent.ResultMagnet, pageURL, magnets); err != nil {
		return nil, err
	}
	return magnets, nil
}

// MagnetsAll runs Magnets over postURLs with bounded parallelism. Results
// are in the order of postURLs. A failing page is reported in its
// PostMagnets.Error and does not stop the others; only context
// cancellation aborts the whole call.
func (s *Scraper) MagnetsAll(ctx context.Context, site *ktorrent.Site, postURLs []string) ([]*ktorrent.PostMagnets, error) {
	concurrency := s.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	results := make([]*ktorrent.PostMagnets, len(postURLs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for i, postURL := range postURLs {
		g.Go(func() error {
			magnets, err := s.Magnets(gctx, site, postURL)
			results[i] = &ktorrent.PostMagnets{URL: postURL, Magnets: magnets, Error: err}
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

func (s *Scraper) fetch(ctx context.Context, url string) (string, error) {
	if s.RetryDelays == nil {
		return FetchWithRetry(ctx, url, s.Fetcher.Fetch, s.Logf)
	}
	return FetchWithRetryDelays(ctx, url, s.Fetcher.Fetch, s.Logf, s.RetryDelays)
}

// save stores values as results of kind when a ResultService is configured.
func (s *Scraper) save(ctx context.Context, site, kind, sourceURL string, values []string) error {
	if s.Results == nil {
		return nil
	}
	now := time.Now().UTC()
	for _, v := range values {
		if v == "" {
			continue
		}
		r := &ktorrent.Result{
			Site:      site,
			Kind:      kind,
			Value:     v,
			SourceURL: sourceURL,
			FetchedAt: now,
		}
		if err := s.Results.CreateResult(ctx, r); err != nil {
			return fmt.Errorf("save %s result: %w", kind, err)
		}
	}
	return nil
}
