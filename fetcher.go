package ktorrent

import "context"

// Fetcher retrieves HTML from URLs.
type Fetcher interface {
	// Fetch downloads the page at url and returns its HTML decoded to UTF-8.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases resources held by the fetcher.
	Close() error
}
