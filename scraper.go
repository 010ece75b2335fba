package ktorrent

import "context"

// Post is one search hit: a title and the post page it links to.
type Post struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// Listing holds the values extracted from a site's search page.
// Titles are kept exactly as extracted, in document order. PostURLs are in
// document order and resolved against the search page URL.
type Listing struct {
	Site     string   `json:"site"`
	URL      string   `json:"url"`
	Titles   []string `json:"titles"`
	PostURLs []string `json:"postUrls"`
}

// Posts pairs titles with post URLs by position, stopping at the shorter list.
func (l *Listing) Posts() []Post {
	n := min(len(l.Titles), len(l.PostURLs))
	posts := make([]Post, 0, n)
	for i := 0; i < n; i++ {
		posts = append(posts, Post{Title: l.Titles[i], URL: l.PostURLs[i]})
	}
	return posts
}

// PostMagnets holds the magnets found on a single post page.
// Error is set when the page could not be fetched or scraped.
type PostMagnets struct {
	URL     string   `json:"url"`
	Magnets []string `json:"magnets"`
	Error   error    `json:"-"`
}

// Scraper fetches site pages and applies the site's rules to them.
type Scraper interface {
	// Search fetches the site's search page for query and extracts titles
	// and post URLs from it.
	Search(ctx context.Context, site *Site, query string) (*Listing, error)

	// Magnets fetches one post page and returns the magnets found on it.
	Magnets(ctx context.Context, site *Site, postURL string) ([]string, error)

	// MagnetsAll is like Magnets for several post pages. Results are in the
	// order of postURLs; per-page failures are reported in PostMagnets.Error.
	MagnetsAll(ctx context.Context, site *Site, postURLs []string) ([]*PostMagnets, error)
}
