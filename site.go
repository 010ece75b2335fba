package ktorrent

import (
	"net/url"
	"sort"
	"strings"
	"sync"
)

// QueryPlaceholder marks where the escaped search query goes in Site.SearchPath.
const QueryPlaceholder = "{query}"

// Site describes how to scrape one torrent bulletin board: where its search
// page lives and which rule extracts each piece of data.
type Site struct {
	Name       string `json:"name" yaml:"name"`
	BaseURL    string `json:"baseUrl" yaml:"baseUrl"`
	SearchPath string `json:"searchPath" yaml:"searchPath"`

	// Title extracts post titles from the search page.
	Title Rule `json:"title" yaml:"title"`

	// Post extracts post URLs from the search page.
	Post Rule `json:"post" yaml:"post"`

	// Magnet extracts magnet links from a post page.
	Magnet Rule `json:"magnet" yaml:"magnet"`
}

// Validate returns an error if the site contains invalid fields.
func (s *Site) Validate() error {
	if s.Name == "" {
		return Errorf(EINVALID, "site name required")
	}
	if s.BaseURL != "" {
		u, err := url.Parse(s.BaseURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return Errorf(EINVALID, "site %s: invalid base URL %q", s.Name, s.BaseURL)
		}
	}
	if s.SearchPath != "" && !strings.Contains(s.SearchPath, QueryPlaceholder) {
		return Errorf(EINVALID, "site %s: search path must contain %s", s.Name, QueryPlaceholder)
	}
	for name, r := range map[string]Rule{"title": s.Title, "post": s.Post, "magnet": s.Magnet} {
		if r.IsZero() {
			continue
		}
		if err := r.Validate(); err != nil {
			return Errorf(EINVALID, "site %s: %s %s", s.Name, name, ErrorMessage(err))
		}
	}
	return nil
}

// SearchURL builds the absolute search page URL for query.
func (s *Site) SearchURL(query string) (string, error) {
	if s.BaseURL == "" || s.SearchPath == "" {
		return "", Errorf(EINVALID, "site %s: base URL and search path must be configured to search", s.Name)
	}
	path := strings.ReplaceAll(s.SearchPath, QueryPlaceholder, url.QueryEscape(query))
	return s.ResolveURL(path)
}

// ResolveURL resolves href (as found on a page of this site) against BaseURL.
// Absolute hrefs are returned unchanged.
func (s *Site) ResolveURL(href string) (string, error) {
	if s.BaseURL == "" {
		if u, err := ResolveReference("", href); err == nil {
			return u, nil
		}
		return "", Errorf(EINVALID, "site %s: cannot resolve relative URL %q without a base URL", s.Name, href)
	}
	return ResolveReference(s.BaseURL, href)
}

// ResolveReference resolves href against the absolute URL base. An empty
// base only accepts absolute hrefs.
func ResolveReference(base, href string) (string, error) {
	ref, err := url.Parse(strings.TrimSpace(href))
	if err != nil {
		return "", Errorf(EINVALID, "invalid URL %q: %v", href, err)
	}
	if ref.IsAbs() {
		return ref.String(), nil
	}
	b, err := url.Parse(base)
	if err != nil || !b.IsAbs() {
		return "", Errorf(EINVALID, "cannot resolve %q against %q", href, base)
	}
	return b.ResolveReference(ref).String(), nil
}

// Sites is a registry of site profiles keyed by name.
// It is safe for concurrent use.
type Sites struct {
	mu    sync.RWMutex
	sites map[string]*Site
}

// NewSites creates a registry containing the given sites.
func NewSites(sites ...*Site) *Sites {
	r := &Sites{sites: make(map[string]*Site)}
	for _, s := range sites {
		r.Register(s)
	}
	return r
}

// Get returns the site registered under name.
// Returns ENOTFOUND if no site is registered.
func (r *Sites) Get(name string) (*Site, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sites[name]
	if !ok {
		return nil, Errorf(ENOTFOUND, "site %q not found", name)
	}
	return s, nil
}

// GetForURL returns the site whose base URL host matches rawURL's host.
// Returns ENOTFOUND if no site matches.
func (r *Sites) GetForURL(rawURL string) (*Site, error) {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return nil, Errorf(EINVALID, "invalid URL %q", rawURL)
	}
	host := strings.ToLower(u.Hostname())

	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, s := range r.sites {
		if s.BaseURL == "" {
			continue
		}
		b, err := url.Parse(s.BaseURL)
		if err != nil {
			continue
		}
		if strings.ToLower(b.Hostname()) == host {
			return s, nil
		}
	}
	return nil, Errorf(ENOTFOUND, "no site configured for host %q", host)
}

// Register adds a site to the registry.
// If a site is already registered under the same name, it is replaced.
func (r *Sites) Register(site *Site) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sites[site.Name] = site
}

// List returns all registered sites sorted by name.
func (r *Sites) List() []*Site {
	r.mu.RLock()
	defer r.mu.RUnlock()
	sites := make([]*Site, 0, len(r.sites))
	for _, s := range r.sites {
		sites = append(sites, s)
	}
	sort.Slice(sites, func(i, j int) bool { return sites[i].Name < sites[j].Name })
	return sites
}
