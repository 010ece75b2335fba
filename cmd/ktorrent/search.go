package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/ktorrent"
)

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	site, err := deps.Sites.Get(c.Site)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", ktorrent.ErrorMessage(err))
		return err
	}

	listing, err := deps.Scraper.Search(deps.Ctx, site, c.Query)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", errorText(err))
		return err
	}

	posts := listing.Posts()
	if len(posts) == 0 {
		fmt.Fprintf(deps.Stderr, "No posts found for %q on %s.\n", c.Query, site.Name)
		return nil
	}
	if len(listing.Titles) != len(listing.PostURLs) {
		fmt.Fprintf(deps.Stderr, "warning: %d titles but %d post URLs, showing %d\n",
			len(listing.Titles), len(listing.PostURLs), len(posts))
	}

	for _, p := range posts {
		fmt.Fprintf(deps.Stdout, "%s\t%s\n", oneLine(p.Title), p.URL)
	}
	return nil
}

// oneLine collapses runs of whitespace, newlines included, into single
// spaces so each post prints on one tab-separated line.
func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// errorText returns the message of application errors and the full
// error chain of anything else.
func errorText(err error) string {
	if ktorrent.ErrorCode(err) == ktorrent.EINTERNAL {
		return err.Error()
	}
	return ktorrent.ErrorMessage(err)
}
