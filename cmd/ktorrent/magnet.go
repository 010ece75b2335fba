package main

import (
	"fmt"

	"github.com/fwojciec/ktorrent"
)

// siteAuto selects the site profile by the host of the first post URL.
const siteAuto = "auto"

// Run executes the magnet command.
func (c *MagnetCmd) Run(deps *Dependencies) error {
	if len(c.URLs) == 0 {
		err := ktorrent.Errorf(ktorrent.EINVALID, "at least one post URL required")
		fmt.Fprintf(deps.Stderr, "error: %s\n", ktorrent.ErrorMessage(err))
		return err
	}

	var site *ktorrent.Site
	var err error
	if c.Site == siteAuto {
		site, err = deps.Sites.GetForURL(c.URLs[0])
	} else {
		site, err = deps.Sites.Get(c.Site)
	}
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", ktorrent.ErrorMessage(err))
		return err
	}

	results, err := deps.Scraper.MagnetsAll(deps.Ctx, site, c.URLs)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", errorText(err))
		return err
	}

	var failed int
	for _, r := range results {
		if r.Error != nil {
			failed++
			fmt.Fprintf(deps.Stderr, "error: %s: %s\n", r.URL, errorText(r.Error))
			continue
		}
		for _, m := range r.Magnets {
			fmt.Fprintln(deps.Stdout, m)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d post pages failed", failed, len(results))
	}
	return nil
}
