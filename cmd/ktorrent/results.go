package main

import (
	"fmt"
	"time"

	"github.com/fwojciec/ktorrent"
	"github.com/fwojciec/ktorrent/sqlite"
)

// Run executes the results command.
func (c *ResultsCmd) Run(deps *Dependencies) error {
	if c.Clear {
		return c.clear(deps)
	}

	filter := ktorrent.ResultFilter{Limit: c.Limit, Offset: c.Offset}
	if c.Site != "" {
		filter.Site = &c.Site
	}
	if c.Value != "" {
		hash := sqlite.HashValue(c.Value)
		filter.ValueHash = &hash
	}
	if c.Kind != "" {
		switch c.Kind {
		case ktorrent.ResultTitle, ktorrent.ResultPost, ktorrent.ResultMagnet:
		default:
			err := ktorrent.Errorf(ktorrent.EINVALID, "invalid result kind %q", c.Kind)
			fmt.Fprintf(deps.Stderr, "error: %s\n", ktorrent.ErrorMessage(err))
			return err
		}
		filter.Kind = &c.Kind
	}

	results, err := deps.Results.FindResults(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", ktorrent.ErrorMessage(err))
		return err
	}

	if len(results) == 0 {
		fmt.Fprintln(deps.Stdout, "No results found. Use 'ktorrent search --save' or 'ktorrent magnet --save' to store some.")
		return nil
	}

	for _, r := range results {
		fmt.Fprintf(deps.Stdout, "%s\t%s\t%s\t%s\n", r.FetchedAt.Format(time.DateTime), r.Site, r.Kind, r.Value)
	}
	return nil
}

func (c *ResultsCmd) clear(deps *Dependencies) error {
	if c.Site == "" {
		err := ktorrent.Errorf(ktorrent.EINVALID, "--clear requires --site")
		fmt.Fprintf(deps.Stderr, "error: %s\n", ktorrent.ErrorMessage(err))
		return err
	}
	if err := deps.Results.DeleteResultsBySite(deps.Ctx, c.Site); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", ktorrent.ErrorMessage(err))
		return err
	}
	fmt.Fprintf(deps.Stdout, "Deleted results for %s.\n", c.Site)
	return nil
}
