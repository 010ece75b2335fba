package main

import "fmt"

// Run executes the sites command.
func (c *SitesCmd) Run(deps *Dependencies) error {
	for _, s := range deps.Sites.List() {
		baseURL := s.BaseURL
		if baseURL == "" {
			baseURL = "-"
		}
		fmt.Fprintf(deps.Stdout, "%s\t%s\n", s.Name, baseURL)
	}
	return nil
}
