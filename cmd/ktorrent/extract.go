package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fwojciec/ktorrent"
)

// Rule builds the extraction rule described by the command's flags.
func (c *ExtractCmd) Rule() ktorrent.Rule {
	return ktorrent.Rule{
		Kind:        ktorrent.Kind(c.Kind),
		ParentClass: c.ParentClass,
		ParentTag:   c.ParentTag,
		ChildTag:    c.ChildTag,
		ChildClass:  c.ChildClass,
		ChildAttr:   c.Attr,
	}
}

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	rule := c.Rule()
	if err := rule.Validate(); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", ktorrent.ErrorMessage(err))
		return err
	}

	html, err := c.read(deps.Stdin)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}

	values, err := deps.Extractor.Extract(html, rule)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", ktorrent.ErrorMessage(err))
		return err
	}

	for _, v := range values {
		fmt.Fprintln(deps.Stdout, v)
	}
	return nil
}

func (c *ExtractCmd) read(stdin io.Reader) (string, error) {
	r := stdin
	if c.File != "" && c.File != "-" {
		f, err := os.Open(c.File)
		if err != nil {
			return "", fmt.Errorf("failed to open %s: %w", c.File, err)
		}
		defer f.Close()
		r = f
	}
	b, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return string(b), nil
}
