package main

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/ktorrent"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdin     io.Reader
	Stdout    io.Writer
	Stderr    io.Writer
	Logger    *slog.Logger
	Sites     *ktorrent.Sites
	Extractor ktorrent.Extractor
	Scraper   ktorrent.Scraper
	Results   ktorrent.ResultService
}

// Vars returns the Kong variables interpolated into the CLI tags.
func Vars(dbPath string) kong.Vars {
	kinds := make([]string, 0, len(ktorrent.Kinds()))
	for _, k := range ktorrent.Kinds() {
		kinds = append(kinds, string(k))
	}
	return kong.Vars{
		"db":    dbPath,
		"kinds": strings.Join(kinds, ","),
	}
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	DB          string        `name:"db" env:"KTORRENT_DB" default:"${db}" help:"Path of the results database"`
	SitesFile   string        `name:"sites-file" env:"KTORRENT_SITES" type:"path" help:"YAML file with site profiles overriding the built-in ones"`
	Timeout     time.Duration `env:"KTORRENT_TIMEOUT" default:"10s" help:"Fetch timeout per page"`
	Verbose     bool          `short:"v" help:"Log fetches and extractions to stderr"`
	MetricsFile string        `name:"metrics-file" env:"KTORRENT_METRICS" type:"path" help:"Write Prometheus metrics to this file after the command"`

	Extract ExtractCmd `cmd:"" help:"Run one extractor on a local HTML file"`
	Search  SearchCmd  `cmd:"" help:"Search a site and list matching posts"`
	Magnet  MagnetCmd  `cmd:"" help:"Extract magnets from post pages"`
	Sites   SitesCmd   `cmd:"" help:"List site profiles"`
	Results ResultsCmd `cmd:"" help:"List stored results"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	Kind        string `arg:"" enum:"${kinds}" help:"Extractor to run (${enum})"`
	File        string `arg:"" optional:"" default:"-" help:"HTML file to read, - for stdin"`
	ParentClass string `help:"Class token of parent elements"`
	ParentTag   string `help:"Tag name of parent elements"`
	ChildTag    string `help:"Tag name of the child element"`
	ChildClass  string `help:"Attribute value identifying child elements"`
	Attr        string `help:"Attribute to read from the child element"`
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Site  string `arg:"" help:"Site profile name"`
	Query string `arg:"" help:"Search query"`
	Save  bool   `short:"s" help:"Store titles and post URLs in the database"`
}

// MagnetCmd is the "magnet" subcommand.
type MagnetCmd struct {
	Site        string   `arg:"" help:"Site profile name, or auto to pick by URL host"`
	URLs        []string `arg:"" name:"post-url" help:"Post page URLs"`
	Save        bool     `short:"s" help:"Store magnets in the database"`
	Concurrency int      `short:"c" default:"4" help:"Concurrent fetch limit"`
}

// SitesCmd is the "sites" subcommand.
type SitesCmd struct{}

// ResultsCmd is the "results" subcommand.
type ResultsCmd struct {
	Site   string `help:"Only show results from this site"`
	Kind   string `help:"Only show results of this kind (title, post or magnet)"`
	Value  string `help:"Only show results with exactly this value"`
	Limit  int    `short:"n" default:"0" help:"Maximum number of results, 0 for all"`
	Offset int    `default:"0" help:"Number of results to skip"`
	Clear  bool   `help:"Delete all stored results of --site instead of listing them"`
}
