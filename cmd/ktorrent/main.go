package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/ktorrent"
	"github.com/fwojciec/ktorrent/goquery"
	kthttp "github.com/fwojciec/ktorrent/http"
	ktprom "github.com/fwojciec/ktorrent/prometheus"
	"github.com/fwojciec/ktorrent/scrape"
	ktslog "github.com/fwojciec/ktorrent/slog"
	"github.com/fwojciec/ktorrent/sqlite"
	"github.com/fwojciec/ktorrent/yaml"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	ctx := context.Background()

	// KTORRENT_* settings may come from a .env file in the working directory.
	_ = godotenv.Load()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path used when neither --db nor KTORRENT_DB is set.
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Fetcher overrides the HTTP fetcher. Used by end-to-end tests.
	Fetcher ktorrent.Fetcher
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdin:  stdin,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("ktorrent"),
		kong.Description("Scrape titles, post links and magnets from Korean torrent boards"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
		kong.Bind(deps),
		Vars(m.DBPath),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'ktorrent --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	cmd = strings.Fields(kongCtx.Command())[0]

	logger := slog.New(slog.DiscardHandler)
	if cli.Verbose {
		logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
	deps.Logger = logger

	var metrics *ktprom.Metrics
	registry := prometheus.NewRegistry()
	if cli.MetricsFile != "" {
		metrics = ktprom.NewMetrics(registry)
	}

	var extractor ktorrent.Extractor = goquery.NewExtractor()
	if metrics != nil {
		extractor = ktprom.NewExtractor(extractor, metrics)
	}
	deps.Extractor = ktslog.NewLoggingExtractor(extractor, logger)

	sites, err := loadSites(cli.SitesFile)
	if err != nil {
		fmt.Fprintln(stderr, "Hint: Set KTORRENT_SITES to a valid sites file")
		return err
	}
	deps.Sites = sites

	needsDB := cmd == "results" ||
		(cmd == "search" && cli.Search.Save) ||
		(cmd == "magnet" && cli.Magnet.Save)
	if needsDB {
		if dir := filepath.Dir(cli.DB); dir != "." {
			_ = os.MkdirAll(dir, 0755)
		}
		m.DB = sqlite.NewDB(cli.DB)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintf(stderr, "Hint: Set KTORRENT_DB to use a different database path\n")
			return fmt.Errorf("failed to open database at %q: %w", cli.DB, err)
		}
		defer m.Close()
		deps.Results = sqlite.NewResultService(m.DB)
	}

	if cmd == "search" || cmd == "magnet" {
		fetcher := m.Fetcher
		if fetcher == nil {
			fetcher = kthttp.NewFetcher(kthttp.WithTimeout(cli.Timeout))
		}
		if metrics != nil {
			fetcher = ktprom.NewFetcher(fetcher, metrics)
		}
		fetcher = ktslog.NewLoggingFetcher(fetcher, logger)
		defer fetcher.Close()

		s := &scrape.Scraper{
			Fetcher:     fetcher,
			Extractor:   deps.Extractor,
			Concurrency: cli.Magnet.Concurrency,
			Logf: func(format string, args ...any) {
				logger.Warn(fmt.Sprintf(format, args...))
			},
		}
		if needsDB {
			s.Results = deps.Results
		}
		deps.Scraper = s
	}

	runErr := kongCtx.Run(deps)
	if metrics != nil {
		if err := prometheus.WriteToTextfile(cli.MetricsFile, registry); err != nil {
			fmt.Fprintf(stderr, "warning: failed to write metrics: %v\n", err)
		}
	}
	return runErr
}

// loadSites returns the built-in site profiles overridden by those in the
// YAML file at path, if any.
func loadSites(path string) (*ktorrent.Sites, error) {
	sites := ktorrent.NewSites(ktorrent.DefaultSites()...)
	if path == "" {
		return sites, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sites file: %w", err)
	}
	defer f.Close()

	custom, err := yaml.LoadSites(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %s", path, ktorrent.ErrorMessage(err))
	}
	for _, s := range custom {
		sites.Register(s)
	}
	return sites, nil
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "ktorrent.db"
	}
	return filepath.Join(home, ".ktorrent", "ktorrent.db")
}
