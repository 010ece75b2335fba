// Package prometheus records fetch and extraction counters with
// github.com/prometheus/client_golang.
package prometheus

import (
	"context"
	"time"

	"github.com/fwojciec/ktorrent"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the collectors shared by the instrumented services.
type Metrics struct {
	PagesFetched  prometheus.Counter
	FetchErrors   prometheus.Counter
	BytesFetched  prometheus.Counter
	FetchDuration prometheus.Histogram
	Extractions   *prometheus.CounterVec
	ValuesFound   *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		PagesFetched: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "ktorrent_pages_fetched_total",
			Help: "Total number of pages successfully fetched",
		}),
		FetchErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "ktorrent_fetch_errors_total",
			Help: "Total number of failed fetches",
		}),
		BytesFetched: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "ktorrent_bytes_fetched_total",
			Help: "Total bytes of HTML downloaded",
		}),
		FetchDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "ktorrent_fetch_duration_seconds",
			Help:    "Page fetch latency",
			Buckets: prometheus.DefBuckets,
		}),
		Extractions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "ktorrent_extractions_total",
			Help: "Extractor runs by rule kind and error code",
		}, []string{"kind", "code"}),
		ValuesFound: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "ktorrent_values_extracted_total",
			Help: "Values returned by extractors by rule kind",
		}, []string{"kind"}),
	}
	reg.MustRegister(m.PagesFetched, m.FetchErrors, m.BytesFetched, m.FetchDuration, m.Extractions, m.ValuesFound)
	return m
}

var _ ktorrent.Fetcher = (*Fetcher)(nil)

// Fetcher wraps a Fetcher and counts fetched pages and bytes.
type Fetcher struct {
	next    ktorrent.Fetcher
	metrics *Metrics
}

// NewFetcher creates a new instrumented Fetcher.
func NewFetcher(next ktorrent.Fetcher, metrics *Metrics) *Fetcher {
	return &Fetcher{next: next, metrics: metrics}
}

// Fetch delegates to the wrapped fetcher.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	begin := time.Now()
	html, err := f.next.Fetch(ctx, url)
	f.metrics.FetchDuration.Observe(time.Since(begin).Seconds())
	if err != nil {
		f.metrics.FetchErrors.Inc()
		return "", err
	}
	f.metrics.PagesFetched.Inc()
	f.metrics.BytesFetched.Add(float64(len(html)))
	return html, nil
}

// Close delegates to the wrapped fetcher.
func (f *Fetcher) Close() error {
	return f.next.Close()
}

var _ ktorrent.Extractor = (*Extractor)(nil)

// Extractor wraps an Extractor and counts runs and values per rule kind.
type Extractor struct {
	next    ktorrent.Extractor
	metrics *Metrics
}

// NewExtractor creates a new instrumented Extractor.
func NewExtractor(next ktorrent.Extractor, metrics *Metrics) *Extractor {
	return &Extractor{next: next, metrics: metrics}
}

// Extract delegates to the wrapped extractor. Successful runs are counted
// with an empty code.
func (e *Extractor) Extract(html string, rule ktorrent.Rule) ([]string, error) {
	values, err := e.next.Extract(html, rule)
	kind := string(rule.Kind)
	e.metrics.Extractions.WithLabelValues(kind, ktorrent.ErrorCode(err)).Inc()
	e.metrics.ValuesFound.WithLabelValues(kind).Add(float64(len(values)))
	return values, err
}
