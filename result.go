package ktorrent

import (
	"context"
	"time"
)

// Result kinds.
const (
	ResultTitle  = "title"
	ResultPost   = "post"
	ResultMagnet = "magnet"
)

// Result is one stored extracted value.
type Result struct {
	ID        string    `json:"id"`
	Site      string    `json:"site"`
	Kind      string    `json:"kind"`
	Value     string    `json:"value"`
	SourceURL string    `json:"sourceUrl"`
	ValueHash string    `json:"valueHash"`
	FetchedAt time.Time `json:"fetchedAt"`
}

// Validate returns an error if the result contains invalid fields.
func (r *Result) Validate() error {
	if r.Site == "" {
		return Errorf(EINVALID, "result site required")
	}
	switch r.Kind {
	case ResultTitle, ResultPost, ResultMagnet:
	default:
		return Errorf(EINVALID, "invalid result kind %q", r.Kind)
	}
	if r.Value == "" {
		return Errorf(EINVALID, "result value required")
	}
	return nil
}

// ResultService represents a service for storing extracted values.
type ResultService interface {
	// CreateResult stores a new result. ID, ValueHash and FetchedAt are set.
	CreateResult(ctx context.Context, result *Result) error

	// FindResults retrieves results matching the filter, newest first.
	FindResults(ctx context.Context, filter ResultFilter) ([]*Result, error)

	// DeleteResultsBySite removes all results for a site.
	DeleteResultsBySite(ctx context.Context, site string) error
}

// ResultFilter represents a filter for FindResults.
type ResultFilter struct {
	Site      *string `json:"site"`
	Kind      *string `json:"kind"`
	ValueHash *string `json:"valueHash"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
