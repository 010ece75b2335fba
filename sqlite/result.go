package sqlite

import (
	"context"
	"encoding/binary"
	"encoding/hex"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/ktorrent"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ ktorrent.ResultService = (*ResultService)(nil)

// ResultService implements ktorrent.ResultService using SQLite.
type ResultService struct {
	db *DB
}

// NewResultService creates a new ResultService.
func NewResultService(db *DB) *ResultService {
	return &ResultService{db: db}
}

// HashValue computes the xxHash of value and returns it as hex.
func HashValue(value string) string {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, xxhash.Sum64String(value))
	return hex.EncodeToString(b)
}

// CreateResult stores a new result.
func (s *ResultService) CreateResult(ctx context.Context, result *ktorrent.Result) error {
	if err := result.Validate(); err != nil {
		return err
	}

	result.ID = uuid.New().String()
	result.ValueHash = HashValue(result.Value)
	if result.FetchedAt.IsZero() {
		result.FetchedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO results (id, site, kind, value, source_url, value_hash, fetched_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, result.ID, result.Site, result.Kind, result.Value, result.SourceURL, result.ValueHash,
		result.FetchedAt.Format(time.RFC3339))

	return err
}

// FindResults retrieves results matching the filter, newest first.
func (s *ResultService) FindResults(ctx context.Context, filter ktorrent.ResultFilter) ([]*ktorrent.Result, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, site, kind, value, source_url, value_hash, fetched_at FROM results WHERE 1=1")

	if filter.Site != nil {
		query.WriteString(" AND site = ?")
		args = append(args, *filter.Site)
	}
	if filter.Kind != nil {
		query.WriteString(" AND kind = ?")
		args = append(args, *filter.Kind)
	}
	if filter.ValueHash != nil {
		query.WriteString(" AND value_hash = ?")
		args = append(args, *filter.ValueHash)
	}

	query.WriteString(" ORDER BY fetched_at DESC, rowid ASC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []*ktorrent.Result
	for rows.Next() {
		var r ktorrent.Result
		var fetchedAt string

		if err := rows.Scan(&r.ID, &r.Site, &r.Kind, &r.Value, &r.SourceURL, &r.ValueHash, &fetchedAt); err != nil {
			return nil, err
		}

		r.FetchedAt, err = parseRFC3339(fetchedAt, "fetched_at")
		if err != nil {
			return nil, err
		}

		results = append(results, &r)
	}

	return results, rows.Err()
}

// DeleteResultsBySite removes all results for a site.
func (s *ResultService) DeleteResultsBySite(ctx context.Context, site string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM results WHERE site = ?`, site)
	return err
}
