package mock

import (
	"context"

	"github.com/fwojciec/ktorrent"
)

var _ ktorrent.ResultService = (*ResultService)(nil)

// ResultService is a mock implementation of ktorrent.ResultService.
type ResultService struct {
	CreateResultFn        func(ctx context.Context, result *ktorrent.Result) error
	FindResultsFn         func(ctx context.Context, filter ktorrent.ResultFilter) ([]*ktorrent.Result, error)
	DeleteResultsBySiteFn func(ctx context.Context, site string) error
}

func (s *ResultService) CreateResult(ctx context.Context, result *ktorrent.Result) error {
	return s.CreateResultFn(ctx, result)
}

func (s *ResultService) FindResults(ctx context.Context, filter ktorrent.ResultFilter) ([]*ktorrent.Result, error) {
	return s.FindResultsFn(ctx, filter)
}

func (s *ResultService) DeleteResultsBySite(ctx context.Context, site string) error {
	return s.DeleteResultsBySiteFn(ctx, site)
}
