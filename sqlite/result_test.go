package sqlite_test

import (
	"context"
	"testing"
	"time"

	"github.com/fwojciec/ktorrent"
	"github.com/fwojciec/ktorrent/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResultService_CreateResult(t *testing.T) {
	t.Parallel()

	t.Run("assigns ID, hash and fetch time", func(t *testing.T) {
		t.Parallel()

		s := sqlite.NewResultService(openTestDB(t))
		r := &ktorrent.Result{
			Site:      "torrentsir",
			Kind:      ktorrent.ResultMagnet,
			Value:     "magnet:?xt=urn:btih:27646d3df274ed51b6386bd6aa40da849a73b341",
			SourceURL: "https://torrentsir.example/bbs/board.php?bo_table=entertain&wr_id=18170",
		}

		err := s.CreateResult(context.Background(), r)

		require.NoError(t, err)
		assert.NotEmpty(t, r.ID)
		assert.Equal(t, sqlite.HashValue(r.Value), r.ValueHash)
		assert.Len(t, r.ValueHash, 16)
		assert.False(t, r.FetchedAt.IsZero())
	})

	t.Run("keeps a provided fetch time", func(t *testing.T) {
		t.Parallel()

		s := sqlite.NewResultService(openTestDB(t))
		at := time.Date(2021, 2, 1, 12, 0, 0, 0, time.UTC)
		r := &ktorrent.Result{Site: "torrentsir", Kind: ktorrent.ResultTitle, Value: "E182", FetchedAt: at}

		require.NoError(t, s.CreateResult(context.Background(), r))

		found, err := s.FindResults(context.Background(), ktorrent.ResultFilter{})
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.True(t, at.Equal(found[0].FetchedAt))
	})

	t.Run("rejects invalid result", func(t *testing.T) {
		t.Parallel()

		s := sqlite.NewResultService(openTestDB(t))

		err := s.CreateResult(context.Background(), &ktorrent.Result{Site: "torrentsir", Kind: ktorrent.ResultMagnet})

		require.Error(t, err)
		assert.Equal(t, ktorrent.EINVALID, ktorrent.ErrorCode(err))
	})

	t.Run("stores duplicate values as separate results", func(t *testing.T) {
		t.Parallel()

		s := sqlite.NewResultService(openTestDB(t))
		ctx := context.Background()

		for range 2 {
			require.NoError(t, s.CreateResult(ctx, &ktorrent.Result{Site: "torrentsir", Kind: ktorrent.ResultMagnet, Value: "magnet:?xt=urn:btih:abc"}))
		}

		found, err := s.FindResults(ctx, ktorrent.ResultFilter{})
		require.NoError(t, err)
		assert.Len(t, found, 2)
	})
}

func TestResultService_FindResults(t *testing.T) {
	t.Parallel()

	seed := func(t *testing.T) *sqlite.ResultService {
		t.Helper()
		s := sqlite.NewResultService(openTestDB(t))
		ctx := context.Background()
		base := time.Date(2021, 2, 1, 0, 0, 0, 0, time.UTC)
		results := []*ktorrent.Result{
			{Site: "torrentsir", Kind: ktorrent.ResultMagnet, Value: "magnet:?xt=urn:btih:aaa", FetchedAt: base},
			{Site: "torrentsir", Kind: ktorrent.ResultTitle, Value: "E182", FetchedAt: base.Add(time.Hour)},
			{Site: "torrentplay", Kind: ktorrent.ResultMagnet, Value: "magnet:?xt=urn:btih:bbb", FetchedAt: base.Add(2 * time.Hour)},
		}
		for _, r := range results {
			require.NoError(t, s.CreateResult(ctx, r))
		}
		return s
	}

	t.Run("returns all results newest first", func(t *testing.T) {
		t.Parallel()

		s := seed(t)

		found, err := s.FindResults(context.Background(), ktorrent.ResultFilter{})

		require.NoError(t, err)
		require.Len(t, found, 3)
		assert.Equal(t, "magnet:?xt=urn:btih:bbb", found[0].Value)
		assert.Equal(t, "E182", found[1].Value)
		assert.Equal(t, "magnet:?xt=urn:btih:aaa", found[2].Value)
	})

	t.Run("filters by site and kind", func(t *testing.T) {
		t.Parallel()

		s := seed(t)
		site := "torrentsir"
		kind := ktorrent.ResultMagnet

		found, err := s.FindResults(context.Background(), ktorrent.ResultFilter{Site: &site, Kind: &kind})

		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, "magnet:?xt=urn:btih:aaa", found[0].Value)
	})

	t.Run("filters by value hash", func(t *testing.T) {
		t.Parallel()

		s := seed(t)
		hash := sqlite.HashValue("magnet:?xt=urn:btih:bbb")

		found, err := s.FindResults(context.Background(), ktorrent.ResultFilter{ValueHash: &hash})

		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, "torrentplay", found[0].Site)
	})

	t.Run("paginates", func(t *testing.T) {
		t.Parallel()

		s := seed(t)

		page, err := s.FindResults(context.Background(), ktorrent.ResultFilter{Limit: 1, Offset: 1})
		require.NoError(t, err)
		require.Len(t, page, 1)
		assert.Equal(t, "E182", page[0].Value)

		rest, err := s.FindResults(context.Background(), ktorrent.ResultFilter{Offset: 2})
		require.NoError(t, err)
		require.Len(t, rest, 1)
		assert.Equal(t, "magnet:?xt=urn:btih:aaa", rest[0].Value)
	})
}

func TestResultService_DeleteResultsBySite(t *testing.T) {
	t.Parallel()

	s := sqlite.NewResultService(openTestDB(t))
	ctx := context.Background()
	require.NoError(t, s.CreateResult(ctx, &ktorrent.Result{Site: "torrentsir", Kind: ktorrent.ResultMagnet, Value: "a"}))
	require.NoError(t, s.CreateResult(ctx, &ktorrent.Result{Site: "tshare", Kind: ktorrent.ResultMagnet, Value: "b"}))

	err := s.DeleteResultsBySite(ctx, "torrentsir")
	require.NoError(t, err)

	found, err := s.FindResults(ctx, ktorrent.ResultFilter{})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "tshare", found[0].Site)
}
