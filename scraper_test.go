package ktorrent_test

import (
	"testing"

	"github.com/fwojciec/ktorrent"
	"github.com/stretchr/testify/assert"
)

func TestListing_Posts(t *testing.T) {
	t.Parallel()

	t.Run("pairs titles with post URLs", func(t *testing.T) {
		t.Parallel()

		l := &ktorrent.Listing{
			Titles:   []string{"E182", "E183"},
			PostURLs: []string{"/p/1", "/p/2"},
		}

		assert.Equal(t, []ktorrent.Post{
			{Title: "E182", URL: "/p/1"},
			{Title: "E183", URL: "/p/2"},
		}, l.Posts())
	})

	t.Run("stops at the shorter list", func(t *testing.T) {
		t.Parallel()

		l := &ktorrent.Listing{
			Titles:   []string{"E182"},
			PostURLs: []string{"/p/1", "/p/2", "/p/3"},
		}

		assert.Len(t, l.Posts(), 1)
	})

	t.Run("returns empty for empty listing", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, (&ktorrent.Listing{}).Posts())
	})
}
