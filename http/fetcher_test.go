package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fwojciec/ktorrent"
	kthttp "github.com/fwojciec/ktorrent/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("returns HTML body from server", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			_, _ = w.Write([]byte(`<html><body><b class="sch_word">동상이몽2</b></body></html>`))
		}))
		defer server.Close()

		fetcher := kthttp.NewFetcher()
		defer fetcher.Close()

		html, err := fetcher.Fetch(context.Background(), server.URL)
		require.NoError(t, err)
		assert.Equal(t, `<html><body><b class="sch_word">동상이몽2</b></body></html>`, html)
	})

	t.Run("decodes EUC-KR pages to UTF-8", func(t *testing.T) {
		t.Parallel()

		// "동상이몽" in EUC-KR.
		eucKR := []byte{0xb5, 0xbf, 0xbb, 0xf3, 0xc0, 0xcc, 0xb8, 0xf9}

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/html; charset=euc-kr")
			_, _ = w.Write([]byte("<html><body><p class=\"tit\">"))
			_, _ = w.Write(eucKR)
			_, _ = w.Write([]byte("</p></body></html>"))
		}))
		defer server.Close()

		fetcher := kthttp.NewFetcher()
		defer fetcher.Close()

		html, err := fetcher.Fetch(context.Background(), server.URL)
		require.NoError(t, err)
		assert.Contains(t, html, `<p class="tit">동상이몽</p>`)
	})

	t.Run("sends the configured user agent", func(t *testing.T) {
		t.Parallel()

		got := make(chan string, 1)
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got <- r.Header.Get("User-Agent")
			_, _ = w.Write([]byte("<html></html>"))
		}))
		defer server.Close()

		fetcher := kthttp.NewFetcher(kthttp.WithUserAgent("ktorrent-test/1.0"))
		defer fetcher.Close()

		_, err := fetcher.Fetch(context.Background(), server.URL)
		require.NoError(t, err)
		assert.Equal(t, "ktorrent-test/1.0", <-got)
	})

	t.Run("sends a browser user agent by default", func(t *testing.T) {
		t.Parallel()

		got := make(chan string, 1)
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got <- r.Header.Get("User-Agent")
			_, _ = w.Write([]byte("<html></html>"))
		}))
		defer server.Close()

		fetcher := kthttp.NewFetcher()
		defer fetcher.Close()

		_, err := fetcher.Fetch(context.Background(), server.URL)
		require.NoError(t, err)
		assert.Equal(t, kthttp.DefaultUserAgent, <-got)
	})

	t.Run("respects custom timeout option", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(100 * time.Millisecond)
			_, _ = w.Write([]byte("response"))
		}))
		defer server.Close()

		fetcher := kthttp.NewFetcher(kthttp.WithTimeout(10 * time.Millisecond))
		defer fetcher.Close()

		_, err := fetcher.Fetch(context.Background(), server.URL)
		require.Error(t, err)
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(100 * time.Millisecond)
			_, _ = w.Write([]byte("response"))
		}))
		defer server.Close()

		fetcher := kthttp.NewFetcher()
		defer fetcher.Close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := fetcher.Fetch(ctx, server.URL)
		require.Error(t, err)
	})

	t.Run("returns error for non-200 status codes", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte("404 Not Found"))
		}))
		defer server.Close()

		fetcher := kthttp.NewFetcher()
		defer fetcher.Close()

		_, err := fetcher.Fetch(context.Background(), server.URL)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "404")
		assert.Equal(t, ktorrent.ENOTFOUND, ktorrent.ErrorCode(err))
	})

	t.Run("classifies status codes", func(t *testing.T) {
		t.Parallel()

		tests := []struct {
			status int
			code   string
		}{
			{http.StatusGone, ktorrent.ENOTFOUND},
			{http.StatusForbidden, ktorrent.EINVALID},
			{http.StatusServiceUnavailable, ktorrent.EINTERNAL},
		}
		for _, tt := range tests {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))

			_, err := kthttp.NewFetcher().Fetch(context.Background(), server.URL)
			server.Close()

			require.Error(t, err)
			assert.Equal(t, tt.code, ktorrent.ErrorCode(err), "status %d", tt.status)
		}
	})

	t.Run("rejects malformed URL", func(t *testing.T) {
		t.Parallel()

		_, err := kthttp.NewFetcher().Fetch(context.Background(), "http://[::1")

		assert.Equal(t, ktorrent.EINVALID, ktorrent.ErrorCode(err))
	})
}

// Compile-time verification that Fetcher implements ktorrent.Fetcher
var _ ktorrent.Fetcher = (*kthttp.Fetcher)(nil)
