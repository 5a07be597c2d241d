package echo

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cgoodale/echo-mod09ga/pkg/modis"
)

func TestNewClientDefaults(t *testing.T) {
	cli, err := NewClient("")
	require.NoError(t, err)
	assert.Equal(t, DefaultBaseURL, cli.baseURL.String())
	assert.Equal(t, DefaultPageSize, cli.pageSize)
}

func TestNewClientInvalidBaseURL(t *testing.T) {
	_, err := NewClient("not-a-url/granules.json")
	assert.ErrorIs(t, err, ErrInvalidBaseURL)
}

func TestClientMiddleware(t *testing.T) {
	var gotToken string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotToken = r.Header.Get("Echo-Token")
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"feed":{"entry":[]}}`)
	}))
	defer server.Close()

	cli, err := NewClient(server.URL, WithMiddleware(func(_ context.Context, req *http.Request) error {
		req.Header.Set("Echo-Token", "secret")
		return nil
	}))
	require.NoError(t, err)

	_, err = cli.URLs(context.Background(), GranuleQuery{Tile: modis.Tile{H: 11, V: 3}})
	require.NoError(t, err)
	assert.Equal(t, "secret", gotToken)
}

func TestClientRetriesServerErrors(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) <= 2 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, granuleJSON("http://host/MOD09GA.005/2013.08.01/a.hdf"))
	}))
	defer server.Close()

	fast := RetryPolicyFunc(func(resp *http.Response, err error) (bool, time.Duration) {
		if err != nil || resp.StatusCode >= 500 {
			return true, time.Millisecond
		}
		return false, 0
	})

	cli, err := NewClient(server.URL, WithRetryPolicy(fast))
	require.NoError(t, err)

	urls, err := cli.URLs(context.Background(), GranuleQuery{Tile: modis.Tile{H: 11, V: 3}})
	require.NoError(t, err)
	assert.Len(t, urls, 1)
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestClientRetriesBounded(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	fast := RetryPolicyFunc(func(resp *http.Response, err error) (bool, time.Duration) {
		return err != nil || resp.StatusCode >= 500, time.Millisecond
	})

	cli, err := NewClient(server.URL, WithRetryPolicy(fast))
	require.NoError(t, err)

	_, err = cli.URLs(context.Background(), GranuleQuery{Tile: modis.Tile{H: 11, V: 3}})
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusServiceUnavailable, apiErr.Status)
	assert.True(t, apiErr.Temporary())
	// Initial attempt plus maxRetryAttempts retries.
	assert.Equal(t, int32(1+maxRetryAttempts), atomic.LoadInt32(&calls))
}
