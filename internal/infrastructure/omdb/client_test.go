package omdb

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "secret", r.URL.Query().Get("apikey"))
		assert.Equal(t, "tt0111161", r.URL.Query().Get("i"))
		assert.Equal(t, "full", r.URL.Query().Get("plot"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"Title": "The Shawshank Redemption",
			"Year": "1994",
			"imdbID": "tt0111161",
			"imdbRating": "9.3",
			"BoxOffice": "N/A",
			"Response": "True"
		}`))
	}))
	defer srv.Close()

	client := NewHTTPClient(srv.URL, 5*time.Second)

	result, err := client.Lookup(context.Background(), "secret", "tt0111161")
	require.NoError(t, err)

	assert.True(t, result.Found())
	assert.Equal(t, "The Shawshank Redemption", result.Title)
	assert.Equal(t, "1994", result.Year)
	assert.Equal(t, "9.3", result.ImdbRating)
}

func TestLookup_ProviderNotFoundSignal(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// OMDb reports not-found inside a 200 response.
		_, _ = w.Write([]byte(`{"Response": "False", "Error": "Incorrect IMDb ID."}`))
	}))
	defer srv.Close()

	client := NewHTTPClient(srv.URL, 5*time.Second)

	result, err := client.Lookup(context.Background(), "secret", "tt0000000")
	require.NoError(t, err, "a provider-level miss is not a transport failure")

	assert.False(t, result.Found())
	assert.Equal(t, "Incorrect IMDb ID.", result.Error)
}

func TestLookup_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse every connection

	client := NewHTTPClient(srv.URL, time.Second)

	_, err := client.Lookup(context.Background(), "secret", "tt0111161")
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestLookup_UnexpectedStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	client := NewHTTPClient(srv.URL, time.Second)

	_, err := client.Lookup(context.Background(), "secret", "tt0111161")
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestLookup_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	}))
	defer srv.Close()

	client := NewHTTPClient(srv.URL, time.Second)

	_, err := client.Lookup(context.Background(), "secret", "tt0111161")
	assert.ErrorIs(t, err, ErrUnavailable)
}
