package omdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// ErrUnavailable signals a transport-level failure (timeout, DNS, refused
// connection) talking to the provider. Callers map it to 503.
var ErrUnavailable = errors.New("external movie service is temporarily unavailable")

// LookupResult is the OMDb payload for a title lookup. OMDb reports its own
// "not found" inside a 200 response: Response == "False" plus an Error message.
type LookupResult struct {
	Title      string `json:"Title"`
	Year       string `json:"Year"`
	Rated      string `json:"Rated"`
	Released   string `json:"Released"`
	Runtime    string `json:"Runtime"`
	Genre      string `json:"Genre"`
	Director   string `json:"Director"`
	Writer     string `json:"Writer"`
	Actors     string `json:"Actors"`
	Plot       string `json:"Plot"`
	Poster     string `json:"Poster"`
	ImdbRating string `json:"imdbRating"`
	ImdbID     string `json:"imdbID"`
	BoxOffice  string `json:"BoxOffice"`
	Response   string `json:"Response"`
	Error      string `json:"Error"`
}

// Found reports whether the provider matched the requested id.
func (r *LookupResult) Found() bool {
	return r.Response != "False"
}

// Client is the lookup contract the movie service depends on.
type Client interface {
	Lookup(ctx context.Context, apiKey, imdbID string) (*LookupResult, error)
}

// HTTPClient performs lookups against the real OMDb API.
type HTTPClient struct {
	baseURL string
	client  *http.Client
}

func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

// Lookup performs a single GET for the given IMDb id, requesting the full
// plot variant.
func (c *HTTPClient) Lookup(ctx context.Context, apiKey, imdbID string) (*LookupResult, error) {
	query := url.Values{}
	query.Set("apikey", apiKey)
	query.Set("i", imdbID)
	query.Set("plot", "full")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/?"+query.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build omdb request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: unexpected status %d", ErrUnavailable, resp.StatusCode)
	}

	var result LookupResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("%w: malformed response: %v", ErrUnavailable, err)
	}

	return &result, nil
}
