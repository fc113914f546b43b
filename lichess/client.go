// Package lichess is a minimal client for the Lichess game-export API.
package lichess

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// DefaultBaseURL is the public Lichess API host.
const DefaultBaseURL = "https://lichess.org"

// Export filters. One bounded call per user; the endpoint streams up to
// batchSize games matching these.
const (
	batchSize      = 300
	perfTypes      = "blitz,rapid"
	requestTimeout = 60 * time.Second
)

// sinceDate is the cutoff: games played before it are never requested.
var sinceDate = time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC)

// Client calls the Lichess HTTP API. The zero BaseURL/HTTP fields are
// filled in by New; tests may point BaseURL at a local server.
type Client struct {
	Token   string
	BaseURL string
	HTTP    *http.Client
}

// New returns a Client for the public Lichess API with a bounded
// per-request timeout.
func New(token string) *Client {
	return &Client{
		Token:   token,
		BaseURL: DefaultBaseURL,
		HTTP: &http.Client{
			Timeout: requestTimeout,
			Transport: &http.Transport{
				MaxIdleConns:        10,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     30 * time.Second,
			},
		},
	}
}

// ExportGames streams one user's rated blitz/rapid games since the cutoff
// date as PGN, headers and opening tags only (no move text). The caller
// must close the returned body.
func (c *Client) ExportGames(ctx context.Context, username string) (io.ReadCloser, error) {
	q := url.Values{}
	q.Set("max", strconv.Itoa(batchSize))
	q.Set("rated", "true")
	q.Set("perfType", perfTypes)
	q.Set("opening", "true")
	q.Set("moves", "false")
	q.Set("tags", "true")
	q.Set("since", strconv.FormatInt(sinceDate.UnixMilli(), 10))

	u := fmt.Sprintf("%s/api/games/user/%s?%s", c.BaseURL, url.PathEscape(username), q.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("lichess: building request for %q: %w", username, err)
	}
	req.Header.Set("Accept", "application/x-chess-pgn")
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("lichess: export for %q: %w", username, err)
	}
	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
		return nil, fmt.Errorf("lichess: export for %q: unexpected status %s", username, resp.Status)
	}
	return resp.Body, nil
}
