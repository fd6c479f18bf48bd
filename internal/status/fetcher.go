// Package status queries third-party game-server status endpoints.
package status

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"darkparadise-rest-api/internal/model"
)

// DefaultTimeout bounds one status request.
const DefaultTimeout = 10 * time.Second

// maxBodyBytes caps how much of a status response is read.
const maxBodyBytes = 1 << 20

// Fetcher turns one status query into a model.StatusResult.
type Fetcher struct {
	httpClient *http.Client
	now        func() time.Time
}

// NewFetcher creates a fetcher whose requests time out after timeout
// (DefaultTimeout when zero).
func NewFetcher(timeout time.Duration) *Fetcher {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return NewFetcherWithHTTPClient(&http.Client{Timeout: timeout})
}

// NewFetcherWithHTTPClient creates a fetcher using a custom HTTP client.
func NewFetcherWithHTTPClient(httpClient *http.Client) *Fetcher {
	return &Fetcher{
		httpClient: httpClient,
		now:        time.Now,
	}
}

// payload is the subset of the scplist server document we read.
type payload struct {
	Players    int `json:"players"`
	MaxPlayers int `json:"maxPlayers"`
}

// Fetch queries url once. Every failure becomes an unreachable result.
func (f *Fetcher) Fetch(ctx context.Context, url string) model.StatusResult {
	sample, err := f.fetch(ctx, url)
	if err != nil {
		log.Printf("[StatusFetcher] %s: %v", url, err)
		return model.Unreachable(err.Error())
	}
	return model.Reachable(sample)
}

func (f *Fetcher) fetch(ctx context.Context, url string) (model.StatusSample, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return model.StatusSample{}, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return model.StatusSample{}, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
		return model.StatusSample{}, fmt.Errorf("status API unavailable: HTTP %d", resp.StatusCode)
	}

	p, err := decodePayload(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return model.StatusSample{}, fmt.Errorf("failed to parse response: %w", err)
	}

	return model.StatusSample{
		Players:     p.Players,
		MaxPlayers:  p.MaxPlayers,
		LastUpdated: f.now(),
	}, nil
}

// decodePayload reads exactly one JSON object from r.
func decodePayload(r io.Reader) (payload, error) {
	dec := json.NewDecoder(r)

	var p *payload
	if err := dec.Decode(&p); err != nil {
		return payload{}, err
	}
	if p == nil {
		return payload{}, errors.New("empty status document")
	}
	if _, err := dec.Token(); err != io.EOF {
		return payload{}, errors.New("unexpected data after status document")
	}
	return *p, nil
}
