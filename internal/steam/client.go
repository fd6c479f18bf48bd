// Package steam is a minimal Steam Web API client.
package steam

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultBaseURL is the public Steam Web API endpoint.
const DefaultBaseURL = "https://api.steampowered.com"

// UnknownNickname is returned for profiles without a persona name.
const UnknownNickname = "Unknown"

// ErrProfileNotFound is returned when Steam has no profile for an id.
var ErrProfileNotFound = errors.New("steam profile not found")

// Config holds Steam client settings.
type Config struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
}

// Client looks up Steam player summaries.
type Client struct {
	config     Config
	httpClient *http.Client
}

// NewClient creates a new Steam client.
func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 10 * time.Second
	}

	return &Client{
		config: cfg,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

type playerSummariesResponse struct {
	Response struct {
		Players []struct {
			SteamID     string `json:"steamid"`
			PersonaName string `json:"personaname"`
		} `json:"players"`
	} `json:"response"`
}

// Nickname returns the persona name of steamID.
// It returns ErrProfileNotFound when Steam knows no such profile.
func (c *Client) Nickname(ctx context.Context, steamID string) (string, error) {
	q := url.Values{}
	q.Set("key", c.config.APIKey)
	q.Set("steamids", steamID)
	endpoint := strings.TrimRight(c.config.BaseURL, "/") + "/ISteamUser/GetPlayerSummaries/v2/?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %s", redactKey(err.Error(), c.config.APIKey))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return "", fmt.Errorf("unexpected status: HTTP %d", resp.StatusCode)
	}

	var summaries playerSummariesResponse
	if err := json.NewDecoder(resp.Body).Decode(&summaries); err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}

	players := summaries.Response.Players
	if len(players) == 0 {
		return "", ErrProfileNotFound
	}
	if players[0].PersonaName == "" {
		return UnknownNickname, nil
	}
	return players[0].PersonaName, nil
}

// redactKey keeps the API key out of transport errors, which embed the URL.
func redactKey(msg, key string) string {
	if key == "" {
		return msg
	}
	return strings.ReplaceAll(msg, url.QueryEscape(key), "REDACTED")
}
