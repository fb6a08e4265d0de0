package matches

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/charmbracelet/log"
)

// APIClient is an HTTP client for the matches API that implements the Client interface.
type APIClient struct {
	httpClient *http.Client
	BaseURL    string
}

// NewClient creates a new matches API client.
func NewClient(baseURL string) Client {
	return &APIClient{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		BaseURL:    baseURL,
	}
}

// Ensure APIClient implements the Client interface.
var _ Client = (*APIClient)(nil)

// GetMatches fetches every recorded match for the given venue. An empty
// venueName fetches all matches. Each call hits the API fresh; results are
// never cached, so a recomputation always sees the latest stored matches.
func (c *APIClient) GetMatches(ctx context.Context, venueName string) ([]Match, error) {
	reqURL := c.BaseURL + "/matches"
	if venueName != "" {
		reqURL += "?venueName=" + url.QueryEscape(venueName)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	log.Debug("Requesting matches from matches API", "url", reqURL)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		log.Error("Received non-OK HTTP status from matches API", "status", resp.StatusCode, "body", string(body))
		return nil, fmt.Errorf("received non-OK HTTP status: %d", resp.StatusCode)
	}

	var result []Match
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	log.Debug("Fetched matches", "venue", venueName, "count", len(result))
	return result, nil
}
