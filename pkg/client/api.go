package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/cbodonnell/pairs/pkg/repositories/models"
)

const DefaultHTTPTimeout = 10 * time.Second

// APIClient talks to the pairs API server.
type APIClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewAPIClient(baseURL string) *APIClient {
	return &APIClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: DefaultHTTPTimeout},
	}
}

// APIError is a non-2xx answer from the API.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

func (c *APIClient) ListCards(ctx context.Context) ([]*models.Card, error) {
	cards := []*models.Card{}
	if err := c.do(ctx, http.MethodGet, "/cards", nil, &cards); err != nil {
		return nil, fmt.Errorf("failed to list cards: %v", err)
	}
	return cards, nil
}

// HallOfFame returns the solo leaderboard.
func (c *APIClient) HallOfFame(ctx context.Context) ([]*models.SoloResult, error) {
	results := []*models.SoloResult{}
	if err := c.do(ctx, http.MethodGet, "/leaderboard/solo", nil, &results); err != nil {
		return nil, fmt.Errorf("failed to get hall of fame: %v", err)
	}
	return results, nil
}

// Battles returns the most recent battles.
func (c *APIClient) Battles(ctx context.Context) ([]*models.BattleResult, error) {
	results := []*models.BattleResult{}
	if err := c.do(ctx, http.MethodGet, "/leaderboard/battle", nil, &results); err != nil {
		return nil, fmt.Errorf("failed to get battles: %v", err)
	}
	return results, nil
}

func (c *APIClient) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %v", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %v", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return &APIError{StatusCode: resp.StatusCode, Message: strings.TrimSpace(string(msg))}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %v", err)
	}
	return nil
}
