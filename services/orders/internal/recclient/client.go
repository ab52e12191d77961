// Package recclient calls the recommender service for the marketing
// extras that go into order emails.
package recclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

type Recommendation struct {
	ID     uint   `json:"id"`
	Name   string `json:"name"`
	Artist string `json:"artist"`
	Reason string `json:"reason"`
}

// SimplePrompt asks the recommender for a free-form answer.
func (c *Client) SimplePrompt(ctx context.Context, prompt string) (string, error) {
	var resp struct {
		Response string `json:"response"`
	}
	if err := c.post(ctx, map[string]any{"prompt": prompt}, &resp); err != nil {
		return "", err
	}
	return resp.Response, nil
}

// Recommendations asks for structured picks based on the buyer's order.
func (c *Client) Recommendations(ctx context.Context, preferences string, max int) ([]Recommendation, error) {
	var resp struct {
		Recommendations []Recommendation `json:"recommendations"`
	}
	body := map[string]any{
		"user_preferences":    preferences,
		"max_recommendations": max,
	}
	if err := c.post(ctx, body, &resp); err != nil {
		return nil, err
	}
	return resp.Recommendations, nil
}

func (c *Client) post(ctx context.Context, body any, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal recommender request: %w", err)
	}

	url := c.baseURL + "/api/v1/recommendations/generate"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build recommender request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("recommender request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("recommender responded with status %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode recommender response: %w", err)
	}
	return nil
}
