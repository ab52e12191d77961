// Package promptclient fetches prompt templates from the prompts service.
package promptclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

var (
	ErrNotFound    = errors.New("promptclient: prompt not found")
	ErrUnavailable = errors.New("promptclient: prompts service unavailable")
)

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 5 * time.Second,
			Transport: &http.Transport{
				MaxIdleConns:        10,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     60 * time.Second,
			},
		},
	}
}

// GetTemplate returns the template text of the prompt with the given id.
func (c *Client) GetTemplate(ctx context.Context, id string) (string, error) {
	url := fmt.Sprintf("%s/api/v1/prompts/%s", c.baseURL, id)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("build prompt request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return "", fmt.Errorf("%w: %s", ErrNotFound, id)
	case resp.StatusCode != http.StatusOK:
		return "", fmt.Errorf("fetch prompt %s: status %d", id, resp.StatusCode)
	}

	var prompt struct {
		Template string `json:"template"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&prompt); err != nil {
		return "", fmt.Errorf("decode prompt %s: %w", id, err)
	}
	return prompt.Template, nil
}
