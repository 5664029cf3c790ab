package feed

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/goccy/go-json"

	"github.com/Cheertaboi/coupon-feed-service/internal/models"
)

// Client pushes payloads to the ingestion endpoint. It does not retry.
type Client struct {
	Endpoint     string
	APIKey       string
	KeyParam     string
	TriggerParam string
	TriggerValue string
	HTTP         *http.Client
}

func NewClient(endpoint, apiKey string) *Client {
	return &Client{
		Endpoint:     endpoint,
		APIKey:       apiKey,
		KeyParam:     "api_key",
		TriggerParam: "coupon_update",
		TriggerValue: "gas_update",
		HTTP:         &http.Client{Timeout: 60 * time.Second},
	}
}

func (c *Client) pushURL() (string, error) {
	u, err := url.Parse(c.Endpoint)
	if err != nil {
		return "", fmt.Errorf("parse endpoint: %w", err)
	}
	q := u.Query()
	q.Set(c.TriggerParam, c.TriggerValue)
	q.Set(c.KeyParam, c.APIKey)
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// Push sends p and returns the server acknowledgment. Any non-200 status is
// an error carrying the response body.
func (c *Client) Push(ctx context.Context, p models.FeedPayload) (*models.FeedResponse, error) {
	body, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("encode payload: %w", err)
	}
	target, err := c.pushURL()
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, target, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d: %s", resp.StatusCode, bytes.TrimSpace(raw))
	}

	var ack models.FeedResponse
	if err := json.Unmarshal(raw, &ack); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return &ack, nil
}
