package reviewsapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"reviewboard/internal/domain"
)

// DefaultEndpoint is where the review server listens in local development.
const DefaultEndpoint = "http://localhost:4000/"

var ErrBadStatus = errors.New("reviewsapi: unexpected status")

type Client struct {
	endpoint string
	hc       *http.Client
}

func New(endpoint string) *Client {
	return NewWithHTTPClient(endpoint, &http.Client{Timeout: 20 * time.Second})
}

func NewWithHTTPClient(endpoint string, hc *http.Client) *Client {
	return &Client{endpoint: endpoint, hc: hc}
}

func (c *Client) Endpoint() string { return c.endpoint }

// ListReviews performs a single GET against the endpoint. There is no retry.
func (c *Client) ListReviews(ctx context.Context) ([]domain.Review, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "reviewboard-client/1.0")

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", c.endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// read a small error body for diagnostics
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("%w %d: %s", ErrBadStatus, resp.StatusCode, strings.TrimSpace(string(b)))
	}

	var out []domain.Review
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode reviews: %w", err)
	}
	return out, nil
}
