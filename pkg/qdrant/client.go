package qdrant

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const defaultTimeout = 10 * time.Second

// Client is the Qdrant HTTP API client.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new Qdrant client.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
}

// CollectionExists reports whether a collection with the given name exists.
func (c *Client) CollectionExists(ctx context.Context, name string) (bool, error) {
	url := fmt.Sprintf("%s/collections/%s", c.baseURL, name)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return false, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return false, fmt.Errorf("failed to call qdrant API: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		return true, nil
	case http.StatusNotFound:
		return false, nil
	default:
		return false, fmt.Errorf("qdrant API error: %d", resp.StatusCode)
	}
}

// CreateCollection creates a new collection with the given configuration.
func (c *Client) CreateCollection(ctx context.Context, req CreateCollectionRequest) error {
	url := fmt.Sprintf("%s/collections/%s", c.baseURL, req.Name)
	return c.do(ctx, http.MethodPut, url, req, nil, http.StatusOK, http.StatusCreated)
}

// UpsertPoints inserts or updates points (vectors) in a collection.
func (c *Client) UpsertPoints(ctx context.Context, collectionName string, req UpsertPointsRequest) error {
	url := fmt.Sprintf("%s/collections/%s/points?wait=true", c.baseURL, collectionName)
	return c.do(ctx, http.MethodPut, url, req, nil, http.StatusOK)
}

// SearchPoints performs semantic search in a collection.
func (c *Client) SearchPoints(ctx context.Context, collectionName string, req SearchRequest) (*SearchResponse, error) {
	url := fmt.Sprintf("%s/collections/%s/points/search", c.baseURL, collectionName)

	var result SearchResponse
	if err := c.do(ctx, http.MethodPost, url, req, &result, http.StatusOK); err != nil {
		return nil, err
	}
	return &result, nil
}

// ScrollPoints pages through points matching an optional filter.
func (c *Client) ScrollPoints(ctx context.Context, collectionName string, req ScrollRequest) (*ScrollResponse, error) {
	url := fmt.Sprintf("%s/collections/%s/points/scroll", c.baseURL, collectionName)

	var result ScrollResponse
	if err := c.do(ctx, http.MethodPost, url, req, &result, http.StatusOK); err != nil {
		return nil, err
	}
	return &result, nil
}

// SetPayload merges payload keys into the given points without touching vectors.
func (c *Client) SetPayload(ctx context.Context, collectionName string, req SetPayloadRequest) error {
	url := fmt.Sprintf("%s/collections/%s/points/payload?wait=true", c.baseURL, collectionName)
	return c.do(ctx, http.MethodPost, url, req, nil, http.StatusOK)
}

// DeletePoints deletes points by IDs.
func (c *Client) DeletePoints(ctx context.Context, collectionName string, ids []string) error {
	url := fmt.Sprintf("%s/collections/%s/points/delete", c.baseURL, collectionName)
	return c.do(ctx, http.MethodPost, url, DeletePointsRequest{Points: ids}, nil, http.StatusOK)
}

// do sends body as JSON and decodes the response into out when out is non-nil.
func (c *Client) do(ctx context.Context, method, url string, body, out any, okStatus ...int) error {
	raw, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, url, bytes.NewBuffer(raw))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("failed to call qdrant API: %w", err)
	}
	defer resp.Body.Close()

	if !statusIn(resp.StatusCode, okStatus) {
		return fmt.Errorf("qdrant API error: %d", resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func statusIn(code int, allowed []int) bool {
	for _, s := range allowed {
		if code == s {
			return true
		}
	}
	return false
}
