// Package client wraps the two HTTP endpoints of the listing API for Go
// consumers, mirroring what the web frontend's data service does.
package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"real-estate-listings/internal/queries"
)

// ErrNotFound is returned by GetPropertyByID when the API answers 404
var ErrNotFound = errors.New("property not found")

// Client is an HTTP client for the listing API
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a client for the API at baseURL, e.g. "http://localhost:8080"
func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// GetProperties fetches the property listing with the given optional filters
func (c *Client) GetProperties(ctx context.Context, filters queries.PropertyFilters) ([]queries.PropertyDto, error) {
	params := url.Values{}
	if filters.Name != "" {
		params.Set("name", filters.Name)
	}
	if filters.Address != "" {
		params.Set("address", filters.Address)
	}
	if filters.MinPrice != nil {
		params.Set("minPrice", strconv.FormatFloat(*filters.MinPrice, 'f', -1, 64))
	}
	if filters.MaxPrice != nil {
		params.Set("maxPrice", strconv.FormatFloat(*filters.MaxPrice, 'f', -1, 64))
	}

	endpoint := c.baseURL + "/api/properties"
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	var properties []queries.PropertyDto
	if err := c.getJSON(ctx, endpoint, &properties); err != nil {
		return nil, err
	}
	return properties, nil
}

// GetPropertyByID fetches the detail view of one property. A 404 from the
// API is surfaced as ErrNotFound.
func (c *Client) GetPropertyByID(ctx context.Context, id string) (*queries.PropertyDetailDto, error) {
	endpoint := c.baseURL + "/api/properties/" + url.PathEscape(id)

	var detail queries.PropertyDetailDto
	if err := c.getJSON(ctx, endpoint, &detail); err != nil {
		return nil, err
	}
	return &detail, nil
}

func (c *Client) getJSON(ctx context.Context, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
		return nil
	case http.StatusNotFound:
		return ErrNotFound
	default:
		return apiError(resp)
	}
}

// apiError turns a non-2xx response into an error carrying the server's
// message when the body has the API's error shape
func apiError(resp *http.Response) error {
	var body struct {
		Message  string `json:"message"`
		Detailed string `json:"detailed"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil || body.Message == "" {
		return fmt.Errorf("api returned status %d", resp.StatusCode)
	}
	if body.Detailed != "" {
		return fmt.Errorf("api returned status %d: %s (%s)", resp.StatusCode, body.Message, body.Detailed)
	}
	return fmt.Errorf("api returned status %d: %s", resp.StatusCode, body.Message)
}
