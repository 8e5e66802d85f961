// Package yelp implements the third-party restaurant search client. It
// shares nothing with the backend client beyond the models: auth is a plain
// bearer key and the wire shapes are the vendor's own.
package yelp

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/forkedapp/forked/internal/client/api"
	"github.com/forkedapp/forked/internal/client/models"
	"github.com/forkedapp/forked/internal/logging"
)

const searchLimit = 35

// Client queries the search API. Safe for concurrent use.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
	log     logging.Logger
}

func NewClient(baseURL, apiKey string, log logging.Logger, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	return &Client{baseURL: baseURL, apiKey: apiKey, http: httpClient, log: log}
}

func (c *Client) get(ctx context.Context, path string, query url.Values) ([]byte, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn(ctx, "search request failed", "path", path, "error", err)
		return nil, fmt.Errorf("%w: %v", api.ErrTransport, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading body: %v", api.ErrTransport, err)
	}
	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return nil, api.ErrUnauthorized
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", api.ErrServer, resp.StatusCode)
	}
	return body, nil
}

// Search returns restaurants around the given coordinate. Records the
// vendor sends without a resolvable coordinate or without categories are
// skipped rather than failing the whole page.
func (c *Client) Search(ctx context.Context, latitude, longitude float64) ([]models.Restaurant, error) {
	query := url.Values{}
	query.Set("latitude", strconv.FormatFloat(latitude, 'f', -1, 64))
	query.Set("longitude", strconv.FormatFloat(longitude, 'f', -1, 64))
	query.Set("limit", strconv.Itoa(searchLimit))
	query.Set("categories", "restaurants")

	body, err := c.get(ctx, "/businesses/search", query)
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}

	var env struct {
		Businesses []json.RawMessage `json:"businesses"`
	}
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("search: %w: %v", api.ErrMalformedResponse, err)
	}

	restaurants := make([]models.Restaurant, 0, len(env.Businesses))
	for _, raw := range env.Businesses {
		var r models.Restaurant
		if err := json.Unmarshal(raw, &r); err != nil {
			c.log.Debug(ctx, "skipping undecodable business", "error", err)
			continue
		}
		restaurants = append(restaurants, r)
	}
	return restaurants, nil
}

// Details fetches the extended info (phone, photos, weekly hours) for one
// restaurant.
func (c *Client) Details(ctx context.Context, id string) (*models.RestaurantDetails, error) {
	body, err := c.get(ctx, "/businesses/"+url.PathEscape(id), nil)
	if err != nil {
		return nil, fmt.Errorf("details: %w", err)
	}

	var details models.RestaurantDetails
	if err := json.Unmarshal(body, &details); err != nil {
		return nil, fmt.Errorf("details: %w: %v", api.ErrMalformedResponse, err)
	}
	return &details, nil
}

// Reviews fetches the review excerpts for one restaurant.
func (c *Client) Reviews(ctx context.Context, id string) ([]models.Review, error) {
	body, err := c.get(ctx, "/businesses/"+url.PathEscape(id)+"/reviews", nil)
	if err != nil {
		return nil, fmt.Errorf("reviews: %w", err)
	}

	var env struct {
		Reviews []models.Review `json:"reviews"`
	}
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("reviews: %w: %v", api.ErrMalformedResponse, err)
	}
	return env.Reviews, nil
}
