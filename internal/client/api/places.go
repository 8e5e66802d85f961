package api

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/forkedapp/forked/internal/client/models"
)

// Restaurants returns the establishments the backend already knows about.
// Callers deduplicate Yelp results against this list via DjangoID.
func (c *Client) Restaurants(ctx context.Context) ([]models.Establishment, error) {
	r, err := c.authedRequest(http.MethodGet, "/restaurant")
	if err != nil {
		return nil, err
	}

	status, body, err := c.do(ctx, r)
	if err != nil {
		return nil, fmt.Errorf("restaurants: %w", err)
	}
	if err := checkStatus(status); err != nil {
		return nil, fmt.Errorf("restaurants: %w", err)
	}

	var env struct {
		Restaurants []models.Establishment `json:"restaurants"`
	}
	if err := decode(body, &env); err != nil {
		return nil, fmt.Errorf("restaurants: %w", err)
	}
	return env.Restaurants, nil
}

// Profile fetches the profile aggregate for an account: the person, their
// establishments, visits, and tags, plus friendship state relative to the
// current session.
func (c *Client) Profile(ctx context.Context, accountID int64) (*models.Profile, error) {
	r, err := c.authedRequest(http.MethodGet, "/profile")
	if err != nil {
		return nil, err
	}
	r.query.Set("account", strconv.FormatInt(accountID, 10))

	status, body, err := c.do(ctx, r)
	if err != nil {
		return nil, fmt.Errorf("profile: %w", err)
	}
	if err := checkStatus(status); err != nil {
		return nil, fmt.Errorf("profile: %w", err)
	}

	var profile models.Profile
	if err := decode(body, &profile); err != nil {
		return nil, fmt.Errorf("profile: %w", err)
	}
	return &profile, nil
}
