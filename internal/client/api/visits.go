package api

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/forkedapp/forked/internal/client/models"
)

// visitEnvelope wraps visit lists on the wire.
type visitEnvelope struct {
	Visits []models.Visit `json:"visits"`
}

// Feed returns the friends feed for the current session, newest first as
// ordered by the backend.
func (c *Client) Feed(ctx context.Context) ([]models.Visit, error) {
	r, err := c.authedRequest(http.MethodGet, "/visit")
	if err != nil {
		return nil, err
	}

	status, body, err := c.do(ctx, r)
	if err != nil {
		return nil, fmt.Errorf("feed: %w", err)
	}
	if err := checkStatus(status); err != nil {
		return nil, fmt.Errorf("feed: %w", err)
	}

	var env visitEnvelope
	if err := decode(body, &env); err != nil {
		return nil, fmt.Errorf("feed: %w", err)
	}
	return env.Visits, nil
}

// Visits returns the visits logged by one account.
func (c *Client) Visits(ctx context.Context, accountID int64) ([]models.Visit, error) {
	r, err := c.authedRequest(http.MethodGet, "/visit")
	if err != nil {
		return nil, err
	}
	r.query.Set("account", strconv.FormatInt(accountID, 10))

	status, body, err := c.do(ctx, r)
	if err != nil {
		return nil, fmt.Errorf("visits: %w", err)
	}
	if err := checkStatus(status); err != nil {
		return nil, fmt.Errorf("visits: %w", err)
	}

	var env visitEnvelope
	if err := decode(body, &env); err != nil {
		return nil, fmt.Errorf("visits: %w", err)
	}
	return env.Visits, nil
}

// ImageUpload is a photo payload for visit creation.
type ImageUpload struct {
	Data []byte
}

// CreateVisitParams describes a new visit. MainImage is required;
// SideImages are uploaded in slice order and the backend preserves it.
type CreateVisitParams struct {
	RestaurantID int64
	YelpID       *string
	Rating       int
	Comment      *string
	MainImage    ImageUpload
	SideImages   []ImageUpload
}

// CreateVisit logs a visit. The request is multipart: scalar fields first,
// then the main image, then side images in order.
func (c *Client) CreateVisit(ctx context.Context, params CreateVisitParams) (*models.Visit, error) {
	if len(params.MainImage.Data) == 0 {
		return nil, fmt.Errorf("create visit: %w", models.ErrMissingMainImage)
	}

	r, err := c.authedRequest(http.MethodPost, "/visit")
	if err != nil {
		return nil, err
	}

	fields := [][2]string{
		{"restaurant", strconv.FormatInt(params.RestaurantID, 10)},
		{"rating", strconv.Itoa(params.Rating)},
	}
	if params.YelpID != nil {
		fields = append(fields, [2]string{"yelp_id", *params.YelpID})
	}
	if params.Comment != nil {
		fields = append(fields, [2]string{"comment", *params.Comment})
	}

	files := []filePart{{field: "main_image", data: params.MainImage.Data}}
	for _, img := range params.SideImages {
		files = append(files, filePart{field: "side_images", data: img.Data})
	}

	if _, err := r.withMultipart(fields, files); err != nil {
		return nil, fmt.Errorf("create visit: %w", err)
	}

	status, body, err := c.do(ctx, r)
	if err != nil {
		return nil, fmt.Errorf("create visit: %w", err)
	}
	if err := checkStatus(status); err != nil {
		return nil, fmt.Errorf("create visit: %w", err)
	}

	var visit models.Visit
	if err := decode(body, &visit); err != nil {
		return nil, fmt.Errorf("create visit: %w", err)
	}
	return &visit, nil
}

// DeleteVisit removes a visit. Success is signaled by status alone (204, or
// 200 with an empty body); nothing is decoded.
func (c *Client) DeleteVisit(ctx context.Context, visitID int64) error {
	r, err := c.authedRequest(http.MethodDelete, fmt.Sprintf("/visit/%d/", visitID))
	if err != nil {
		return err
	}

	status, _, err := c.do(ctx, r)
	if err != nil {
		return fmt.Errorf("delete visit: %w", err)
	}
	if err := checkStatus(status); err != nil {
		return fmt.Errorf("delete visit: %w", err)
	}
	return nil
}
