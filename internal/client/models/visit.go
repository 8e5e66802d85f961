package models

import (
	"encoding/json"
	"errors"
	"time"
)

var ErrMissingMainImage = errors.New("visit has no main image")

// VisitImage is an uploaded photo reference with its pixel dimensions.
type VisitImage struct {
	URL    string `json:"url"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// Visit is a logged restaurant visit. MainImage is always present;
// SideImages preserve the order they were uploaded in. Rating uses the
// backend's 0–10 scale, not the restaurant 0–5 scale.
type Visit struct {
	ID           int64
	AccountID    int64
	RestaurantID int64
	YelpID       *string
	MainImage    VisitImage
	SideImages   []VisitImage
	Rating       int
	Comment      *string
	CreatedAt    ServerTime
}

// UnmarshalJSON decodes the backend wire shape. A missing main image fails
// the decode; the created timestamp degrades tolerantly via ServerTime.
func (v *Visit) UnmarshalJSON(data []byte) error {
	var aux struct {
		ID         int64        `json:"id"`
		Account    int64        `json:"account"`
		Restaurant int64        `json:"restaurant"`
		YelpID     *string      `json:"yelp_id"`
		MainImage  *VisitImage  `json:"main_image"`
		SideImages []VisitImage `json:"side_images"`
		Rating     int          `json:"rating"`
		Comment    *string      `json:"comment"`
		Created    ServerTime   `json:"created"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if aux.MainImage == nil {
		return ErrMissingMainImage
	}

	v.ID = aux.ID
	v.AccountID = aux.Account
	v.RestaurantID = aux.Restaurant
	v.YelpID = aux.YelpID
	v.MainImage = *aux.MainImage
	v.SideImages = aux.SideImages
	v.Rating = aux.Rating
	v.Comment = aux.Comment
	v.CreatedAt = aux.Created
	return nil
}

// LocalTime returns the visit timestamp converted to the local timezone for
// display. The wire value is UTC.
func (v *Visit) LocalTime() time.Time {
	return v.CreatedAt.In(time.Local)
}
