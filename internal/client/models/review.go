package models

import (
	"encoding/json"
	"time"
)

// yelpTimeLayout is the third-party API's review timestamp format, which
// differs from the backend's ServerTimeLayout.
const yelpTimeLayout = "2006-01-02 15:04:05"

// ReviewUser is the author snippet embedded in a review.
type ReviewUser struct {
	Name     string
	ImageURL *string
}

// Review is a third-party restaurant review.
type Review struct {
	ID        string
	Rating    int
	Text      string
	CreatedAt time.Time
	User      ReviewUser
}

// UnmarshalJSON decodes the vendor shape: the author is a nested "user"
// object whose fields are read individually. An unparseable timestamp
// degrades to the zero time.
func (r *Review) UnmarshalJSON(data []byte) error {
	type user struct {
		Name     string  `json:"name"`
		ImageURL *string `json:"image_url"`
	}
	var aux struct {
		ID          string `json:"id"`
		Rating      int    `json:"rating"`
		Text        string `json:"text"`
		TimeCreated string `json:"time_created"`
		User        user   `json:"user"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	r.ID = aux.ID
	r.Rating = aux.Rating
	r.Text = aux.Text
	r.User = ReviewUser{Name: aux.User.Name, ImageURL: aux.User.ImageURL}

	r.CreatedAt = time.Time{}
	if parsed, err := time.ParseInLocation(yelpTimeLayout, aux.TimeCreated, time.UTC); err == nil {
		r.CreatedAt = parsed
	}
	return nil
}
