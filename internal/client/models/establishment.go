package models

import "strings"

// Establishment is a normalized place record known to the backend.
// DjangoID is the backend-assigned id used to deduplicate against already
// known places; it is nil for places the backend has not seen yet. Every
// address part is individually nullable.
type Establishment struct {
	Name         string  `json:"name"`
	IsRestaurant bool    `json:"is_restaurant"`
	DjangoID     *int64  `json:"django_id"`
	YelpID       *string `json:"yelp_id"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	Address1     *string `json:"address1"`
	Address2     *string `json:"address2"`
	Address3     *string `json:"address3"`
	City         *string `json:"city"`
	State        *string `json:"state"`
	ZipCode      *string `json:"zip_code"`
	Country      *string `json:"country"`
}

// DisplayAddress joins whichever address parts are present into a single
// line. Recomputed on every call; never stored.
func (e *Establishment) DisplayAddress() string {
	parts := make([]string, 0, 7)
	for _, p := range []*string{e.Address1, e.Address2, e.Address3, e.City, e.State, e.ZipCode, e.Country} {
		if p != nil && *p != "" {
			parts = append(parts, *p)
		}
	}
	return strings.Join(parts, ", ")
}
