package models

import (
	"encoding/json"
	"errors"
)

var (
	ErrMissingCoordinate = errors.New("restaurant has no resolvable coordinate")
	ErrNoCategories      = errors.New("restaurant has no categories")
)

// Transaction is a service type a restaurant supports.
type Transaction string

const (
	TransactionPickup      Transaction = "pickup"
	TransactionDelivery    Transaction = "delivery"
	TransactionReservation Transaction = "restaurant_reservation"
)

// Restaurant is a third-party sourced place record. The external ID is
// immutable; Reviews and Details start empty and are populated lazily by
// follow-up lookups.
type Restaurant struct {
	ID           string
	Name         string
	Latitude     float64
	Longitude    float64
	Rating       float64
	ReviewCount  int
	Price        *string
	Categories   []string
	Transactions []Transaction
	Reviews      []Review
	Details      *RestaurantDetails
}

// UnmarshalJSON decodes the vendor shape: the coordinate lives in a nested
// "coordinates" object and categories arrive as [{"title": "..."}]. Decoding
// fails if either latitude or longitude is absent, or if the category list
// is empty.
func (r *Restaurant) UnmarshalJSON(data []byte) error {
	type coordinates struct {
		Latitude  *float64 `json:"latitude"`
		Longitude *float64 `json:"longitude"`
	}
	type category struct {
		Title string `json:"title"`
	}
	var aux struct {
		ID           string      `json:"id"`
		Name         string      `json:"name"`
		Coordinates  coordinates `json:"coordinates"`
		Rating       float64     `json:"rating"`
		ReviewCount  int         `json:"review_count"`
		Price        *string     `json:"price"`
		Categories   []category  `json:"categories"`
		Transactions []string    `json:"transactions"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if aux.Coordinates.Latitude == nil || aux.Coordinates.Longitude == nil {
		return ErrMissingCoordinate
	}
	if len(aux.Categories) == 0 {
		return ErrNoCategories
	}

	r.ID = aux.ID
	r.Name = aux.Name
	r.Latitude = *aux.Coordinates.Latitude
	r.Longitude = *aux.Coordinates.Longitude
	r.Rating = aux.Rating
	r.ReviewCount = aux.ReviewCount
	r.Price = aux.Price

	r.Categories = make([]string, 0, len(aux.Categories))
	for _, c := range aux.Categories {
		r.Categories = append(r.Categories, c.Title)
	}

	// set semantics: duplicates and unknown values are dropped
	seen := make(map[Transaction]struct{}, len(aux.Transactions))
	r.Transactions = nil
	for _, t := range aux.Transactions {
		tx := Transaction(t)
		switch tx {
		case TransactionPickup, TransactionDelivery, TransactionReservation:
			if _, ok := seen[tx]; ok {
				continue
			}
			seen[tx] = struct{}{}
			r.Transactions = append(r.Transactions, tx)
		}
	}

	r.Reviews = nil
	r.Details = nil
	return nil
}

// OpenPeriod is one opening window within a week. Day is 0 (Monday) through
// 6 (Sunday), matching the vendor's convention. Start and End are 24-hour
// "HHMM" strings.
type OpenPeriod struct {
	Day         int
	Start       string
	End         string
	IsOvernight bool
}

// RestaurantDetails is the extended info fetched per restaurant: phone,
// photo URLs, and structured weekly hours.
type RestaurantDetails struct {
	Phone  string
	Photos []string
	Hours  []OpenPeriod
}

// UnmarshalJSON flattens the vendor's hours shape, which nests the weekly
// windows under hours[0].open.
func (d *RestaurantDetails) UnmarshalJSON(data []byte) error {
	type openPeriod struct {
		Day         int    `json:"day"`
		Start       string `json:"start"`
		End         string `json:"end"`
		IsOvernight bool   `json:"is_overnight"`
	}
	type hoursBlock struct {
		Open []openPeriod `json:"open"`
	}
	var aux struct {
		Phone  string       `json:"phone"`
		Photos []string     `json:"photos"`
		Hours  []hoursBlock `json:"hours"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	d.Phone = aux.Phone
	d.Photos = aux.Photos
	d.Hours = nil
	if len(aux.Hours) > 0 {
		d.Hours = make([]OpenPeriod, 0, len(aux.Hours[0].Open))
		for _, p := range aux.Hours[0].Open {
			d.Hours = append(d.Hours, OpenPeriod(p))
		}
	}
	return nil
}
