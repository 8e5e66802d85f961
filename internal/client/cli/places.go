package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
)

// Nearby searches the third-party API around a coordinate and prints the
// results.
func (a *App) Nearby(ctx context.Context) error {
	lat, err := GetFloat(a.reader, "Latitude", os.Stdout)
	if err != nil {
		return err
	}
	lng, err := GetFloat(a.reader, "Longitude", os.Stdout)
	if err != nil {
		return err
	}

	restaurants, err := a.search.Search(ctx, lat, lng)
	if err != nil {
		a.log.Error(ctx, "search failed", "error", err)
		return err
	}

	for _, r := range restaurants {
		price := "-"
		if r.Price != nil {
			price = *r.Price
		}
		fmt.Printf("%-30s  %.1f★ (%d)  %s  %s\n", r.Name, r.Rating, r.ReviewCount, price, strings.Join(r.Categories, "/"))
	}
	fmt.Printf("%d restaurants\n", len(restaurants))
	return nil
}

// Restaurants lists the establishments known to the backend.
func (a *App) Restaurants(ctx context.Context) error {
	establishments, err := a.api.Restaurants(ctx)
	if err != nil {
		a.log.Error(ctx, "failed to load restaurants", "error", err)
		return err
	}

	for _, e := range establishments {
		id := "-"
		if e.DjangoID != nil {
			id = fmt.Sprintf("%d", *e.DjangoID)
		}
		fmt.Printf("[%s] %s  %s\n", id, e.Name, e.DisplayAddress())
	}
	return nil
}

// Profile shows another account's profile aggregate.
func (a *App) Profile(ctx context.Context) error {
	accountID, err := GetInt(a.reader, "Account id", os.Stdout)
	if err != nil {
		return err
	}

	profile, err := a.api.Profile(ctx, accountID)
	if err != nil {
		a.log.Error(ctx, "failed to load profile", "error", err)
		return err
	}

	fmt.Println(profile.Person.Name())
	fmt.Printf("%d visits, %d places, %d tags\n", len(profile.Visits), len(profile.Establishments), len(profile.Tags))
	return nil
}
