package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/forkedapp/forked/internal/client/api"
	"github.com/forkedapp/forked/internal/client/models"
)

func printVisits(visits []models.Visit) {
	for _, v := range visits {
		comment := ""
		if v.Comment != nil {
			comment = " - " + *v.Comment
		}
		fmt.Printf("#%d account %d rated %d/10 at %s%s\n",
			v.ID, v.AccountID, v.Rating, v.LocalTime().Format("Jan 2 15:04"), comment)
	}
}

// Feed prints the friends feed.
func (a *App) Feed(ctx context.Context) error {
	visits, err := a.api.Feed(ctx)
	if err != nil {
		a.log.Error(ctx, "failed to load feed", "error", err)
		return err
	}
	printVisits(visits)
	return nil
}

// Visits prints the current account's own visits.
func (a *App) Visits(ctx context.Context) error {
	account, ok := a.session.Current()
	if !ok {
		fmt.Println("Not logged in.")
		return nil
	}

	visits, err := a.api.Visits(ctx, account.ID)
	if err != nil {
		a.log.Error(ctx, "failed to load visits", "error", err)
		return err
	}
	printVisits(visits)
	return nil
}

// AddVisit logs a new visit: restaurant, rating, optional comment, and a
// main photo read from disk.
func (a *App) AddVisit(ctx context.Context) error {
	restaurantID, err := GetInt(a.reader, "Restaurant id", os.Stdout)
	if err != nil {
		return err
	}
	rating, err := GetInt(a.reader, "Rating (0-10)", os.Stdout)
	if err != nil {
		return err
	}
	comment, err := GetOptionalText(a.reader, "Comment", os.Stdout)
	if err != nil {
		return err
	}
	imagePath, err := getSimpleText(a.reader, "Path to photo", os.Stdout)
	if err != nil {
		return err
	}
	imageData, err := os.ReadFile(imagePath)
	if err != nil {
		fmt.Println("Cannot read photo:", err)
		return err
	}

	visit, err := a.api.CreateVisit(ctx, api.CreateVisitParams{
		RestaurantID: restaurantID,
		Rating:       int(rating),
		Comment:      comment,
		MainImage:    api.ImageUpload{Data: imageData},
	})
	if err != nil {
		a.log.Error(ctx, "failed to create visit", "error", err)
		return err
	}

	fmt.Printf("Visit #%d logged.\n", visit.ID)
	return nil
}

// DelVisit removes one of the current account's visits.
func (a *App) DelVisit(ctx context.Context) error {
	visitID, err := GetInt(a.reader, "Visit id", os.Stdout)
	if err != nil {
		return err
	}
	if err := a.api.DeleteVisit(ctx, visitID); err != nil {
		a.log.Error(ctx, "failed to delete visit", "error", err)
		return err
	}
	fmt.Println("Deleted.")
	return nil
}
