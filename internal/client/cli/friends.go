package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/forkedapp/forked/internal/client/models"
)

func printPeople(people []models.Person) {
	for _, p := range people {
		status := ""
		switch p.FriendStatus() {
		case models.FriendStatusFriends:
			status = "friend"
		case models.FriendStatusRequestSent:
			status = "request sent"
		case models.FriendStatusRequestReceived:
			status = "wants to be friends"
		}
		fmt.Printf("%-24s %s\n", p.Name(), status)
	}
}

// Friends lists current friendships.
func (a *App) Friends(ctx context.Context) error {
	people, err := a.api.Friends(ctx)
	if err != nil {
		a.log.Error(ctx, "failed to load friends", "error", err)
		return err
	}
	printPeople(people)
	return nil
}

// Requests lists pending incoming friend requests.
func (a *App) Requests(ctx context.Context) error {
	people, err := a.api.FriendRequests(ctx)
	if err != nil {
		a.log.Error(ctx, "failed to load friend requests", "error", err)
		return err
	}
	printPeople(people)
	return nil
}

// AddFriend sends a friend request to an account.
func (a *App) AddFriend(ctx context.Context) error {
	accountID, err := GetInt(a.reader, "Account id", os.Stdout)
	if err != nil {
		return err
	}

	created, err := a.api.SendFriendRequest(ctx, accountID)
	if err != nil {
		a.log.Error(ctx, "failed to send friend request", "error", err)
		return err
	}
	if created {
		fmt.Println("Request sent.")
	}
	return nil
}

// Answer accepts or declines a pending friend request.
func (a *App) Answer(ctx context.Context) error {
	requestID, err := GetInt(a.reader, "Request id", os.Stdout)
	if err != nil {
		return err
	}
	reply, err := getSimpleText(a.reader, "Accept? (y/n)", os.Stdout)
	if err != nil {
		return err
	}
	accept := strings.EqualFold(reply, "y") || strings.EqualFold(reply, "yes")

	if err := a.api.AnswerFriendRequest(ctx, requestID, accept); err != nil {
		a.log.Error(ctx, "failed to answer friend request", "error", err)
		return err
	}
	if accept {
		fmt.Println("Accepted.")
	} else {
		fmt.Println("Declined.")
	}
	return nil
}

// Unfriend ends a friendship.
func (a *App) Unfriend(ctx context.Context) error {
	friendshipID, err := GetInt(a.reader, "Friendship id", os.Stdout)
	if err != nil {
		return err
	}
	if err := a.api.RemoveFriend(ctx, friendshipID); err != nil {
		a.log.Error(ctx, "failed to remove friend", "error", err)
		return err
	}
	fmt.Println("Removed.")
	return nil
}

// FindUsers checks which of the given phone numbers belong to app users.
func (a *App) FindUsers(ctx context.Context) error {
	line, err := getSimpleText(a.reader, "Phone numbers (comma separated)", os.Stdout)
	if err != nil {
		return err
	}
	phones := strings.Split(line, ",")
	for i := range phones {
		phones[i] = strings.TrimSpace(phones[i])
	}

	people, err := a.api.FindUsers(ctx, phones)
	if err != nil {
		a.log.Error(ctx, "failed to find users", "error", err)
		return err
	}
	printPeople(people)
	return nil
}
