package api

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/forkedapp/forked/internal/client/models"
)

type peopleEnvelope struct {
	People []models.Person `json:"people"`
}

// FindUsers looks up which of the given phone numbers belong to registered
// users. The backend expects the numbers joined into a single
// comma-separated string.
func (c *Client) FindUsers(ctx context.Context, phones []string) ([]models.Person, error) {
	r, err := c.authedRequest(http.MethodPost, "/findusers")
	if err != nil {
		return nil, err
	}
	if _, err := r.withJSON(map[string]string{"phones": strings.Join(phones, ",")}); err != nil {
		return nil, err
	}

	status, body, err := c.do(ctx, r)
	if err != nil {
		return nil, fmt.Errorf("find users: %w", err)
	}
	if err := checkStatus(status); err != nil {
		return nil, fmt.Errorf("find users: %w", err)
	}

	var env peopleEnvelope
	if err := decode(body, &env); err != nil {
		return nil, fmt.Errorf("find users: %w", err)
	}
	return env.People, nil
}

// Friends lists the current account's friends.
func (c *Client) Friends(ctx context.Context) ([]models.Person, error) {
	r, err := c.authedRequest(http.MethodGet, "/friend")
	if err != nil {
		return nil, err
	}

	status, body, err := c.do(ctx, r)
	if err != nil {
		return nil, fmt.Errorf("friends: %w", err)
	}
	if err := checkStatus(status); err != nil {
		return nil, fmt.Errorf("friends: %w", err)
	}

	var env peopleEnvelope
	if err := decode(body, &env); err != nil {
		return nil, fmt.Errorf("friends: %w", err)
	}
	return env.People, nil
}

// FriendRequests lists pending requests addressed to the current account.
func (c *Client) FriendRequests(ctx context.Context) ([]models.Person, error) {
	r, err := c.authedRequest(http.MethodGet, "/friendrequest")
	if err != nil {
		return nil, err
	}

	status, body, err := c.do(ctx, r)
	if err != nil {
		return nil, fmt.Errorf("friend requests: %w", err)
	}
	if err := checkStatus(status); err != nil {
		return nil, fmt.Errorf("friend requests: %w", err)
	}

	var env peopleEnvelope
	if err := decode(body, &env); err != nil {
		return nil, fmt.Errorf("friend requests: %w", err)
	}
	return env.People, nil
}

// SendFriendRequest asks another account for friendship. Success is a bare
// 201; no body is decoded. Returns true when the request was created.
func (c *Client) SendFriendRequest(ctx context.Context, accountID int64) (bool, error) {
	r, err := c.authedRequest(http.MethodPost, "/friendrequest")
	if err != nil {
		return false, err
	}
	if _, err := r.withJSON(map[string]int64{"account": accountID}); err != nil {
		return false, err
	}

	status, _, err := c.do(ctx, r)
	if err != nil {
		return false, fmt.Errorf("send friend request: %w", err)
	}
	if status == http.StatusCreated {
		return true, nil
	}
	if err := checkStatus(status); err != nil {
		return false, fmt.Errorf("send friend request: %w", err)
	}
	return false, nil
}

// AnswerFriendRequest accepts or declines a pending request. The decision
// travels as a boolean under the fixed "accept" key.
func (c *Client) AnswerFriendRequest(ctx context.Context, requestID int64, accept bool) error {
	r, err := c.authedRequest(http.MethodPut, "/friendrequest/"+strconv.FormatInt(requestID, 10)+"/")
	if err != nil {
		return err
	}
	if _, err := r.withJSON(map[string]bool{"accept": accept}); err != nil {
		return err
	}

	status, _, err := c.do(ctx, r)
	if err != nil {
		return fmt.Errorf("answer friend request: %w", err)
	}
	if err := checkStatus(status); err != nil {
		return fmt.Errorf("answer friend request: %w", err)
	}
	return nil
}

// RemoveFriend ends a friendship. Success is status-only: 204, or 200 with
// an empty body.
func (c *Client) RemoveFriend(ctx context.Context, friendshipID int64) error {
	r, err := c.authedRequest(http.MethodDelete, "/friend/"+strconv.FormatInt(friendshipID, 10)+"/")
	if err != nil {
		return err
	}

	status, _, err := c.do(ctx, r)
	if err != nil {
		return fmt.Errorf("remove friend: %w", err)
	}
	if err := checkStatus(status); err != nil {
		return fmt.Errorf("remove friend: %w", err)
	}
	return nil
}
