package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/forkedapp/forked/internal/client/models"
)

var validate = validator.New()

// Credentials is the login input.
type Credentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RegisterParams is the registration input. Phone is optional.
type RegisterParams struct {
	Username string  `json:"username" validate:"required,min=3"`
	Email    string  `json:"email" validate:"required,email"`
	Password string  `json:"password" validate:"required,min=8"`
	Phone    *string `json:"phone_number,omitempty" validate:"omitempty,e164"`
}

// fieldErrors is the backend's registration-conflict body, e.g.
// {"email":["already taken"],"username":["already taken"]}.
type fieldErrors struct {
	Email    []string `json:"email"`
	Username []string `json:"username"`
}

// Login authenticates and returns the account, including its token. The
// caller is responsible for installing the account into the session store.
func (c *Client) Login(ctx context.Context, creds Credentials) (*models.Account, error) {
	if err := validate.Struct(creds); err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}

	r, err := newRequest(http.MethodPost, "/login").withJSON(creds)
	if err != nil {
		return nil, err
	}

	status, body, err := c.do(ctx, r)
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}
	if status == http.StatusBadRequest || status == http.StatusUnauthorized {
		return nil, fmt.Errorf("login: invalid credentials: %w", ErrUnauthorized)
	}
	if err := checkStatus(status); err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}

	var account models.Account
	if err := decode(body, &account); err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}
	return &account, nil
}

// Register creates a new account. Conflicting email/username values map to
// the dedicated error kinds so the caller can tell the user which field to
// change.
func (c *Client) Register(ctx context.Context, params RegisterParams) (*models.Account, error) {
	if err := validate.Struct(params); err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}

	r, err := newRequest(http.MethodPost, "/register").withJSON(params)
	if err != nil {
		return nil, err
	}

	status, body, err := c.do(ctx, r)
	if err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}
	if status >= 400 && status < 500 {
		if err := registrationConflict(body); err != nil {
			return nil, fmt.Errorf("register: %w", err)
		}
	}
	if err := checkStatus(status); err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}

	var account models.Account
	if err := decode(body, &account); err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}
	return &account, nil
}

// registrationConflict inspects a 4xx body for field-level validation
// errors. A body that is not the structured shape yields nil so the status
// mapping can take over.
func registrationConflict(body []byte) error {
	var fe fieldErrors
	if err := decode(body, &fe); err != nil {
		return nil
	}
	switch {
	case len(fe.Email) > 0 && len(fe.Username) > 0:
		return ErrEmailAndUsernameInUse
	case len(fe.Email) > 0:
		return ErrEmailInUse
	case len(fe.Username) > 0:
		return ErrUsernameInUse
	default:
		return nil
	}
}

// UpdateAccountParams carries the mutable account fields. Nil fields are
// left unchanged server-side.
type UpdateAccountParams struct {
	Username *string `json:"username,omitempty"`
	Email    *string `json:"email,omitempty" validate:"omitempty,email"`
	Phone    *string `json:"phone_number,omitempty" validate:"omitempty,e164"`
	Color    *string `json:"color,omitempty"`
}

// UpdateAccount changes account fields for the current session and returns
// the updated account. Concurrent updates are last-writer-wins; the backend
// applies no versioning.
func (c *Client) UpdateAccount(ctx context.Context, params UpdateAccountParams) (*models.Account, error) {
	if err := validate.Struct(params); err != nil {
		return nil, fmt.Errorf("update account: %w", err)
	}

	r, err := c.authedRequest(http.MethodPut, "/account/")
	if err != nil {
		return nil, err
	}
	if _, err := r.withJSON(params); err != nil {
		return nil, err
	}

	status, body, err := c.do(ctx, r)
	if err != nil {
		return nil, fmt.Errorf("update account: %w", err)
	}
	if err := checkStatus(status); err != nil {
		return nil, fmt.Errorf("update account: %w", err)
	}

	var account models.Account
	if err := decode(body, &account); err != nil {
		return nil, fmt.Errorf("update account: %w", err)
	}
	return &account, nil
}
