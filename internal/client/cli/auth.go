package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/forkedapp/forked/internal/client/api"
	"github.com/forkedapp/forked/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for registration details and creates the account. On
// success the new account is installed as the current session.
func (a *App) Register(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	account, err := a.api.Register(ctx, api.RegisterParams{
		Username: username,
		Email:    email,
		Password: string(password),
	})
	if err != nil {
		switch {
		case errors.Is(err, api.ErrEmailAndUsernameInUse):
			fmt.Println("Both that email and that username are taken.")
		case errors.Is(err, api.ErrEmailInUse):
			fmt.Println("That email is already taken.")
		case errors.Is(err, api.ErrUsernameInUse):
			fmt.Println("That username is already taken.")
		default:
			a.log.Error(ctx, "registration failed", "error", err)
		}
		return err
	}

	if err := a.session.SetCurrent(ctx, account); err != nil {
		a.log.Error(ctx, "failed to persist session", "error", err)
		return err
	}
	fmt.Println("Welcome,", account.Username)
	return nil
}

// Login prompts for credentials and authenticates. On success the account
// is installed as the current session and persisted.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	account, err := a.api.Login(ctx, api.Credentials{Email: email, Password: string(password)})
	if err != nil {
		if errors.Is(err, api.ErrUnauthorized) {
			fmt.Println("Wrong email or password.")
		} else if errors.Is(err, api.ErrTransport) {
			fmt.Println("Server unreachable, try again later.")
		} else {
			a.log.Error(ctx, "login failed", "error", err)
		}
		return err
	}

	if err := a.session.SetCurrent(ctx, account); err != nil {
		a.log.Error(ctx, "failed to persist session", "error", err)
		return err
	}
	fmt.Println("Logged in as", account.Username)
	return nil
}

// Logout drops the session and wipes the persisted credentials.
func (a *App) Logout(ctx context.Context) error {
	a.session.Clear(ctx)
	fmt.Println("Logged out.")
	return nil
}

// Whoami prints the current account.
func (a *App) Whoami(ctx context.Context) error {
	account, ok := a.session.Current()
	if !ok {
		fmt.Println("Not logged in.")
		return nil
	}
	fmt.Printf("%s <%s> (id %d)\n", account.Username, account.Email, account.ID)
	return nil
}
