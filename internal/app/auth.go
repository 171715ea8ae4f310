package app

import (
	"context"
	"fmt"

	"github.com/promptlab/promptlab/internal/cryptox"
)

// getSimpleText, getMultiline, and getPassword are indirections used to
// facilitate testing; they point at the interactive input helpers.
var getSimpleText = GetSimpleText
var getMultiline = GetMultiline
var getPassword = GetPassword

// Register prompts for email, display name, and password, and attempts to
// create an account. The service's result message is shown to the user
// either way; only I/O and storage failures become errors.
func (a *App) Register(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	name, err := getSimpleText(a.reader, "Enter display name", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer cryptox.WipeByteArray(password)

	res, err := a.auth.Register(ctx, email, string(password), name)
	if err != nil {
		a.log.Error(ctx, "registration failed", "error", err)
		return err
	}

	fmt.Fprintln(a.out, res.Message)
	return nil
}

// Login prompts for credentials and tries to authenticate.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer cryptox.WipeByteArray(password)

	res, err := a.auth.Login(ctx, email, string(password))
	if err != nil {
		a.log.Error(ctx, "login failed", "error", err)
		return err
	}

	fmt.Fprintln(a.out, res.Message)
	return nil
}

// Logout drops the active identity. The prompt list shown afterwards is
// the empty unauthenticated collection, not the previous user's.
func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "logged out")
	return nil
}
