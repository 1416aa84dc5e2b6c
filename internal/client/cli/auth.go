package cli

import (
	"context"
	"fmt"
	"os"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// printErrors reports the validation errors of the latest auth operation
// in a stable field order.
func (a *App) printErrors() {
	errs := a.auth.Errors()
	for _, field := range []string{"email", "password", "general"} {
		if msg, ok := errs[field]; ok {
			printlnFn(msg)
		}
	}
}

// Register prompts the user for an email and password and attempts to
// create an account. A successful registration logs the new account in
// right away.
func (a *App) Register(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	if !a.auth.Register(ctx, email, password) {
		a.printErrors()
		return nil
	}

	printlnFn(fmt.Sprintf("Welcome, %s!", a.auth.User().Email))
	return nil
}

// Login prompts the user for credentials and tries to authenticate.
// Validation and auth failures are reported to the user; the reasons
// behind remote failures go to the logs only.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	if !a.auth.Login(ctx, email, password) {
		a.printErrors()
		return nil
	}

	printlnFn("Logged in.")
	return nil
}

// Logout ends the session locally no matter what the server says.
func (a *App) Logout(ctx context.Context) error {
	a.auth.Logout(ctx)
	printlnFn("Logged out.")
	return nil
}

// WhoAmI re-validates the session against the server and prints the
// current account. A stale token logs the user out as a side effect.
func (a *App) WhoAmI(ctx context.Context) error {
	if !a.auth.IsAuthenticated() {
		printlnFn("Not logged in.")
		return nil
	}

	a.auth.CheckAuth(ctx)

	u := a.auth.User()
	if u == nil {
		printlnFn("Session expired, please log in again.")
		return nil
	}
	if u.ID != nil {
		printlnFn(fmt.Sprintf("%s (id %d)", u.Email, *u.ID))
	} else {
		printlnFn(u.Email)
	}
	return nil
}
