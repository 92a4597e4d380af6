package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/ecocity/internal/navigation"
	"github.com/dmitrijs2005/ecocity/internal/shared"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

func (a *App) readCredentials() (string, []byte, error) {
	login, err := getSimpleText(a.reader, "Enter login", a.out)
	if err != nil {
		return "", nil, err
	}
	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return "", nil, err
	}
	return login, password, nil
}

// Register prompts for a login and password and creates the account. It
// does not log the user in. The password is wiped before returning.
func (a *App) Register(ctx context.Context) error {
	if err := a.requireScreen(navigation.Auth); err != nil {
		return err
	}

	login, password, err := a.readCredentials()
	if err != nil {
		return err
	}
	defer shared.WipeByteArray(password)

	if err := a.auth.Register(ctx, login, password); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Registration successful, you can log in now.")
	return nil
}

// Login prompts for credentials and, on success, opens the main screen
// with a fresh session. The password is wiped before returning.
func (a *App) Login(ctx context.Context) error {
	if err := a.requireScreen(navigation.Auth); err != nil {
		return err
	}

	login, password, err := a.readCredentials()
	if err != nil {
		return err
	}
	defer shared.WipeByteArray(password)

	s, err := a.auth.Login(ctx, login, password)
	if err != nil {
		return err
	}
	if err := a.nav.RequestTransition(ctx, navigation.Main); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Welcome, %s!\n", s.DisplayName)
	return nil
}

// Logout ends the session from Main or any feature screen and returns to
// the auth screen.
func (a *App) Logout(ctx context.Context) error {
	if err := a.nav.Logout(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}
