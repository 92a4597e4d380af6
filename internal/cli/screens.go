package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/ecocity/internal/navigation"
)

// Go switches to the named screen.
func (a *App) Go(ctx context.Context, target string) error {
	s, err := navigation.ParseScreen(target)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}
	if err := a.nav.RequestTransition(ctx, s); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Screen: %s\n", s)
	return nil
}

// Back leaves a feature screen for Main.
func (a *App) Back(ctx context.Context) error {
	if err := a.nav.Back(ctx); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Screen: %s\n", navigation.Main)
	return nil
}

// WhoAmI prints the profile block of the main screen.
func (a *App) WhoAmI(_ context.Context) error {
	s := a.auth.Current()
	if !s.Active() {
		fmt.Fprintln(a.out, "Not logged in.")
		return nil
	}
	fmt.Fprintf(a.out, "User: %s\nAvatar: %s\nPoints: %d\nScreen: %s\n",
		s.DisplayName, s.Avatar, s.Counter, a.nav.Current())
	if f := a.nav.Features(); len(f) > 0 {
		fmt.Fprintf(a.out, "Features: %v\n", f)
	}
	return nil
}
