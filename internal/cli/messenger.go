package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/ecocity/internal/navigation"
)

// Say posts text to the chat as the current user.
func (a *App) Say(ctx context.Context, text string) error {
	if err := a.requireScreen(navigation.Chat); err != nil {
		return err
	}
	m, err := a.chat.Post(ctx, text)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, m)
	return nil
}

// Messages prints the chat history, oldest first.
func (a *App) Messages(ctx context.Context) error {
	if err := a.requireScreen(navigation.Chat); err != nil {
		return err
	}
	msgs, err := a.chat.List(ctx)
	if err != nil {
		return err
	}
	if len(msgs) == 0 {
		fmt.Fprintln(a.out, "No messages yet.")
		return nil
	}
	for _, m := range msgs {
		fmt.Fprintln(a.out, m)
	}
	return nil
}
