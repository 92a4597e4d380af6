package cli

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/ecocity/internal/navigation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGo(t *testing.T) {
	ta := newTestApp(t, "")
	ctx := context.Background()

	require.ErrorIs(t, ta.Go(ctx, "map"), navigation.ErrIllegalTransition, "needs a session")
	require.ErrorIs(t, ta.Go(ctx, "garden"), ErrUsage)

	ta.loginAs(t, "alice", navigation.Main)
	require.NoError(t, ta.Go(ctx, "Food"))
	assert.Equal(t, navigation.Food, ta.machine.Current())
	assert.Contains(t, ta.out.String(), "Screen: food")

	require.ErrorIs(t, ta.Go(ctx, "map"), navigation.ErrIllegalTransition, "feature to feature")
	assert.Equal(t, navigation.Food, ta.machine.Current())

	require.NoError(t, ta.Back(ctx))
	assert.Equal(t, navigation.Main, ta.machine.Current())
	require.ErrorIs(t, ta.Back(ctx), navigation.ErrIllegalTransition)

	require.NoError(t, ta.Go(ctx, "auth"))
	assert.False(t, ta.sessions.Current().Active(), "leaving main for auth logs out")
}

func TestWhoAmI(t *testing.T) {
	ta := newTestApp(t, "")
	ctx := context.Background()

	require.NoError(t, ta.WhoAmI(ctx))
	assert.Equal(t, "Not logged in.\n", ta.out.String())

	ta.loginAs(t, "alice", navigation.Main)
	_, err := ta.sessions.AddPoints(3)
	require.NoError(t, err)

	require.NoError(t, ta.WhoAmI(ctx))
	out := ta.out.String()
	assert.Contains(t, out, "User: alice")
	assert.Contains(t, out, "Avatar: avatar.png")
	assert.Contains(t, out, "Points: 3")
	assert.Contains(t, out, "Screen: main")
	assert.Contains(t, out, "Features: [map food chat]")
}
