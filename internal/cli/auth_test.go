package cli

import (
	"bufio"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/dmitrijs2005/ecocity/internal/navigation"
	"github.com/dmitrijs2005/ecocity/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterThenLogin(t *testing.T) {
	ta := newTestApp(t, "")
	ctx := context.Background()

	stubInputs(t, "alice", "pw1")
	require.NoError(t, ta.Register(ctx))
	assert.Contains(t, ta.out.String(), "Registration successful")
	assert.Equal(t, navigation.Auth, ta.machine.Current(), "register must not log in")

	require.NoError(t, ta.Login(ctx))
	assert.Contains(t, ta.out.String(), "Welcome, alice!")
	assert.Equal(t, navigation.Main, ta.machine.Current())
	assert.Equal(t, "alice main", ta.getStatus())

	cur := ta.sessions.Current()
	assert.Equal(t, 0, cur.Counter)
	assert.Equal(t, session.DefaultAvatar, cur.Avatar)
}

func TestRegister_Errors(t *testing.T) {
	tests := []struct {
		name     string
		login    string
		password string
		want     error
	}{
		{"empty login", "", "pw", session.ErrEmptyField},
		{"empty password", "bob", "", session.ErrEmptyField},
		{"delimiter in login", "a:b", "pw", session.ErrInvalidLogin},
		{"taken", "alice", "pw2", session.ErrLoginTaken},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ta := newTestApp(t, "")
			require.NoError(t, ta.sessions.Register(context.Background(), "alice", []byte("pw1")))

			stubInputs(t, tt.login, tt.password)
			err := ta.Register(context.Background())
			require.ErrorIs(t, err, tt.want)
			assert.NotContains(t, ta.out.String(), "Registration successful")
		})
	}
}

func TestLogin_WrongPasswordStaysOnAuth(t *testing.T) {
	ta := newTestApp(t, "")
	require.NoError(t, ta.sessions.Register(context.Background(), "alice", []byte("pw1")))

	stubInputs(t, "alice", "wrong")
	err := ta.Login(context.Background())
	require.ErrorIs(t, err, session.ErrInvalidCredentials)
	assert.Equal(t, navigation.Auth, ta.machine.Current())
	assert.False(t, ta.sessions.Current().Active())
}

func TestLogin_OnlyFromAuthScreen(t *testing.T) {
	ta := newTestApp(t, "")
	ta.loginAs(t, "alice", navigation.Main)

	stubInputs(t, "alice", "pw")
	require.ErrorIs(t, ta.Login(context.Background()), ErrWrongScreen)
	require.ErrorIs(t, ta.Register(context.Background()), ErrWrongScreen)
}

func TestLogin_InputErrorPropagates(t *testing.T) {
	ta := newTestApp(t, "")
	boom := errors.New("tty gone")

	orig := getPassword
	getPassword = func(_ *bufio.Reader, _ io.Writer) ([]byte, error) { return nil, boom }
	t.Cleanup(func() { getPassword = orig })

	origST := getSimpleText
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) { return "alice", nil }
	t.Cleanup(func() { getSimpleText = origST })

	require.ErrorIs(t, ta.Login(context.Background()), boom)
}

func TestRegister_WipesPassword(t *testing.T) {
	ta := newTestApp(t, "")
	pw := []byte("secret")

	orig := getPassword
	getPassword = func(_ *bufio.Reader, _ io.Writer) ([]byte, error) { return pw, nil }
	t.Cleanup(func() { getPassword = orig })

	origST := getSimpleText
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) { return "alice", nil }
	t.Cleanup(func() { getSimpleText = origST })

	require.NoError(t, ta.Register(context.Background()))
	assert.Equal(t, make([]byte, len("secret")), pw)
}

func TestLogout_FromFeatureScreen(t *testing.T) {
	ta := newTestApp(t, "")
	ta.loginAs(t, "alice", navigation.Chat)

	require.NoError(t, ta.Logout(context.Background()))
	assert.Equal(t, navigation.Auth, ta.machine.Current())
	assert.False(t, ta.sessions.Current().Active())
	assert.Contains(t, ta.out.String(), "Logged out.")
	assert.Equal(t, "auth", ta.getStatus())
}

func TestLogout_OnAuthIsIllegal(t *testing.T) {
	ta := newTestApp(t, "")
	require.ErrorIs(t, ta.Logout(context.Background()), navigation.ErrIllegalTransition)
}
