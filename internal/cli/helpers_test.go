package cli

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dmitrijs2005/ecocity/internal/bins"
	"github.com/dmitrijs2005/ecocity/internal/config"
	"github.com/dmitrijs2005/ecocity/internal/credentials"
	"github.com/dmitrijs2005/ecocity/internal/logging"
	"github.com/dmitrijs2005/ecocity/internal/navigation"
	"github.com/dmitrijs2005/ecocity/internal/session"
	"github.com/stretchr/testify/require"
)

type testApp struct {
	*App
	out      *bytes.Buffer
	sessions *session.Manager
	machine  *navigation.Machine
}

// newTestApp builds an App over a temp credential file offering every
// feature screen. input feeds the App's reader.
func newTestApp(t *testing.T, input string) *testApp {
	t.Helper()
	ctx := context.Background()

	store := credentials.NewFileStore(filepath.Join(t.TempDir(), "users.txt"), nil)
	require.NoError(t, store.Initialize(ctx))

	mgr := session.NewManager(store, nil)
	nav := navigation.NewMachine(mgr, nil, navigation.Map, navigation.Food, navigation.Chat)
	out := &bytes.Buffer{}

	a := &App{
		config: &config.Config{Variant: "all"},
		logger: logging.Nop(),
		auth:   mgr,
		nav:    nav,
		bins:   bins.DefaultLocations,
		reader: bufio.NewReader(strings.NewReader(input)),
		out:    out,
	}
	return &testApp{App: a, out: out, sessions: mgr, machine: nav}
}

// loginAs registers and logs in login directly through the core and opens
// screen (Main when screen is empty).
func (ta *testApp) loginAs(t *testing.T, login string, screen navigation.Screen) {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, ta.sessions.Register(ctx, login, []byte("pw")))
	_, err := ta.sessions.Login(ctx, login, []byte("pw"))
	require.NoError(t, err)
	require.NoError(t, ta.machine.RequestTransition(ctx, navigation.Main))
	if screen != "" && screen != navigation.Main {
		require.NoError(t, ta.machine.RequestTransition(ctx, screen))
	}
	ta.out.Reset()
}

// stubInputs replaces the credential prompts. Each getPassword call gets a
// fresh slice since callers wipe it.
func stubInputs(t *testing.T, login, password string) {
	t.Helper()
	origST, origGP := getSimpleText, getPassword
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) { return login, nil }
	getPassword = func(_ *bufio.Reader, _ io.Writer) ([]byte, error) { return []byte(password), nil }
	t.Cleanup(func() {
		getSimpleText = origST
		getPassword = origGP
	})
}
