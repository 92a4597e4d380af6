package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/dmitrijs2005/ecocity/internal/bins"
	"github.com/dmitrijs2005/ecocity/internal/chat"
	"github.com/dmitrijs2005/ecocity/internal/config"
	"github.com/dmitrijs2005/ecocity/internal/credentials"
	"github.com/dmitrijs2005/ecocity/internal/logging"
	"github.com/dmitrijs2005/ecocity/internal/navigation"
	"github.com/dmitrijs2005/ecocity/internal/session"
)

// authService is the part of session.Manager the CLI drives.
type authService interface {
	Register(ctx context.Context, login string, password []byte) error
	Login(ctx context.Context, login string, password []byte) (session.Session, error)
	Current() session.Session
	AddPoints(n int) (int, error)
}

// navigator is the part of navigation.Machine the CLI drives.
type navigator interface {
	Current() navigation.Screen
	Features() []navigation.Screen
	RequestTransition(ctx context.Context, target navigation.Screen) error
	Back(ctx context.Context) error
	Logout(ctx context.Context) error
}

type chatService interface {
	Post(ctx context.Context, body string) (chat.Message, error)
	List(ctx context.Context) ([]chat.Message, error)
}

type App struct {
	config *config.Config
	logger logging.Logger
	auth   authService
	nav    navigator
	chat   chatService
	bins   []bins.Location
	db     *sql.DB
	reader *bufio.Reader
	out    io.Writer
}

// NewApp builds the object graph for cfg: credential store, session
// manager, state machine and, when the variant offers the chat screen,
// the message database.
func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	if logger == nil {
		logger = logging.Nop()
	}

	features, err := navigation.Variant(c.Variant).Features()
	if err != nil {
		return nil, err
	}

	store := credentials.NewFileStore(c.CredentialsFile, logger)
	if err := store.Initialize(ctx); err != nil {
		return nil, fmt.Errorf("credential store init error: %w", err)
	}

	sessions := session.NewManager(store, logger, session.WithAvatar(c.Avatar))
	app := &App{
		config: c,
		logger: logger.With("module", "cli"),
		auth:   sessions,
		nav:    navigation.NewMachine(sessions, logger, features...),
		bins:   bins.DefaultLocations,
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}

	if slices.Contains(features, navigation.Chat) {
		db, err := chat.InitDatabase(ctx, c.MessagesDSN)
		if err != nil {
			return nil, fmt.Errorf("db init error: %w", err)
		}
		app.db = db
		app.chat = chat.NewService(db, sessions, logger, c.ChatHistoryLimit)
	}

	return app, nil
}

// Run starts the REPL and blocks until the user exits or input ends.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	a.logger.Info(ctx, "starting", "variant", a.config.Variant)
	fmt.Fprintln(a.out, "Welcome to ecocity (type 'help' for commands)")
	runREPL(ctx, a, a.getStatus, a.reader)
}

// Close releases the chat database, if one was opened.
func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}

func (a *App) screen() navigation.Screen {
	return a.nav.Current()
}

func (a *App) getStatus() string {
	s := string(a.nav.Current())
	if cur := a.auth.Current(); cur.Active() {
		s = cur.Login + " " + s
	}
	return s
}

func (a *App) requireScreen(s navigation.Screen) error {
	if a.nav.Current() != s {
		return fmt.Errorf("%w: open it with 'go %s'", ErrWrongScreen, s)
	}
	return nil
}
