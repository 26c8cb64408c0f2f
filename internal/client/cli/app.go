package cli

import (
	"bufio"
	"context"
	"database/sql"
	"io"
	"os"

	"github.com/Nidhi8595/DevTinder3/internal/client/api"
	"github.com/Nidhi8595/DevTinder3/internal/client/config"
	"github.com/Nidhi8595/DevTinder3/internal/client/router"
	"github.com/Nidhi8595/DevTinder3/internal/client/session"
	"github.com/Nidhi8595/DevTinder3/internal/client/storage"
	"github.com/Nidhi8595/DevTinder3/internal/logging"

	_ "modernc.org/sqlite"
)

// App wires the session store, the remote gateway, and the navigator behind
// an interactive terminal client. All collaborators are injected; tests swap
// in fakes.
type App struct {
	config  *config.Config
	store   *session.Store
	gateway api.Gateway
	nav     *router.Navigator
	log     logging.Logger

	db       *sql.DB
	reader   *bufio.Reader
	out      io.Writer
	quoteIdx int
}

// NewApp opens the local session database and builds a fully wired App.
func NewApp(c *config.Config, log logging.Logger) (*App, error) {
	ctx := context.Background()

	db, err := storage.Open(ctx, c.DatabasePath)
	if err != nil {
		log.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	vault := storage.NewSessionVault(db, log)
	store := session.NewStore(vault, log)
	gateway := api.NewHTTPGateway(c.ServerBaseURL, c.RequestTimeout, log)
	nav := router.NewNavigator(store, log)

	return &App{
		config:  c,
		store:   store,
		gateway: gateway,
		nav:     nav,
		log:     log,
		db:      db,
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
	}, nil
}

// Close releases the local database.
func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}

// Run restores any persisted session and enters the REPL. It blocks until
// the user exits.
func (a *App) Run(ctx context.Context) {
	a.store.Hydrate(ctx)
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.store.State().Authenticated
}
