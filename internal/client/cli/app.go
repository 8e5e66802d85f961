// Package cli is the interactive Forked client: a small REPL over the SDK.
package cli

import (
	"bufio"
	"context"
	"database/sql"
	"net/http"
	"os"
	"path/filepath"

	"github.com/forkedapp/forked/internal/client/api"
	"github.com/forkedapp/forked/internal/client/config"
	"github.com/forkedapp/forked/internal/client/session"
	"github.com/forkedapp/forked/internal/client/storage"
	"github.com/forkedapp/forked/internal/client/yelp"
	"github.com/forkedapp/forked/internal/logging"

	_ "modernc.org/sqlite"
)

type App struct {
	config  *config.Config
	api     *api.Client
	search  *yelp.Client
	session *session.Store
	log     logging.Logger
	db      *sql.DB
	reader  *bufio.Reader
}

func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	db, err := storage.InitDatabase(ctx, filepath.Join(cfg.DataDir, "forked.db"))
	if err != nil {
		return nil, err
	}

	key, err := storage.LoadOrCreateSecret(filepath.Join(cfg.DataDir, "forked.secret"))
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	secure := storage.NewSecureStore(storage.NewSQLiteRepository(db), key)
	store := session.NewStore(secure, log)

	httpClient := &http.Client{Timeout: cfg.RequestTimeout}
	apiClient := api.NewClient(cfg.BackendBaseURL, store, log, httpClient)
	searchClient := yelp.NewClient(cfg.YelpBaseURL, cfg.YelpAPIKey, log, httpClient)

	app := &App{
		config:  cfg,
		api:     apiClient,
		search:  searchClient,
		session: store,
		log:     log,
		db:      db,
		reader:  bufio.NewReader(os.Stdin),
	}

	// pick up a session persisted by a previous run
	if account, err := store.Restore(ctx); err != nil {
		log.Warn(ctx, "failed to restore session", "error", err)
	} else if account != nil {
		log.Info(ctx, "session restored", "username", account.Username)
	}

	return app, nil
}

func (a *App) Close() error {
	return a.db.Close()
}

func (a *App) isLoggedIn() bool {
	_, ok := a.session.Current()
	return ok
}

func (a *App) Run(ctx context.Context) {
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}

func (a *App) getStatus() string {
	if account, ok := a.session.Current(); ok {
		return "(" + account.Username + ")"
	}
	return ""
}
