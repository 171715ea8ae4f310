// Package app is the PromptLab presentation layer: a small REPL over the
// credential store, the prompt store, and the optimize pipeline. The form
// surface publishes submitted fields on the event bus; the output surface
// subscribes and renders.
package app

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"

	"github.com/promptlab/promptlab/internal/config"
	"github.com/promptlab/promptlab/internal/events"
	"github.com/promptlab/promptlab/internal/localstore"
	"github.com/promptlab/promptlab/internal/logging"
	"github.com/promptlab/promptlab/internal/services"

	_ "modernc.org/sqlite"
)

type App struct {
	config  *config.Config
	log     logging.Logger
	db      *sql.DB
	auth    services.CredentialService
	prompts services.PromptService
	bus     *events.Bus
	reader  *bufio.Reader
	out     io.Writer
}

func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	db, err := localstore.InitDatabase(ctx, cfg.DatabaseDSN)
	if err != nil {
		log.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	auth := services.NewCredentialService(db, log, []byte(cfg.SessionKey), cfg.SessionTTL)
	prompts := services.NewPromptService(localstore.NewSQLiteRepository(db), auth, log)

	a := &App{
		config:  cfg,
		log:     log,
		db:      db,
		auth:    auth,
		prompts: prompts,
		bus:     events.NewBus(),
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
	}
	a.bus.Subscribe(a.renderOptimized)
	return a, nil
}

// Run restores any persisted session and hands control to the REPL.
func (a *App) Run(ctx context.Context) {
	defer a.db.Close()

	if err := a.auth.Restore(ctx); err != nil {
		a.log.Warn(ctx, "could not restore session", "error", err)
	}

	fmt.Fprintln(a.out, "Welcome to PromptLab (type 'help' for commands)")
	runREPL(ctx, a, a.status, bufio.NewScanner(os.Stdin))
}

func (a *App) isLoggedIn() bool {
	return a.auth.IsAuthenticated()
}

func (a *App) status() string {
	if user, ok := a.auth.Current(); ok {
		return user.Email
	}
	return "guest"
}
