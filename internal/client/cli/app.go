package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/gophtodo/internal/client/config"
	"github.com/dmitrijs2005/gophtodo/internal/client/database"
	"github.com/dmitrijs2005/gophtodo/internal/client/services"
	"github.com/dmitrijs2005/gophtodo/internal/client/store"
	"github.com/dmitrijs2005/gophtodo/internal/logging"
	"github.com/dmitrijs2005/gophtodo/internal/todo"
	"golang.org/x/term"
)

type App struct {
	config      *config.Config
	logger      logging.Logger
	closer      io.Closer
	todos       services.TodoService
	input       io.Reader
	interactive bool
}

// NewApp opens the journal named by the config and assembles the client.
func NewApp(c *config.Config) (*App, error) {
	ctx := context.Background()

	logger, err := logging.NewTextLogger(os.Stderr, c.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("configure logging: %w", err)
	}

	repos, err := database.InitDatabase(ctx, c.DatabaseDSN, c.StoreID)
	if err != nil {
		logger.Error(ctx, "error initializing database", "dsn", c.DatabaseDSN, "error", err)
		return nil, err
	}

	app, err := newApp(ctx, c, logger, repos)
	if err != nil {
		_ = repos.Close()
		return nil, err
	}
	app.closer = repos
	app.input = os.Stdin
	app.interactive = term.IsTerminal(int(os.Stdin.Fd()))
	return app, nil
}

func newApp(ctx context.Context, c *config.Config, logger logging.Logger, journal store.Journal) (*App, error) {
	st, err := store.Open(ctx, journal, logger, store.WithCommitTimeout(c.CommitTimeout))
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	actions := todo.NewActions(st)

	return &App{
		config: c,
		logger: logger,
		todos:  services.NewTodoService(st, actions),
	}, nil
}

// Run starts the REPL and blocks until it returns, then closes the journal.
func (a *App) Run(ctx context.Context) {
	if a.closer != nil {
		defer func() {
			if err := a.closer.Close(); err != nil {
				a.logger.Error(ctx, "error closing database", "error", err)
			}
		}()
	}

	stop := a.todos.Watch(func(v services.View) {
		a.logger.Debug(ctx, "view updated", "shown", len(v.Todos), "total", v.Total, "filter", v.Filter)
	})
	defer stop()

	if a.interactive {
		printlnFn("Welcome to the todo CLI (type 'help' for commands)")
	}
	_ = a.List(ctx)

	runREPL(ctx, a, a.interactive, bufio.NewScanner(a.input))
}
