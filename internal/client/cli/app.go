// Package cli implements the terminal front end: a REPL that plays the role
// of the public catalog, the login page and the admin dashboard, on top of
// the services layer.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/Revolutionnnn/gestor-ia/internal/client/api"
	"github.com/Revolutionnnn/gestor-ia/internal/client/config"
	"github.com/Revolutionnnn/gestor-ia/internal/client/repositories/products"
	"github.com/Revolutionnnn/gestor-ia/internal/client/services"
	"github.com/Revolutionnnn/gestor-ia/internal/client/session"
	"github.com/Revolutionnnn/gestor-ia/internal/client/storage"
	"github.com/Revolutionnnn/gestor-ia/internal/common"
	"github.com/Revolutionnnn/gestor-ia/internal/logging"
)

type App struct {
	config   *config.Config
	store    storage.Store
	sessions session.Store
	catalog  *services.CatalogService
	admin    *services.AdminService
	reader   *bufio.Reader
	out      io.Writer

	// current catalog view state
	searchTerm string
	category   string
}

// NewApp wires the variant selected by the config: a local bbolt-backed
// repository with the fixed-credential session store, or the REST-backed
// repository with bearer-token sessions.
func NewApp(c *config.Config) (*App, error) {
	logger := logging.NewTextLogger(os.Stderr)

	store, err := storage.OpenBolt(c.DataFile, logger)
	if err != nil {
		return nil, err
	}

	a := &App{
		config:   c,
		store:    store,
		reader:   bufio.NewReader(os.Stdin),
		out:      os.Stdout,
		category: services.AllCategories,
	}

	var repo products.Repository

	switch c.Backend {
	case config.BackendAPI:
		tokens := session.NewTokenStore(store, logger, func() {
			fmt.Fprintln(a.out, common.ErrSessionExpired.Error())
		})
		apiClient := api.NewHTTPClient(c.ResourceAPIAddr, c.AuthAPIAddr, c.RequestTimeout, tokens, logger)
		tokens.Bind(apiClient)

		a.sessions = tokens
		repo = products.NewRemoteRepository(apiClient)
	default:
		a.sessions = session.NewLocalStore(store, logger)
		repo = products.NewLocalRepository(store, logger)
	}

	a.catalog = services.NewCatalogService(repo, logger)
	a.admin = services.NewAdminService(repo, logger)

	return a, nil
}

func (a *App) Run(ctx context.Context) {
	defer a.store.Close()
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.sessions.IsAuthenticated()
}
