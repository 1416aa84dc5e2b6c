package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"os"

	"github.com/plateful/plateful/internal/client/api"
	"github.com/plateful/plateful/internal/client/config"
	"github.com/plateful/plateful/internal/client/images"
	"github.com/plateful/plateful/internal/client/repositories/session"
	"github.com/plateful/plateful/internal/client/router"
	"github.com/plateful/plateful/internal/client/services"
	"github.com/plateful/plateful/internal/logging"

	_ "modernc.org/sqlite"
)

// App wires the recipe client together: local session database, API
// client, services and router. Commands typed in the REPL dispatch to
// methods on App.
type App struct {
	config  *config.Config
	db      *sql.DB
	client  api.Client
	auth    *services.AuthService
	recipes *services.RecipeStore
	router  *router.Router
	reader  *bufio.Reader
}

func NewApp(c *config.Config, logger logging.Logger) (*App, error) {
	ctx := context.Background()

	db, err := session.OpenDatabase(ctx, c.DatabasePath)
	if err != nil {
		logger.Error(ctx, "initializing database failed", "error", err)
		return nil, err
	}

	apiClient := api.NewHTTPClient(c.APIBaseURL, logger)
	auth := services.NewAuthService(apiClient, db, logger)
	recipes := services.NewRecipeStore(apiClient, images.NewResolver(logger), logger)

	return &App{
		config:  c,
		db:      db,
		client:  apiClient,
		auth:    auth,
		recipes: recipes,
		router:  router.New(auth),
		reader:  bufio.NewReader(os.Stdin),
	}, nil
}

// Run hydrates the session from local storage and starts the REPL.
// It returns when the user quits or stdin is closed.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	a.auth.InitializeAuth(ctx)

	printlnFn("Welcome to Plateful (type 'help' for commands)")
	runREPL(ctx, a, a.status, bufio.NewScanner(os.Stdin))
}

func (a *App) Close() {
	_ = a.client.Close()
	_ = a.db.Close()
}

func (a *App) isLoggedIn() bool {
	return a.auth.IsAuthenticated()
}

func (a *App) status() string {
	if u := a.auth.User(); u != nil {
		return fmt.Sprintf("(%s)", u.Email)
	}
	if a.auth.IsAuthenticated() {
		return "(logged in)"
	}
	return ""
}

// navigate runs path through the route guard before a view-bound command
// executes. When the guard redirects to the login page the command is
// refused and the user told to log in.
func (a *App) navigate(path string) bool {
	if a.router.Resolve(path) != router.LoginPath || path == router.LoginPath {
		return true
	}
	printlnFn("Please log in first (type 'login').")
	return false
}
