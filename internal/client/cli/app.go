package cli

import (
	"bufio"
	"context"
	"database/sql"
	"log/slog"
	"os"

	"github.com/Yvancedric/partage-recettes-optimisation/internal/client/api"
	"github.com/Yvancedric/partage-recettes-optimisation/internal/client/config"
	"github.com/Yvancedric/partage-recettes-optimisation/internal/client/models"
	"github.com/Yvancedric/partage-recettes-optimisation/internal/client/repositories/tokens"
	"github.com/Yvancedric/partage-recettes-optimisation/internal/client/services"
	"github.com/Yvancedric/partage-recettes-optimisation/internal/client/session"
	"github.com/Yvancedric/partage-recettes-optimisation/internal/client/store"
	"github.com/Yvancedric/partage-recettes-optimisation/internal/logging"

	_ "modernc.org/sqlite"
)

// sessionIface is the slice of the session manager the commands need.
// The real session.Manager satisfies it; tests can provide a stub.
type sessionIface interface {
	State() session.State
	CurrentUser() *models.User
	IsAuthenticated() bool
	Init(ctx context.Context)
	Login(ctx context.Context, username, password string) session.Result
	Register(ctx context.Context, form models.RegistrationForm) session.Result
	Logout(ctx context.Context)
	SetTokens(ctx context.Context, access, refresh string) session.Result
	FetchCurrentUser(ctx context.Context) session.Result
	UpdateUser(ctx context.Context, update models.ProfileUpdate) session.Result
	RequestPasswordReset(ctx context.Context, email string) session.Result
	ConfirmPasswordReset(ctx context.Context, token, password string) session.Result
}

type App struct {
	config    *config.Config
	client    api.Client
	session   sessionIface
	tokens    tokens.Repository
	recipes   *services.RecipeService
	shopping  *services.ShoppingService
	dashboard *services.DashboardService
	log       logging.Logger
	reader    *bufio.Reader
	db        *sql.DB
}

func NewApp(c *config.Config) (*App, error) {

	ctx := context.Background()

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	db, err := store.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		logger.Error(ctx, "initializing database failed", "error", err)
		return nil, err
	}

	repo := tokens.NewSQLiteRepository(db)
	apiClient := api.NewHTTPClient(c.ServerEndpointURL, c.RequestTimeout)
	sess := session.NewManager(apiClient, repo, consoleNotifier{}, logger)

	return &App{
		config:    c,
		client:    apiClient,
		session:   sess,
		tokens:    repo,
		recipes:   services.NewRecipeService(apiClient, logger, c.SearchDebounce),
		shopping:  services.NewShoppingService(apiClient, logger),
		dashboard: services.NewDashboardService(apiClient, logger),
		log:       logger,
		reader:    bufio.NewReader(os.Stdin),
		db:        db,
	}, nil
}

// Run restores the saved session, then hands control to the REPL until the
// user exits or stdin closes.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	if err := a.client.Ping(ctx); err != nil {
		notifyFn("[info]", "Backend unreachable, commands will fail until it is back:", err.Error())
	}

	a.session.Init(ctx)

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}

func (a *App) Close() {
	a.recipes.Close()
	if a.db != nil {
		_ = a.db.Close()
	}
}

func (a *App) isLoggedIn() bool {
	return a.session.IsAuthenticated()
}

func (a *App) getStatus() string {
	if u := a.session.CurrentUser(); u != nil {
		return "(" + u.Username + ")"
	}
	return "(anonymous)"
}
