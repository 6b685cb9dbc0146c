package api

import (
	"context"

	"github.com/Yvancedric/partage-recettes-optimisation/internal/client/models"
)

// TokenPair is the credential pair issued by POST /auth/login/ or adopted
// from an external-provider callback.
type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// Client is the API contract consumed by the session manager and the
// per-screen services. Methods return sentinel errors (ErrUnauthorized,
// ErrForbidden, ErrNotFound, ErrUnavailable) or *APIError for other
// backend rejections.
type Client interface {
	// SetToken installs the access token carried as
	// "Authorization: Bearer <token>" on subsequent requests.
	// ClearToken reverts to anonymous requests.
	SetToken(access string)
	ClearToken()

	// Auth.
	Login(ctx context.Context, username, password string) (TokenPair, error)
	Register(ctx context.Context, form models.RegistrationForm) error
	RequestPasswordReset(ctx context.Context, email string) error
	ValidateResetToken(ctx context.Context, token string) error
	ConfirmPasswordReset(ctx context.Context, token, password string) error

	// Current user.
	CurrentUser(ctx context.Context) (*models.User, error)
	UpdateCurrentUser(ctx context.Context, update models.ProfileUpdate) (*models.User, error)
	MyProfile(ctx context.Context) (*models.Profile, error)
	Statistics(ctx context.Context) (*models.Statistics, error)

	// Recipes.
	Recipes(ctx context.Context, filter models.RecipeFilter) ([]models.Recipe, error)
	Recipe(ctx context.Context, id int64) (*models.Recipe, error)
	UpdateRecipe(ctx context.Context, id int64, update models.RecipeUpdate) (*models.Recipe, error)
	DeleteRecipe(ctx context.Context, id int64) error
	MyRecipes(ctx context.Context) ([]models.Recipe, error)
	FavoriteRecipes(ctx context.Context) ([]models.Recipe, error)
	Favorite(ctx context.Context, id int64) error
	Unfavorite(ctx context.Context, id int64) error
	Categories(ctx context.Context) ([]models.Category, error)

	// Shopping lists.
	ShoppingLists(ctx context.Context) ([]models.ShoppingList, error)
	ShoppingList(ctx context.Context, id int64) (*models.ShoppingList, error)
	CreateShoppingList(ctx context.Context, name string) (*models.ShoppingList, error)
	DeleteShoppingList(ctx context.Context, id int64) error
	AddItem(ctx context.Context, listID int64, item models.NewItem) error
	SetItemChecked(ctx context.Context, itemID int64, checked bool) error
	DeleteItem(ctx context.Context, itemID int64) error
	FromRecipe(ctx context.Context, listID, recipeID int64) error

	// Ping checks backend reachability via an anonymous endpoint.
	Ping(ctx context.Context) error
}
