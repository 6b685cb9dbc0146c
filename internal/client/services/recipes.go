package services

import (
	"context"
	"sync"
	"time"

	"github.com/Yvancedric/partage-recettes-optimisation/internal/client/api"
	"github.com/Yvancedric/partage-recettes-optimisation/internal/client/models"
	"github.com/Yvancedric/partage-recettes-optimisation/internal/client/reconcile"
	"github.com/Yvancedric/partage-recettes-optimisation/internal/logging"
)

// RecipeService drives the browse screen and opens detail screens.
//
// Free-text search is debounced: keystrokes buffer until the quiet period
// elapses, and only the final value triggers a request. Structured filter
// changes (category, difficulty, time ceiling) apply immediately.
type RecipeService struct {
	client api.Client
	log    logging.Logger

	mu       sync.Mutex
	filter   models.RecipeFilter
	browse   *reconcile.Reconciler[[]models.Recipe]
	debounce *reconcile.Debouncer
}

func NewRecipeService(client api.Client, log logging.Logger, searchDelay time.Duration) *RecipeService {
	s := &RecipeService{
		client:   client,
		log:      log,
		debounce: reconcile.NewDebouncer(searchDelay),
	}
	s.browse = reconcile.New(func(ctx context.Context) ([]models.Recipe, error) {
		return client.Recipes(ctx, s.Filter())
	}, log)
	return s
}

// Activate loads the collection for the current filter. Called on screen
// activation and whenever a filter changes.
func (s *RecipeService) Activate(ctx context.Context) {
	s.browse.Refresh(ctx)
}

// Recipes returns the last loaded collection.
func (s *RecipeService) Recipes() []models.Recipe {
	return s.browse.State()
}

func (s *RecipeService) Filter() models.RecipeFilter {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filter
}

// SetFilter replaces the structured filter state and reloads immediately.
func (s *RecipeService) SetFilter(ctx context.Context, filter models.RecipeFilter) {
	s.mu.Lock()
	s.filter = filter
	s.mu.Unlock()
	s.browse.Refresh(ctx)
}

// Search buffers the free-text value; after the quiet period the value is
// promoted into the filter, the collection reloads, and done (if non-nil)
// receives the result. A new call cancels the pending one.
func (s *RecipeService) Search(ctx context.Context, text string, done func([]models.Recipe)) {
	s.debounce.Trigger(func() {
		s.mu.Lock()
		s.filter.Search = text
		s.mu.Unlock()

		s.browse.Refresh(ctx)
		if done != nil {
			done(s.browse.State())
		}
	})
}

// Close cancels any pending search.
func (s *RecipeService) Close() {
	s.debounce.Stop()
}

// Categories loads the category reference list. Tolerates both collection
// shapes; on failure the screen shows no categories.
func (s *RecipeService) Categories(ctx context.Context) []models.Category {
	categories, err := s.client.Categories(ctx)
	if err != nil {
		s.log.Error(ctx, "fetching categories failed", "error", err)
		return nil
	}
	return categories
}

// OpenDetail creates and loads a detail screen for one recipe.
func (s *RecipeService) OpenDetail(ctx context.Context, id int64) *RecipeDetail {
	d := &RecipeDetail{client: s.client, id: id}
	d.rec = reconcile.New(func(ctx context.Context) (*models.Recipe, error) {
		return s.client.Recipe(ctx, id)
	}, s.log)
	d.rec.Refresh(ctx)
	return d
}

// RecipeDetail is the detail-screen state for a single recipe.
type RecipeDetail struct {
	client api.Client
	id     int64
	rec    *reconcile.Reconciler[*models.Recipe]
}

// Recipe returns the loaded record, or nil when the load failed.
func (d *RecipeDetail) Recipe() *models.Recipe {
	return d.rec.State()
}

// CanEdit reports whether edit/delete actions may be offered: only the
// author sees them.
func (d *RecipeDetail) CanEdit(u *models.User) bool {
	r := d.rec.State()
	return r != nil && r.OwnedBy(u)
}

// ToggleFavorite adds or removes the favorite mark depending on the current
// is_favorited flag, then re-reads the recipe so the flag and the counter
// come from the backend.
func (d *RecipeDetail) ToggleFavorite(ctx context.Context) error {
	return d.rec.Apply(ctx, func(ctx context.Context) error {
		r := d.rec.State()
		if r != nil && r.IsFavorited {
			return d.client.Unfavorite(ctx, d.id)
		}
		return d.client.Favorite(ctx, d.id)
	})
}

// Update rewrites the recipe and reconciles with the canonical copy.
func (d *RecipeDetail) Update(ctx context.Context, update models.RecipeUpdate) error {
	return d.rec.Apply(ctx, func(ctx context.Context) error {
		_, err := d.client.UpdateRecipe(ctx, d.id, update)
		return err
	})
}

// Delete removes the recipe. No reconcile follows: on success the screen
// closes, on failure (e.g. 403 for a non-owner) the loaded state stays.
func (d *RecipeDetail) Delete(ctx context.Context) error {
	return d.client.DeleteRecipe(ctx, d.id)
}
