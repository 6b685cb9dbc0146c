package services

import (
	"context"
	"fmt"

	"github.com/Yvancedric/partage-recettes-optimisation/internal/client/api"
	"github.com/Yvancedric/partage-recettes-optimisation/internal/client/models"
	"github.com/Yvancedric/partage-recettes-optimisation/internal/client/reconcile"
	"github.com/Yvancedric/partage-recettes-optimisation/internal/logging"
)

// ShoppingService opens the shopping-list screens.
type ShoppingService struct {
	client api.Client
	log    logging.Logger
}

func NewShoppingService(client api.Client, log logging.Logger) *ShoppingService {
	return &ShoppingService{client: client, log: log}
}

// OpenLists creates and loads the lists-overview screen.
func (s *ShoppingService) OpenLists(ctx context.Context) *ListsScreen {
	screen := &ListsScreen{client: s.client}
	screen.rec = reconcile.New(func(ctx context.Context) ([]models.ShoppingList, error) {
		return s.client.ShoppingLists(ctx)
	}, s.log)
	screen.rec.Refresh(ctx)
	return screen
}

// OpenList creates and loads the detail screen for one list.
func (s *ShoppingService) OpenList(ctx context.Context, id int64) *ListScreen {
	screen := &ListScreen{client: s.client, id: id}
	screen.rec = reconcile.New(func(ctx context.Context) (*models.ShoppingList, error) {
		return s.client.ShoppingList(ctx, id)
	}, s.log)
	screen.rec.Refresh(ctx)
	return screen
}

// ListsScreen is the overview of the user's shopping lists.
type ListsScreen struct {
	client api.Client
	rec    *reconcile.Reconciler[[]models.ShoppingList]
}

func (s *ListsScreen) Lists() []models.ShoppingList {
	return s.rec.State()
}

func (s *ListsScreen) Create(ctx context.Context, name string) error {
	return s.rec.Apply(ctx, func(ctx context.Context) error {
		_, err := s.client.CreateShoppingList(ctx, name)
		return err
	})
}

func (s *ListsScreen) Delete(ctx context.Context, id int64) error {
	return s.rec.Apply(ctx, func(ctx context.Context) error {
		return s.client.DeleteShoppingList(ctx, id)
	})
}

// ListScreen is the detail of one shopping list and its items. Every item
// mutation is followed by a re-read of the owning list so ordering and the
// checked flags come from the backend.
type ListScreen struct {
	client api.Client
	id     int64
	rec    *reconcile.Reconciler[*models.ShoppingList]
}

func (s *ListScreen) List() *models.ShoppingList {
	return s.rec.State()
}

func (s *ListScreen) AddItem(ctx context.Context, item models.NewItem) error {
	if item.IngredientName == "" {
		return fmt.Errorf("ingredient name is required")
	}
	return s.rec.Apply(ctx, func(ctx context.Context) error {
		return s.client.AddItem(ctx, s.id, item)
	})
}

// ToggleItem flips the checked flag of the item with the given id.
func (s *ListScreen) ToggleItem(ctx context.Context, itemID int64) error {
	return s.rec.Apply(ctx, func(ctx context.Context) error {
		list := s.rec.State()
		if list == nil {
			return fmt.Errorf("list not loaded")
		}
		for _, item := range list.Items {
			if item.ID == itemID {
				return s.client.SetItemChecked(ctx, itemID, !item.IsChecked)
			}
		}
		return fmt.Errorf("item %d: %w", itemID, api.ErrNotFound)
	})
}

func (s *ListScreen) DeleteItem(ctx context.Context, itemID int64) error {
	return s.rec.Apply(ctx, func(ctx context.Context) error {
		return s.client.DeleteItem(ctx, itemID)
	})
}

// FromRecipe fills the list with the ingredients of a recipe.
func (s *ListScreen) FromRecipe(ctx context.Context, recipeID int64) error {
	return s.rec.Apply(ctx, func(ctx context.Context) error {
		return s.client.FromRecipe(ctx, s.id, recipeID)
	})
}
