package services

import (
	"context"

	"github.com/Yvancedric/partage-recettes-optimisation/internal/client/api"
	"github.com/Yvancedric/partage-recettes-optimisation/internal/client/models"
	"github.com/Yvancedric/partage-recettes-optimisation/internal/logging"
)

// DashboardService loads the dashboard screen: usage statistics plus the
// user's own and favorited recipes. Each section degrades independently to
// an empty state on failure.
type DashboardService struct {
	client api.Client
	log    logging.Logger
}

func NewDashboardService(client api.Client, log logging.Logger) *DashboardService {
	return &DashboardService{client: client, log: log}
}

// Dashboard holds one load of the dashboard data.
type Dashboard struct {
	Stats     *models.Statistics
	Recipes   []models.Recipe
	Favorites []models.Recipe
}

// Load fetches all dashboard sections. A failed section is logged and left
// empty; the screen still renders.
func (s *DashboardService) Load(ctx context.Context) Dashboard {
	var d Dashboard

	stats, err := s.client.Statistics(ctx)
	if err != nil {
		s.log.Error(ctx, "fetching statistics failed", "error", err)
	} else {
		d.Stats = stats
	}

	recipes, err := s.client.MyRecipes(ctx)
	if err != nil {
		s.log.Error(ctx, "fetching own recipes failed", "error", err)
	} else {
		d.Recipes = recipes
	}

	favorites, err := s.client.FavoriteRecipes(ctx)
	if err != nil {
		s.log.Error(ctx, "fetching favorites failed", "error", err)
	} else {
		d.Favorites = favorites
	}

	return d
}

// Profile fetches the dietary-preferences extension of the current user.
func (s *DashboardService) Profile(ctx context.Context) (*models.Profile, error) {
	return s.client.MyProfile(ctx)
}
