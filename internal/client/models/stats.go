package models

// Statistics as served by GET /statistics/ for the dashboard.
type Statistics struct {
	TotalRecipes   int `json:"total_recipes"`
	TotalFavorites int `json:"total_favorites"`
	TotalViews     int `json:"total_views"`
}
