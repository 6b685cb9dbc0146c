package models

// Recipe as served by /recipes/. List and detail share one shape; the
// detail adds ingredients. Counters and the is_favorited flag are computed
// server-side, which is why mutations are followed by a full re-read
// instead of a local patch.
type Recipe struct {
	ID             int64        `json:"id"`
	Title          string       `json:"title"`
	Description    string       `json:"description"`
	Author         *Author      `json:"author"`
	Category       *Category    `json:"category"`
	PrepTime       int          `json:"prep_time"`
	CookTime       int          `json:"cook_time"`
	TotalTime      int          `json:"total_time"`
	Servings       int          `json:"servings"`
	Difficulty     int          `json:"difficulty"`
	EstimatedCost  int          `json:"estimated_cost"`
	Instructions   string       `json:"instructions"`
	Tags           []string     `json:"tags"`
	MainImage      string       `json:"main_image"`
	Ingredients    []Ingredient `json:"ingredients,omitempty"`
	ViewsCount     int          `json:"views_count"`
	FavoritesCount int          `json:"favorites_count"`
	IsFavorited    bool         `json:"is_favorited"`
	CreatedAt      string       `json:"created_at"`
}

// OwnedBy reports whether u is the recipe's author. Edit and delete
// actions are only offered to the owner.
func (r *Recipe) OwnedBy(u *User) bool {
	return u != nil && r.Author != nil && r.Author.ID == u.ID
}

// Category as served by /recipe-categories/.
type Category struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// Ingredient of a recipe detail. Quantity is a decimal string on the wire.
type Ingredient struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Quantity string `json:"quantity"`
	Unit     string `json:"unit"`
	Order    int    `json:"order"`
}

// RecipeUpdate is the writable subset sent with PUT /recipes/{id}/.
type RecipeUpdate struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	CategoryID   *int64   `json:"category_id,omitempty"`
	PrepTime     int      `json:"prep_time"`
	CookTime     int      `json:"cook_time"`
	Servings     int      `json:"servings"`
	Difficulty   int      `json:"difficulty"`
	Instructions string   `json:"instructions"`
	Tags         []string `json:"tags"`
}
