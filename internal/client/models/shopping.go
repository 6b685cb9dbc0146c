package models

// ShoppingList as served by /shopping-lists/. The detail endpoint includes
// items in the backend's canonical ordering.
type ShoppingList struct {
	ID        int64              `json:"id"`
	Name      string             `json:"name"`
	Items     []ShoppingListItem `json:"items,omitempty"`
	CreatedAt string             `json:"created_at"`
}

// Progress returns the number of checked items and the total.
func (l *ShoppingList) Progress() (checked, total int) {
	for _, item := range l.Items {
		if item.IsChecked {
			checked++
		}
	}
	return checked, len(l.Items)
}

// ShoppingListItem is one row of a list. Quantity is a decimal string on
// the wire.
type ShoppingListItem struct {
	ID             int64  `json:"id"`
	IngredientName string `json:"ingredient_name"`
	Quantity       string `json:"quantity"`
	Unit           string `json:"unit"`
	IsChecked      bool   `json:"is_checked"`
	Order          int    `json:"order"`
}

// NewItem is the payload for POST /shopping-lists/{id}/add_item/.
type NewItem struct {
	IngredientName string `json:"ingredient_name"`
	Quantity       string `json:"quantity"`
	Unit           string `json:"unit"`
}
