package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/Yvancedric/partage-recettes-optimisation/internal/client/models"
)

func parseID(args []string, usage string) (int64, bool) {
	if len(args) == 0 {
		printlnFn("Usage:", usage)
		return 0, false
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		printlnFn("Not a numeric id:", args[0])
		return 0, false
	}
	return id, true
}

func printRecipeLine(r models.Recipe) {
	mark := " "
	if r.IsFavorited {
		mark = "*"
	}
	author := ""
	if r.Author != nil {
		author = " by " + r.Author.Username
	}
	printlnFn(fmt.Sprintf("%s %4d  %s%s (%d min, %d favorites, %d views)",
		mark, r.ID, r.Title, author, r.TotalTime, r.FavoritesCount, r.ViewsCount))
}

// Stats prints the dashboard: personal figures plus the my/favorites
// collections. Sections that fail to load are simply absent.
func (a *App) Stats(ctx context.Context) error {
	d := a.dashboard.Load(ctx)

	if d.Stats != nil {
		printlnFn("Recipes:", d.Stats.TotalRecipes)
		printlnFn("Favorites:", d.Stats.TotalFavorites)
		printlnFn("Views:", d.Stats.TotalViews)
	}
	if len(d.Recipes) > 0 {
		printlnFn("My recipes:")
		for _, r := range d.Recipes {
			printRecipeLine(r)
		}
	}
	if len(d.Favorites) > 0 {
		printlnFn("My favorites:")
		for _, r := range d.Favorites {
			printRecipeLine(r)
		}
	}
	return nil
}

// Recipes loads and prints the browse collection. An optional argument is a
// query string ("category=2&difficulty=1&max_time=30") replacing the
// structured filter; with no argument the current filter is kept.
func (a *App) Recipes(ctx context.Context, args []string) error {
	if len(args) > 0 {
		filter := models.FilterFromQuery(args[0])
		if !models.ValidDifficulty(filter.Difficulty) {
			printlnFn("Difficulty must be 1..3")
			return nil
		}
		a.recipes.SetFilter(ctx, filter)
	} else {
		a.recipes.Activate(ctx)
	}

	for _, r := range a.recipes.Recipes() {
		printRecipeLine(r)
	}
	if f := a.recipes.Filter(); !f.IsZero() {
		printlnFn("Filter:", f.Encode())
	}
	return nil
}

// Search schedules a debounced free-text search and prints the collection
// once it settles.
func (a *App) Search(ctx context.Context, args []string) error {
	text := strings.Join(args, " ")

	done := make(chan []models.Recipe, 1)
	a.recipes.Search(ctx, text, func(recipes []models.Recipe) { done <- recipes })

	for _, r := range <-done {
		printRecipeLine(r)
	}
	return nil
}

// MyRecipes prints the recipes authored by the current account.
func (a *App) MyRecipes(ctx context.Context) error {
	recipes, err := a.client.MyRecipes(ctx)
	if err != nil {
		printlnFn("Could not load your recipes:", err.Error())
		return err
	}
	for _, r := range recipes {
		printRecipeLine(r)
	}
	return nil
}

// Favorites prints the favorited recipes.
func (a *App) Favorites(ctx context.Context) error {
	recipes, err := a.client.FavoriteRecipes(ctx)
	if err != nil {
		printlnFn("Could not load favorites:", err.Error())
		return err
	}
	for _, r := range recipes {
		printRecipeLine(r)
	}
	return nil
}

// Show prints one recipe in full.
func (a *App) Show(ctx context.Context, args []string) error {
	id, ok := parseID(args, "show <id>")
	if !ok {
		return nil
	}

	detail := a.recipes.OpenDetail(ctx, id)
	r := detail.Recipe()
	if r == nil {
		printlnFn("Recipe not found.")
		return nil
	}

	printRecipeLine(*r)
	if r.Category != nil {
		printlnFn("Category:", r.Category.Name)
	}
	printlnFn(fmt.Sprintf("Prep %d min, cook %d min, serves %d, difficulty %d",
		r.PrepTime, r.CookTime, r.Servings, r.Difficulty))
	if r.Description != "" {
		printlnFn(r.Description)
	}
	if len(r.Ingredients) > 0 {
		printlnFn("Ingredients:")
		for _, ing := range r.Ingredients {
			printlnFn(fmt.Sprintf("  - %s %s %s", ing.Quantity, ing.Unit, ing.Name))
		}
	}
	if r.Instructions != "" {
		printlnFn(r.Instructions)
	}
	if detail.CanEdit(a.session.CurrentUser()) {
		printlnFn("(you can editrecipe/delrecipe this one)")
	}
	return nil
}

// Favorite marks a recipe as favorite and reports the reconciled state.
func (a *App) Favorite(ctx context.Context, args []string) error {
	return a.setFavorite(ctx, args, true, "favorite <id>")
}

// Unfavorite removes the favorite mark.
func (a *App) Unfavorite(ctx context.Context, args []string) error {
	return a.setFavorite(ctx, args, false, "unfavorite <id>")
}

func (a *App) setFavorite(ctx context.Context, args []string, want bool, usage string) error {
	id, ok := parseID(args, usage)
	if !ok {
		return nil
	}

	detail := a.recipes.OpenDetail(ctx, id)
	r := detail.Recipe()
	if r == nil {
		printlnFn("Recipe not found.")
		return nil
	}
	if r.IsFavorited == want {
		printlnFn("Nothing to do.")
		return nil
	}

	if err := detail.ToggleFavorite(ctx); err != nil {
		printlnFn("Could not update favorite:", err.Error())
		return err
	}
	if r := detail.Recipe(); r != nil {
		printRecipeLine(*r)
	}
	return nil
}

// EditRecipe prompts for the editable fields of an owned recipe and submits
// the update. Empty answers keep the current values.
func (a *App) EditRecipe(ctx context.Context, args []string) error {
	id, ok := parseID(args, "editrecipe <id>")
	if !ok {
		return nil
	}

	detail := a.recipes.OpenDetail(ctx, id)
	r := detail.Recipe()
	if r == nil {
		printlnFn("Recipe not found.")
		return nil
	}
	if !detail.CanEdit(a.session.CurrentUser()) {
		printlnFn("Only the author can edit this recipe.")
		return nil
	}

	title, err := getSimpleText(a.reader, fmt.Sprintf("Title [%s]", r.Title), os.Stdout)
	if err != nil {
		return err
	}
	if title == "" {
		title = r.Title
	}

	description, err := GetMultiline(a.reader, "Description:", os.Stdout)
	if err != nil {
		return err
	}
	if description == "" {
		description = r.Description
	}

	update := models.RecipeUpdate{
		Title:        title,
		Description:  description,
		PrepTime:     r.PrepTime,
		CookTime:     r.CookTime,
		Servings:     r.Servings,
		Difficulty:   r.Difficulty,
		Instructions: r.Instructions,
		Tags:         r.Tags,
	}
	if r.Category != nil {
		update.CategoryID = &r.Category.ID
	}

	if err := detail.Update(ctx, update); err != nil {
		printlnFn("Could not update recipe:", err.Error())
		return err
	}
	printlnFn("Updated.")
	return nil
}

// DelRecipe deletes an owned recipe.
func (a *App) DelRecipe(ctx context.Context, args []string) error {
	id, ok := parseID(args, "delrecipe <id>")
	if !ok {
		return nil
	}

	detail := a.recipes.OpenDetail(ctx, id)
	if detail.Recipe() == nil {
		printlnFn("Recipe not found.")
		return nil
	}
	if !detail.CanEdit(a.session.CurrentUser()) {
		printlnFn("Only the author can delete this recipe.")
		return nil
	}

	if err := detail.Delete(ctx); err != nil {
		printlnFn("Could not delete recipe:", err.Error())
		return err
	}
	printlnFn("Deleted.")
	return nil
}
