package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/Yvancedric/partage-recettes-optimisation/internal/client/models"
)

func parseTwoIDs(args []string, usage string) (int64, int64, bool) {
	if len(args) < 2 {
		printlnFn("Usage:", usage)
		return 0, 0, false
	}
	first, err1 := strconv.ParseInt(args[0], 10, 64)
	second, err2 := strconv.ParseInt(args[1], 10, 64)
	if err1 != nil || err2 != nil {
		printlnFn("Usage:", usage)
		return 0, 0, false
	}
	return first, second, true
}

// Lists prints the shopping lists with their check progress.
func (a *App) Lists(ctx context.Context) error {
	screen := a.shopping.OpenLists(ctx)
	for _, l := range screen.Lists() {
		checked, total := l.Progress()
		printlnFn(fmt.Sprintf("%4d  %s (%d/%d)", l.ID, l.Name, checked, total))
	}
	return nil
}

// List prints one shopping list with its items.
func (a *App) List(ctx context.Context, args []string) error {
	id, ok := parseID(args, "list <id>")
	if !ok {
		return nil
	}

	screen := a.shopping.OpenList(ctx, id)
	l := screen.List()
	if l == nil {
		printlnFn("List not found.")
		return nil
	}

	checked, total := l.Progress()
	printlnFn(fmt.Sprintf("%s (%d/%d)", l.Name, checked, total))
	for _, item := range l.Items {
		mark := "[ ]"
		if item.IsChecked {
			mark = "[x]"
		}
		printlnFn(fmt.Sprintf("  %s %4d  %s %s %s", mark, item.ID, item.Quantity, item.Unit, item.IngredientName))
	}
	return nil
}

// NewList prompts for a name and creates a shopping list.
func (a *App) NewList(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter list name", os.Stdout)
	if err != nil {
		return err
	}

	screen := a.shopping.OpenLists(ctx)
	if err := screen.Create(ctx, name); err != nil {
		printlnFn("Could not create list:", err.Error())
		return err
	}
	printlnFn("Created.")
	return nil
}

// DelList deletes a shopping list.
func (a *App) DelList(ctx context.Context, args []string) error {
	id, ok := parseID(args, "dellist <id>")
	if !ok {
		return nil
	}

	screen := a.shopping.OpenLists(ctx)
	if err := screen.Delete(ctx, id); err != nil {
		printlnFn("Could not delete list:", err.Error())
		return err
	}
	printlnFn("Deleted.")
	return nil
}

// AddItem prompts for the item fields and appends it to a list.
func (a *App) AddItem(ctx context.Context, args []string) error {
	id, ok := parseID(args, "additem <list>")
	if !ok {
		return nil
	}

	name, err := getSimpleText(a.reader, "Enter ingredient name", os.Stdout)
	if err != nil {
		return err
	}
	quantity, err := getSimpleText(a.reader, "Enter quantity", os.Stdout)
	if err != nil {
		return err
	}
	unit, err := getSimpleText(a.reader, "Enter unit", os.Stdout)
	if err != nil {
		return err
	}

	screen := a.shopping.OpenList(ctx, id)
	if err := screen.AddItem(ctx, models.NewItem{IngredientName: name, Quantity: quantity, Unit: unit}); err != nil {
		printlnFn("Could not add item:", err.Error())
		return err
	}
	printlnFn("Added.")
	return nil
}

// Toggle flips the checked flag of one item and prints the reconciled list.
func (a *App) Toggle(ctx context.Context, args []string) error {
	listID, itemID, ok := parseTwoIDs(args, "toggle <list> <item>")
	if !ok {
		return nil
	}

	screen := a.shopping.OpenList(ctx, listID)
	if err := screen.ToggleItem(ctx, itemID); err != nil {
		printlnFn("Could not toggle item:", err.Error())
		return err
	}
	if l := screen.List(); l != nil {
		checked, total := l.Progress()
		printlnFn(fmt.Sprintf("%s (%d/%d)", l.Name, checked, total))
	}
	return nil
}

// DelItem removes one item from a list.
func (a *App) DelItem(ctx context.Context, args []string) error {
	listID, itemID, ok := parseTwoIDs(args, "delitem <list> <item>")
	if !ok {
		return nil
	}

	screen := a.shopping.OpenList(ctx, listID)
	if err := screen.DeleteItem(ctx, itemID); err != nil {
		printlnFn("Could not delete item:", err.Error())
		return err
	}
	printlnFn("Deleted.")
	return nil
}

// FromRecipe imports a recipe's ingredients into a list.
func (a *App) FromRecipe(ctx context.Context, args []string) error {
	listID, recipeID, ok := parseTwoIDs(args, "fromrecipe <list> <recipe>")
	if !ok {
		return nil
	}

	screen := a.shopping.OpenList(ctx, listID)
	if err := screen.FromRecipe(ctx, recipeID); err != nil {
		printlnFn("Could not import ingredients:", err.Error())
		return err
	}
	if l := screen.List(); l != nil {
		checked, total := l.Progress()
		printlnFn(fmt.Sprintf("%s (%d/%d)", l.Name, checked, total))
	}
	return nil
}
