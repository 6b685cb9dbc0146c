package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool

	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Whoami(ctx context.Context) error
	Callback(ctx context.Context, args []string) error
	Forgot(ctx context.Context) error
	Reset(ctx context.Context) error
	Profile(ctx context.Context) error
	UpdateProfile(ctx context.Context) error

	Stats(ctx context.Context) error
	Recipes(ctx context.Context, args []string) error
	Search(ctx context.Context, args []string) error
	MyRecipes(ctx context.Context) error
	Favorites(ctx context.Context) error
	Show(ctx context.Context, args []string) error
	Favorite(ctx context.Context, args []string) error
	Unfavorite(ctx context.Context, args []string) error
	EditRecipe(ctx context.Context, args []string) error
	DelRecipe(ctx context.Context, args []string) error

	Lists(ctx context.Context) error
	List(ctx context.Context, args []string) error
	NewList(ctx context.Context) error
	DelList(ctx context.Context, args []string) error
	AddItem(ctx context.Context, args []string) error
	Toggle(ctx context.Context, args []string) error
	DelItem(ctx context.Context, args []string) error
	FromRecipe(ctx context.Context, args []string) error
}

// runREPL starts a simple read–eval–print loop for the recipe CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Anonymous:
//	  - help                       — show available commands
//	  - register                   — create an account
//	  - login                      — authenticate
//	  - callback <url>             — complete a social login redirect
//	  - forgot                     — request a password reset email
//	  - reset                      — confirm a password reset
//	  - recipes [query] / search / show — browse without an account
//	  - exit | quit                — leave the program
//
//	Logged in, additionally:
//	  - whoami / profile / update  — account info and edits
//	  - stats                      — dashboard figures
//	  - my / favorites             — personal recipe collections
//	  - favorite | unfavorite <id> — toggle the favorite mark
//	  - editrecipe | delrecipe <id>
//	  - lists / list <id> / newlist / dellist <id>
//	  - additem <list> / toggle <list> <item> / delitem <item>
//	  - fromrecipe <list> <recipe>
//	  - logout
//
// Any errors returned by command handlers are ignored here; handlers report
// their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("recettes %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: whoami, profile, update, stats, recipes, search, my, favorites, show, favorite, unfavorite, editrecipe, delrecipe, lists, list, newlist, dellist, additem, toggle, delitem, fromrecipe, logout, exit")
			} else {
				printlnFn("Available commands: register, login, callback, forgot, reset, recipes, search, show, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "whoami":
			_ = a.Whoami(ctx)

		case "callback":
			_ = a.Callback(ctx, args)

		case "forgot":
			_ = a.Forgot(ctx)

		case "reset":
			_ = a.Reset(ctx)

		case "profile":
			_ = a.Profile(ctx)

		case "update":
			_ = a.UpdateProfile(ctx)

		case "stats":
			_ = a.Stats(ctx)

		case "recipes":
			_ = a.Recipes(ctx, args)

		case "search":
			_ = a.Search(ctx, args)

		case "my":
			_ = a.MyRecipes(ctx)

		case "favorites":
			_ = a.Favorites(ctx)

		case "show":
			_ = a.Show(ctx, args)

		case "favorite":
			_ = a.Favorite(ctx, args)

		case "unfavorite":
			_ = a.Unfavorite(ctx, args)

		case "editrecipe":
			_ = a.EditRecipe(ctx, args)

		case "delrecipe":
			_ = a.DelRecipe(ctx, args)

		case "lists":
			_ = a.Lists(ctx)

		case "list":
			_ = a.List(ctx, args)

		case "newlist":
			_ = a.NewList(ctx)

		case "dellist":
			_ = a.DelList(ctx, args)

		case "additem":
			_ = a.AddItem(ctx, args)

		case "toggle":
			_ = a.Toggle(ctx, args)

		case "delitem":
			_ = a.DelItem(ctx, args)

		case "fromrecipe":
			_ = a.FromRecipe(ctx, args)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
