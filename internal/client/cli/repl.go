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
	Browse(ctx context.Context, args []string) error
	Show(ctx context.Context, args []string) error
	Trending(ctx context.Context) error
	Create(ctx context.Context) error
	Edit(ctx context.Context, args []string) error
	Delete(ctx context.Context, args []string) error
	Favorite(ctx context.Context, args []string, favorite bool) error
	Favorites(ctx context.Context) error
	WhoAmI(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the recipe client.
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
//	Always available:
//	  - help                — show available commands
//	  - browse [filters]    — list recipes, optionally filtered by
//	                          cuisine=.. ingredients=.. tags=..
//	  - show <id>           — show one recipe in full
//	  - trending            — show a few trending recipes
//	  - create              — create a recipe (interactive form)
//	  - exit | quit         — leave the program
//
//	Not logged in:
//	  - register            — create an account
//	  - login               — authenticate
//
//	Logged in:
//	  - edit <id>           — edit a recipe (interactive form)
//	  - delete <id>         — delete a recipe
//	  - fav <id>            — add a recipe to favorites
//	  - unfav <id>          — remove a recipe from favorites
//	  - favorites           — list favorite recipes
//	  - whoami              — show the current account
//	  - logout              — log out
//
// Any errors returned by command handlers are ignored here; handlers report
// their own failures. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("plateful %s> ", statusFn()))
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
			printlnFn("Available commands: browse, show <id>, trending, create, exit")
			if a.isLoggedIn() {
				printlnFn("Account commands: edit <id>, delete <id>, fav <id>, unfav <id>, favorites, whoami, logout")
			} else {
				printlnFn("Account commands: register, login")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "browse":
			_ = a.Browse(ctx, args)

		case "show":
			_ = a.Show(ctx, args)

		case "trending":
			_ = a.Trending(ctx)

		case "create":
			_ = a.Create(ctx)

		case "edit":
			_ = a.Edit(ctx, args)

		case "delete":
			_ = a.Delete(ctx, args)

		case "fav":
			_ = a.Favorite(ctx, args, true)

		case "unfav":
			_ = a.Favorite(ctx, args, false)

		case "favorites":
			_ = a.Favorites(ctx)

		case "whoami":
			_ = a.WhoAmI(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn(fmt.Sprintf("Unknown command: %s (type 'help' for commands)", cmd))
		}
	}
}
