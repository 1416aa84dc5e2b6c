package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/plateful/plateful/internal/client/models"
)

var errBadArgs = errors.New("bad arguments")

// parseID extracts the single numeric recipe id argument of a command.
// Usage errors are reported to the user here.
func parseID(cmd string, args []string) (int64, error) {
	if len(args) != 1 {
		printlnFn(fmt.Sprintf("Usage: %s <id>", cmd))
		return 0, errBadArgs
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || id <= 0 {
		printlnFn(fmt.Sprintf("Not a recipe id: %s", args[0]))
		return 0, errBadArgs
	}
	return id, nil
}

// parseFilter reads optional key=value arguments of the browse command.
// Unknown keys are rejected with a usage hint.
func parseFilter(args []string) (models.RecipeFilter, error) {
	var filter models.RecipeFilter
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok {
			printlnFn(fmt.Sprintf("Usage: browse [cuisine=..] [ingredients=..] [tags=..], got %q", arg))
			return filter, errBadArgs
		}
		switch key {
		case "cuisine":
			filter.Cuisine = value
		case "ingredients":
			filter.Ingredients = value
		case "tags":
			filter.Tags = value
		default:
			printlnFn(fmt.Sprintf("Unknown filter: %s", key))
			return filter, errBadArgs
		}
	}
	return filter, nil
}

func printSummary(recipes []models.Recipe) {
	for _, r := range recipes {
		marker := " "
		if r.IsFavorite {
			marker = "*"
		}
		printlnFn(fmt.Sprintf("%s %4d  %-30s %s", marker, r.ID, r.Title, r.Cuisine))
	}
}

func printDetail(r *models.Recipe) {
	printlnFn(fmt.Sprintf("#%d %s", r.ID, r.Title))
	printlnFn("Cuisine: " + r.Cuisine)
	if len(r.Ingredients) > 0 {
		printlnFn("Ingredients: " + strings.Join(r.Ingredients, ", "))
	}
	if r.Tags != nil && *r.Tags != "" {
		printlnFn("Tags: " + *r.Tags)
	}
	if r.Steps != "" {
		printlnFn("Steps:")
		printlnFn(r.Steps)
	}
	if r.Image != "" {
		printlnFn("Image: " + r.Image)
	}
	if r.IsFavorite {
		printlnFn("In your favorites.")
	}
}

// Browse lists recipes, optionally narrowed by cuisine, ingredients and
// tags filters given as key=value arguments.
func (a *App) Browse(ctx context.Context, args []string) error {
	if !a.navigate("/browse") {
		return nil
	}
	filter, err := parseFilter(args)
	if err != nil {
		return err
	}

	a.recipes.FetchList(ctx, filter)

	if st := a.recipes.BrowseState(); st.Error != "" {
		printlnFn(st.Error)
		return nil
	}
	list := a.recipes.Browse()
	if len(list) == 0 {
		printlnFn("No recipes found.")
		return nil
	}
	printSummary(list)
	return nil
}

// Show fetches and prints one recipe in full.
func (a *App) Show(ctx context.Context, args []string) error {
	id, err := parseID("show", args)
	if err != nil {
		return err
	}
	if !a.navigate(fmt.Sprintf("/recipes/%d", id)) {
		return nil
	}

	a.recipes.FetchByID(ctx, id)

	if st := a.recipes.DetailState(); st.Error != "" {
		printlnFn(st.Error)
		return nil
	}
	if r := a.recipes.Current(); r != nil {
		printDetail(r)
	}
	return nil
}

// Trending prints a small rotating selection of recipes. Failures are
// silent here just as they are in the store; the section simply stays
// empty.
func (a *App) Trending(ctx context.Context) error {
	a.recipes.FetchTrending(ctx)

	list := a.recipes.Trending()
	if len(list) == 0 {
		printlnFn("No trending recipes right now.")
		return nil
	}
	printSummary(list)
	return nil
}

// promptInput collects the recipe fields interactively. Existing values
// are offered as defaults when editing; an empty answer keeps them.
func (a *App) promptInput(prior *models.Recipe) (models.RecipeInput, error) {
	var input models.RecipeInput
	if prior != nil {
		input = models.RecipeInput{
			Title:       prior.Title,
			Cuisine:     prior.Cuisine,
			Ingredients: prior.Ingredients,
			Steps:       prior.Steps,
			Tags:        prior.Tags,
		}
	}

	title, err := getSimpleText(a.reader, withDefault("Title", input.Title), os.Stdout)
	if err != nil {
		return input, err
	}
	if title != "" {
		input.Title = title
	}

	cuisine, err := getSimpleText(a.reader, withDefault("Cuisine", input.Cuisine), os.Stdout)
	if err != nil {
		return input, err
	}
	if cuisine != "" {
		input.Cuisine = cuisine
	}

	ingredients, err := getSimpleText(a.reader, withDefault("Ingredients (comma separated)", strings.Join(input.Ingredients, ", ")), os.Stdout)
	if err != nil {
		return input, err
	}
	if ingredients != "" {
		input.Ingredients = splitList(ingredients)
	}

	steps, err := GetMultiline(a.reader, "Steps", os.Stdout)
	if err != nil {
		return input, err
	}
	if steps != "" {
		input.Steps = steps
	}

	current := ""
	if input.Tags != nil {
		current = *input.Tags
	}
	tags, err := getSimpleText(a.reader, withDefault("Tags (optional)", current), os.Stdout)
	if err != nil {
		return input, err
	}
	if tags != "" {
		input.Tags = &tags
	}

	return input, nil
}

func withDefault(prompt, current string) string {
	if current == "" {
		return prompt
	}
	return fmt.Sprintf("%s [%s]", prompt, current)
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// Create collects a new recipe interactively and submits it.
func (a *App) Create(ctx context.Context) error {
	if !a.navigate("/create-recipe") {
		return nil
	}

	input, err := a.promptInput(nil)
	if err != nil {
		return err
	}

	recipe, err := a.recipes.Create(ctx, input)
	if err != nil {
		printlnFn(a.recipes.BrowseState().Error)
		return nil
	}

	printlnFn(fmt.Sprintf("Created recipe #%d.", recipe.ID))
	return nil
}

// Edit loads a recipe, offers its fields as defaults and submits the
// changed version.
func (a *App) Edit(ctx context.Context, args []string) error {
	id, err := parseID("edit", args)
	if err != nil {
		return err
	}
	if !a.navigate(fmt.Sprintf("/recipes/%d/edit", id)) {
		return nil
	}

	a.recipes.FetchByID(ctx, id)
	if st := a.recipes.DetailState(); st.Error != "" {
		printlnFn(st.Error)
		return nil
	}

	input, err := a.promptInput(a.recipes.Current())
	if err != nil {
		return err
	}

	if _, err := a.recipes.Update(ctx, id, input); err != nil {
		printlnFn(a.recipes.BrowseState().Error)
		return nil
	}

	printlnFn("Saved.")
	return nil
}

// Delete removes a recipe.
func (a *App) Delete(ctx context.Context, args []string) error {
	id, err := parseID("delete", args)
	if err != nil {
		return err
	}
	if !a.navigate("/my-recipes") {
		return nil
	}

	if err := a.recipes.Delete(ctx, id); err != nil {
		printlnFn(a.recipes.BrowseState().Error)
		return nil
	}

	printlnFn("Deleted.")
	return nil
}

// Favorite adds a recipe to the favorites or removes it, depending on
// the direction.
func (a *App) Favorite(ctx context.Context, args []string, favorite bool) error {
	cmd := "fav"
	if !favorite {
		cmd = "unfav"
	}
	id, err := parseID(cmd, args)
	if err != nil {
		return err
	}
	if !a.navigate("/my-recipes") {
		return nil
	}

	if err := a.recipes.SetFavorite(ctx, id, favorite); err != nil {
		printlnFn(a.recipes.FavoritesState().Error)
		return nil
	}

	if favorite {
		printlnFn("Added to favorites.")
	} else {
		printlnFn("Removed from favorites.")
	}
	return nil
}

// Favorites lists the favorite recipes of the current account.
func (a *App) Favorites(ctx context.Context) error {
	if !a.navigate("/my-recipes") {
		return nil
	}

	a.recipes.FetchFavorites(ctx)

	if st := a.recipes.FavoritesState(); st.Error != "" {
		printlnFn(st.Error)
		return nil
	}
	list := a.recipes.Favorites()
	if len(list) == 0 {
		printlnFn("No favorites yet.")
		return nil
	}
	printSummary(list)
	return nil
}
