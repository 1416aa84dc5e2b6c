// Package models defines the data transfer objects exchanged with the
// recipe service. Recipes are server-owned; the client holds ephemeral
// cached copies only.
package models

// Recipe mirrors one server-side recipe record.
type Recipe struct {
	ID          int64    `json:"id"`
	Title       string   `json:"title"`
	Cuisine     string   `json:"cuisine"`
	Ingredients []string `json:"ingredients"`
	Steps       string   `json:"steps"`
	Tags        *string  `json:"tags"`
	Image       string   `json:"image"`
	IsFavorite  bool     `json:"is_favorite"`
}

// RecipeInput is the payload for create and update calls. Tags stays nil
// when the author provided none.
type RecipeInput struct {
	Title       string   `json:"title"`
	Cuisine     string   `json:"cuisine"`
	Ingredients []string `json:"ingredients"`
	Steps       string   `json:"steps"`
	Tags        *string  `json:"tags"`
}

// RecipeFilter narrows list queries. Zero values mean "no filter".
type RecipeFilter struct {
	Cuisine     string
	Ingredients string
	Tags        string
	Page        int
	PageSize    int
}
