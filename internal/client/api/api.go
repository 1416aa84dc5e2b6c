// Package api contains the client for the remote recipe service. The
// concrete implementation speaks JSON over HTTP and owns the bearer token
// attached to authenticated requests.
package api

import (
	"context"

	"github.com/plateful/plateful/internal/client/models"
)

// Client is the remote recipe service as seen from this application.
//
// Implementations hold the current bearer token; SetToken/ClearToken arm
// and disarm the Authorization header for all subsequent calls.
type Client interface {
	Login(ctx context.Context, email, password string) (*models.LoginResult, error)
	Register(ctx context.Context, email, password string) (*models.User, error)
	Logout(ctx context.Context) error
	CurrentUser(ctx context.Context) (*models.User, error)

	ListRecipes(ctx context.Context, filter models.RecipeFilter) ([]models.Recipe, error)
	GetRecipe(ctx context.Context, id int64) (*models.Recipe, error)
	CreateRecipe(ctx context.Context, input models.RecipeInput) (*models.Recipe, error)
	UpdateRecipe(ctx context.Context, id int64, input models.RecipeInput) (*models.Recipe, error)
	DeleteRecipe(ctx context.Context, id int64) error

	AddFavorite(ctx context.Context, id int64) error
	RemoveFavorite(ctx context.Context, id int64) error
	ListFavorites(ctx context.Context) ([]models.Recipe, error)

	SetToken(token string)
	ClearToken()
	Close() error
}
