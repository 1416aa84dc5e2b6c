package services

import (
	"context"
	"io"
	"log/slog"

	"github.com/plateful/plateful/internal/client/images"
	"github.com/plateful/plateful/internal/client/models"
	"github.com/plateful/plateful/internal/logging"
)

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func testResolver() *images.Resolver {
	return images.NewResolver(testLogger())
}

func int64Ptr(v int64) *int64 { return &v }

// fakeClient implements api.Client for unit tests. Results/errors are
// configured per call; ListRecipesFn can override list behavior entirely
// (used to provoke overlapping fetches).
type fakeClient struct {
	LoginRet *models.LoginResult
	LoginErr error

	RegisterRet *models.User
	RegisterErr error

	LogoutErr error

	CurrentUserRet *models.User
	CurrentUserErr error

	ListRet []models.Recipe
	ListErr error

	ListRecipesFn func(ctx context.Context, filter models.RecipeFilter) ([]models.Recipe, error)

	GetRet *models.Recipe
	GetErr error

	CreateRet *models.Recipe
	CreateErr error

	UpdateRet *models.Recipe
	UpdateErr error

	DeleteErr    error
	AddFavErr    error
	RemoveFavErr error

	FavoritesRet []models.Recipe
	FavoritesErr error

	// Recorded state for assertions.
	Token        string
	TokenCleared bool

	LoginCalls      int
	LogoutCalls     int
	ListCalls       int
	AddFavCalls     int
	RemoveFavCalls  int
	LastListFilter  models.RecipeFilter
	LastCreateInput models.RecipeInput
	LastUpdateID    int64
	LastUpdateInput models.RecipeInput
	LastDeleteID    int64
	LastFavoriteID  int64
}

func (f *fakeClient) Login(ctx context.Context, email, password string) (*models.LoginResult, error) {
	f.LoginCalls++
	if f.LoginErr != nil {
		return nil, f.LoginErr
	}
	return f.LoginRet, nil
}

func (f *fakeClient) Register(ctx context.Context, email, password string) (*models.User, error) {
	if f.RegisterErr != nil {
		return nil, f.RegisterErr
	}
	return f.RegisterRet, nil
}

func (f *fakeClient) Logout(ctx context.Context) error {
	f.LogoutCalls++
	return f.LogoutErr
}

func (f *fakeClient) CurrentUser(ctx context.Context) (*models.User, error) {
	if f.CurrentUserErr != nil {
		return nil, f.CurrentUserErr
	}
	return f.CurrentUserRet, nil
}

func (f *fakeClient) ListRecipes(ctx context.Context, filter models.RecipeFilter) ([]models.Recipe, error) {
	f.ListCalls++
	f.LastListFilter = filter
	if f.ListRecipesFn != nil {
		return f.ListRecipesFn(ctx, filter)
	}
	if f.ListErr != nil {
		return nil, f.ListErr
	}
	return append([]models.Recipe(nil), f.ListRet...), nil
}

func (f *fakeClient) GetRecipe(ctx context.Context, id int64) (*models.Recipe, error) {
	if f.GetErr != nil {
		return nil, f.GetErr
	}
	return f.GetRet, nil
}

func (f *fakeClient) CreateRecipe(ctx context.Context, input models.RecipeInput) (*models.Recipe, error) {
	f.LastCreateInput = input
	if f.CreateErr != nil {
		return nil, f.CreateErr
	}
	return f.CreateRet, nil
}

func (f *fakeClient) UpdateRecipe(ctx context.Context, id int64, input models.RecipeInput) (*models.Recipe, error) {
	f.LastUpdateID = id
	f.LastUpdateInput = input
	if f.UpdateErr != nil {
		return nil, f.UpdateErr
	}
	return f.UpdateRet, nil
}

func (f *fakeClient) DeleteRecipe(ctx context.Context, id int64) error {
	f.LastDeleteID = id
	return f.DeleteErr
}

func (f *fakeClient) AddFavorite(ctx context.Context, id int64) error {
	f.AddFavCalls++
	f.LastFavoriteID = id
	return f.AddFavErr
}

func (f *fakeClient) RemoveFavorite(ctx context.Context, id int64) error {
	f.RemoveFavCalls++
	f.LastFavoriteID = id
	return f.RemoveFavErr
}

func (f *fakeClient) ListFavorites(ctx context.Context) ([]models.Recipe, error) {
	if f.FavoritesErr != nil {
		return nil, f.FavoritesErr
	}
	return append([]models.Recipe(nil), f.FavoritesRet...), nil
}

func (f *fakeClient) SetToken(token string) {
	f.Token = token
	f.TokenCleared = false
}

func (f *fakeClient) ClearToken() {
	f.Token = ""
	f.TokenCleared = true
}

func (f *fakeClient) Close() error { return nil }
