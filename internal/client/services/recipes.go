package services

import (
	"context"
	"net/http"

	"github.com/plateful/plateful/internal/client/api"
	"github.com/plateful/plateful/internal/client/images"
	"github.com/plateful/plateful/internal/client/models"
	"github.com/plateful/plateful/internal/logging"
)

// User-facing error strings for recipe operations.
const (
	msgListFailed      = "Failed to load recipes. Please try again."
	msgDetailFailed    = "Recipe not found or unable to load."
	msgCreateFailed    = "Failed to create recipe. Please check your inputs and try again."
	msgUpdateNotFound  = "Recipe not found"
	msgUpdateInvalid   = "Invalid recipe data"
	msgUpdateFailed    = "Failed to update recipe"
	msgDeleteFailed    = "Failed to delete recipe."
	msgFavAddFailed    = "Failed to add to favorites"
	msgFavRemoveFailed = "Failed to remove from favorites"
	msgFavoritesFailed = "Failed to load favorite recipes."
)

// State reports a collection's user-visible bookkeeping.
type State struct {
	Loading bool
	Error   string
}

// collection tracks per-collection bookkeeping: the in-flight flag, the
// user-visible error, and a generation counter used to discard responses
// that lost the race against a newer operation on the same collection.
type collection struct {
	loading bool
	err     string
	gen     uint64
}

// begin starts a new operation: bumps the generation, raises loading and
// clears the previous error. Returns the generation owning this operation.
func (c *collection) begin() uint64 {
	c.gen++
	c.loading = true
	c.err = ""
	return c.gen
}

// current reports whether gen still owns the collection.
func (c *collection) current(gen uint64) bool { return c.gen == gen }

// finish lowers the loading flag unless a newer operation owns it now.
func (c *collection) finish(gen uint64) {
	if c.gen == gen {
		c.loading = false
	}
}

func (c *collection) state() State { return State{Loading: c.loading, Error: c.err} }

// RecipeStore mirrors the server's recipe collections — browse list,
// single detail, trending subset, favorites — with loading/error
// bookkeeping per collection. Write operations patch the cached copies
// from the response instead of re-fetching.
type RecipeStore struct {
	client api.Client
	images *images.Resolver
	logger logging.Logger

	browse      []models.Recipe
	current     *models.Recipe
	trending    []models.Recipe
	favorites   []models.Recipe
	favoriteIDs map[int64]struct{}

	browseState    collection
	detailState    collection
	trendingState  collection
	favoritesState collection

	listeners []func()
}

func NewRecipeStore(client api.Client, resolver *images.Resolver, logger logging.Logger) *RecipeStore {
	return &RecipeStore{
		client:      client,
		images:      resolver,
		logger:      logger.With("component", "recipes"),
		favoriteIDs: map[int64]struct{}{},
	}
}

// Subscribe registers fn to run after every store state change.
func (s *RecipeStore) Subscribe(fn func()) {
	s.listeners = append(s.listeners, fn)
}

func (s *RecipeStore) notify() {
	for _, fn := range s.listeners {
		fn()
	}
}

func (s *RecipeStore) Browse() []models.Recipe    { return s.browse }
func (s *RecipeStore) Current() *models.Recipe    { return s.current }
func (s *RecipeStore) Trending() []models.Recipe  { return s.trending }
func (s *RecipeStore) Favorites() []models.Recipe { return s.favorites }

func (s *RecipeStore) BrowseState() State    { return s.browseState.state() }
func (s *RecipeStore) DetailState() State    { return s.detailState.state() }
func (s *RecipeStore) FavoritesState() State { return s.favoritesState.state() }

// FetchList replaces the browse collection from the server. Filters pass
// through as given; zero values mean no filter. Read failures keep the
// stale list and surface a message instead of returning an error.
func (s *RecipeStore) FetchList(ctx context.Context, filter models.RecipeFilter) {
	gen := s.browseState.begin()
	s.notify()
	defer func() { s.browseState.finish(gen); s.notify() }()

	recipes, err := s.client.ListRecipes(ctx, filter)
	if !s.browseState.current(gen) {
		return // a newer operation owns the collection now
	}
	if err != nil {
		s.logger.Error(ctx, "fetching recipes failed", "error", err)
		s.browseState.err = msgListFailed
		return
	}

	for i := range recipes {
		if recipes[i].Image == "" {
			recipes[i].Image = s.images.ForID(ctx, recipes[i].ID)
		}
	}
	s.browse = recipes
}

// FetchTrending loads the first page of three recipes for the home view.
// Trending is decorative: failures are logged and swallowed with no
// user-visible error, and image backfill is random rather than stable.
func (s *RecipeStore) FetchTrending(ctx context.Context) {
	gen := s.trendingState.begin()
	defer func() { s.trendingState.finish(gen); s.notify() }()

	recipes, err := s.client.ListRecipes(ctx, models.RecipeFilter{Page: 1, PageSize: 3})
	if !s.trendingState.current(gen) {
		return
	}
	if err != nil {
		s.logger.Warn(ctx, "fetching trending recipes failed", "error", err)
		return
	}

	for i := range recipes {
		if recipes[i].Image == "" {
			recipes[i].Image = s.images.Random()
		}
	}
	s.trending = recipes
}

// FetchByID replaces the detail view wholesale. Read failures keep the
// stale detail and surface a message.
func (s *RecipeStore) FetchByID(ctx context.Context, id int64) {
	gen := s.detailState.begin()
	s.notify()
	defer func() { s.detailState.finish(gen); s.notify() }()

	recipe, err := s.client.GetRecipe(ctx, id)
	if !s.detailState.current(gen) {
		return
	}
	if err != nil {
		s.logger.Error(ctx, "fetching recipe failed", "id", id, "error", err)
		s.detailState.err = msgDetailFailed
		return
	}

	if recipe.Image == "" {
		recipe.Image = s.images.ForID(ctx, recipe.ID)
	}
	s.current = recipe
}

// Create submits a new recipe. Cuisine defaults to "Other" when absent.
// On success the server's copy lands at the front of the browse list and
// is returned. The error is returned as well as recorded so the calling
// form can stay open.
func (s *RecipeStore) Create(ctx context.Context, input models.RecipeInput) (*models.Recipe, error) {
	gen := s.browseState.begin()
	s.notify()
	defer func() { s.browseState.finish(gen); s.notify() }()

	if input.Cuisine == "" {
		input.Cuisine = "Other"
	}

	recipe, err := s.client.CreateRecipe(ctx, input)
	if err != nil {
		s.logger.Error(ctx, "creating recipe failed", "error", err)
		s.browseState.err = msgCreateFailed
		return nil, err
	}

	s.browse = append([]models.Recipe{*recipe}, s.browse...)
	return recipe, nil
}

// Update submits changes and patches the cached copies in place by id —
// the matching browse entry and, when it shows the same recipe, the
// detail view. No re-fetch. The user message depends on the response
// status: 404 and 422 are distinguishable, everything else is generic.
func (s *RecipeStore) Update(ctx context.Context, id int64, input models.RecipeInput) (*models.Recipe, error) {
	gen := s.browseState.begin()
	s.notify()
	defer func() { s.browseState.finish(gen); s.notify() }()

	recipe, err := s.client.UpdateRecipe(ctx, id, input)
	if err != nil {
		s.logger.Error(ctx, "updating recipe failed", "id", id, "error", err)
		s.browseState.err = updateErrorMessage(err)
		return nil, err
	}

	for i := range s.browse {
		if s.browse[i].ID == id {
			s.browse[i] = *recipe
			break
		}
	}
	if s.current != nil && s.current.ID == id {
		s.current = recipe
	}
	return recipe, nil
}

func updateErrorMessage(err error) string {
	switch {
	case api.IsStatus(err, http.StatusNotFound):
		return msgUpdateNotFound
	case api.IsStatus(err, http.StatusUnprocessableEntity):
		return msgUpdateInvalid
	default:
		return msgUpdateFailed
	}
}

// Delete removes the recipe remotely and filters it out of the browse
// list on success.
func (s *RecipeStore) Delete(ctx context.Context, id int64) error {
	gen := s.browseState.begin()
	s.notify()
	defer func() { s.browseState.finish(gen); s.notify() }()

	if err := s.client.DeleteRecipe(ctx, id); err != nil {
		s.logger.Error(ctx, "deleting recipe failed", "id", id, "error", err)
		s.browseState.err = msgDeleteFailed
		return err
	}

	kept := s.browse[:0]
	for _, r := range s.browse {
		if r.ID != id {
			kept = append(kept, r)
		}
	}
	s.browse = kept
	return nil
}

// SetFavorite marks or unmarks a recipe as a favorite. On success both the
// id set and the cached favorites list are patched so the two views cannot
// disagree about membership. The error message matches the direction
// attempted.
func (s *RecipeStore) SetFavorite(ctx context.Context, id int64, favorite bool) error {
	gen := s.favoritesState.begin()
	s.notify()
	defer func() { s.favoritesState.finish(gen); s.notify() }()

	var err error
	if favorite {
		err = s.client.AddFavorite(ctx, id)
	} else {
		err = s.client.RemoveFavorite(ctx, id)
	}
	if err != nil {
		s.logger.Error(ctx, "changing favorite failed", "id", id, "favorite", favorite, "error", err)
		if favorite {
			s.favoritesState.err = msgFavAddFailed
		} else {
			s.favoritesState.err = msgFavRemoveFailed
		}
		return err
	}

	if favorite {
		s.favoriteIDs[id] = struct{}{}
		if r := s.lookup(id); r != nil && !s.inFavorites(id) {
			fav := *r
			fav.IsFavorite = true
			s.favorites = append(s.favorites, fav)
		}
	} else {
		delete(s.favoriteIDs, id)
		kept := s.favorites[:0]
		for _, r := range s.favorites {
			if r.ID != id {
				kept = append(kept, r)
			}
		}
		s.favorites = kept
	}
	return nil
}

// FetchFavorites replaces the favorites collection wholesale and rebuilds
// the id set from it. Entries are tagged as favorites and missing images
// backfilled randomly. Read failures keep stale data and surface a
// message only.
func (s *RecipeStore) FetchFavorites(ctx context.Context) {
	gen := s.favoritesState.begin()
	s.notify()
	defer func() { s.favoritesState.finish(gen); s.notify() }()

	recipes, err := s.client.ListFavorites(ctx)
	if !s.favoritesState.current(gen) {
		return
	}
	if err != nil {
		s.logger.Error(ctx, "fetching favorites failed", "error", err)
		s.favoritesState.err = msgFavoritesFailed
		return
	}

	ids := make(map[int64]struct{}, len(recipes))
	for i := range recipes {
		recipes[i].IsFavorite = true
		if recipes[i].Image == "" {
			recipes[i].Image = s.images.Random()
		}
		ids[recipes[i].ID] = struct{}{}
	}
	s.favorites = recipes
	s.favoriteIDs = ids
}

// IsFavorite is a pure membership test against the cached id set; it never
// touches the network.
func (s *RecipeStore) IsFavorite(id int64) bool {
	_, ok := s.favoriteIDs[id]
	return ok
}

// lookup finds a cached copy of id in the detail or browse collections.
func (s *RecipeStore) lookup(id int64) *models.Recipe {
	if s.current != nil && s.current.ID == id {
		return s.current
	}
	for i := range s.browse {
		if s.browse[i].ID == id {
			return &s.browse[i]
		}
	}
	return nil
}

func (s *RecipeStore) inFavorites(id int64) bool {
	for _, r := range s.favorites {
		if r.ID == id {
			return true
		}
	}
	return false
}
