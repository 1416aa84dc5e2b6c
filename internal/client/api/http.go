package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/google/uuid"
	"github.com/plateful/plateful/internal/client/models"
	"github.com/plateful/plateful/internal/logging"
)

// HTTPClient implements Client over the service's REST/JSON contract.
// The zero token means unauthenticated; no Authorization header is sent.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	token   string
	logger  logging.Logger
}

func NewHTTPClient(baseURL string, logger logging.Logger) *HTTPClient {
	return &HTTPClient{
		baseURL: baseURL,
		http:    &http.Client{},
		logger:  logger.With("component", "api"),
	}
}

// SetToken arms the Authorization header for subsequent requests.
func (c *HTTPClient) SetToken(token string) { c.token = token }

// ClearToken disarms the Authorization header.
func (c *HTTPClient) ClearToken() { c.token = "" }

func (c *HTTPClient) Close() error {
	c.http.CloseIdleConnections()
	return nil
}

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (*models.LoginResult, error) {
	var res models.LoginResult
	if err := c.do(ctx, http.MethodPost, "/auth/login", nil, credentials{Email: email, Password: password}, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *HTTPClient) Register(ctx context.Context, email, password string) (*models.User, error) {
	var user models.User
	if err := c.do(ctx, http.MethodPost, "/auth/register", nil, credentials{Email: email, Password: password}, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *HTTPClient) Logout(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/auth/logout", nil, nil, nil)
}

func (c *HTTPClient) CurrentUser(ctx context.Context) (*models.User, error) {
	var user models.User
	if err := c.do(ctx, http.MethodGet, "/auth/me", nil, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *HTTPClient) ListRecipes(ctx context.Context, filter models.RecipeFilter) ([]models.Recipe, error) {
	q := url.Values{}
	if filter.Cuisine != "" {
		q.Set("cuisine", filter.Cuisine)
	}
	if filter.Ingredients != "" {
		q.Set("ingredients", filter.Ingredients)
	}
	if filter.Tags != "" {
		q.Set("tags", filter.Tags)
	}
	if filter.Page > 0 {
		q.Set("page", strconv.Itoa(filter.Page))
	}
	if filter.PageSize > 0 {
		q.Set("page_size", strconv.Itoa(filter.PageSize))
	}

	var recipes []models.Recipe
	if err := c.do(ctx, http.MethodGet, "/recipes", q, nil, &recipes); err != nil {
		return nil, err
	}
	return recipes, nil
}

func (c *HTTPClient) GetRecipe(ctx context.Context, id int64) (*models.Recipe, error) {
	var recipe models.Recipe
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/recipes/%d", id), nil, nil, &recipe); err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (c *HTTPClient) CreateRecipe(ctx context.Context, input models.RecipeInput) (*models.Recipe, error) {
	var recipe models.Recipe
	if err := c.do(ctx, http.MethodPost, "/recipes", nil, input, &recipe); err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (c *HTTPClient) UpdateRecipe(ctx context.Context, id int64, input models.RecipeInput) (*models.Recipe, error) {
	var recipe models.Recipe
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/recipes/%d", id), nil, input, &recipe); err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (c *HTTPClient) DeleteRecipe(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/recipes/%d", id), nil, nil, nil)
}

func (c *HTTPClient) AddFavorite(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/recipes/%d/favorite", id), nil, nil, nil)
}

func (c *HTTPClient) RemoveFavorite(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/recipes/%d/favorite", id), nil, nil, nil)
}

func (c *HTTPClient) ListFavorites(ctx context.Context) ([]models.Recipe, error) {
	var recipes []models.Recipe
	if err := c.do(ctx, http.MethodGet, "/recipes/favorites", nil, nil, &recipes); err != nil {
		return nil, err
	}
	return recipes, nil
}

// do performs one request cycle: marshal body, attach headers, map the
// response into out (when non-nil). Transport failures wrap ErrUnavailable,
// non-2xx statuses become *StatusError. Every request carries a fresh
// X-Request-Id so failures can be correlated with server logs.
func (c *HTTPClient) do(ctx context.Context, method, path string, query url.Values, body any, out any) error {
	var rd io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
		rd = bytes.NewReader(data)
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, rd)
	if err != nil {
		return err
	}
	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn(ctx, "request failed",
			"method", method, "path", path, "request_id", requestID, "error", err)
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_, _ = io.Copy(io.Discard, resp.Body)
		c.logger.Warn(ctx, "request rejected",
			"method", method, "path", path, "request_id", requestID, "status", resp.StatusCode)
		return &StatusError{Code: resp.StatusCode}
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}
