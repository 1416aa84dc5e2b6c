// Package services contains the application services of the recipe client:
// the auth session manager and the recipe cache store. Both hold explicit
// state and notify subscribers after every change so views can re-render.
package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"regexp"

	"github.com/plateful/plateful/internal/client/api"
	"github.com/plateful/plateful/internal/client/models"
	"github.com/plateful/plateful/internal/client/repositories/session"
	"github.com/plateful/plateful/internal/dbx"
	"github.com/plateful/plateful/internal/logging"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Validation and auth failure messages shown to the user. Remote auth
// failures deliberately collapse to one generic message; details go to
// the logs only.
const (
	msgEmailRequired    = "Email is required"
	msgEmailInvalid     = "Please enter a valid email address"
	msgPasswordRequired = "Password is required"
	msgPasswordTooShort = "Password must be at least 6 characters long"
	msgLoginFailed      = "Invalid email or password"
	msgRegisterFailed   = "Registration failed. Please try again."
)

// AuthService owns the client session: the current user, the bearer token,
// and the field-level validation errors surfaced to views. It is hydrated
// once at startup from the session repository and keeps the API client's
// authorization header in sync with the token.
type AuthService struct {
	client api.Client
	db     *sql.DB
	logger logging.Logger

	user   *models.User
	token  string
	errors map[string]string

	listeners []func()
}

func NewAuthService(client api.Client, db *sql.DB, logger logging.Logger) *AuthService {
	return &AuthService{
		client: client,
		db:     db,
		logger: logger.With("component", "auth"),
		errors: map[string]string{},
	}
}

// Subscribe registers fn to run after every session state change.
func (a *AuthService) Subscribe(fn func()) {
	a.listeners = append(a.listeners, fn)
}

func (a *AuthService) notify() {
	for _, fn := range a.listeners {
		fn()
	}
}

// IsAuthenticated derives authentication from token presence alone.
// A user record without a token does not count.
func (a *AuthService) IsAuthenticated() bool { return a.token != "" }

func (a *AuthService) User() *models.User { return a.user }

func (a *AuthService) Token() string { return a.token }

// Errors returns the validation errors from the latest auth operation,
// keyed by field name ("email", "password", or "general").
func (a *AuthService) Errors() map[string]string { return a.errors }

// Validate checks credentials locally, replacing the error map. It never
// touches the network.
func (a *AuthService) Validate(email, password string) bool {
	a.errors = map[string]string{}

	if email == "" {
		a.errors["email"] = msgEmailRequired
	} else if !emailPattern.MatchString(email) {
		a.errors["email"] = msgEmailInvalid
	}

	if password == "" {
		a.errors["password"] = msgPasswordRequired
	} else if len(password) < 6 {
		a.errors["password"] = msgPasswordTooShort
	}

	a.notify()
	return len(a.errors) == 0
}

// Login validates locally, then authenticates against the server. On
// success the token and user are stored in memory and durable storage and
// the authorization header is armed. Any remote failure leaves the prior
// session untouched and surfaces one general message.
func (a *AuthService) Login(ctx context.Context, email, password string) bool {
	if !a.Validate(email, password) {
		return false
	}

	res, err := a.client.Login(ctx, email, password)
	if err != nil {
		a.logger.Error(ctx, "login failed", "email", email, "error", err)
		a.errors["general"] = msgLoginFailed
		a.notify()
		return false
	}

	user := &models.User{ID: res.UserID, Email: email}
	if err := a.persistSession(ctx, res.AccessToken, user); err != nil {
		a.logger.Error(ctx, "persisting session failed", "error", err)
		a.errors["general"] = msgLoginFailed
		a.notify()
		return false
	}

	a.token = res.AccessToken
	a.user = user
	a.client.SetToken(a.token)
	a.notify()
	return true
}

// Register creates the account, then logs in with the same credentials;
// registration alone does not yield a token.
func (a *AuthService) Register(ctx context.Context, email, password string) bool {
	if !a.Validate(email, password) {
		return false
	}

	user, err := a.client.Register(ctx, email, password)
	if err != nil {
		a.logger.Error(ctx, "registration failed", "email", email, "error", err)
		a.errors["general"] = msgRegisterFailed
		a.notify()
		return false
	}

	a.user = user
	a.notify()
	return a.Login(ctx, email, password)
}

// Logout best-effort revokes the remote session when a token exists, then
// always clears local state, durable storage, and the authorization
// header. The deferred cleanup runs even when the remote call fails.
func (a *AuthService) Logout(ctx context.Context) {
	defer a.clearState(ctx)

	if a.token == "" {
		return
	}
	if err := a.client.Logout(ctx); err != nil {
		a.logger.Warn(ctx, "remote logout failed", "error", err)
	}
}

// InitializeAuth hydrates the session from durable storage at startup.
// With no stored token it does nothing. Otherwise the session is
// optimistically authenticated and the token verified against the server;
// a failed verification wipes the stale session. This is the path that
// invalidates expired tokens on restart.
func (a *AuthService) InitializeAuth(ctx context.Context) {
	repo := session.NewSQLiteRepository(a.db)

	token, err := repo.Get(ctx, session.KeyToken)
	if err != nil {
		a.logger.Error(ctx, "reading stored token failed", "error", err)
		return
	}
	if len(token) == 0 {
		return
	}

	a.token = string(token)
	a.client.SetToken(a.token)

	if data, err := repo.Get(ctx, session.KeyUser); err == nil && len(data) > 0 {
		var u models.User
		if err := json.Unmarshal(data, &u); err != nil {
			a.logger.Warn(ctx, "stored user record unreadable", "error", err)
		} else {
			a.user = &u
		}
	}
	a.notify()

	user, err := a.client.CurrentUser(ctx)
	if err != nil {
		a.logger.Warn(ctx, "stored token rejected", "error", err)
		a.clearState(ctx)
		return
	}

	a.user = user
	if err := a.persistSession(ctx, a.token, user); err != nil {
		a.logger.Warn(ctx, "refreshing stored user failed", "error", err)
	}
	a.notify()
}

// CheckAuth re-verifies the current token and refreshes the user record.
// On failure it performs a full logout so the remote session is
// invalidated too.
func (a *AuthService) CheckAuth(ctx context.Context) {
	if a.token == "" {
		return
	}
	a.client.SetToken(a.token)

	user, err := a.client.CurrentUser(ctx)
	if err != nil {
		a.logger.Warn(ctx, "auth check failed", "error", err)
		a.Logout(ctx)
		return
	}
	a.user = user
	a.notify()
}

// persistSession writes token and user to durable storage in a single
// transaction so a crash cannot leave one without the other.
func (a *AuthService) persistSession(ctx context.Context, token string, user *models.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return dbx.WithTx(ctx, a.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := session.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, session.KeyToken, []byte(token)); err != nil {
			return err
		}
		return repo.Set(ctx, session.KeyUser, data)
	})
}

// clearState wipes the session from memory and storage and disarms the
// authorization header. Storage failures are logged, never surfaced.
func (a *AuthService) clearState(ctx context.Context) {
	a.user = nil
	a.token = ""
	a.errors = map[string]string{}
	a.client.ClearToken()

	err := dbx.WithTx(ctx, a.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return session.NewSQLiteRepository(tx).Clear(ctx)
	})
	if err != nil {
		a.logger.Warn(ctx, "clearing stored session failed", "error", err)
	}
	a.notify()
}
