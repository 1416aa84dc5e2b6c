package models

// User is the client-side view of the account record returned by the API.
// ID is a pointer because the login endpoint may omit it.
type User struct {
	ID    *int64 `json:"id"`
	Email string `json:"email"`
}

// LoginResult is the response body of POST /auth/login.
type LoginResult struct {
	AccessToken string `json:"access_token"`
	UserID      *int64 `json:"user_id"`
}
