// Package session stores the durable part of the client session: the
// bearer token and the serialized user record, as key-value rows in a
// local SQLite database.
package session

import "context"

// Keys used by the auth service. Both entries are always cleared together.
const (
	KeyToken = "token"
	KeyUser  = "user"
)

// Repository is durable key-value storage for the client session.
// Get returns (nil, nil) when the key is absent.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
