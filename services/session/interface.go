// Package session implements the simulated login of the original role
// selector: a caller picks a directory user and receives a signed token for
// that identity. Tokens are tracked in Redis so they can be revoked, and
// the quick-exit flow can drop every session at once.
package session

import (
	"context"

	"safebridge/store"

	"github.com/go-redis/redis/v8"
)

type SessionService interface {
	Login(ctx context.Context, userID string) (*AuthResponse, error)
	Logout(ctx context.Context, userID string) error
	Validate(ctx context.Context, token string) (userID, role string, err error)
	// QuickExit wipes the snapshot and all sessions and returns the safe
	// redirect URL. It is the panic button: it must never require a token.
	QuickExit(ctx context.Context) (string, error)
}

// AuthResponse carries the session identity and its bearer token.
type AuthResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Role  string `json:"role"`
	Token string `json:"token"`
}

// DefaultSessionService is the production implementation.
type DefaultSessionService struct {
	Store *store.Store
	Cache *redis.Client
}
