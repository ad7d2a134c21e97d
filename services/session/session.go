package session

import (
	"context"
	"errors"
	"fmt"

	"safebridge/config"
	"safebridge/models"
	"safebridge/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// Login issues a session token for the given directory user. One session
// per user: logging in again replaces any previous token.
func (s *DefaultSessionService) Login(ctx context.Context, userID string) (*AuthResponse, error) {
	var user *models.User
	for _, u := range s.Store.Snapshot().Users {
		if u.ID == userID {
			user = &u
			break
		}
	}
	if user == nil {
		return nil, utils.NewNotFoundError("user", userID)
	}

	token, err := utils.GenerateSessionToken(user.ID, user.Role, utils.SessionTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to sign session token: %w", err)
	}

	key := utils.SessionCachePrefix + user.ID
	if err := s.Cache.Set(ctx, key, utils.HashToken(token), utils.SessionTTL).Err(); err != nil {
		return nil, fmt.Errorf("failed to record session: %w", err)
	}

	utils.GetLogger().Info("Session opened",
		zap.String("user", user.ID), zap.String("role", user.Role))
	return &AuthResponse{ID: user.ID, Name: user.Name, Role: user.Role, Token: token}, nil
}

// Logout drops the user's session record; the token stops validating
// immediately. Logging out an absent session is a no-op.
func (s *DefaultSessionService) Logout(ctx context.Context, userID string) error {
	if err := s.Cache.Del(ctx, utils.SessionCachePrefix+userID).Err(); err != nil {
		return fmt.Errorf("failed to drop session: %w", err)
	}
	return nil
}

// Validate checks the token signature and that the session is still
// recorded, and returns the session identity.
func (s *DefaultSessionService) Validate(ctx context.Context, token string) (string, string, error) {
	userID, role, err := utils.ExtractSessionFromToken(token)
	if err != nil {
		return "", "", err
	}

	stored, err := s.Cache.Get(ctx, utils.SessionCachePrefix+userID).Result()
	if err == redis.Nil {
		return "", "", errors.New("session revoked or expired")
	}
	if err != nil {
		return "", "", fmt.Errorf("failed to check session: %w", err)
	}
	if stored != utils.HashToken(token) {
		return "", "", errors.New("session superseded by a newer login")
	}
	return userID, role, nil
}

// QuickExit discards the snapshot and flushes every session, then hands
// back the configured safe URL. Errors wiping state are still returned,
// but the redirect URL is always usable.
func (s *DefaultSessionService) QuickExit(ctx context.Context) (string, error) {
	url := config.AppConfig.QuickExitURL

	if err := s.Cache.FlushDB(ctx).Err(); err != nil {
		return url, fmt.Errorf("failed to flush sessions: %w", err)
	}
	if err := s.Store.Wipe(ctx); err != nil {
		return url, err
	}
	utils.GetLogger().Warn("Quick exit triggered, all data wiped")
	return url, nil
}
