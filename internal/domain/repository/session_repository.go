package repository

import (
	"context"
	"time"

	"healthcare-portal/internal/domain/entity"
)

// SessionRepository persists the public fields of an authenticated user per token.
type SessionRepository interface {
	Save(ctx context.Context, tokenID string, user *entity.User, ttl time.Duration) error
	FindByTokenID(ctx context.Context, tokenID string) (*entity.User, error)
	Delete(ctx context.Context, tokenID string) error
}
