package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"healthcare-portal/internal/domain/entity"
	domainRepo "healthcare-portal/internal/domain/repository"

	"github.com/redis/go-redis/v9"
)

const sessionKeyPrefix = "session:"

// sessionPayload is the serialized session: the user's public fields only.
type sessionPayload struct {
	ID       string          `json:"id"`
	Email    string          `json:"email"`
	UserType entity.UserType `json:"user_type"`
	Name     string          `json:"name"`
}

type sessionRepository struct {
	redisClient *redis.Client
}

func NewSessionRepository(redisClient *redis.Client) domainRepo.SessionRepository {
	return &sessionRepository{redisClient: redisClient}
}

func (r *sessionRepository) Save(ctx context.Context, tokenID string, user *entity.User, ttl time.Duration) error {
	payload, err := json.Marshal(sessionPayload{
		ID:       user.ID,
		Email:    user.Email,
		UserType: user.UserType,
		Name:     user.Name,
	})
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	return r.redisClient.Set(ctx, sessionKey(tokenID), payload, ttl).Err()
}

func (r *sessionRepository) FindByTokenID(ctx context.Context, tokenID string) (*entity.User, error) {
	raw, err := r.redisClient.Get(ctx, sessionKey(tokenID)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var payload sessionPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}

	return &entity.User{
		ID:       payload.ID,
		Email:    payload.Email,
		UserType: payload.UserType,
		Name:     payload.Name,
	}, nil
}

func (r *sessionRepository) Delete(ctx context.Context, tokenID string) error {
	if err := r.redisClient.Del(ctx, sessionKey(tokenID)).Err(); err != nil && err != redis.Nil {
		return err
	}
	return nil
}

func sessionKey(tokenID string) string {
	return sessionKeyPrefix + tokenID
}
