package repository

import (
	"context"
	"testing"
	"time"

	"healthcare-portal/internal/domain/entity"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return mr, client
}

func TestSessionRepository_SaveAndFind(t *testing.T) {
	mr, client := newTestRedis(t)
	repo := NewSessionRepository(client)
	ctx := context.Background()

	user := &entity.User{ID: "2", Email: "patient@example.com", Password: "secret-hash", Name: "John Doe", UserType: entity.UserTypePatient}
	require.NoError(t, repo.Save(ctx, "tok-1", user, time.Hour))

	raw, err := mr.Get("session:tok-1")
	require.NoError(t, err)
	assert.NotContains(t, raw, "secret-hash")
	assert.JSONEq(t, `{"id":"2","email":"patient@example.com","user_type":"patient","name":"John Doe"}`, raw)

	found, err := repo.FindByTokenID(ctx, "tok-1")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "2", found.ID)
	assert.Equal(t, entity.UserTypePatient, found.UserType)
	assert.Empty(t, found.Password)
}

func TestSessionRepository_ExpiresWithTTL(t *testing.T) {
	mr, client := newTestRedis(t)
	repo := NewSessionRepository(client)
	ctx := context.Background()

	user := &entity.User{ID: "1", Email: "doctor@example.com", Name: "Dr. Smith", UserType: entity.UserTypeDoctor}
	require.NoError(t, repo.Save(ctx, "tok-2", user, time.Minute))

	mr.FastForward(2 * time.Minute)

	found, err := repo.FindByTokenID(ctx, "tok-2")
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestSessionRepository_DeleteIsIdempotent(t *testing.T) {
	_, client := newTestRedis(t)
	repo := NewSessionRepository(client)
	ctx := context.Background()

	user := &entity.User{ID: "1", Email: "doctor@example.com", Name: "Dr. Smith", UserType: entity.UserTypeDoctor}
	require.NoError(t, repo.Save(ctx, "tok-3", user, time.Minute))

	require.NoError(t, repo.Delete(ctx, "tok-3"))
	require.NoError(t, repo.Delete(ctx, "tok-3"))

	found, err := repo.FindByTokenID(ctx, "tok-3")
	require.NoError(t, err)
	assert.Nil(t, found)
}
