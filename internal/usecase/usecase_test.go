package usecase

import (
	"bytes"
	"context"
	"testing"
	"time"

	"healthcare-portal/config"
	"healthcare-portal/internal/delivery/http/middleware"
	"healthcare-portal/internal/domain/entity"
	"healthcare-portal/internal/repository"
	"healthcare-portal/pkg/jwt"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

type fakeEventService struct {
	created   []entity.HealthRecord
	responded []entity.HealthRecord
	contacts  []string
}

func (f *fakeEventService) RecordCreated(ctx context.Context, record *entity.HealthRecord) {
	f.created = append(f.created, *record)
}

func (f *fakeEventService) RecordResponded(ctx context.Context, record *entity.HealthRecord) {
	f.responded = append(f.responded, *record)
}

func (f *fakeEventService) ContactSubmitted(ctx context.Context, name, email, message string) {
	f.contacts = append(f.contacts, email)
}

type countingLatency struct {
	calls int
}

func (c *countingLatency) Wait() {
	c.calls++
}

func newTestLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(&bytes.Buffer{})
	return log
}

var (
	demoDoctor  = &entity.User{ID: "1", Email: "doctor@example.com", Name: "Dr. Smith", UserType: entity.UserTypeDoctor}
	demoPatient = &entity.User{ID: "2", Email: "patient@example.com", Name: "John Doe", UserType: entity.UserTypePatient}
)

func asUser(user *entity.User) context.Context {
	return middleware.ContextWithUser(context.Background(), user, "test-token")
}

type authFixture struct {
	usecase  AuthUsecase
	sessions *miniredis.Miniredis
}

func newAuthFixture(t *testing.T) authFixture {
	t.Helper()

	users, err := repository.DemoUsers()
	require.NoError(t, err)

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	jwtService := jwt.NewJWTService(config.JWTConfig{Secret: "test-secret", AccessExpiry: time.Hour})

	return authFixture{
		usecase: NewAuthUsecase(
			newTestLogger(),
			repository.NewMemoryUserRepository(users...),
			repository.NewSessionRepository(client),
			jwtService,
		),
		sessions: mr,
	}
}
