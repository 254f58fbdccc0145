package repository

import (
	"context"
	"testing"

	"healthcare-portal/internal/domain/entity"
	domainRepo "healthcare-portal/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestMemoryUserRepository_SeededDemoUsers(t *testing.T) {
	users, err := DemoUsers()
	require.NoError(t, err)
	repo := NewMemoryUserRepository(users...)
	ctx := context.Background()

	doctor, err := repo.FindByEmail(ctx, "doctor@example.com")
	require.NoError(t, err)
	require.NotNil(t, doctor)
	assert.Equal(t, "1", doctor.ID)
	assert.True(t, doctor.IsDoctor())
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(doctor.Password), []byte(DemoPassword)))

	patient, err := repo.FindByID(ctx, "2")
	require.NoError(t, err)
	require.NotNil(t, patient)
	assert.Equal(t, "John Doe", patient.Name)
	assert.True(t, patient.IsPatient())
}

func TestMemoryUserRepository_CreateAssignsNextID(t *testing.T) {
	users, err := DemoUsers()
	require.NoError(t, err)
	repo := NewMemoryUserRepository(users...)

	user := &entity.User{Email: "new@example.com", Password: "x", Name: "New", UserType: entity.UserTypePatient}
	require.NoError(t, repo.Create(context.Background(), user))
	assert.Equal(t, "3", user.ID)

	found, err := repo.FindByEmail(context.Background(), "new@example.com")
	require.NoError(t, err)
	assert.Equal(t, "New", found.Name)
}

func TestMemoryUserRepository_DuplicateEmailKeepsExistingUser(t *testing.T) {
	users, err := DemoUsers()
	require.NoError(t, err)
	repo := NewMemoryUserRepository(users...)
	ctx := context.Background()

	dup := &entity.User{Email: "patient@example.com", Password: "other", Name: "Impostor", UserType: entity.UserTypeDoctor}
	err = repo.Create(ctx, dup)
	assert.ErrorIs(t, err, domainRepo.ErrDuplicateEmail)

	existing, err := repo.FindByEmail(ctx, "patient@example.com")
	require.NoError(t, err)
	assert.Equal(t, "2", existing.ID)
	assert.Equal(t, "John Doe", existing.Name)
	assert.Equal(t, entity.UserTypePatient, existing.UserType)
}

func TestMemoryUserRepository_NotFound(t *testing.T) {
	repo := NewMemoryUserRepository()

	byEmail, err := repo.FindByEmail(context.Background(), "ghost@example.com")
	assert.NoError(t, err)
	assert.Nil(t, byEmail)

	byID, err := repo.FindByID(context.Background(), "9")
	assert.NoError(t, err)
	assert.Nil(t, byID)
}
