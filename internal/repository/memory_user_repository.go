package repository

import (
	"context"
	"strconv"
	"sync"
	"time"

	"healthcare-portal/internal/domain/entity"
	domainRepo "healthcare-portal/internal/domain/repository"
)

type memoryUserRepository struct {
	mu    sync.RWMutex
	users []entity.User
	email map[string]int // email -> index in users
}

// NewMemoryUserRepository creates an in-process user repository preloaded with seed.
func NewMemoryUserRepository(seed ...entity.User) domainRepo.UserRepository {
	r := &memoryUserRepository{
		users: make([]entity.User, 0, len(seed)),
		email: make(map[string]int, len(seed)),
	}
	for _, user := range seed {
		r.email[user.Email] = len(r.users)
		r.users = append(r.users, user)
	}
	return r
}

func (r *memoryUserRepository) Create(ctx context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.email[user.Email]; exists {
		return domainRepo.ErrDuplicateEmail
	}

	user.ID = strconv.Itoa(len(r.users) + 1)
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}

	r.email[user.Email] = len(r.users)
	r.users = append(r.users, *user)
	return nil
}

func (r *memoryUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx, ok := r.email[email]
	if !ok {
		return nil, nil
	}
	user := r.users[idx]
	return &user, nil
}

func (r *memoryUserRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, user := range r.users {
		if user.ID == id {
			found := user
			return &found, nil
		}
	}
	return nil, nil
}
