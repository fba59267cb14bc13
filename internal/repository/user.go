package repository

import (
	"bytes"
	"cmp"
	"context"
	"slices"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/forgo/users/api/internal/model"
)

// UserRepository is the in-memory user store. A single mutex guards the
// whole collection and every operation holds it for its full duration, so
// the email uniqueness check and the write that follows are atomic.
type UserRepository struct {
	mu    sync.Mutex
	users map[uuid.UUID]model.User
}

// NewUserRepository creates an empty user repository
func NewUserRepository() *UserRepository {
	return &UserRepository{users: make(map[uuid.UUID]model.User)}
}

// Create stores a new user. Fails with AlreadyExists if the email is taken.
func (r *UserRepository) Create(_ context.Context, user model.User) (model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.emailTakenLocked(user.Email, uuid.Nil) {
		return model.User{}, model.AlreadyExists(user.Email)
	}

	r.users[user.ID] = user
	return user, nil
}

// FindByID returns the user with the given id
func (r *UserRepository) FindByID(_ context.Context, id uuid.UUID) (model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[id]
	if !ok {
		return model.User{}, model.NotFound(id)
	}
	return user, nil
}

// FindAll returns every user ordered by name. Equal names are ordered by
// creation time, then id.
func (r *UserRepository) FindAll(_ context.Context) ([]model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	users := make([]model.User, 0, len(r.users))
	for _, u := range r.users {
		users = append(users, u)
	}
	slices.SortStableFunc(users, func(a, b model.User) int {
		return cmp.Or(
			strings.Compare(a.Name, b.Name),
			a.CreatedAt.Compare(b.CreatedAt),
			bytes.Compare(a.ID[:], b.ID[:]),
		)
	})
	return users, nil
}

// Update replaces the stored user. The stored id is kept whatever id the
// new state carries.
func (r *UserRepository) Update(_ context.Context, id uuid.UUID, user model.User) (model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[id]; !ok {
		return model.User{}, model.NotFound(id)
	}
	if r.emailTakenLocked(user.Email, id) {
		return model.User{}, model.AlreadyExists(user.Email)
	}

	user.ID = id
	r.users[id] = user
	return user, nil
}

// Delete removes the user with the given id
func (r *UserRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[id]; !ok {
		return model.NotFound(id)
	}
	delete(r.users, id)
	return nil
}

// Count returns the number of stored users
func (r *UserRepository) Count(_ context.Context) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.users)
}

// emailTakenLocked reports whether a user other than except holds email.
// Callers must hold r.mu.
func (r *UserRepository) emailTakenLocked(email string, except uuid.UUID) bool {
	for id, u := range r.users {
		if id != except && u.Email == email {
			return true
		}
	}
	return false
}
