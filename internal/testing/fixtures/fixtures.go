// Package fixtures provides user test data factories.
//
// Factories build entities with sensible defaults while allowing
// customization via option functions. Insertion is left to the caller so
// the fixtures work against any store implementation.
//
// Usage:
//
//	u := fixtures.User(fixtures.WithName("Zed"))
//	_, err := repo.Create(ctx, u)
package fixtures

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/forgo/users/api/internal/model"
)

// Epoch is the fixed clock used by fixtures
var Epoch = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

var seq atomic.Int64

// UserOpts customizes user creation
type UserOpts struct {
	Name      string
	Email     string
	Age       int
	CreatedAt time.Time
}

// WithName sets the user's name
func WithName(name string) func(*UserOpts) {
	return func(o *UserOpts) { o.Name = name }
}

// WithEmail sets the user's email
func WithEmail(email string) func(*UserOpts) {
	return func(o *UserOpts) { o.Email = email }
}

// WithAge sets the user's age
func WithAge(age int) func(*UserOpts) {
	return func(o *UserOpts) { o.Age = age }
}

// User builds a valid user with a unique email
func User(opts ...func(*UserOpts)) model.User {
	n := seq.Add(1)
	o := &UserOpts{
		Name:      fmt.Sprintf("User %04d", n),
		Email:     fmt.Sprintf("user_%04d@test.local", n),
		Age:       30,
		CreatedAt: Epoch,
	}
	for _, fn := range opts {
		fn(o)
	}
	return model.User{
		ID:        uuid.New(),
		Name:      o.Name,
		Email:     o.Email,
		Age:       o.Age,
		CreatedAt: o.CreatedAt,
		UpdatedAt: o.CreatedAt,
	}
}

// Users builds n users named "Member 01".."Member n" in ascending order
func Users(n int) []model.User {
	users := make([]model.User, 0, n)
	for i := 1; i <= n; i++ {
		users = append(users, User(
			WithName(fmt.Sprintf("Member %02d", i)),
			WithEmail(fmt.Sprintf("member%02d_%s@test.local", i, uuid.NewString()[:8])),
		))
	}
	return users
}

// CreateRequest builds a valid create payload with a unique email
func CreateRequest(opts ...func(*UserOpts)) model.CreateUserRequest {
	u := User(opts...)
	return model.CreateUserRequest{Name: u.Name, Email: u.Email, Age: u.Age}
}
