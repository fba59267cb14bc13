package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// AdultAge is the age from which a user counts as an adult
const AdultAge = 18

// User represents a user record. The repository owns the canonical copy;
// everything handed out is a value copy.
type User struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Age       int       `json:"age"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewUser builds a user with a fresh identifier. Inputs must already be
// validated and normalized.
func NewUser(name, email string, age int, now time.Time) User {
	return User{
		ID:        uuid.New(),
		Name:      name,
		Email:     email,
		Age:       age,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// IsAdult returns true if the user is at least AdultAge years old
func (u User) IsAdult() bool {
	return u.Age >= AdultAge
}

// NormalizeName trims surrounding whitespace
func NormalizeName(name string) string {
	return strings.TrimSpace(name)
}

// NormalizeEmail trims surrounding whitespace and lowercases
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
