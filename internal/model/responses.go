package model

import (
	"time"

	"github.com/google/uuid"
)

// APIBasePath prefixes every versioned route
const APIBasePath = "/api/v1"

// UserResponse is the public view of a user
type UserResponse struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
	Age   int       `json:"age"`
}

// UserProfileResponse adds presentation fields derived from the user
type UserProfileResponse struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Age        int       `json:"age"`
	ProfileURL string    `json:"profile_url"`
	CreatedAt  string    `json:"created_at"`
	IsAdult    bool      `json:"is_adult"`
}

// UsersListResponse is one page of users plus the pre-pagination total
type UsersListResponse struct {
	Users  []UserResponse `json:"users"`
	Total  int            `json:"total"`
	Limit  int            `json:"limit"`
	Offset int            `json:"offset"`
}

// HealthResponse reports service liveness
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Service   string `json:"service"`
	Version   string `json:"version"`
}

// NewUserResponse maps a user to its public view
func NewUserResponse(u User) UserResponse {
	return UserResponse{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Age:   u.Age,
	}
}

// NewUserProfileResponse maps a user to its profile view
func NewUserProfileResponse(u User) UserProfileResponse {
	return UserProfileResponse{
		ID:         u.ID,
		Name:       u.Name,
		Email:      u.Email,
		Age:        u.Age,
		ProfileURL: ProfileURL(u.ID),
		CreatedAt:  u.CreatedAt.UTC().Format(time.RFC3339),
		IsAdult:    u.IsAdult(),
	}
}

// ProfileURL returns the API path of a user's profile
func ProfileURL(id uuid.UUID) string {
	return APIBasePath + "/users/" + id.String() + "/profile"
}
