package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/forgo/users/api/internal/model"
)

//go:generate mockgen -source=user.go -destination=mocks/mocks.go -package=mocks UserService

// UserService is the business logic the user endpoints depend on
type UserService interface {
	CreateUser(ctx context.Context, req model.CreateUserRequest) (model.UserResponse, error)
	GetUser(ctx context.Context, id uuid.UUID) (model.UserResponse, error)
	GetUserProfile(ctx context.Context, id uuid.UUID) (model.UserProfileResponse, error)
	ListUsers(ctx context.Context, q model.ListUsersQuery) (model.UsersListResponse, error)
	UpdateUser(ctx context.Context, id uuid.UUID, req model.UpdateUserRequest) (model.UserResponse, error)
	DeleteUser(ctx context.Context, id uuid.UUID) error
}

// UserHandler handles user endpoints
type UserHandler struct {
	userService UserService
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// ListUsers handles GET /api/v1/users?limit&offset
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	q, err := parseListQuery(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	resp, err := h.userService.ListUsers(r.Context(), q)
	if err != nil {
		WriteError(w, err)
		return
	}
	WriteData(w, http.StatusOK, resp)
}

// CreateUser handles POST /api/v1/users
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req model.CreateUserRequest
	if err := DecodeJSON(w, r, &req); err != nil {
		WriteError(w, err)
		return
	}

	resp, err := h.userService.CreateUser(r.Context(), req)
	if err != nil {
		WriteError(w, err)
		return
	}
	WriteData(w, http.StatusCreated, resp)
}

// GetUser handles GET /api/v1/users/{id}
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	id, err := userIDParam(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	resp, err := h.userService.GetUser(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}
	WriteData(w, http.StatusOK, resp)
}

// UpdateUser handles PUT /api/v1/users/{id} - partial update
func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	id, err := userIDParam(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	var req model.UpdateUserRequest
	if err := DecodeJSON(w, r, &req); err != nil {
		WriteError(w, err)
		return
	}

	resp, err := h.userService.UpdateUser(r.Context(), id, req)
	if err != nil {
		WriteError(w, err)
		return
	}
	WriteData(w, http.StatusOK, resp)
}

// DeleteUser handles DELETE /api/v1/users/{id}
func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := userIDParam(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	if err := h.userService.DeleteUser(r.Context(), id); err != nil {
		WriteError(w, err)
		return
	}
	WriteNoContent(w)
}

// GetUserProfile handles GET /api/v1/users/{id}/profile
func (h *UserHandler) GetUserProfile(w http.ResponseWriter, r *http.Request) {
	id, err := userIDParam(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	resp, err := h.userService.GetUserProfile(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}
	WriteData(w, http.StatusOK, resp)
}

func userIDParam(r *http.Request) (uuid.UUID, error) {
	raw := chi.URLParam(r, "id")
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, model.InvalidInput("Invalid user id: " + raw)
	}
	return id, nil
}

// parseListQuery reads limit and offset. Range checks are left to the
// service; only non-integers are rejected here.
func parseListQuery(r *http.Request) (model.ListUsersQuery, error) {
	var q model.ListUsersQuery
	values := r.URL.Query()

	if raw := values.Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return q, model.InvalidInput("Limit must be an integer")
		}
		q.Limit = &n
	}
	if raw := values.Get("offset"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return q, model.InvalidInput("Offset must be an integer")
		}
		q.Offset = &n
	}
	return q, nil
}
