package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/forgo/users/api/internal/metrics"
	"github.com/forgo/users/api/internal/model"
	"github.com/forgo/users/api/internal/telemetry"
)

//go:generate mockgen -source=user.go -destination=mocks/mocks.go -package=mocks UserRepository

// UserRepository defines the interface for user storage
type UserRepository interface {
	Create(ctx context.Context, user model.User) (model.User, error)
	FindByID(ctx context.Context, id uuid.UUID) (model.User, error)
	FindAll(ctx context.Context) ([]model.User, error)
	Update(ctx context.Context, id uuid.UUID, user model.User) (model.User, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) int
}

// UserServiceConfig holds dependencies for UserService
type UserServiceConfig struct {
	Repo    UserRepository
	Logger  *slog.Logger
	Metrics *metrics.Metrics
	Now     func() time.Time
}

// UserService handles user business logic
type UserService struct {
	repo    UserRepository
	logger  *slog.Logger
	metrics *metrics.Metrics
	now     func() time.Time
	tracer  trace.Tracer
}

// NewUserService creates a new user service
func NewUserService(cfg UserServiceConfig) *UserService {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	return &UserService{
		repo:    cfg.Repo,
		logger:  logger,
		metrics: cfg.Metrics,
		now:     now,
		tracer:  otel.Tracer(telemetry.TracerName),
	}
}

// CreateUser validates and stores a new user
func (s *UserService) CreateUser(ctx context.Context, req model.CreateUserRequest) (resp model.UserResponse, err error) {
	ctx, span := s.start(ctx, "create")
	defer func() { s.finish(span, "create", err) }()

	if err := req.Validate(); err != nil {
		return model.UserResponse{}, err
	}

	user := model.NewUser(
		model.NormalizeName(req.Name),
		model.NormalizeEmail(req.Email),
		req.Age,
		s.now(),
	)
	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return model.UserResponse{}, err
	}

	s.metrics.IncrementUsersCreated()
	span.SetAttributes(attribute.String("user.id", created.ID.String()))
	s.logger.InfoContext(ctx, "user created",
		slog.String("user_id", created.ID.String()),
		slog.String("name", created.Name),
	)
	return model.NewUserResponse(created), nil
}

// GetUser returns a single user
func (s *UserService) GetUser(ctx context.Context, id uuid.UUID) (resp model.UserResponse, err error) {
	ctx, span := s.start(ctx, "get", attribute.String("user.id", id.String()))
	defer func() { s.finish(span, "get", err) }()

	user, err := s.lookup(ctx, id)
	if err != nil {
		return model.UserResponse{}, err
	}
	return model.NewUserResponse(user), nil
}

// GetUserProfile returns the profile view of a user
func (s *UserService) GetUserProfile(ctx context.Context, id uuid.UUID) (resp model.UserProfileResponse, err error) {
	ctx, span := s.start(ctx, "profile", attribute.String("user.id", id.String()))
	defer func() { s.finish(span, "profile", err) }()

	user, err := s.lookup(ctx, id)
	if err != nil {
		return model.UserProfileResponse{}, err
	}
	return model.NewUserProfileResponse(user), nil
}

// ListUsers returns one page of users ordered by name. Total is the size of
// the whole collection; an offset past the end yields an empty page.
func (s *UserService) ListUsers(ctx context.Context, q model.ListUsersQuery) (resp model.UsersListResponse, err error) {
	ctx, span := s.start(ctx, "list")
	defer func() { s.finish(span, "list", err) }()

	if err := q.Validate(); err != nil {
		return model.UsersListResponse{}, err
	}
	limit, offset := q.EffectiveLimit(), q.EffectiveOffset()

	all, err := s.repo.FindAll(ctx)
	if err != nil {
		return model.UsersListResponse{}, err
	}

	total := len(all)
	start := min(offset, total)
	end := min(start+limit, total)

	users := make([]model.UserResponse, 0, end-start)
	for _, u := range all[start:end] {
		users = append(users, model.NewUserResponse(u))
	}

	span.SetAttributes(
		attribute.Int("users.total", total),
		attribute.Int("users.returned", len(users)),
	)
	return model.UsersListResponse{
		Users:  users,
		Total:  total,
		Limit:  limit,
		Offset: offset,
	}, nil
}

// UpdateUser applies a partial update. Fields absent from the request keep
// their stored values and the id never changes.
func (s *UserService) UpdateUser(ctx context.Context, id uuid.UUID, req model.UpdateUserRequest) (resp model.UserResponse, err error) {
	ctx, span := s.start(ctx, "update", attribute.String("user.id", id.String()))
	defer func() { s.finish(span, "update", err) }()

	if err := req.Validate(); err != nil {
		if !req.HasUpdates() {
			s.logger.WarnContext(ctx, "update request has no changes", slog.String("user_id", id.String()))
		}
		return model.UserResponse{}, err
	}

	current, err := s.lookup(ctx, id)
	if err != nil {
		return model.UserResponse{}, err
	}

	next := req.Apply(current)
	next.UpdatedAt = s.now()

	updated, err := s.repo.Update(ctx, id, next)
	if err != nil {
		return model.UserResponse{}, err
	}

	s.logger.InfoContext(ctx, "user updated",
		slog.String("user_id", updated.ID.String()),
		slog.String("name", updated.Name),
	)
	return model.NewUserResponse(updated), nil
}

// DeleteUser removes a user. The user is fetched first so the log event can
// name who was deleted.
func (s *UserService) DeleteUser(ctx context.Context, id uuid.UUID) (err error) {
	ctx, span := s.start(ctx, "delete", attribute.String("user.id", id.String()))
	defer func() { s.finish(span, "delete", err) }()

	user, err := s.lookup(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "user deleted",
		slog.String("user_id", user.ID.String()),
		slog.String("name", user.Name),
	)
	return nil
}

// Count returns the number of stored users
func (s *UserService) Count(ctx context.Context) int {
	return s.repo.Count(ctx)
}

func (s *UserService) lookup(ctx context.Context, id uuid.UUID) (model.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, model.ErrUserNotFound) {
		s.logger.WarnContext(ctx, "user lookup failed", slog.String("user_id", id.String()))
	}
	return user, err
}

func (s *UserService) start(ctx context.Context, op string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return s.tracer.Start(ctx, "UserService."+op, trace.WithAttributes(attrs...))
}

func (s *UserService) finish(span trace.Span, op string, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, model.KindOf(err).String())
	}
	span.End()
	s.metrics.ObserveOperation(op, err)
}
