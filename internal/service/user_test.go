package service

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/forgo/users/api/internal/metrics"
	"github.com/forgo/users/api/internal/model"
	"github.com/forgo/users/api/internal/service/mocks"
	"github.com/forgo/users/api/internal/testing/fixtures"
	"github.com/forgo/users/api/internal/testing/helpers"
)

// ============================================================================
// Mocked repository suite
// ============================================================================

type UserServiceSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	repo    *mocks.MockUserRepository
	metrics *metrics.Metrics
	logs    *bytes.Buffer
	now     time.Time
	svc     *UserService
}

func (s *UserServiceSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.repo = mocks.NewMockUserRepository(s.ctrl)
	s.metrics = metrics.New()
	s.logs = &bytes.Buffer{}
	s.now = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	s.svc = NewUserService(UserServiceConfig{
		Repo:    s.repo,
		Logger:  slog.New(slog.NewJSONHandler(s.logs, &slog.HandlerOptions{Level: slog.LevelDebug})),
		Metrics: s.metrics,
		Now:     func() time.Time { return s.now },
	})
}

func (s *UserServiceSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestUserServiceSuite(t *testing.T) {
	suite.Run(t, new(UserServiceSuite))
}

func (s *UserServiceSuite) TestCreateUser() {
	ctx := context.Background()

	s.Run("normalizes before storing", func() {
		s.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, u model.User) (model.User, error) {
				s.Equal("Jane Doe", u.Name)
				s.Equal("jane@example.com", u.Email)
				s.NotEqual(uuid.Nil, u.ID)
				s.Equal(s.now, u.CreatedAt)
				return u, nil
			})

		resp, err := s.svc.CreateUser(ctx, model.CreateUserRequest{
			Name:  "  Jane Doe ",
			Email: " Jane@Example.COM ",
			Age:   30,
		})
		s.Require().NoError(err)
		s.Equal("Jane Doe", resp.Name)
		s.Equal("jane@example.com", resp.Email)
		s.Equal(30, resp.Age)
		s.Contains(s.logs.String(), `"msg":"user created"`)
	})

	s.Run("invalid input never reaches the repository", func() {
		_, err := s.svc.CreateUser(ctx, model.CreateUserRequest{Name: " ", Email: "a@b.com", Age: 1})
		s.Require().ErrorIs(err, model.ErrInvalidInput)
		s.Equal("Invalid input: Name cannot be empty", err.Error())
	})

	s.Run("repository error propagates unchanged", func() {
		conflict := model.AlreadyExists("dup@example.com")
		s.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(model.User{}, conflict)

		_, err := s.svc.CreateUser(ctx, fixtures.CreateRequest(fixtures.WithEmail("dup@example.com")))
		s.Require().Error(err)
		s.Same(conflict, err)
	})
}

func (s *UserServiceSuite) TestCreateUser_Metrics() {
	u := fixtures.User()
	s.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(u, nil)
	s.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(model.User{}, model.AlreadyExists(u.Email))

	_, err := s.svc.CreateUser(context.Background(), fixtures.CreateRequest())
	s.Require().NoError(err)
	_, err = s.svc.CreateUser(context.Background(), fixtures.CreateRequest())
	s.Require().Error(err)

	s.Equal(1.0, testutil.ToFloat64(s.metrics.UsersCreated))
	s.Equal(1.0, testutil.ToFloat64(s.metrics.UserOperations.WithLabelValues("create", metrics.OutcomeSuccess)))
	s.Equal(1.0, testutil.ToFloat64(s.metrics.UserOperations.WithLabelValues("create", metrics.OutcomeError)))
}

func (s *UserServiceSuite) TestGetUser() {
	ctx := context.Background()

	s.Run("maps to response", func() {
		u := fixtures.User()
		s.repo.EXPECT().FindByID(gomock.Any(), u.ID).Return(u, nil)

		resp, err := s.svc.GetUser(ctx, u.ID)
		s.Require().NoError(err)
		s.Equal(model.NewUserResponse(u), resp)
	})

	s.Run("not found is logged at warn", func() {
		id := uuid.New()
		s.repo.EXPECT().FindByID(gomock.Any(), id).Return(model.User{}, model.NotFound(id))

		_, err := s.svc.GetUser(ctx, id)
		s.Require().ErrorIs(err, model.ErrUserNotFound)
		s.Contains(s.logs.String(), `"msg":"user lookup failed"`)
		s.Contains(s.logs.String(), `"level":"WARN"`)
	})
}

func (s *UserServiceSuite) TestGetUserProfile() {
	u := fixtures.User(fixtures.WithAge(17))
	s.repo.EXPECT().FindByID(gomock.Any(), u.ID).Return(u, nil)

	profile, err := s.svc.GetUserProfile(context.Background(), u.ID)
	s.Require().NoError(err)
	s.False(profile.IsAdult)
	s.Equal("/api/v1/users/"+u.ID.String()+"/profile", profile.ProfileURL)
	s.Equal(fixtures.Epoch.Format(time.RFC3339), profile.CreatedAt)
}

func (s *UserServiceSuite) TestUpdateUser() {
	ctx := context.Background()

	s.Run("only age changes", func() {
		u := fixtures.User(fixtures.WithAge(30))
		s.repo.EXPECT().FindByID(gomock.Any(), u.ID).Return(u, nil)
		s.repo.EXPECT().Update(gomock.Any(), u.ID, gomock.Any()).DoAndReturn(
			func(_ context.Context, id uuid.UUID, next model.User) (model.User, error) {
				s.Equal(u.Name, next.Name)
				s.Equal(u.Email, next.Email)
				s.Equal(31, next.Age)
				s.Equal(u.CreatedAt, next.CreatedAt)
				s.Equal(s.now, next.UpdatedAt)
				return next, nil
			})

		resp, err := s.svc.UpdateUser(ctx, u.ID, model.UpdateUserRequest{Age: helpers.IntPtr(31)})
		s.Require().NoError(err)
		s.Equal(u.ID, resp.ID)
		s.Equal(31, resp.Age)
		s.Equal(u.Name, resp.Name)
	})

	s.Run("empty update rejected without touching the repository", func() {
		_, err := s.svc.UpdateUser(ctx, uuid.New(), model.UpdateUserRequest{})
		s.Require().ErrorIs(err, model.ErrInvalidInput)
		s.Equal("Invalid input: No updates provided", err.Error())
		s.Contains(s.logs.String(), "update request has no changes")
	})

	s.Run("invalid field rejected before lookup", func() {
		_, err := s.svc.UpdateUser(ctx, uuid.New(), model.UpdateUserRequest{Email: helpers.StringPtr("nope")})
		s.Require().ErrorIs(err, model.ErrInvalidInput)
	})

	s.Run("missing user", func() {
		id := uuid.New()
		s.repo.EXPECT().FindByID(gomock.Any(), id).Return(model.User{}, model.NotFound(id))

		_, err := s.svc.UpdateUser(ctx, id, model.UpdateUserRequest{Name: helpers.StringPtr("New")})
		s.Require().ErrorIs(err, model.ErrUserNotFound)
	})

	s.Run("email normalized before conflict check", func() {
		u := fixtures.User()
		s.repo.EXPECT().FindByID(gomock.Any(), u.ID).Return(u, nil)
		s.repo.EXPECT().Update(gomock.Any(), u.ID, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ uuid.UUID, next model.User) (model.User, error) {
				s.Equal("taken@example.com", next.Email)
				return model.User{}, model.AlreadyExists(next.Email)
			})

		_, err := s.svc.UpdateUser(ctx, u.ID, model.UpdateUserRequest{Email: helpers.StringPtr(" TAKEN@example.com")})
		s.Require().ErrorIs(err, model.ErrUserAlreadyExists)
	})
}

func (s *UserServiceSuite) TestDeleteUser() {
	ctx := context.Background()

	s.Run("fetches then deletes", func() {
		u := fixtures.User(fixtures.WithName("Gone Soon"))
		gomock.InOrder(
			s.repo.EXPECT().FindByID(gomock.Any(), u.ID).Return(u, nil),
			s.repo.EXPECT().Delete(gomock.Any(), u.ID).Return(nil),
		)

		s.Require().NoError(s.svc.DeleteUser(ctx, u.ID))
		s.Contains(s.logs.String(), `"name":"Gone Soon"`)
	})

	s.Run("not found skips delete", func() {
		id := uuid.New()
		s.repo.EXPECT().FindByID(gomock.Any(), id).Return(model.User{}, model.NotFound(id))

		err := s.svc.DeleteUser(ctx, id)
		s.Require().ErrorIs(err, model.ErrUserNotFound)
	})

	s.Run("delete error propagates", func() {
		u := fixtures.User()
		s.repo.EXPECT().FindByID(gomock.Any(), u.ID).Return(u, nil)
		s.repo.EXPECT().Delete(gomock.Any(), u.ID).Return(model.NotFound(u.ID))

		err := s.svc.DeleteUser(ctx, u.ID)
		s.Require().ErrorIs(err, model.ErrUserNotFound)
	})
}

func (s *UserServiceSuite) TestListUsers_InvalidQuery() {
	_, err := s.svc.ListUsers(context.Background(), model.ListUsersQuery{Limit: helpers.IntPtr(0)})
	s.Require().ErrorIs(err, model.ErrInvalidInput)

	_, err = s.svc.ListUsers(context.Background(), model.ListUsersQuery{Offset: helpers.IntPtr(-1)})
	s.Require().ErrorIs(err, model.ErrInvalidInput)
}

func (s *UserServiceSuite) TestListUsers_RepositoryError() {
	boom := model.Database("read failed", errors.New("disk"))
	s.repo.EXPECT().FindAll(gomock.Any()).Return(nil, boom)

	_, err := s.svc.ListUsers(context.Background(), model.ListUsersQuery{})
	s.Require().ErrorIs(err, model.ErrDatabase)
}

func (s *UserServiceSuite) TestCount() {
	s.repo.EXPECT().Count(gomock.Any()).Return(4)
	s.Equal(4, s.svc.Count(context.Background()))
}

func TestNewUserService_Defaults(t *testing.T) {
	t.Parallel()

	svc := NewUserService(UserServiceConfig{})
	if svc.logger == nil {
		t.Error("expected default logger")
	}
	if svc.now == nil {
		t.Error("expected default clock")
	}
}
