package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/forgo/users/api/internal/model"
)

// SampleUsers are loaded at startup when sample data is enabled
var SampleUsers = []model.CreateUserRequest{
	{Name: "Alice Johnson", Email: "alice@example.com", Age: 28},
	{Name: "Bob Smith", Email: "bob@example.com", Age: 32},
}

// Seed inserts the given users through the normal create path, so the
// uniqueness rule applies to seed data as well.
func Seed(ctx context.Context, repo *UserRepository, users []model.CreateUserRequest, now time.Time) error {
	for _, req := range users {
		if err := req.Validate(); err != nil {
			return fmt.Errorf("seed %q: %w", req.Email, err)
		}
		u := model.NewUser(model.NormalizeName(req.Name), model.NormalizeEmail(req.Email), req.Age, now)
		if _, err := repo.Create(ctx, u); err != nil {
			return fmt.Errorf("seed %q: %w", req.Email, err)
		}
	}
	return nil
}
