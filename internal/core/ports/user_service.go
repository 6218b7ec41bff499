package ports

import (
	"context"

	"github.com/Md-Rashedul-Islam-Rajib/Empuls-Server/internal/core/domain"
)

// RegisterUserInput carries the public signup payload.
type RegisterUserInput struct {
	Name          string
	Email         string
	Role          string
	Image         string
	BankAccountNo string
	Salary        float64
	Designation   string
}

// UserService defines use-case operations for users. Actor is the verified
// email of the caller performing an administrative mutation.
type UserService interface {
	Register(ctx context.Context, input RegisterUserInput) (user *domain.User, created bool, err error)
	Get(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	// HasRole reports whether the user with email holds role. Unknown users hold no role.
	HasRole(ctx context.Context, email, role string) (bool, error)

	Verify(ctx context.Context, actor, id string) (*domain.User, error)
	Fire(ctx context.Context, actor, id string) (*domain.User, error)
	GrantHR(ctx context.Context, actor, id string) (*domain.User, error)
	UpdateSalary(ctx context.Context, actor, id string, salary float64) (*domain.User, error)
}
