package ports

import (
	"context"

	"github.com/Md-Rashedul-Islam-Rajib/Empuls-Server/internal/core/domain"
)

// UserRepository defines persistence operations for users.
type UserRepository interface {
	// CreateIfAbsent inserts user unless a record with the same email exists.
	// The boolean reports whether a new record was created; when false the
	// existing record is returned.
	CreateIfAbsent(ctx context.Context, user *domain.User) (*domain.User, bool, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)

	// The mutations below never upsert: an unknown id yields domain.ErrUserNotFound.
	MarkVerified(ctx context.Context, id string) (*domain.User, error)
	MarkFired(ctx context.Context, id string) (*domain.User, error)
	SetRole(ctx context.Context, id, role string) (*domain.User, error)
	// RaiseSalary sets the salary only when it does not decrease the stored
	// value, as a single conditional write. Returns domain.ErrSalaryDecrease otherwise.
	RaiseSalary(ctx context.Context, id string, salary float64) (*domain.User, error)
}
