package ports

import (
	"context"

	"github.com/Md-Rashedul-Islam-Rajib/Empuls-Server/internal/core/domain"
)

// WorkLogRepository persists work log entries.
type WorkLogRepository interface {
	Create(ctx context.Context, entry *domain.WorkLogEntry) error
	// List returns entries sorted by date descending, filtered by owner email
	// when email is non-empty.
	List(ctx context.Context, email string) ([]*domain.WorkLogEntry, error)
}
