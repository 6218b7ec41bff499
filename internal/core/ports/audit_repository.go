package ports

import (
	"context"

	"github.com/Md-Rashedul-Islam-Rajib/Empuls-Server/internal/core/domain"
)

// AuditRepository appends entries to the administrative audit trail.
type AuditRepository interface {
	Insert(ctx context.Context, entry *domain.AuditEntry) error
}

// IdempotencyStore remembers client-supplied idempotency keys.
type IdempotencyStore interface {
	// Reserve claims key within scope. It returns false when the key was
	// already claimed.
	Reserve(ctx context.Context, scope, key string) (bool, error)
	// Release frees a claimed key so the submission can be retried.
	Release(ctx context.Context, scope, key string) error
}
