package ports

import (
	"context"
	"time"

	"github.com/Md-Rashedul-Islam-Rajib/Empuls-Server/internal/core/domain"
)

// SubmitWorkLogInput is the DTO passed from the transport layer to WorkLogService.
type SubmitWorkLogInput struct {
	Email          string
	Date           time.Time
	Fields         map[string]any
	IdempotencyKey string // optional
}

// WorkLogService handles work log submission and listing.
type WorkLogService interface {
	Submit(ctx context.Context, input SubmitWorkLogInput) (*domain.WorkLogEntry, error)
	List(ctx context.Context, email string) ([]*domain.WorkLogEntry, error)
}
