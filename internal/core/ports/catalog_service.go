package ports

import (
	"context"

	"github.com/Md-Rashedul-Islam-Rajib/Empuls-Server/internal/core/domain"
)

// PostMessageInput carries a visitor message.
type PostMessageInput struct {
	Email          string
	Message        string
	IdempotencyKey string // optional
}

// CatalogService serves reference data and visitor messages.
type CatalogService interface {
	Services(ctx context.Context) ([]domain.Document, error)
	Testimonials(ctx context.Context) ([]domain.Document, error)
	PostMessage(ctx context.Context, input PostMessageInput) (*domain.Message, error)
	Messages(ctx context.Context) ([]*domain.Message, error)
}
