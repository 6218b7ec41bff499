package ports

import (
	"context"

	"github.com/Md-Rashedul-Islam-Rajib/Empuls-Server/internal/core/domain"
)

// CatalogRepository reads the reference collections.
type CatalogRepository interface {
	ListServices(ctx context.Context) ([]domain.Document, error)
	ListTestimonials(ctx context.Context) ([]domain.Document, error)
}

// MessageRepository stores and lists visitor messages.
type MessageRepository interface {
	Create(ctx context.Context, m *domain.Message) error
	List(ctx context.Context) ([]*domain.Message, error)
}
