package ports

import (
	"context"

	"github.com/Md-Rashedul-Islam-Rajib/Empuls-Server/internal/core/domain"
)

// TokenService issues and verifies bearer tokens.
type TokenService interface {
	Issue(ctx context.Context, payload map[string]any) (string, error)
	Verify(token string) (*domain.Identity, error)
}
