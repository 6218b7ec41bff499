package ports

import (
	"context"

	"github.com/Md-Rashedul-Islam-Rajib/Empuls-Server/internal/core/domain"
)

// PaymentRepository persists salary disbursements.
type PaymentRepository interface {
	// Create inserts the record, returning domain.ErrAlreadyPaid when the
	// recipient was already paid for the same month and year.
	Create(ctx context.Context, p *domain.PaymentRecord) error
	// List returns payments for email, or all payments when email is empty.
	List(ctx context.Context, email string) ([]*domain.PaymentRecord, error)
}
