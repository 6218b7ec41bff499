package ports

import (
	"context"

	"github.com/Md-Rashedul-Islam-Rajib/Empuls-Server/internal/core/domain"
)

// RecordPaymentInput carries a salary disbursement submitted by HR.
type RecordPaymentInput struct {
	Email      string
	Name       string
	EmployeeID string
	Salary     float64
	Month      string
	Year       int
	PaidBy     string
}

// PayrollService records and lists salary payments.
type PayrollService interface {
	RecordPayment(ctx context.Context, input RecordPaymentInput) (*domain.PaymentRecord, error)
	History(ctx context.Context, email string) ([]*domain.PaymentRecord, error)
}
