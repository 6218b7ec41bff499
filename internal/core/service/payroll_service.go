package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/Md-Rashedul-Islam-Rajib/Empuls-Server/internal/core/domain"
	"github.com/Md-Rashedul-Islam-Rajib/Empuls-Server/internal/core/ports"
	"github.com/Md-Rashedul-Islam-Rajib/Empuls-Server/internal/pkg/metrics"
)

type PayrollService struct {
	repo  ports.PaymentRepository
	audit ports.AuditRepository
	log   zerolog.Logger
}

func NewPayrollService(repo ports.PaymentRepository, audit ports.AuditRepository, log zerolog.Logger) *PayrollService {
	return &PayrollService{repo: repo, audit: audit, log: log}
}

// RecordPayment stores a disbursement. The duplicate check is delegated to the
// repository's unique (email, month, year) constraint so concurrent submissions
// cannot both succeed.
func (s *PayrollService) RecordPayment(ctx context.Context, in ports.RecordPaymentInput) (*domain.PaymentRecord, error) {
	email := strings.TrimSpace(in.Email)
	month := strings.TrimSpace(in.Month)
	if email == "" || month == "" || in.Year == 0 {
		return nil, domain.ErrInvalidPayload
	}

	payment := &domain.PaymentRecord{
		Email:      email,
		Name:       in.Name,
		EmployeeID: in.EmployeeID,
		Salary:     in.Salary,
		Month:      month,
		Year:       in.Year,
		PaidBy:     in.PaidBy,
		PaidAt:     time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, payment); err != nil {
		return nil, fmt.Errorf("record payment: %w", err)
	}

	metrics.PaymentsRecordedTotal.Inc()
	s.log.Info().
		Str("email", email).
		Str("month", month).
		Int("year", in.Year).
		Str("paid_by", in.PaidBy).
		Msg("payment recorded")

	if s.audit != nil {
		entry := &domain.AuditEntry{
			Action:   domain.AuditPaymentCreated,
			Actor:    in.PaidBy,
			TargetID: in.EmployeeID,
			Details:  map[string]any{"payment_id": payment.ID, "month": month, "year": in.Year, "salary": in.Salary},
			At:       payment.PaidAt,
		}
		if err := s.audit.Insert(ctx, entry); err != nil {
			s.log.Warn().Err(err).Str("payment_id", payment.ID).Msg("failed to insert audit entry")
		}
	}
	return payment, nil
}

func (s *PayrollService) History(ctx context.Context, email string) ([]*domain.PaymentRecord, error) {
	return s.repo.List(ctx, email)
}
