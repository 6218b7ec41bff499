package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/Md-Rashedul-Islam-Rajib/Empuls-Server/internal/core/domain"
	"github.com/Md-Rashedul-Islam-Rajib/Empuls-Server/internal/core/ports"
	"github.com/Md-Rashedul-Islam-Rajib/Empuls-Server/internal/pkg/metrics"
)

// UserService implements signup, lookups and the administrative user mutations.
type UserService struct {
	repo  ports.UserRepository
	audit ports.AuditRepository
	log   zerolog.Logger
}

func NewUserService(repo ports.UserRepository, audit ports.AuditRepository, log zerolog.Logger) *UserService {
	return &UserService{repo: repo, audit: audit, log: log}
}

// Register creates the user on first signup. A second signup with the same
// email returns the stored record with created=false and no write.
func (s *UserService) Register(ctx context.Context, in ports.RegisterUserInput) (*domain.User, bool, error) {
	email := strings.TrimSpace(in.Email)
	if email == "" {
		return nil, false, domain.ErrInvalidPayload
	}

	role, err := signupRole(in.Role)
	if err != nil {
		return nil, false, err
	}

	user, created, err := s.repo.CreateIfAbsent(ctx, &domain.User{
		Name:          in.Name,
		Email:         email,
		Role:          role,
		Image:         in.Image,
		BankAccountNo: in.BankAccountNo,
		Salary:        in.Salary,
		Designation:   in.Designation,
	})
	if err != nil {
		return nil, false, fmt.Errorf("register user: %w", err)
	}

	if created {
		metrics.UsersRegisteredTotal.WithLabelValues("created").Inc()
		s.log.Info().Str("email", email).Str("role", user.Role).Msg("user registered")
	} else {
		metrics.UsersRegisteredTotal.WithLabelValues("existing").Inc()
		s.log.Debug().Str("email", email).Msg("signup for existing user")
	}
	return user, created, nil
}

// signupRole resolves the role a new account starts with. Admin is never
// self-assigned; it is only seeded in storage.
func signupRole(role string) (string, error) {
	switch role {
	case "":
		return domain.RoleEmployee, nil
	case domain.RoleEmployee, domain.RoleHR:
		return role, nil
	default:
		return "", domain.ErrInvalidRole
	}
}

func (s *UserService) Get(ctx context.Context, email string) (*domain.User, error) {
	return s.repo.FindByEmail(ctx, email)
}

func (s *UserService) List(ctx context.Context) ([]*domain.User, error) {
	return s.repo.List(ctx)
}

func (s *UserService) HasRole(ctx context.Context, email, role string) (bool, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return false, nil
		}
		return false, err
	}
	return user.Role == role, nil
}

func (s *UserService) Verify(ctx context.Context, actor, id string) (*domain.User, error) {
	user, err := s.repo.MarkVerified(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("verify user: %w", err)
	}
	s.record(ctx, domain.AuditUserVerified, actor, id, nil)
	return user, nil
}

func (s *UserService) Fire(ctx context.Context, actor, id string) (*domain.User, error) {
	user, err := s.repo.MarkFired(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("fire user: %w", err)
	}
	s.record(ctx, domain.AuditUserFired, actor, id, nil)
	return user, nil
}

func (s *UserService) GrantHR(ctx context.Context, actor, id string) (*domain.User, error) {
	user, err := s.repo.SetRole(ctx, id, domain.RoleHR)
	if err != nil {
		return nil, fmt.Errorf("grant HR: %w", err)
	}
	s.record(ctx, domain.AuditRoleGranted, actor, id, map[string]any{"role": domain.RoleHR})
	return user, nil
}

// UpdateSalary sets a new salary unless it is lower than the stored one.
func (s *UserService) UpdateSalary(ctx context.Context, actor, id string, salary float64) (*domain.User, error) {
	if salary < 0 {
		return nil, domain.ErrInvalidPayload
	}

	user, err := s.repo.RaiseSalary(ctx, id, salary)
	if err != nil {
		if errors.Is(err, domain.ErrSalaryDecrease) {
			metrics.SalaryUpdatesTotal.WithLabelValues("rejected").Inc()
		}
		return nil, fmt.Errorf("update salary: %w", err)
	}

	metrics.SalaryUpdatesTotal.WithLabelValues("applied").Inc()
	s.record(ctx, domain.AuditSalaryUpdated, actor, id, map[string]any{"salary": salary})
	return user, nil
}

// record appends to the audit trail. Failures are logged, never returned:
// the mutation has already been committed.
func (s *UserService) record(ctx context.Context, action, actor, target string, details map[string]any) {
	if s.audit == nil {
		return
	}
	entry := &domain.AuditEntry{
		Action:   action,
		Actor:    actor,
		TargetID: target,
		Details:  details,
		At:       time.Now().UTC(),
	}
	if err := s.audit.Insert(ctx, entry); err != nil {
		s.log.Warn().Err(err).Str("action", action).Str("target", target).Msg("failed to insert audit entry")
		return
	}
	s.log.Info().Str("action", action).Str("actor", actor).Str("target", target).Msg("user updated")
}
