package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/Md-Rashedul-Islam-Rajib/Empuls-Server/internal/core/domain"
	"github.com/Md-Rashedul-Islam-Rajib/Empuls-Server/internal/core/ports"
)

const workLogScope = "work-list"

type WorkLogService struct {
	repo  ports.WorkLogRepository
	idem  ports.IdempotencyStore
	log   zerolog.Logger
	clock func() time.Time
}

func NewWorkLogService(repo ports.WorkLogRepository, idem ports.IdempotencyStore, log zerolog.Logger) *WorkLogService {
	return &WorkLogService{repo: repo, idem: idem, log: log, clock: time.Now}
}

// Submit stores a new entry. A zero date is stamped with the current time.
func (s *WorkLogService) Submit(ctx context.Context, in ports.SubmitWorkLogInput) (*domain.WorkLogEntry, error) {
	email := strings.TrimSpace(in.Email)
	if email == "" {
		return nil, domain.ErrInvalidPayload
	}

	release, err := reserve(ctx, s.idem, workLogScope, in.IdempotencyKey, s.log)
	if err != nil {
		return nil, err
	}

	date := in.Date
	if date.IsZero() {
		date = s.clock()
	}
	entry := &domain.WorkLogEntry{
		Email:  email,
		Date:   date.UTC(),
		Fields: in.Fields,
	}
	if err := s.repo.Create(ctx, entry); err != nil {
		release()
		return nil, fmt.Errorf("submit work log: %w", err)
	}

	s.log.Debug().Str("email", email).Str("id", entry.ID).Msg("work log submitted")
	return entry, nil
}

func (s *WorkLogService) List(ctx context.Context, email string) ([]*domain.WorkLogEntry, error) {
	return s.repo.List(ctx, strings.TrimSpace(email))
}

// reserve claims an idempotency key. A store outage does not block the
// submission; a key seen before yields domain.ErrDuplicateSubmission.
// The returned release func frees the key and must be called when the
// submission is not persisted.
func reserve(ctx context.Context, store ports.IdempotencyStore, scope, key string, log zerolog.Logger) (func(), error) {
	noop := func() {}
	if store == nil || key == "" {
		return noop, nil
	}
	ok, err := store.Reserve(ctx, scope, key)
	if err != nil {
		log.Warn().Err(err).Str("scope", scope).Msg("idempotency check failed, processing anyway")
		return noop, nil
	}
	if !ok {
		log.Debug().Str("scope", scope).Str("key", key).Msg("duplicate submission skipped")
		return noop, domain.ErrDuplicateSubmission
	}
	return func() {
		// The request context may already be cancelled by the failure.
		if err := store.Release(context.WithoutCancel(ctx), scope, key); err != nil {
			log.Warn().Err(err).Str("scope", scope).Str("key", key).Msg("failed to release idempotency key")
		}
	}, nil
}
