package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/Md-Rashedul-Islam-Rajib/Empuls-Server/internal/core/domain"
	"github.com/Md-Rashedul-Islam-Rajib/Empuls-Server/internal/core/ports"
)

const messageScope = "messages"

type CatalogService struct {
	catalog  ports.CatalogRepository
	messages ports.MessageRepository
	idem     ports.IdempotencyStore
	log      zerolog.Logger
}

func NewCatalogService(catalog ports.CatalogRepository, messages ports.MessageRepository, idem ports.IdempotencyStore, log zerolog.Logger) *CatalogService {
	return &CatalogService{catalog: catalog, messages: messages, idem: idem, log: log}
}

func (s *CatalogService) Services(ctx context.Context) ([]domain.Document, error) {
	return s.catalog.ListServices(ctx)
}

func (s *CatalogService) Testimonials(ctx context.Context) ([]domain.Document, error) {
	return s.catalog.ListTestimonials(ctx)
}

func (s *CatalogService) PostMessage(ctx context.Context, in ports.PostMessageInput) (*domain.Message, error) {
	email := strings.TrimSpace(in.Email)
	if email == "" || strings.TrimSpace(in.Message) == "" {
		return nil, domain.ErrInvalidPayload
	}

	release, err := reserve(ctx, s.idem, messageScope, in.IdempotencyKey, s.log)
	if err != nil {
		return nil, err
	}

	msg := &domain.Message{Email: email, Message: in.Message}
	if err := s.messages.Create(ctx, msg); err != nil {
		release()
		return nil, fmt.Errorf("post message: %w", err)
	}
	return msg, nil
}

func (s *CatalogService) Messages(ctx context.Context) ([]*domain.Message, error) {
	return s.messages.List(ctx)
}
