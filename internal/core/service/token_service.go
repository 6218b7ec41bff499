package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/Md-Rashedul-Islam-Rajib/Empuls-Server/internal/core/domain"
	"github.com/Md-Rashedul-Islam-Rajib/Empuls-Server/internal/core/ports"
)

// DefaultTokenTTL is the lifetime of an issued token.
const DefaultTokenTTL = 6 * time.Hour

// TokenService signs identity payloads into HS256 tokens and verifies them.
// Verification is purely local; only issuance consults the user store.
type TokenService struct {
	users  ports.UserRepository
	secret []byte
	ttl    time.Duration
	now    func() time.Time
	log    zerolog.Logger
}

func NewTokenService(users ports.UserRepository, secret string, ttl time.Duration, log zerolog.Logger) *TokenService {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &TokenService{
		users:  users,
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
		log:    log,
	}
}

// Issue signs payload with an expiration of ttl from now. The payload must
// carry an email; fired accounts are refused.
func (s *TokenService) Issue(ctx context.Context, payload map[string]any) (string, error) {
	email, _ := payload["email"].(string)
	email = strings.TrimSpace(email)
	if email == "" {
		return "", domain.ErrInvalidPayload
	}

	if s.users != nil {
		user, err := s.users.FindByEmail(ctx, email)
		switch {
		case err == nil && user.IsFired:
			s.log.Info().Str("email", email).Msg("token refused for fired account")
			return "", domain.ErrAccountDisabled
		case err != nil && !errors.Is(err, domain.ErrUserNotFound):
			return "", fmt.Errorf("issue token: %w", err)
		}
	}

	now := s.now()
	claims := make(jwt.MapClaims, len(payload)+2)
	for k, v := range payload {
		claims[k] = v
	}
	claims["email"] = email
	claims["iat"] = now.Unix()
	claims["exp"] = now.Add(s.ttl).Unix()
	delete(claims, "nbf")

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}
	return signed, nil
}

// Verify checks signature and expiration and returns the decoded identity.
func (s *TokenService) Verify(token string) (*domain.Identity, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil || !tkn.Valid {
		return nil, domain.ErrInvalidToken
	}

	email, _ := claims["email"].(string)
	if email == "" {
		return nil, domain.ErrInvalidToken
	}
	return &domain.Identity{Email: email, Claims: claims}, nil
}
