package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/Md-Rashedul-Islam-Rajib/Empuls-Server/internal/core/domain"
	"github.com/Md-Rashedul-Islam-Rajib/Empuls-Server/internal/pkg/metrics"
)

// Context keys set by Auth and RequireRole.
const (
	ContextKeyEmail  = "email"
	ContextKeyClaims = "claims"
	ContextKeyUser   = "user"
)

// TokenVerifier validates a raw bearer token.
type TokenVerifier interface {
	Verify(token string) (*domain.Identity, error)
}

// Auth validates the bearer token and injects the decoded identity into the
// context. It never touches the database.
func Auth(verifier TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				metrics.AuthRejectionsTotal.WithLabelValues("missing_header").Inc()
				return domain.ErrMissingToken
			}

			// "<scheme> <token>": the token is the second field.
			parts := strings.Fields(authHeader)
			if len(parts) < 2 {
				metrics.AuthRejectionsTotal.WithLabelValues("invalid_token").Inc()
				return domain.ErrInvalidToken
			}

			identity, err := verifier.Verify(parts[1])
			if err != nil {
				metrics.AuthRejectionsTotal.WithLabelValues("invalid_token").Inc()
				return domain.ErrInvalidToken
			}

			c.Set(ContextKeyEmail, identity.Email)
			c.Set(ContextKeyClaims, identity.Claims)

			return next(c)
		}
	}
}
