package middleware

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/Md-Rashedul-Islam-Rajib/Empuls-Server/internal/core/domain"
	"github.com/Md-Rashedul-Islam-Rajib/Empuls-Server/internal/pkg/metrics"
)

// RoleLookup resolves the stored user behind a verified email.
type RoleLookup interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
}

// RequireRole enforces role-based access control against the stored user
// record, read on every request so that role changes apply immediately.
// Must run after Auth. Missing users, other roles and fired accounts are
// rejected with domain.ErrForbidden.
func RequireRole(users RoleLookup, allowedRoles ...string) echo.MiddlewareFunc {
	label := strings.Join(allowedRoles, "|")

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			email, _ := c.Get(ContextKeyEmail).(string)
			if email == "" {
				return domain.ErrInvalidToken
			}

			user, err := users.FindByEmail(c.Request().Context(), email)
			if err != nil {
				if errors.Is(err, domain.ErrUserNotFound) {
					metrics.GuardDenialsTotal.WithLabelValues(label).Inc()
					return domain.ErrForbidden
				}
				return fmt.Errorf("role guard: %w", err)
			}
			if user.IsFired || !user.HasAnyRole(allowedRoles...) {
				metrics.GuardDenialsTotal.WithLabelValues(label).Inc()
				return domain.ErrForbidden
			}

			c.Set(ContextKeyUser, user)
			return next(c)
		}
	}
}

func VerifyEmployee(users RoleLookup) echo.MiddlewareFunc {
	return RequireRole(users, domain.RoleEmployee)
}

func VerifyHR(users RoleLookup) echo.MiddlewareFunc {
	return RequireRole(users, domain.RoleHR)
}

func VerifyAdmin(users RoleLookup) echo.MiddlewareFunc {
	return RequireRole(users, domain.RoleAdmin)
}

// Unless runs mw only for requests where skip returns false.
func Unless(skip func(c echo.Context) bool, mw echo.MiddlewareFunc) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		guarded := mw(next)
		return func(c echo.Context) error {
			if skip(c) {
				return next(c)
			}
			return guarded(c)
		}
	}
}
