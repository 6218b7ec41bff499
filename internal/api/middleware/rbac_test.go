package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/Md-Rashedul-Islam-Rajib/Empuls-Server/internal/core/domain"
)

type stubLookup struct {
	users map[string]*domain.User
	err   error
	calls int
}

func (s *stubLookup) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	if u, ok := s.users[email]; ok {
		clone := *u
		return &clone, nil
	}
	return nil, domain.ErrUserNotFound
}

func newLookup() *stubLookup {
	return &stubLookup{users: map[string]*domain.User{
		"admin@x.com": {Email: "admin@x.com", Role: domain.RoleAdmin},
		"hr@x.com":    {Email: "hr@x.com", Role: domain.RoleHR},
		"emp@x.com":   {Email: "emp@x.com", Role: domain.RoleEmployee},
		"fired@x.com": {Email: "fired@x.com", Role: domain.RoleHR, IsFired: true},
	}}
}

func guardedContext(email string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c := e.NewContext(req, httptest.NewRecorder())
	if email != "" {
		c.Set(ContextKeyEmail, email)
	}
	return c
}

func TestRequireRole_Allows(t *testing.T) {
	lookup := newLookup()
	c := guardedContext("hr@x.com")

	called := false
	handler := RequireRole(lookup, domain.RoleHR, domain.RoleAdmin)(func(c echo.Context) error {
		called = true
		if u, _ := c.Get(ContextKeyUser).(*domain.User); u == nil || u.Email != "hr@x.com" {
			t.Fatalf("user not set in context")
		}
		return nil
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next handler not called")
	}
	if lookup.calls != 1 {
		t.Fatalf("expected exactly one lookup, got %d", lookup.calls)
	}
}

func TestRequireRole_Forbids(t *testing.T) {
	cases := []struct {
		name  string
		email string
		guard func(RoleLookup) echo.MiddlewareFunc
	}{
		{"employee on HR route", "emp@x.com", VerifyHR},
		{"HR on admin route", "hr@x.com", VerifyAdmin},
		{"admin on employee route", "admin@x.com", VerifyEmployee},
		{"unknown user", "ghost@x.com", VerifyAdmin},
		{"fired HR", "fired@x.com", VerifyHR},
	}

	for _, tc := range cases {
		handler := tc.guard(newLookup())(func(c echo.Context) error {
			t.Fatalf("%s: should not reach next handler", tc.name)
			return nil
		})
		if err := handler(guardedContext(tc.email)); !errors.Is(err, domain.ErrForbidden) {
			t.Errorf("%s: expected ErrForbidden, got %v", tc.name, err)
		}
	}
}

func TestRequireRole_RereadsRoleEveryRequest(t *testing.T) {
	lookup := newLookup()
	guard := VerifyHR(lookup)(func(c echo.Context) error { return nil })

	if err := guard(guardedContext("emp@x.com")); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected forbidden before promotion, got %v", err)
	}
	lookup.users["emp@x.com"].Role = domain.RoleHR
	if err := guard(guardedContext("emp@x.com")); err != nil {
		t.Fatalf("expected promotion to apply immediately, got %v", err)
	}
}

func TestRequireRole_LookupError(t *testing.T) {
	lookup := newLookup()
	lookup.err = errors.New("db down")

	err := VerifyAdmin(lookup)(func(c echo.Context) error { return nil })(guardedContext("admin@x.com"))
	if err == nil || errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected internal error, got %v", err)
	}
}

func TestRequireRole_WithoutIdentity(t *testing.T) {
	err := VerifyAdmin(newLookup())(func(c echo.Context) error { return nil })(guardedContext(""))
	if !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestUnless(t *testing.T) {
	deny := func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error { return domain.ErrForbidden }
	}
	skipSelf := func(c echo.Context) bool { return c.QueryParam("email") == "me@x.com" }
	handler := Unless(skipSelf, deny)(func(c echo.Context) error { return nil })

	e := echo.New()
	self := e.NewContext(httptest.NewRequest(http.MethodGet, "/?email=me@x.com", nil), httptest.NewRecorder())
	if err := handler(self); err != nil {
		t.Fatalf("expected skip, got %v", err)
	}
	other := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	if err := handler(other); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected guarded path, got %v", err)
	}
}
