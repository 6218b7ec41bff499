package handler

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/Md-Rashedul-Islam-Rajib/Empuls-Server/internal/api/middleware"
	"github.com/Md-Rashedul-Islam-Rajib/Empuls-Server/internal/core/domain"
	"github.com/Md-Rashedul-Islam-Rajib/Empuls-Server/internal/core/ports"
)

const testUserID = "65f1c2a3b4d5e6f708192a3b"

func newContext(method, target, body, caller string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()

	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if caller != "" {
		c.Set(middleware.ContextKeyEmail, caller)
	}
	return c, rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), v); err != nil {
		t.Fatalf("invalid json %q: %v", rec.Body.String(), err)
	}
}

func httpStatus(err error) int {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code
	}
	return 0
}

type stubTokenService struct {
	issueFn func(ctx context.Context, payload map[string]any) (string, error)
}

func (s *stubTokenService) Issue(ctx context.Context, payload map[string]any) (string, error) {
	return s.issueFn(ctx, payload)
}

func (s *stubTokenService) Verify(string) (*domain.Identity, error) {
	return nil, domain.ErrInvalidToken
}

type stubUserService struct {
	registerFn func(ctx context.Context, in ports.RegisterUserInput) (*domain.User, bool, error)
	getFn      func(ctx context.Context, email string) (*domain.User, error)
	listFn     func(ctx context.Context) ([]*domain.User, error)
	hasRoleFn  func(ctx context.Context, email, role string) (bool, error)
	mutateFn   func(op, actor, id string) (*domain.User, error)
	salaryFn   func(ctx context.Context, actor, id string, salary float64) (*domain.User, error)
}

func (s *stubUserService) Register(ctx context.Context, in ports.RegisterUserInput) (*domain.User, bool, error) {
	return s.registerFn(ctx, in)
}

func (s *stubUserService) Get(ctx context.Context, email string) (*domain.User, error) {
	return s.getFn(ctx, email)
}

func (s *stubUserService) List(ctx context.Context) ([]*domain.User, error) {
	return s.listFn(ctx)
}

func (s *stubUserService) HasRole(ctx context.Context, email, role string) (bool, error) {
	return s.hasRoleFn(ctx, email, role)
}

func (s *stubUserService) Verify(_ context.Context, actor, id string) (*domain.User, error) {
	return s.mutateFn("verify", actor, id)
}

func (s *stubUserService) Fire(_ context.Context, actor, id string) (*domain.User, error) {
	return s.mutateFn("fire", actor, id)
}

func (s *stubUserService) GrantHR(_ context.Context, actor, id string) (*domain.User, error) {
	return s.mutateFn("hr", actor, id)
}

func (s *stubUserService) UpdateSalary(ctx context.Context, actor, id string, salary float64) (*domain.User, error) {
	return s.salaryFn(ctx, actor, id, salary)
}

type stubPayrollService struct {
	recordFn  func(ctx context.Context, in ports.RecordPaymentInput) (*domain.PaymentRecord, error)
	historyFn func(ctx context.Context, email string) ([]*domain.PaymentRecord, error)
}

func (s *stubPayrollService) RecordPayment(ctx context.Context, in ports.RecordPaymentInput) (*domain.PaymentRecord, error) {
	return s.recordFn(ctx, in)
}

func (s *stubPayrollService) History(ctx context.Context, email string) ([]*domain.PaymentRecord, error) {
	return s.historyFn(ctx, email)
}

type stubWorkLogService struct {
	submitFn func(ctx context.Context, in ports.SubmitWorkLogInput) (*domain.WorkLogEntry, error)
	listFn   func(ctx context.Context, email string) ([]*domain.WorkLogEntry, error)
}

func (s *stubWorkLogService) Submit(ctx context.Context, in ports.SubmitWorkLogInput) (*domain.WorkLogEntry, error) {
	return s.submitFn(ctx, in)
}

func (s *stubWorkLogService) List(ctx context.Context, email string) ([]*domain.WorkLogEntry, error) {
	return s.listFn(ctx, email)
}

type stubCatalogService struct {
	postFn func(ctx context.Context, in ports.PostMessageInput) (*domain.Message, error)
}

func (s *stubCatalogService) Services(context.Context) ([]domain.Document, error) {
	return []domain.Document{{"name": "payroll"}}, nil
}

func (s *stubCatalogService) Testimonials(context.Context) ([]domain.Document, error) {
	return []domain.Document{}, nil
}

func (s *stubCatalogService) PostMessage(ctx context.Context, in ports.PostMessageInput) (*domain.Message, error) {
	return s.postFn(ctx, in)
}

func (s *stubCatalogService) Messages(context.Context) ([]*domain.Message, error) {
	return []*domain.Message{{ID: "m1", Email: "v@x.com", Message: "hi"}}, nil
}
