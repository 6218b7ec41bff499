package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Md-Rashedul-Islam-Rajib/Empuls-Server/internal/core/domain"
)

func TestTokenService_IssueAndVerify(t *testing.T) {
	svc := NewTokenService(newStubUserRepo(), "secret", 0, discardLogger)

	token, err := svc.Issue(context.Background(), map[string]any{"email": "a@x.com", "name": "A"})
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	id, err := svc.Verify(token)
	if err != nil {
		t.Fatalf("Verify returned error: %v", err)
	}
	if id.Email != "a@x.com" {
		t.Fatalf("unexpected email: %s", id.Email)
	}
	if id.Claims["name"] != "A" {
		t.Fatalf("payload not preserved: %+v", id.Claims)
	}

	exp, ok := id.Claims["exp"].(float64)
	if !ok {
		t.Fatalf("exp claim missing: %+v", id.Claims)
	}
	if diff := time.Unix(int64(exp), 0).Sub(time.Now().Add(6 * time.Hour)); diff > time.Minute || diff < -time.Minute {
		t.Fatalf("expected exp about 6h from now, off by %v", diff)
	}
}

func TestTokenService_Issue_RequiresEmail(t *testing.T) {
	svc := NewTokenService(nil, "secret", time.Hour, discardLogger)

	if _, err := svc.Issue(context.Background(), map[string]any{"name": "A"}); !errors.Is(err, domain.ErrInvalidPayload) {
		t.Fatalf("expected ErrInvalidPayload, got %v", err)
	}
}

func TestTokenService_Issue_RefusesFiredAccount(t *testing.T) {
	repo := newStubUserRepo()
	repo.seed(domain.User{Email: "gone@x.com", IsFired: true})
	svc := NewTokenService(repo, "secret", time.Hour, discardLogger)

	if _, err := svc.Issue(context.Background(), map[string]any{"email": "gone@x.com"}); !errors.Is(err, domain.ErrAccountDisabled) {
		t.Fatalf("expected ErrAccountDisabled, got %v", err)
	}
}

func TestTokenService_Issue_RepoError(t *testing.T) {
	repo := newStubUserRepo()
	repo.findErr = errors.New("db unavailable")
	svc := NewTokenService(repo, "secret", time.Hour, discardLogger)

	if _, err := svc.Issue(context.Background(), map[string]any{"email": "a@x.com"}); err == nil {
		t.Fatal("expected error when repo fails, got nil")
	}
}

func TestTokenService_Verify_Expired(t *testing.T) {
	svc := NewTokenService(nil, "secret", DefaultTokenTTL, discardLogger)
	svc.now = func() time.Time { return time.Now().Add(-7 * time.Hour) }

	token, err := svc.Issue(context.Background(), map[string]any{"email": "a@x.com"})
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	svc.now = time.Now
	if _, err := svc.Verify(token); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for token issued 7h ago, got %v", err)
	}
}

func TestTokenService_Verify_Rejects(t *testing.T) {
	svc := NewTokenService(nil, "secret", time.Hour, discardLogger)

	otherSecret, _ := NewTokenService(nil, "other", time.Hour, discardLogger).
		Issue(context.Background(), map[string]any{"email": "a@x.com"})

	hs512, _ := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.MapClaims{
		"email": "a@x.com",
		"exp":   time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte("secret"))

	noExp, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"email": "a@x.com",
	}).SignedString([]byte("secret"))

	noEmail, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte("secret"))

	cases := map[string]string{
		"wrong secret":   otherSecret,
		"wrong method":   hs512,
		"no expiration":  noExp,
		"no email claim": noEmail,
		"malformed":      "not-a-token",
		"empty":          "",
	}
	for name, token := range cases {
		if _, err := svc.Verify(token); !errors.Is(err, domain.ErrInvalidToken) {
			t.Errorf("%s: expected ErrInvalidToken, got %v", name, err)
		}
	}
}
