package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"testing"

	"github.com/rs/zerolog"

	"github.com/Md-Rashedul-Islam-Rajib/Empuls-Server/internal/core/domain"
	"github.com/Md-Rashedul-Islam-Rajib/Empuls-Server/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stub repositories
// ---------------------------------------------------------------------------

type stubUserRepo struct {
	byID    map[string]*domain.User
	nextID  int
	findErr error // if set, FindByEmail returns this error
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{byID: make(map[string]*domain.User)}
}

func (r *stubUserRepo) seed(u domain.User) *domain.User {
	r.nextID++
	u.ID = fmt.Sprintf("%024x", r.nextID)
	clone := u
	r.byID[u.ID] = &clone
	return &u
}

func (r *stubUserRepo) CreateIfAbsent(_ context.Context, u *domain.User) (*domain.User, bool, error) {
	for _, existing := range r.byID {
		if existing.Email == u.Email {
			clone := *existing
			return &clone, false, nil
		}
	}
	return r.seed(*u), true, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	for _, u := range r.byID {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) List(_ context.Context) ([]*domain.User, error) {
	out := make([]*domain.User, 0, len(r.byID))
	for _, u := range r.byID {
		clone := *u
		out = append(out, &clone)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *stubUserRepo) update(id string, fn func(u *domain.User) error) (*domain.User, error) {
	u, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	if err := fn(u); err != nil {
		return nil, err
	}
	clone := *u
	return &clone, nil
}

func (r *stubUserRepo) MarkVerified(_ context.Context, id string) (*domain.User, error) {
	return r.update(id, func(u *domain.User) error { u.IsVerified = true; return nil })
}

func (r *stubUserRepo) MarkFired(_ context.Context, id string) (*domain.User, error) {
	return r.update(id, func(u *domain.User) error { u.IsFired = true; return nil })
}

func (r *stubUserRepo) SetRole(_ context.Context, id, role string) (*domain.User, error) {
	return r.update(id, func(u *domain.User) error { u.Role = role; return nil })
}

// RaiseSalary mirrors the conditional write of the Mongo repository.
func (r *stubUserRepo) RaiseSalary(_ context.Context, id string, salary float64) (*domain.User, error) {
	return r.update(id, func(u *domain.User) error {
		if salary < u.Salary {
			return domain.ErrSalaryDecrease
		}
		u.Salary = salary
		return nil
	})
}

type stubAuditRepo struct {
	entries   []*domain.AuditEntry
	insertErr error
}

func (r *stubAuditRepo) Insert(_ context.Context, e *domain.AuditEntry) error {
	if r.insertErr != nil {
		return r.insertErr
	}
	r.entries = append(r.entries, e)
	return nil
}

var discardLogger = zerolog.Nop()

// ---------------------------------------------------------------------------
// Register tests
// ---------------------------------------------------------------------------

func TestUserService_Register_CreatesOnce(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, &stubAuditRepo{}, discardLogger)

	in := ports.RegisterUserInput{Name: "Ana", Email: "ana@example.com", Role: domain.RoleEmployee, Salary: 1000}

	first, created, err := svc.Register(context.Background(), in)
	if err != nil {
		t.Fatalf("first register: %v", err)
	}
	if !created {
		t.Fatal("expected first signup to create the user")
	}

	second, created, err := svc.Register(context.Background(), in)
	if err != nil {
		t.Fatalf("second register must not fail: %v", err)
	}
	if created {
		t.Fatal("expected second signup to report an existing user")
	}
	if second.ID != first.ID {
		t.Errorf("expected the stored record back, got id %q want %q", second.ID, first.ID)
	}
	if len(repo.byID) != 1 {
		t.Errorf("expected 1 stored user, got %d", len(repo.byID))
	}
}

func TestUserService_Register_RequiresEmail(t *testing.T) {
	svc := NewUserService(newStubUserRepo(), nil, discardLogger)

	if _, _, err := svc.Register(context.Background(), ports.RegisterUserInput{Name: "x"}); !errors.Is(err, domain.ErrInvalidPayload) {
		t.Fatalf("expected ErrInvalidPayload, got %v", err)
	}
}

func TestUserService_Register_DefaultsToEmployee(t *testing.T) {
	svc := NewUserService(newStubUserRepo(), nil, discardLogger)

	user, _, err := svc.Register(context.Background(), ports.RegisterUserInput{Email: "new@x.com"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if user.Role != domain.RoleEmployee {
		t.Fatalf("expected role %q, got %q", domain.RoleEmployee, user.Role)
	}
}

func TestUserService_Register_RejectsPrivilegedOrUnknownRole(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, nil, discardLogger)

	for _, role := range []string{domain.RoleAdmin, "superuser", "hr"} {
		_, _, err := svc.Register(context.Background(), ports.RegisterUserInput{Email: role + "@x.com", Role: role})
		if !errors.Is(err, domain.ErrInvalidRole) {
			t.Errorf("role %q: expected ErrInvalidRole, got %v", role, err)
		}
	}
	if len(repo.byID) != 0 {
		t.Fatalf("rejected signups must not be stored, got %d users", len(repo.byID))
	}
}

// ---------------------------------------------------------------------------
// Salary tests
// ---------------------------------------------------------------------------

func TestUserService_UpdateSalary_RejectsDecrease(t *testing.T) {
	repo := newStubUserRepo()
	audit := &stubAuditRepo{}
	u := repo.seed(domain.User{Email: "e@example.com", Salary: 5000})
	svc := NewUserService(repo, audit, discardLogger)

	_, err := svc.UpdateSalary(context.Background(), "hr@example.com", u.ID, 4000)
	if !errors.Is(err, domain.ErrSalaryDecrease) {
		t.Fatalf("expected ErrSalaryDecrease, got %v", err)
	}
	if got := repo.byID[u.ID].Salary; got != 5000 {
		t.Errorf("salary must be unchanged, got %v", got)
	}
	if len(audit.entries) != 0 {
		t.Errorf("rejected update must not be audited, got %d entries", len(audit.entries))
	}
}

func TestUserService_UpdateSalary_AcceptsEqualOrHigher(t *testing.T) {
	repo := newStubUserRepo()
	audit := &stubAuditRepo{}
	u := repo.seed(domain.User{Email: "e@example.com", Salary: 5000})
	svc := NewUserService(repo, audit, discardLogger)

	for _, salary := range []float64{5000, 6500} {
		updated, err := svc.UpdateSalary(context.Background(), "hr@example.com", u.ID, salary)
		if err != nil {
			t.Fatalf("salary %v: unexpected error %v", salary, err)
		}
		if updated.Salary != salary {
			t.Errorf("expected returned salary %v, got %v", salary, updated.Salary)
		}
	}
	if got := repo.byID[u.ID].Salary; got != 6500 {
		t.Errorf("expected stored salary 6500, got %v", got)
	}
	if len(audit.entries) != 2 || audit.entries[0].Action != domain.AuditSalaryUpdated {
		t.Errorf("expected 2 salary audit entries, got %+v", audit.entries)
	}
}

func TestUserService_UpdateSalary_UnknownID(t *testing.T) {
	svc := NewUserService(newStubUserRepo(), nil, discardLogger)

	if _, err := svc.UpdateSalary(context.Background(), "hr@example.com", "ffffffffffffffffffffffff", 10); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// Administrative mutations
// ---------------------------------------------------------------------------

func TestUserService_GrantHR(t *testing.T) {
	repo := newStubUserRepo()
	audit := &stubAuditRepo{}
	u := repo.seed(domain.User{Email: "a@x.com", Role: domain.RoleEmployee})
	svc := NewUserService(repo, audit, discardLogger)

	isHR, _ := svc.HasRole(context.Background(), "a@x.com", domain.RoleHR)
	if isHR {
		t.Fatal("expected HR=false before grant")
	}

	if _, err := svc.GrantHR(context.Background(), "admin@x.com", u.ID); err != nil {
		t.Fatalf("grant HR: %v", err)
	}

	isHR, err := svc.HasRole(context.Background(), "a@x.com", domain.RoleHR)
	if err != nil || !isHR {
		t.Fatalf("expected HR=true after grant, got %v (err %v)", isHR, err)
	}
	if len(audit.entries) != 1 || audit.entries[0].Actor != "admin@x.com" || audit.entries[0].TargetID != u.ID {
		t.Errorf("unexpected audit trail: %+v", audit.entries)
	}
}

func TestUserService_VerifyAndFire(t *testing.T) {
	repo := newStubUserRepo()
	u := repo.seed(domain.User{Email: "e@x.com"})
	svc := NewUserService(repo, &stubAuditRepo{}, discardLogger)

	verified, err := svc.Verify(context.Background(), "admin@x.com", u.ID)
	if err != nil || !verified.IsVerified {
		t.Fatalf("verify: %+v, %v", verified, err)
	}
	fired, err := svc.Fire(context.Background(), "admin@x.com", u.ID)
	if err != nil || !fired.IsFired {
		t.Fatalf("fire: %+v, %v", fired, err)
	}
}

func TestUserService_MutationsOnUnknownIDDoNotCreate(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, &stubAuditRepo{}, discardLogger)
	ghost := "0123456789abcdef01234567"

	if _, err := svc.Verify(context.Background(), "a", ghost); !errors.Is(err, domain.ErrUserNotFound) {
		t.Errorf("verify: expected ErrUserNotFound, got %v", err)
	}
	if _, err := svc.Fire(context.Background(), "a", ghost); !errors.Is(err, domain.ErrUserNotFound) {
		t.Errorf("fire: expected ErrUserNotFound, got %v", err)
	}
	if _, err := svc.GrantHR(context.Background(), "a", ghost); !errors.Is(err, domain.ErrUserNotFound) {
		t.Errorf("grant: expected ErrUserNotFound, got %v", err)
	}
	if len(repo.byID) != 0 {
		t.Errorf("no record may be created by a failed update, got %d", len(repo.byID))
	}
}

func TestUserService_AuditFailureIsNotFatal(t *testing.T) {
	repo := newStubUserRepo()
	u := repo.seed(domain.User{Email: "e@x.com"})
	svc := NewUserService(repo, &stubAuditRepo{insertErr: errors.New("audit down")}, discardLogger)

	if _, err := svc.Verify(context.Background(), "admin@x.com", u.ID); err != nil {
		t.Fatalf("audit failure must not fail the mutation: %v", err)
	}
}

func TestUserService_HasRole_UnknownUser(t *testing.T) {
	svc := NewUserService(newStubUserRepo(), nil, discardLogger)

	ok, err := svc.HasRole(context.Background(), "nobody@x.com", domain.RoleAdmin)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Fatal("unknown users hold no role")
	}
}
