package accounts

import (
	"context"
	"errors"
	"testing"
	"time"

	"jobboard-backend/internal/applicants"
	"jobboard-backend/internal/authz"
	"jobboard-backend/internal/cache"
	"jobboard-backend/internal/employers"
	"jobboard-backend/internal/shared/auth"
)

func newTestService() *Service {
	svc := NewService(
		employers.NewMemoryRepo(),
		applicants.NewMemoryRepo(),
		cache.New(cache.DefaultTTL()),
		auth.NewSigner("test-secret", time.Hour),
	)
	// MinCost keeps the bcrypt rounds cheap under test.
	svc.hashCost = 4
	return svc
}

func TestRegisterAndLoginRoundTrip(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	applicant, err := svc.RegisterApplicant(ctx, RegisterApplicantInput{
		Username: "jane",
		Email:    "jane@example.com",
		Password: "hunter2hunter2",
		Skills:   "go, sql",
	})
	if err != nil {
		t.Fatalf("RegisterApplicant: %v", err)
	}
	if applicant.PasswordHash == "hunter2hunter2" {
		t.Fatalf("password stored in clear")
	}

	token, err := svc.Login(ctx, "jane", "hunter2hunter2")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if token.Role != string(authz.RoleApplicant) || token.ID != applicant.ID {
		t.Fatalf("token = %+v, want applicant identity", token)
	}

	claims, err := svc.Signer.Verify(token.Token)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if claims.Sub != applicant.ID || claims.Name != "jane" || claims.Role != string(authz.RoleApplicant) {
		t.Fatalf("claims = %+v, want applicant identity", claims)
	}
}

func TestRegisterEmployerAndLogin(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	employer, err := svc.RegisterEmployer(ctx, RegisterEmployerInput{
		Username: "acme",
		Email:    "jobs@acme.example",
		Password: "rocket-skates",
		Location: "Albuquerque",
	})
	if err != nil {
		t.Fatalf("RegisterEmployer: %v", err)
	}

	token, err := svc.Login(ctx, "acme", "rocket-skates")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if token.Role != string(authz.RoleEmployer) || token.ID != employer.ID {
		t.Fatalf("token = %+v, want employer identity", token)
	}
}

func TestRegisterDuplicateUsernameAcrossKinds(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	if _, err := svc.RegisterApplicant(ctx, RegisterApplicantInput{
		Username: "pat", Email: "pat@example.com", Password: "pw",
	}); err != nil {
		t.Fatalf("RegisterApplicant: %v", err)
	}

	// Same kind.
	if _, err := svc.RegisterApplicant(ctx, RegisterApplicantInput{
		Username: "pat", Email: "pat2@example.com", Password: "pw",
	}); !errors.Is(err, ErrUsernameTaken) {
		t.Fatalf("err = %v, want ErrUsernameTaken", err)
	}
	// Other kind shares the namespace.
	if _, err := svc.RegisterEmployer(ctx, RegisterEmployerInput{
		Username: "pat", Email: "pat@corp.example", Password: "pw",
	}); !errors.Is(err, ErrUsernameTaken) {
		t.Fatalf("cross-kind err = %v, want ErrUsernameTaken", err)
	}
}

func TestRegisterValidation(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()
	cases := []RegisterApplicantInput{
		{Email: "a@b.c", Password: "pw"},
		{Username: "x", Password: "pw"},
		{Username: "x", Email: "a@b.c"},
	}
	for _, in := range cases {
		if _, err := svc.RegisterApplicant(ctx, in); !errors.Is(err, ErrValidation) {
			t.Fatalf("input %+v: err = %v, want ErrValidation", in, err)
		}
	}
}

func TestLoginFailures(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	if _, err := svc.RegisterApplicant(ctx, RegisterApplicantInput{
		Username: "jane", Email: "jane@example.com", Password: "correct",
	}); err != nil {
		t.Fatalf("RegisterApplicant: %v", err)
	}

	// Unknown username is absence, not a credential failure.
	if _, err := svc.Login(ctx, "ghost", "whatever"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("unknown user err = %v, want ErrNotFound", err)
	}
	if _, err := svc.Login(ctx, "jane", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("wrong password err = %v, want ErrInvalidCredentials", err)
	}
}
