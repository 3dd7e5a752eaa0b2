package accounts

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"jobboard-backend/internal/applicants"
	"jobboard-backend/internal/authz"
	"jobboard-backend/internal/cache"
	"jobboard-backend/internal/employers"
	"jobboard-backend/internal/shared/auth"
	"jobboard-backend/internal/shared/telemetry"
)

// Service registers principals and issues session tokens. It writes through
// the employer and applicant repositories directly; the read services only
// ever see invalidated cache keys.
type Service struct {
	Employers  employers.Repo
	Applicants applicants.Repo
	Cache      *cache.Cache
	Signer     *auth.Signer
	hashCost   int
	now        func() time.Time
}

func NewService(employerRepo employers.Repo, applicantRepo applicants.Repo, c *cache.Cache, signer *auth.Signer) *Service {
	return &Service{
		Employers:  employerRepo,
		Applicants: applicantRepo,
		Cache:      c,
		Signer:     signer,
		hashCost:   bcrypt.DefaultCost,
		now:        time.Now,
	}
}

// RegisterEmployerInput carries a new employer registration.
type RegisterEmployerInput struct {
	Username              string `json:"username"`
	Email                 string `json:"email"`
	Password              string `json:"password"`
	Location              string `json:"location"`
	AdditionalContactInfo string `json:"additionalContactInfo"`
}

// RegisterApplicantInput carries a new applicant registration.
type RegisterApplicantInput struct {
	Username   string `json:"username"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	Experience string `json:"experience"`
	Skills     string `json:"skills"`
}

// TokenResponse is the login payload.
type TokenResponse struct {
	Token string `json:"token"`
	Role  string `json:"role"`
	ID    string `json:"id"`
	Name  string `json:"name"`
}

func validateCredentials(username, email, password string) error {
	if strings.TrimSpace(username) == "" {
		return fmt.Errorf("%w: username is required", ErrValidation)
	}
	if strings.TrimSpace(email) == "" {
		return fmt.Errorf("%w: email is required", ErrValidation)
	}
	if password == "" {
		return fmt.Errorf("%w: password is required", ErrValidation)
	}
	return nil
}

func (s *Service) usernameTaken(ctx context.Context, username string) (bool, error) {
	if taken, err := s.Employers.ExistsByName(ctx, username); err != nil || taken {
		return taken, err
	}
	return s.Applicants.ExistsByName(ctx, username)
}

// RegisterEmployer creates an employer account.
func (s *Service) RegisterEmployer(ctx context.Context, in RegisterEmployerInput) (employers.Employer, error) {
	if err := validateCredentials(in.Username, in.Email, in.Password); err != nil {
		return employers.Employer{}, err
	}
	taken, err := s.usernameTaken(ctx, in.Username)
	if err != nil {
		return employers.Employer{}, fmt.Errorf("check username: %w", err)
	}
	if taken {
		return employers.Employer{}, ErrUsernameTaken
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.hashCost)
	if err != nil {
		return employers.Employer{}, fmt.Errorf("hash password: %w", err)
	}
	employer := employers.Employer{
		ID:                    uuid.NewString(),
		Username:              in.Username,
		Email:                 in.Email,
		PasswordHash:          string(hash),
		Location:              in.Location,
		AdditionalContactInfo: in.AdditionalContactInfo,
		CreatedAt:             s.now(),
	}
	if err := s.Employers.Create(ctx, employer); err != nil {
		return employers.Employer{}, fmt.Errorf("create employer: %w", err)
	}
	s.Cache.Invalidate(cache.KeyAllEmployers)
	telemetry.Info("account.registered", map[string]any{"role": string(authz.RoleEmployer), "id": employer.ID})
	return employer, nil
}

// RegisterApplicant creates an applicant account.
func (s *Service) RegisterApplicant(ctx context.Context, in RegisterApplicantInput) (applicants.Applicant, error) {
	if err := validateCredentials(in.Username, in.Email, in.Password); err != nil {
		return applicants.Applicant{}, err
	}
	taken, err := s.usernameTaken(ctx, in.Username)
	if err != nil {
		return applicants.Applicant{}, fmt.Errorf("check username: %w", err)
	}
	if taken {
		return applicants.Applicant{}, ErrUsernameTaken
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.hashCost)
	if err != nil {
		return applicants.Applicant{}, fmt.Errorf("hash password: %w", err)
	}
	applicant := applicants.Applicant{
		ID:           uuid.NewString(),
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: string(hash),
		Experience:   in.Experience,
		Skills:       in.Skills,
		CreatedAt:    s.now(),
	}
	if err := s.Applicants.Create(ctx, applicant); err != nil {
		return applicants.Applicant{}, fmt.Errorf("create applicant: %w", err)
	}
	s.Cache.Invalidate(cache.KeyAllApplicants)
	telemetry.Info("account.registered", map[string]any{"role": string(authz.RoleApplicant), "id": applicant.ID})
	return applicant, nil
}

// Login resolves a username against both principal kinds and issues a
// session token. An unknown username and a wrong password fail differently:
// the first is absence, the second is a credential failure.
func (s *Service) Login(ctx context.Context, username, password string) (TokenResponse, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return TokenResponse{}, fmt.Errorf("%w: username and password are required", ErrValidation)
	}

	var (
		id, name, hash string
		role           authz.Role
	)
	if applicant, err := s.Applicants.GetByName(ctx, username); err == nil {
		id, name, hash, role = applicant.ID, applicant.Username, applicant.PasswordHash, authz.RoleApplicant
	} else if !errors.Is(err, applicants.ErrNotFound) {
		return TokenResponse{}, fmt.Errorf("load applicant: %w", err)
	} else if employer, err := s.Employers.GetByName(ctx, username); err == nil {
		id, name, hash, role = employer.ID, employer.Username, employer.PasswordHash, authz.RoleEmployer
	} else if !errors.Is(err, employers.ErrNotFound) {
		return TokenResponse{}, fmt.Errorf("load employer: %w", err)
	} else {
		return TokenResponse{}, ErrNotFound
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return TokenResponse{}, ErrInvalidCredentials
	}
	token, err := s.Signer.Sign(auth.Claims{Sub: id, Name: name, Role: string(role)})
	if err != nil {
		return TokenResponse{}, fmt.Errorf("sign token: %w", err)
	}
	return TokenResponse{Token: token, Role: string(role), ID: id, Name: name}, nil
}
