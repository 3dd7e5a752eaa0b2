package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"jobboard-backend/internal/authz"
	"jobboard-backend/internal/shared/auth"
)

func authRouter(t *testing.T, signer *auth.Signer) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Auth(signer))
	r.GET("/whoami", func(c *gin.Context) {
		p := PrincipalFromContext(c)
		c.JSON(http.StatusOK, gin.H{"id": p.ID, "name": p.Name, "role": string(p.Role)})
	})
	return r
}

func TestAuthAcceptsValidToken(t *testing.T) {
	signer := auth.NewSigner("test-secret", time.Hour)
	router := authRouter(t, signer)

	token, err := signer.Sign(auth.Claims{Sub: "emp-1", Name: "acme", Role: string(authz.RoleEmployer)})
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
}

func TestAuthRejectsMissingToken(t *testing.T) {
	signer := auth.NewSigner("test-secret", time.Hour)
	router := authRouter(t, signer)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.Code)
	}
}

func TestAuthRejectsUnknownRole(t *testing.T) {
	signer := auth.NewSigner("test-secret", time.Hour)
	router := authRouter(t, signer)

	token, err := signer.Sign(auth.Claims{Sub: "x-1", Name: "mystery", Role: "superuser"})
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for unknown role, got %d", resp.Code)
	}
}

func TestAuthRejectsTamperedToken(t *testing.T) {
	signer := auth.NewSigner("test-secret", time.Hour)
	router := authRouter(t, signer)

	other := auth.NewSigner("other-secret", time.Hour)
	token, err := other.Sign(auth.Claims{Sub: "emp-1", Role: string(authz.RoleEmployer)})
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for wrong signature, got %d", resp.Code)
	}
}
