package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/restu-food/api/internal/auth"
	"github.com/restu-food/api/internal/middleware"
)

const testSecret = "test-secret"

func protectedHandler(t *testing.T) http.Handler {
	t.Helper()
	return middleware.Authenticate(testSecret)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims := middleware.ClaimsFromContext(r.Context())
		if claims == nil {
			t.Error("claims missing from context inside protected handler")
		}
		w.WriteHeader(http.StatusOK)
	}))
}

func TestAuthenticateMissingHeader(t *testing.T) {
	rr := httptest.NewRecorder()
	protectedHandler(t).ServeHTTP(rr, httptest.NewRequest("GET", "/", nil))

	if rr.Code != http.StatusUnauthorized {
		t.Errorf("status: got %d, want %d", rr.Code, http.StatusUnauthorized)
	}
}

func TestAuthenticateMalformedHeader(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Authorization", "Token abc")

	rr := httptest.NewRecorder()
	protectedHandler(t).ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Errorf("status: got %d, want %d", rr.Code, http.StatusUnauthorized)
	}
}

func TestAuthenticateInvalidToken(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")

	rr := httptest.NewRecorder()
	protectedHandler(t).ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Errorf("status: got %d, want %d", rr.Code, http.StatusUnauthorized)
	}
}

func TestAuthenticateValidToken(t *testing.T) {
	token, err := auth.GenerateToken(testSecret, "jane@example.com", "Jane Doe")
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	rr := httptest.NewRecorder()
	protectedHandler(t).ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Errorf("status: got %d, want %d", rr.Code, http.StatusOK)
	}
}
