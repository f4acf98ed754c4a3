package handler_test

import (
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/restu-food/api/internal/auth"
	"github.com/restu-food/api/internal/handler"
)

const testSecret = "test-secret"

func setupAuthRouter() *chi.Mux {
	h := handler.NewAuthHandler(testSecret)
	r := chi.NewRouter()
	h.RegisterRoutes(r)
	return r
}

// --- Login tests ---

func TestLogin_IssuesSessionToken(t *testing.T) {
	router := setupAuthRouter()

	rr := doRequest(t, router, "POST", "/auth/login", map[string]string{
		"email":    "jane@example.com",
		"password": "whatever",
	})

	if rr.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d; body: %s", rr.Code, http.StatusOK, rr.Body.String())
	}

	resp := decodeObject(t, rr)
	if resp["logged_in"] != true {
		t.Errorf("logged_in: got %v, want true", resp["logged_in"])
	}

	token, _ := resp["access_token"].(string)
	if token == "" {
		t.Fatal("expected non-empty access_token")
	}

	claims, err := auth.ValidateToken(testSecret, token)
	if err != nil {
		t.Fatalf("issued token failed validation: %v", err)
	}
	if claims.Email != "jane@example.com" {
		t.Errorf("token email: got %s, want jane@example.com", claims.Email)
	}
}

func TestLogin_EchoesUser(t *testing.T) {
	router := setupAuthRouter()

	rr := doRequest(t, router, "POST", "/auth/login", map[string]string{
		"email":    "jane@example.com",
		"password": "whatever",
	})

	resp := decodeObject(t, rr)
	user := resp["user"].(map[string]interface{})
	if user["email"] != "jane@example.com" {
		t.Errorf("user email: got %v, want jane@example.com", user["email"])
	}
}

func TestLogin_MissingFields(t *testing.T) {
	router := setupAuthRouter()

	rr := doRequest(t, router, "POST", "/auth/login", map[string]string{
		"email": "jane@example.com",
	})

	if rr.Code != http.StatusBadRequest {
		t.Errorf("status: got %d, want %d", rr.Code, http.StatusBadRequest)
	}
}

// --- Signup tests ---

func TestSignup_IssuesSessionToken(t *testing.T) {
	router := setupAuthRouter()

	rr := doRequest(t, router, "POST", "/auth/signup", map[string]string{
		"name":     "Jane Doe",
		"email":    "jane@example.com",
		"password": "whatever",
	})

	if rr.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d; body: %s", rr.Code, http.StatusOK, rr.Body.String())
	}

	resp := decodeObject(t, rr)
	token, _ := resp["access_token"].(string)
	claims, err := auth.ValidateToken(testSecret, token)
	if err != nil {
		t.Fatalf("issued token failed validation: %v", err)
	}
	if claims.Name != "Jane Doe" {
		t.Errorf("token name: got %s, want Jane Doe", claims.Name)
	}

	user := resp["user"].(map[string]interface{})
	if user["name"] != "Jane Doe" {
		t.Errorf("user name: got %v, want Jane Doe", user["name"])
	}
}

func TestSignup_MissingFields(t *testing.T) {
	router := setupAuthRouter()

	rr := doRequest(t, router, "POST", "/auth/signup", map[string]string{
		"email":    "jane@example.com",
		"password": "whatever",
	})

	if rr.Code != http.StatusBadRequest {
		t.Errorf("status: got %d, want %d", rr.Code, http.StatusBadRequest)
	}
}
