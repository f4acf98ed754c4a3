package handler

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/restu-food/api/internal/auth"
)

// AuthHandler handles the login and signup endpoints. Both are stubs:
// credentials are logged and accepted without verification, mirroring the
// storefront's simulated auth flow. The issued token only marks the
// session as logged in.
type AuthHandler struct {
	jwtSecret string
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(jwtSecret string) *AuthHandler {
	return &AuthHandler{jwtSecret: jwtSecret}
}

// RegisterRoutes registers auth endpoints on the given Chi router.
func (h *AuthHandler) RegisterRoutes(r chi.Router) {
	r.Post("/auth/login", h.Login)
	r.Post("/auth/signup", h.Signup)
}

// --- Request / Response types ---

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type signupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type sessionResponse struct {
	AccessToken string       `json:"access_token"`
	LoggedIn    bool         `json:"logged_in"`
	User        userResponse `json:"user"`
}

type userResponse struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email"`
}

// --- Handlers ---

// Login accepts any email + password pair. The attempt is logged and a
// session token is returned; there is no credential store to check
// against.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	if req.Email == "" || req.Password == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "email and password are required"})
		return
	}

	log.Printf("login attempt for %s", req.Email)
	h.respondWithSession(w, req.Email, "")
}

// Signup accepts any name + email + password. Same stub behavior as Login.
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	if req.Name == "" || req.Email == "" || req.Password == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "name, email and password are required"})
		return
	}

	log.Printf("signup attempt for %s", req.Email)
	h.respondWithSession(w, req.Email, req.Name)
}

// --- Helpers ---

func (h *AuthHandler) respondWithSession(w http.ResponseWriter, email, name string) {
	token, err := auth.GenerateToken(h.jwtSecret, email, name)
	if err != nil {
		log.Printf("ERROR: generate session token: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}

	writeJSON(w, http.StatusOK, sessionResponse{
		AccessToken: token,
		LoggedIn:    true,
		User:        userResponse{Name: name, Email: email},
	})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("ERROR: failed to encode JSON response: %v", err)
	}
}
