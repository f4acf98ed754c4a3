package auth_test

import (
	"testing"

	"github.com/restu-food/api/internal/auth"
)

func TestGenerateAndValidateToken(t *testing.T) {
	secret := "test-secret"

	token, err := auth.GenerateToken(secret, "jane@example.com", "Jane Doe")
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	claims, err := auth.ValidateToken(secret, token)
	if err != nil {
		t.Fatalf("validate token: %v", err)
	}

	if claims.Email != "jane@example.com" {
		t.Errorf("email: got %v, want jane@example.com", claims.Email)
	}
	if claims.Name != "Jane Doe" {
		t.Errorf("name: got %v, want Jane Doe", claims.Name)
	}
}

func TestValidateTokenWithWrongSecret(t *testing.T) {
	token, err := auth.GenerateToken("secret-a", "jane@example.com", "Jane Doe")
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	_, err = auth.ValidateToken("secret-b", token)
	if err == nil {
		t.Fatal("expected error validating with wrong secret")
	}
}

func TestValidateTokenWithInvalidString(t *testing.T) {
	_, err := auth.ValidateToken("secret", "not-a-jwt")
	if err == nil {
		t.Fatal("expected error validating invalid token string")
	}
}
