package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/pragati-coe/facultyhub/internal/app/models"
)

func testJWTService(exp time.Duration) *JWTService {
	return NewJWTService(JWTConfig{
		SecretKey:      "test-secret-key",
		AccessTokenExp: exp,
		TokenIssuer:    "facultyhub-test",
	})
}

func testUser() *models.User {
	return &models.User{
		ID:        42,
		Username:  "rkumar",
		Email:     "ravi.kumar@example.edu",
		RoleToken: "editor",
	}
}

func TestGenerateAndValidateToken(t *testing.T) {
	svc := testJWTService(time.Hour)

	token, expiresIn, err := svc.GenerateToken(testUser())
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if expiresIn != 3600 {
		t.Errorf("expiresIn = %d, want 3600", expiresIn)
	}

	claims, err := svc.ValidateAndExtractClaims(token)
	if err != nil {
		t.Fatalf("ValidateAndExtractClaims: %v", err)
	}
	if claims.UserID != 42 || claims.Email != "ravi.kumar@example.edu" || claims.RoleToken != "editor" {
		t.Errorf("claims = %+v", claims)
	}
}

func TestValidateExpiredToken(t *testing.T) {
	svc := testJWTService(-time.Minute)

	token, _, err := svc.GenerateToken(testUser())
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if _, err := svc.ValidateToken(token); !errors.Is(err, ErrExpiredToken) {
		t.Fatalf("expected expired token error, got %v", err)
	}
}

func TestValidateTokenWrongKey(t *testing.T) {
	token, _, err := testJWTService(time.Hour).GenerateToken(testUser())
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	other := NewJWTService(JWTConfig{SecretKey: "different-key", AccessTokenExp: time.Hour})
	if _, err := other.ValidateToken(token); err == nil {
		t.Fatal("token signed with another key must not validate")
	}
}

func TestExtractBearerToken(t *testing.T) {
	if _, err := ExtractBearerToken(""); !errors.Is(err, ErrInvalidFormat) {
		t.Fatal("empty header must fail")
	}
	tok, err := ExtractBearerToken("Bearer abc.def.ghi")
	if err != nil || tok != "abc.def.ghi" {
		t.Fatalf("bearer extraction = %q, %v", tok, err)
	}
	tok, err = ExtractBearerToken("abc.def.ghi")
	if err != nil || tok != "abc.def.ghi" {
		t.Fatalf("raw token passthrough = %q, %v", tok, err)
	}
}
