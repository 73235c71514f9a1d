package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/SAP-F-2025/student-service/internal/config"
)

func testManager(ttl time.Duration) *Manager {
	return NewManager(config.JWTConfig{
		Secret: "test-secret",
		TTL:    ttl,
		Issuer: "student-service-test",
	})
}

func TestManager_RoundTrip(t *testing.T) {
	m := testManager(time.Minute)

	token, err := m.GenerateAccessToken("alice@school.test", "teacher")
	if err != nil {
		t.Fatalf("GenerateAccessToken failed: %v", err)
	}

	claims, err := m.ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken failed: %v", err)
	}

	if claims.Subject != "alice@school.test" {
		t.Errorf("Subject = %q, want alice@school.test", claims.Subject)
	}
	if claims.Role != "teacher" {
		t.Errorf("Role = %q, want teacher", claims.Role)
	}
	if claims.Issuer != "student-service-test" {
		t.Errorf("Issuer = %q", claims.Issuer)
	}
	if claims.ID == "" {
		t.Error("token ID should not be empty")
	}
}

func TestManager_ExpiredToken(t *testing.T) {
	m := testManager(-time.Minute)

	token, err := m.GenerateAccessToken("alice@school.test", "student")
	if err != nil {
		t.Fatalf("GenerateAccessToken failed: %v", err)
	}

	_, err = m.ParseToken(token)
	if !errors.Is(err, ErrTokenExpired) {
		t.Errorf("expected ErrTokenExpired, got %v", err)
	}
}

func TestManager_WrongSecret(t *testing.T) {
	m := testManager(time.Minute)
	other := NewManager(config.JWTConfig{
		Secret: "a-different-secret",
		TTL:    time.Minute,
		Issuer: "student-service-test",
	})

	token, err := other.GenerateAccessToken("alice@school.test", "student")
	if err != nil {
		t.Fatalf("GenerateAccessToken failed: %v", err)
	}

	_, err = m.ParseToken(token)
	if !errors.Is(err, ErrTokenInvalid) {
		t.Errorf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestManager_GarbageToken(t *testing.T) {
	m := testManager(time.Minute)

	for _, token := range []string{"", "not-a-jwt", "a.b.c"} {
		if _, err := m.ParseToken(token); !errors.Is(err, ErrTokenInvalid) {
			t.Errorf("ParseToken(%q): expected ErrTokenInvalid, got %v", token, err)
		}
	}
}
