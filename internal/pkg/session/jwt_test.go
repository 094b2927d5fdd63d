package session

import (
	"testing"
	"time"

	"github.com/your-org/rsvp-backend/internal/config"
)

func testConfig(secret string) *config.Config {
	cfg := &config.Config{}
	cfg.App.Name = "rsvp-test"
	cfg.Session.Secret = secret
	cfg.Session.TokenExpiry = time.Hour
	return cfg
}

func TestGenerateAndValidate(t *testing.T) {
	manager := NewManager(testConfig("0123456789abcdef0123456789abcdef"))

	token, err := manager.Generate("628123456789")
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	claims, err := manager.Validate(token)
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if claims.Phone != "628123456789" {
		t.Errorf("phone = %q, want %q", claims.Phone, "628123456789")
	}
}

func TestValidateRejectsWrongSecret(t *testing.T) {
	issuer := NewManager(testConfig("0123456789abcdef0123456789abcdef"))
	verifier := NewManager(testConfig("ffffffffffffffffffffffffffffffff"))

	token, err := issuer.Generate("628123456789")
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if _, err := verifier.Validate(token); err == nil {
		t.Fatal("expected validation failure with wrong secret")
	}
}

func TestValidateRejectsExpiredToken(t *testing.T) {
	cfg := testConfig("0123456789abcdef0123456789abcdef")
	cfg.Session.TokenExpiry = -time.Minute
	manager := NewManager(cfg)

	token, err := manager.Generate("628123456789")
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if _, err := manager.Validate(token); err == nil {
		t.Fatal("expected validation failure for expired token")
	}
}

func TestValidateRejectsGarbage(t *testing.T) {
	manager := NewManager(testConfig("0123456789abcdef0123456789abcdef"))
	if _, err := manager.Validate("not.a.token"); err == nil {
		t.Fatal("expected validation failure for garbage token")
	}
}

func TestExtractTokenFromHeader(t *testing.T) {
	tests := []struct {
		header string
		want   string
	}{
		{"Bearer abc123", "abc123"},
		{"Bearer ", ""},
		{"bearer abc123", ""},
		{"abc123", ""},
		{"", ""},
	}

	for _, tt := range tests {
		if got := ExtractTokenFromHeader(tt.header); got != tt.want {
			t.Errorf("ExtractTokenFromHeader(%q) = %q, want %q", tt.header, got, tt.want)
		}
	}
}
