package app

import (
	"errors"
	"testing"
	"time"

	"github.com/form3tech-oss/jwt-go"
)

func TestSeatTokenServiceRoundTrip(t *testing.T) {
	svc := NewSeatTokenService("test-secret", "issuer", time.Hour)

	raw, err := svc.Issue("bot-1", "match-1")
	if err != nil {
		t.Fatalf("issue token error: %v", err)
	}

	seat, err := svc.Verify(raw)
	if err != nil {
		t.Fatalf("verify token error: %v", err)
	}
	if seat.BotID != "bot-1" {
		t.Fatalf("BotID = %s, want bot-1", seat.BotID)
	}
	if seat.MatchID != "match-1" {
		t.Fatalf("MatchID = %s, want match-1", seat.MatchID)
	}
	if seat.TokenID == "" {
		t.Fatal("expected jti claim")
	}
}

func TestSeatTokenServiceUniqueTokenIDs(t *testing.T) {
	svc := NewSeatTokenService("test-secret", "issuer", time.Hour)

	raw1, _ := svc.Issue("bot-1", "match-1")
	raw2, _ := svc.Issue("bot-1", "match-1")
	seat1, err1 := svc.Verify(raw1)
	seat2, err2 := svc.Verify(raw2)
	if err1 != nil || err2 != nil {
		t.Fatalf("verify errors: %v, %v", err1, err2)
	}
	if seat1.TokenID == seat2.TokenID {
		t.Fatalf("jti must be unique per token, got %s twice", seat1.TokenID)
	}
}

func TestSeatTokenServiceRejectsExpired(t *testing.T) {
	svc := NewSeatTokenService("test-secret", "issuer", time.Minute)
	svc.now = func() time.Time { return time.Now().Add(-time.Hour) }

	raw, err := svc.Issue("bot-1", "match-1")
	if err != nil {
		t.Fatalf("issue token error: %v", err)
	}
	if _, err := svc.Verify(raw); !errors.Is(err, ErrInvalidSeatToken) {
		t.Fatalf("verify error = %v, want %v", err, ErrInvalidSeatToken)
	}
}

func TestSeatTokenServiceRejectsWrongIssuer(t *testing.T) {
	raw, err := NewSeatTokenService("test-secret", "other", time.Hour).Issue("bot-1", "match-1")
	if err != nil {
		t.Fatalf("issue token error: %v", err)
	}
	svc := NewSeatTokenService("test-secret", "issuer", time.Hour)
	if _, err := svc.Verify(raw); !errors.Is(err, ErrInvalidSeatToken) {
		t.Fatalf("verify error = %v, want %v", err, ErrInvalidSeatToken)
	}
}

func TestSeatTokenServiceRejectsWrongSecret(t *testing.T) {
	raw, _ := NewSeatTokenService("secret-a", "issuer", time.Hour).Issue("bot-1", "match-1")
	if _, err := NewSeatTokenService("secret-b", "issuer", time.Hour).Verify(raw); err == nil {
		t.Fatal("expected error for wrong secret")
	}
}

func TestSeatTokenServiceRejectsOtherSigningMethod(t *testing.T) {
	claims := jwt.MapClaims{
		"iss": "issuer",
		"sub": "bot-1",
		"mid": "match-1",
		"exp": time.Now().Add(time.Hour).Unix(),
	}
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS384, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign token error: %v", err)
	}

	svc := NewSeatTokenService("test-secret", "issuer", time.Hour)
	if _, err := svc.Verify(raw); !errors.Is(err, ErrInvalidSeatToken) {
		t.Fatalf("verify error = %v, want %v", err, ErrInvalidSeatToken)
	}
}

func TestSeatTokenServiceRequiresConfig(t *testing.T) {
	if _, err := NewSeatTokenService("", "issuer", time.Hour).Issue("bot-1", "match-1"); err == nil {
		t.Fatal("expected error for missing secret")
	}
	if _, err := NewSeatTokenService("secret", "issuer", time.Hour).Issue("", "match-1"); err == nil {
		t.Fatal("expected error for missing bot id")
	}
}
