package service

import "testing"

func TestJWT_RoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	InitJWT()

	token, err := GenerateJWT(42)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	uid, err := ParseJWT(token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if uid != 42 {
		t.Fatalf("expected user 42, got %d", uid)
	}
}

func TestJWT_RejectsTampered(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	InitJWT()

	token, err := GenerateJWT(42)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if _, err := ParseJWT(token + "x"); err == nil {
		t.Fatal("tampered token must not parse")
	}
}
