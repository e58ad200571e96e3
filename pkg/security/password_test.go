package security

import (
	"errors"
	"strings"
	"testing"

	"github.com/glowmart/cosmetics-backend/pkg/config"
)

func fastParams() config.PasswordConfig {
	return config.PasswordConfig{
		ArgonMemoryKB:    8,
		ArgonTime:        1,
		ArgonParallelism: 1,
		ArgonSaltLen:     16,
		ArgonKeyLen:      16,
	}
}

func TestHashAndVerifyRoundTrip(t *testing.T) {
	hash, err := HashPassword("a sufficiently long password", fastParams())
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if !strings.HasPrefix(hash, "$argon2id$v=19$") {
		t.Fatalf("unexpected hash format: %s", hash)
	}

	ok, err := VerifyPassword("a sufficiently long password", hash)
	if err != nil {
		t.Fatalf("VerifyPassword: %v", err)
	}
	if !ok {
		t.Fatal("correct password must verify")
	}

	ok, err = VerifyPassword("a different password entirely", hash)
	if err != nil {
		t.Fatalf("VerifyPassword: %v", err)
	}
	if ok {
		t.Fatal("wrong password must not verify")
	}
}

func TestHashIsSaltedPerCall(t *testing.T) {
	first, err := HashPassword("same password", fastParams())
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	second, err := HashPassword("same password", fastParams())
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if first == second {
		t.Fatal("two hashes of the same password must differ")
	}
}

func TestVerifyAcceptsOldCostParameters(t *testing.T) {
	// Hash under one cost config, verify without knowing it; the parameters
	// ride along inside the encoded string.
	heavier := fastParams()
	heavier.ArgonTime = 2
	hash, err := HashPassword("rotating cost parameters", heavier)
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	ok, err := VerifyPassword("rotating cost parameters", hash)
	if err != nil || !ok {
		t.Fatalf("old-cost hash must verify: ok=%v err=%v", ok, err)
	}
}

func TestVerifyRejectsMalformedHash(t *testing.T) {
	cases := []string{
		"",
		"plaintext",
		"$argon2i$v=19$m=8,t=1,p=1$c2FsdA$aGFzaA",
		"$argon2id$v=19$m=8,t=1$c2FsdA",
		"$argon2id$v=19$m=8,t=1,p=1$!!!$aGFzaA",
	}
	for _, encoded := range cases {
		if _, err := VerifyPassword("whatever", encoded); err == nil {
			t.Fatalf("expected error for %q", encoded)
		}
	}
}

func TestVerifyRejectsZeroCostParameters(t *testing.T) {
	// A stored hash with zero (or missing) cost parameters must come back as
	// an invalid hash, not reach the key derivation and blow up the request.
	cases := []string{
		"$argon2id$v=19$m=8,t=0,p=1$c2FsdHNhbHRzYWx0c2FsdA$aGFzaGhhc2hoYXNoaGFzaA",
		"$argon2id$v=19$m=8,t=1,p=0$c2FsdHNhbHRzYWx0c2FsdA$aGFzaGhhc2hoYXNoaGFzaA",
		"$argon2id$v=19$m=0,t=1,p=1$c2FsdHNhbHRzYWx0c2FsdA$aGFzaGhhc2hoYXNoaGFzaA",
		"$argon2id$v=19$m=8,p=1$c2FsdHNhbHRzYWx0c2FsdA$aGFzaGhhc2hoYXNoaGFzaA",
	}
	for _, encoded := range cases {
		ok, err := VerifyPassword("any password", encoded)
		if ok {
			t.Fatalf("hash %q must not verify", encoded)
		}
		if !errors.Is(err, ErrInvalidHash) {
			t.Fatalf("expected ErrInvalidHash for %q, got %v", encoded, err)
		}
	}
}

func TestHashRejectsEmptyPassword(t *testing.T) {
	if _, err := HashPassword("", fastParams()); err == nil {
		t.Fatal("empty password must not hash")
	}
}
