package auth

import (
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword(t *testing.T) {
	t.Parallel()

	// min cost keeps the test fast
	hash, err := HashPassword("secret1", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if hash == "secret1" || strings.Contains(hash, "secret1") {
		t.Fatalf("hash must not contain the plaintext: %q", hash)
	}

	if !CheckPassword(hash, "secret1") {
		t.Fatalf("CheckPassword rejected the correct password")
	}
	if CheckPassword(hash, "secret2") {
		t.Fatalf("CheckPassword accepted a wrong password")
	}
}

func TestHashPassword_Salted(t *testing.T) {
	t.Parallel()

	h1, err := HashPassword("secret1", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	h2, err := HashPassword("secret1", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if h1 == h2 {
		t.Fatalf("two hashes of the same password must differ (salt)")
	}
}
