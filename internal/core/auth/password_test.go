package auth

import (
	"context"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestHasher_HashAndVerify(t *testing.T) {
	h := NewHasher(bcrypt.MinCost, 2)
	ctx := context.Background()

	hash, err := h.Hash(ctx, "s3cret-Pass!")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if hash == "s3cret-Pass!" {
		t.Fatalf("hash equals plaintext")
	}

	match, err := h.Verify(ctx, "s3cret-Pass!", hash)
	if err != nil {
		t.Fatalf("Verify returned error: %v", err)
	}
	if !match {
		t.Fatalf("expected match for correct password")
	}

	match, err = h.Verify(ctx, "wrong-password", hash)
	if err != nil {
		t.Fatalf("Verify returned error on mismatch: %v", err)
	}
	if match {
		t.Fatalf("expected mismatch for wrong password")
	}
}

func TestHasher_VerifyBadHash(t *testing.T) {
	h := NewHasher(bcrypt.MinCost, 1)

	match, err := h.Verify(context.Background(), "whatever", "not-a-bcrypt-hash")
	if err == nil {
		t.Fatalf("expected error for corrupt hash")
	}
	if match {
		t.Fatalf("corrupt hash must not match")
	}
}

func TestHasher_CancelledContext(t *testing.T) {
	h := NewHasher(bcrypt.MinCost, 1)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := h.Hash(ctx, "password"); err == nil {
		t.Fatalf("expected context error")
	}
}
