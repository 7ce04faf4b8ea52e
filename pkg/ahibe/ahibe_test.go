// Copyright 2025 Certen Protocol

package ahibe

import (
	"bytes"
	"crypto/rand"
	"testing"
)

func TestRoundTrip(t *testing.T) {
	pp, msk, err := Setup(rand.Reader, 3)
	if err != nil {
		t.Fatalf("Setup: %v", err)
	}
	paths := [][]string{
		{"holder:alice@example.com"},
		{"holder:alice@example.com", "2025-10-30"},
		{"holder:alice@example.com", "2025-10-30", "session-1"},
	}
	for _, path := range paths {
		key, err := KeyGen(pp, msk, path)
		if err != nil {
			t.Fatalf("KeyGen(%v): %v", path, err)
		}
		sessionKey, ct, err := Encapsulate(pp, path, rand.Reader)
		if err != nil {
			t.Fatalf("Encapsulate(%v): %v", path, err)
		}
		recovered, err := Decapsulate(key, ct)
		if err != nil {
			t.Fatalf("Decapsulate(%v): %v", path, err)
		}
		if recovered != sessionKey {
			t.Fatalf("round trip mismatch for path %v", path)
		}
	}
}

func TestDelegationEquivalence(t *testing.T) {
	pp, msk, err := Setup(rand.Reader, 3)
	if err != nil {
		t.Fatalf("Setup: %v", err)
	}
	root, err := KeyGen(pp, msk, []string{"holder:alice@example.com"})
	if err != nil {
		t.Fatalf("KeyGen: %v", err)
	}
	delegated, err := Delegate(pp, root, "2025-10-30")
	if err != nil {
		t.Fatalf("Delegate: %v", err)
	}
	fullPath := []string{"holder:alice@example.com", "2025-10-30"}
	sessionKey, ct, err := Encapsulate(pp, fullPath, rand.Reader)
	if err != nil {
		t.Fatalf("Encapsulate: %v", err)
	}
	recovered, err := Decapsulate(delegated, ct)
	if err != nil {
		t.Fatalf("Decapsulate: %v", err)
	}
	if recovered != sessionKey {
		t.Fatalf("delegated key did not recover the session key")
	}
}

func TestWrongIdentityHiding(t *testing.T) {
	pp, msk, err := Setup(rand.Reader, 2)
	if err != nil {
		t.Fatalf("Setup: %v", err)
	}
	keyAlice, err := KeyGen(pp, msk, []string{"holder:alice@example.com"})
	if err != nil {
		t.Fatalf("KeyGen alice: %v", err)
	}
	keyBob, err := KeyGen(pp, msk, []string{"holder:bob@example.com"})
	if err != nil {
		t.Fatalf("KeyGen bob: %v", err)
	}
	sessionKey, ct, err := Encapsulate(pp, []string{"holder:alice@example.com"}, rand.Reader)
	if err != nil {
		t.Fatalf("Encapsulate: %v", err)
	}
	recovered, err := Decapsulate(keyBob, ct)
	if err != nil {
		t.Fatalf("Decapsulate should not error on wrong identity: %v", err)
	}
	if recovered == sessionKey {
		t.Fatalf("bob's key recovered alice's session key")
	}
	_ = keyAlice
}

func TestDepthEnforcement(t *testing.T) {
	pp, msk, err := Setup(rand.Reader, 2)
	if err != nil {
		t.Fatalf("Setup: %v", err)
	}
	if _, err := KeyGen(pp, msk, []string{"a", "b", "c"}); err == nil {
		t.Fatalf("expected KeyGen to reject path deeper than L")
	}
	if _, _, err := Encapsulate(pp, []string{"a", "b", "c"}, rand.Reader); err == nil {
		t.Fatalf("expected Encapsulate to reject path deeper than L")
	}
	root, err := KeyGen(pp, msk, []string{"a"})
	if err != nil {
		t.Fatalf("KeyGen: %v", err)
	}
	child, err := Delegate(pp, root, "b")
	if err != nil {
		t.Fatalf("Delegate: %v", err)
	}
	if _, err := Delegate(pp, child, "c"); err == nil {
		t.Fatalf("expected Delegate to reject extending beyond L")
	}
}

func TestCiphertextLengthAndWireStability(t *testing.T) {
	pp, msk, err := Setup(rand.Reader, 3)
	if err != nil {
		t.Fatalf("Setup: %v", err)
	}
	path := []string{"holder:alice@example.com", "2025-10-30"}
	_, ct, err := Encapsulate(pp, path, rand.Reader)
	if err != nil {
		t.Fatalf("Encapsulate: %v", err)
	}
	encoded := ct.Encode()
	expectedLen := 48*(len(path)+1) + 32
	if len(encoded) != expectedLen {
		t.Fatalf("ciphertext length = %d, want %d", len(encoded), expectedLen)
	}

	decoded, err := Decode(encoded, len(path))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	reencoded := decoded.Encode()
	if !bytes.Equal(encoded, reencoded) {
		t.Fatalf("re-encoding did not reproduce the original bytes")
	}

	key, err := KeyGen(pp, msk, path)
	if err != nil {
		t.Fatalf("KeyGen: %v", err)
	}
	if _, err := Decapsulate(key, ct); err != nil {
		t.Fatalf("Decapsulate: %v", err)
	}

	if _, err := Decode(encoded[:len(encoded)-1], len(path)); err == nil {
		t.Fatalf("expected Decode to reject truncated ciphertext")
	}
}

func TestL3RoundTripScenario(t *testing.T) {
	pp, msk, err := Setup(rand.Reader, 3)
	if err != nil {
		t.Fatalf("Setup: %v", err)
	}
	root, err := KeyGen(pp, msk, []string{"holder:alice@example.com"})
	if err != nil {
		t.Fatalf("KeyGen: %v", err)
	}
	delegated, err := Delegate(pp, root, "2025-10-30")
	if err != nil {
		t.Fatalf("Delegate: %v", err)
	}
	fullPath := []string{"holder:alice@example.com", "2025-10-30"}
	sessionKey, ct, err := Encapsulate(pp, fullPath, rand.Reader)
	if err != nil {
		t.Fatalf("Encapsulate: %v", err)
	}
	encoded := ct.Encode()
	if len(encoded) != 48*3+32 {
		t.Fatalf("ciphertext length = %d, want %d", len(encoded), 48*3+32)
	}
	recovered, err := Decapsulate(delegated, ct)
	if err != nil {
		t.Fatalf("Decapsulate: %v", err)
	}
	if recovered != sessionKey {
		t.Fatalf("L=3 scenario: recovered session key mismatch")
	}
}
