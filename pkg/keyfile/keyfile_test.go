// Copyright 2025 Certen Protocol

package keyfile

import (
	"crypto/rand"
	"encoding/json"
	"testing"

	"github.com/ahibe-labs/revoke-engine/pkg/ahibe"
)

func TestExportImportRoundTrip(t *testing.T) {
	pp, msk, err := ahibe.Setup(rand.Reader, 2)
	if err != nil {
		t.Fatalf("Setup: %v", err)
	}
	key, err := ahibe.KeyGen(pp, msk, []string{"holder:alice@example.com"})
	if err != nil {
		t.Fatalf("KeyGen: %v", err)
	}

	const passphrase = "correct horse battery staple"
	blob, err := Export(key, passphrase)
	if err != nil {
		t.Fatalf("Export: %v", err)
	}

	view, err := Import(blob, passphrase)
	if err != nil {
		t.Fatalf("Import: %v", err)
	}
	recovered, err := view.ToHierarchicalKey()
	if err != nil {
		t.Fatalf("ToHierarchicalKey: %v", err)
	}

	if recovered.Depth() != key.Depth() {
		t.Fatalf("depth mismatch: %d vs %d", recovered.Depth(), key.Depth())
	}
	origK11, recK11 := key.K11Bytes(), recovered.K11Bytes()
	if string(origK11) != string(recK11) {
		t.Fatalf("k11 mismatch after round trip")
	}
}

func TestImportWrongPassphrase(t *testing.T) {
	pp, msk, err := ahibe.Setup(rand.Reader, 2)
	if err != nil {
		t.Fatalf("Setup: %v", err)
	}
	key, err := ahibe.KeyGen(pp, msk, []string{"holder:alice@example.com"})
	if err != nil {
		t.Fatalf("KeyGen: %v", err)
	}
	blob, err := Export(key, "right passphrase")
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if _, err := Import(blob, "wrong passphrase"); err == nil {
		t.Fatalf("expected Import to fail with wrong passphrase")
	}
}

func TestImportTamperedCiphertext(t *testing.T) {
	pp, msk, err := ahibe.Setup(rand.Reader, 2)
	if err != nil {
		t.Fatalf("Setup: %v", err)
	}
	key, err := ahibe.KeyGen(pp, msk, []string{"holder:alice@example.com"})
	if err != nil {
		t.Fatalf("KeyGen: %v", err)
	}
	blob, err := Export(key, "a passphrase")
	if err != nil {
		t.Fatalf("Export: %v", err)
	}

	var env Envelope
	if err := json.Unmarshal(blob, &env); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	env.Ciphertext = env.Ciphertext[:len(env.Ciphertext)-4] + "abcd"
	tampered, err := json.Marshal(env)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	if _, err := Import(tampered, "a passphrase"); err == nil {
		t.Fatalf("expected Import to reject tampered ciphertext")
	}
}
