// Copyright 2025 Certen Protocol
//
// Key Derivation Layer - turns a raw GT session secret and an identity
// path into a fixed-length symmetric key via HKDF-SHA-256.

package kdf

import (
	"crypto/sha256"
	"fmt"
	"io"
	"strings"

	"golang.org/x/crypto/hkdf"

	"github.com/ahibe-labs/revoke-engine/pkg/curve"
)

// SessionKeySize is the length in bytes of a derived session key.
const SessionKeySize = 32

// DeriveError reports a failure expanding the HKDF output.
type DeriveError struct {
	Op  string
	Err error
}

func (e *DeriveError) Error() string { return fmt.Sprintf("kdf: %s: %v", e.Op, e.Err) }
func (e *DeriveError) Unwrap() error { return e.Err }

// DeriveSessionKey derives a 32-byte symmetric key from the shared secret
// computed by Encapsulate/Decapsulate, bound to the target identity path.
// No salt is used; info is the SHA-256 digest of the identity path joined
// with no separator, matching the AHIBE wire encoding's own path-binding.
func DeriveSessionKey(secret [curve.GTSize]byte, identityPath []string) ([SessionKeySize]byte, error) {
	info := hashIdentityPath(identityPath)

	reader := hkdf.New(sha256.New, secret[:], nil, info[:])
	var out [SessionKeySize]byte
	if _, err := io.ReadFull(reader, out[:]); err != nil {
		return [SessionKeySize]byte{}, &DeriveError{Op: "DeriveSessionKey", Err: err}
	}
	return out, nil
}

// hashIdentityPath computes SHA-256(ID_1 || ID_2 || ... || ID_d), the exact
// concatenation (no separator) that both Encapsulate and Decapsulate must
// agree on for the HKDF info parameter.
func hashIdentityPath(identityPath []string) [32]byte {
	return sha256.Sum256([]byte(strings.Join(identityPath, "")))
}
