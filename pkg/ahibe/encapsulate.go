// Copyright 2025 Certen Protocol

package ahibe

import (
	"fmt"
	"io"

	"github.com/ahibe-labs/revoke-engine/pkg/curve"
	"github.com/ahibe-labs/revoke-engine/pkg/htc"
	"github.com/ahibe-labs/revoke-engine/pkg/kdf"
)

// Encapsulate draws a fresh 32-byte session key and produces a
// ciphertext that only a key for exactly the given path (issued by
// KeyGen or reached by Delegate from an ancestor key) can recover via
// Decapsulate. Keys of any other depth are rejected by Decapsulate.
func Encapsulate(pp *PublicParams, path []string, rnd io.Reader) ([32]byte, *Ciphertext, error) {
	var sessionKey [32]byte
	d := len(path)
	if d < 1 {
		return sessionKey, nil, &InvalidInputError{Field: "path", Err: fmt.Errorf("identity path must have at least one component")}
	}
	if d > pp.L {
		return sessionKey, nil, &InvalidInputError{Field: "path", Err: fmt.Errorf("path depth %d exceeds maximum %d", d, pp.L)}
	}

	if _, err := io.ReadFull(rnd, sessionKey[:]); err != nil {
		return sessionKey, nil, &CryptoError{Op: "Encapsulate", Err: err}
	}

	s, err := curve.RandomNonzeroScalar(rnd)
	if err != nil {
		return sessionKey, nil, &CryptoError{Op: "Encapsulate", Err: err}
	}

	U := curve.ScalarMulG1(pp.y1, s)

	V := make([]curve.G1Point, d)
	for i := 0; i < d; i++ {
		h, err := htc.HashToScalar([]byte(path[i]), htc.DSTFr)
		if err != nil {
			return sessionKey, nil, &CryptoError{Op: "Encapsulate", Err: err}
		}
		term := curve.AddG1(pp.t, curve.ScalarMulG1(pp.u[i], h))
		V[i] = curve.ScalarMulG1(term, s)
	}

	gtTerms := make([]curve.GT, 0, d+1)
	gtU, err := curve.Pair(U, pp.y3)
	if err != nil {
		return sessionKey, nil, &CryptoError{Op: "Encapsulate", Err: err}
	}
	gtTerms = append(gtTerms, gtU)
	for i := 0; i < d; i++ {
		gtV, err := curve.Pair(V[i], pp.y4)
		if err != nil {
			return sessionKey, nil, &CryptoError{Op: "Encapsulate", Err: err}
		}
		gtTerms = append(gtTerms, gtV)
	}
	K := curve.CombineGT(gtTerms...)

	mask, err := kdf.DeriveSessionKey(K, path)
	if err != nil {
		return sessionKey, nil, &CryptoError{Op: "Encapsulate", Err: err}
	}

	var E [32]byte
	for i := range E {
		E[i] = sessionKey[i] ^ mask[i]
	}

	ct := &Ciphertext{U: U, V: V, E: E}
	return sessionKey, ct, nil
}
