// Copyright 2025 Certen Protocol

package ahibe

import (
	"fmt"

	"github.com/ahibe-labs/revoke-engine/pkg/curve"
	"github.com/ahibe-labs/revoke-engine/pkg/kdf"
)

// Decapsulate recovers the session key embedded in ct using key. The
// depth of ct must match key's depth exactly; a key for a different
// identity recovers pseudo-random bytes rather than the original
// session key, not an error.
func Decapsulate(key *HierarchicalKey, ct *Ciphertext) ([32]byte, error) {
	var out [32]byte
	d := key.Depth()
	if ct.Depth() != d {
		return out, &ProtocolError{Op: "Decapsulate", Err: fmt.Errorf("ciphertext depth %d disagrees with key depth %d", ct.Depth(), d)}
	}

	gtTerms := make([]curve.GT, 0, d+1)
	gtU, err := curve.Pair(ct.U, key.k21)
	if err != nil {
		return out, &CryptoError{Op: "Decapsulate", Err: err}
	}
	gtTerms = append(gtTerms, gtU)
	for i := 0; i < d; i++ {
		gtV, err := curve.Pair(ct.V[i], key.k22)
		if err != nil {
			return out, &CryptoError{Op: "Decapsulate", Err: err}
		}
		gtTerms = append(gtTerms, gtV)
	}
	Kp := curve.CombineGT(gtTerms...)

	mask, err := kdf.DeriveSessionKey(Kp, key.pathIDs)
	if err != nil {
		return out, &CryptoError{Op: "Decapsulate", Err: err}
	}

	for i := range out {
		out[i] = ct.E[i] ^ mask[i]
	}
	return out, nil
}
