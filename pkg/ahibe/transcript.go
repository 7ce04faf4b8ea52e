// Copyright 2025 Certen Protocol

package ahibe

import (
	"bytes"

	"github.com/ahibe-labs/revoke-engine/pkg/curve"
)

// keygenTranscript builds the hash-to-curve seed used by KeyGen. It binds
// MSK.alpha, MSK.x1, the identity path, and a per-field distinguishing
// label, so that k11, k12, and each e1[i]/e2[i] are independent outputs
// of the same master secret.
func keygenTranscript(label string, alpha curve.Scalar, x1 curve.G1Point, pathIDs []string) []byte {
	var buf bytes.Buffer
	buf.WriteString("AHIBE-KEYGEN")
	buf.WriteByte(0)
	buf.WriteString(label)
	buf.WriteByte(0)
	ab := alpha.Bytes()
	buf.Write(ab[:])
	buf.WriteByte(0)
	xb := x1.Bytes()
	buf.Write(xb[:])
	buf.WriteByte(0)
	for _, id := range pathIDs {
		buf.WriteString(id)
		buf.WriteByte(0)
	}
	return buf.Bytes()
}

// delegateTranscript builds the hash-to-curve seed used by Delegate. It
// omits alpha: a holder performing delegation never possesses the master
// secret's alpha component, only the components already present in its
// own HierarchicalKey.
func delegateTranscript(label string, pathIDs []string) []byte {
	var buf bytes.Buffer
	buf.WriteString("AHIBE-DELEGATE")
	buf.WriteByte(0)
	buf.WriteString(label)
	buf.WriteByte(0)
	for _, id := range pathIDs {
		buf.WriteString(id)
		buf.WriteByte(0)
	}
	return buf.Bytes()
}
