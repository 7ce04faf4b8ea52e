// Copyright 2025 Certen Protocol
//
// AHIBE Engine - public parameters, master secret, and hierarchical
// secret key types. The engine is stateless between calls per call;
// these types carry no method that performs I/O.

package ahibe

import "github.com/ahibe-labs/revoke-engine/pkg/curve"

// PublicParams is the shared, read-only parameter bundle produced by
// Setup. It is safe for concurrent use by any number of callers.
type PublicParams struct {
	y1    curve.G1Point
	y3    curve.G2Point
	y4    curve.G2Point
	t     curve.G1Point
	u     []curve.G1Point // one element per hierarchy level, len == L
	omega [32]byte
	L     int
}

// MaxDepth returns the maximum hierarchy depth this parameter set supports.
func (pp *PublicParams) MaxDepth() int { return pp.L }

// Omega returns the opaque 32-byte sizing placeholder computed at setup.
// It is not consulted by any operation; retained for wire-format parity
// with deployments that publish it alongside the rest of PublicParams.
func (pp *PublicParams) Omega() [32]byte { return pp.omega }

// MasterSecret is held only by the issuing authority. It must never be
// serialized in cleartext and must be zeroised once no longer needed.
type MasterSecret struct {
	alpha curve.Scalar
	x1    curve.G1Point
}

// Zeroize overwrites the master secret's fields. Go's garbage collector
// may still retain prior copies made before this call; callers must not
// clone a MasterSecret across a trust boundary.
func (m *MasterSecret) Zeroize() {
	m.alpha = curve.Scalar{}
	m.x1 = curve.G1Point{}
}

// HierarchicalKey is a secret key for an identity path of depth
// 1 <= d <= L. KeyGen issues a key directly for any such path; Delegate
// derives a key one level deeper from an existing key.
type HierarchicalKey struct {
	pathIDs []string
	k11     curve.G1Point
	k12     curve.G1Point
	k21     curve.G2Point
	k22     curve.G2Point
	e1      []curve.G1Point
	e2      []curve.G2Point
}

// Depth returns the length of the identity path this key was issued for.
func (k *HierarchicalKey) Depth() int { return len(k.pathIDs) }

// PathIDs returns a copy of the identity path components.
func (k *HierarchicalKey) PathIDs() []string {
	out := make([]string, len(k.pathIDs))
	copy(out, k.pathIDs)
	return out
}

// Zeroize overwrites the key's component fields.
func (k *HierarchicalKey) Zeroize() {
	k.k11 = curve.G1Point{}
	k.k12 = curve.G1Point{}
	k.k21 = curve.G2Point{}
	k.k22 = curve.G2Point{}
	for i := range k.e1 {
		k.e1[i] = curve.G1Point{}
	}
	for i := range k.e2 {
		k.e2[i] = curve.G2Point{}
	}
	for i := range k.pathIDs {
		k.pathIDs[i] = ""
	}
}

// Ciphertext is the output of Encapsulate: U, one V per path component,
// and the masked session key E.
type Ciphertext struct {
	U curve.G1Point
	V []curve.G1Point
	E [32]byte
}

// Depth returns the identity-path depth this ciphertext was produced for.
func (c *Ciphertext) Depth() int { return len(c.V) }
