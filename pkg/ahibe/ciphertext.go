// Copyright 2025 Certen Protocol

package ahibe

import (
	"fmt"

	"github.com/ahibe-labs/revoke-engine/pkg/curve"
)

// Encode serializes c as U || V_0 || ... || V_{d-1} || E, matching the
// wire layout consumed by Decode. Depth is not prefixed; it is carried
// out-of-band by the decrypting key's path length.
func (c *Ciphertext) Encode() []byte {
	out := make([]byte, 0, curve.G1Size*(len(c.V)+1)+32)
	ub := c.U.Bytes()
	out = append(out, ub[:]...)
	for _, v := range c.V {
		vb := v.Bytes()
		out = append(out, vb[:]...)
	}
	out = append(out, c.E[:]...)
	return out
}

// Decode parses data as a ciphertext for a path of the given depth,
// validating subgroup membership of U and every V_i. depth must be
// supplied by the caller (normally the decrypting key's Depth()); it is
// never read from the wire.
func Decode(data []byte, depth int) (*Ciphertext, error) {
	if depth < 1 {
		return nil, &InvalidInputError{Field: "depth", Err: fmt.Errorf("depth must be at least 1, got %d", depth)}
	}
	expected := curve.G1Size*(depth+1) + 32
	if len(data) != expected {
		return nil, &ProtocolError{Op: "Decode", Err: fmt.Errorf("ciphertext length %d, expected %d for depth %d", len(data), expected, depth)}
	}

	offset := 0
	U, err := curve.G1FromBytes(data[offset : offset+curve.G1Size])
	if err != nil {
		return nil, &InvalidInputError{Field: "U", Err: err}
	}
	offset += curve.G1Size

	V := make([]curve.G1Point, depth)
	for i := 0; i < depth; i++ {
		V[i], err = curve.G1FromBytes(data[offset : offset+curve.G1Size])
		if err != nil {
			return nil, &InvalidInputError{Field: fmt.Sprintf("V[%d]", i), Err: err}
		}
		offset += curve.G1Size
	}

	var E [32]byte
	copy(E[:], data[offset:offset+32])

	return &Ciphertext{U: U, V: V, E: E}, nil
}
