// Copyright 2025 Certen Protocol
//
// Accessors and a reconstruction constructor used by pkg/keyfile to
// export and import a HierarchicalKey's raw component bytes without
// widening this package's exported field surface.

package ahibe

import (
	"fmt"

	"github.com/ahibe-labs/revoke-engine/pkg/curve"
)

// K11Bytes returns the compressed encoding of k11.
func (k *HierarchicalKey) K11Bytes() []byte { b := k.k11.Bytes(); return b[:] }

// K12Bytes returns the compressed encoding of k12.
func (k *HierarchicalKey) K12Bytes() []byte { b := k.k12.Bytes(); return b[:] }

// K21Bytes returns the compressed encoding of k21.
func (k *HierarchicalKey) K21Bytes() []byte { b := k.k21.Bytes(); return b[:] }

// K22Bytes returns the compressed encoding of k22.
func (k *HierarchicalKey) K22Bytes() []byte { b := k.k22.Bytes(); return b[:] }

// E1sBytes returns the compressed encodings of e1[0..d).
func (k *HierarchicalKey) E1sBytes() [][]byte {
	out := make([][]byte, len(k.e1))
	for i, p := range k.e1 {
		b := p.Bytes()
		out[i] = append([]byte{}, b[:]...)
	}
	return out
}

// E2sBytes returns the compressed encodings of e2[0..d).
func (k *HierarchicalKey) E2sBytes() [][]byte {
	out := make([][]byte, len(k.e2))
	for i, p := range k.e2 {
		b := p.Bytes()
		out[i] = append([]byte{}, b[:]...)
	}
	return out
}

// FromComponents reconstructs a HierarchicalKey from its raw component
// bytes, as recovered by pkg/keyfile.Import. Every point is subgroup
// validated during decode.
func FromComponents(pathIDs []string, k11, k12, k21, k22 []byte, e1s, e2s [][]byte) (*HierarchicalKey, error) {
	if len(e1s) != len(pathIDs) || len(e2s) != len(pathIDs) {
		return nil, &InvalidInputError{Field: "components", Err: fmt.Errorf("e1s/e2s length must match path depth %d", len(pathIDs))}
	}
	k11Pt, err := curve.G1FromBytes(k11)
	if err != nil {
		return nil, &InvalidInputError{Field: "k11", Err: err}
	}
	k12Pt, err := curve.G1FromBytes(k12)
	if err != nil {
		return nil, &InvalidInputError{Field: "k12", Err: err}
	}
	k21Pt, err := curve.G2FromBytes(k21)
	if err != nil {
		return nil, &InvalidInputError{Field: "k21", Err: err}
	}
	k22Pt, err := curve.G2FromBytes(k22)
	if err != nil {
		return nil, &InvalidInputError{Field: "k22", Err: err}
	}
	e1 := make([]curve.G1Point, len(e1s))
	for i, b := range e1s {
		e1[i], err = curve.G1FromBytes(b)
		if err != nil {
			return nil, &InvalidInputError{Field: fmt.Sprintf("e1[%d]", i), Err: err}
		}
	}
	e2 := make([]curve.G2Point, len(e2s))
	for i, b := range e2s {
		e2[i], err = curve.G2FromBytes(b)
		if err != nil {
			return nil, &InvalidInputError{Field: fmt.Sprintf("e2[%d]", i), Err: err}
		}
	}
	return &HierarchicalKey{
		pathIDs: append([]string{}, pathIDs...),
		k11:     k11Pt,
		k12:     k12Pt,
		k21:     k21Pt,
		k22:     k22Pt,
		e1:      e1,
		e2:      e2,
	}, nil
}
