// Copyright 2025 Certen Protocol
//
// Field & Group Layer - constant-time-backed BLS12-381 scalar and group
// arithmetic for the AHIBE engine. Pure Go via gnark-crypto; no runtime
// backend discovery, a single blessed implementation bound at compile time.

package curve

import (
	"fmt"
	"io"
	"math/big"
	"sync"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// Byte sizes of the compressed/serialized encodings used on the wire.
const (
	ScalarSize = 32
	G1Size     = 48
	G2Size     = 96
	GTSize     = 576
)

var (
	genOnce sync.Once
	g1Gen   bls12381.G1Affine
	g2Gen   bls12381.G2Affine
)

func initGenerators() {
	genOnce.Do(func() {
		_, _, g1Gen, g2Gen = bls12381.Generators()
	})
}

// Scalar is an element of Fr, the scalar field of the BLS12-381 pairing groups.
type Scalar struct {
	el fr.Element
}

// RandomScalar draws a uniform element of Fr using rnd as the entropy source.
func RandomScalar(rnd io.Reader) (Scalar, error) {
	buf := make([]byte, ScalarSize+8) // oversample to reduce modular bias
	if _, err := io.ReadFull(rnd, buf); err != nil {
		return Scalar{}, &CryptoError{Op: "RandomScalar", Err: err}
	}
	var s Scalar
	s.el.SetBigInt(new(big.Int).SetBytes(buf))
	return s, nil
}

// RandomNonzeroScalar draws a uniform nonzero element of Fr.
func RandomNonzeroScalar(rnd io.Reader) (Scalar, error) {
	for i := 0; i < 256; i++ {
		s, err := RandomScalar(rnd)
		if err != nil {
			return Scalar{}, err
		}
		if !s.IsZero() {
			return s, nil
		}
	}
	return Scalar{}, &CryptoError{Op: "RandomNonzeroScalar", Err: fmt.Errorf("failed to sample nonzero scalar")}
}

// ScalarFromBigInt reduces v modulo r and returns the resulting Scalar.
func ScalarFromBigInt(v *big.Int) Scalar {
	var s Scalar
	s.el.SetBigInt(v)
	return s
}

// ScalarFromBytes interprets b as a big-endian integer and reduces modulo r.
func ScalarFromBytes(b []byte) Scalar {
	return ScalarFromBigInt(new(big.Int).SetBytes(b))
}

// Bytes returns the canonical 32-byte big-endian encoding of the scalar.
func (s Scalar) Bytes() [ScalarSize]byte {
	return s.el.Bytes()
}

// BigInt returns the scalar as a big.Int in [0, r).
func (s Scalar) BigInt() *big.Int {
	var v big.Int
	s.el.BigInt(&v)
	return &v
}

// IsZero reports whether the scalar is the additive identity.
func (s Scalar) IsZero() bool {
	return s.el.IsZero()
}

// Add returns s + other mod r.
func (s Scalar) Add(other Scalar) Scalar {
	var out Scalar
	out.el.Add(&s.el, &other.el)
	return out
}

// Mul returns s * other mod r.
func (s Scalar) Mul(other Scalar) Scalar {
	var out Scalar
	out.el.Mul(&s.el, &other.el)
	return out
}

// Inverse returns s^-1 mod r. Returns CryptoError if s is zero.
func (s Scalar) Inverse() (Scalar, error) {
	if s.IsZero() {
		return Scalar{}, &CryptoError{Op: "Scalar.Inverse", Err: fmt.Errorf("cannot invert zero scalar")}
	}
	var out Scalar
	out.el.Inverse(&s.el)
	return out, nil
}

// G1Point is a point on the G1 subgroup of BLS12-381.
type G1Point struct {
	p bls12381.G1Affine
}

// G2Point is a point on the G2 subgroup of BLS12-381.
type G2Point struct {
	p bls12381.G2Affine
}

// GT is an element of the pairing target group (the Fp12 tower).
type GT struct {
	el bls12381.GT
}

// Generator1 returns the canonical G1 generator.
func Generator1() G1Point {
	initGenerators()
	return G1Point{p: g1Gen}
}

// Generator2 returns the canonical G2 generator.
func Generator2() G2Point {
	initGenerators()
	return G2Point{p: g2Gen}
}

// ScalarMulG1 returns s * p.
func ScalarMulG1(p G1Point, s Scalar) G1Point {
	var out bls12381.G1Affine
	out.ScalarMultiplication(&p.p, s.BigInt())
	return G1Point{p: out}
}

// ScalarMulG2 returns s * p.
func ScalarMulG2(p G2Point, s Scalar) G2Point {
	var out bls12381.G2Affine
	out.ScalarMultiplication(&p.p, s.BigInt())
	return G2Point{p: out}
}

// AddG1 returns a + b, computed via Jacobian coordinates.
func AddG1(a, b G1Point) G1Point {
	var ja, jb bls12381.G1Jac
	ja.FromAffine(&a.p)
	jb.FromAffine(&b.p)
	ja.AddAssign(&jb)
	var out bls12381.G1Affine
	out.FromJacobian(&ja)
	return G1Point{p: out}
}

// AddG2 returns a + b, computed via Jacobian coordinates.
func AddG2(a, b G2Point) G2Point {
	var ja, jb bls12381.G2Jac
	ja.FromAffine(&a.p)
	jb.FromAffine(&b.p)
	ja.AddAssign(&jb)
	var out bls12381.G2Affine
	out.FromJacobian(&ja)
	return G2Point{p: out}
}

// NegG1 returns -p.
func NegG1(p G1Point) G1Point {
	var out bls12381.G1Affine
	out.Neg(&p.p)
	return G1Point{p: out}
}

// Bytes returns the 48-byte compressed encoding (high-bit compression flag set).
func (p G1Point) Bytes() [G1Size]byte {
	return p.p.Bytes()
}

// Bytes returns the 96-byte compressed encoding.
func (p G2Point) Bytes() [G2Size]byte {
	return p.p.Bytes()
}

// Bytes returns the 576-byte big-endian serialization of the Fp12 tower.
func (g GT) Bytes() [GTSize]byte {
	return g.el.Bytes()
}

// IsIdentity reports whether p is the point at infinity.
func (p G1Point) IsIdentity() bool { return p.p.IsInfinity() }

// IsIdentity reports whether p is the point at infinity.
func (p G2Point) IsIdentity() bool { return p.p.IsInfinity() }

// Validate checks the on-curve, non-identity, and prime-order-subgroup
// conditions required before a decoded point may be used.
func (p G1Point) Validate() error {
	if !p.p.IsOnCurve() {
		return &CryptoError{Op: "G1Point.Validate", Err: fmt.Errorf("point not on curve")}
	}
	if p.p.IsInfinity() {
		return &CryptoError{Op: "G1Point.Validate", Err: fmt.Errorf("point is identity")}
	}
	if !p.p.IsInSubGroup() {
		return &CryptoError{Op: "G1Point.Validate", Err: fmt.Errorf("point not in prime-order subgroup")}
	}
	return nil
}

// Validate checks the on-curve, non-identity, and prime-order-subgroup conditions.
func (p G2Point) Validate() error {
	if !p.p.IsOnCurve() {
		return &CryptoError{Op: "G2Point.Validate", Err: fmt.Errorf("point not on curve")}
	}
	if p.p.IsInfinity() {
		return &CryptoError{Op: "G2Point.Validate", Err: fmt.Errorf("point is identity")}
	}
	if !p.p.IsInSubGroup() {
		return &CryptoError{Op: "G2Point.Validate", Err: fmt.Errorf("point not in prime-order subgroup")}
	}
	return nil
}

// G1FromBytes decodes a compressed G1 point and validates subgroup membership.
func G1FromBytes(b []byte) (G1Point, error) {
	if len(b) != G1Size {
		return G1Point{}, &InvalidInputError{Field: "g1", Err: fmt.Errorf("expected %d bytes, got %d", G1Size, len(b))}
	}
	var out bls12381.G1Affine
	if _, err := out.SetBytes(b); err != nil {
		return G1Point{}, &CryptoError{Op: "G1FromBytes", Err: err}
	}
	p := G1Point{p: out}
	if err := p.Validate(); err != nil {
		return G1Point{}, err
	}
	return p, nil
}

// G2FromBytes decodes a compressed G2 point and validates subgroup membership.
func G2FromBytes(b []byte) (G2Point, error) {
	if len(b) != G2Size {
		return G2Point{}, &InvalidInputError{Field: "g2", Err: fmt.Errorf("expected %d bytes, got %d", G2Size, len(b))}
	}
	var out bls12381.G2Affine
	if _, err := out.SetBytes(b); err != nil {
		return G2Point{}, &CryptoError{Op: "G2FromBytes", Err: err}
	}
	p := G2Point{p: out}
	if err := p.Validate(); err != nil {
		return G2Point{}, err
	}
	return p, nil
}

// Pair computes the optimal ate pairing e(p, q).
func Pair(p G1Point, q G2Point) (GT, error) {
	res, err := bls12381.Pair([]bls12381.G1Affine{p.p}, []bls12381.G2Affine{q.p})
	if err != nil {
		return GT{}, &CryptoError{Op: "Pair", Err: err}
	}
	return GT{el: res}, nil
}
