// Copyright 2025 Certen Protocol
//
// Hash-to-Curve Layer - RFC 9380 expand_message_xmd over SHA-256, and the
// hash-to-field/hash-to-curve primitives built on it. The G1/G2 mappings
// delegate to gnark-crypto's own SSWU-plus-isogeny implementation; only the
// curve-agnostic expand_message_xmd and the Fr reduction are owned here.

package htc

import (
	"crypto/sha256"
	"fmt"
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"

	"github.com/ahibe-labs/revoke-engine/pkg/curve"
)

const (
	maxDSTLength = 255
	sha256Size   = 32
	// fieldChunkBytes is the per-chunk length used when splitting the
	// expanded message into integers to reduce modulo Fr (48-byte chunks).
	fieldChunkBytes = 48
)

// Domain-separation tags, one per hash target.
const (
	DSTG1 = "AHIBE_BLS12381G1_XMD:SHA-256_SSWU_RO_"
	DSTG2 = "AHIBE_BLS12381G2_XMD:SHA-256_SSWU_RO_"
	DSTFr = "AHIBE_BLS12381G1_XMD:SHA-256_SSWU_RO_Fr"
)

// HashToCurveError reports a domain-separation or expansion failure.
type HashToCurveError struct {
	Op  string
	Err error
}

func (e *HashToCurveError) Error() string { return fmt.Sprintf("htc: %s: %v", e.Op, e.Err) }
func (e *HashToCurveError) Unwrap() error { return e.Err }

// ExpandMessageXMD implements RFC 9380 §5.3.1 over SHA-256, producing
// outLen uniform pseudorandom bytes from msg under domain-separation tag dst.
func ExpandMessageXMD(msg []byte, dst []byte, outLen int) ([]byte, error) {
	if len(dst) == 0 {
		return nil, &HashToCurveError{Op: "ExpandMessageXMD", Err: fmt.Errorf("empty DST")}
	}
	if len(dst) > maxDSTLength {
		return nil, &HashToCurveError{Op: "ExpandMessageXMD", Err: fmt.Errorf("DST length %d exceeds %d", len(dst), maxDSTLength)}
	}

	const blockSize = sha256Size
	ell := (outLen + blockSize - 1) / blockSize
	if ell > 255 {
		return nil, &HashToCurveError{Op: "ExpandMessageXMD", Err: fmt.Errorf("requested length %d too large", outLen)}
	}

	dstPrime := append(append([]byte{}, dst...), byte(len(dst)))
	zPad := make([]byte, 64) // SHA-256 block size

	lenBytes := []byte{byte(outLen >> 8), byte(outLen)}

	h := sha256.New()
	h.Write(zPad)
	h.Write(msg)
	h.Write(lenBytes)
	h.Write([]byte{0})
	h.Write(dstPrime)
	b0 := h.Sum(nil)

	h.Reset()
	h.Write(b0)
	h.Write([]byte{1})
	h.Write(dstPrime)
	bVals := make([][]byte, ell+1)
	bVals[1] = h.Sum(nil)

	for i := 2; i <= ell; i++ {
		xored := make([]byte, blockSize)
		for j := range xored {
			xored[j] = b0[j] ^ bVals[i-1][j]
		}
		h.Reset()
		h.Write(xored)
		h.Write([]byte{byte(i)})
		h.Write(dstPrime)
		bVals[i] = h.Sum(nil)
	}

	out := make([]byte, 0, ell*blockSize)
	for i := 1; i <= ell; i++ {
		out = append(out, bVals[i]...)
	}
	return out[:outLen], nil
}

// HashToScalar maps msg deterministically to an element of Fr.
func HashToScalar(msg []byte, dst string) (curve.Scalar, error) {
	expanded, err := ExpandMessageXMD(msg, []byte(dst), fieldChunkBytes)
	if err != nil {
		return curve.Scalar{}, err
	}
	v := new(big.Int).SetBytes(expanded)
	return curve.ScalarFromBigInt(v), nil
}

// HashToG1 maps msg deterministically to a point in the prime-order G1
// subgroup, via gnark-crypto's RFC 9380 SSWU-plus-isogeny implementation.
func HashToG1(msg []byte, dst string) (curve.G1Point, error) {
	pt, err := bls12381.HashToG1(msg, []byte(dst))
	if err != nil {
		return curve.G1Point{}, &HashToCurveError{Op: "HashToG1", Err: err}
	}
	encoded := pt.Bytes()
	return curve.G1FromBytes(encoded[:])
}

// HashToG2 maps msg deterministically to a point in the prime-order G2 subgroup.
func HashToG2(msg []byte, dst string) (curve.G2Point, error) {
	pt, err := bls12381.HashToG2(msg, []byte(dst))
	if err != nil {
		return curve.G2Point{}, &HashToCurveError{Op: "HashToG2", Err: err}
	}
	encoded := pt.Bytes()
	return curve.G2FromBytes(encoded[:])
}
