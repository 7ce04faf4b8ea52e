// Copyright 2025 Certen Protocol

package ahibe

import (
	"crypto/sha256"
	"fmt"
	"io"

	"github.com/ahibe-labs/revoke-engine/pkg/curve"
)

// Setup samples fresh public parameters and a master secret for a
// hierarchy of maximum depth L, drawing all randomness from rnd. L must
// be at least 2. Callers inject a deterministic rnd for reproducible
// tests; production callers must pass a cryptographically secure source.
func Setup(rnd io.Reader, L int) (*PublicParams, *MasterSecret, error) {
	if L < 2 {
		return nil, nil, &InvalidInputError{Field: "L", Err: fmt.Errorf("maximum depth must be at least 2, got %d", L)}
	}

	alpha, err := curve.RandomNonzeroScalar(rnd)
	if err != nil {
		return nil, nil, &CryptoError{Op: "Setup", Err: err}
	}
	x1Scalar, err := curve.RandomNonzeroScalar(rnd)
	if err != nil {
		return nil, nil, &CryptoError{Op: "Setup", Err: err}
	}
	x1 := curve.ScalarMulG1(curve.Generator1(), x1Scalar)

	y1Scalar, err := curve.RandomNonzeroScalar(rnd)
	if err != nil {
		return nil, nil, &CryptoError{Op: "Setup", Err: err}
	}
	y1 := curve.ScalarMulG1(curve.Generator1(), y1Scalar)

	y3Scalar, err := curve.RandomNonzeroScalar(rnd)
	if err != nil {
		return nil, nil, &CryptoError{Op: "Setup", Err: err}
	}
	y3 := curve.ScalarMulG2(curve.Generator2(), y3Scalar)

	y4Scalar, err := curve.RandomNonzeroScalar(rnd)
	if err != nil {
		return nil, nil, &CryptoError{Op: "Setup", Err: err}
	}
	y4 := curve.ScalarMulG2(curve.Generator2(), y4Scalar)

	tScalar, err := curve.RandomNonzeroScalar(rnd)
	if err != nil {
		return nil, nil, &CryptoError{Op: "Setup", Err: err}
	}
	t := curve.ScalarMulG1(curve.Generator1(), tScalar)

	u := make([]curve.G1Point, L)
	for i := 0; i < L; i++ {
		uiScalar, err := curve.RandomNonzeroScalar(rnd)
		if err != nil {
			return nil, nil, &CryptoError{Op: "Setup", Err: err}
		}
		u[i] = curve.ScalarMulG1(curve.Generator1(), uiScalar)
	}

	// omega = first 32 bytes of SHA-256(pairing_bytes(e(y1,y3)^alpha) || alpha_bytes).
	// e(y1,y3)^alpha is computed via bilinearity as e(alpha*y1, y3), avoiding
	// any need for a GT exponentiation primitive.
	alphaY1 := curve.ScalarMulG1(y1, alpha)
	pairingResult, err := curve.Pair(alphaY1, y3)
	if err != nil {
		return nil, nil, &CryptoError{Op: "Setup", Err: err}
	}
	pairingBytes := pairingResult.Bytes()
	alphaBytes := alpha.Bytes()
	digestInput := append(append([]byte{}, pairingBytes[:]...), alphaBytes[:]...)
	digest := sha256.Sum256(digestInput)
	var omega [32]byte
	copy(omega[:], digest[:32])

	pp := &PublicParams{
		y1:    y1,
		y3:    y3,
		y4:    y4,
		t:     t,
		u:     u,
		omega: omega,
		L:     L,
	}
	msk := &MasterSecret{
		alpha: alpha,
		x1:    x1,
	}
	return pp, msk, nil
}
