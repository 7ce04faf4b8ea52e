package curve

import (
	"crypto/rand"
	"math/big"
	"testing"
)

func TestScalarAddCommutes(t *testing.T) {
	a, err := RandomNonzeroScalar(rand.Reader)
	if err != nil {
		t.Fatalf("RandomNonzeroScalar: %v", err)
	}
	b, err := RandomNonzeroScalar(rand.Reader)
	if err != nil {
		t.Fatalf("RandomNonzeroScalar: %v", err)
	}
	if a.Add(b).BigInt().Cmp(b.Add(a).BigInt()) != 0 {
		t.Fatalf("a + b != b + a")
	}
}

func TestScalarInverseIsOne(t *testing.T) {
	a, err := RandomNonzeroScalar(rand.Reader)
	if err != nil {
		t.Fatalf("RandomNonzeroScalar: %v", err)
	}
	inv, err := a.Inverse()
	if err != nil {
		t.Fatalf("Inverse: %v", err)
	}
	product := a.Mul(inv)
	one := ScalarFromBigInt(big.NewInt(1))
	if product.BigInt().Cmp(one.BigInt()) != 0 {
		t.Fatalf("a * a^-1 = %v, want 1", product.BigInt())
	}
}

func TestScalarInverseZeroErrors(t *testing.T) {
	var zero Scalar
	if _, err := zero.Inverse(); err == nil {
		t.Fatalf("expected error inverting zero scalar")
	}
}

func TestG1EncodeDecodeRoundTrip(t *testing.T) {
	s, err := RandomNonzeroScalar(rand.Reader)
	if err != nil {
		t.Fatalf("RandomNonzeroScalar: %v", err)
	}
	p := ScalarMulG1(Generator1(), s)
	enc := p.Bytes()
	decoded, err := G1FromBytes(enc[:])
	if err != nil {
		t.Fatalf("G1FromBytes: %v", err)
	}
	if decoded.Bytes() != enc {
		t.Fatalf("round-trip mismatch")
	}
}

func TestG2EncodeDecodeRoundTrip(t *testing.T) {
	s, err := RandomNonzeroScalar(rand.Reader)
	if err != nil {
		t.Fatalf("RandomNonzeroScalar: %v", err)
	}
	p := ScalarMulG2(Generator2(), s)
	enc := p.Bytes()
	decoded, err := G2FromBytes(enc[:])
	if err != nil {
		t.Fatalf("G2FromBytes: %v", err)
	}
	if decoded.Bytes() != enc {
		t.Fatalf("round-trip mismatch")
	}
}

func TestG1FromBytesRejectsWrongLength(t *testing.T) {
	if _, err := G1FromBytes(make([]byte, G1Size-1)); err == nil {
		t.Fatalf("expected error for short input")
	}
}

func TestPairingBilinearity(t *testing.T) {
	a, err := RandomNonzeroScalar(rand.Reader)
	if err != nil {
		t.Fatalf("RandomNonzeroScalar: %v", err)
	}
	b, err := RandomNonzeroScalar(rand.Reader)
	if err != nil {
		t.Fatalf("RandomNonzeroScalar: %v", err)
	}

	left, err := Pair(ScalarMulG1(Generator1(), a), ScalarMulG2(Generator2(), b))
	if err != nil {
		t.Fatalf("Pair: %v", err)
	}
	right, err := Pair(ScalarMulG1(Generator1(), a.Mul(b)), Generator2())
	if err != nil {
		t.Fatalf("Pair: %v", err)
	}
	if left.Bytes() != right.Bytes() {
		t.Fatalf("e(a*G1, b*G2) != e(a*b*G1, G2)")
	}
}

func TestAddG1MatchesScalarMul(t *testing.T) {
	s, err := RandomNonzeroScalar(rand.Reader)
	if err != nil {
		t.Fatalf("RandomNonzeroScalar: %v", err)
	}
	doubled := AddG1(ScalarMulG1(Generator1(), s), ScalarMulG1(Generator1(), s))
	two := ScalarFromBigInt(big.NewInt(2))
	expected := ScalarMulG1(Generator1(), s.Mul(two))
	if doubled.Bytes() != expected.Bytes() {
		t.Fatalf("AddG1(sG, sG) != 2sG")
	}
}
