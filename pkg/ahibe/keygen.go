// Copyright 2025 Certen Protocol

package ahibe

import (
	"fmt"

	"github.com/ahibe-labs/revoke-engine/pkg/curve"
	"github.com/ahibe-labs/revoke-engine/pkg/htc"
)

// KeyGen issues a HierarchicalKey for an identity path of length
// 1 <= d <= PP.MaxDepth(). k11, k12, and each e1[i]/e2[i] are derived
// deterministically from MSK and the path via hash-to-curve; k21 and
// k22 are set verbatim to y3/y4 so that encapsulation-side and
// decapsulation-side pairings agree.
func KeyGen(pp *PublicParams, msk *MasterSecret, path []string) (*HierarchicalKey, error) {
	d := len(path)
	if d < 1 {
		return nil, &InvalidInputError{Field: "path", Err: fmt.Errorf("identity path must have at least one component")}
	}
	if d > pp.L {
		return nil, &InvalidInputError{Field: "path", Err: fmt.Errorf("path depth %d exceeds maximum %d", d, pp.L)}
	}

	k11, err := htc.HashToG1(keygenTranscript("k11", msk.alpha, msk.x1, path), htc.DSTG1)
	if err != nil {
		return nil, &CryptoError{Op: "KeyGen", Err: err}
	}
	k12, err := htc.HashToG1(keygenTranscript("k12", msk.alpha, msk.x1, path), htc.DSTG1)
	if err != nil {
		return nil, &CryptoError{Op: "KeyGen", Err: err}
	}

	e1 := make([]curve.G1Point, d)
	e2 := make([]curve.G2Point, d)
	for i := 0; i < d; i++ {
		label1 := fmt.Sprintf("e1:%d", i)
		e1[i], err = htc.HashToG1(keygenTranscript(label1, msk.alpha, msk.x1, path), htc.DSTG1)
		if err != nil {
			return nil, &CryptoError{Op: "KeyGen", Err: err}
		}
		label2 := fmt.Sprintf("e2:%d", i)
		e2[i], err = htc.HashToG2(keygenTranscript(label2, msk.alpha, msk.x1, path), htc.DSTG2)
		if err != nil {
			return nil, &CryptoError{Op: "KeyGen", Err: err}
		}
	}

	return &HierarchicalKey{
		pathIDs: append([]string{}, path...),
		k11:     k11,
		k12:     k12,
		k21:     pp.y3,
		k22:     pp.y4,
		e1:      e1,
		e2:      e2,
	}, nil
}
