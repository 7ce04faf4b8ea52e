// Copyright 2025 Certen Protocol

package ahibe

import (
	"fmt"

	"github.com/ahibe-labs/revoke-engine/pkg/curve"
	"github.com/ahibe-labs/revoke-engine/pkg/htc"
)

// Delegate extends parent's identity path by one component and rederives
// k11, k12, and every e1[i]/e2[i] for the extended path. It does not
// consult alpha: a holder performing delegation never possesses the
// master secret, only the HierarchicalKey it was issued. k21 and k22
// are re-set verbatim to y3/y4, identical to KeyGen, which is what makes
// a delegated key decapsulate identically to a directly issued one —
// Decapsulate's published formula only ever touches k21/k22.
func Delegate(pp *PublicParams, parent *HierarchicalKey, childID string) (*HierarchicalKey, error) {
	d := len(parent.pathIDs)
	if d >= pp.L {
		return nil, &InvalidInputError{Field: "path", Err: fmt.Errorf("parent key already at maximum depth %d", pp.L)}
	}
	if childID == "" {
		return nil, &InvalidInputError{Field: "childID", Err: fmt.Errorf("child identity must not be empty")}
	}

	path := make([]string, 0, d+1)
	path = append(path, parent.pathIDs...)
	path = append(path, childID)
	newD := len(path)

	k11, err := htc.HashToG1(delegateTranscript("k11", path), htc.DSTG1)
	if err != nil {
		return nil, &CryptoError{Op: "Delegate", Err: err}
	}
	k12, err := htc.HashToG1(delegateTranscript("k12", path), htc.DSTG1)
	if err != nil {
		return nil, &CryptoError{Op: "Delegate", Err: err}
	}

	e1 := make([]curve.G1Point, newD)
	e2 := make([]curve.G2Point, newD)
	for i := 0; i < newD; i++ {
		label1 := fmt.Sprintf("e1:%d", i)
		e1[i], err = htc.HashToG1(delegateTranscript(label1, path), htc.DSTG1)
		if err != nil {
			return nil, &CryptoError{Op: "Delegate", Err: err}
		}
		label2 := fmt.Sprintf("e2:%d", i)
		e2[i], err = htc.HashToG2(delegateTranscript(label2, path), htc.DSTG2)
		if err != nil {
			return nil, &CryptoError{Op: "Delegate", Err: err}
		}
	}

	return &HierarchicalKey{
		pathIDs: path,
		k11:     k11,
		k12:     k12,
		k21:     pp.y3,
		k22:     pp.y4,
		e1:      e1,
		e2:      e2,
	}, nil
}
