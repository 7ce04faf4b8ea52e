// Copyright 2025 Certen Protocol
//
// Verification Decision - the VALID/REVOKED decision procedure over an
// on-chain record and a query epoch, with optional cryptographic
// confirmation by decapsulation.

package verify

import (
	"context"
	"fmt"

	"github.com/ahibe-labs/revoke-engine/pkg/ahibe"
	"github.com/ahibe-labs/revoke-engine/pkg/contracts"
)

// Outcome is the top-level, user-visible verification result.
type Outcome int

const (
	Valid Outcome = iota
	Revoked
	UnknownBlobMissing
	ErrorOutcome
)

func (o Outcome) String() string {
	switch o {
	case Valid:
		return "Valid"
	case Revoked:
		return "Revoked"
	case UnknownBlobMissing:
		return "UnknownBlobMissing"
	case ErrorOutcome:
		return "Error"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// Decision is the result of Decide, carrying the outcome and, for
// Error, an explanatory kind and message.
type Decision struct {
	Outcome Outcome
	ErrKind string
	ErrMsg  string
}

func errorDecision(kind string, err error) Decision {
	return Decision{Outcome: ErrorOutcome, ErrKind: kind, ErrMsg: err.Error()}
}

// Decide implements the verification decision table: given whether an
// on-chain record exists, its status/epoch, and the query epoch, decide
// VALID or REVOKED without touching any external store.
func Decide(exists bool, status contracts.RecordStatus, revEpochDays uint64, checkEpochDays uint64) Decision {
	if !exists {
		return Decision{Outcome: Valid}
	}
	if status == contracts.StatusActive {
		return Decision{Outcome: Valid}
	}
	// status == Revoked
	if checkEpochDays < revEpochDays {
		return Decision{Outcome: Valid}
	}
	return Decision{Outcome: Revoked}
}

// ConfirmByDecapsulation performs the optional cryptographic
// confirmation step for a REVOKED decision: fetch the ciphertext at
// pointer and decapsulate it with key. A StorageError downgrades the
// result to UnknownBlobMissing rather than failing the whole decision,
// since the on-chain status+epoch already determined REVOKED.
func ConfirmByDecapsulation(ctx context.Context, store contracts.BlobStore, pointer string, key *ahibe.HierarchicalKey) ([32]byte, Decision) {
	var sessionKey [32]byte
	data, err := store.Read(ctx, pointer)
	if err != nil {
		return sessionKey, Decision{Outcome: UnknownBlobMissing, ErrKind: "StorageError", ErrMsg: err.Error()}
	}
	ct, err := ahibe.Decode(data, key.Depth())
	if err != nil {
		return sessionKey, errorDecision("ProtocolError", err)
	}
	sessionKey, err = ahibe.Decapsulate(key, ct)
	if err != nil {
		return sessionKey, errorDecision("CryptoError", err)
	}
	return sessionKey, Decision{Outcome: Revoked}
}
