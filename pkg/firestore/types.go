// Copyright 2025 Certen Protocol
//
// Firestore document types for the revocation audit trail: one append-only
// entry per engine-driven action (publish, unrevoke, confirmed-revoked
// verification), chained by hash for tamper-evidence.

package firestore

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// AuditAction enumerates the engine-driven actions an AuditTrailEntry records.
type AuditAction string

const (
	ActionPublish        AuditAction = "publish"
	ActionUnrevoke       AuditAction = "unrevoke"
	ActionConfirmRevoked AuditAction = "confirm_revoked"
)

// AuditTrailEntry is an append-only record of a single revocation-engine
// action, chained to the previous entry for the same holder via
// PreviousHash/EntryHash.
//
// Path: /holders/{holderId}/auditTrail/{entryId}
type AuditTrailEntry struct {
	EntryID      string            `json:"entryId" firestore:"-"`
	HolderID     string            `json:"holderId" firestore:"holderId"`
	Action       AuditAction       `json:"action" firestore:"action"`
	EpochLabel   string            `json:"epochLabel" firestore:"epochLabel"`
	Pointer      string            `json:"pointer,omitempty" firestore:"pointer,omitempty"`
	Timestamp    time.Time         `json:"timestamp" firestore:"timestamp"`
	PreviousHash string            `json:"previousHash" firestore:"previousHash"`
	EntryHash    string            `json:"entryHash" firestore:"entryHash"`
	Details      map[string]string `json:"details,omitempty" firestore:"details,omitempty"`
}

// NewAuditTrailEntry builds an entry and computes its EntryHash from the
// entry's own fields chained to previousHash, so that any later tamper
// is detectable by recomputing the chain.
func NewAuditTrailEntry(holderID string, action AuditAction, epochLabel, pointer, previousHash string, at time.Time) *AuditTrailEntry {
	entry := &AuditTrailEntry{
		EntryID:      uuid.NewString(),
		HolderID:     holderID,
		Action:       action,
		EpochLabel:   epochLabel,
		Pointer:      pointer,
		Timestamp:    at,
		PreviousHash: previousHash,
	}
	entry.EntryHash = entry.computeHash()
	return entry
}

func (e *AuditTrailEntry) computeHash() string {
	payload, _ := json.Marshal(struct {
		HolderID     string
		Action       AuditAction
		EpochLabel   string
		Pointer      string
		Timestamp    int64
		PreviousHash string
	}{e.HolderID, e.Action, e.EpochLabel, e.Pointer, e.Timestamp.UnixNano(), e.PreviousHash})
	sum := sha256.Sum256(payload)
	return hex.EncodeToString(sum[:])
}

// VerifyChain reports whether entry's EntryHash is consistent with its
// own fields and previousHash, detecting both content tampering and
// chain-link tampering.
func (e *AuditTrailEntry) VerifyChain() bool {
	return e.computeHash() == e.EntryHash
}
