// Copyright 2025 Certen Protocol

package firestore

import (
	"context"
	"time"
)

// RecordPublish appends a "publish" audit entry for holderID, chaining it
// to whatever entry currently precedes it in the trail.
func (c *Client) RecordPublish(ctx context.Context, holderID, epochLabel, pointer string, at time.Time) error {
	return c.appendChained(ctx, holderID, ActionPublish, epochLabel, pointer, at)
}

// RecordUnrevoke appends an "unrevoke" audit entry for holderID.
func (c *Client) RecordUnrevoke(ctx context.Context, holderID, epochLabel string, at time.Time) error {
	return c.appendChained(ctx, holderID, ActionUnrevoke, epochLabel, "", at)
}

// RecordConfirmRevoked appends a "confirm_revoked" audit entry, marking
// that a verifier successfully decapsulated the published token.
func (c *Client) RecordConfirmRevoked(ctx context.Context, holderID, epochLabel, pointer string, at time.Time) error {
	return c.appendChained(ctx, holderID, ActionConfirmRevoked, epochLabel, pointer, at)
}

func (c *Client) appendChained(ctx context.Context, holderID string, action AuditAction, epochLabel, pointer string, at time.Time) error {
	previous, err := c.LatestAuditEntry(ctx, holderID)
	if err != nil {
		return err
	}
	previousHash := ""
	if previous != nil {
		previousHash = previous.EntryHash
	}
	entry := NewAuditTrailEntry(holderID, action, epochLabel, pointer, previousHash, at)
	return c.AppendAuditEntry(ctx, entry)
}
