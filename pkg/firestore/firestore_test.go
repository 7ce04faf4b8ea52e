// Copyright 2025 Certen Protocol

package firestore

import (
	"context"
	"testing"
	"time"
)

func TestNoopClientDoesNotError(t *testing.T) {
	ctx := context.Background()
	client, err := NewClient(ctx, &ClientConfig{Enabled: false})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	if client.IsEnabled() {
		t.Fatalf("expected disabled client")
	}
	if err := client.RecordPublish(ctx, "holder:alice@example.com", "2025-10-30", "cid-sha256-abc", time.Now()); err != nil {
		t.Fatalf("RecordPublish on disabled client: %v", err)
	}
	if err := client.Health(ctx); err != nil {
		t.Fatalf("Health on disabled client: %v", err)
	}
}

func TestAuditTrailEntryChainVerification(t *testing.T) {
	entry := NewAuditTrailEntry("holder:alice@example.com", ActionPublish, "2025-10-30", "cid-sha256-abc", "", time.Now())
	if !entry.VerifyChain() {
		t.Fatalf("freshly created entry should verify")
	}
	entry.Pointer = "cid-sha256-tampered"
	if entry.VerifyChain() {
		t.Fatalf("tampered entry should not verify")
	}
}
