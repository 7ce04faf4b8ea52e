// Copyright 2025 Certen Protocol
//
// Firestore Client
// Firebase Admin SDK client for syncing the revocation-engine audit
// trail to Firestore, adapted from the validator's proof-cycle sync
// client to the engine's narrower (append-only, per-holder) need.

package firestore

import (
	"context"
	"fmt"
	"log"
	"os"
	"sync"

	gcpfirestore "cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func isNotFound(err error) bool {
	return status.Code(err) == codes.NotFound
}

// Client wraps the Firestore client with the engine's audit-trail operations.
type Client struct {
	app       *firebase.App
	firestore *gcpfirestore.Client
	projectID string
	logger    *log.Logger
	enabled   bool
	mu        sync.RWMutex
}

// ClientConfig holds configuration for the Firestore client.
type ClientConfig struct {
	ProjectID       string
	CredentialsFile string
	Enabled         bool
	Logger          *log.Logger
}

// NewClient creates a new Firestore client. If cfg.Enabled is false, the
// returned client is a no-op: every operation succeeds without touching
// the network, which keeps the engine's own tests independent of GCP
// credentials.
func NewClient(ctx context.Context, cfg *ClientConfig) (*Client, error) {
	if cfg == nil {
		cfg = &ClientConfig{}
	}
	if cfg.Logger == nil {
		cfg.Logger = log.New(os.Stdout, "[firestore] ", log.LstdFlags)
	}

	client := &Client{
		projectID: cfg.ProjectID,
		logger:    cfg.Logger,
		enabled:   cfg.Enabled,
	}

	if !cfg.Enabled {
		cfg.Logger.Println("firestore sync disabled, running in no-op mode")
		return client, nil
	}
	if cfg.ProjectID == "" {
		return nil, fmt.Errorf("firestore: ProjectID is required when Enabled is true")
	}

	var opts []option.ClientOption
	if cfg.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: cfg.ProjectID}, opts...)
	if err != nil {
		return nil, fmt.Errorf("firestore: initialize firebase app: %w", err)
	}
	fsClient, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("firestore: create client: %w", err)
	}

	client.app = app
	client.firestore = fsClient
	cfg.Logger.Printf("firestore client initialized for project %s", cfg.ProjectID)
	return client, nil
}

// Close releases the underlying Firestore connection.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.firestore != nil {
		return c.firestore.Close()
	}
	return nil
}

// IsEnabled reports whether sync is active.
func (c *Client) IsEnabled() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.enabled
}

// AppendAuditEntry writes entry to /holders/{holderId}/auditTrail/{entryId}.
func (c *Client) AppendAuditEntry(ctx context.Context, entry *AuditTrailEntry) error {
	if !c.IsEnabled() {
		c.logger.Printf("firestore disabled, skipping audit entry holder=%s action=%s", entry.HolderID, entry.Action)
		return nil
	}
	docPath := fmt.Sprintf("holders/%s/auditTrail/%s", entry.HolderID, entry.EntryID)
	_, err := c.firestore.Doc(docPath).Set(ctx, map[string]interface{}{
		"holderId":     entry.HolderID,
		"action":       entry.Action,
		"epochLabel":   entry.EpochLabel,
		"pointer":      entry.Pointer,
		"timestamp":    entry.Timestamp,
		"previousHash": entry.PreviousHash,
		"entryHash":    entry.EntryHash,
		"details":      entry.Details,
	})
	if err != nil {
		return fmt.Errorf("firestore: append audit entry: %w", err)
	}
	return nil
}

// LatestAuditEntry retrieves the most recent audit entry for holderID, used
// to compute the next entry's PreviousHash. Returns nil, nil when there is
// no prior entry or sync is disabled.
func (c *Client) LatestAuditEntry(ctx context.Context, holderID string) (*AuditTrailEntry, error) {
	if !c.IsEnabled() {
		return nil, nil
	}
	collPath := fmt.Sprintf("holders/%s/auditTrail", holderID)
	docs, err := c.firestore.Collection(collPath).
		OrderBy("timestamp", gcpfirestore.Desc).
		Limit(1).
		Documents(ctx).GetAll()
	if err != nil {
		return nil, fmt.Errorf("firestore: query audit trail: %w", err)
	}
	if len(docs) == 0 {
		return nil, nil
	}
	var entry AuditTrailEntry
	if err := docs[0].DataTo(&entry); err != nil {
		return nil, fmt.Errorf("firestore: parse audit entry: %w", err)
	}
	entry.EntryID = docs[0].Ref.ID
	return &entry, nil
}

// Health checks connectivity. A disabled client is always healthy.
func (c *Client) Health(ctx context.Context) error {
	if !c.IsEnabled() {
		return nil
	}
	if c.firestore == nil {
		return fmt.Errorf("firestore: client not initialized")
	}
	_, err := c.firestore.Collection("_health_check").Doc("ping").Get(ctx)
	if err != nil && !isNotFound(err) {
		return fmt.Errorf("firestore: health check: %w", err)
	}
	return nil
}
