// Copyright 2025 Certen Protocol

package record

import (
	"context"

	"github.com/ahibe-labs/revoke-engine/pkg/contracts"
)

// BlobStorePointerStrategy uploads ciphertext to a configured blob store
// and uses the store's returned address as the pointer.
type BlobStorePointerStrategy struct {
	Store BlobStore
	Ctx   context.Context
}

// BlobStore is a minimal alias of contracts.BlobStore to keep this
// package's import surface narrow; satisfied by any contracts.BlobStore.
type BlobStore = contracts.BlobStore

// DerivePointer uploads ciphertext and returns the store's address.
func (s BlobStorePointerStrategy) DerivePointer(ciphertext []byte) (string, error) {
	ctx := s.Ctx
	if ctx == nil {
		ctx = context.Background()
	}
	address, err := s.Store.Write(ctx, ciphertext)
	if err != nil {
		return "", &contracts.StorageError{Op: "write", Err: err}
	}
	return address, nil
}

// DeterministicPointerStrategy derives the pointer from the ciphertext's
// content hash without touching any external store.
type DeterministicPointerStrategy struct{}

// DerivePointer returns "cid-sha256-" + hex(sha256(ciphertext)).
func (DeterministicPointerStrategy) DerivePointer(ciphertext []byte) (string, error) {
	return DeterministicPointer(ciphertext), nil
}
