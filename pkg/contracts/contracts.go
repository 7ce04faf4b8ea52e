// Copyright 2025 Certen Protocol
//
// External Interfaces - the blob store and on-chain registry contracts
// the engine is invoked alongside. Neither is implemented here; this
// package only declares the shape a concrete adapter must satisfy and
// the holder-id-to-chain-key derivation both sides must agree on.

package contracts

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/crypto"
)

// RecordStatus mirrors the on-chain record's status field.
type RecordStatus uint8

const (
	StatusActive RecordStatus = iota
	StatusRevoked
)

func (s RecordStatus) String() string {
	switch s {
	case StatusActive:
		return "Active"
	case StatusRevoked:
		return "Revoked"
	default:
		return fmt.Sprintf("RecordStatus(%d)", uint8(s))
	}
}

// OnChainRecord is the subset of the on-chain record semantically
// required by the core's verifier: epoch_days, pointer, status, version.
type OnChainRecord struct {
	EpochDays uint64
	Pointer   string
	Status    RecordStatus
	Version   uint64
}

// BlobStore is the content-addressable store contract consumed by the
// engine's callers. Addresses are opaque UTF-8 strings.
type BlobStore interface {
	Write(ctx context.Context, data []byte) (address string, err error)
	Read(ctx context.Context, address string) ([]byte, error)
}

// ChainRegistry is the on-chain append-only pointer store contract.
type ChainRegistry interface {
	Publish(ctx context.Context, key [32]byte, epochDays uint64, pointer string) error
	Unrevoke(ctx context.Context, key [32]byte) error
	GetInfo(ctx context.Context, key [32]byte) (record OnChainRecord, exists bool, err error)
}

// StorageError wraps a BlobStore failure: fetch not-found, upload refused.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string { return fmt.Sprintf("contracts: storage %s: %v", e.Op, e.Err) }
func (e *StorageError) Unwrap() error { return e.Err }

// ChainError wraps a ChainRegistry failure.
type ChainError struct {
	Op  string
	Err error
}

func (e *ChainError) Error() string { return fmt.Sprintf("contracts: chain %s: %v", e.Op, e.Err) }
func (e *ChainError) Unwrap() error { return e.Err }

// HolderKey derives the 32-byte on-chain key for a holder id:
// keccak256(utf8(holder_id)).
func HolderKey(holderID string) [32]byte {
	var out [32]byte
	copy(out[:], crypto.Keccak256([]byte(holderID)))
	return out
}
