// Copyright 2025 Certen Protocol

package record

import (
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"
)

// RecordJSON is the debugging/audit on-disk representation of a
// RevocationRecord. Every field is required on decode; no field may be
// omitted.
type RecordJSON struct {
	HolderID       string `json:"holderId"`
	Epoch          string `json:"epoch"`
	SessionKey     string `json:"sessionKey"`     // base64, 32 bytes
	Ciphertext     string `json:"ciphertext"`     // hex with 0x prefix
	StoragePointer string `json:"storagePointer"`
	ExportedAt     string `json:"exportedAt"` // RFC 3339
}

// ToJSON renders r as its persisted JSON form, stamped with exportedAt.
func (r *RevocationRecord) ToJSON(exportedAt time.Time) ([]byte, error) {
	doc := RecordJSON{
		HolderID:       r.HolderID,
		Epoch:          r.EpochLabel,
		SessionKey:     base64.StdEncoding.EncodeToString(r.SessionKey[:]),
		Ciphertext:     "0x" + hex.EncodeToString(r.Ciphertext),
		StoragePointer: r.Pointer,
		ExportedAt:     exportedAt.UTC().Format(time.RFC3339),
	}
	return json.Marshal(doc)
}

// FromJSON parses a persisted record, validating that every required
// field is present and well-formed.
func FromJSON(data []byte) (*RevocationRecord, error) {
	var doc RecordJSON
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &InvalidInputError{Field: "json", Err: err}
	}
	if doc.HolderID == "" {
		return nil, &InvalidInputError{Field: "holderId", Err: fmt.Errorf("missing")}
	}
	if doc.Epoch == "" {
		return nil, &InvalidInputError{Field: "epoch", Err: fmt.Errorf("missing")}
	}
	if doc.StoragePointer == "" {
		return nil, &InvalidInputError{Field: "storagePointer", Err: fmt.Errorf("missing")}
	}
	if doc.ExportedAt == "" {
		return nil, &InvalidInputError{Field: "exportedAt", Err: fmt.Errorf("missing")}
	}
	if _, err := time.Parse(time.RFC3339, doc.ExportedAt); err != nil {
		return nil, &InvalidInputError{Field: "exportedAt", Err: err}
	}

	sessionKeyBytes, err := base64.StdEncoding.DecodeString(doc.SessionKey)
	if err != nil || len(sessionKeyBytes) != 32 {
		return nil, &InvalidInputError{Field: "sessionKey", Err: fmt.Errorf("must be base64-encoded 32 bytes")}
	}

	ctHex := doc.Ciphertext
	if len(ctHex) < 2 || ctHex[:2] != "0x" {
		return nil, &InvalidInputError{Field: "ciphertext", Err: fmt.Errorf("missing 0x prefix")}
	}
	ciphertext, err := hex.DecodeString(ctHex[2:])
	if err != nil {
		return nil, &InvalidInputError{Field: "ciphertext", Err: err}
	}

	var sessionKey [32]byte
	copy(sessionKey[:], sessionKeyBytes)

	return &RevocationRecord{
		HolderID:   doc.HolderID,
		EpochLabel: doc.Epoch,
		SessionKey: sessionKey,
		Ciphertext: ciphertext,
		Pointer:    doc.StoragePointer,
	}, nil
}
