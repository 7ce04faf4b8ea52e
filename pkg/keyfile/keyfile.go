// Copyright 2025 Certen Protocol
//
// Encrypted delegate-key file format for offline transfer of a
// HierarchicalKey between an issuing authority and a holder, or between
// a holder and a delegate. Wraps the key material in a PBKDF2-derived
// AES-256-GCM envelope instead of writing key bytes to disk in the clear.

package keyfile

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"fmt"

	"golang.org/x/crypto/pbkdf2"

	"github.com/ahibe-labs/revoke-engine/pkg/ahibe"
)

const (
	formatName     = "SCOR-AHIBE-DELEGATE-KEY-BLS12"
	formatVersion  = 2
	kdfName        = "PBKDF2WithHmacSHA256"
	pbkdf2Iters    = 200_000
	saltSize       = 16
	ivSize         = 12
	aesKeySize     = 32
	curveParamsTag = "BLS12-381"
)

// Envelope is the on-disk JSON structure of an encrypted delegate-key file.
type Envelope struct {
	Format     string `json:"format"`
	Version    int    `json:"version"`
	KDF        string `json:"kdf"`
	Iterations int    `json:"iterations"`
	Salt       string `json:"salt"`       // base64, 16 bytes
	IV         string `json:"iv"`         // base64, 12 bytes
	Ciphertext string `json:"ciphertext"` // base64, AES-256-GCM of keyMaterial
}

// keyMaterial is the plaintext payload encrypted inside the envelope.
type keyMaterial struct {
	K11         string   `json:"k11"`
	K12         string   `json:"k12"`
	K21         string   `json:"k21"`
	K22         string   `json:"k22"`
	E1s         []string `json:"e1s"`
	E2s         []string `json:"e2s"`
	IDs         []string `json:"ids"`
	CurveParams string   `json:"curveParams"`
}

// InvalidInputError reports a malformed envelope or payload.
type InvalidInputError struct {
	Field string
	Err   error
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("keyfile: invalid %s: %v", e.Field, e.Err)
}
func (e *InvalidInputError) Unwrap() error { return e.Err }

// AuthError reports AEAD authentication failure: wrong passphrase or
// tampered ciphertext. The two cannot be distinguished by design.
type AuthError struct {
	Err error
}

func (e *AuthError) Error() string { return fmt.Sprintf("keyfile: authentication failed: %v", e.Err) }
func (e *AuthError) Unwrap() error { return e.Err }

func deriveAESKey(passphrase string, salt []byte) []byte {
	return pbkdf2.Key([]byte(passphrase), salt, pbkdf2Iters, aesKeySize, sha256.New)
}

// Export encrypts key under passphrase, producing the JSON bytes of an
// Envelope.
func Export(key Marshalable, passphrase string) ([]byte, error) {
	material := keyMaterial{
		K11:         base64.StdEncoding.EncodeToString(key.K11Bytes()),
		K12:         base64.StdEncoding.EncodeToString(key.K12Bytes()),
		K21:         base64.StdEncoding.EncodeToString(key.K21Bytes()),
		K22:         base64.StdEncoding.EncodeToString(key.K22Bytes()),
		E1s:         encodeAll(key.E1sBytes()),
		E2s:         encodeAll(key.E2sBytes()),
		IDs:         key.PathIDs(),
		CurveParams: curveParamsTag,
	}
	plaintext, err := json.Marshal(material)
	if err != nil {
		return nil, &InvalidInputError{Field: "keyMaterial", Err: err}
	}

	salt := make([]byte, saltSize)
	if _, err := rand.Read(salt); err != nil {
		return nil, fmt.Errorf("keyfile: salt generation: %w", err)
	}
	iv := make([]byte, ivSize)
	if _, err := rand.Read(iv); err != nil {
		return nil, fmt.Errorf("keyfile: iv generation: %w", err)
	}

	aesKey := deriveAESKey(passphrase, salt)
	block, err := aes.NewCipher(aesKey)
	if err != nil {
		return nil, fmt.Errorf("keyfile: cipher init: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("keyfile: gcm init: %w", err)
	}
	ciphertext := gcm.Seal(nil, iv, plaintext, nil)

	env := Envelope{
		Format:     formatName,
		Version:    formatVersion,
		KDF:        kdfName,
		Iterations: pbkdf2Iters,
		Salt:       base64.StdEncoding.EncodeToString(salt),
		IV:         base64.StdEncoding.EncodeToString(iv),
		Ciphertext: base64.StdEncoding.EncodeToString(ciphertext),
	}
	return json.Marshal(env)
}

// Import decrypts an envelope produced by Export and reconstructs the
// raw key-material fields. Wrong passphrase or tampered ciphertext fails
// with *AuthError.
func Import(data []byte, passphrase string) (*KeyMaterialView, error) {
	var env Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, &InvalidInputError{Field: "envelope", Err: err}
	}
	if env.Format != formatName {
		return nil, &InvalidInputError{Field: "format", Err: fmt.Errorf("unrecognized format %q", env.Format)}
	}
	if env.Version != formatVersion {
		return nil, &InvalidInputError{Field: "version", Err: fmt.Errorf("unsupported version %d", env.Version)}
	}

	salt, err := base64.StdEncoding.DecodeString(env.Salt)
	if err != nil || len(salt) != saltSize {
		return nil, &InvalidInputError{Field: "salt", Err: fmt.Errorf("must be base64-encoded %d bytes", saltSize)}
	}
	iv, err := base64.StdEncoding.DecodeString(env.IV)
	if err != nil || len(iv) != ivSize {
		return nil, &InvalidInputError{Field: "iv", Err: fmt.Errorf("must be base64-encoded %d bytes", ivSize)}
	}
	ciphertext, err := base64.StdEncoding.DecodeString(env.Ciphertext)
	if err != nil {
		return nil, &InvalidInputError{Field: "ciphertext", Err: err}
	}

	aesKey := deriveAESKey(passphrase, salt)
	block, err := aes.NewCipher(aesKey)
	if err != nil {
		return nil, fmt.Errorf("keyfile: cipher init: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("keyfile: gcm init: %w", err)
	}
	plaintext, err := gcm.Open(nil, iv, ciphertext, nil)
	if err != nil {
		return nil, &AuthError{Err: err}
	}

	var material keyMaterial
	if err := json.Unmarshal(plaintext, &material); err != nil {
		return nil, &InvalidInputError{Field: "keyMaterial", Err: err}
	}

	return &KeyMaterialView{
		K11: material.K11,
		K12: material.K12,
		K21: material.K21,
		K22: material.K22,
		E1s: material.E1s,
		E2s: material.E2s,
		IDs: material.IDs,
	}, nil
}

// KeyMaterialView is the decoded (still base64) key material recovered
// by Import.
type KeyMaterialView struct {
	K11, K12, K21, K22 string
	E1s, E2s           []string
	IDs                []string
}

// ToHierarchicalKey decodes the base64 fields and reconstructs a
// HierarchicalKey, validating subgroup membership of every component.
func (v *KeyMaterialView) ToHierarchicalKey() (*ahibe.HierarchicalKey, error) {
	k11, err := base64.StdEncoding.DecodeString(v.K11)
	if err != nil {
		return nil, &InvalidInputError{Field: "k11", Err: err}
	}
	k12, err := base64.StdEncoding.DecodeString(v.K12)
	if err != nil {
		return nil, &InvalidInputError{Field: "k12", Err: err}
	}
	k21, err := base64.StdEncoding.DecodeString(v.K21)
	if err != nil {
		return nil, &InvalidInputError{Field: "k21", Err: err}
	}
	k22, err := base64.StdEncoding.DecodeString(v.K22)
	if err != nil {
		return nil, &InvalidInputError{Field: "k22", Err: err}
	}
	e1s, err := decodeAll(v.E1s)
	if err != nil {
		return nil, &InvalidInputError{Field: "e1s", Err: err}
	}
	e2s, err := decodeAll(v.E2s)
	if err != nil {
		return nil, &InvalidInputError{Field: "e2s", Err: err}
	}
	return ahibe.FromComponents(v.IDs, k11, k12, k21, k22, e1s, e2s)
}

// Marshalable is satisfied by any type able to expose the raw
// component bytes of a hierarchical key for export. ahibe.HierarchicalKey
// satisfies it via the accessors defined in pkg/ahibe/export.go.
type Marshalable interface {
	K11Bytes() []byte
	K12Bytes() []byte
	K21Bytes() []byte
	K22Bytes() []byte
	E1sBytes() [][]byte
	E2sBytes() [][]byte
	PathIDs() []string
}

func encodeAll(chunks [][]byte) []string {
	out := make([]string, len(chunks))
	for i, c := range chunks {
		out[i] = base64.StdEncoding.EncodeToString(c)
	}
	return out
}

func decodeAll(chunks []string) ([][]byte, error) {
	out := make([][]byte, len(chunks))
	for i, c := range chunks {
		b, err := base64.StdEncoding.DecodeString(c)
		if err != nil {
			return nil, err
		}
		out[i] = b
	}
	return out, nil
}
