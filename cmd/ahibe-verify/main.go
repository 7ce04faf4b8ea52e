// ahibe-verify is the verifier demo CLI: given a literal on-chain record
// and a query epoch, it prints the VALID/REVOKED decision per the
// decision table in pkg/verify. It performs no chain RPC of its own;
// record fields are supplied directly on the command line for the demo.
// When a REVOKED decision is reached and a delegate key file plus the
// published ciphertext are supplied, it additionally confirms the
// decision cryptographically by decapsulation.
package main

import (
	"context"
	"encoding/hex"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/ahibe-labs/revoke-engine/pkg/contracts"
	"github.com/ahibe-labs/revoke-engine/pkg/keyfile"
	"github.com/ahibe-labs/revoke-engine/pkg/metrics"
	"github.com/ahibe-labs/revoke-engine/pkg/record"
	"github.com/ahibe-labs/revoke-engine/pkg/verify"
)

// literalBlobStore serves a single ciphertext supplied on the command
// line, so ConfirmByDecapsulation can be exercised without a concrete
// contracts.BlobStore implementation.
type literalBlobStore struct{ data []byte }

func (s literalBlobStore) Read(ctx context.Context, address string) ([]byte, error) {
	return s.data, nil
}

func (s literalBlobStore) Write(ctx context.Context, data []byte) (string, error) {
	return "", fmt.Errorf("literalBlobStore: write not supported")
}

func main() {
	var (
		exists        = flag.Bool("exists", false, "whether an on-chain record exists for this holder")
		status        = flag.String("status", "Active", "on-chain record status: Active or Revoked")
		revEpoch      = flag.String("rev-epoch", "", "on-chain revocation epoch, YYYY-MM-DD (required if -exists)")
		checkAt       = flag.String("check-at", "", "query epoch, YYYY-MM-DD")
		keyfilePath   = flag.String("keyfile", "", "path to an encrypted delegate key file, to confirm a REVOKED decision by decapsulation")
		keyfilePass   = flag.String("keyfile-pass", "", "passphrase for -keyfile")
		ciphertextHex = flag.String("ciphertext", "", "published ciphertext, 0x-prefixed hex (required with -keyfile)")
		showHelp      = flag.Bool("help", false, "show help message")
	)
	flag.Parse()

	if *showHelp || *checkAt == "" {
		fmt.Fprintln(os.Stderr, "usage: ahibe-verify -check-at <YYYY-MM-DD> [-exists -status Active|Revoked -rev-epoch <YYYY-MM-DD>]")
		flag.PrintDefaults()
		if *showHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	checkDays, err := record.EpochToDays(*checkAt)
	if err != nil {
		log.Fatalf("invalid -check-at: %v", err)
	}

	var recStatus contracts.RecordStatus
	switch *status {
	case "Active":
		recStatus = contracts.StatusActive
	case "Revoked":
		recStatus = contracts.StatusRevoked
	default:
		log.Fatalf("invalid -status %q: must be Active or Revoked", *status)
	}

	var revDays uint64
	if *exists {
		if *revEpoch == "" {
			log.Fatalf("-rev-epoch is required when -exists is set")
		}
		revDays, err = record.EpochToDays(*revEpoch)
		if err != nil {
			log.Fatalf("invalid -rev-epoch: %v", err)
		}
	}

	decision := verify.Decide(*exists, recStatus, revDays, checkDays)
	fmt.Printf("decision: %s\n", decision.Outcome)
	if decision.Outcome == verify.ErrorOutcome {
		fmt.Printf("  kind: %s\n  message: %s\n", decision.ErrKind, decision.ErrMsg)
		os.Exit(1)
	}

	if decision.Outcome == verify.Revoked && *keyfilePath != "" {
		if *ciphertextHex == "" {
			log.Fatalf("-ciphertext is required when -keyfile is set")
		}
		data, err := os.ReadFile(*keyfilePath)
		if err != nil {
			log.Fatalf("read keyfile: %v", err)
		}
		view, err := keyfile.Import(data, *keyfilePass)
		if err != nil {
			log.Fatalf("import keyfile: %v", err)
		}
		key, err := view.ToHierarchicalKey()
		if err != nil {
			log.Fatalf("decode keyfile: %v", err)
		}
		ciphertext, err := hex.DecodeString(strings.TrimPrefix(*ciphertextHex, "0x"))
		if err != nil {
			log.Fatalf("invalid -ciphertext: %v", err)
		}

		ctx := context.Background()
		store := literalBlobStore{data: ciphertext}
		decapStart := time.Now()
		sessionKey, confirmation := verify.ConfirmByDecapsulation(ctx, store, "literal", key)
		metrics.ObserveOperation("decapsulate", decapStart, confirmationError(confirmation))

		fmt.Printf("confirmation: %s\n", confirmation.Outcome)
		if confirmation.Outcome == verify.Revoked {
			fmt.Printf("recovered session key: %s\n", strings.ToUpper(hex.EncodeToString(sessionKey[:])))
		} else if confirmation.Outcome == verify.ErrorOutcome || confirmation.Outcome == verify.UnknownBlobMissing {
			fmt.Printf("  kind: %s\n  message: %s\n", confirmation.ErrKind, confirmation.ErrMsg)
		}
	}
}

// confirmationError reports a non-nil error for metrics purposes whenever
// ConfirmByDecapsulation did not reach its expected Revoked outcome.
func confirmationError(d verify.Decision) error {
	if d.Outcome == verify.Revoked {
		return nil
	}
	return fmt.Errorf("%s: %s", d.ErrKind, d.ErrMsg)
}
