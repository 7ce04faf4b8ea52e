// ahibe-authority is the issuing-authority demo CLI: it runs Setup,
// KeyGen, and Encapsulate against the system RNG (crypto/rand) and
// prints the resulting ciphertext and record pointer. It is a thin
// driver over pkg/ahibe and pkg/record; it performs no chain or blob
// I/O of its own, but it does record the issued pointer to the
// off-chain audit trail and instruments every engine call.
package main

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/ahibe-labs/revoke-engine/pkg/ahibe"
	"github.com/ahibe-labs/revoke-engine/pkg/config"
	"github.com/ahibe-labs/revoke-engine/pkg/firestore"
	"github.com/ahibe-labs/revoke-engine/pkg/metrics"
	"github.com/ahibe-labs/revoke-engine/pkg/record"
)

func main() {
	var (
		holderID = flag.String("holder", "", "holder identity, e.g. holder:alice@example.com")
		epoch    = flag.String("epoch", "", "revocation epoch label, YYYY-MM-DD")
		maxDepth = flag.Int("max-depth", 0, "maximum hierarchy depth L (overrides AHIBE_MAX_DEPTH)")
		showHelp = flag.Bool("help", false, "show help message")
	)
	flag.Parse()

	if *showHelp || *holderID == "" || *epoch == "" {
		fmt.Fprintln(os.Stderr, "usage: ahibe-authority -holder <id> -epoch <YYYY-MM-DD>")
		flag.PrintDefaults()
		if *showHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	L := cfg.MaxHierarchyDepth
	if *maxDepth > 0 {
		L = *maxDepth
	}

	if _, err := record.EpochToDays(*epoch); err != nil {
		log.Fatalf("invalid epoch %q: %v", *epoch, err)
	}

	setupStart := time.Now()
	pp, msk, err := ahibe.Setup(rand.Reader, L)
	metrics.ObserveOperation("setup", setupStart, err)
	if err != nil {
		log.Fatalf("setup: %v", err)
	}
	defer msk.Zeroize()

	path := []string{*holderID, *epoch}
	if len(path) > L {
		log.Fatalf("path depth %d exceeds max depth %d", len(path), L)
	}

	keygenStart := time.Now()
	rootKey, err := ahibe.KeyGen(pp, msk, path[:1])
	metrics.ObserveOperation("keygen", keygenStart, err)
	if err != nil {
		log.Fatalf("keygen: %v", err)
	}
	defer rootKey.Zeroize()

	encapStart := time.Now()
	sessionKey, ct, err := ahibe.Encapsulate(pp, path, rand.Reader)
	metrics.ObserveOperation("encapsulate", encapStart, err)
	if err != nil {
		log.Fatalf("encapsulate: %v", err)
	}

	ciphertext := ct.Encode()
	pointer := record.DeterministicPointer(ciphertext)

	rec := &record.RevocationRecord{
		HolderID:   *holderID,
		EpochLabel: *epoch,
		SessionKey: sessionKey,
		Ciphertext: ciphertext,
		Pointer:    pointer,
	}
	issuedAt := time.Now()
	blob, err := rec.ToJSON(issuedAt)
	if err != nil {
		log.Fatalf("marshal record: %v", err)
	}

	ctx := context.Background()
	fsClient, err := firestore.NewClient(ctx, &firestore.ClientConfig{
		ProjectID:       cfg.FirebaseProjectID,
		CredentialsFile: cfg.FirebaseCredentialsFile,
		Enabled:         cfg.FirestoreEnabled,
	})
	if err != nil {
		log.Fatalf("firestore client: %v", err)
	}
	defer fsClient.Close()
	if err := fsClient.RecordPublish(ctx, *holderID, *epoch, pointer, issuedAt); err != nil {
		log.Fatalf("record publish audit entry: %v", err)
	}

	fmt.Printf("session key:   %s\n", strings.ToUpper(hex.EncodeToString(sessionKey[:])))
	fmt.Printf("ciphertext:    0x%s\n", hex.EncodeToString(ciphertext))
	fmt.Printf("pointer:       %s\n", pointer)
	fmt.Printf("record:        %s\n", string(blob))
}
