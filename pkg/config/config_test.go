package config

import (
	"os"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"AHIBE_MAX_DEPTH", "AHIBE_DATA_DIR", "AHIBE_METRICS_ADDR", "FIRESTORE_ENABLED", "FIREBASE_PROJECT_ID", "FIRESTORE_TIMEOUT", "LOG_LEVEL"} {
		os.Unsetenv(key)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.MaxHierarchyDepth != 4 {
		t.Errorf("MaxHierarchyDepth = %d, want 4", cfg.MaxHierarchyDepth)
	}
	if cfg.DataDir != "./data" {
		t.Errorf("DataDir = %q, want ./data", cfg.DataDir)
	}
	if cfg.FirestoreEnabled {
		t.Errorf("FirestoreEnabled = true, want false")
	}
	if cfg.FirestoreTimeout != 10*time.Second {
		t.Errorf("FirestoreTimeout = %v, want 10s", cfg.FirestoreTimeout)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate on defaults: %v", err)
	}
}

func TestLoadFromEnv(t *testing.T) {
	os.Setenv("AHIBE_MAX_DEPTH", "6")
	os.Setenv("FIRESTORE_ENABLED", "true")
	os.Setenv("FIREBASE_PROJECT_ID", "revoke-engine-prod")
	defer func() {
		os.Unsetenv("AHIBE_MAX_DEPTH")
		os.Unsetenv("FIRESTORE_ENABLED")
		os.Unsetenv("FIREBASE_PROJECT_ID")
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.MaxHierarchyDepth != 6 {
		t.Errorf("MaxHierarchyDepth = %d, want 6", cfg.MaxHierarchyDepth)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestValidateRejectsShallowDepth(t *testing.T) {
	cfg := &Config{MaxHierarchyDepth: 1}
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected error for MaxHierarchyDepth < 2")
	}
}

func TestValidateRequiresProjectIDWhenFirestoreEnabled(t *testing.T) {
	cfg := &Config{MaxHierarchyDepth: 4, FirestoreEnabled: true}
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected error for missing FirebaseProjectID")
	}
}

func TestSubstituteEnvDefaultClause(t *testing.T) {
	os.Unsetenv("AHIBE_TEST_UNSET_VAR")
	got := substituteEnv("addr: ${AHIBE_TEST_UNSET_VAR:-0.0.0.0:9090}")
	want := "addr: 0.0.0.0:9090"
	if got != want {
		t.Errorf("substituteEnv = %q, want %q", got, want)
	}
}

func TestSubstituteEnvPrefersSetValue(t *testing.T) {
	os.Setenv("AHIBE_TEST_SET_VAR", "overridden")
	defer os.Unsetenv("AHIBE_TEST_SET_VAR")
	got := substituteEnv("addr: ${AHIBE_TEST_SET_VAR:-default}")
	want := "addr: overridden"
	if got != want {
		t.Errorf("substituteEnv = %q, want %q", got, want)
	}
}

func TestLoadYAMLRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/config.yaml"
	doc := "maxHierarchyDepth: 5\ndataDir: /var/lib/ahibe\nfirestore:\n  enabled: true\n  projectId: ${FIREBASE_PROJECT_ID:-revoke-engine-dev}\n"
	if err := os.WriteFile(path, []byte(doc), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := LoadYAML(path)
	if err != nil {
		t.Fatalf("LoadYAML: %v", err)
	}
	if cfg.MaxHierarchyDepth != 5 {
		t.Errorf("MaxHierarchyDepth = %d, want 5", cfg.MaxHierarchyDepth)
	}
	if cfg.DataDir != "/var/lib/ahibe" {
		t.Errorf("DataDir = %q, want /var/lib/ahibe", cfg.DataDir)
	}
	if !cfg.FirestoreEnabled {
		t.Errorf("FirestoreEnabled = false, want true")
	}
	if cfg.FirebaseProjectID != "revoke-engine-dev" {
		t.Errorf("FirebaseProjectID = %q, want revoke-engine-dev", cfg.FirebaseProjectID)
	}
}
