// Copyright 2025 Certen Protocol
//
// YAML configuration file loader, for deployments that prefer a
// checked-in config file over environment variables. Supports
// ${VAR} / ${VAR:-default} substitution against the process
// environment before parsing, matching the validator's own
// env-substituted YAML convention.

package config

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

var envSubstitutionPattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)(:-[^}]*)?\}`)

type yamlFile struct {
	MaxHierarchyDepth int    `yaml:"maxHierarchyDepth"`
	DataDir           string `yaml:"dataDir"`
	MetricsAddr       string `yaml:"metricsAddr"`
	LogLevel          string `yaml:"logLevel"`
	Firestore         struct {
		Enabled         bool   `yaml:"enabled"`
		ProjectID       string `yaml:"projectId"`
		CredentialsFile string `yaml:"credentialsFile"`
	} `yaml:"firestore"`
}

// LoadYAML reads and parses a config file at path, substituting
// ${VAR} and ${VAR:-default} references against the process
// environment before unmarshalling.
func LoadYAML(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	substituted := substituteEnv(string(raw))

	var doc yamlFile
	if err := yaml.Unmarshal([]byte(substituted), &doc); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}

	cfg := &Config{
		MaxHierarchyDepth:       doc.MaxHierarchyDepth,
		DataDir:                 doc.DataDir,
		MetricsAddr:             doc.MetricsAddr,
		LogLevel:                doc.LogLevel,
		FirestoreEnabled:        doc.Firestore.Enabled,
		FirebaseProjectID:       doc.Firestore.ProjectID,
		FirebaseCredentialsFile: doc.Firestore.CredentialsFile,
	}
	if cfg.MaxHierarchyDepth == 0 {
		cfg.MaxHierarchyDepth = 4
	}
	if cfg.DataDir == "" {
		cfg.DataDir = "./data"
	}
	if cfg.MetricsAddr == "" {
		cfg.MetricsAddr = "0.0.0.0:9090"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	return cfg, nil
}

func substituteEnv(s string) string {
	return envSubstitutionPattern.ReplaceAllStringFunc(s, func(match string) string {
		sub := envSubstitutionPattern.FindStringSubmatch(match)
		name, defaultClause := sub[1], sub[2]
		if value, ok := os.LookupEnv(name); ok {
			return value
		}
		if strings.HasPrefix(defaultClause, ":-") {
			return defaultClause[2:]
		}
		return ""
	})
}
