// Copyright (c) 2025 bqbridge
// Licensed under the MIT License. See LICENSE file in the project root for details.

package config

import (
	"os"
	"path/filepath"
	"testing"

	errs "bqbridge/cli/internal/errors"
)

func TestLoadDefaultsMissingFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	d, err := LoadDefaults()
	if err != nil {
		t.Fatalf("LoadDefaults() error for missing file: %v", err)
	}
	if d.Project != "" || d.Location != "" {
		t.Errorf("missing file must yield zero defaults, got %+v", d)
	}
}

func TestLoadDefaultsCorruptFile(t *testing.T) {
	base := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", base)

	dir := filepath.Join(base, "bqbridge")
	if err := os.MkdirAll(dir, 0o700); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.json"), []byte("{not json"), 0o600); err != nil {
		t.Fatal(err)
	}

	_, err := LoadDefaults()
	if err == nil {
		t.Fatal("LoadDefaults() succeeded on corrupt file")
	}
	// Invalid startup configuration, not a BigQuery client failure.
	if errs.KindOf(err) != errs.Configuration {
		t.Errorf("error kind = %q, want %q", errs.KindOf(err), errs.Configuration)
	}
}

func TestSaveAndLoadDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	if err := SaveDefaults(Defaults{Project: "analytics", Location: "EU"}); err != nil {
		t.Fatalf("SaveDefaults() error: %v", err)
	}

	d, err := LoadDefaults()
	if err != nil {
		t.Fatalf("LoadDefaults() error: %v", err)
	}
	if d.Project != "analytics" || d.Location != "EU" {
		t.Errorf("round trip = %+v", d)
	}
}
