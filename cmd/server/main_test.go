package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadIdentities(t *testing.T) {
	identities, err := loadIdentities("")
	if err != nil || identities != nil {
		t.Fatalf("expected no identities without a file, got %v, %v", identities, err)
	}

	path := filepath.Join(t.TempDir(), "identities.yaml")
	doc := "identities:\n  - label: Oracle\n    account_id: \"0x" + strings.Repeat("ab", 32) + "\"\n"
	if err := os.WriteFile(path, []byte(doc), 0o600); err != nil {
		t.Fatalf("failed to write identities file: %v", err)
	}

	identities, err = loadIdentities(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(identities) != 1 || identities[0].Label != "Oracle" {
		t.Fatalf("unexpected identities: %+v", identities)
	}

	if _, err := loadIdentities(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for a missing file")
	}
}
