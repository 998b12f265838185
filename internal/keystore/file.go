package keystore

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/iho/chainsnap/internal/domain"
)

type identitiesFile struct {
	Identities []struct {
		Label     string `yaml:"label"`
		AccountID string `yaml:"account_id"`
	} `yaml:"identities"`
}

// LoadIdentities reads custom identities from a YAML file of the form
//
//	identities:
//	  - label: Oracle
//	    account_id: "0x..."
func LoadIdentities(path string) ([]Identity, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read identities file: %w", err)
	}
	return ParseIdentities(data)
}

// ParseIdentities decodes the YAML identities document.
func ParseIdentities(data []byte) ([]Identity, error) {
	var file identitiesFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse identities: %w", err)
	}

	identities := make([]Identity, 0, len(file.Identities))
	for i, entry := range file.Identities {
		if entry.Label == "" {
			return nil, fmt.Errorf("identity %d: missing label", i)
		}
		id, err := domain.ParseAccountID(entry.AccountID)
		if err != nil {
			return nil, fmt.Errorf("identity %q: %w", entry.Label, err)
		}
		identities = append(identities, Identity{Label: entry.Label, Kind: KindCustom, AccountID: id})
	}
	return identities, nil
}
