// Package keystore resolves opaque account identifiers into readable labels
// for diagnostic output.
package keystore

import (
	"cmp"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/iho/chainsnap/internal/domain"
)

// Kind classifies how an identity entered the store.
type Kind uint8

const (
	KindDev Kind = iota
	KindModule
	KindPinned
	KindCustom
	KindExternal
)

var kindNames = [...]string{"dev", "module", "pinned", "custom", "external"}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Identity is a single (label, account) registration.
type Identity struct {
	Label     string           `json:"label"`
	Kind      Kind             `json:"kind"`
	AccountID domain.AccountID `json:"account_id"`
}

// KeyStore is a registry of known identities. The first registration of an
// account id wins; the store is read-only once a comparison starts.
type KeyStore struct {
	identities []*Identity
	byID       map[domain.AccountID]*Identity
	externals  int
}

// New creates an empty KeyStore.
func New() *KeyStore {
	return &KeyStore{
		byID: make(map[domain.AccountID]*Identity),
	}
}

// Register adds an identity. It returns false if the account id is already known.
func (s *KeyStore) Register(identity Identity) bool {
	if _, ok := s.byID[identity.AccountID]; ok {
		return false
	}
	entry := identity
	s.identities = append(s.identities, &entry)
	s.byID[identity.AccountID] = &entry
	return true
}

// RegisterExternal adds an identity observed in chain data under a generated
// external-N label. Already known ids keep their existing label.
func (s *KeyStore) RegisterExternal(id domain.AccountID) bool {
	if _, ok := s.byID[id]; ok {
		return false
	}
	s.externals++
	return s.Register(Identity{
		Label:     fmt.Sprintf("external-%d", s.externals),
		Kind:      KindExternal,
		AccountID: id,
	})
}

// Lookup resolves an account id. Unknown ids are not an error.
func (s *KeyStore) Lookup(id domain.AccountID) AccountName {
	if identity, ok := s.byID[id]; ok {
		return AccountName{identity: identity, id: id}
	}
	return AccountName{id: id}
}

// Len returns the number of registrations.
func (s *KeyStore) Len() int {
	return len(s.identities)
}

// Dump returns every registration in registration order.
func (s *KeyStore) Dump() []Identity {
	out := make([]Identity, len(s.identities))
	for i, identity := range s.identities {
		out[i] = *identity
	}
	return out
}

// AccountName is the resolved display name of an account: either a reference
// to a known identity or Unknown carrying the raw id.
type AccountName struct {
	identity *Identity
	id       domain.AccountID
}

// Known reports whether the account resolved to a registration.
func (n AccountName) Known() bool {
	return n.identity != nil
}

// Identity returns the registration the name refers to, or nil if unknown.
func (n AccountName) Identity() *Identity {
	return n.identity
}

// AccountID returns the raw identifier.
func (n AccountName) AccountID() domain.AccountID {
	return n.id
}

func (n AccountName) String() string {
	if n.identity != nil {
		return n.identity.Label
	}
	return "Unknown(" + n.id.String() + ")"
}

// Compare orders names: known before unknown; known by kind, label, then id;
// unknown by id.
func (n AccountName) Compare(other AccountName) int {
	switch {
	case n.Known() && !other.Known():
		return -1
	case !n.Known() && other.Known():
		return 1
	case !n.Known():
		return n.id.Compare(other.id)
	}
	if c := cmp.Compare(n.identity.Kind, other.identity.Kind); c != 0 {
		return c
	}
	if c := strings.Compare(n.identity.Label, other.identity.Label); c != 0 {
		return c
	}
	return n.id.Compare(other.id)
}

// MarshalJSON renders {"Id": label} or {"Unknown": "0x.."}.
func (n AccountName) MarshalJSON() ([]byte, error) {
	if n.identity != nil {
		return json.Marshal(map[string]string{"Id": n.identity.Label})
	}
	return json.Marshal(map[string]string{"Unknown": n.id.String()})
}
