package keystore

import (
	"maps"
	"slices"

	"github.com/iho/chainsnap/internal/domain"
)

// Dev keyring public keys (sr25519, //Alice .. //Ferdie, then One and Two).
var devAccounts = []Identity{
	{Label: "Alice", Kind: KindDev, AccountID: domain.MustParseAccountID("0xd43593c715fdd31c61141abd04a99fd6822c8558854ccde39a5684e7a56da27d")},
	{Label: "Bob", Kind: KindDev, AccountID: domain.MustParseAccountID("0x8eaf04151687736326c9fea17e25fc5287613693c912909cb226aa4794f26a48")},
	{Label: "Charlie", Kind: KindDev, AccountID: domain.MustParseAccountID("0x90b5ab205c6974c9ea841be688864633dc9ca8a357843eeacf2314649965fe22")},
	{Label: "Dave", Kind: KindDev, AccountID: domain.MustParseAccountID("0x306721211d5404bd9da88e0204360a1a9ab8b87c66c1bc2fcdd37f3c2222cc20")},
	{Label: "Eve", Kind: KindDev, AccountID: domain.MustParseAccountID("0xe659a7a1628cdd93febc04a4e0646ea20e9f5f0ce097d9a05290d4a9e054df4e")},
	{Label: "Ferdie", Kind: KindDev, AccountID: domain.MustParseAccountID("0x1cbd2d43530a44705ad088af313e18f80b53ef16b36177cd4b77b846f2a5f07c")},
	{Label: "One", Kind: KindDev, AccountID: domain.MustParseAccountID("0xac859f8a216eeb1b320b4c76d118da3d7407fa523484d0a980126d3b4d0d220a")},
	{Label: "Two", Kind: KindDev, AccountID: domain.MustParseAccountID("0x1254f7017f0b8347ce7ab14f96d818802e7e9e0c0d1b7c9acb3c726b080e7a03")},
}

// Pallet accounts whose balances show up in every run.
var moduleIDs = []string{"ge/trsry", "ge/prcho", "ge/vestn"}

var pinnedAccounts = []Identity{
	{Label: "Alice//stash", Kind: KindPinned, AccountID: domain.MustParseAccountID("0xbe5ddb1579b72e84524fc29e78609e3caf42e85aa118ebfe0b0ad404b5bdd25f")},
}

// DevAccounts returns the deterministic dev keyring identities.
func DevAccounts() []Identity {
	return slices.Clone(devAccounts)
}

// DevAccountIDs returns the ids of DevAccounts in keyring order.
func DevAccountIDs() []domain.AccountID {
	ids := make([]domain.AccountID, len(devAccounts))
	for i, identity := range devAccounts {
		ids[i] = identity.AccountID
	}
	return ids
}

// ModuleAccount derives the account of an 8-byte pallet id:
// "modl" ++ id, zero padded to 32 bytes.
func ModuleAccount(moduleID string) domain.AccountID {
	var id domain.AccountID
	n := copy(id[:], "modl")
	copy(id[n:n+8], moduleID)
	return id
}

// RegisterCommon registers the dev keyring, the known pallet accounts and the
// pinned identities.
func RegisterCommon(s *KeyStore) {
	for _, identity := range devAccounts {
		s.Register(identity)
	}
	for _, m := range moduleIDs {
		s.Register(Identity{Label: m, Kind: KindModule, AccountID: ModuleAccount(m)})
	}
	for _, identity := range pinnedAccounts {
		s.Register(identity)
	}
}

// RegisterCustom registers identities loaded from an identities file.
func RegisterCustom(s *KeyStore, identities []Identity) {
	for _, identity := range identities {
		identity.Kind = KindCustom
		s.Register(identity)
	}
}

// RegisterExternals registers every account id observed in the snapshots in
// ascending id order, so generated labels are stable for a given input.
func RegisterExternals(s *KeyStore, snapshots ...*domain.Snapshot) {
	seen := make(map[domain.AccountID]struct{})
	for _, snap := range snapshots {
		if snap == nil {
			continue
		}
		for _, id := range snap.AccountIDs() {
			seen[id] = struct{}{}
		}
	}
	for _, id := range slices.SortedFunc(maps.Keys(seen), domain.AccountID.Compare) {
		s.RegisterExternal(id)
	}
}

// ForComparison builds the store used by a single comparison: common
// identities, then custom ones, then everything observed in either side.
func ForComparison(custom []Identity, left, right *domain.Snapshot) *KeyStore {
	s := New()
	RegisterCommon(s)
	RegisterCustom(s, custom)
	RegisterExternals(s, left, right)
	return s
}
