package usecase

import (
	"fmt"
	"strings"

	"github.com/iho/chainsnap/internal/domain"
	"github.com/iho/chainsnap/internal/keystore"
)

// Result is the outcome of comparing two snapshots. Report and
// Discrepancies are only populated when Equal is false.
type Result struct {
	Equal         bool
	Report        string
	Discrepancies []domain.Discrepancy
}

// CompareSnapshots compares two snapshots using a key store built from the
// common identities and every account observed in either side.
func CompareSnapshots(left, right *domain.Snapshot) Result {
	return CompareSnapshotsWithKeyStore(left, right, keystore.ForComparison(nil, left, right))
}

// CompareSnapshotsWithKeyStore compares two snapshots, resolving account
// names in the failure report through store.
func CompareSnapshotsWithKeyStore(left, right *domain.Snapshot, store *keystore.KeyStore) Result {
	if left.Equal(right) {
		return Result{Equal: true}
	}

	return Result{
		Equal:         false,
		Report:        BuildReport(left, right, store),
		Discrepancies: Discrepancies(left, right, store),
	}
}

// BuildReport renders the key store dump followed by a line diff of both
// humanized snapshots.
func BuildReport(left, right *domain.Snapshot, store *keystore.KeyStore) string {
	var b strings.Builder

	b.WriteString(mustPrettyJSON(store.Dump()))
	b.WriteString("\n")

	lines := DiffLines(
		mustPrettyJSON(Humanize(left, store)),
		mustPrettyJSON(Humanize(right, store)),
	)
	for _, line := range lines {
		b.WriteString(line.String())
		b.WriteString("\n")
	}

	return b.String()
}

// The rendered types only hold plain values and custom marshalers that
// cannot fail, so an error here is a programming error.
func mustPrettyJSON(v any) string {
	s, err := PrettyJSON(v)
	if err != nil {
		panic(fmt.Sprintf("render snapshot: %v", err))
	}
	return s
}
