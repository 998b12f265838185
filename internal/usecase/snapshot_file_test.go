package usecase_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iho/chainsnap/internal/domain"
	"github.com/iho/chainsnap/internal/usecase"
)

func TestWriteReadSnapshot(t *testing.T) {
	t.Parallel()

	x := accountID(0x33)
	path := filepath.Join(t.TempDir(), "before.json")

	stashed := &domain.StashedSnapshot{
		ID:         "01HZ0000000000000000000000",
		Source:     "ws://127.0.0.1:9944",
		Block:      "0xabc",
		CapturedAt: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
		Snapshot:   usdSnapshot(x, 100),
	}
	require.NoError(t, usecase.WriteSnapshot(path, stashed))

	got, err := usecase.ReadSnapshot(path)
	require.NoError(t, err)
	assert.Equal(t, stashed.ID, got.ID)
	assert.Equal(t, stashed.Block, got.Block)
	assert.True(t, stashed.CapturedAt.Equal(got.CapturedAt))
	assert.True(t, usecase.CompareSnapshots(stashed.Snapshot, got.Snapshot).Equal)
}

func TestReadSnapshot_NormalizesFixture(t *testing.T) {
	t.Parallel()

	x := accountID(0x33)
	path := filepath.Join(t.TempDir(), "fixture.json")
	fixture := `{"id":"f","snapshot":{"balances":{"` + x.String() + `":{"Eq":{"Positive":3}}},"total":1}}`
	require.NoError(t, os.WriteFile(path, []byte(fixture), 0o600))

	got, err := usecase.ReadSnapshot(path)
	require.NoError(t, err)
	assert.True(t, got.Snapshot.IsNormalized())
	assert.Equal(t, domain.Positive(3), got.Snapshot.Balances[x][domain.CurrencyEq])
	assert.Equal(t, domain.Positive(0), got.Snapshot.Balances[x][domain.CurrencyUsd])
}

func TestReadSnapshot_Errors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	_, err := usecase.ReadSnapshot(filepath.Join(dir, "missing.json"))
	require.Error(t, err)

	empty := filepath.Join(dir, "empty.json")
	require.NoError(t, os.WriteFile(empty, []byte(`{"id":"x"}`), 0o600))
	_, err = usecase.ReadSnapshot(empty)
	require.ErrorIs(t, err, domain.ErrSnapshotNotFound)

	garbage := filepath.Join(dir, "garbage.json")
	require.NoError(t, os.WriteFile(garbage, []byte(`{`), 0o600))
	_, err = usecase.ReadSnapshot(garbage)
	require.Error(t, err)
}
