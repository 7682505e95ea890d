package token_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/ipc-metadata/internal/entities/ipc"
	"github.com/KirkDiggler/ipc-metadata/internal/errors"
	"github.com/KirkDiggler/ipc-metadata/internal/repositories/token"
)

const snapshotYAML = `
contracts:
  - contract: v0
    total_supply: 2
    tokens:
      - token_id: 1
        name: Genesis
        dna: "0x01"
        attribute_seed: "1"
        experience: "0"
        birth: "1630000000"
        sell_price: "0"
        owner: "0xaaa"
  - contract: v1
    total_supply: 1000
    tokens:
      - token_id: 420
        name: Sardo
        dna: "0x5eed"
        attribute_seed: "8675309"
        experience: "1200"
        birth: "1638316800"
        sell_price: "1000000000000000000"
        owner: "0xbbb"
      - token_id: 421
        name: Mira
        dna: "99"
        attribute_seed: "98"
        experience: "5"
        birth: "1638316900"
        owner: "0xccc"
`

func writeSnapshot(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "snapshot.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadAndImportSnapshot(t *testing.T) {
	ctx := context.Background()

	file, err := token.LoadSnapshotFile(writeSnapshot(t, snapshotYAML))
	require.NoError(t, err)
	require.Len(t, file.Contracts, 2)

	repo := token.NewInMemory(nil)
	out, err := token.Import(ctx, repo, file)
	require.NoError(t, err)
	assert.Equal(t, 2, out.Contracts)
	assert.Equal(t, 3, out.Tokens)

	supply, err := repo.GetSupply(ctx, token.GetSupplyInput{Contract: ipc.ContractV1})
	require.NoError(t, err)
	assert.Equal(t, int64(1000), supply.TotalSupply)

	got, err := repo.Get(ctx, token.GetInput{Contract: ipc.ContractV1, TokenID: 420})
	require.NoError(t, err)
	assert.Equal(t, "Sardo", got.Fields.Name)
	assert.Equal(t, int64(1200), got.Fields.Experience)
	assert.Equal(t, "1000000000000000000", got.Fields.SellPrice)

	// missing sell price defaults to zero
	mira, err := repo.Get(ctx, token.GetInput{Contract: ipc.ContractV1, TokenID: 421})
	require.NoError(t, err)
	assert.Equal(t, "0", mira.Fields.SellPrice)
}

func TestImportStopsOnInvalidContract(t *testing.T) {
	file := &token.SnapshotFile{Contracts: []token.ContractSnapshot{{Contract: "v9", TotalSupply: 1}}}

	out, err := token.Import(context.Background(), token.NewInMemory(nil), file)
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
	assert.Equal(t, 0, out.Contracts)
}

func TestLoadSnapshotFileErrors(t *testing.T) {
	_, err := token.LoadSnapshotFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)

	_, err = token.LoadSnapshotFile(writeSnapshot(t, "contracts: {broken"))
	assert.True(t, errors.IsInvalidArgument(err))
}
