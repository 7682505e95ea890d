package main

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/ipc-metadata/internal/entities/ipc"
	"github.com/KirkDiggler/ipc-metadata/internal/orchestrators/token"
	tokenmock "github.com/KirkDiggler/ipc-metadata/internal/orchestrators/token/mock"
)

func TestPrintMetadataUsage(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := tokenmock.NewMockService(ctrl)

	for _, args := range [][]string{nil, {"four-twenty"}} {
		var out bytes.Buffer
		err := printMetadata(context.Background(), &out, svc, args, ipc.ContractV1)
		require.NoError(t, err)
		assert.Equal(t, usageMessage+"\n", out.String())
	}
}

func TestPrintMetadataOutOfRange(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := tokenmock.NewMockService(ctrl)

	svc.EXPECT().
		GetMetadata(gomock.Any(), &token.GetMetadataInput{TokenID: 5000, Contract: ipc.ContractV1}).
		Return(nil, ipc.NewOutOfRangeError(5000, 1000))

	var out bytes.Buffer
	err := printMetadata(context.Background(), &out, svc, []string{"5000"}, ipc.ContractV1)
	require.NoError(t, err)
	assert.Equal(t, "Token with id \"5000\" doesn't exist (yet). Total supply is 1000\n", out.String())
}

func TestPrintMetadataRecord(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := tokenmock.NewMockService(ctrl)

	svc.EXPECT().
		GetMetadata(gomock.Any(), &token.GetMetadataInput{TokenID: 420, Contract: ipc.ContractV0}).
		Return(&token.GetMetadataOutput{
			Record: &ipc.LabeledRecord{
				Record: ipc.TokenRecord{ID: 420, Name: "Sardo"},
				Labels: ipc.Labels{Race: "Elf"},
			},
			TotalSupply: 1000,
		}, nil)

	var out bytes.Buffer
	err := printMetadata(context.Background(), &out, svc, []string{"420", "v0"}, ipc.ContractV0)
	require.NoError(t, err)

	lines := strings.SplitN(out.String(), "\n", 7)
	require.Len(t, lines, 7)
	assert.Equal(t, "####         IPC INFO          ####", lines[1])
	assert.Equal(t, "Total Supply: 1000", lines[4])

	var record map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[6]), &record))
	assert.Equal(t, float64(420), record["id"])
	assert.Equal(t, "Sardo", record["name"])
	assert.Equal(t, "Elf", record["labels"].(map[string]any)["race"])
}

func TestPrintMetadataPropagatesErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := tokenmock.NewMockService(ctrl)

	svc.EXPECT().
		GetMetadata(gomock.Any(), gomock.Any()).
		Return(nil, ipc.NewDecodeError("dna", "zz", nil))

	var out bytes.Buffer
	err := printMetadata(context.Background(), &out, svc, []string{"9"}, ipc.ContractV1)
	require.Error(t, err)
	assert.True(t, ipc.IsDecodeError(err))
	assert.Empty(t, out.String())
}
