package testutils

import (
	"fmt"

	"github.com/KirkDiggler/ipc-metadata/internal/entities/ipc"
)

// TestTotalSupply is the supply used by fixture snapshots
const TestTotalSupply = 1000

// CreateTestRawToken returns a stored token with deterministic seeds
func CreateTestRawToken(tokenID int64) ipc.RawToken {
	return ipc.RawToken{
		TokenID:       tokenID,
		Name:          fmt.Sprintf("IPC #%d", tokenID),
		DNA:           fmt.Sprintf("0x%064x", tokenID*7919),
		AttributeSeed: fmt.Sprintf("%d", tokenID*104729),
		Experience:    "150",
		Birth:         "1638316800",
		SellPrice:     "50000000000000000",
		Owner:         "0x4787993750b897fba6aad9e7328fc4f5c126e17c",
	}
}

// CreateTestOnChainFields returns narrowed fields for tokenID
func CreateTestOnChainFields(tokenID int64) *ipc.OnChainFields {
	raw := CreateTestRawToken(tokenID)
	fields, err := raw.ToOnChainFields(TestTotalSupply)
	if err != nil {
		panic(fmt.Sprintf("fixture token %d is invalid: %v", tokenID, err))
	}
	return fields
}
