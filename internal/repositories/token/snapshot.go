package token

import (
	"context"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/ipc-metadata/internal/entities/ipc"
	"github.com/KirkDiggler/ipc-metadata/internal/errors"
)

// SnapshotFile is the on-disk format used to seed a repository:
//
//	contracts:
//	  - contract: v1
//	    total_supply: 1000
//	    tokens:
//	      - token_id: 420
//	        name: Sardo
//	        dna: "0x..."
//	        attribute_seed: "123"
//	        experience: "0"
//	        birth: "1638316800"
//	        sell_price: "0"
//	        owner: "0x..."
type SnapshotFile struct {
	Contracts []ContractSnapshot `yaml:"contracts"`
}

// ContractSnapshot holds the indexed state of one contract
type ContractSnapshot struct {
	Contract    string         `yaml:"contract"`
	TotalSupply int64          `yaml:"total_supply"`
	Tokens      []ipc.RawToken `yaml:"tokens"`
}

// LoadSnapshotFile reads a SnapshotFile from path
func LoadSnapshotFile(path string) (*SnapshotFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read snapshot file %s", path)
	}

	var file SnapshotFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse snapshot file")
	}

	return &file, nil
}

// ImportOutput summarizes an Import
type ImportOutput struct {
	Contracts int
	Tokens    int
}

// Import writes every contract supply and token of file into repo
func Import(ctx context.Context, repo Repository, file *SnapshotFile) (*ImportOutput, error) {
	if file == nil {
		return nil, errors.InvalidArgument("snapshot file is required")
	}

	out := &ImportOutput{}
	for _, contract := range file.Contracts {
		_, err := repo.SetSupply(ctx, SetSupplyInput{
			Contract:    contract.Contract,
			TotalSupply: contract.TotalSupply,
		})
		if err != nil {
			return out, errors.Wrapf(err, "failed to import supply for contract %q", contract.Contract)
		}

		for _, tok := range contract.Tokens {
			if _, err := repo.Put(ctx, PutInput{Contract: contract.Contract, Token: tok}); err != nil {
				return out, errors.Wrapf(err, "failed to import token %d", tok.TokenID)
			}
			out.Tokens++
		}
		out.Contracts++

		slog.Info("Imported contract snapshot",
			"contract", contract.Contract,
			"total_supply", contract.TotalSupply,
			"tokens", len(contract.Tokens),
		)
	}

	return out, nil
}
