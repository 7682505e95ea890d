package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/ipc-metadata/internal/entities/ipc"
	"github.com/KirkDiggler/ipc-metadata/internal/errors"
	"github.com/KirkDiggler/ipc-metadata/internal/orchestrators/token"
)

const usageMessage = `make sure to call the command with an id, like this: "ipc metadata 420"`

var contractFlag string

var metadataCmd = &cobra.Command{
	Use:   "metadata <id> [v0]",
	Short: "Print the labeled metadata of a token",
	Long: `Print the labeled metadata of a token as JSON.

Pass v0 after the id (or --contract v0) to read the original contract.`,
	Args: cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), usageMessage)
			return nil
		}

		svc, closeStore, err := newMetadataService(cmd.Context(), cfg, nil)
		if err != nil {
			return err
		}
		defer func() { _ = closeStore() }()

		return printMetadata(cmd.Context(), cmd.OutOrStdout(), svc, args, resolveContract(cmd, args))
	},
}

func init() {
	metadataCmd.Flags().StringVar(&contractFlag, "contract", "", "contract version: v0 or v1")
}

// resolveContract applies --contract, then a trailing "v0" argument, then
// the configured default.
func resolveContract(cmd *cobra.Command, args []string) string {
	if cmd.Flags().Changed("contract") {
		return contractFlag
	}
	if len(args) > 1 && args[1] == ipc.ContractV0 {
		return ipc.ContractV0
	}
	if cfg != nil && cfg.DefaultContract != "" {
		return cfg.DefaultContract
	}
	return ipc.DefaultContract
}

// printMetadata writes the banner, supply and labeled record of args[0].
// A missing or malformed id prints the usage message and an out of range id
// prints the supply; neither is an error.
func printMetadata(ctx context.Context, w io.Writer, svc token.Service, args []string, contract string) error {
	if len(args) == 0 {
		fmt.Fprintln(w, usageMessage)
		return nil
	}

	tokenID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		fmt.Fprintln(w, usageMessage)
		return nil
	}

	out, err := svc.GetMetadata(ctx, &token.GetMetadataInput{
		TokenID:  tokenID,
		Contract: contract,
	})
	if ipc.IsOutOfRangeError(err) {
		fmt.Fprintf(w, "Token with id %q doesn't exist (yet). Total supply is %v\n",
			strconv.FormatInt(tokenID, 10), errors.GetMeta(err)["total_supply"])
		return nil
	}
	if err != nil {
		return err
	}

	return writeRecord(w, out.Record, out.TotalSupply)
}

func writeRecord(w io.Writer, record *ipc.LabeledRecord, totalSupply int64) error {
	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed to encode record")
	}

	fmt.Fprintln(w, "###################################")
	fmt.Fprintln(w, "####         IPC INFO          ####")
	fmt.Fprintln(w, "###################################")
	fmt.Fprintln(w, " ")
	fmt.Fprintf(w, "Total Supply: %d\n", totalSupply)
	fmt.Fprintln(w, " ")
	fmt.Fprintln(w, string(data))
	return nil
}
