package main

import (
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/ipc-metadata/internal/errors"
	"github.com/KirkDiggler/ipc-metadata/internal/orchestrators/token"
)

var randomContract string

var randomCmd = &cobra.Command{
	Use:   "random",
	Short: "Print the labeled metadata of a random existing token",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		svc, closeStore, err := newMetadataService(ctx, cfg, nil)
		if err != nil {
			return err
		}
		defer func() { _ = closeStore() }()

		contract := randomContract
		if contract == "" {
			contract = cfg.DefaultContract
		}

		picked, err := svc.RandomToken(ctx, &token.RandomTokenInput{Contract: contract})
		if err != nil {
			return err
		}

		out, err := svc.GetMetadata(ctx, &token.GetMetadataInput{
			TokenID:  picked.TokenID,
			Contract: contract,
		})
		if err != nil {
			return errors.Wrapf(err, "failed to get token %d", picked.TokenID)
		}

		return writeRecord(cmd.OutOrStdout(), out.Record, out.TotalSupply)
	},
}

func init() {
	randomCmd.Flags().StringVar(&randomContract, "contract", "", "contract version: v0 or v1")
}
