// Package main is the entry point for the ipc command
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/ipc-metadata/internal/config"
)

var (
	cfg *config.Config

	redisAddr    string
	snapshotFile string
	labelsFile   string
)

var rootCmd = &cobra.Command{
	Use:   "ipc",
	Short: "IPC token metadata",
	Long: `ipc decodes the dna and attribute seeds of an IPC token into its
physical traits and attributes, and prints or serves the labeled record.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		loaded, err := config.Load()
		if err != nil {
			return err
		}

		flags := cmd.Flags()
		if flags.Changed("redis") {
			loaded.RedisAddr = redisAddr
		}
		if flags.Changed("snapshot") {
			loaded.SnapshotFile = snapshotFile
		}
		if flags.Changed("labels") {
			loaded.LabelsFile = labelsFile
		}

		cfg = loaded
		return nil
	},
}

func main() {
	rootCmd.SetArgs(normalizeArgs(rootCmd, os.Args[1:]))
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&redisAddr, "redis", "", "redis address of the token snapshot store (env IPC_REDIS_ADDR)")
	pf.StringVar(&snapshotFile, "snapshot", "", "serve tokens from a snapshot file instead of redis (env IPC_SNAPSHOT_FILE)")
	pf.StringVar(&labelsFile, "labels", "", "label tables file, defaults to the built-in tables (env IPC_LABELS_FILE)")

	rootCmd.AddCommand(metadataCmd)
	rootCmd.AddCommand(randomCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(clientCmd)
}
