package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/ipc-metadata/internal/errors"
	"github.com/KirkDiggler/ipc-metadata/internal/pkg/clock"
	"github.com/KirkDiggler/ipc-metadata/internal/redis"
	tokenrepo "github.com/KirkDiggler/ipc-metadata/internal/repositories/token"
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Load a snapshot file into the redis store",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg.RedisAddr == "" {
			return errors.FailedPreconditionf("import needs a redis store, set --redis or IPC_REDIS_ADDR")
		}

		file, err := tokenrepo.LoadSnapshotFile(args[0])
		if err != nil {
			return err
		}

		client, err := redis.NewClient(cfg.RedisAddr, &redis.Options{
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err != nil {
			return errors.Wrap(err, "failed to create redis client")
		}
		defer func() { _ = client.Close() }()

		repo, err := tokenrepo.NewRedisRepository(&tokenrepo.Config{
			Client: client,
			Clock:  clock.New(),
		})
		if err != nil {
			return err
		}

		out, err := tokenrepo.Import(cmd.Context(), repo, file)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Imported %d tokens across %d contracts\n", out.Tokens, out.Contracts)
		return nil
	},
}
