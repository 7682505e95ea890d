package main

import (
	"context"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/KirkDiggler/ipc-metadata/internal/clients/labels"
	"github.com/KirkDiggler/ipc-metadata/internal/config"
	"github.com/KirkDiggler/ipc-metadata/internal/engine/seed"
	"github.com/KirkDiggler/ipc-metadata/internal/errors"
	"github.com/KirkDiggler/ipc-metadata/internal/orchestrators/token"
	"github.com/KirkDiggler/ipc-metadata/internal/pkg/clock"
	"github.com/KirkDiggler/ipc-metadata/internal/pkg/metrics"
	"github.com/KirkDiggler/ipc-metadata/internal/redis"
	tokenrepo "github.com/KirkDiggler/ipc-metadata/internal/repositories/token"
)

func noopClose() error { return nil }

// newTokenRepo opens the snapshot file when one is configured, redis
// otherwise. The returned close func releases the store's connections.
func newTokenRepo(ctx context.Context, c *config.Config) (tokenrepo.Repository, func() error, error) {
	if c.SnapshotFile != "" {
		file, err := tokenrepo.LoadSnapshotFile(c.SnapshotFile)
		if err != nil {
			return nil, nil, err
		}

		repo := tokenrepo.NewInMemory(clock.New())
		if _, err := tokenrepo.Import(ctx, repo, file); err != nil {
			return nil, nil, errors.Wrap(err, "failed to load snapshot")
		}
		return repo, noopClose, nil
	}

	if c.RedisAddr == "" {
		return nil, nil, errors.FailedPreconditionf("no token source configured, set --snapshot or --redis")
	}

	client, err := redis.NewClient(c.RedisAddr, &redis.Options{
		Password: c.RedisPassword,
		DB:       c.RedisDB,
	})
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to create redis client")
	}

	repo, err := tokenrepo.NewRedisRepository(&tokenrepo.Config{
		Client: client,
		Clock:  clock.New(),
	})
	if err != nil {
		_ = client.Close()
		return nil, nil, err
	}
	return repo, client.Close, nil
}

// newMetadataService wires the token orchestrator. reg may be nil. Callers
// must invoke the returned close func once they are done with the service.
func newMetadataService(ctx context.Context, c *config.Config, reg prometheus.Registerer) (token.Service, func() error, error) {
	repo, closeRepo, err := newTokenRepo(ctx, c)
	if err != nil {
		return nil, nil, err
	}

	svc, err := buildMetadataService(c, repo, reg)
	if err != nil {
		_ = closeRepo()
		return nil, nil, err
	}
	return svc, closeRepo, nil
}

func buildMetadataService(c *config.Config, repo tokenrepo.Repository, reg prometheus.Registerer) (token.Service, error) {
	lookup, err := labels.New(&labels.Config{Path: c.LabelsFile})
	if err != nil {
		return nil, err
	}

	var m *metrics.Metrics
	if reg != nil {
		m, err = metrics.New(reg)
		if err != nil {
			return nil, errors.Wrap(err, "failed to register metrics")
		}
	}

	slog.Debug("Metadata service configured",
		"snapshot_file", c.SnapshotFile,
		"redis_addr", c.RedisAddr,
		"labels_file", c.LabelsFile,
	)

	return token.NewOrchestrator(&token.Config{
		TokenRepo: repo,
		Decoder:   seed.NewDecoder(),
		Labels:    lookup,
		Metrics:   m,
	})
}
