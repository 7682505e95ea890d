// Package config loads process configuration from the environment
package config

import (
	"github.com/caarlos0/env/v11"

	"github.com/KirkDiggler/ipc-metadata/internal/entities/ipc"
	"github.com/KirkDiggler/ipc-metadata/internal/errors"
)

// Config holds the settings shared by the ipc commands. Flags on the
// individual commands override these values.
type Config struct {
	// RedisAddr is the snapshot store. Empty means no redis.
	RedisAddr     string `env:"IPC_REDIS_ADDR"`
	RedisPassword string `env:"IPC_REDIS_PASSWORD"`
	RedisDB       int    `env:"IPC_REDIS_DB" envDefault:"0"`

	GRPCPort int    `env:"IPC_GRPC_PORT" envDefault:"50051"`
	HTTPAddr string `env:"IPC_HTTP_ADDR" envDefault:":8080"`

	DefaultContract string `env:"IPC_DEFAULT_CONTRACT" envDefault:"v1"`

	// LabelsFile replaces the embedded label tables when set
	LabelsFile string `env:"IPC_LABELS_FILE"`

	// SnapshotFile serves tokens from a local file instead of redis
	SnapshotFile string `env:"IPC_SNAPSHOT_FILE"`
}

// Validate checks the loaded values
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.GRPCPort < 1 || c.GRPCPort > 65535 {
		vb.Fieldf("GRPCPort", "must be between 1 and 65535, got %d", c.GRPCPort)
	}
	if c.HTTPAddr == "" {
		vb.RequiredField("HTTPAddr")
	}
	errors.ValidateEnum("DefaultContract", c.DefaultContract, ipc.Contracts, vb)

	return vb.Build()
}

// Load reads the process environment
func Load() (*Config, error) {
	return parse(env.Options{})
}

// LoadFrom reads the given variables instead of the process environment
func LoadFrom(environment map[string]string) (*Config, error) {
	return parse(env.Options{Environment: environment})
}

func parse(opts env.Options) (*Config, error) {
	cfg, err := env.ParseAsWithOptions[Config](opts)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse environment")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return &cfg, nil
}
