// Package config loads routerd's runtime configuration from
// environment variables and an optional config file via viper.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Config holds the knobs routerd needs to stand up the gRPC server and
// the router service behind it.
type Config struct {
	// ListenAddr is the address the gRPC server binds, e.g. ":59300".
	ListenAddr string `mapstructure:"listen_addr"`
	// RegistryShards is the number of hash-sharded registry locks the
	// consumer registry uses (see resultrouter.Service sharding).
	RegistryShards int `mapstructure:"registry_shards"`
	// LogDebug switches the process logger to development mode.
	LogDebug bool `mapstructure:"log_debug"`
	// MetricsAddr is the address the Prometheus /metrics handler binds.
	MetricsAddr string `mapstructure:"metrics_addr"`
}

// Default returns the configuration routerd falls back to when no
// environment variable or file overrides it.
func Default() Config {
	return Config{
		ListenAddr:     ":59300",
		RegistryShards: 16,
		LogDebug:       false,
		MetricsAddr:    ":59301",
	}
}

// Load reads configuration from an optional file at path (ignored if
// empty or missing), then RESULTROUTER_-prefixed environment
// variables, layered over Default().
func Load(path string) (Config, error) {
	cfg := Default()

	v := viper.New()
	v.SetEnvPrefix("resultrouter")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("listen_addr", cfg.ListenAddr)
	v.SetDefault("registry_shards", cfg.RegistryShards)
	v.SetDefault("log_debug", cfg.LogDebug)
	v.SetDefault("metrics_addr", cfg.MetricsAddr)

	if path != "" {
		if _, statErr := os.Stat(path); statErr == nil {
			v.SetConfigFile(path)
			if err := v.ReadInConfig(); err != nil {
				if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
					return Config{}, fmt.Errorf("resultrouter: reading config %s: %w", path, err)
				}
			}
		} else if !os.IsNotExist(statErr) {
			return Config{}, fmt.Errorf("resultrouter: checking config %s: %w", path, statErr)
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("resultrouter: parsing config: %w", err)
	}
	if cfg.RegistryShards <= 0 {
		return Config{}, fmt.Errorf("resultrouter: registry_shards must be positive, got %d", cfg.RegistryShards)
	}
	return cfg, nil
}
