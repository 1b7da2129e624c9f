package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/queuectl/queuectl/internal/store"
)

// seedConfigFile is the shape of a --seed-config YAML document. Every
// field is optional; absent fields leave the store's existing value
// (the seeded defaults from migration, or a prior seed/config-set) in
// place. Grounded on the corpus's only YAML consumer,
// _examples/Napageneral-eve/internal/resources/resources.go.
type seedConfigFile struct {
	MaxRetries     *int `yaml:"max_retries"`
	BackoffBase    *int `yaml:"backoff_base"`
	LeaseSeconds   *int `yaml:"lease_seconds"`
	PollIntervalMS *int `yaml:"poll_interval_ms"`
	TimeoutSeconds *int `yaml:"timeout_seconds"`
}

// applySeedConfig loads path as a seedConfigFile and applies any
// present keys to the store via SetConfig. It is additive only: keys
// the file omits are left untouched.
func applySeedConfig(ctx context.Context, s *store.Store, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("seed-config: %w", err)
	}

	var cfg seedConfigFile
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return fmt.Errorf("seed-config: parsing %s: %w", path, err)
	}

	overrides := map[string]*int{
		"max_retries":      cfg.MaxRetries,
		"backoff_base":     cfg.BackoffBase,
		"lease_seconds":    cfg.LeaseSeconds,
		"poll_interval_ms": cfg.PollIntervalMS,
		"timeout_seconds":  cfg.TimeoutSeconds,
	}
	for key, val := range overrides {
		if val == nil {
			continue
		}
		if err := s.SetConfig(ctx, key, strconv.Itoa(*val)); err != nil {
			return fmt.Errorf("seed-config: set %s: %w", key, err)
		}
	}
	return nil
}
