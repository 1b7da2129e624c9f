package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	qc "github.com/queuectl/queuectl"
)

// GetConfig returns the raw string value of key, or qc.ErrUnknownConfigKey
// if no row exists. Mirrors original_source/queuectl/config.py:get_config.
func (s *Store) GetConfig(ctx context.Context, key string) (string, error) {
	var row configModel
	err := s.db.NewSelect().
		Model(&row).
		Where("key = ?", key).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", qc.ErrUnknownConfigKey
		}
		return "", err
	}
	return row.Value, nil
}

// GetConfigInt is GetConfig followed by strconv.Atoi.
func (s *Store) GetConfigInt(ctx context.Context, key string) (int, error) {
	v, err := s.GetConfig(ctx, key)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("store: config key %q is not an integer: %w", key, err)
	}
	return n, nil
}

// SetConfig upserts key to value. backoff_base is validated as a
// positive integer: a base of 0 or less would make Delay's
// exponentiation meaningless, so it is rejected here rather than
// silently clamped later at read time (see internal/backoff.Delay).
func (s *Store) SetConfig(ctx context.Context, key string, value string) error {
	if key == "backoff_base" {
		n, err := strconv.Atoi(value)
		if err != nil || n <= 0 {
			return fmt.Errorf("%w: backoff_base must be a positive integer, got %q", qc.ErrInvalidConfigValue, value)
		}
	}

	_, err := s.db.NewInsert().
		Model(&configModel{Key: key, Value: value}).
		On("CONFLICT (key) DO UPDATE").
		Set("value = EXCLUDED.value").
		Exec(ctx)
	return err
}

// configDefaultMaxRetries reads max_retries for Enqueue's fallback, and
// is kept separate from GetConfigInt so Enqueue can surface a store
// error distinctly from an absent override.
func (s *Store) configDefaultMaxRetries(ctx context.Context) (uint32, error) {
	n, err := s.GetConfigInt(ctx, "max_retries")
	if err != nil {
		return 0, err
	}
	if n < 0 {
		n = 0
	}
	return uint32(n), nil
}

func (s *Store) configBackoffBase(ctx context.Context) (uint64, error) {
	n, err := s.GetConfigInt(ctx, "backoff_base")
	if err != nil {
		return 0, err
	}
	if n < 2 {
		n = 2
	}
	return uint64(n), nil
}
