package queuectl

import "context"

// Repository is the full job-repository capability surface: enqueue,
// lease-acquire, complete/fail, list, DLQ, logging, and cleanup. A
// storage backend satisfies Repository by implementing each smaller
// interface; internal/store.Store implements all of them against a
// single SQL schema.
//
// Callers that only need a subset (for example, a read-only admin tool)
// should depend on the narrower interface (Observer, DeadLetterQueue,
// ...) rather than Repository.
type Repository interface {
	Enqueuer
	Leaser
	Observer
	DeadLetterQueue
	Logger
	Cleaner
}

// ConfigAccessor is the typed tuning-key surface described by
// spec.md §3 "Config". Keys are plain strings; GetConfigInt parses the
// stored value as a base-10 integer.
type ConfigAccessor interface {
	// GetConfig returns the raw string value of key, or ErrUnknownConfigKey
	// if no row exists.
	GetConfig(ctx context.Context, key string) (string, error)

	// GetConfigInt is GetConfig followed by strconv.Atoi.
	GetConfigInt(ctx context.Context, key string) (int, error)

	// SetConfig upserts key to value.
	SetConfig(ctx context.Context, key string, value string) error
}
