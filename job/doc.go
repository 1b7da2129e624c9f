// Package job defines the Job aggregate — a shell command managed by
// queuectl's durable queue — and its lifecycle Status.
//
// A Job carries delivery and scheduling metadata (Status, Attempts,
// LockedUntil, RunAt, Priority) alongside the command string itself.
// These fields are maintained exclusively by a Store implementation;
// Job values returned to callers are snapshots and are not intended to
// be constructed or mutated directly by user code.
package job
