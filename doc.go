// Package queuectl provides a persistent, multi-worker job queue backed
// by a transactional SQL store, with leased acquisition, exponential
// backoff retry, and a dead-letter queue (DLQ).
//
// # Overview
//
// queuectl models jobs as shell commands. Producers enqueue a command
// string; independent worker processes contend for jobs over a shared
// durable store and run them via the executor package. The package does
// not mandate any particular storage backend, but ships one SQL-backed
// implementation (internal/store) built on modernc.org/sqlite and
// uptrace/bun.
//
// # Delivery Semantics
//
// queuectl provides at-least-once execution. A job may run more than
// once if a worker crashes before completing it or its lease expires
// before it finishes. Commands are expected to be idempotent.
//
// # Lease Model
//
// Acquiring a job transitions it from Pending (or Failed, once its
// RunAt has elapsed) to Processing and assigns a visibility timeout
// (LockedUntil). While the lease is valid the job is invisible to other
// workers. If a worker's lease expires before it finishes — because the
// worker crashed, or because the command outran the lease and the
// worker's extension loop could not keep up — the job becomes eligible
// for acquisition again, passively, with no explicit fencing of the
// previous holder beyond the worker_id check on terminal writes.
//
// # State Machine
//
//	Pending    -> Processing
//	Failed     -> Processing
//	Processing -> Completed
//	Processing -> Failed   (retries remain; RunAt = now + backoff)
//	Processing -> Dead     (retries exhausted)
//	Dead       -> Pending  (explicit DLQ retry only)
//
// Completed and Dead are terminal; Dead is revived only by an explicit
// DLQ retry.
//
// # Retry Policy
//
// Retry behavior is controlled by the backoff_base config key: the
// delay before a Failed job becomes eligible again is
// backoff_base^attempts seconds, saturating at a one-week ceiling (see
// package backoff). Attempts exceeding max_retries move the job to Dead
// instead of Failed.
//
// # Interfaces
//
// queuectl defines the following capability interfaces, implemented
// together by internal/store.Store:
//
//	Enqueuer        — insert new jobs
//	Leaser          — acquire, extend, complete and fail jobs
//	Observer        — inspect job state and aggregate status
//	DeadLetterQueue — list and revive dead jobs
//	Logger          — append and fetch per-attempt execution logs
//	Cleaner         — remove terminal jobs past a retention cutoff
//
// This separation lets a future storage backend implement only the
// subset of interfaces it needs without coupling queue logic to SQL.
//
// # Concurrency Model
//
// Parallelism is across OS processes, not goroutines: each worker
// (internal/worker.Worker) runs a single poll/execute loop, and the
// store's guarded-UPDATE acquisition protocol is what makes concurrent
// workers safe, not in-process coordination. See internal/worker and
// internal/controller.
package queuectl
