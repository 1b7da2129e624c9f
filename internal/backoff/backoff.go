// Package backoff computes the retry delay for a failed job.
//
// Delay is the pure function delay(base, attempts) = base^attempts
// seconds from spec.md §4.4, adapted from the teacher library's
// configurable backoffCounter (RomanQed-gqs/backoff.go) down to the
// single knob the spec actually names: no jitter, no multiplier —
// just a base and a saturating ceiling so the computed delay never
// overflows a machine-width duration (spec.md §9, "Implementers MUST
// saturate at a reasonable ceiling").
package backoff

import "time"

// Ceiling caps the computed delay at one week, per spec.md §9's
// "reasonable ceiling (e.g. one week)" suggestion.
const Ceiling = 7 * 24 * time.Hour

// Counter computes retry delays for a fixed base and retry limit.
type Counter struct {
	// Base is the exponential base (backoff_base config key).
	Base uint64

	// MaxRetries is the maximum number of retries before a job is
	// considered exhausted.
	MaxRetries uint32
}

// Next returns the delay before a job may be retried after attempts
// failures (attempts counted after the increment for this failure), and
// whether a retry is still allowed. When attempts exceeds MaxRetries,
// Next returns (0, false) and the caller should move the job to Dead
// instead of Failed.
func (c Counter) Next(attempts uint32) (time.Duration, bool) {
	if attempts > c.MaxRetries {
		return 0, false
	}
	return Delay(c.Base, attempts), true
}

// Delay computes base^attempts seconds, saturating at Ceiling. base < 2
// is treated as 2 (a base of 0 or 1 would never grow the delay, which
// defeats the point of exponential backoff; the config accessor also
// rejects non-positive bases at write time, see internal/store).
func Delay(base uint64, attempts uint32) time.Duration {
	if base < 2 {
		base = 2
	}
	var seconds uint64 = 1
	for i := uint32(0); i < attempts; i++ {
		seconds *= base
		if seconds > uint64(Ceiling/time.Second) {
			return Ceiling
		}
	}
	return time.Duration(seconds) * time.Second
}
