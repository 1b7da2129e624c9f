// Package clock provides the fixed ISO timestamp format and ID
// generation used throughout queuectl. Every persisted instant is
// UTC, second resolution, formatted as spec.md §6 requires:
// YYYY-MM-DDTHH:MM:SSZ.
package clock

import (
	"time"

	"github.com/google/uuid"
)

// Layout is the fixed timestamp format persisted by the store.
const Layout = "2006-01-02T15:04:05Z"

// Now returns the current instant, truncated to second resolution in
// UTC — the resolution the persisted ISO format actually carries, so
// in-memory comparisons agree with round-tripped values.
func Now() time.Time {
	return time.Now().UTC().Truncate(time.Second)
}

// FormatISO renders t in the fixed UTC second-resolution layout.
func FormatISO(t time.Time) string {
	return t.UTC().Format(Layout)
}

// ParseISO parses a timestamp in the fixed layout. Callers should treat
// the result as opaque except for ordering; the layout exists only to
// make stored instants lexicographically sortable.
func ParseISO(s string) (time.Time, error) {
	return time.Parse(Layout, s)
}

// NewID generates a fresh job identifier (a random UUID, per spec.md §2).
func NewID() string {
	return uuid.New().String()
}
