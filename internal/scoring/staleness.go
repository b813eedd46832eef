package scoring

import "time"

// MaxResultAge is how long a computed match result stays reusable.
const MaxResultAge = 7 * 24 * time.Hour

// IsStale reports whether a result computed at computedAt must be recomputed
// as of now. A zero computedAt (no prior result) is always stale.
func IsStale(computedAt, now time.Time) bool {
	return now.Sub(computedAt) > MaxResultAge
}
