package expiry

import (
	"math"
	"time"
)

// Status classifies how close an ingredient is to its expiry date.
type Status string

const (
	StatusNoExpiry     Status = "no-expiry"
	StatusFresh        Status = "fresh"
	StatusExpiringSoon Status = "expiring-soon"
	StatusExpired      Status = "expired"
)

const (
	// Ingredients expiring within this many days count as "expiring-soon".
	expiringSoonDays = 3
	// Urgency scores are only defined within this window.
	urgencyWindowDays = 7
)

// DaysUntil returns the number of days until expiry, rounded up, so an
// ingredient expiring later today still reports 0 rather than -1. The
// second return is false when the ingredient does not expire.
func DaysUntil(expiresAt *time.Time, now time.Time) (int, bool) {
	if expiresAt == nil {
		return 0, false
	}
	return int(math.Ceil(expiresAt.Sub(now).Hours() / 24)), true
}

// StatusFor classifies an expiry timestamp relative to now. Any
// timestamp, including malformed or past-epoch values, is treated as
// already expired once it is behind now.
func StatusFor(expiresAt *time.Time, now time.Time) Status {
	days, ok := DaysUntil(expiresAt, now)
	if !ok {
		return StatusNoExpiry
	}
	switch {
	case days < 0:
		return StatusExpired
	case days <= expiringSoonDays:
		return StatusExpiringSoon
	default:
		return StatusFresh
	}
}

// UrgencyScore converts an expiry timestamp into a numeric search
// priority: 7 for an ingredient expiring today down to 0 at seven days
// out. Outside the [0,7] day window the ingredient carries no urgency
// weight and the second return is false.
func UrgencyScore(expiresAt *time.Time, now time.Time) (int, bool) {
	days, ok := DaysUntil(expiresAt, now)
	if !ok || days < 0 || days > urgencyWindowDays {
		return 0, false
	}
	return urgencyWindowDays - days, true
}
