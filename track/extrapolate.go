package track

import (
	"time"

	"github.com/skytrail/skytrail/geodesy"
)

// MinExtrapolationSpeedKmh is the gating threshold: below it a fix is
// treated as stationary and only its timestamp advances.
const MinExtrapolationSpeedKmh = 50.0

// LiveFix is the last known state of one tracked aircraft. A fix is
// replaced wholesale, never edited in place: fresh API polls are
// authoritative, extrapolation ticks are derived.
type LiveFix struct {
	Position   geodesy.Point
	SpeedKmh   float64
	HeadingDeg float64
	Timestamp  time.Time
	OnGround   bool
}

// Extrapolate advances fix to now by dead reckoning along the reported
// heading at the reported ground speed. Grounded or slow fixes keep their
// position and only refresh the timestamp.
func Extrapolate(fix LiveFix, now time.Time) LiveFix {
	next := fix
	next.Timestamp = now

	if fix.OnGround || fix.SpeedKmh < MinExtrapolationSpeedKmh {
		return next
	}

	elapsedSec := now.Sub(fix.Timestamp).Seconds()
	distanceKM := fix.SpeedKmh * elapsedSec / 3600
	next.Position = geodesy.DestinationPoint(fix.Position, distanceKM, fix.HeadingDeg)
	return next
}
