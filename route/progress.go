package route

import (
	"math"
	"time"

	"github.com/skytrail/skytrail/flightplan"
	"github.com/skytrail/skytrail/geodesy"
)

// taxiMs is the fixed ground-movement time reserved at each end of the
// journey: gate-to-runway before takeoff and runway-to-gate after landing.
// The flight's total duration is assumed to already include both phases.
const taxiMs = 10 * 60 * 1000

// Progress is the position and wall-clock time corresponding to one
// elapsed-percentage query. Percentage echoes the query value, not the
// taxi-adjusted placement percentage.
type Progress struct {
	Position   geodesy.Point
	WallClock  time.Time
	Percentage float64
}

// Poisoned reports whether the progress came from an unusable duration
// (malformed string or zero total). Poisoned progress must be surfaced as
// "unknown", never treated as 0%.
func (p Progress) Poisoned() bool {
	return math.IsNaN(p.Position.Lat)
}

// ProgressAt converts pct, an elapsed percentage in [0,100] over the whole
// journey (taxi + airborne), into a position on the waypoint polyline and a
// wall-clock instant.
//
// The percentage is first remapped for spatial placement: queries inside
// the leading taxi band pin to the first waypoint, queries inside the
// trailing band pin to the last, and the middle band is rescaled to
// [0,100]. The wall-clock time always comes from the unadjusted query
// percentage, since taxiing consumes real time without route movement.
func ProgressAt(wps []flightplan.Waypoint, departure time.Time, d flightplan.Duration, pct float64) Progress {
	if len(wps) < 2 {
		pos := geodesy.Point{}
		if len(wps) == 1 {
			pos = wps[0].Point
		}
		return Progress{Position: pos, WallClock: departure, Percentage: 0}
	}

	totalMs := d.TotalMs()
	if math.IsNaN(totalMs) || totalMs == 0 {
		// Division by zero below would poison every derived value anyway;
		// apply the NaN up front so there is no int conversion on NaN.
		return Progress{
			Position:   geodesy.Point{Lat: math.NaN(), Lon: math.NaN()},
			Percentage: pct,
		}
	}

	taxiPct := taxiMs / totalMs * 100

	var adjusted float64
	switch {
	case pct <= taxiPct:
		adjusted = 0 // still taxiing out
	case pct >= 100-taxiPct:
		adjusted = 100 // taxiing in
	default:
		adjusted = (pct - taxiPct) / (100 - 2*taxiPct) * 100
	}

	elapsed := time.Duration(totalMs*pct/100) * time.Millisecond
	wallClock := departure.Add(elapsed)

	return Progress{
		Position:   positionAt(wps, adjusted),
		WallClock:  wallClock,
		Percentage: pct,
	}
}

// positionAt linearly interpolates adjusted (a [0,100] placement
// percentage) along the polyline, lat and lon independently.
func positionAt(wps []flightplan.Waypoint, adjusted float64) geodesy.Point {
	// Exact boundary clamp avoids indexing past the final segment.
	if adjusted <= 0 {
		return wps[0].Point
	}
	if adjusted >= 100 {
		return wps[len(wps)-1].Point
	}

	segments := float64(len(wps) - 1)
	segFloat := adjusted * segments / 100
	segIdx := int(math.Floor(segFloat))
	frac := segFloat - float64(segIdx)

	a := wps[segIdx].Point
	b := wps[segIdx+1].Point
	return geodesy.Point{
		Lat: a.Lat + frac*(b.Lat-a.Lat),
		Lon: a.Lon + frac*(b.Lon-a.Lon),
	}
}
