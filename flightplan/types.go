package flightplan

import (
	"time"

	"github.com/skytrail/skytrail/geodesy"
)

// Waypoint is a route fix: a coordinate plus an optional identifier.
type Waypoint struct {
	Point geodesy.Point
	Ident string
}

// Plan is one flight plan as returned by the planning API. Waypoints are
// ordered departure-first; a plan with fewer than 2 waypoints is a
// legitimate transient state while data loads, not an error.
type Plan struct {
	Waypoints []Waypoint
	Departure time.Time
	Duration  Duration
}

// Arrival returns the scheduled arrival instant. With a poisoned duration
// the offset is undefined; the departure instant is returned unchanged so
// callers can detect the condition via Duration.Poisoned.
func (p *Plan) Arrival() time.Time {
	if p.Duration.Poisoned() {
		return p.Departure
	}
	return p.Departure.Add(time.Duration(p.Duration.TotalMs()) * time.Millisecond)
}
