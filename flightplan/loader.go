package flightplan

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/skytrail/skytrail/geodesy"
)

// planDocument is the wire shape the planning API returns.
type planDocument struct {
	Departure string `json:"departure"`
	Duration  string `json:"duration"`
	Waypoints []struct {
		Ident string  `json:"ident"`
		Lat   float64 `json:"lat"`
		Lon   float64 `json:"lon"`
	} `json:"waypoints"`
}

// PlanFromJSON decodes a flight plan from the raw JSON body of a planning
// API response. The duration string is parsed as-is; a malformed value
// produces a plan with a poisoned Duration rather than an error, matching
// how the UI surfaces it as "unknown".
func PlanFromJSON(data []byte) (*Plan, error) {
	var doc planDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode flight plan: %w", err)
	}

	departure, err := time.Parse(time.RFC3339, doc.Departure)
	if err != nil {
		return nil, fmt.Errorf("failed to parse departure time %q: %w", doc.Departure, err)
	}

	p := &Plan{
		Departure: departure,
		Duration:  ParseDuration(doc.Duration),
		Waypoints: make([]Waypoint, 0, len(doc.Waypoints)),
	}
	for _, w := range doc.Waypoints {
		p.Waypoints = append(p.Waypoints, Waypoint{
			Point: geodesy.Point{Lat: w.Lat, Lon: w.Lon},
			Ident: w.Ident,
		})
	}
	return p, nil
}
