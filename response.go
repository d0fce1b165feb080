package skytrail

import (
	"encoding/json"

	"github.com/skytrail/skytrail/flightplan"
	"github.com/skytrail/skytrail/geodesy"
	"github.com/skytrail/skytrail/route"
	"github.com/skytrail/skytrail/track"
	"github.com/skytrail/skytrail/utils"
)

type errorResponse struct {
	Source string `json:"source"`
	Error  string `json:"error"`
}

func buildErrorPayload(source, msg string) []byte {
	b, _ := json.Marshal(errorResponse{Source: source, Error: msg})
	return b
}

// routeSampleResponse is one scrub point as the map UI consumes it.
type routeSampleResponse struct {
	Position   geodesy.Point `json:"position"`
	Time       string        `json:"time"`
	TimeLabel  string        `json:"timeLabel"`
	Percentage float64       `json:"percentage"`
	Remaining  string        `json:"remaining"`
}

func routeSamplePayload(p *flightplan.Plan, s route.Sample) routeSampleResponse {
	remaining := "unknown"
	if !s.Poisoned() && len(p.Waypoints) > 0 {
		dest := p.Waypoints[len(p.Waypoints)-1].Point
		km := float64(geodesy.HaversineDistanceMeters(s.Position, dest)) / 1000
		remaining = utils.PresentableDistance(km)
	}
	return routeSampleResponse{
		Position:   s.Position,
		Time:       utils.Iso8601FromTime(s.WallClock),
		TimeLabel:  s.TimeLabel,
		Percentage: s.Percentage,
		Remaining:  remaining,
	}
}

// trackResponse is one live fix as broadcast to the map UI.
type trackResponse struct {
	ID         string        `json:"id"`
	Position   geodesy.Point `json:"position"`
	SpeedKmh   float64       `json:"speedKmh"`
	HeadingDeg float64       `json:"headingDeg"`
	OnGround   bool          `json:"onGround"`
	Timestamp  string        `json:"timestamp"`
	ValidUntil string        `json:"validUntil,omitempty"`
}

func trackPayload(id string, fix track.LiveFix) trackResponse {
	return trackResponse{
		ID:         id,
		Position:   fix.Position,
		SpeedKmh:   fix.SpeedKmh,
		HeadingDeg: fix.HeadingDeg,
		OnGround:   fix.OnGround,
		Timestamp:  utils.Iso8601FromTime(fix.Timestamp),
		ValidUntil: utils.ValidUntilFrom(fix.Timestamp, effectivePollIntervalMS()),
	}
}
