package flightplan

import (
	"encoding/xml"
	"fmt"
	"io"
	"time"
)

// Flight-plan XML export, a thin wrapper around the plan model for handing
// routes to simulators and EFB apps.

type xmlWaypoint struct {
	XMLName xml.Name `xml:"waypoint"`
	Ident   string   `xml:"ident,omitempty"`
	Lat     float64  `xml:"lat"`
	Lon     float64  `xml:"lon"`
}

type xmlPlan struct {
	XMLName   xml.Name      `xml:"flightplan"`
	Departure string        `xml:"departure"`
	Duration  string        `xml:"duration"`
	Route     []xmlWaypoint `xml:"route>waypoint"`
}

// WriteXML writes the plan as flight-plan XML.
func (p *Plan) WriteXML(w io.Writer) error {
	doc := xmlPlan{
		Departure: p.Departure.UTC().Format(time.RFC3339),
		Duration:  p.Duration.String(),
	}
	for _, wp := range p.Waypoints {
		doc.Route = append(doc.Route, xmlWaypoint{
			Ident: wp.Ident,
			Lat:   wp.Point.Lat,
			Lon:   wp.Point.Lon,
		})
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return fmt.Errorf("failed to write XML header: %w", err)
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode flight plan XML: %w", err)
	}
	return nil
}
