package utils

import (
	"fmt"
	"math"
)

const (
	// NauticalMilesPerKilometer converts km to NM for cockpit-style readouts.
	NauticalMilesPerKilometer = 0.539957
	arrivedM                  = 2000.0
	approachingKM             = 50.0
)

// PresentableDistance formats the distance remaining to the destination for
// display. Long distances show whole nautical miles, the approach band shows
// kilometers with one decimal, and inside the airport perimeter the readout
// switches to a phase label.
func PresentableDistance(remainingKM float64) string {
	if math.IsNaN(remainingKM) {
		return "unknown"
	}
	if remainingKM*1000 < arrivedM {
		return "arriving"
	}
	if remainingKM < approachingKM {
		return fmt.Sprintf("%.1f km", remainingKM)
	}
	nm := remainingKM * NauticalMilesPerKilometer
	return fmt.Sprintf("%d NM", int(math.Round(nm)))
}
