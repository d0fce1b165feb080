package flightplan

import (
	"math"
	"strconv"
	"strings"
)

// Duration is a planned flight duration in the canonical "<H>h <M>m" string
// form used by the planning API. Fields are float64 so that a malformed
// string yields NaN fields that poison downstream arithmetic instead of
// silently reading as zero.
type Duration struct {
	Hours   float64
	Minutes float64
}

// ParseDuration parses "<H>h <M>m", e.g. "2h 30m". Any malformed input
// returns a Duration with both fields NaN.
func ParseDuration(s string) Duration {
	poisoned := Duration{Hours: math.NaN(), Minutes: math.NaN()}

	parts := strings.Fields(strings.TrimSpace(s))
	if len(parts) != 2 {
		return poisoned
	}
	if !strings.HasSuffix(parts[0], "h") || !strings.HasSuffix(parts[1], "m") {
		return poisoned
	}

	h, err := strconv.Atoi(strings.TrimSuffix(parts[0], "h"))
	if err != nil || h < 0 {
		return poisoned
	}
	m, err := strconv.Atoi(strings.TrimSuffix(parts[1], "m"))
	if err != nil || m < 0 || m > 59 {
		return poisoned
	}

	return Duration{Hours: float64(h), Minutes: float64(m)}
}

// TotalMs returns the duration in milliseconds. NaN fields propagate.
func (d Duration) TotalMs() float64 {
	return d.Hours*3600000 + d.Minutes*60000
}

// Poisoned reports whether the duration came from a malformed string.
func (d Duration) Poisoned() bool {
	return math.IsNaN(d.Hours) || math.IsNaN(d.Minutes)
}

// String renders the canonical "<H>h <M>m" form. A poisoned duration
// renders as "unknown".
func (d Duration) String() string {
	if d.Poisoned() {
		return "unknown"
	}
	return strconv.Itoa(int(d.Hours)) + "h " + strconv.Itoa(int(d.Minutes)) + "m"
}
