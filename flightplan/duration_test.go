package flightplan

import (
	"testing"
)

func TestParseDuration(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		wantHours   float64
		wantMinutes float64
		wantPoison  bool
	}{
		{
			name:        "one hour",
			input:       "1h 0m",
			wantHours:   1,
			wantMinutes: 0,
		},
		{
			name:        "hours and minutes",
			input:       "2h 30m",
			wantHours:   2,
			wantMinutes: 30,
		},
		{
			name:        "long haul",
			input:       "14h 55m",
			wantHours:   14,
			wantMinutes: 55,
		},
		{
			name:        "surrounding whitespace",
			input:       "  3h 15m ",
			wantHours:   3,
			wantMinutes: 15,
		},
		{
			name:       "empty",
			input:      "",
			wantPoison: true,
		},
		{
			name:       "missing minutes",
			input:      "2h",
			wantPoison: true,
		},
		{
			name:       "wrong suffixes",
			input:      "2m 30h",
			wantPoison: true,
		},
		{
			name:       "non-numeric",
			input:      "xh ym",
			wantPoison: true,
		},
		{
			name:       "minutes out of range",
			input:      "1h 75m",
			wantPoison: true,
		},
		{
			name:       "negative hours",
			input:      "-1h 30m",
			wantPoison: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := ParseDuration(tt.input)
			if tt.wantPoison {
				if !d.Poisoned() {
					t.Errorf("ParseDuration(%q) = %+v, want poisoned", tt.input, d)
				}
				return
			}
			if d.Poisoned() {
				t.Fatalf("ParseDuration(%q) poisoned, want %gh %gm", tt.input, tt.wantHours, tt.wantMinutes)
			}
			if d.Hours != tt.wantHours || d.Minutes != tt.wantMinutes {
				t.Errorf("ParseDuration(%q) = %+v, want %gh %gm", tt.input, d, tt.wantHours, tt.wantMinutes)
			}
		})
	}
}

func TestDurationTotalMs(t *testing.T) {
	d := ParseDuration("2h 30m")
	if got := d.TotalMs(); got != 9000000 {
		t.Errorf("TotalMs() = %g, want 9000000", got)
	}
}

func TestDurationString(t *testing.T) {
	if s := ParseDuration("2h 5m").String(); s != "2h 5m" {
		t.Errorf("String() = %q, want %q", s, "2h 5m")
	}
	if s := ParseDuration("garbage").String(); s != "unknown" {
		t.Errorf("poisoned String() = %q, want %q", s, "unknown")
	}
}
