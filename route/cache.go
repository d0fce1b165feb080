package route

import (
	"math"
	"time"

	"github.com/skytrail/skytrail/flightplan"
)

// sampleIntervalMs is the time spacing between consecutive cached samples.
const sampleIntervalMs = 5 * 60 * 1000

// Sample is one precomputed scrub point: a Progress plus its display-ready
// clock label. Samples are immutable once built.
type Sample struct {
	Progress
	TimeLabel string
}

// Cache holds an ascending-by-percentage sequence of samples for one flight
// plan, so a UI scrubber can resolve "position at X%" without recomputing
// the progress model per frame. It is rebuilt wholesale whenever the plan's
// duration or departure changes; there is no incremental patching.
type Cache struct {
	samples []Sample
}

// BuildCache precomputes evenly time-spaced samples over the journey.
//
// The cache does its own duration accounting: the passed-in flight duration
// is taken taxi-exclusive and a full 20-minute taxi allowance is added on
// top, while ProgressAt treats the same duration as taxi-inclusive. The two
// interpretations coexist by construction; see DESIGN.md before touching
// either side's arithmetic.
func BuildCache(wps []flightplan.Waypoint, departure time.Time, d flightplan.Duration) *Cache {
	c := &Cache{}

	totalMs := d.TotalMs() + 2*taxiMs
	if math.IsNaN(totalMs) || totalMs <= 0 {
		// Unusable duration: an empty cache is the detectable "unknown".
		return c
	}

	steps := int(math.Ceil(totalMs / sampleIntervalMs))
	for i := 0; i <= steps; i++ {
		pct := float64(i) * sampleIntervalMs * 100 / totalMs
		if pct > 100 {
			break
		}
		p := ProgressAt(wps, departure, d, pct)
		c.samples = append(c.samples, Sample{
			Progress:  p,
			TimeLabel: p.WallClock.UTC().Format("15:04"),
		})
	}
	return c
}

// Len returns the number of cached samples.
func (c *Cache) Len() int { return len(c.samples) }

// Samples returns the ascending-by-percentage sample sequence. The slice is
// owned by the cache; callers must not mutate it.
func (c *Cache) Samples() []Sample { return c.samples }

// Nearest returns the cached sample whose percentage is closest to target,
// and false when the cache is empty. When target falls exactly midway
// between two adjacent samples, the higher-indexed one wins; the comparison
// below is strict-less-than on purpose, so scrubbing stays reproducible.
func (c *Cache) Nearest(target float64) (Sample, bool) {
	if len(c.samples) == 0 {
		return Sample{}, false
	}
	if target <= c.samples[0].Percentage {
		return c.samples[0], true
	}
	last := len(c.samples) - 1
	if target >= c.samples[last].Percentage {
		return c.samples[last], true
	}

	low, high := 0, last
	for low <= high {
		mid := (low + high) / 2
		p := c.samples[mid].Percentage
		if p == target {
			return c.samples[mid], true
		}
		if p < target {
			low = mid + 1
		} else {
			high = mid - 1
		}
	}

	// The search terminated with samples[high] < target < samples[low].
	if target-c.samples[high].Percentage < c.samples[low].Percentage-target {
		return c.samples[high], true
	}
	return c.samples[low], true
}
