package skytrail

import (
	"sync"
	"time"

	"github.com/mohae/deepcopy"

	"github.com/skytrail/skytrail/config"
	"github.com/skytrail/skytrail/flightplan"
	"github.com/skytrail/skytrail/route"
	"github.com/skytrail/skytrail/track"
)

// Package-level service state. One plan and its sample cache are active at a
// time; the tracker carries every live-followed aircraft. The cache is
// rebuilt wholesale on every plan change, never patched.
var (
	stateMu     sync.RWMutex
	currentPlan *flightplan.Plan
	sampleCache *route.Cache
	trackingCfg config.TrackingConfig

	tracker = track.NewTracker()
	hub     = newHub()
)

// SetTracking installs the tracking section of the selected flight. Fix
// payloads derive their freshness window from it, so it must match the
// config actually driving the poll loop.
func SetTracking(cfg config.TrackingConfig) {
	stateMu.Lock()
	trackingCfg = cfg
	stateMu.Unlock()
}

// effectivePollIntervalMS is the poll interval of the selected flight,
// falling back to the top-level tracking section when none was installed.
func effectivePollIntervalMS() int {
	stateMu.RLock()
	defer stateMu.RUnlock()
	if trackingCfg.PollIntervalMS > 0 {
		return trackingCfg.PollIntervalMS
	}
	return config.Config.Tracking.PollIntervalMS
}

// SetPlan installs a freshly fetched flight plan and rebuilds the scrub
// cache. The plan is deep-copied first so a caller holding the original
// cannot alias into the cache's inputs afterwards.
func SetPlan(p *flightplan.Plan) {
	snap := deepcopy.Copy(p).(*flightplan.Plan)
	cache := route.BuildCache(snap.Waypoints, snap.Departure, snap.Duration)

	stateMu.Lock()
	currentPlan = snap
	sampleCache = cache
	stateMu.Unlock()
}

// CurrentPlan returns the active plan and its sample cache; both are nil
// until the first successful plan fetch.
func CurrentPlan() (*flightplan.Plan, *route.Cache) {
	stateMu.RLock()
	defer stateMu.RUnlock()
	return currentPlan, sampleCache
}

// Tracker returns the shared live-fix registry.
func Tracker() *track.Tracker { return tracker }

// AdvanceAndBroadcast extrapolates every tracked fix to now and pushes the
// results to connected websocket clients. The poll/tick loop in cmd owns the
// schedule; this is one synchronous step of it.
func AdvanceAndBroadcast(now time.Time) {
	fixes := tracker.Advance(now)
	for id, fix := range fixes {
		hub.Broadcast(trackPayload(id, fix))
	}
}
