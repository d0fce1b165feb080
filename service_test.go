package skytrail

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/skytrail/skytrail/config"
	"github.com/skytrail/skytrail/flightplan"
	"github.com/skytrail/skytrail/geodesy"
	"github.com/skytrail/skytrail/track"
)

func testPlan() *flightplan.Plan {
	return &flightplan.Plan{
		Waypoints: []flightplan.Waypoint{
			{Point: geodesy.Point{Lat: 0, Lon: 0}, Ident: "DEP"},
			{Point: geodesy.Point{Lat: 0, Lon: 10}, Ident: "ARR"},
		},
		Departure: time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC),
		Duration:  flightplan.ParseDuration("2h 0m"),
	}
}

func resetState() {
	stateMu.Lock()
	currentPlan = nil
	sampleCache = nil
	trackingCfg = config.TrackingConfig{}
	stateMu.Unlock()
	tracker = track.NewTracker()
	hub = newHub()
}

func TestSetPlanRebuildsCache(t *testing.T) {
	resetState()
	p := testPlan()
	SetPlan(p)

	plan, cache := CurrentPlan()
	if plan == nil || cache == nil {
		t.Fatal("plan/cache not installed")
	}
	if cache.Len() == 0 {
		t.Fatal("cache empty for valid plan")
	}

	// The installed plan is a snapshot: mutating the caller's copy must
	// not reach the service state.
	p.Waypoints[0].Ident = "MUTATED"
	plan, _ = CurrentPlan()
	if plan.Waypoints[0].Ident != "DEP" {
		t.Errorf("installed plan aliases caller's waypoints: %q", plan.Waypoints[0].Ident)
	}
}

func TestHandleRoutePosition(t *testing.T) {
	resetState()
	SetPlan(testPlan())

	req := httptest.NewRequest(http.MethodGet, "/api/route/position?pct=50", nil)
	rec := httptest.NewRecorder()
	handleRoutePosition(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	var resp routeSampleResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if resp.Percentage < 45 || resp.Percentage > 55 {
		t.Errorf("nearest sample percentage = %g, want ~50", resp.Percentage)
	}
	if resp.TimeLabel == "" || resp.Time == "" {
		t.Errorf("missing time fields: %+v", resp)
	}
	if resp.Remaining == "unknown" {
		t.Errorf("remaining distance should be known: %+v", resp)
	}
}

func TestHandleRoutePositionBadRequest(t *testing.T) {
	resetState()
	SetPlan(testPlan())

	req := httptest.NewRequest(http.MethodGet, "/api/route/position?pct=half", nil)
	rec := httptest.NewRecorder()
	handleRoutePosition(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestHandleRoutePositionNoPlan(t *testing.T) {
	resetState()

	req := httptest.NewRequest(http.MethodGet, "/api/route/position?pct=50", nil)
	rec := httptest.NewRecorder()
	handleRoutePosition(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestHandleRoutePositionPoisonedPlan(t *testing.T) {
	resetState()
	p := testPlan()
	p.Duration = flightplan.ParseDuration("garbage")
	SetPlan(p)

	req := httptest.NewRequest(http.MethodGet, "/api/route/position?pct=50", nil)
	rec := httptest.NewRecorder()
	handleRoutePosition(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Errorf("poisoned plan: status = %d, want 404 (unknown, never 0%%)", rec.Code)
	}
}

func TestHandleTrackPosition(t *testing.T) {
	resetState()
	Tracker().Update("BA117", track.LiveFix{
		Position:   geodesy.Point{Lat: 50, Lon: -10},
		SpeedKmh:   850,
		HeadingDeg: 270,
		Timestamp:  time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC),
	})

	req := httptest.NewRequest(http.MethodGet, "/api/track/position?id=BA117", nil)
	rec := httptest.NewRecorder()
	handleTrackPosition(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	var resp trackResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if resp.ID != "BA117" || resp.Position.Lat != 50 {
		t.Errorf("unexpected fix payload: %+v", resp)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/track/position?id=UNKNOWN", nil)
	rec = httptest.NewRecorder()
	handleTrackPosition(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Errorf("unknown aircraft: status = %d, want 404", rec.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/track/position", nil)
	rec = httptest.NewRecorder()
	handleTrackPosition(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("missing id: status = %d, want 400", rec.Code)
	}
}

func TestHandleTrackPositionFlightPollInterval(t *testing.T) {
	resetState()
	SetTracking(config.TrackingConfig{PollIntervalMS: 5000})
	Tracker().Update("BA117", track.LiveFix{
		Position:  geodesy.Point{Lat: 50, Lon: -10},
		Timestamp: time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC),
	})

	req := httptest.NewRequest(http.MethodGet, "/api/track/position?id=BA117", nil)
	rec := httptest.NewRecorder()
	handleTrackPosition(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	var resp trackResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}

	// The freshness window follows the selected flight's poll interval,
	// not the top-level tracking section.
	if resp.ValidUntil != "2026-03-14T12:00:05Z" {
		t.Errorf("validUntil = %q, want timestamp + 5s", resp.ValidUntil)
	}
}

func TestHandleRouteExport(t *testing.T) {
	resetState()
	SetPlan(testPlan())

	req := httptest.NewRequest(http.MethodGet, "/api/route/export", nil)
	rec := httptest.NewRecorder()
	handleRouteExport(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/xml" {
		t.Errorf("content type = %q", ct)
	}
	if !strings.Contains(rec.Body.String(), "<ident>DEP</ident>") {
		t.Errorf("export missing waypoint: %s", rec.Body.String())
	}
}

func TestHandleHealth(t *testing.T) {
	resetState()
	SetPlan(testPlan())

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()
	handleHealth(rec, req)
	var resp healthResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad health body: %v", err)
	}
	if resp.Status != "ok" || !resp.PlanLoaded {
		t.Errorf("health = %+v", resp)
	}
}
