package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/skytrail/skytrail/flightplan"
	"github.com/skytrail/skytrail/geodesy"
	"github.com/skytrail/skytrail/track"
)

// fetcher handles fetching flight plans and live-track feeds from URLs or
// local files. This is CLI-specific logic and is not part of the core
// library.
type fetcher struct {
	httpClient *http.Client
}

// newFetcher creates a new fetcher; timeoutMS of 0 means no timeout.
func newFetcher(timeoutMS int) *fetcher {
	return &fetcher{
		httpClient: &http.Client{Timeout: time.Duration(timeoutMS) * time.Millisecond},
	}
}

// fetch fetches raw bytes from a URL or local file path.
// Returns nil if urlOrPath is empty (allows optional sources).
func (f *fetcher) fetch(urlOrPath string) ([]byte, error) {
	if urlOrPath == "" {
		return nil, nil
	}

	if !strings.HasPrefix(urlOrPath, "http://") && !strings.HasPrefix(urlOrPath, "https://") {
		return os.ReadFile(urlOrPath)
	}

	resp, err := f.httpClient.Get(urlOrPath)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", urlOrPath, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d from %s", resp.StatusCode, urlOrPath)
	}

	return io.ReadAll(resp.Body)
}

// fetchPlan fetches and decodes a flight plan.
func (f *fetcher) fetchPlan(urlOrPath string) (*flightplan.Plan, error) {
	data, err := f.fetch(urlOrPath)
	if err != nil {
		return nil, fmt.Errorf("flight plan: %w", err)
	}
	if data == nil {
		return nil, fmt.Errorf("flight plan: no source configured")
	}
	return flightplan.PlanFromJSON(data)
}

// fixDocument is the wire shape of one aircraft state in the tracking feed.
type fixDocument struct {
	ID         string  `json:"id"`
	Lat        float64 `json:"lat"`
	Lon        float64 `json:"lon"`
	SpeedKmh   float64 `json:"speedKmh"`
	HeadingDeg float64 `json:"headingDeg"`
	OnGround   bool    `json:"onGround"`
	Timestamp  int64   `json:"timestamp"` // unix seconds
}

// fetchFixes fetches and decodes the live tracking feed. An empty source
// yields no fixes, not an error.
func (f *fetcher) fetchFixes(urlOrPath string) (map[string]track.LiveFix, error) {
	data, err := f.fetch(urlOrPath)
	if err != nil {
		return nil, fmt.Errorf("track feed: %w", err)
	}
	if data == nil {
		return nil, nil
	}

	var docs []fixDocument
	if err := json.Unmarshal(data, &docs); err != nil {
		return nil, fmt.Errorf("track feed: failed to decode: %w", err)
	}

	fixes := make(map[string]track.LiveFix, len(docs))
	for _, d := range docs {
		if d.ID == "" {
			continue
		}
		fixes[d.ID] = track.LiveFix{
			Position:   geodesy.Point{Lat: d.Lat, Lon: d.Lon},
			SpeedKmh:   d.SpeedKmh,
			HeadingDeg: d.HeadingDeg,
			OnGround:   d.OnGround,
			Timestamp:  time.Unix(d.Timestamp, 0),
		}
	}
	return fixes, nil
}
