package skytrail

import (
	"encoding/json"
	"net/http"
)

type healthResponse struct {
	Status         string `json:"status"`
	PlanLoaded     bool   `json:"plan_loaded"`
	LatestFixEpoch int64  `json:"latest_fix_epoch"`
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	plan, _ := CurrentPlan()
	var latest int64
	if ts := Tracker().LatestTimestamp(); !ts.IsZero() {
		latest = ts.Unix()
	}
	resp := healthResponse{
		Status:         "ok",
		PlanLoaded:     plan != nil,
		LatestFixEpoch: latest,
	}
	_ = json.NewEncoder(w).Encode(resp)
}
