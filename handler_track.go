package skytrail

import (
	"encoding/json"
	"net/http"
)

func handleTrackPosition(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	id := r.URL.Query().Get("id")
	if id == "" {
		w.WriteHeader(400)
		_, _ = w.Write(buildErrorPayload("trackPosition", "id is required"))
		return
	}

	fix, ok := Tracker().Fix(id)
	if !ok {
		w.WriteHeader(404)
		_, _ = w.Write(buildErrorPayload("trackPosition", "no live position yet"))
		return
	}
	_ = json.NewEncoder(w).Encode(trackPayload(id, fix))
}

func handleTrackList(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	tr := Tracker()
	out := make([]trackResponse, 0)
	for _, id := range tr.IDs() {
		if fix, ok := tr.Fix(id); ok {
			out = append(out, trackPayload(id, fix))
		}
	}
	_ = json.NewEncoder(w).Encode(out)
}
