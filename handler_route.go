package skytrail

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
)

func handleRoutePosition(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	raw := r.URL.Query().Get("pct")
	pct, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		w.WriteHeader(400)
		_, _ = w.Write(buildErrorPayload("routePosition", "pct must be a number in [0,100]"))
		return
	}

	plan, cache := CurrentPlan()
	if plan == nil {
		w.WriteHeader(404)
		_, _ = w.Write(buildErrorPayload("routePosition", "no flight plan loaded"))
		return
	}
	sample, ok := cache.Nearest(pct)
	if !ok || sample.Poisoned() {
		// Poisoned duration builds an empty cache; either way the position
		// is unknown, never 0%.
		w.WriteHeader(404)
		_, _ = w.Write(buildErrorPayload("routePosition", "route progress unknown"))
		return
	}
	_ = json.NewEncoder(w).Encode(routeSamplePayload(plan, sample))
}

func handleRouteSamples(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	plan, cache := CurrentPlan()
	if plan == nil {
		w.WriteHeader(404)
		_, _ = w.Write(buildErrorPayload("routeSamples", "no flight plan loaded"))
		return
	}
	samples := cache.Samples()
	out := make([]routeSampleResponse, 0, len(samples))
	for _, s := range samples {
		out = append(out, routeSamplePayload(plan, s))
	}
	_ = json.NewEncoder(w).Encode(out)
}

func handleRouteExport(w http.ResponseWriter, r *http.Request) {
	plan, _ := CurrentPlan()
	if plan == nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(404)
		_, _ = w.Write(buildErrorPayload("routeExport", "no flight plan loaded"))
		return
	}
	w.Header().Set("Content-Type", "application/xml")
	w.Header().Set("Content-Disposition", `attachment; filename="flightplan.xml"`)
	if err := plan.WriteXML(w); err != nil {
		// headers already sent; nothing to do but log
		log.Printf("flight plan export error: %v", err)
	}
}
