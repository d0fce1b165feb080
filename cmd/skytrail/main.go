package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	lib "github.com/skytrail/skytrail"
	"github.com/skytrail/skytrail/config"
)

func main() {
	mode := flag.String("mode", "oneshot", "oneshot|serve")
	flightName := flag.String("flight", "", "flight name from config.flights[]")
	planSrc := flag.String("plan", "", "flight plan URL or file path (overrides config)")
	trackSrc := flag.String("track", "", "tracking feed URL or file path (overrides config)")
	pct := flag.Float64("pct", 0, "elapsed percentage to resolve in oneshot mode")
	export := flag.String("export", "", "write the flight plan as XML to this path and exit")
	flag.Parse()

	lib.InitLogging()
	if err := config.LoadAppConfig(); err != nil {
		panic(err)
	}

	planCfg, trackCfg := config.SelectFlight(*flightName)
	lib.SetTracking(trackCfg)
	planSource := planCfg.PlanURL
	if planSource == "" {
		planSource = planCfg.PlanPath
	}
	if *planSrc != "" {
		planSource = *planSrc
	}
	trackSource := trackCfg.FeedURL
	if *trackSrc != "" {
		trackSource = *trackSrc
	}

	f := newFetcher(trackCfg.TimeoutMS)
	plan, err := f.fetchPlan(planSource)
	if err != nil {
		panic(err)
	}
	lib.SetPlan(plan)

	if *export != "" {
		out, err := os.Create(*export)
		if err != nil {
			panic(err)
		}
		defer func() { _ = out.Close() }()
		if err := plan.WriteXML(out); err != nil {
			panic(err)
		}
		log.Printf("flight plan written to %s", *export)
		return
	}

	switch *mode {
	case "oneshot":
		_, cache := lib.CurrentPlan()
		sample, ok := cache.Nearest(*pct)
		if !ok {
			panic("route progress unknown (empty or poisoned sample cache)")
		}
		buf, err := json.MarshalIndent(sample, "", "  ")
		if err != nil {
			panic(err)
		}
		fmt.Println(string(buf))
	case "serve":
		go pollLoop(f, trackSource, trackCfg)
		lib.StartServer()
		lib.HandleGracefulShutdown()
	default:
		panic("unknown mode")
	}
}

// pollLoop owns all scheduling: the core stays pure and is invoked on each
// tick. Authoritative fixes arrive on the poll interval; dead-reckoning
// ticks keep markers moving in between.
func pollLoop(f *fetcher, trackSource string, trackCfg config.TrackingConfig) {
	if trackSource == "" {
		log.Printf("no tracking feed configured; live tracking disabled")
		return
	}

	poll := time.NewTicker(time.Duration(trackCfg.PollIntervalMS) * time.Millisecond)
	tick := time.NewTicker(time.Duration(trackCfg.TickIntervalMS) * time.Millisecond)
	defer poll.Stop()
	defer tick.Stop()

	refresh := func() {
		fixes, err := f.fetchFixes(trackSource)
		if err != nil {
			log.Printf("track poll failed: %v", err)
			return
		}
		for id, fix := range fixes {
			lib.Tracker().Update(id, fix)
		}
	}

	refresh()
	for {
		select {
		case <-poll.C:
			refresh()
		case <-tick.C:
			lib.AdvanceAndBroadcast(time.Now())
		}
	}
}
