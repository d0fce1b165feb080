package config

import (
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config is the global application configuration
var Config AppConfig

// LoadAppConfig loads and validates the application configuration from config.yml
func LoadAppConfig() error {
	paths := []string{"config.yml", "./configs/config.yml"}
	var data []byte
	var err error
	for _, p := range paths {
		data, err = os.ReadFile(p)
		if err == nil {
			break
		}
	}
	if err != nil {
		return err
	}
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return err
	}
	v := validator.New()
	if err := v.Struct(cfg.Server); err != nil {
		return err
	}
	// flights are optional; if present validate each
	for _, f := range cfg.Flights {
		if err := v.Struct(f); err != nil {
			return err
		}
	}
	Config = cfg
	if Config.Server.Port == 0 {
		Config.Server.Port = 16190
	}
	applyTrackingDefaults(&Config.Tracking)
	for i := range Config.Flights {
		applyTrackingDefaults(&Config.Flights[i].Tracking)
	}
	return nil
}

// applyTrackingDefaults fills in the scheduling intervals a config section
// omitted. Every TrackingConfig handed out by SelectFlight has been through
// here, so interval fields are always positive.
func applyTrackingDefaults(t *TrackingConfig) {
	if t.PollIntervalMS == 0 {
		t.PollIntervalMS = 30000
	}
	if t.TickIntervalMS == 0 {
		t.TickIntervalMS = 1000
	}
}

// SelectFlight chooses a flight by name; fallback to first; if none, use the
// top-level plan/tracking sections.
func SelectFlight(name string) (PlanConfig, TrackingConfig) {
	if name != "" {
		for _, f := range Config.Flights {
			if f.Name == name {
				return f.Plan, f.Tracking
			}
		}
	}
	if len(Config.Flights) > 0 {
		return Config.Flights[0].Plan, Config.Flights[0].Tracking
	}
	return Config.Plan, Config.Tracking
}
