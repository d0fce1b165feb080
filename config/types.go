package config

// ServerConfig contains server configuration
type ServerConfig struct {
	Port int `yaml:"port" validate:"gt=0"`
}

// PlanConfig contains flight-plan source configuration
type PlanConfig struct {
	PlanURL string `yaml:"planURL" validate:"omitempty,url"`
	// PlanPath points at a local plan JSON file, used when no URL is set.
	PlanPath string `yaml:"planPath" validate:"omitempty"`
}

// TrackingConfig contains live-tracking feed configuration
type TrackingConfig struct {
	FeedURL        string `yaml:"feedURL" validate:"omitempty,url"`
	PollIntervalMS int    `yaml:"pollIntervalMS" validate:"gte=0"`
	TickIntervalMS int    `yaml:"tickIntervalMS" validate:"gte=0"`
	TimeoutMS      int    `yaml:"timeoutMS" validate:"gte=0"`
}

// Flight represents a single named flight configuration
type Flight struct {
	Name     string         `yaml:"name" validate:"required"`
	Plan     PlanConfig     `yaml:"plan" validate:"required"`
	Tracking TrackingConfig `yaml:"tracking"`
}

// AppConfig is the root configuration structure
type AppConfig struct {
	Server   ServerConfig   `yaml:"server" validate:"required"`
	Plan     PlanConfig     `yaml:"plan"`
	Tracking TrackingConfig `yaml:"tracking"`
	Flights  []Flight       `yaml:"flights"`
}
