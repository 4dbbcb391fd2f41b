package models

import "time"

// CarParams holds the static vehicle parameters dynamic alerts read. Speeds
// are in m/s throughout; display conversion happens in the alert factories.
type CarParams struct {
	Name          string  `yaml:"name" mapstructure:"name" json:"name"`
	MinSteerSpeed float64 `yaml:"min_steer_speed" mapstructure:"min_steer_speed" json:"min_steer_speed"`
}

// Snapshot is the per-cycle live-state view supplied to dynamic alerts. It is
// read-only for the engine and refreshed by the host each cycle.
type Snapshot struct {
	CalPerc       int           `yaml:"cal_perc" mapstructure:"cal_perc" json:"cal_perc"`
	GPSIntegrated bool          `yaml:"gps_integrated" mapstructure:"gps_integrated" json:"gps_integrated"`
	Standstill    time.Duration `yaml:"standstill" mapstructure:"standstill" json:"standstill"`
	VEgo          float64       `yaml:"v_ego" mapstructure:"v_ego" json:"v_ego"`
}

// ServeConfig holds the websocket publisher settings.
type ServeConfig struct {
	Addr       string `yaml:"addr" mapstructure:"addr"`
	WebhookURL string `yaml:"webhook_url,omitempty" mapstructure:"webhook_url"`
}

// Config holds host-wide settings read from driveralert.yaml via Viper.
type Config struct {
	ScenarioDir string        `yaml:"scenario_dir" mapstructure:"scenario_dir"`
	Period      time.Duration `yaml:"period" mapstructure:"period"`
	Metric      bool          `yaml:"metric" mapstructure:"metric"`
	Car         CarParams     `yaml:"car" mapstructure:"car"`
	Snapshot    Snapshot      `yaml:"snapshot" mapstructure:"snapshot"`
	Serve       ServeConfig   `yaml:"serve" mapstructure:"serve"`
}
