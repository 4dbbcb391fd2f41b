// Package core loads and validates the host configuration the driveralert
// commands share.
package core

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/agegold/driveralert/internal/storage"
	"github.com/agegold/driveralert/pkg/models"
)

// ConfigFileName is the name of the host configuration file, without
// extension, looked up in the base path.
const ConfigFileName = "driveralert"

// ConfigManager loads the driveralert.yaml host configuration.
type ConfigManager interface {
	Load() (*models.Config, error)
	Validate(cfg *models.Config) error
}

// viperConfigManager implements ConfigManager using Viper for reading the
// YAML configuration file.
type viperConfigManager struct {
	// basePath is the directory where driveralert.yaml resides.
	basePath string
}

// NewConfigManager creates a ConfigManager that reads configuration relative
// to basePath.
func NewConfigManager(basePath string) ConfigManager {
	return &viperConfigManager{basePath: basePath}
}

// DefaultConfig returns a Config populated with the defaults every command
// starts from.
func DefaultConfig() *models.Config {
	return &models.Config{
		ScenarioDir: "scenarios",
		Period:      storage.DefaultPeriod,
		Metric:      true,
		Car: models.CarParams{
			Name:          "hyundai",
			MinSteerSpeed: 16.67,
		},
		Snapshot: models.Snapshot{
			CalPerc: 100,
		},
		Serve: models.ServeConfig{
			Addr: ":8642",
		},
	}
}

// Load reads driveralert.yaml from the base path. If the file does not
// exist, defaults are returned.
func (cm *viperConfigManager) Load() (*models.Config, error) {
	cfg := DefaultConfig()

	v := viper.New()
	v.SetConfigName(ConfigFileName)
	v.SetConfigType("yaml")
	v.AddConfigPath(cm.basePath)

	// Set Viper defaults so missing keys fall back gracefully.
	v.SetDefault("scenario_dir", cfg.ScenarioDir)
	v.SetDefault("period", cfg.Period)
	v.SetDefault("metric", cfg.Metric)
	v.SetDefault("car.name", cfg.Car.Name)
	v.SetDefault("car.min_steer_speed", cfg.Car.MinSteerSpeed)
	v.SetDefault("snapshot.cal_perc", cfg.Snapshot.CalPerc)
	v.SetDefault("snapshot.gps_integrated", cfg.Snapshot.GPSIntegrated)
	v.SetDefault("snapshot.v_ego", cfg.Snapshot.VEgo)
	v.SetDefault("serve.addr", cfg.Serve.Addr)
	v.SetDefault("serve.webhook_url", cfg.Serve.WebhookURL)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading driveralert.yaml: %w", err)
	}

	cfg.ScenarioDir = v.GetString("scenario_dir")
	cfg.Period = v.GetDuration("period")
	cfg.Metric = v.GetBool("metric")
	cfg.Car.Name = v.GetString("car.name")
	cfg.Car.MinSteerSpeed = v.GetFloat64("car.min_steer_speed")
	cfg.Snapshot.CalPerc = v.GetInt("snapshot.cal_perc")
	cfg.Snapshot.GPSIntegrated = v.GetBool("snapshot.gps_integrated")
	cfg.Snapshot.VEgo = v.GetFloat64("snapshot.v_ego")
	cfg.Serve.Addr = v.GetString("serve.addr")
	cfg.Serve.WebhookURL = v.GetString("serve.webhook_url")

	if err := cm.Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for invalid values and returns a clear
// error message identifying every problem.
func (cm *viperConfigManager) Validate(cfg *models.Config) error {
	if cfg == nil {
		return fmt.Errorf("configuration is nil")
	}

	var errs []string

	if cfg.ScenarioDir == "" {
		errs = append(errs, "scenario_dir must not be empty")
	}
	if cfg.Period <= 0 {
		errs = append(errs, fmt.Sprintf("period must be positive, got %s", cfg.Period))
	}
	if cfg.Period > time.Second {
		errs = append(errs, fmt.Sprintf("period %s is too coarse for a control loop, maximum is 1s", cfg.Period))
	}
	if cfg.Car.MinSteerSpeed < 0 {
		errs = append(errs, fmt.Sprintf("car.min_steer_speed must be non-negative, got %g", cfg.Car.MinSteerSpeed))
	}
	if cfg.Snapshot.CalPerc < 0 || cfg.Snapshot.CalPerc > 100 {
		errs = append(errs, fmt.Sprintf("snapshot.cal_perc %d is invalid, must be between 0 and 100", cfg.Snapshot.CalPerc))
	}
	if cfg.Snapshot.VEgo < 0 {
		errs = append(errs, fmt.Sprintf("snapshot.v_ego must be non-negative, got %g", cfg.Snapshot.VEgo))
	}
	if cfg.Serve.Addr == "" {
		errs = append(errs, "serve.addr must not be empty")
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}
