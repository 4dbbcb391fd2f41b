package cli

import (
	"time"

	"github.com/agegold/driveralert/internal/core"
	"github.com/agegold/driveralert/internal/events"
	"github.com/agegold/driveralert/internal/storage"
	"github.com/agegold/driveralert/pkg/models"
)

// Service instances, set during app initialization in app.go.
var (
	BasePath  string
	Cfg       *models.Config
	ConfigMgr core.ConfigManager
	Registry  events.Registry
	Scenarios storage.ScenarioStore
)

// engineContext builds the vehicle context dynamic alerts resolve against
// from the loaded configuration.
func engineContext() events.Context {
	if Cfg == nil {
		return events.Context{}
	}
	return events.Context{
		Car:      Cfg.Car,
		Snapshot: Cfg.Snapshot,
		Metric:   Cfg.Metric,
	}
}

// enginePeriod reports the configured cycle period.
func enginePeriod() time.Duration {
	if Cfg == nil || Cfg.Period <= 0 {
		return storage.DefaultPeriod
	}
	return Cfg.Period
}
