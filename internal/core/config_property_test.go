package core

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"pgregory.net/rapid"
)

// halfStep draws a float from [0, max] in 0.5 increments so YAML formatting
// and parsing stay exact.
func halfStep(rt *rapid.T, max int, label string) float64 {
	return float64(rapid.IntRange(0, max*2).Draw(rt, label)) / 2.0
}

func mustWriteConfigYAML(t *testing.T, dir, content string) {
	t.Helper()
	path := filepath.Join(dir, ConfigFileName+".yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
}

// For any combination of valid configuration values, writing them as YAML and
// loading them back must reproduce every field exactly.
func TestProperty_ConfigRoundTrip(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		scenarioDir := rapid.StringMatching(`[a-z]{1,12}`).Draw(rt, "scenarioDir")
		period := periodGenerator().Draw(rt, "period")
		metric := rapid.Bool().Draw(rt, "metric")
		car := carGenerator().Draw(rt, "car")
		minSteer := halfStep(rt, 40, "minSteer")
		calPerc := rapid.IntRange(0, 100).Draw(rt, "calPerc")
		gps := rapid.Bool().Draw(rt, "gps")
		vEgo := halfStep(rt, 45, "vEgo")
		addr := rapid.SampledFrom([]string{":8642", ":9000", "127.0.0.1:8642"}).Draw(rt, "addr")
		webhook := rapid.SampledFrom([]string{"", "http://ops.example/hook"}).Draw(rt, "webhook")

		dir, err := os.MkdirTemp("", "config-prop-*")
		if err != nil {
			t.Fatalf("failed to create temp dir: %v", err)
		}
		defer func() { _ = os.RemoveAll(dir) }()

		content := fmt.Sprintf(`scenario_dir: %s
period: %s
metric: %v
car:
  name: %s
  min_steer_speed: %g
snapshot:
  cal_perc: %d
  gps_integrated: %v
  v_ego: %g
serve:
  addr: %q
  webhook_url: %q
`, scenarioDir, period, metric, car, minSteer, calPerc, gps, vEgo, addr, webhook)
		mustWriteConfigYAML(t, dir, content)

		cfg, err := NewConfigManager(dir).Load()
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}

		wantPeriod, _ := time.ParseDuration(period)
		if cfg.ScenarioDir != scenarioDir {
			t.Errorf("scenario_dir = %q, want %q", cfg.ScenarioDir, scenarioDir)
		}
		if cfg.Period != wantPeriod {
			t.Errorf("period = %s, want %s", cfg.Period, wantPeriod)
		}
		if cfg.Metric != metric {
			t.Errorf("metric = %v, want %v", cfg.Metric, metric)
		}
		if cfg.Car.Name != car {
			t.Errorf("car.name = %q, want %q", cfg.Car.Name, car)
		}
		if cfg.Car.MinSteerSpeed != minSteer {
			t.Errorf("car.min_steer_speed = %g, want %g", cfg.Car.MinSteerSpeed, minSteer)
		}
		if cfg.Snapshot.CalPerc != calPerc {
			t.Errorf("snapshot.cal_perc = %d, want %d", cfg.Snapshot.CalPerc, calPerc)
		}
		if cfg.Snapshot.GPSIntegrated != gps {
			t.Errorf("snapshot.gps_integrated = %v, want %v", cfg.Snapshot.GPSIntegrated, gps)
		}
		if cfg.Snapshot.VEgo != vEgo {
			t.Errorf("snapshot.v_ego = %g, want %g", cfg.Snapshot.VEgo, vEgo)
		}
		if cfg.Serve.Addr != addr {
			t.Errorf("serve.addr = %q, want %q", cfg.Serve.Addr, addr)
		}
		if cfg.Serve.WebhookURL != webhook {
			t.Errorf("serve.webhook_url = %q, want %q", cfg.Serve.WebhookURL, webhook)
		}
	})
}

// For any out-of-range period, Load must fail validation rather than hand the
// loop an unusable cycle time.
func TestProperty_ConfigValidationRejectsBadPeriod(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		period := rapid.SampledFrom([]string{"-10ms", "-1s", "0s", "2s", "1m"}).Draw(rt, "period")

		dir, err := os.MkdirTemp("", "config-prop-bad-*")
		if err != nil {
			t.Fatalf("failed to create temp dir: %v", err)
		}
		defer func() { _ = os.RemoveAll(dir) }()

		mustWriteConfigYAML(t, dir, fmt.Sprintf("period: %s\n", period))

		_, err = NewConfigManager(dir).Load()
		if err == nil {
			t.Fatalf("expected validation error for period %s", period)
		}
		if !strings.Contains(err.Error(), "config validation failed") {
			t.Errorf("unexpected error: %v", err)
		}
	})
}
