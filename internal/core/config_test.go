package core

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

func TestLoad_Defaults_WhenNoFile(t *testing.T) {
	dir := t.TempDir()
	cm := NewConfigManager(dir)

	cfg, err := cm.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.ScenarioDir != "scenarios" {
		t.Errorf("ScenarioDir = %q, want %q", cfg.ScenarioDir, "scenarios")
	}
	if cfg.Period != 10*time.Millisecond {
		t.Errorf("Period = %s, want 10ms", cfg.Period)
	}
	if !cfg.Metric {
		t.Error("Metric = false, want true")
	}
	if cfg.Car.Name != "hyundai" {
		t.Errorf("Car.Name = %q, want %q", cfg.Car.Name, "hyundai")
	}
	if cfg.Snapshot.CalPerc != 100 {
		t.Errorf("Snapshot.CalPerc = %d, want 100", cfg.Snapshot.CalPerc)
	}
	if cfg.Serve.Addr != ":8642" {
		t.Errorf("Serve.Addr = %q, want %q", cfg.Serve.Addr, ":8642")
	}
	if cfg.Serve.WebhookURL != "" {
		t.Errorf("Serve.WebhookURL = %q, want empty", cfg.Serve.WebhookURL)
	}
}

func TestLoad_ReadsConfigFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "driveralert.yaml", `
scenario_dir: runs
period: 20ms
metric: false
car:
  name: honda
  min_steer_speed: 0.5
snapshot:
  cal_perc: 40
  gps_integrated: true
  v_ego: 12.5
serve:
  addr: "127.0.0.1:9000"
  webhook_url: "https://hooks.example.com/alerts"
`)

	cm := NewConfigManager(dir)
	cfg, err := cm.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.ScenarioDir != "runs" {
		t.Errorf("ScenarioDir = %q, want %q", cfg.ScenarioDir, "runs")
	}
	if cfg.Period != 20*time.Millisecond {
		t.Errorf("Period = %s, want 20ms", cfg.Period)
	}
	if cfg.Metric {
		t.Error("Metric = true, want false")
	}
	if cfg.Car.Name != "honda" || cfg.Car.MinSteerSpeed != 0.5 {
		t.Errorf("unexpected car params: %+v", cfg.Car)
	}
	if cfg.Snapshot.CalPerc != 40 || !cfg.Snapshot.GPSIntegrated || cfg.Snapshot.VEgo != 12.5 {
		t.Errorf("unexpected snapshot: %+v", cfg.Snapshot)
	}
	if cfg.Serve.Addr != "127.0.0.1:9000" {
		t.Errorf("Serve.Addr = %q, want %q", cfg.Serve.Addr, "127.0.0.1:9000")
	}
	if cfg.Serve.WebhookURL != "https://hooks.example.com/alerts" {
		t.Errorf("Serve.WebhookURL = %q", cfg.Serve.WebhookURL)
	}
}

func TestLoad_PartialConfig_FillsDefaults(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "driveralert.yaml", `
car:
  name: honda
`)

	cm := NewConfigManager(dir)
	cfg, err := cm.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Car.Name != "honda" {
		t.Errorf("Car.Name = %q, want %q", cfg.Car.Name, "honda")
	}
	if cfg.Car.MinSteerSpeed != 16.67 {
		t.Errorf("Car.MinSteerSpeed = %g, want default 16.67", cfg.Car.MinSteerSpeed)
	}
	if cfg.Period != 10*time.Millisecond {
		t.Errorf("Period = %s, want default 10ms", cfg.Period)
	}
}

func TestLoad_RejectsInvalidValues(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "driveralert.yaml", `
scenario_dir: ""
period: 2s
snapshot:
  cal_perc: 150
`)

	cm := NewConfigManager(dir)
	_, err := cm.Load()
	if err == nil {
		t.Fatal("expected validation error")
	}
	msg := err.Error()
	for _, want := range []string{
		"scenario_dir must not be empty",
		"too coarse",
		"cal_perc 150 is invalid",
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("expected error to mention %q, got:\n%s", want, msg)
		}
	}
}

func TestValidate_NegativePeriod(t *testing.T) {
	cm := NewConfigManager(t.TempDir())
	cfg := DefaultConfig()
	cfg.Period = -time.Millisecond

	err := cm.Validate(cfg)
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !strings.Contains(err.Error(), "period must be positive") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestValidate_NilConfig(t *testing.T) {
	cm := NewConfigManager(t.TempDir())
	if err := cm.Validate(nil); err == nil {
		t.Fatal("expected error for nil config")
	}
}

func TestDefaultConfig_PassesValidation(t *testing.T) {
	cm := NewConfigManager(t.TempDir())
	if err := cm.Validate(DefaultConfig()); err != nil {
		t.Fatalf("defaults should validate, got %v", err)
	}
}
