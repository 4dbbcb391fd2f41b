package cli

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/agegold/driveralert/internal/catalog"
	"github.com/agegold/driveralert/internal/loop"
	"github.com/agegold/driveralert/internal/storage"
)

// withSimulateServices seeds a scenario store in a temp dir and wires the
// package vars for one test, restoring the originals afterwards.
func withSimulateServices(t *testing.T) string {
	t.Helper()
	origRegistry := Registry
	origScenarios := Scenarios
	origJSON := simulateJSON
	origLog := simulateLog
	t.Cleanup(func() {
		Registry = origRegistry
		Scenarios = origScenarios
		simulateJSON = origJSON
		simulateLog = origLog
	})

	dir := t.TempDir()
	Registry = catalog.Registry()
	Scenarios = storage.NewScenarioStore(dir)
	if err := Scenarios.Save(storage.DefaultScenario()); err != nil {
		t.Fatalf("seeding scenario: %v", err)
	}
	simulateJSON = false
	simulateLog = ""
	return dir
}

func TestSimulateCmd_ServicesNotInitialized(t *testing.T) {
	origRegistry := Registry
	defer func() { Registry = origRegistry }()
	Registry = nil

	err := simulateCmd.RunE(simulateCmd, []string{"city-drive"})
	if err == nil {
		t.Fatal("expected error when services are not initialized")
	}
	if !strings.Contains(err.Error(), "services not initialized") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestSimulateCmd_JSONSummary(t *testing.T) {
	withSimulateServices(t)
	simulateJSON = true

	buf := new(bytes.Buffer)
	simulateCmd.SetOut(buf)

	if err := simulateCmd.RunE(simulateCmd, []string{"city-drive"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var summary loop.Summary
	if err := json.Unmarshal(buf.Bytes(), &summary); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	if want := storage.DefaultScenario().TotalCycles(); summary.Cycles != want {
		t.Errorf("expected %d cycles, got %d", want, summary.Cycles)
	}
	if summary.AlertsFired == 0 {
		t.Error("expected fired alerts in the starter scenario")
	}
	if summary.MostCritical == nil || summary.MostCritical.Tag != "buttonEnable/enable" {
		t.Errorf("unexpected most critical alert: %+v", summary.MostCritical)
	}
}

func TestSimulateCmd_TableSummary(t *testing.T) {
	withSimulateServices(t)

	buf := new(bytes.Buffer)
	simulateCmd.SetOut(buf)

	if err := simulateCmd.RunE(simulateCmd, []string{"city-drive"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	output := buf.String()
	if !strings.Contains(output, "Scenario city-drive:") {
		t.Errorf("expected summary headline, got:\n%s", output)
	}
	if !strings.Contains(output, "most critical:") {
		t.Error("expected most critical line in summary")
	}
	if !strings.Contains(output, "startup/permanent") {
		t.Error("expected startup/permanent in top alerts")
	}
}

func TestSimulateCmd_WritesCycleLog(t *testing.T) {
	dir := withSimulateServices(t)
	simulateLog = filepath.Join(dir, "run.jsonl")

	buf := new(bytes.Buffer)
	simulateCmd.SetOut(buf)

	if err := simulateCmd.RunE(simulateCmd, []string{"city-drive"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	header, records, err := storage.ReadCycleLog(simulateLog, storage.CycleFilter{})
	if err != nil {
		t.Fatalf("reading cycle log: %v", err)
	}
	if header.Scenario != "city-drive" {
		t.Errorf("expected header scenario city-drive, got %q", header.Scenario)
	}
	if header.RunID == "" {
		t.Error("expected run ID in header")
	}
	// The starter scenario keeps its startup banner active from cycle one,
	// so every cycle is eventful and gets recorded.
	if want := storage.DefaultScenario().TotalCycles(); len(records) != want {
		t.Errorf("expected %d records, got %d", want, len(records))
	}

	_, doorCycles, err := storage.ReadCycleLog(simulateLog, storage.CycleFilter{Event: "doorOpen"})
	if err != nil {
		t.Fatalf("reading filtered cycle log: %v", err)
	}
	if len(doorCycles) != 50 {
		t.Errorf("expected 50 doorOpen cycles, got %d", len(doorCycles))
	}

	if !strings.Contains(buf.String(), "Cycle log written to") {
		t.Error("expected cycle log path in output")
	}
}

func TestSimulateCmd_MissingScenario(t *testing.T) {
	withSimulateServices(t)

	err := simulateCmd.RunE(simulateCmd, []string{"no-such-drive"})
	if err == nil {
		t.Fatal("expected error for missing scenario")
	}
	if !strings.Contains(err.Error(), "loading scenario") {
		t.Errorf("unexpected error: %v", err)
	}
}
