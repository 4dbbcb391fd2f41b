package models

import (
	"testing"
	"time"
)

func TestSeverity_StrictTotalOrder(t *testing.T) {
	levels := []Severity{
		SeverityLowest,
		SeverityLower,
		SeverityLow,
		SeverityMid,
		SeverityHigh,
		SeverityHighest,
	}

	for i, lo := range levels {
		for j, hi := range levels {
			a := Alert{Severity: lo}
			b := Alert{Severity: hi}
			got := a.Compare(b)
			switch {
			case i < j && got >= 0:
				t.Errorf("expected %s < %s, got Compare %d", lo, hi, got)
			case i == j && got != 0:
				t.Errorf("expected %s == %s, got Compare %d", lo, hi, got)
			case i > j && got <= 0:
				t.Errorf("expected %s > %s, got Compare %d", lo, hi, got)
			}
		}
	}
}

func TestSeverity_Names(t *testing.T) {
	cases := map[Severity]string{
		SeverityLowest:  "lowest",
		SeverityLower:   "lower",
		SeverityLow:     "low",
		SeverityMid:     "mid",
		SeverityHigh:    "high",
		SeverityHighest: "highest",
	}
	for sev, want := range cases {
		if got := sev.String(); got != want {
			t.Errorf("expected %q, got %q", want, got)
		}
	}
	if got := Severity(42).String(); got != "severity(42)" {
		t.Errorf("expected severity(42), got %q", got)
	}
}

func TestNoEntryAlert_Defaults(t *testing.T) {
	a := NoEntryAlert("Door Open")

	if a.Text1 != "openpilot Unavailable" {
		t.Errorf("expected standard first line, got %q", a.Text1)
	}
	if a.Text2 != "Door Open" {
		t.Errorf("expected reason on second line, got %q", a.Text2)
	}
	if a.Severity != SeverityLow {
		t.Errorf("expected low severity, got %s", a.Severity)
	}
	if a.Audible != ChimeError {
		t.Errorf("expected chimeError, got %s", a.Audible)
	}
	if a.HUDDuration != 2*time.Second {
		t.Errorf("expected 2s HUD duration, got %s", a.HUDDuration)
	}
}

func TestCustomNoEntryAlert_Overrides(t *testing.T) {
	a := CustomNoEntryAlert("Pedal Pressed During Attempt", ChimeError, VisualBrakePressed, 2*time.Second)

	if a.Visual != VisualBrakePressed {
		t.Errorf("expected brakePressed visual, got %s", a.Visual)
	}
	if a.Text1 != "openpilot Unavailable" {
		t.Errorf("expected standard first line, got %q", a.Text1)
	}

	quiet := CustomNoEntryAlert("Out of Storage Space", ChimeError, VisualNone, 0)
	if quiet.HUDDuration != 0 {
		t.Errorf("expected zero HUD duration, got %s", quiet.HUDDuration)
	}
}

func TestDisableAlerts_SeverityAndFraming(t *testing.T) {
	soft := SoftDisableAlert("System Overheated")
	if soft.Severity != SeverityMid {
		t.Errorf("expected mid severity for soft disable, got %s", soft.Severity)
	}
	if soft.Status != StatusCritical || soft.Size != SizeFull {
		t.Errorf("expected critical full-screen framing, got %s/%s", soft.Status, soft.Size)
	}

	immediate := ImmediateDisableAlert("CAN Error: Check Connections")
	if immediate.Severity != SeverityHighest {
		t.Errorf("expected highest severity for immediate disable, got %s", immediate.Severity)
	}
	if immediate.Audible != ChimeWarningRepeat {
		t.Errorf("expected repeating warning chime, got %s", immediate.Audible)
	}
	if soft.Compare(immediate) >= 0 {
		t.Error("expected soft disable to rank below immediate disable")
	}
}

func TestEngagementAlert_SilentScreen(t *testing.T) {
	a := EngagementAlert(ChimeEngage)
	if a.Size != SizeNone {
		t.Errorf("expected no screen footprint, got %s", a.Size)
	}
	if a.Audible != ChimeEngage {
		t.Errorf("expected engage chime, got %s", a.Audible)
	}
	if a.Text1 != "" || a.Text2 != "" {
		t.Errorf("expected empty text, got %q/%q", a.Text1, a.Text2)
	}
}

func TestNormalPermanentAlert_QuietNotice(t *testing.T) {
	a := NormalPermanentAlert("Fan Malfunction", "Contact Support")
	if a.Severity != SeverityLower {
		t.Errorf("expected lower severity, got %s", a.Severity)
	}
	if a.Audible != AudibleNone || a.Visual != VisualNone {
		t.Errorf("expected no cues, got %s/%s", a.Audible, a.Visual)
	}
}
