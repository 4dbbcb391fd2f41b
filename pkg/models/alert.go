package models

import (
	"cmp"
	"fmt"
	"time"
)

// Severity orders alerts from least to most urgent. The downstream selector
// shows the most severe candidate, so the six levels form a strict total
// order.
type Severity int

const (
	SeverityLowest Severity = iota
	SeverityLower
	SeverityLow
	SeverityMid
	SeverityHigh
	SeverityHighest
)

var severityNames = [...]string{"lowest", "lower", "low", "mid", "high", "highest"}

// String returns the lowercase level name.
func (s Severity) String() string {
	if s >= 0 && int(s) < len(severityNames) {
		return severityNames[s]
	}
	return fmt.Sprintf("severity(%d)", int(s))
}

// ParseSeverity returns the Severity with the given level name.
func ParseSeverity(s string) (Severity, error) {
	for i, name := range severityNames {
		if name == s {
			return Severity(i), nil
		}
	}
	return 0, fmt.Errorf("unknown severity %q", s)
}

// AlertStatus classifies how an alert is framed on screen.
type AlertStatus string

const (
	StatusNormal     AlertStatus = "normal"
	StatusUserPrompt AlertStatus = "userPrompt"
	StatusCritical   AlertStatus = "critical"
)

// AlertSize selects the screen real estate an alert occupies.
type AlertSize string

const (
	SizeNone  AlertSize = "none"
	SizeSmall AlertSize = "small"
	SizeMid   AlertSize = "mid"
	SizeFull  AlertSize = "full"
)

// VisualAlert identifies the icon overlay shown with an alert.
type VisualAlert string

const (
	VisualNone          VisualAlert = "none"
	VisualSteerRequired VisualAlert = "steerRequired"
	VisualFCW           VisualAlert = "fcw"
	VisualBrakePressed  VisualAlert = "brakePressed"
)

// AudibleAlert identifies the chime played with an alert.
type AudibleAlert string

const (
	AudibleNone         AudibleAlert = "none"
	ChimeError          AudibleAlert = "chimeError"
	ChimeWarning1       AudibleAlert = "chimeWarning1"
	ChimeWarning2Repeat AudibleAlert = "chimeWarning2Repeat"
	ChimeWarningRepeat  AudibleAlert = "chimeWarningRepeat"
	ChimePrompt         AudibleAlert = "chimePrompt"
	ChimeEngage         AudibleAlert = "chimeEngage"
	ChimeDisengage      AudibleAlert = "chimeDisengage"
	ChimeModeOpenpilot  AudibleAlert = "chimeModeOpenpilot"
	ChimeModeDistcurv   AudibleAlert = "chimeModeDistcurv"
	ChimeModeDistance   AudibleAlert = "chimeModeDistance"
	ChimeModeOneway     AudibleAlert = "chimeModeOneway"
)

// Alert describes one human-facing notification: two text lines, cues,
// display timings, and the arbitration fields the engine reads (CreationDelay)
// or stamps (Tag, EventType). Values are immutable once built; the engine
// copies before stamping.
type Alert struct {
	Text1         string        `yaml:"text1" json:"text1"`
	Text2         string        `yaml:"text2" json:"text2"`
	Status        AlertStatus   `yaml:"status" json:"status"`
	Size          AlertSize     `yaml:"size" json:"size"`
	Severity      Severity      `yaml:"severity" json:"severity"`
	Visual        VisualAlert   `yaml:"visual" json:"visual"`
	Audible       AudibleAlert  `yaml:"audible" json:"audible"`
	SoundDuration time.Duration `yaml:"sound_duration" json:"sound_duration"`
	HUDDuration   time.Duration `yaml:"hud_duration" json:"hud_duration"`
	TextDuration  time.Duration `yaml:"text_duration" json:"text_duration"`
	Rate          float64       `yaml:"rate,omitempty" json:"rate,omitempty"`
	CreationDelay time.Duration `yaml:"creation_delay,omitempty" json:"creation_delay,omitempty"`

	// Stamped by the engine when the alert fires.
	Tag       string    `yaml:"tag,omitempty" json:"tag,omitempty"`
	EventType EventType `yaml:"event_type,omitempty" json:"event_type,omitempty"`
}

// Compare orders alerts by severity alone: negative when a is less urgent
// than b, zero when equally urgent, positive when more urgent.
func (a Alert) Compare(b Alert) int {
	return cmp.Compare(a.Severity, b.Severity)
}

func (a Alert) String() string {
	return fmt.Sprintf("%s/%s %s %s %s", a.Text1, a.Text2, a.Severity, a.Visual, a.Audible)
}

// NoEntryAlert builds the standard engagement-refusal alert: the system stays
// disengaged and the second line tells the driver why.
func NoEntryAlert(text2 string) Alert {
	return CustomNoEntryAlert(text2, ChimeError, VisualNone, 2*time.Second)
}

// CustomNoEntryAlert is NoEntryAlert with explicit cue and HUD-duration
// overrides for the catalog entries that deviate from the defaults.
func CustomNoEntryAlert(text2 string, audible AudibleAlert, visual VisualAlert, hud time.Duration) Alert {
	return Alert{
		Text1:         "openpilot Unavailable",
		Text2:         text2,
		Status:        StatusNormal,
		Size:          SizeMid,
		Severity:      SeverityLow,
		Visual:        visual,
		Audible:       audible,
		SoundDuration: 400 * time.Millisecond,
		HUDDuration:   hud,
		TextDuration:  3 * time.Second,
	}
}

// SoftDisableAlert builds the graceful-disengage alert: control winds down
// over a few seconds while the driver takes over.
func SoftDisableAlert(text2 string) Alert {
	return Alert{
		Text1:         "TAKE CONTROL IMMEDIATELY",
		Text2:         text2,
		Status:        StatusCritical,
		Size:          SizeFull,
		Severity:      SeverityMid,
		Visual:        VisualSteerRequired,
		Audible:       ChimeError,
		SoundDuration: 100 * time.Millisecond,
		HUDDuration:   2 * time.Second,
		TextDuration:  2 * time.Second,
	}
}

// ImmediateDisableAlert builds the hard-disengage alert for faults where
// control cannot continue for even one more cycle.
func ImmediateDisableAlert(text2 string) Alert {
	return Alert{
		Text1:         "TAKE CONTROL IMMEDIATELY",
		Text2:         text2,
		Status:        StatusCritical,
		Size:          SizeFull,
		Severity:      SeverityHighest,
		Visual:        VisualSteerRequired,
		Audible:       ChimeWarningRepeat,
		SoundDuration: 2200 * time.Millisecond,
		HUDDuration:   3 * time.Second,
		TextDuration:  4 * time.Second,
	}
}

// EngagementAlert builds the silent-screen engage/disengage chime.
func EngagementAlert(audible AudibleAlert) Alert {
	return Alert{
		Status:        StatusNormal,
		Size:          SizeNone,
		Severity:      SeverityMid,
		Visual:        VisualNone,
		Audible:       audible,
		SoundDuration: 200 * time.Millisecond,
	}
}

// NormalPermanentAlert builds a quiet standing notice shown while its
// condition holds.
func NormalPermanentAlert(text1, text2 string) Alert {
	return Alert{
		Text1:        text1,
		Text2:        text2,
		Status:       StatusNormal,
		Size:         SizeMid,
		Severity:     SeverityLower,
		Visual:       VisualNone,
		Audible:      AudibleNone,
		TextDuration: 200 * time.Millisecond,
	}
}
