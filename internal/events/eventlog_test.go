package events

import (
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/agegold/driveralert/pkg/models"
)

const testPeriod = 10 * time.Millisecond

// testRegistry binds a handful of real identifiers to small fixture alerts so
// tags and counters can be asserted without dragging in the full catalog.
func testRegistry() Registry {
	return Registry{
		models.EventDoorOpen: {
			models.EventTypeWarning: Static(models.Alert{
				Text1:    "Door Open",
				Status:   models.StatusNormal,
				Size:     models.SizeSmall,
				Severity: models.SeverityLow,
				Visual:   models.VisualNone,
				Audible:  models.AudibleNone,
			}),
			models.EventTypeNoEntry: Static(models.NoEntryAlert("Door Open")),
		},
		models.EventPCMEnable: {
			models.EventTypeEnable: Static(models.EngagementAlert(models.ChimeEngage)),
		},
		models.EventWrongCarMode: {
			models.EventTypeNoEntry: Dynamic(func(car models.CarParams, _ models.Snapshot, _ bool) models.Alert {
				text := "Cruise Mode Disabled"
				if car.Name == "honda" {
					text = "Main Switch Off"
				}
				return models.NoEntryAlert(text)
			}),
		},
		models.EventSensorDataInvalid: {
			models.EventTypeWarning: Static(delayedBy(models.NormalPermanentAlert("No Sensor Data", ""), 30*time.Millisecond)),
		},
		models.EventNoGPS: {
			models.EventTypePermanent: Static(delayedBy(models.NormalPermanentAlert("Poor GPS reception", ""), 5*time.Minute)),
		},
	}
}

func delayedBy(a models.Alert, d time.Duration) models.Alert {
	a.CreationDelay = d
	return a
}

func TestLog_AddKeepsOrderAndDuplicates(t *testing.T) {
	l := NewLog(testPeriod, testRegistry())

	l.Add(models.EventDoorOpen)
	l.Add(models.EventPCMEnable)
	l.Add(models.EventDoorOpen)

	if l.Len() != 3 {
		t.Fatalf("expected 3 active entries, got %d", l.Len())
	}
	want := []models.EventID{models.EventDoorOpen, models.EventPCMEnable, models.EventDoorOpen}
	if !slices.Equal(l.Names(), want) {
		t.Errorf("expected active %v, got %v", want, l.Names())
	}
}

func TestLog_ClearKeepsOnlyPermanent(t *testing.T) {
	l := NewLog(testPeriod, testRegistry())

	l.Add(models.EventDoorOpen)
	l.AddPermanent(models.EventNoGPS)
	l.Add(models.EventPCMEnable)

	if l.Len() != 3 {
		t.Fatalf("expected 3 active entries before clear, got %d", l.Len())
	}

	l.Clear()
	want := []models.EventID{models.EventNoGPS}
	if !slices.Equal(l.Names(), want) {
		t.Fatalf("expected active %v after clear, got %v", want, l.Names())
	}

	// A second clear changes nothing: the permanent set is sticky.
	l.Clear()
	if !slices.Equal(l.Names(), want) {
		t.Errorf("expected active %v after second clear, got %v", want, l.Names())
	}
}

func TestLog_CounterTracksConsecutivePresence(t *testing.T) {
	l := NewLog(testPeriod, testRegistry())

	for cycle := 1; cycle <= 5; cycle++ {
		l.Add(models.EventDoorOpen)
		if got := l.Counter(models.EventDoorOpen); got != cycle-1 {
			t.Fatalf("cycle %d: expected counter %d, got %d", cycle, cycle-1, got)
		}
		l.Clear()
	}
	if got := l.Counter(models.EventDoorOpen); got != 5 {
		t.Errorf("expected counter 5 after 5 present cycles, got %d", got)
	}
}

func TestLog_CounterResetsWhenAbsent(t *testing.T) {
	l := NewLog(testPeriod, testRegistry())

	for cycle := 0; cycle < 3; cycle++ {
		l.Add(models.EventDoorOpen)
		l.Clear()
	}
	if got := l.Counter(models.EventDoorOpen); got != 3 {
		t.Fatalf("expected counter 3, got %d", got)
	}

	// One cycle without the event resets the streak.
	l.Clear()
	if got := l.Counter(models.EventDoorOpen); got != 0 {
		t.Fatalf("expected counter 0 after absent cycle, got %d", got)
	}

	l.Add(models.EventDoorOpen)
	l.Clear()
	if got := l.Counter(models.EventDoorOpen); got != 1 {
		t.Errorf("expected counter 1 after returning, got %d", got)
	}
}

func TestLog_CounterIgnoresUnregisteredIdentifiers(t *testing.T) {
	l := NewLog(testPeriod, testRegistry())
	unknown := models.EventID(4242)

	l.Add(unknown)
	l.Clear()
	l.Add(unknown)
	l.Clear()

	if got := l.Counter(unknown); got != 0 {
		t.Errorf("expected counter 0 for unregistered identifier, got %d", got)
	}
}

func TestLog_AnyMatchesActiveTypes(t *testing.T) {
	l := NewLog(testPeriod, testRegistry())

	if l.Any(models.EventTypeWarning) {
		t.Error("expected no warning events in empty log")
	}

	l.Add(models.EventPCMEnable)
	if !l.Any(models.EventTypeEnable) {
		t.Error("expected an enable event after adding pcmEnable")
	}
	if l.Any(models.EventTypeWarning) {
		t.Error("expected no warning events with only pcmEnable active")
	}

	l.Add(models.EventDoorOpen)
	if !l.Any(models.EventTypeWarning) {
		t.Error("expected a warning event after adding doorOpen")
	}
}

func TestLog_CreateAlertsOrderAndTags(t *testing.T) {
	l := NewLog(testPeriod, testRegistry())
	l.Add(models.EventDoorOpen)
	l.Add(models.EventWrongCarMode)

	alerts := l.CreateAlerts([]models.EventType{models.EventTypeNoEntry, models.EventTypeWarning}, Context{})
	if len(alerts) != 3 {
		t.Fatalf("expected 3 alerts, got %d", len(alerts))
	}

	wantTags := []string{"doorOpen/noEntry", "doorOpen/warning", "wrongCarMode/noEntry"}
	for i, want := range wantTags {
		if alerts[i].Tag != want {
			t.Errorf("alert %d: expected tag %s, got %s", i, want, alerts[i].Tag)
		}
	}
	if alerts[0].EventType != models.EventTypeNoEntry {
		t.Errorf("expected first alert stamped noEntry, got %s", alerts[0].EventType)
	}
	if alerts[1].EventType != models.EventTypeWarning {
		t.Errorf("expected second alert stamped warning, got %s", alerts[1].EventType)
	}
}

func TestLog_CreateAlertsHonorsRequestOrder(t *testing.T) {
	l := NewLog(testPeriod, testRegistry())
	l.Add(models.EventDoorOpen)

	alerts := l.CreateAlerts([]models.EventType{models.EventTypeWarning, models.EventTypeNoEntry}, Context{})
	if len(alerts) != 2 {
		t.Fatalf("expected 2 alerts, got %d", len(alerts))
	}
	if alerts[0].Tag != "doorOpen/warning" || alerts[1].Tag != "doorOpen/noEntry" {
		t.Errorf("expected request order warning then noEntry, got %s then %s", alerts[0].Tag, alerts[1].Tag)
	}
}

func TestLog_CreateAlertsSkipsUnknownIdentifiersAndTypes(t *testing.T) {
	l := NewLog(testPeriod, testRegistry())
	l.Add(models.EventID(4242))
	l.Add(models.EventPCMEnable)

	alerts := l.CreateAlerts([]models.EventType{models.EventTypeWarning}, Context{})
	if len(alerts) != 0 {
		t.Fatalf("expected no alerts for unknown identifier and unmatched type, got %d", len(alerts))
	}

	alerts = l.CreateAlerts([]models.EventType{models.EventTypeEnable}, Context{})
	if len(alerts) != 1 {
		t.Fatalf("expected 1 enable alert, got %d", len(alerts))
	}
	if alerts[0].Tag != "pcmEnable/enable" {
		t.Errorf("expected tag pcmEnable/enable, got %s", alerts[0].Tag)
	}
}

func TestLog_CreateAlertsWithholdsUntilCreationDelay(t *testing.T) {
	l := NewLog(testPeriod, testRegistry())
	types := []models.EventType{models.EventTypeWarning}

	// 30ms delay at a 10ms period: withheld for two cycles, fires on the third.
	for cycle := 1; cycle <= 3; cycle++ {
		l.Add(models.EventSensorDataInvalid)
		alerts := l.CreateAlerts(types, Context{})
		if cycle < 3 && len(alerts) != 0 {
			t.Fatalf("cycle %d: expected alert withheld, got %d", cycle, len(alerts))
		}
		if cycle == 3 && len(alerts) != 1 {
			t.Fatalf("cycle 3: expected alert to fire, got %d", len(alerts))
		}
		l.Clear()
	}
}

func TestLog_PermanentAlertCreationDelayBoundary(t *testing.T) {
	l := NewLog(testPeriod, testRegistry())
	l.AddPermanent(models.EventNoGPS)
	types := []models.EventType{models.EventTypePermanent}

	// A 5 minute delay at a 10ms period fires on cycle 30000 exactly.
	const fireCycle = 30000
	for cycle := 1; cycle <= fireCycle; cycle++ {
		alerts := l.CreateAlerts(types, Context{})
		if cycle < fireCycle && len(alerts) != 0 {
			t.Fatalf("cycle %d: expected alert withheld, got %d", cycle, len(alerts))
		}
		if cycle == fireCycle && len(alerts) != 1 {
			t.Fatalf("cycle %d: expected alert to fire, got %d", cycle, len(alerts))
		}
		l.Clear()
	}

	if got := l.Counter(models.EventNoGPS); got != fireCycle {
		t.Errorf("expected counter %d after %d cycles, got %d", fireCycle, fireCycle, got)
	}
}

func TestLog_DynamicAlertSeesContext(t *testing.T) {
	l := NewLog(testPeriod, testRegistry())
	l.Add(models.EventWrongCarMode)
	types := []models.EventType{models.EventTypeNoEntry}

	alerts := l.CreateAlerts(types, Context{Car: models.CarParams{Name: "honda"}})
	if len(alerts) != 1 {
		t.Fatalf("expected 1 alert, got %d", len(alerts))
	}
	if !strings.Contains(alerts[0].Text2, "Main Switch Off") {
		t.Errorf("expected honda wording, got %q", alerts[0].Text2)
	}

	alerts = l.CreateAlerts(types, Context{Car: models.CarParams{Name: "hyundai"}})
	if len(alerts) != 1 {
		t.Fatalf("expected 1 alert, got %d", len(alerts))
	}
	if !strings.Contains(alerts[0].Text2, "Cruise Mode Disabled") {
		t.Errorf("expected generic wording, got %q", alerts[0].Text2)
	}
}
