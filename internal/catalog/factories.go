package catalog

import (
	"fmt"
	"math"
	"time"

	"github.com/agegold/driveralert/pkg/models"
)

// Speed display conversions from m/s.
const (
	msToKPH = 3.6
	msToMPH = 2.2369363
	mphToMS = 0.44704
)

// minCalibrationSpeed is the slowest speed, in m/s, at which device
// calibration makes progress.
const minCalibrationSpeed = 15 * mphToMS

func displaySpeed(metersPerSecond float64, metric bool) (int, string) {
	if metric {
		return int(math.Round(metersPerSecond * msToKPH)), "km/h"
	}
	return int(math.Round(metersPerSecond * msToMPH)), "mph"
}

func belowSteerSpeedAlert(car models.CarParams, _ models.Snapshot, metric bool) models.Alert {
	speed, unit := displaySpeed(car.MinSteerSpeed, metric)
	return alert(
		"TAKE CONTROL",
		fmt.Sprintf("Steer Unavailable Below %d %s", speed, unit),
		models.StatusUserPrompt, models.SizeMid, models.SeverityMid,
		models.VisualNone, models.AudibleNone,
		0, 400*time.Millisecond, 300*time.Millisecond)
}

func calibrationIncompleteAlert(_ models.CarParams, snap models.Snapshot, metric bool) models.Alert {
	speed, unit := displaySpeed(minCalibrationSpeed, metric)
	return alert(
		fmt.Sprintf("Calibration in Progress: %d%%", snap.CalPerc),
		fmt.Sprintf("Drive Above %d %s", speed, unit),
		models.StatusNormal, models.SizeMid, models.SeverityLowest,
		models.VisualNone, models.AudibleNone,
		0, 0, 200*time.Millisecond)
}

func noGPSAlert(_ models.CarParams, snap models.Snapshot, _ bool) models.Alert {
	text2 := "Check GPS antenna placement"
	if snap.GPSIntegrated {
		text2 = "If sky is visible, contact support"
	}
	return delayed(alert(
		"Poor GPS reception", text2,
		models.StatusNormal, models.SizeMid, models.SeverityLower,
		models.VisualNone, models.AudibleNone,
		0, 0, 200*time.Millisecond), 5*time.Minute)
}

func wrongCarModeAlert(car models.CarParams, _ models.Snapshot, _ bool) models.Alert {
	text := "Cruise Mode Disabled"
	if car.Name == "honda" {
		text = "Main Switch Off"
	}
	return models.CustomNoEntryAlert(text, models.ChimeError, models.VisualNone, 0)
}

func standstillAlert(_ models.CarParams, snap models.Snapshot, _ bool) models.Alert {
	mins := int(snap.Standstill.Minutes())
	secs := int(snap.Standstill.Seconds()) - 60*mins
	text := fmt.Sprintf("At Standstill (%02ds)", secs)
	if mins > 0 {
		text = fmt.Sprintf("At Standstill (%dm %02ds)", mins, secs)
	}
	return blinking(alert(
		text, "",
		models.StatusNormal, models.SizeSmall, models.SeverityLow,
		models.VisualNone, models.AudibleNone,
		0, 100*time.Millisecond, 100*time.Millisecond), 0.5)
}
