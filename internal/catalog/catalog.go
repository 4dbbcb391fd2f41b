package catalog

import (
	"time"

	"github.com/agegold/driveralert/internal/events"
	"github.com/agegold/driveralert/pkg/models"
)

// Type shorthands keep the registry table close to the shape of the data.
const (
	enable           = models.EventTypeEnable
	preEnable        = models.EventTypePreEnable
	noEntry          = models.EventTypeNoEntry
	warning          = models.EventTypeWarning
	userDisable      = models.EventTypeUserDisable
	softDisable      = models.EventTypeSoftDisable
	immediateDisable = models.EventTypeImmediateDisable
	permanent        = models.EventTypePermanent
)

var (
	static  = events.Static
	dynamic = events.Dynamic
)

// alert builds an Alert with every field stated positionally, so each table
// entry reads as one row of data.
func alert(text1, text2 string, status models.AlertStatus, size models.AlertSize,
	severity models.Severity, visual models.VisualAlert, audible models.AudibleAlert,
	sound, hud, text time.Duration) models.Alert {
	return models.Alert{
		Text1:         text1,
		Text2:         text2,
		Status:        status,
		Size:          size,
		Severity:      severity,
		Visual:        visual,
		Audible:       audible,
		SoundDuration: sound,
		HUDDuration:   hud,
		TextDuration:  text,
	}
}

func blinking(a models.Alert, rate float64) models.Alert {
	a.Rate = rate
	return a
}

func delayed(a models.Alert, d time.Duration) models.Alert {
	a.CreationDelay = d
	return a
}

// Registry returns the built-in event registry. It is shared process-wide;
// callers must treat it as read-only.
func Registry() events.Registry {
	return builtin
}

var builtin = events.Registry{

	// Events carrying alerts shown in every state.

	models.EventDebugAlert: {
		permanent: static(alert(
			"DEBUG ALERT", "",
			models.StatusUserPrompt, models.SizeMid, models.SeverityLow,
			models.VisualNone, models.AudibleNone,
			100*time.Millisecond, 100*time.Millisecond, 100*time.Millisecond)),
	},

	models.EventStartup: {
		permanent: static(alert(
			"Be ready to take over at any time", "Always keep hands on wheel and eyes on road",
			models.StatusNormal, models.SizeMid, models.SeverityLower,
			models.VisualNone, models.AudibleNone,
			0, 0, 5*time.Second)),
	},

	models.EventStartupMaster: {
		permanent: static(alert(
			"WARNING: This branch is not tested", "Always keep hands on wheel and eyes on road",
			models.StatusUserPrompt, models.SizeMid, models.SeverityLower,
			models.VisualNone, models.AudibleNone,
			0, 0, 5*time.Second)),
	},

	models.EventStartupNoControl: {
		permanent: static(alert(
			"Dashcam mode", "Always keep hands on wheel and eyes on road",
			models.StatusNormal, models.SizeMid, models.SeverityLower,
			models.VisualNone, models.AudibleNone,
			0, 0, 5*time.Second)),
	},

	models.EventStartupNoCar: {
		permanent: static(alert(
			"Dashcam mode for unsupported car", "Always keep hands on wheel and eyes on road",
			models.StatusNormal, models.SizeMid, models.SeverityLower,
			models.VisualNone, models.AudibleNone,
			0, 0, 5*time.Second)),
	},

	models.EventDashcamMode: {
		permanent: static(alert(
			"Dashcam mode", "",
			models.StatusNormal, models.SizeSmall, models.SeverityLowest,
			models.VisualNone, models.AudibleNone,
			0, 0, 200*time.Millisecond)),
	},

	models.EventInvalidLKASSetting: {
		permanent: static(alert(
			"Stock LKAS is on", "Turn off stock LKAS to engage",
			models.StatusNormal, models.SizeMid, models.SeverityLower,
			models.VisualNone, models.AudibleNone,
			0, 0, 200*time.Millisecond)),
	},

	models.EventCommunityFeatureDisallowed: {
		// LOW so it outranks the cruise fault alert on the HUD.
		permanent: static(alert(
			"Community Feature Detected", "Enable Community Features in Developer Settings",
			models.StatusNormal, models.SizeMid, models.SeverityLow,
			models.VisualNone, models.AudibleNone,
			0, 0, 200*time.Millisecond)),
	},

	models.EventCarUnrecognized: {
		permanent: static(alert(
			"Dashcam mode", "Car Unrecognized",
			models.StatusNormal, models.SizeMid, models.SeverityLowest,
			models.VisualNone, models.AudibleNone,
			0, 0, 200*time.Millisecond)),
	},

	models.EventStockAEB: {
		permanent: static(alert(
			"BRAKE!", "Stock AEB: Risk of Collision",
			models.StatusCritical, models.SizeFull, models.SeverityHighest,
			models.VisualFCW, models.AudibleNone,
			time.Second, 2*time.Second, 2*time.Second)),
	},

	models.EventStockFCW: {
		permanent: static(alert(
			"BRAKE!", "Stock FCW: Risk of Collision",
			models.StatusCritical, models.SizeFull, models.SeverityHighest,
			models.VisualFCW, models.AudibleNone,
			time.Second, 2*time.Second, 2*time.Second)),
	},

	models.EventFCW: {
		permanent: static(alert(
			"BRAKE!", "Risk of Collision",
			models.StatusCritical, models.SizeFull, models.SeverityHighest,
			models.VisualFCW, models.ChimeWarningRepeat,
			time.Second, 2*time.Second, 2*time.Second)),
	},

	models.EventLDW: {
		permanent: static(alert(
			"TAKE CONTROL", "Lane Departure Detected",
			models.StatusUserPrompt, models.SizeMid, models.SeverityLow,
			models.VisualSteerRequired, models.ChimePrompt,
			time.Second, 2*time.Second, 3*time.Second)),
	},

	// Events raised only while the openpilot state machine is engaged.

	models.EventGasPressed: {
		preEnable: static(delayed(alert(
			"openpilot will not brake while gas pressed", "",
			models.StatusNormal, models.SizeSmall, models.SeverityLowest,
			models.VisualNone, models.AudibleNone,
			0, 0, 100*time.Millisecond), time.Second)),
	},

	models.EventVehicleModelInvalid: {
		noEntry: static(models.NoEntryAlert("Vehicle Parameter Identification Failed")),
		warning: static(alert(
			"Vehicle Parameter Identification Failed", "",
			models.StatusNormal, models.SizeSmall, models.SeverityLowest,
			models.VisualNone, models.AudibleNone,
			0, 0, 100*time.Millisecond)),
	},

	models.EventSteerTempUnavailableMute: {
		warning: static(alert(
			"TAKE CONTROL", "Steering Temporarily Unavailable",
			models.StatusUserPrompt, models.SizeMid, models.SeverityLow,
			models.VisualNone, models.AudibleNone,
			200*time.Millisecond, 200*time.Millisecond, 200*time.Millisecond)),
	},

	models.EventPreDriverDistracted: {
		warning: static(blinking(alert(
			"KEEP EYES ON ROAD: Driver Distracted", "",
			models.StatusNormal, models.SizeSmall, models.SeverityLow,
			models.VisualNone, models.AudibleNone,
			0, 100*time.Millisecond, 100*time.Millisecond), 0.75)),
	},

	models.EventPromptDriverDistracted: {
		warning: static(alert(
			"KEEP EYES ON ROAD", "Driver Appears Distracted",
			models.StatusUserPrompt, models.SizeMid, models.SeverityMid,
			models.VisualSteerRequired, models.ChimeWarning2Repeat,
			100*time.Millisecond, 100*time.Millisecond, 100*time.Millisecond)),
	},

	models.EventDriverDistracted: {
		warning: static(alert(
			"DISENGAGE IMMEDIATELY", "Driver Was Distracted",
			models.StatusCritical, models.SizeFull, models.SeverityHigh,
			models.VisualSteerRequired, models.ChimeWarningRepeat,
			100*time.Millisecond, 100*time.Millisecond, 100*time.Millisecond)),
	},

	models.EventPreDriverUnresponsive: {
		warning: static(blinking(alert(
			"TOUCH STEERING WHEEL: No Face Detected", "",
			models.StatusNormal, models.SizeSmall, models.SeverityLow,
			models.VisualNone, models.AudibleNone,
			0, 100*time.Millisecond, 100*time.Millisecond), 0.75)),
	},

	models.EventPromptDriverUnresponsive: {
		warning: static(alert(
			"TOUCH STEERING WHEEL", "Driver Is Unresponsive",
			models.StatusUserPrompt, models.SizeMid, models.SeverityMid,
			models.VisualNone, models.AudibleNone,
			100*time.Millisecond, 100*time.Millisecond, 100*time.Millisecond)),
	},

	models.EventDriverUnresponsive: {
		warning: static(alert(
			"DISENGAGE IMMEDIATELY", "Driver Is Unresponsive",
			models.StatusCritical, models.SizeFull, models.SeverityHigh,
			models.VisualNone, models.AudibleNone,
			100*time.Millisecond, 100*time.Millisecond, 100*time.Millisecond)),
	},

	models.EventDriverMonitorLowAcc: {
		warning: static(alert(
			"CHECK DRIVER FACE VISIBILITY", "Driver Monitoring Uncertain",
			models.StatusNormal, models.SizeMid, models.SeverityLow,
			models.VisualNone, models.AudibleNone,
			400*time.Millisecond, 0, 1500*time.Millisecond)),
	},

	models.EventManualRestart: {
		warning: static(alert(
			"TAKE CONTROL", "Resume Driving Manually",
			models.StatusUserPrompt, models.SizeMid, models.SeverityLow,
			models.VisualNone, models.AudibleNone,
			0, 0, 200*time.Millisecond)),
	},

	models.EventResumeRequired: {
		warning: static(alert(
			"STOPPED", "Press Resume to Move",
			models.StatusUserPrompt, models.SizeMid, models.SeverityLow,
			models.VisualNone, models.AudibleNone,
			0, 0, 200*time.Millisecond)),
	},

	models.EventBelowSteerSpeed: {
		warning: dynamic(belowSteerSpeedAlert),
	},

	models.EventPreLaneChangeLeft: {
		warning: static(blinking(alert(
			"Steer Left to Start Lane Change", "Monitor Other Vehicles",
			models.StatusNormal, models.SizeMid, models.SeverityLow,
			models.VisualNone, models.AudibleNone,
			0, 100*time.Millisecond, 100*time.Millisecond), 0.75)),
	},

	models.EventPreLaneChangeRight: {
		warning: static(blinking(alert(
			"Steer Right to Start Lane Change", "Monitor Other Vehicles",
			models.StatusNormal, models.SizeMid, models.SeverityLow,
			models.VisualNone, models.AudibleNone,
			0, 100*time.Millisecond, 100*time.Millisecond), 0.75)),
	},

	models.EventLaneChangeBlocked: {
		warning: static(alert(
			"Car Detected in Blindspot", "Monitor Other Vehicles",
			models.StatusNormal, models.SizeMid, models.SeverityLow,
			models.VisualSteerRequired, models.AudibleNone,
			0, 100*time.Millisecond, 100*time.Millisecond)),
	},

	models.EventLaneChange: {
		warning: static(alert(
			"Changing Lane", "Monitor Other Vehicles",
			models.StatusNormal, models.SizeMid, models.SeverityLow,
			models.VisualNone, models.AudibleNone,
			0, 100*time.Millisecond, 100*time.Millisecond)),
	},

	models.EventLaneChangeManual: {
		warning: static(blinking(alert(
			"Manual Lane Change Active", "Steering Paused While Turn Signal Is On",
			models.StatusUserPrompt, models.SizeMid, models.SeverityLow,
			models.VisualNone, models.AudibleNone,
			0, 100*time.Millisecond, 100*time.Millisecond), 0.75)),
	},

	models.EventEmgButtonManual: {
		warning: static(blinking(alert(
			"Hazard Lights Active", "",
			models.StatusUserPrompt, models.SizeMid, models.SeverityLow,
			models.VisualNone, models.AudibleNone,
			0, 100*time.Millisecond, 100*time.Millisecond), 0.75)),
	},

	models.EventDriverSteering: {
		warning: static(alert(
			"Driver Steering Detected", "Steering Control Paused",
			models.StatusUserPrompt, models.SizeMid, models.SeverityLow,
			models.VisualNone, models.AudibleNone,
			0, 100*time.Millisecond, 100*time.Millisecond)),
	},

	models.EventSteerSaturated: {
		warning: static(alert(
			"TAKE CONTROL", "Turn Exceeds Steering Limit",
			models.StatusUserPrompt, models.SizeMid, models.SeverityLow,
			models.VisualNone, models.AudibleNone,
			100*time.Millisecond, 100*time.Millisecond, 100*time.Millisecond)),
	},

	models.EventFanMalfunction: {
		permanent: static(models.NormalPermanentAlert("Fan Malfunction", "Contact Support")),
	},

	models.EventCameraMalfunction: {
		permanent: static(models.NormalPermanentAlert("Camera Malfunction", "Contact Support")),
	},

	models.EventGPSMalfunction: {
		permanent: static(models.NormalPermanentAlert("GPS Malfunction", "Contact Support")),
	},

	models.EventModeChangeOpenpilot: {
		warning: static(alert(
			"Openpilot Mode", "",
			models.StatusNormal, models.SizeSmall, models.SeverityLow,
			models.VisualNone, models.ChimeModeOpenpilot,
			time.Second, 0, time.Second)),
	},

	models.EventModeChangeDistcurv: {
		warning: static(alert(
			"Distance and Curve Mode", "",
			models.StatusNormal, models.SizeSmall, models.SeverityLow,
			models.VisualNone, models.ChimeModeDistcurv,
			time.Second, 0, time.Second)),
	},

	models.EventModeChangeDistance: {
		warning: static(alert(
			"Distance Only Mode", "",
			models.StatusNormal, models.SizeSmall, models.SeverityLow,
			models.VisualNone, models.ChimeModeDistance,
			time.Second, 0, time.Second)),
	},

	models.EventModeChangeOneway: {
		warning: static(alert(
			"One Lane Mode", "",
			models.StatusNormal, models.SizeSmall, models.SeverityLow,
			models.VisualNone, models.ChimeModeOneway,
			time.Second, 0, time.Second)),
	},

	models.EventNeedBrake: {
		warning: static(alert(
			"BRAKE!", "Sudden Stop Ahead",
			models.StatusNormal, models.SizeFull, models.SeverityLow,
			models.VisualNone, models.ChimeWarning2Repeat,
			100*time.Millisecond, 100*time.Millisecond, 100*time.Millisecond)),
	},

	models.EventStandStill: {
		warning: dynamic(standstillAlert),
	},

	// Engagement and cancellation chimes.

	models.EventPCMEnable: {
		enable: static(models.EngagementAlert(models.ChimeEngage)),
	},

	models.EventButtonEnable: {
		enable: static(models.EngagementAlert(models.ChimeEngage)),
	},

	models.EventPCMDisable: {
		userDisable: static(models.EngagementAlert(models.ChimeDisengage)),
	},

	models.EventButtonCancel: {
		userDisable: static(models.EngagementAlert(models.ChimeDisengage)),
	},

	models.EventBrakeHold: {
		userDisable: static(models.EngagementAlert(models.AudibleNone)),
		noEntry:     static(models.NoEntryAlert("Brake Hold Active")),
	},

	models.EventParkBrake: {
		userDisable: static(models.EngagementAlert(models.AudibleNone)),
		noEntry:     static(models.NoEntryAlert("Park Brake Engaged")),
	},

	models.EventPedalPressed: {
		userDisable: static(models.EngagementAlert(models.AudibleNone)),
		noEntry: static(models.CustomNoEntryAlert(
			"Pedal Pressed During Attempt", models.ChimeError, models.VisualBrakePressed, 2*time.Second)),
	},

	models.EventWrongCarMode: {
		userDisable: static(models.EngagementAlert(models.ChimeDisengage)),
		noEntry:     dynamic(wrongCarModeAlert),
	},

	models.EventWrongCruiseMode: {
		userDisable: static(models.EngagementAlert(models.AudibleNone)),
		noEntry:     static(models.NoEntryAlert("Enable Adaptive Cruise")),
	},

	// Car and platform faults.

	models.EventSteerTempUnavailable: {
		warning: static(alert(
			"TAKE CONTROL", "Steering Temporarily Unavailable",
			models.StatusUserPrompt, models.SizeMid, models.SeverityLow,
			models.VisualSteerRequired, models.ChimeWarning1,
			400*time.Millisecond, 2*time.Second, 3*time.Second)),
		noEntry: static(models.CustomNoEntryAlert(
			"Steering Temporarily Unavailable", models.ChimeError, models.VisualNone, 0)),
	},

	models.EventOutOfSpace: {
		permanent: static(alert(
			"Out of Storage Space", "",
			models.StatusNormal, models.SizeSmall, models.SeverityLower,
			models.VisualNone, models.AudibleNone,
			0, 0, 200*time.Millisecond)),
		noEntry: static(models.CustomNoEntryAlert(
			"Out of Storage Space", models.ChimeError, models.VisualNone, 0)),
	},

	models.EventBelowEngageSpeed: {
		noEntry: static(models.NoEntryAlert("Speed Too Low")),
	},

	models.EventSensorDataInvalid: {
		permanent: static(delayed(alert(
			"No Data from Device Sensors", "Reboot your Device",
			models.StatusNormal, models.SizeMid, models.SeverityLower,
			models.VisualNone, models.AudibleNone,
			0, 0, 200*time.Millisecond), time.Second)),
		noEntry: static(models.NoEntryAlert("No Data from Device Sensors")),
	},

	models.EventNoGPS: {
		permanent: dynamic(noGPSAlert),
	},

	models.EventSoundsUnavailable: {
		permanent: static(models.NormalPermanentAlert("Speaker not found", "Reboot your Device")),
		noEntry:   static(models.NoEntryAlert("Speaker not found")),
	},

	models.EventTooDistracted: {
		noEntry: static(models.NoEntryAlert("Distraction Level Too High")),
	},

	models.EventOverheat: {
		permanent: static(alert(
			"System Overheated", "",
			models.StatusNormal, models.SizeSmall, models.SeverityLower,
			models.VisualNone, models.AudibleNone,
			0, 0, 200*time.Millisecond)),
		softDisable: static(models.SoftDisableAlert("System Overheated")),
		noEntry:     static(models.NoEntryAlert("System Overheated")),
	},

	models.EventWrongGear: {
		userDisable: static(models.EngagementAlert(models.ChimeDisengage)),
		noEntry:     static(models.NoEntryAlert("Gear not D")),
	},

	models.EventCalibrationInvalid: {
		permanent:   static(models.NormalPermanentAlert("Calibration Invalid", "Reposition Device and Recalibrate")),
		softDisable: static(models.SoftDisableAlert("Calibration Invalid: Reposition Device and Recalibrate")),
		noEntry:     static(models.NoEntryAlert("Calibration Invalid: Reposition Device and Recalibrate")),
	},

	models.EventCalibrationIncomplete: {
		permanent:   dynamic(calibrationIncompleteAlert),
		softDisable: static(models.SoftDisableAlert("Calibration in Progress")),
		noEntry:     static(models.NoEntryAlert("Calibration in Progress")),
	},

	models.EventDoorOpen: {
		softDisable: static(models.SoftDisableAlert("Door Open")),
		noEntry:     static(models.NoEntryAlert("Door Open")),
	},

	models.EventSeatbeltNotLatched: {
		softDisable: static(models.SoftDisableAlert("Seatbelt Unlatched")),
		noEntry:     static(models.NoEntryAlert("Seatbelt Unlatched")),
	},

	models.EventESPDisabled: {
		softDisable: static(models.SoftDisableAlert("ESP Off")),
		noEntry:     static(models.NoEntryAlert("ESP Off")),
	},

	models.EventLowBattery: {
		softDisable: static(models.SoftDisableAlert("Low Battery")),
		noEntry:     static(models.NoEntryAlert("Low Battery")),
	},

	models.EventCommIssue: {
		softDisable: static(models.SoftDisableAlert("Communication Issue between Processes")),
		noEntry: static(models.CustomNoEntryAlert(
			"Communication Issue between Processes", models.AudibleNone, models.VisualNone, 2*time.Second)),
	},

	models.EventProcessNotRunning: {
		noEntry: static(models.CustomNoEntryAlert(
			"System Malfunction: Reboot Your Device", models.AudibleNone, models.VisualNone, 2*time.Second)),
	},

	models.EventRadarFault: {
		softDisable: static(models.SoftDisableAlert("Radar Error: Restart the Car")),
		noEntry:     static(models.NoEntryAlert("Radar Error: Restart the Car")),
	},

	models.EventModeldLagging: {
		softDisable: static(models.SoftDisableAlert("Driving model lagging")),
		noEntry:     static(models.NoEntryAlert("Driving model lagging")),
	},

	models.EventPosenetInvalid: {
		softDisable: static(models.SoftDisableAlert("Vision Model Output Uncertain")),
		noEntry:     static(models.NoEntryAlert("Vision Model Output Uncertain")),
	},

	models.EventDeviceFalling: {
		softDisable: static(models.SoftDisableAlert("Device Fell Off Mount")),
		noEntry:     static(models.NoEntryAlert("Device Fell Off Mount")),
	},

	models.EventLowMemory: {
		softDisable: static(models.SoftDisableAlert("Low Memory: Reboot Your Device")),
		permanent:   static(models.NormalPermanentAlert("Low Memory", "Reboot your Device")),
		noEntry: static(models.CustomNoEntryAlert(
			"Low Memory: Reboot Your Device", models.ChimeDisengage, models.VisualNone, 2*time.Second)),
	},

	models.EventControlsFailed: {
		immediateDisable: static(models.ImmediateDisableAlert("Controls Failed")),
		noEntry:          static(models.NoEntryAlert("Controls Failed")),
	},

	models.EventControlsMismatch: {
		immediateDisable: static(models.ImmediateDisableAlert("Controls Mismatch")),
	},

	models.EventCANError: {
		immediateDisable: static(models.ImmediateDisableAlert("CAN Error: Check Connections")),
		permanent: static(delayed(alert(
			"CAN Error: Check Connections", "",
			models.StatusNormal, models.SizeSmall, models.SeverityLow,
			models.VisualNone, models.AudibleNone,
			0, 0, 200*time.Millisecond), time.Second)),
		noEntry: static(models.NoEntryAlert("CAN Error: Check Connections")),
	},

	models.EventSteerUnavailable: {
		immediateDisable: static(models.ImmediateDisableAlert("LKAS Fault: Restart the Car")),
		permanent: static(alert(
			"LKAS Fault: Restart the car to engage", "",
			models.StatusNormal, models.SizeSmall, models.SeverityLower,
			models.VisualNone, models.AudibleNone,
			0, 0, 200*time.Millisecond)),
		noEntry: static(models.NoEntryAlert("LKAS Fault: Restart the Car")),
	},

	models.EventBrakeUnavailable: {
		immediateDisable: static(models.ImmediateDisableAlert("Cruise Fault: Restart the Car")),
		permanent: static(alert(
			"Cruise Fault: Restart the car to engage", "",
			models.StatusNormal, models.SizeSmall, models.SeverityLower,
			models.VisualNone, models.AudibleNone,
			0, 0, 200*time.Millisecond)),
		noEntry: static(models.NoEntryAlert("Cruise Fault: Restart the Car")),
	},

	models.EventReverseGear: {
		permanent: static(delayed(alert(
			"Reverse Gear", "",
			models.StatusNormal, models.SizeFull, models.SeverityLowest,
			models.VisualNone, models.AudibleNone,
			0, 0, 200*time.Millisecond), 500*time.Millisecond)),
		immediateDisable: static(models.ImmediateDisableAlert("Reverse Gear")),
		noEntry:          static(models.NoEntryAlert("Reverse Gear")),
	},

	models.EventCruiseDisabled: {
		immediateDisable: static(models.ImmediateDisableAlert("Cruise Is Off")),
	},

	models.EventPlannerError: {
		immediateDisable: static(models.ImmediateDisableAlert("Planner Solution Error")),
		noEntry:          static(models.NoEntryAlert("Planner Solution Error")),
	},

	models.EventRelayMalfunction: {
		immediateDisable: static(models.ImmediateDisableAlert("Harness Malfunction")),
		permanent:        static(models.NormalPermanentAlert("Harness Malfunction", "Check Hardware")),
		noEntry:          static(models.NoEntryAlert("Harness Malfunction")),
	},

	models.EventNoTarget: {
		immediateDisable: static(alert(
			"openpilot Canceled", "No close lead car",
			models.StatusNormal, models.SizeMid, models.SeverityHigh,
			models.VisualNone, models.AudibleNone,
			400*time.Millisecond, 2*time.Second, 3*time.Second)),
		noEntry: static(models.NoEntryAlert("No Close Lead Car")),
	},

	models.EventSpeedTooLow: {
		immediateDisable: static(alert(
			"openpilot Canceled", "Speed too low",
			models.StatusNormal, models.SizeMid, models.SeverityHigh,
			models.VisualNone, models.AudibleNone,
			400*time.Millisecond, 2*time.Second, 3*time.Second)),
	},

	models.EventSpeedTooHigh: {
		warning: static(alert(
			"Speed Too High", "Slow down to resume operation",
			models.StatusNormal, models.SizeMid, models.SeverityHigh,
			models.VisualNone, models.ChimeWarning2Repeat,
			2200*time.Millisecond, 3*time.Second, 4*time.Second)),
		noEntry: static(alert(
			"Speed Too High", "Slow down to engage",
			models.StatusNormal, models.SizeMid, models.SeverityLow,
			models.VisualNone, models.ChimeError,
			400*time.Millisecond, 2*time.Second, 3*time.Second)),
	},

	models.EventLowSpeedLockout: {
		permanent: static(alert(
			"Cruise Fault: Restart the car to engage", "",
			models.StatusNormal, models.SizeSmall, models.SeverityLower,
			models.VisualNone, models.AudibleNone,
			0, 0, 200*time.Millisecond)),
		noEntry: static(models.NoEntryAlert("Cruise Fault: Restart the Car")),
	},
}
