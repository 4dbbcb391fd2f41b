package models

import "fmt"

// EventType classifies how an event affects control-loop engagement. Each
// event may carry alerts for any subset of these types.
type EventType string

const (
	EventTypeEnable           EventType = "enable"
	EventTypePreEnable        EventType = "preEnable"
	EventTypeNoEntry          EventType = "noEntry"
	EventTypeWarning          EventType = "warning"
	EventTypeUserDisable      EventType = "userDisable"
	EventTypeSoftDisable      EventType = "softDisable"
	EventTypeImmediateDisable EventType = "immediateDisable"
	EventTypePermanent        EventType = "permanent"
)

// AllEventTypes lists every event type in canonical order. Hosts that request
// alerts for all types use this order so results are stable cycle to cycle.
var AllEventTypes = []EventType{
	EventTypeEnable,
	EventTypePreEnable,
	EventTypeNoEntry,
	EventTypeWarning,
	EventTypeUserDisable,
	EventTypeSoftDisable,
	EventTypeImmediateDisable,
	EventTypePermanent,
}

// ParseEventType returns the EventType with the given wire spelling.
func ParseEventType(s string) (EventType, error) {
	for _, t := range AllEventTypes {
		if string(t) == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown event type %q", s)
}

// EventID identifies one condition an upstream subsystem can raise. The set
// below is closed; identifiers decoded from the wire that fall outside it are
// still carried as opaque values so they round-trip.
type EventID uint16

const (
	EventDebugAlert EventID = iota
	EventStartup
	EventStartupMaster
	EventStartupNoControl
	EventStartupNoCar
	EventDashcamMode
	EventInvalidLKASSetting
	EventCommunityFeatureDisallowed
	EventCarUnrecognized
	EventStockAEB
	EventStockFCW
	EventFCW
	EventLDW
	EventGasPressed
	EventVehicleModelInvalid
	EventSteerTempUnavailableMute
	EventPreDriverDistracted
	EventPromptDriverDistracted
	EventDriverDistracted
	EventPreDriverUnresponsive
	EventPromptDriverUnresponsive
	EventDriverUnresponsive
	EventDriverMonitorLowAcc
	EventManualRestart
	EventResumeRequired
	EventBelowSteerSpeed
	EventPreLaneChangeLeft
	EventPreLaneChangeRight
	EventLaneChangeBlocked
	EventLaneChange
	EventLaneChangeManual
	EventEmgButtonManual
	EventDriverSteering
	EventSteerSaturated
	EventFanMalfunction
	EventCameraMalfunction
	EventGPSMalfunction
	EventModeChangeOpenpilot
	EventModeChangeDistcurv
	EventModeChangeDistance
	EventModeChangeOneway
	EventNeedBrake
	EventStandStill
	EventPCMEnable
	EventButtonEnable
	EventPCMDisable
	EventButtonCancel
	EventBrakeHold
	EventParkBrake
	EventPedalPressed
	EventWrongCarMode
	EventWrongCruiseMode
	EventSteerTempUnavailable
	EventOutOfSpace
	EventBelowEngageSpeed
	EventSensorDataInvalid
	EventNoGPS
	EventSoundsUnavailable
	EventTooDistracted
	EventOverheat
	EventWrongGear
	EventCalibrationInvalid
	EventCalibrationIncomplete
	EventDoorOpen
	EventSeatbeltNotLatched
	EventESPDisabled
	EventLowBattery
	EventCommIssue
	EventProcessNotRunning
	EventRadarFault
	EventModeldLagging
	EventPosenetInvalid
	EventDeviceFalling
	EventLowMemory
	EventControlsFailed
	EventControlsMismatch
	EventCANError
	EventSteerUnavailable
	EventBrakeUnavailable
	EventReverseGear
	EventCruiseDisabled
	EventPlannerError
	EventRelayMalfunction
	EventNoTarget
	EventSpeedTooLow
	EventSpeedTooHigh
	EventLowSpeedLockout

	numEventIDs
)

// eventNames maps each identifier to its diagnostic name, built once at
// process start. Diagnostic names appear in alert tags and scenario files.
var eventNames = [numEventIDs]string{
	EventDebugAlert:                 "debugAlert",
	EventStartup:                    "startup",
	EventStartupMaster:              "startupMaster",
	EventStartupNoControl:           "startupNoControl",
	EventStartupNoCar:               "startupNoCar",
	EventDashcamMode:                "dashcamMode",
	EventInvalidLKASSetting:         "invalidLkasSetting",
	EventCommunityFeatureDisallowed: "communityFeatureDisallowed",
	EventCarUnrecognized:            "carUnrecognized",
	EventStockAEB:                   "stockAeb",
	EventStockFCW:                   "stockFcw",
	EventFCW:                        "fcw",
	EventLDW:                        "ldw",
	EventGasPressed:                 "gasPressed",
	EventVehicleModelInvalid:        "vehicleModelInvalid",
	EventSteerTempUnavailableMute:   "steerTempUnavailableMute",
	EventPreDriverDistracted:        "preDriverDistracted",
	EventPromptDriverDistracted:     "promptDriverDistracted",
	EventDriverDistracted:           "driverDistracted",
	EventPreDriverUnresponsive:      "preDriverUnresponsive",
	EventPromptDriverUnresponsive:   "promptDriverUnresponsive",
	EventDriverUnresponsive:         "driverUnresponsive",
	EventDriverMonitorLowAcc:        "driverMonitorLowAcc",
	EventManualRestart:              "manualRestart",
	EventResumeRequired:             "resumeRequired",
	EventBelowSteerSpeed:            "belowSteerSpeed",
	EventPreLaneChangeLeft:          "preLaneChangeLeft",
	EventPreLaneChangeRight:         "preLaneChangeRight",
	EventLaneChangeBlocked:          "laneChangeBlocked",
	EventLaneChange:                 "laneChange",
	EventLaneChangeManual:           "laneChangeManual",
	EventEmgButtonManual:            "emgButtonManual",
	EventDriverSteering:             "driverSteering",
	EventSteerSaturated:             "steerSaturated",
	EventFanMalfunction:             "fanMalfunction",
	EventCameraMalfunction:          "cameraMalfunction",
	EventGPSMalfunction:             "gpsMalfunction",
	EventModeChangeOpenpilot:        "modeChangeOpenpilot",
	EventModeChangeDistcurv:         "modeChangeDistcurv",
	EventModeChangeDistance:         "modeChangeDistance",
	EventModeChangeOneway:           "modeChangeOneway",
	EventNeedBrake:                  "needBrake",
	EventStandStill:                 "standStill",
	EventPCMEnable:                  "pcmEnable",
	EventButtonEnable:               "buttonEnable",
	EventPCMDisable:                 "pcmDisable",
	EventButtonCancel:               "buttonCancel",
	EventBrakeHold:                  "brakeHold",
	EventParkBrake:                  "parkBrake",
	EventPedalPressed:               "pedalPressed",
	EventWrongCarMode:               "wrongCarMode",
	EventWrongCruiseMode:            "wrongCruiseMode",
	EventSteerTempUnavailable:       "steerTempUnavailable",
	EventOutOfSpace:                 "outOfSpace",
	EventBelowEngageSpeed:           "belowEngageSpeed",
	EventSensorDataInvalid:          "sensorDataInvalid",
	EventNoGPS:                      "noGps",
	EventSoundsUnavailable:          "soundsUnavailable",
	EventTooDistracted:              "tooDistracted",
	EventOverheat:                   "overheat",
	EventWrongGear:                  "wrongGear",
	EventCalibrationInvalid:         "calibrationInvalid",
	EventCalibrationIncomplete:      "calibrationIncomplete",
	EventDoorOpen:                   "doorOpen",
	EventSeatbeltNotLatched:         "seatbeltNotLatched",
	EventESPDisabled:                "espDisabled",
	EventLowBattery:                 "lowBattery",
	EventCommIssue:                  "commIssue",
	EventProcessNotRunning:          "processNotRunning",
	EventRadarFault:                 "radarFault",
	EventModeldLagging:              "modeldLagging",
	EventPosenetInvalid:             "posenetInvalid",
	EventDeviceFalling:              "deviceFalling",
	EventLowMemory:                  "lowMemory",
	EventControlsFailed:             "controlsFailed",
	EventControlsMismatch:           "controlsMismatch",
	EventCANError:                   "canError",
	EventSteerUnavailable:           "steerUnavailable",
	EventBrakeUnavailable:           "brakeUnavailable",
	EventReverseGear:                "reverseGear",
	EventCruiseDisabled:             "cruiseDisabled",
	EventPlannerError:               "plannerError",
	EventRelayMalfunction:           "relayMalfunction",
	EventNoTarget:                   "noTarget",
	EventSpeedTooLow:                "speedTooLow",
	EventSpeedTooHigh:               "speedTooHigh",
	EventLowSpeedLockout:            "lowSpeedLockout",
}

var eventIDsByName = make(map[string]EventID, numEventIDs)

func init() {
	for id, name := range eventNames {
		eventIDsByName[name] = EventID(id)
	}
}

// String returns the diagnostic name of the identifier. Identifiers outside
// the known set render as event(<n>) so they stay printable after decoding.
func (e EventID) String() string {
	if e < numEventIDs {
		return eventNames[e]
	}
	return fmt.Sprintf("event(%d)", uint16(e))
}

// ParseEventID resolves a diagnostic name back to its identifier.
func ParseEventID(name string) (EventID, error) {
	id, ok := eventIDsByName[name]
	if !ok {
		return 0, fmt.Errorf("unknown event %q", name)
	}
	return id, nil
}

// EventIDs returns every known identifier in declaration order.
func EventIDs() []EventID {
	ids := make([]EventID, numEventIDs)
	for i := range ids {
		ids[i] = EventID(i)
	}
	return ids
}
