package events

import "github.com/agegold/driveralert/pkg/models"

// WireEntry is one element of the published event set: the identifier plus
// one independent boolean per event type the registry associated with it at
// encode time.
type WireEntry struct {
	Name             models.EventID `json:"name"`
	Enable           bool           `json:"enable,omitempty"`
	PreEnable        bool           `json:"preEnable,omitempty"`
	NoEntry          bool           `json:"noEntry,omitempty"`
	Warning          bool           `json:"warning,omitempty"`
	UserDisable      bool           `json:"userDisable,omitempty"`
	SoftDisable      bool           `json:"softDisable,omitempty"`
	ImmediateDisable bool           `json:"immediateDisable,omitempty"`
	Permanent        bool           `json:"permanent,omitempty"`
}

func (w *WireEntry) setFlag(t models.EventType) {
	switch t {
	case models.EventTypeEnable:
		w.Enable = true
	case models.EventTypePreEnable:
		w.PreEnable = true
	case models.EventTypeNoEntry:
		w.NoEntry = true
	case models.EventTypeWarning:
		w.Warning = true
	case models.EventTypeUserDisable:
		w.UserDisable = true
	case models.EventTypeSoftDisable:
		w.SoftDisable = true
	case models.EventTypeImmediateDisable:
		w.ImmediateDisable = true
	case models.EventTypePermanent:
		w.Permanent = true
	}
}

// Flag reports whether the entry marks the given event type.
func (w WireEntry) Flag(t models.EventType) bool {
	switch t {
	case models.EventTypeEnable:
		return w.Enable
	case models.EventTypePreEnable:
		return w.PreEnable
	case models.EventTypeNoEntry:
		return w.NoEntry
	case models.EventTypeWarning:
		return w.Warning
	case models.EventTypeUserDisable:
		return w.UserDisable
	case models.EventTypeSoftDisable:
		return w.SoftDisable
	case models.EventTypeImmediateDisable:
		return w.ImmediateDisable
	case models.EventTypePermanent:
		return w.Permanent
	}
	return false
}

// ToWire encodes the active set, one entry per active identifier in order,
// flags filled from the registry's type associations.
func (l *Log) ToWire() []WireEntry {
	entries := make([]WireEntry, 0, len(l.active))
	for _, id := range l.active {
		e := WireEntry{Name: id}
		for t := range l.registry[id] {
			e.setFlag(t)
		}
		entries = append(entries, e)
	}
	return entries
}

// FromWire appends the decoded identifiers to the active set in entry order.
// Decoding is permissive: identifiers outside the registry are kept so the
// set round-trips, and flags are accepted as given without cross-checking.
// Neither the permanent set nor the persistence counters are touched.
func (l *Log) FromWire(entries []WireEntry) {
	for _, e := range entries {
		l.active = append(l.active, e.Name)
	}
}
