package events

import (
	"slices"
	"time"

	"github.com/agegold/driveralert/pkg/models"
)

// Log tracks which events are active in the current control cycle, which
// carry over permanently, and how many consecutive cycles each registered
// event has persisted.
type Log struct {
	period   time.Duration
	registry Registry

	active   []models.EventID
	static   []models.EventID
	counters map[models.EventID]int
}

// NewLog returns a Log bound to a fixed cycle period and a read-only
// registry. Persistence counters are seeded to zero for every identifier the
// registry knows; identifiers outside the registry are never counted, though
// they may still pass through the active set and the wire codec.
func NewLog(period time.Duration, reg Registry) *Log {
	counters := make(map[models.EventID]int, len(reg))
	for id := range reg {
		counters[id] = 0
	}
	return &Log{
		period:   period,
		registry: reg,
		counters: counters,
	}
}

// Add raises an event for the current cycle. Duplicates are kept in order;
// callers are expected to raise each event at most once per cycle, but the
// engine does not enforce it.
func (l *Log) Add(id models.EventID) {
	l.active = append(l.active, id)
}

// AddPermanent raises an event that also survives every Clear. There is no
// removal: a permanent event stays active for the rest of the session.
func (l *Log) AddPermanent(id models.EventID) {
	l.static = append(l.static, id)
	l.active = append(l.active, id)
}

// Clear ends the current cycle: every counter increments if its event was
// present in the cycle that just finished and resets to zero otherwise, then
// the active set is rebuilt from the permanent events. Hosts call Clear
// exactly once per cycle, before that cycle's Add calls.
func (l *Log) Clear() {
	for id, n := range l.counters {
		if slices.Contains(l.active, id) {
			l.counters[id] = n + 1
		} else {
			l.counters[id] = 0
		}
	}
	l.active = append(l.active[:0], l.static...)
}

// Any reports whether any active event carries an alert of the given type.
func (l *Log) Any(t models.EventType) bool {
	for _, id := range l.active {
		if _, ok := l.registry[id][t]; ok {
			return true
		}
	}
	return false
}

// Len returns the number of active entries, duplicates included.
func (l *Log) Len() int {
	return len(l.active)
}

// Names returns the active identifiers in insertion order. The slice is the
// Log's own backing store: read-only, valid until the next Clear.
func (l *Log) Names() []models.EventID {
	return l.active
}

// Counter returns how many consecutive completed cycles the identifier has
// been present, zero for identifiers the registry does not know.
func (l *Log) Counter(id models.EventID) int {
	return l.counters[id]
}

// CreateAlerts resolves the alerts the active events produce for the
// requested types. Result order is active insertion order, then requested
// type order within one event; severity plays no part here. An alert is
// withheld until its event has persisted for the alert's creation delay,
// counting the current cycle, so a zero delay fires immediately. Events the
// registry does not know, and types an event does not carry, contribute
// nothing.
func (l *Log) CreateAlerts(types []models.EventType, ctx Context) []models.Alert {
	var alerts []models.Alert
	for _, id := range l.active {
		specs, ok := l.registry[id]
		if !ok {
			continue
		}
		for _, t := range types {
			spec, ok := specs[t]
			if !ok {
				continue
			}

			alert := spec.Resolve(ctx)
			elapsed := time.Duration(l.counters[id] + 1)
			if l.period*elapsed < alert.CreationDelay {
				continue
			}

			alert.Tag = id.String() + "/" + string(t)
			alert.EventType = t
			alerts = append(alerts, alert)
		}
	}
	return alerts
}
