package events

import "github.com/agegold/driveralert/pkg/models"

// Factory builds an alert whose content depends on runtime state, such as a
// speed threshold rendered in the driver's units or a live calibration
// percentage. Factories run once per match on every cycle inside the control
// loop, so they must be pure and cheap.
type Factory func(car models.CarParams, snap models.Snapshot, metric bool) models.Alert

// Context carries the read-only inputs factories consume, supplied fresh on
// every CreateAlerts call. The zero value is valid when no dynamic alert can
// match.
type Context struct {
	Car      models.CarParams
	Snapshot models.Snapshot
	Metric   bool
}

// Spec is one registry entry: either a fixed alert or a factory. Exactly one
// of the two is set; Static and Dynamic are the only constructors.
type Spec struct {
	alert   *models.Alert
	factory Factory
}

// Static wraps a fixed alert.
func Static(a models.Alert) Spec {
	return Spec{alert: &a}
}

// Dynamic wraps a factory.
func Dynamic(f Factory) Spec {
	return Spec{factory: f}
}

// IsDynamic reports whether the spec resolves through a factory.
func (s Spec) IsDynamic() bool {
	return s.factory != nil
}

// Resolve produces the concrete alert for the given context.
func (s Spec) Resolve(ctx Context) models.Alert {
	if s.factory != nil {
		return s.factory(ctx.Car, ctx.Snapshot, ctx.Metric)
	}
	return *s.alert
}

// Registry maps each event to the alert spec it carries per event type. It
// is treated as immutable after construction and may be shared by any number
// of Logs.
type Registry map[models.EventID]map[models.EventType]Spec
