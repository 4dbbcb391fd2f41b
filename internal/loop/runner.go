package loop

import (
	"context"
	"fmt"
	"time"

	"github.com/agegold/driveralert/internal/events"
	"github.com/agegold/driveralert/internal/storage"
	"github.com/agegold/driveralert/pkg/models"
)

// Frame is the outcome of one cycle: which events were active, their
// persistence counters, the alerts that fired, and the encoded active set.
type Frame struct {
	Cycle    int                `json:"cycle"`
	Phase    string             `json:"phase"`
	Active   []string           `json:"active"`
	Counters map[string]int     `json:"counters,omitempty"`
	Alerts   []models.Alert     `json:"alerts"`
	Wire     []events.WireEntry `json:"wire,omitempty"`
}

type compiledPhase struct {
	label     string
	cycles    int
	permanent []models.EventID
	events    []models.EventID
	snapshot  *models.Snapshot
	request   []models.EventType
}

// Runner steps the engine through a scenario. It is not safe for concurrent
// use; each run gets its own Runner.
type Runner struct {
	scenario *storage.Scenario
	log      *events.Log
	ctx      events.Context

	phases       []compiledPhase
	phaseIdx     int
	cycleInPhase int
	cycle        int
}

// NewRunner compiles a scenario against a registry. The scenario is expected
// to be validated; compilation still reports the first bad name it meets.
func NewRunner(s *storage.Scenario, reg events.Registry) (*Runner, error) {
	phases := make([]compiledPhase, 0, len(s.Phases))
	for i, ph := range s.Phases {
		cp := compiledPhase{label: ph.Label, cycles: ph.Cycles}

		for _, name := range ph.Permanent {
			id, err := models.ParseEventID(name)
			if err != nil {
				return nil, fmt.Errorf("compiling phase %d: %w", i+1, err)
			}
			cp.permanent = append(cp.permanent, id)
		}
		for _, name := range ph.Events {
			id, err := models.ParseEventID(name)
			if err != nil {
				return nil, fmt.Errorf("compiling phase %d: %w", i+1, err)
			}
			cp.events = append(cp.events, id)
		}
		for _, name := range ph.Request {
			t, err := models.ParseEventType(name)
			if err != nil {
				return nil, fmt.Errorf("compiling phase %d: %w", i+1, err)
			}
			cp.request = append(cp.request, t)
		}
		if len(cp.request) == 0 {
			cp.request = models.AllEventTypes
		}
		if ph.Snapshot != nil {
			snap := ph.Snapshot.Snapshot()
			cp.snapshot = &snap
		}
		phases = append(phases, cp)
	}

	return &Runner{
		scenario: s,
		log:      events.NewLog(time.Duration(s.Period), reg),
		ctx: events.Context{
			Car:    s.Car,
			Metric: s.Metric,
		},
		phases: phases,
	}, nil
}

// Period returns the scenario's cycle duration.
func (r *Runner) Period() time.Duration {
	return time.Duration(r.scenario.Period)
}

// TotalCycles returns how many cycles the whole scenario spans.
func (r *Runner) TotalCycles() int {
	return r.scenario.TotalCycles()
}

// Scenario returns the scenario the runner was built from.
func (r *Runner) Scenario() *storage.Scenario {
	return r.scenario
}

// Step executes one cycle and reports false once the scenario is exhausted.
func (r *Runner) Step() (Frame, bool) {
	if r.phaseIdx >= len(r.phases) {
		return Frame{}, false
	}
	ph := r.phases[r.phaseIdx]

	if r.cycleInPhase == 0 {
		if ph.snapshot != nil {
			r.ctx.Snapshot = *ph.snapshot
		}
		for _, id := range ph.permanent {
			r.log.AddPermanent(id)
		}
	}
	for _, id := range ph.events {
		r.log.Add(id)
	}
	r.cycle++

	active := r.log.Names()
	names := make([]string, len(active))
	counters := make(map[string]int, len(active))
	for i, id := range active {
		names[i] = id.String()
		counters[names[i]] = r.log.Counter(id)
	}

	frame := Frame{
		Cycle:    r.cycle,
		Phase:    ph.label,
		Active:   names,
		Counters: counters,
		Alerts:   r.log.CreateAlerts(ph.request, r.ctx),
		Wire:     r.log.ToWire(),
	}

	r.log.Clear()
	r.cycleInPhase++
	if r.cycleInPhase >= ph.cycles {
		r.phaseIdx++
		r.cycleInPhase = 0
	}
	return frame, true
}

// Run executes every remaining cycle as fast as possible, invoking fn per
// frame. An error from fn stops the run and is returned.
func (r *Runner) Run(ctx context.Context, fn func(Frame) error) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		frame, ok := r.Step()
		if !ok {
			return nil
		}
		if err := fn(frame); err != nil {
			return err
		}
	}
}

// RunRealtime paces cycles with a ticker at the scenario period divided by
// speed, so speed 2 plays twice as fast. Blocks until the scenario ends, fn
// fails, or the context is cancelled.
func (r *Runner) RunRealtime(ctx context.Context, speed float64, fn func(Frame) error) error {
	period := r.Period()
	if speed > 0 {
		period = time.Duration(float64(period) / speed)
	}
	ticker := time.NewTicker(period)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			frame, ok := r.Step()
			if !ok {
				return nil
			}
			if err := fn(frame); err != nil {
				return err
			}
		}
	}
}

// RunScenario batch-runs a scenario and returns its summary.
func RunScenario(ctx context.Context, s *storage.Scenario, reg events.Registry) (*Summary, error) {
	runner, err := NewRunner(s, reg)
	if err != nil {
		return nil, err
	}
	summary := NewSummary(s.Name)
	if err := runner.Run(ctx, func(f Frame) error {
		summary.Observe(f)
		return nil
	}); err != nil {
		return nil, err
	}
	return summary, nil
}
