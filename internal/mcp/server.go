// Package mcp provides an MCP (Model Context Protocol) server that exposes
// the alert catalog and arbitration engine as MCP tools for AI assistants.
package mcp

import (
	"context"
	"fmt"
	"time"

	gomcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/agegold/driveralert/internal/events"
	"github.com/agegold/driveralert/internal/loop"
	"github.com/agegold/driveralert/internal/storage"
	"github.com/agegold/driveralert/pkg/models"
)

// Server wraps the catalog, engine and scenario store as MCP tools.
type Server struct {
	server    *gomcp.Server
	registry  events.Registry
	scenarios storage.ScenarioStore
	defaults  *models.Config
}

// NewServer creates an MCP server over the given registry and scenario
// store. defaults supplies the vehicle context dynamic alerts resolve
// against when a tool call does not override it.
func NewServer(registry events.Registry, scenarios storage.ScenarioStore, defaults *models.Config, version string) *Server {
	if version == "" {
		version = "dev"
	}

	s := &Server{
		registry:  registry,
		scenarios: scenarios,
		defaults:  defaults,
	}

	s.server = gomcp.NewServer(
		&gomcp.Implementation{Name: "driveralert", Version: version},
		nil,
	)

	s.registerTools()

	return s
}

// Run starts the MCP server on stdio, blocking until the client disconnects
// or the context is cancelled.
func (s *Server) Run(ctx context.Context) error {
	return s.server.Run(ctx, &gomcp.StdioTransport{})
}

// MCPServer returns the underlying mcp.Server for testing purposes.
func (s *Server) MCPServer() *gomcp.Server {
	return s.server
}

// --- Tool input/output types ---

type carInput struct {
	Name          string  `json:"name,omitempty" jsonschema:"vehicle brand (e.g. honda, hyundai)"`
	MinSteerSpeed float64 `json:"min_steer_speed,omitempty" jsonschema:"minimum steering speed in m/s"`
}

type snapshotInput struct {
	CalPerc       int     `json:"cal_perc,omitempty" jsonschema:"calibration progress percentage (0-100)"`
	GPSIntegrated bool    `json:"gps_integrated,omitempty" jsonschema:"whether the GPS antenna is built into the device"`
	StandstillSec float64 `json:"standstill_sec,omitempty" jsonschema:"seconds the vehicle has been stationary"`
	VEgo          float64 `json:"v_ego,omitempty" jsonschema:"vehicle speed in m/s"`
}

type listEventsInput struct {
	Type string `json:"type,omitempty" jsonschema:"only list events carrying this alert type (enable, preEnable, noEntry, warning, userDisable, softDisable, immediateDisable, permanent)"`
}

type eventSummary struct {
	Name  string   `json:"name"`
	Types []string `json:"types"`
}

type listEventsOutput struct {
	Events []eventSummary `json:"events"`
	Count  int            `json:"count"`
}

type getEventInput struct {
	Name     string         `json:"name" jsonschema:"required,the event name (e.g. doorOpen, fcw, calibrationIncomplete)"`
	Car      *carInput      `json:"car,omitempty" jsonschema:"vehicle parameter overrides for dynamic alerts"`
	Snapshot *snapshotInput `json:"snapshot,omitempty" jsonschema:"live-state overrides for dynamic alerts"`
	Metric   *bool          `json:"metric,omitempty" jsonschema:"render speeds in km/h instead of mph"`
}

type alertDetail struct {
	Type          string `json:"type"`
	Text1         string `json:"text_1,omitempty"`
	Text2         string `json:"text_2,omitempty"`
	Status        string `json:"status"`
	Size          string `json:"size"`
	Severity      string `json:"severity"`
	Visual        string `json:"visual"`
	Audible       string `json:"audible"`
	CreationDelay string `json:"creation_delay,omitempty"`
	Dynamic       bool   `json:"dynamic"`
}

type getEventOutput struct {
	Name   string        `json:"name"`
	Alerts []alertDetail `json:"alerts"`
}

type resolveAlertsInput struct {
	Events   []string       `json:"events" jsonschema:"required,event names to raise this cycle"`
	Types    []string       `json:"types,omitempty" jsonschema:"requested alert types in priority order; defaults to every type"`
	Car      *carInput      `json:"car,omitempty" jsonschema:"vehicle parameter overrides for dynamic alerts"`
	Snapshot *snapshotInput `json:"snapshot,omitempty" jsonschema:"live-state overrides for dynamic alerts"`
	Metric   *bool          `json:"metric,omitempty" jsonschema:"render speeds in km/h instead of mph"`
}

type firedAlert struct {
	Tag      string `json:"tag"`
	Type     string `json:"type"`
	Severity string `json:"severity"`
	Text1    string `json:"text_1,omitempty"`
	Text2    string `json:"text_2,omitempty"`
}

type resolveAlertsOutput struct {
	Alerts []firedAlert `json:"alerts"`
	Count  int          `json:"count"`
}

type runScenarioInput struct {
	Scenario string `json:"scenario" jsonschema:"required,scenario name or path to a scenario YAML file"`
}

type summaryAlert struct {
	Cycle    int    `json:"cycle"`
	Tag      string `json:"tag"`
	Severity string `json:"severity"`
	Text1    string `json:"text_1,omitempty"`
}

type runScenarioOutput struct {
	Scenario     string         `json:"scenario"`
	Cycles       int            `json:"cycles"`
	AlertsFired  int            `json:"alerts_fired"`
	BySeverity   map[string]int `json:"by_severity,omitempty"`
	ByType       map[string]int `json:"by_type,omitempty"`
	ByTag        map[string]int `json:"by_tag,omitempty"`
	First        *summaryAlert  `json:"first,omitempty"`
	MostCritical *summaryAlert  `json:"most_critical,omitempty"`
}

// --- Tool registration ---

func (s *Server) registerTools() {
	gomcp.AddTool(s.server, &gomcp.Tool{
		Name:        "list_events",
		Description: "List the events in the alert catalog with the alert types each one carries. Optionally filter by type.",
	}, s.handleListEvents)

	gomcp.AddTool(s.server, &gomcp.Tool{
		Name:        "get_event",
		Description: "Get the full alert details for one event, with dynamic alerts resolved against the supplied (or default) vehicle context.",
	}, s.handleGetEvent)

	gomcp.AddTool(s.server, &gomcp.Tool{
		Name:        "resolve_alerts",
		Description: "Run one arbitration pass: raise the given events on a fresh cycle and return the alerts that fire, in priority order.",
	}, s.handleResolveAlerts)

	gomcp.AddTool(s.server, &gomcp.Tool{
		Name:        "run_scenario",
		Description: "Run a scenario file through the control loop and return the run summary (cycle count, alert counts, first and most critical alerts).",
	}, s.handleRunScenario)
}

// --- Tool handlers ---

func (s *Server) handleListEvents(_ context.Context, _ *gomcp.CallToolRequest, input listEventsInput) (*gomcp.CallToolResult, listEventsOutput, error) {
	var filter models.EventType
	if input.Type != "" {
		parsed, err := models.ParseEventType(input.Type)
		if err != nil {
			return errorResult(err.Error()), listEventsOutput{}, nil
		}
		filter = parsed
	}

	out := listEventsOutput{}
	for _, id := range models.EventIDs() {
		specs, ok := s.registry[id]
		if !ok {
			continue
		}
		if filter != "" {
			if _, ok := specs[filter]; !ok {
				continue
			}
		}
		out.Events = append(out.Events, eventSummary{
			Name:  id.String(),
			Types: canonicalTypes(specs),
		})
	}
	out.Count = len(out.Events)

	return nil, out, nil
}

func (s *Server) handleGetEvent(_ context.Context, _ *gomcp.CallToolRequest, input getEventInput) (*gomcp.CallToolResult, getEventOutput, error) {
	if input.Name == "" {
		return errorResult("name is required"), getEventOutput{}, nil
	}

	id, err := models.ParseEventID(input.Name)
	if err != nil {
		return errorResult(err.Error()), getEventOutput{}, nil
	}
	specs, ok := s.registry[id]
	if !ok {
		return errorResult(fmt.Sprintf("event %q has no catalog entry", input.Name)), getEventOutput{}, nil
	}

	ctx := s.resolveContext(input.Car, input.Snapshot, input.Metric)

	out := getEventOutput{Name: id.String()}
	for _, typ := range models.AllEventTypes {
		spec, ok := specs[typ]
		if !ok {
			continue
		}
		a := spec.Resolve(ctx)
		detail := alertDetail{
			Type:     string(typ),
			Text1:    a.Text1,
			Text2:    a.Text2,
			Status:   string(a.Status),
			Size:     string(a.Size),
			Severity: a.Severity.String(),
			Visual:   string(a.Visual),
			Audible:  string(a.Audible),
			Dynamic:  spec.IsDynamic(),
		}
		if a.CreationDelay > 0 {
			detail.CreationDelay = a.CreationDelay.String()
		}
		out.Alerts = append(out.Alerts, detail)
	}

	return nil, out, nil
}

func (s *Server) handleResolveAlerts(_ context.Context, _ *gomcp.CallToolRequest, input resolveAlertsInput) (*gomcp.CallToolResult, resolveAlertsOutput, error) {
	if len(input.Events) == 0 {
		return errorResult("events is required"), resolveAlertsOutput{}, nil
	}

	ids := make([]models.EventID, 0, len(input.Events))
	for _, name := range input.Events {
		id, err := models.ParseEventID(name)
		if err != nil {
			return errorResult(err.Error()), resolveAlertsOutput{}, nil
		}
		ids = append(ids, id)
	}

	types := models.AllEventTypes
	if len(input.Types) > 0 {
		types = make([]models.EventType, 0, len(input.Types))
		for _, name := range input.Types {
			typ, err := models.ParseEventType(name)
			if err != nil {
				return errorResult(err.Error()), resolveAlertsOutput{}, nil
			}
			types = append(types, typ)
		}
	}

	l := events.NewLog(s.defaults.Period, s.registry)
	for _, id := range ids {
		l.Add(id)
	}
	alerts := l.CreateAlerts(types, s.resolveContext(input.Car, input.Snapshot, input.Metric))

	out := resolveAlertsOutput{Count: len(alerts)}
	for _, a := range alerts {
		out.Alerts = append(out.Alerts, firedAlert{
			Tag:      a.Tag,
			Type:     string(a.EventType),
			Severity: a.Severity.String(),
			Text1:    a.Text1,
			Text2:    a.Text2,
		})
	}

	return nil, out, nil
}

func (s *Server) handleRunScenario(ctx context.Context, _ *gomcp.CallToolRequest, input runScenarioInput) (*gomcp.CallToolResult, runScenarioOutput, error) {
	if input.Scenario == "" {
		return errorResult("scenario is required"), runScenarioOutput{}, nil
	}

	scenario, err := s.scenarios.Load(input.Scenario)
	if err != nil {
		return errorResult(fmt.Sprintf("loading scenario %s: %s", input.Scenario, err)), runScenarioOutput{}, nil
	}

	summary, err := loop.RunScenario(ctx, scenario, s.registry)
	if err != nil {
		return errorResult(fmt.Sprintf("running scenario %s: %s", input.Scenario, err)), runScenarioOutput{}, nil
	}

	out := runScenarioOutput{
		Scenario:     summary.Scenario,
		Cycles:       summary.Cycles,
		AlertsFired:  summary.AlertsFired,
		BySeverity:   summary.BySeverity,
		ByType:       summary.ByType,
		ByTag:        summary.ByTag,
		First:        toSummaryAlert(summary.First),
		MostCritical: toSummaryAlert(summary.MostCritical),
	}

	return nil, out, nil
}

// --- Helpers ---

// resolveContext merges tool-call overrides onto the configured defaults.
func (s *Server) resolveContext(car *carInput, snap *snapshotInput, metric *bool) events.Context {
	ctx := events.Context{
		Car:      s.defaults.Car,
		Snapshot: s.defaults.Snapshot,
		Metric:   s.defaults.Metric,
	}
	if car != nil {
		if car.Name != "" {
			ctx.Car.Name = car.Name
		}
		if car.MinSteerSpeed > 0 {
			ctx.Car.MinSteerSpeed = car.MinSteerSpeed
		}
	}
	if snap != nil {
		ctx.Snapshot = models.Snapshot{
			CalPerc:       snap.CalPerc,
			GPSIntegrated: snap.GPSIntegrated,
			Standstill:    secondsToDuration(snap.StandstillSec),
			VEgo:          snap.VEgo,
		}
	}
	if metric != nil {
		ctx.Metric = *metric
	}
	return ctx
}

func canonicalTypes(specs map[models.EventType]events.Spec) []string {
	types := make([]string, 0, len(specs))
	for _, typ := range models.AllEventTypes {
		if _, ok := specs[typ]; ok {
			types = append(types, string(typ))
		}
	}
	return types
}

func secondsToDuration(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}

func toSummaryAlert(f *loop.FiredAlert) *summaryAlert {
	if f == nil {
		return nil
	}
	return &summaryAlert{
		Cycle:    f.Cycle,
		Tag:      f.Tag,
		Severity: f.Severity.String(),
		Text1:    f.Text1,
	}
}

func errorResult(msg string) *gomcp.CallToolResult {
	return &gomcp.CallToolResult{
		Content: []gomcp.Content{&gomcp.TextContent{Text: msg}},
		IsError: true,
	}
}
