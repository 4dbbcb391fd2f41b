package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/agegold/driveralert/pkg/models"
)

// DefaultPeriod is the canonical control-cycle duration (100Hz).
const DefaultPeriod = 10 * time.Millisecond

// Duration wraps time.Duration so scenario files carry strings like "10ms"
// instead of nanosecond integers.
type Duration time.Duration

func (d Duration) MarshalYAML() (any, error) {
	return time.Duration(d).String(), nil
}

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("parsing duration %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

// Scenario describes one simulated drive: global parameters plus an ordered
// list of phases the runner steps through cycle by cycle.
type Scenario struct {
	Version     string           `yaml:"version"`
	Name        string           `yaml:"name"`
	Description string           `yaml:"description,omitempty"`
	Period      Duration         `yaml:"period"`
	Metric      bool             `yaml:"metric"`
	Car         models.CarParams `yaml:"car"`
	Phases      []Phase          `yaml:"phases"`
}

// Phase is a run of consecutive cycles sharing one event mix. Permanent
// events are raised once when the phase starts and stay active for the rest
// of the run; plain events are raised again every cycle of the phase.
type Phase struct {
	Label     string        `yaml:"label"`
	Cycles    int           `yaml:"cycles"`
	Permanent []string      `yaml:"permanent,omitempty"`
	Events    []string      `yaml:"events,omitempty"`
	Snapshot  *SnapshotSpec `yaml:"snapshot,omitempty"`
	Request   []string      `yaml:"request,omitempty"`
}

// SnapshotSpec replaces the live sensor snapshot for the phases that set it.
type SnapshotSpec struct {
	CalPerc       int      `yaml:"cal_perc"`
	GPSIntegrated bool     `yaml:"gps_integrated"`
	Standstill    Duration `yaml:"standstill"`
	VEgo          float64  `yaml:"v_ego"`
}

// Snapshot converts the spec to the engine's snapshot type.
func (s SnapshotSpec) Snapshot() models.Snapshot {
	return models.Snapshot{
		CalPerc:       s.CalPerc,
		GPSIntegrated: s.GPSIntegrated,
		Standstill:    time.Duration(s.Standstill),
		VEgo:          s.VEgo,
	}
}

// Validate checks every event, type and cycle count, reporting all problems
// at once so a scenario file can be fixed in one pass.
func (s *Scenario) Validate() error {
	var errs []error
	if len(s.Phases) == 0 {
		errs = append(errs, errors.New("scenario has no phases"))
	}
	if s.Period <= 0 {
		errs = append(errs, errors.New("period must be positive"))
	}
	for i, ph := range s.Phases {
		where := fmt.Sprintf("phase %d (%s)", i+1, ph.Label)
		if ph.Cycles <= 0 {
			errs = append(errs, fmt.Errorf("%s: cycles must be positive", where))
		}
		for _, name := range ph.Permanent {
			if _, err := models.ParseEventID(name); err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", where, err))
			}
		}
		for _, name := range ph.Events {
			if _, err := models.ParseEventID(name); err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", where, err))
			}
		}
		for _, name := range ph.Request {
			if _, err := models.ParseEventType(name); err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", where, err))
			}
		}
	}
	return errors.Join(errs...)
}

// TotalCycles sums the cycle counts of every phase.
func (s *Scenario) TotalCycles() int {
	total := 0
	for _, ph := range s.Phases {
		total += ph.Cycles
	}
	return total
}

// ScenarioStore defines the interface for loading and saving drive scenarios.
type ScenarioStore interface {
	Load(name string) (*Scenario, error)
	Save(s *Scenario) error
	List() ([]string, error)
	Path(name string) string
}

type fileScenarioStore struct {
	dir string
}

// NewScenarioStore creates a ScenarioStore over a directory of YAML files.
func NewScenarioStore(dir string) ScenarioStore {
	return &fileScenarioStore{dir: dir}
}

// Path resolves a scenario name to a file path. Names carrying a YAML
// extension are treated as paths and used as given.
func (st *fileScenarioStore) Path(name string) string {
	if strings.HasSuffix(name, ".yaml") || strings.HasSuffix(name, ".yml") {
		return name
	}
	return filepath.Join(st.dir, name+".yaml")
}

func (st *fileScenarioStore) Load(name string) (*Scenario, error) {
	path := st.Path(name)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading scenario: %w", err)
	}

	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("loading scenario %s: parsing YAML: %w", path, err)
	}
	if s.Period == 0 {
		s.Period = Duration(DefaultPeriod)
	}
	if s.Name == "" {
		s.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("loading scenario %s: %w", path, err)
	}
	return &s, nil
}

func (st *fileScenarioStore) Save(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("saving scenario: name must not be empty")
	}
	if err := os.MkdirAll(st.dir, 0o750); err != nil {
		return fmt.Errorf("saving scenario: %w", err)
	}

	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("saving scenario: marshalling YAML: %w", err)
	}
	if err := os.WriteFile(st.Path(s.Name), data, 0o600); err != nil {
		return fmt.Errorf("saving scenario: %w", err)
	}
	return nil
}

func (st *fileScenarioStore) List() ([]string, error) {
	entries, err := os.ReadDir(st.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("listing scenarios: %w", err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if strings.HasSuffix(name, ".yaml") || strings.HasSuffix(name, ".yml") {
			names = append(names, strings.TrimSuffix(strings.TrimSuffix(name, ".yaml"), ".yml"))
		}
	}
	return names, nil
}

// DefaultScenario returns the bundled example written by the init command: a
// short urban drive touching engagement, a door fault and a standing GPS
// complaint whose creation delay keeps it silent for this run length.
func DefaultScenario() *Scenario {
	return &Scenario{
		Version:     "1.0",
		Name:        "city-drive",
		Description: "Engage, cruise, catch a door warning, disengage.",
		Period:      Duration(DefaultPeriod),
		Metric:      true,
		Car:         models.CarParams{Name: "hyundai", MinSteerSpeed: 16.67},
		Phases: []Phase{
			{
				Label:     "startup",
				Cycles:    100,
				Permanent: []string{"startup"},
			},
			{
				Label:  "engage",
				Cycles: 1,
				Events: []string{"buttonEnable"},
			},
			{
				Label:    "cruise",
				Cycles:   200,
				Snapshot: &SnapshotSpec{CalPerc: 100, VEgo: 13.9},
			},
			{
				Label:     "door ajar",
				Cycles:    50,
				Events:    []string{"doorOpen"},
				Permanent: []string{"noGps"},
			},
			{
				Label:  "disengage",
				Cycles: 1,
				Events: []string{"buttonCancel"},
			},
		},
	}
}
