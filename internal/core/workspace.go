package core

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"text/template"

	"github.com/agegold/driveralert/internal/storage"
)

// InitConfig holds the parameters for initializing a workspace.
type InitConfig struct {
	BasePath string
	Car      string
	Period   string
}

// InitResult holds a summary of what was created vs. skipped.
type InitResult struct {
	Created []string
	Skipped []string
}

// WorkspaceInitializer defines the interface for initializing a driveralert
// workspace with its configuration file and a starter scenario.
type WorkspaceInitializer interface {
	Init(config InitConfig) (*InitResult, error)
}

type workspaceInitializer struct{}

// NewWorkspaceInitializer creates a new WorkspaceInitializer.
func NewWorkspaceInitializer() WorkspaceInitializer {
	return &workspaceInitializer{}
}

// configTemplate is the starter driveralert.yaml. Kept as a literal so the
// generated file carries comments and human-readable durations.
const configTemplate = `# driveralert configuration

# Directory holding drive scenario files, relative to this file.
scenario_dir: scenarios

# Control loop cycle period.
period: {{.Period}}

# Render speed-dependent alert text in metric units.
metric: true

car:
  name: {{.Car}}
  min_steer_speed: 16.67

snapshot:
  cal_perc: 100
  gps_integrated: false
  v_ego: 0

serve:
  addr: ":8642"
  webhook_url: ""
`

// Init creates the workspace directories, the driveralert.yaml configuration,
// and a starter scenario. It is safe to run on existing workspaces: files and
// directories that already exist are skipped and not overwritten.
func (wi *workspaceInitializer) Init(config InitConfig) (*InitResult, error) {
	result := &InitResult{}

	if config.Car == "" {
		config.Car = "hyundai"
	}
	if config.Period == "" {
		config.Period = storage.DefaultPeriod.String()
	}

	dirs := []string{
		config.BasePath,
		filepath.Join(config.BasePath, "scenarios"),
		filepath.Join(config.BasePath, "runs"),
	}
	for _, dir := range dirs {
		created, err := ensureWorkspaceDir(dir)
		if err != nil {
			return nil, fmt.Errorf("initializing workspace: creating directory %s: %w", dir, err)
		}
		if created {
			result.Created = append(result.Created, dir)
		} else {
			result.Skipped = append(result.Skipped, dir)
		}
	}

	configPath := filepath.Join(config.BasePath, ConfigFileName+".yaml")
	if err := writeWorkspaceFile(configPath, func() ([]byte, error) {
		return renderWorkspaceTemplate(ConfigFileName+".yaml", configTemplate, config)
	}, result); err != nil {
		return nil, err
	}

	store := storage.NewScenarioStore(filepath.Join(config.BasePath, "scenarios"))
	starter := storage.DefaultScenario()
	scenarioPath := store.Path(starter.Name)
	if _, err := os.Stat(scenarioPath); err == nil {
		result.Skipped = append(result.Skipped, scenarioPath)
	} else {
		if err := store.Save(starter); err != nil {
			return nil, fmt.Errorf("initializing workspace: writing starter scenario: %w", err)
		}
		result.Created = append(result.Created, scenarioPath)
	}

	return result, nil
}

// ensureWorkspaceDir creates a directory if it does not exist. Returns true
// if created.
func ensureWorkspaceDir(path string) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	}
	if err := os.MkdirAll(path, 0o750); err != nil {
		return false, err
	}
	return true, nil
}

// writeWorkspaceFile writes content from contentFn if the file does not
// exist. It records created/skipped in the result.
func writeWorkspaceFile(path string, contentFn func() ([]byte, error), result *InitResult) error {
	if _, err := os.Stat(path); err == nil {
		result.Skipped = append(result.Skipped, path)
		return nil
	}
	content, err := contentFn()
	if err != nil {
		return fmt.Errorf("initializing workspace: generating content for %s: %w", path, err)
	}
	if err := os.WriteFile(path, content, 0o600); err != nil {
		return fmt.Errorf("initializing workspace: writing %s: %w", path, err)
	}
	result.Created = append(result.Created, path)
	return nil
}

// renderWorkspaceTemplate renders a text/template with the given data.
func renderWorkspaceTemplate(name, content string, data any) ([]byte, error) {
	tmpl, err := template.New(name).Parse(content)
	if err != nil {
		return nil, fmt.Errorf("parsing template %s: %w", name, err)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("rendering template %s: %w", name, err)
	}
	return buf.Bytes(), nil
}
