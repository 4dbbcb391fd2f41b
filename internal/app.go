// Package internal provides the App struct that wires the driveralert
// services together and initializes the CLI layer.
package internal

import (
	"os"
	"path/filepath"

	"github.com/agegold/driveralert/internal/catalog"
	"github.com/agegold/driveralert/internal/cli"
	"github.com/agegold/driveralert/internal/core"
	"github.com/agegold/driveralert/internal/events"
	"github.com/agegold/driveralert/internal/storage"
	"github.com/agegold/driveralert/pkg/models"
)

// App holds the service dependencies of the driveralert commands.
type App struct {
	BasePath string

	// Configuration
	ConfigMgr core.ConfigManager
	Cfg       *models.Config

	// Engine and storage
	Registry  events.Registry
	Scenarios storage.ScenarioStore
	Workspace core.WorkspaceInitializer
}

// NewApp creates and wires all driveralert services. basePath is the
// workspace root, typically the directory containing driveralert.yaml.
func NewApp(basePath string) (*App, error) {
	app := &App{BasePath: basePath}

	// --- Configuration ---
	app.ConfigMgr = core.NewConfigManager(basePath)
	cfg, err := app.ConfigMgr.Load()
	if err != nil {
		return nil, err
	}
	app.Cfg = cfg

	// --- Engine and storage ---
	app.Registry = catalog.Registry()

	scenarioDir := cfg.ScenarioDir
	if !filepath.IsAbs(scenarioDir) {
		scenarioDir = filepath.Join(basePath, scenarioDir)
	}
	app.Scenarios = storage.NewScenarioStore(scenarioDir)

	app.Workspace = core.NewWorkspaceInitializer()

	// --- Wire CLI package-level variables ---
	cli.BasePath = basePath
	cli.Cfg = app.Cfg
	cli.ConfigMgr = app.ConfigMgr
	cli.Registry = app.Registry
	cli.Scenarios = app.Scenarios
	cli.WorkspaceInit = app.Workspace

	return app, nil
}

// ResolveBasePath determines the workspace root. It checks the
// DRIVERALERT_HOME env var, then walks up from the current directory looking
// for driveralert.yaml, falling back to the current directory.
func ResolveBasePath() string {
	if home := os.Getenv("DRIVERALERT_HOME"); home != "" {
		return home
	}
	dir, err := os.Getwd()
	if err != nil {
		return "."
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, core.ConfigFileName+".yaml")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	cwd, _ := os.Getwd()
	return cwd
}
