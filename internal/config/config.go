// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides loading and management of the pyrig setup
// configuration.
//
// The configuration is a flat record persisted as setup-config.json in the
// project directory. A setup-config.toml is honored as a read-only
// alternative when present. Missing files are created with defaults; missing
// fields are backfilled from defaults on load.
//
// Resolution order:
//   - <project dir>/setup-config.json
//   - <project dir>/setup-config.toml
//   - Built-in defaults (written back as setup-config.json)
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/jeranaias/pyrig/internal/util"
)

// =============================================================================
// CONFIG STRUCTURE
// =============================================================================

// Config is the pyrig setup configuration. All fields are plain strings;
// path fields are interpreted relative to the project directory.
type Config struct {
	// ProjectName is a display name used in diagnostics only.
	ProjectName string `json:"project_name" toml:"project_name"`
	// MainFile is the entry script launched inside the environment.
	MainFile string `json:"main_file" toml:"main_file"`
	// RequirementsFile is the pip requirements file, one specifier per line.
	RequirementsFile string `json:"requirements_file" toml:"requirements_file"`
	// VenvDir is the virtual environment directory.
	VenvDir string `json:"venv_dir" toml:"venv_dir"`
	// PythonVersion is the desired interpreter version, matched literally
	// against `python --version` output (e.g. "3.12").
	PythonVersion string `json:"python_version" toml:"python_version"`
}

// =============================================================================
// DEFAULTS
// =============================================================================

// Default returns a Config with the documented default values.
func Default() *Config {
	return &Config{
		ProjectName:      "UnnamedProject",
		MainFile:         "main.py",
		RequirementsFile: "requirements.txt",
		VenvDir:          "venv",
		PythonVersion:    "3.12",
	}
}

// FileJSON is the canonical configuration file name.
const FileJSON = "setup-config.json"

// FileTOML is the alternative, read-only configuration file name.
const FileTOML = "setup-config.toml"

// PathJSON returns the path of the JSON config file inside dir.
func PathJSON(dir string) string {
	return filepath.Join(dir, FileJSON)
}

// PathTOML returns the path of the TOML config file inside dir.
func PathTOML(dir string) string {
	return filepath.Join(dir, FileTOML)
}

// =============================================================================
// LOAD FUNCTIONS
// =============================================================================

// Load loads the setup configuration from the project directory.
//
// If neither setup-config.json nor setup-config.toml exists, the defaults
// are written to setup-config.json first and then loaded, matching first-run
// behavior. An unwritable or unreadable project directory is a fatal
// configuration error.
func Load(dir string) (*Config, error) {
	jsonPath := PathJSON(dir)
	if _, err := os.Stat(jsonPath); err == nil {
		return LoadFromPath(jsonPath)
	}

	tomlPath := PathTOML(dir)
	if _, err := os.Stat(tomlPath); err == nil {
		return LoadFromPath(tomlPath)
	}

	fmt.Printf("Missing %s file. Creating default one...\n", FileJSON)
	if err := Save(Default(), jsonPath); err != nil {
		return nil, fmt.Errorf("failed to create default config: %w", err)
	}
	fmt.Printf("Created default %s.\n", FileJSON)

	return LoadFromPath(jsonPath)
}

// LoadFromPath loads the configuration from a specific file. The decoder
// is chosen by file extension: .toml is decoded as TOML, anything else as
// JSON. Missing fields are backfilled, environment overrides applied, and
// the result validated.
func LoadFromPath(path string) (*Config, error) {
	cfg := &Config{}

	if strings.HasSuffix(path, ".toml") {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to decode TOML config %s: %w", path, err)
		}
	} else {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to decode JSON config %s: %w", path, err)
		}
	}

	cfg.fillDefaults()
	cfg.ApplyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// fillDefaults backfills empty fields with the documented defaults.
func (c *Config) fillDefaults() {
	defaults := Default()

	if c.ProjectName == "" {
		c.ProjectName = defaults.ProjectName
	}
	if c.MainFile == "" {
		c.MainFile = defaults.MainFile
	}
	if c.RequirementsFile == "" {
		c.RequirementsFile = defaults.RequirementsFile
	}
	if c.VenvDir == "" {
		c.VenvDir = defaults.VenvDir
	}
	if c.PythonVersion == "" {
		c.PythonVersion = defaults.PythonVersion
	}
}

// =============================================================================
// SAVE
// =============================================================================

// Save writes the configuration to path as indented JSON. The write is
// atomic (temp file + fsync + rename) so a crash never leaves a torn
// config behind.
func Save(cfg *Config, path string) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	data = append(data, '\n')

	if err := util.AtomicWriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// =============================================================================
// VALIDATION
// =============================================================================

// ValidationError describes a single invalid configuration field.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateErrors is a collection of validation errors.
type ValidateErrors []ValidationError

func (e ValidateErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}
	var msgs []string
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}

var versionPattern = regexp.MustCompile(`^\d+(\.\d+)*$`)

// Validate checks the configuration and returns any field errors. Fields
// are checked after defaults backfill, so empty values indicate explicit
// blanking in the config file.
func (c *Config) Validate() error {
	var errs ValidateErrors

	for field, value := range map[string]string{
		"project_name":      c.ProjectName,
		"main_file":         c.MainFile,
		"requirements_file": c.RequirementsFile,
		"venv_dir":          c.VenvDir,
		"python_version":    c.PythonVersion,
	} {
		if strings.TrimSpace(value) == "" {
			errs = append(errs, ValidationError{
				Field:   field,
				Message: "must not be empty",
			})
		}
	}

	if c.PythonVersion != "" && !versionPattern.MatchString(c.PythonVersion) {
		errs = append(errs, ValidationError{
			Field:   "python_version",
			Message: fmt.Sprintf("must be a dotted numeric version, got %q", c.PythonVersion),
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// =============================================================================
// ENVIRONMENT OVERRIDES
// =============================================================================

// ApplyEnvOverrides applies environment variable overrides to the config.
//
// Supported environment variables:
//   - PYRIG_PROJECT_NAME: overrides project_name
//   - PYRIG_MAIN_FILE: overrides main_file
//   - PYRIG_REQUIREMENTS_FILE: overrides requirements_file
//   - PYRIG_VENV_DIR: overrides venv_dir
//   - PYRIG_PYTHON_VERSION: overrides python_version
func (c *Config) ApplyEnvOverrides() {
	if name := os.Getenv("PYRIG_PROJECT_NAME"); name != "" {
		c.ProjectName = name
	}
	if main := os.Getenv("PYRIG_MAIN_FILE"); main != "" {
		c.MainFile = main
	}
	if reqs := os.Getenv("PYRIG_REQUIREMENTS_FILE"); reqs != "" {
		c.RequirementsFile = reqs
	}
	if venv := os.Getenv("PYRIG_VENV_DIR"); venv != "" {
		c.VenvDir = venv
	}
	if version := os.Getenv("PYRIG_PYTHON_VERSION"); version != "" {
		c.PythonVersion = version
	}
}

// String returns an indented JSON rendering of the config for diagnostics.
func (c *Config) String() string {
	data, _ := json.MarshalIndent(c, "", "  ")
	return string(data)
}
