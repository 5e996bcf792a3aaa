// Package configschema provides configuration loading for bootforge.
//
// Overview:
//   - Responsibility: Parse the overrides file, validate, fill defaults
//   - Key Types: Config struct, diagnostics
//   - Concurrency Model: Immutable configuration after loading
//   - Error Semantics: Structured validation diagnostics with suggestions
//   - Performance Notes: Single-pass parsing
//
// Usage:
//
//	config, diags := configschema.Load(configschema.DefaultPath())
//	if diags.HasErrors() {
//	    return fmt.Errorf("invalid configuration")
//	}
package configschema

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/forgebyte/bootforge/internal/initializr"
	"github.com/forgebyte/bootforge/internal/scaffold"
)

// Config is the effective tool configuration: the built-in defaults
// with any recognized user overrides merged on top. It is immutable
// after loading.
type Config struct {
	MetadataURL  string
	Generator    string
	CacheTTL     time.Duration
	FetchTimeout time.Duration
	Defaults     scaffold.Defaults
}

// fileConfig is the YAML shape of the user overrides file. Durations
// are strings in time.ParseDuration format.
type fileConfig struct {
	MetadataURL  string `yaml:"metadata_url"`
	Generator    string `yaml:"generator"`
	CacheTTL     string `yaml:"cache_ttl"`
	FetchTimeout string `yaml:"fetch_timeout"`
	Defaults     struct {
		BuildType    string `yaml:"build_type"`
		Language     string `yaml:"language"`
		JavaVersion  string `yaml:"java_version"`
		BootVersion  string `yaml:"boot_version"`
		Packaging    string `yaml:"packaging"`
		Dependencies string `yaml:"dependencies"`
		GroupID      string `yaml:"group_id"`
		ArtifactID   string `yaml:"artifact_id"`
	} `yaml:"defaults"`
}

// recognizedKeys maps each accepted top-level key to its accepted
// child keys (nil for scalar keys).
var recognizedKeys = map[string]map[string]bool{
	"metadata_url":  nil,
	"generator":     nil,
	"cache_ttl":     nil,
	"fetch_timeout": nil,
	"defaults": {
		"build_type":   true,
		"language":     true,
		"java_version": true,
		"boot_version": true,
		"packaging":    true,
		"dependencies": true,
		"group_id":     true,
		"artifact_id":  true,
	},
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	return &Config{
		MetadataURL:  initializr.DefaultURL,
		Generator:    "spring",
		CacheTTL:     initializr.DefaultTTL,
		FetchTimeout: initializr.DefaultTimeout,
		Defaults:     scaffold.FixedDefaults(),
	}
}

// DefaultPath returns the default overrides file location.
func DefaultPath() string {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "bootforge", "bootforge.yaml")
}

// Load reads the overrides file and merges recognized options onto the
// built-in defaults.
//
// A missing file is not an error: the built-in defaults are returned
// with an info diagnostic. Unknown keys produce warnings; malformed
// YAML or durations produce errors.
//
// Parameters:
//   - path: Overrides file path, may be empty
//
// Returns:
//   - *Config: Effective configuration (defaults on error)
//   - *Diagnostics: Validation issues encountered while loading
//
// Concurrency:
//   - Single-threaded
//
// Performance:
//   - Single-pass parsing
func Load(path string) (*Config, *Diagnostics) {
	diags := NewDiagnostics()
	cfg := DefaultConfig()

	if path == "" {
		return cfg, diags
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			diags.AddInfo(fmt.Sprintf("no configuration file at %s, using built-in defaults", path), "", "")
			return cfg, diags
		}
		diags.AddError(fmt.Sprintf("failed to read configuration: %v", err), path, "")
		return cfg, diags
	}

	warnUnknownKeys(data, path, diags)

	var file fileConfig
	if err := yaml.Unmarshal(data, &file); err != nil {
		diags.AddError(fmt.Sprintf("failed to parse configuration: %v", err), path, "check the YAML syntax")
		return cfg, diags
	}

	merge(cfg, &file, path, diags)
	return cfg, diags
}

// merge overlays non-empty file values onto the config.
func merge(cfg *Config, file *fileConfig, path string, diags *Diagnostics) {
	if file.MetadataURL != "" {
		cfg.MetadataURL = file.MetadataURL
	}
	if file.Generator != "" {
		cfg.Generator = file.Generator
	}
	if file.CacheTTL != "" {
		if d, err := time.ParseDuration(file.CacheTTL); err != nil {
			diags.AddError(fmt.Sprintf("invalid cache_ttl %q: %v", file.CacheTTL, err), path, `use a duration such as "1h"`)
		} else {
			cfg.CacheTTL = d
		}
	}
	if file.FetchTimeout != "" {
		if d, err := time.ParseDuration(file.FetchTimeout); err != nil {
			diags.AddError(fmt.Sprintf("invalid fetch_timeout %q: %v", file.FetchTimeout, err), path, `use a duration such as "30s"`)
		} else {
			cfg.FetchTimeout = d
		}
	}

	d := &cfg.Defaults
	f := &file.Defaults
	if f.BuildType != "" {
		d.BuildType = f.BuildType
	}
	if f.Language != "" {
		d.Language = f.Language
	}
	if f.JavaVersion != "" {
		d.JavaVersion = f.JavaVersion
	}
	if f.BootVersion != "" {
		d.BootVersion = f.BootVersion
	}
	if f.Packaging != "" {
		d.Packaging = f.Packaging
	}
	if f.Dependencies != "" {
		d.Dependencies = f.Dependencies
	}
	if f.GroupID != "" {
		d.GroupID = f.GroupID
	}
	if f.ArtifactID != "" {
		d.ArtifactID = f.ArtifactID
	}
}

// warnUnknownKeys adds a warning for every key the schema does not
// recognize. Unknown keys are ignored by the merge.
func warnUnknownKeys(data []byte, path string, diags *Diagnostics) {
	var raw map[string]interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		// The structured unmarshal will report the syntax error.
		return
	}

	for key, value := range raw {
		children, ok := recognizedKeys[key]
		if !ok {
			diags.AddWarning(fmt.Sprintf("unrecognized option %q ignored", key), path, "")
			continue
		}
		if children == nil {
			continue
		}
		nested, ok := value.(map[string]interface{})
		if !ok {
			continue
		}
		for child := range nested {
			if !children[child] {
				diags.AddWarning(fmt.Sprintf("unrecognized option %q ignored", key+"."+child), path, "")
			}
		}
	}
}
