// Package scaffold implements the project scaffolding orchestration.
//
// Overview:
//   - Responsibility: Project configuration, generator invocation, flow control
//   - Key Types: Defaults, ProjectConfig, Generator, Orchestrator
//   - Concurrency Model: One sequential flow per invocation
//   - Error Semantics: Typed errors per failure class, none retried
//   - Performance Notes: Pure string assembly plus one subprocess
//
// Usage:
//
//	cfg := &scaffold.ProjectConfig{GroupID: "com.example", ArtifactID: "demo"}
//	cfg.ApplyDefaults(scaffold.FixedDefaults())
package scaffold

import "strings"

// Defaults holds the default value for every configurable field.
//
// The struct is constructed once at startup (optionally merged with
// user configuration) and passed by value into the orchestrator. It is
// never mutated afterwards.
type Defaults struct {
	BuildType    string
	Language     string
	JavaVersion  string
	BootVersion  string
	Packaging    string
	Dependencies string
	GroupID      string
	ArtifactID   string
}

// FixedDefaults returns the built-in defaults used when no user
// configuration overrides them.
func FixedDefaults() Defaults {
	return Defaults{
		BuildType:    "maven",
		Language:     "java",
		JavaVersion:  "17",
		BootVersion:  "3.3.5",
		Packaging:    "jar",
		Dependencies: "devtools,web,data-jpa,h2,thymeleaf",
		GroupID:      "com.example",
		ArtifactID:   "demo",
	}
}

// ProjectConfig is the complete configuration for one generated project.
//
// Every field is non-empty by the time generation runs: blank fields
// are replaced by their defaults in ApplyDefaults. The config is
// treated as immutable once handed to the Generator.
type ProjectConfig struct {
	BuildType    string
	Language     string
	JavaVersion  string
	BootVersion  string
	Packaging    string
	Dependencies string
	GroupID      string
	ArtifactID   string
	PackageName  string
	Name         string
}

// ApplyDefaults replaces every blank field with its default value.
//
// The package name defaults to "<group_id>.<artifact_id>" and the
// project name defaults to the artifact id, both computed after the
// group and artifact fields themselves have been defaulted.
//
// Parameters:
//   - d: Defaults to substitute for blank fields
//
// Returns:
//   - None (mutates the receiver)
//
// Concurrency:
//   - Not safe for concurrent use
//
// Performance:
//   - O(1) field checks
func (c *ProjectConfig) ApplyDefaults(d Defaults) {
	c.BuildType = orDefault(c.BuildType, d.BuildType)
	c.Language = orDefault(c.Language, d.Language)
	c.JavaVersion = orDefault(c.JavaVersion, d.JavaVersion)
	c.BootVersion = orDefault(c.BootVersion, d.BootVersion)
	c.Packaging = orDefault(c.Packaging, d.Packaging)
	c.Dependencies = orDefault(c.Dependencies, d.Dependencies)
	c.GroupID = orDefault(c.GroupID, d.GroupID)
	c.ArtifactID = orDefault(c.ArtifactID, d.ArtifactID)
	c.PackageName = orDefault(c.PackageName, c.GroupID+"."+c.ArtifactID)
	c.Name = orDefault(c.Name, c.ArtifactID)
}

// orDefault returns value unless it is blank, in which case def is used.
// Non-blank values are used verbatim; no identifier syntax is enforced.
func orDefault(value, def string) string {
	if strings.TrimSpace(value) == "" {
		return def
	}
	return value
}
