// Package collect implements parameter collection for project scaffolding.
//
// Overview:
//   - Responsibility: Obtain final values for every configurable field
//   - Key Types: Interactive prompt chain, Form single-submission strategy
//   - Concurrency Model: Single-threaded, blocks on user input
//   - Error Semantics: Cancellation surfaces as scaffold.ErrCancelled
//   - Performance Notes: Bounded by user typing speed
//
// Usage:
//
//	cfg, err := collect.Interactive{}.Collect(ctx, defaults, meta)
package collect

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/forgebyte/bootforge/internal/initializr"
	"github.com/forgebyte/bootforge/internal/scaffold"
	"github.com/forgebyte/bootforge/internal/ui"
)

// Interactive collects parameters through a sequential prompt chain:
// one question at a time, each pre-filled with a default, a blank
// answer selecting the default. Cancelling any prompt aborts the whole
// chain; no partial config escapes.
type Interactive struct{}

// Collect runs the prompt chain and returns the completed config.
//
// Parameters:
//   - ctx: Context (unused; prompts block on stdin)
//   - defaults: Default values for every field
//   - meta: Metadata document for the dependency catalog, may be nil
//
// Returns:
//   - *scaffold.ProjectConfig: Completed configuration
//   - error: scaffold.ErrCancelled when the user aborts
//
// Concurrency:
//   - Single-threaded (blocks on user input)
//
// Performance:
//   - Bounded by user interaction
func (Interactive) Collect(ctx context.Context, defaults scaffold.Defaults, meta *initializr.Metadata) (*scaffold.ProjectConfig, error) {
	cfg := &scaffold.ProjectConfig{}

	var err error
	if cfg.Name, err = prompt("Project name", defaults.ArtifactID); err != nil {
		return nil, err
	}
	if cfg.GroupID, err = prompt("Group id", defaults.GroupID); err != nil {
		return nil, err
	}
	if cfg.ArtifactID, err = prompt("Artifact id", defaults.ArtifactID); err != nil {
		return nil, err
	}
	if cfg.PackageName, err = prompt("Package name", cfg.GroupID+"."+cfg.ArtifactID); err != nil {
		return nil, err
	}
	if cfg.BuildType, err = prompt("Build type (maven/gradle)", defaults.BuildType); err != nil {
		return nil, err
	}
	if cfg.Language, err = prompt("Language", defaults.Language); err != nil {
		return nil, err
	}
	if cfg.JavaVersion, err = prompt("Java version", defaults.JavaVersion); err != nil {
		return nil, err
	}
	if cfg.BootVersion, err = prompt("Spring Boot version", defaults.BootVersion); err != nil {
		return nil, err
	}
	if cfg.Packaging, err = prompt("Packaging", defaults.Packaging); err != nil {
		return nil, err
	}
	if cfg.Dependencies, err = selectDependencies(meta, defaults.Dependencies); err != nil {
		return nil, err
	}

	// Prompts already substitute defaults; this fills derived fields for
	// any answer that was blank after trimming.
	cfg.ApplyDefaults(defaults)
	return cfg, nil
}

// Form collects every field in a single submission. The CLI flag
// surface uses this strategy: all fields arrive at once and blanks
// fall back to defaults. There is no cancellation path.
type Form struct {
	Config scaffold.ProjectConfig
}

// Collect returns the submitted config with defaults applied.
func (f Form) Collect(ctx context.Context, defaults scaffold.Defaults, meta *initializr.Metadata) (*scaffold.ProjectConfig, error) {
	cfg := f.Config
	cfg.ApplyDefaults(defaults)
	return &cfg, nil
}

// prompt wraps ui.Prompt, mapping exhausted input to cancellation.
func prompt(label, def string) (string, error) {
	answer, err := ui.Prompt(label, def)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return "", scaffold.ErrCancelled
		}
		return "", err
	}
	return answer, nil
}

// selectDependencies presents the grouped dependency catalog and lets
// the user toggle entries by id. An empty submission with nothing
// selected falls back to the default dependency list. Entering "q"
// cancels the whole collection.
//
// Ids are not validated against the catalog: toggling an unknown id
// simply adds it to the selection verbatim.
func selectDependencies(meta *initializr.Metadata, def string) (string, error) {
	if ui.IsNonInteractive() {
		return def, nil
	}

	printCatalog(meta)
	ui.Plain("")
	ui.Plain("Toggle dependencies by id (space separated), empty line to finish, q to cancel.")

	selected := make(map[string]bool)
	var order []string

	for {
		line, err := ui.ReadLine()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return "", scaffold.ErrCancelled
			}
			return "", err
		}

		if line == "" {
			break
		}
		if line == "q" {
			return "", scaffold.ErrCancelled
		}

		for _, id := range splitIDs(line) {
			if selected[id] {
				delete(selected, id)
				order = removeID(order, id)
				ui.Plain("  [ ] %s", id)
			} else {
				selected[id] = true
				order = append(order, id)
				ui.Plain("  [x] %s", id)
			}
		}
	}

	if len(order) == 0 {
		return def, nil
	}
	return strings.Join(order, ","), nil
}

// printCatalog renders the grouped dependency catalog.
func printCatalog(meta *initializr.Metadata) {
	for _, group := range meta.Groups() {
		ui.Plain("%s", group.Name)
		for _, dep := range group.Values {
			if dep.Description != "" {
				ui.Plain("  %-24s %s - %s", dep.ID, dep.Name, dep.Description)
			} else {
				ui.Plain("  %-24s %s", dep.ID, dep.Name)
			}
		}
	}
}

// splitIDs splits a toggle line on spaces and commas.
func splitIDs(line string) []string {
	return strings.FieldsFunc(line, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t'
	})
}

// removeID removes the first occurrence of id, preserving order.
func removeID(ids []string, id string) []string {
	for i, v := range ids {
		if v == id {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return ids
}
