// Package main provides the bootforge CLI command implementations.
//
// Overview:
//   - Responsibility: CLI command execution and orchestration
//   - Key Types: Command handlers, argument parsers, option processors
//   - Concurrency Model: Sequential command execution with context support
//   - Error Semantics: User-friendly error messages with suggestions
//   - Performance Notes: Fast command resolution, minimal initialization
//
// Usage:
//
//	bootforge new [flags]
package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/forgebyte/bootforge/internal/collect"
	"github.com/forgebyte/bootforge/internal/configschema"
	"github.com/forgebyte/bootforge/internal/initializr"
	"github.com/forgebyte/bootforge/internal/scaffold"
	"github.com/forgebyte/bootforge/internal/toolrunner"
	"github.com/forgebyte/bootforge/internal/ui"
	"github.com/forgebyte/bootforge/internal/workspace"
)

// newCmd represents the new command.
var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Create a new Spring Boot project",
	Long: `Create a new Spring Boot project using the Spring Boot CLI generator.

Project parameters are collected through an interactive prompt chain.
Passing any field flag (or --non-interactive) switches to form-style
collection: all fields are taken from flags at once and blanks fall
back to the configured defaults.

Example:
  bootforge new
  bootforge new --name shop --group-id com.acme
  bootforge new --non-interactive --dependencies web,security`,
	RunE: runNew,
}

var (
	newName         string
	newGroupID      string
	newArtifactID   string
	newPackageName  string
	newDependencies string
	newBuild        string
	newJavaVersion  string
	newBootVersion  string
	newPackaging    string
	newLanguage     string
)

// fieldFlags are the flags that switch collection to the form strategy.
var fieldFlags = []string{
	"name", "group-id", "artifact-id", "package-name", "dependencies",
	"build", "java-version", "boot-version", "packaging", "language",
}

func init() {
	rootCmd.AddCommand(newCmd)

	newCmd.Flags().StringVar(&newName, "name", "", "Project name (default: artifact id)")
	newCmd.Flags().StringVar(&newGroupID, "group-id", "", "Group id")
	newCmd.Flags().StringVar(&newArtifactID, "artifact-id", "", "Artifact id")
	newCmd.Flags().StringVar(&newPackageName, "package-name", "", "Package name (default: <group-id>.<artifact-id>)")
	newCmd.Flags().StringVar(&newDependencies, "dependencies", "", "Comma-separated dependency ids")
	newCmd.Flags().StringVar(&newBuild, "build", "", "Build type (maven or gradle)")
	newCmd.Flags().StringVar(&newJavaVersion, "java-version", "", "Java version")
	newCmd.Flags().StringVar(&newBootVersion, "boot-version", "", "Spring Boot version")
	newCmd.Flags().StringVar(&newPackaging, "packaging", "", "Packaging (jar or war)")
	newCmd.Flags().StringVar(&newLanguage, "language", "", "Project language")
}

// runNew executes the new command.
//
// Parameters:
//   - cmd: Cobra command
//   - args: Command arguments
//
// Returns:
//   - error: Execution error if any
//
// Concurrency:
//   - Single-threaded
//
// Performance:
//   - One metadata fetch plus one generator subprocess
func runNew(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	conf, err := loadConfig()
	if err != nil {
		return err
	}

	svc := initializr.NewService(conf.MetadataURL, conf.CacheTTL, conf.FetchTimeout)

	runner := toolrunner.NewRunner(".")
	runner.SetVerbose(verbose)
	generator := scaffold.NewGenerator(runner, conf.Generator)

	orch := scaffold.NewOrchestrator(svc, conf.Defaults, chooseCollector(cmd), generator, workspace.NewDir())

	ui.Info("Fetching generator metadata from %s", conf.MetadataURL)
	if err := orch.Run(ctx); err != nil {
		if errors.Is(err, scaffold.ErrCancelled) {
			ui.Info("Project creation cancelled")
			return nil
		}
		return err
	}

	ui.Success("Project '%s' created", orch.Config().Name)
	return nil
}

// chooseCollector selects the collection strategy: the form strategy
// when any field flag is set or prompts are disabled, otherwise the
// interactive prompt chain.
func chooseCollector(cmd *cobra.Command) scaffold.Collector {
	formMode := nonInteractive
	for _, name := range fieldFlags {
		if cmd.Flags().Changed(name) {
			formMode = true
			break
		}
	}

	if !formMode {
		return collect.Interactive{}
	}

	return collect.Form{Config: scaffold.ProjectConfig{
		Name:         newName,
		GroupID:      newGroupID,
		ArtifactID:   newArtifactID,
		PackageName:  newPackageName,
		Dependencies: newDependencies,
		BuildType:    newBuild,
		JavaVersion:  newJavaVersion,
		BootVersion:  newBootVersion,
		Packaging:    newPackaging,
		Language:     newLanguage,
	}}
}

// loadConfig loads the configuration file and reports its diagnostics.
func loadConfig() (*configschema.Config, error) {
	path := configPath
	if path == "" {
		path = configschema.DefaultPath()
	}

	conf, diags := configschema.Load(path)
	for _, diag := range diags.Items() {
		switch diag.Severity {
		case configschema.SeverityError:
			if diag.Suggestion != "" {
				ui.Error("%s (%s)", diag.Message, diag.Suggestion)
			} else {
				ui.Error("%s", diag.Message)
			}
		case configschema.SeverityWarning:
			ui.Warning("%s", diag.Message)
		default:
			ui.Debug("%s", diag.Message)
		}
	}
	if diags.HasErrors() {
		return nil, fmt.Errorf("invalid configuration in %s", path)
	}
	return conf, nil
}
