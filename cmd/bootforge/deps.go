package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/forgebyte/bootforge/internal/initializr"
	"github.com/forgebyte/bootforge/internal/ui"
)

// depsCmd represents the deps command.
var depsCmd = &cobra.Command{
	Use:   "deps",
	Short: "List the dependency catalog",
	Long: `List the selectable dependencies offered by the metadata service.

Entries are grouped by category and shown with their id, display name,
and description. The same catalog backs the dependency selection of
'bootforge new'.

Example:
  bootforge deps`,
	RunE: runDeps,
}

func init() {
	rootCmd.AddCommand(depsCmd)
}

// runDeps executes the deps command.
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
//   - One metadata fetch (cached within the TTL)
func runDeps(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	conf, err := loadConfig()
	if err != nil {
		return err
	}

	svc := initializr.NewService(conf.MetadataURL, conf.CacheTTL, conf.FetchTimeout)

	ui.Debug("Fetching generator metadata from %s", conf.MetadataURL)
	meta, err := svc.Metadata(ctx)
	if err != nil {
		return err
	}

	for _, group := range meta.Groups() {
		ui.Plain("%s", group.Name)
		for _, dep := range group.Values {
			if dep.Description != "" {
				ui.Plain("  %-24s %s - %s", dep.ID, dep.Name, dep.Description)
			} else {
				ui.Plain("  %-24s %s", dep.ID, dep.Name)
			}
		}
		ui.Plain("")
	}

	return nil
}
