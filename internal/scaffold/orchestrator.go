package scaffold

import (
	"context"
	"fmt"

	"github.com/forgebyte/bootforge/internal/initializr"
	"github.com/forgebyte/bootforge/internal/ui"
)

// State is the orchestrator's position in the scaffolding flow.
type State string

const (
	StateIdle       State = "idle"
	StateFetching   State = "fetching-metadata"
	StateCollecting State = "collecting-parameters"
	StateGenerating State = "generating"
	StateDone       State = "done"
	StateError      State = "error"
)

// MetadataSource supplies the generator metadata document.
// *initializr.Service satisfies this interface.
type MetadataSource interface {
	Metadata(ctx context.Context) (*initializr.Metadata, error)
}

// Collector obtains the final project configuration from the user.
// Implementations return ErrCancelled when the user aborts; no partial
// config is passed downstream in that case.
type Collector interface {
	Collect(ctx context.Context, defaults Defaults, meta *initializr.Metadata) (*ProjectConfig, error)
}

// Workspace is the external collaborator that presents the generated
// project. It receives exactly one open request per successful run.
type Workspace interface {
	OpenProject(name, language string) error
}

// Orchestrator drives one scaffolding invocation through the states
// Idle, FetchingMetadata, CollectingParameters, Generating, and Done,
// with Error reachable from any of the first three. Done and Error are
// terminal; a new invocation starts from a fresh orchestrator.
type Orchestrator struct {
	metadata  MetadataSource
	defaults  Defaults
	collector Collector
	generator *Generator
	workspace Workspace

	state  State
	config *ProjectConfig
}

// NewOrchestrator assembles an orchestrator in the Idle state.
//
// Parameters:
//   - metadata: Generator metadata source
//   - defaults: Field defaults for parameter collection
//   - collector: Parameter collection strategy
//   - generator: External generator wrapper
//   - workspace: Post-generation collaborator
//
// Returns:
//   - *Orchestrator: Orchestrator instance
//
// Concurrency:
//   - One in-flight run per instance
//
// Performance:
//   - Minimal initialization overhead
func NewOrchestrator(metadata MetadataSource, defaults Defaults, collector Collector, generator *Generator, workspace Workspace) *Orchestrator {
	return &Orchestrator{
		metadata:  metadata,
		defaults:  defaults,
		collector: collector,
		generator: generator,
		workspace: workspace,
		state:     StateIdle,
	}
}

// State returns the current orchestrator state.
func (o *Orchestrator) State() State {
	return o.state
}

// Config returns the collected project configuration, nil before
// collection completed.
func (o *Orchestrator) Config() *ProjectConfig {
	return o.config
}

// Run executes the scaffolding flow once.
//
// Every failure is terminal for the invocation: the orchestrator moves
// to StateError and returns without retrying. A cancelled collection
// returns ErrCancelled with no side effects. On success the workspace
// receives exactly one open request and the state ends at StateDone.
//
// Parameters:
//   - ctx: Context for cancellation
//
// Returns:
//   - error: First failure in the flow, nil on success
//
// Concurrency:
//   - Single-threaded; an orchestrator must not be reused
//
// Performance:
//   - Dominated by the network fetch and the generator subprocess
func (o *Orchestrator) Run(ctx context.Context) error {
	if o.state != StateIdle {
		return fmt.Errorf("orchestrator already ran (state %s)", o.state)
	}

	o.state = StateFetching
	meta, err := o.metadata.Metadata(ctx)
	if err != nil {
		o.state = StateError
		return err
	}

	o.state = StateCollecting
	cfg, err := o.collector.Collect(ctx, o.defaults, meta)
	if err != nil {
		o.state = StateError
		return err
	}
	o.config = cfg

	o.state = StateGenerating
	if err := o.generator.Generate(ctx, cfg); err != nil {
		o.state = StateError
		return err
	}

	// The collaborator's own failures are not this flow's concern; the
	// project was generated either way.
	if err := o.workspace.OpenProject(cfg.Name, cfg.Language); err != nil {
		ui.Warning("Failed to open project workspace: %v", err)
	}

	o.state = StateDone
	return nil
}
