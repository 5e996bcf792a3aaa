package scaffold

import (
	"context"
	"fmt"
	"os/exec"

	"github.com/forgebyte/bootforge/internal/toolrunner"
	"github.com/forgebyte/bootforge/internal/ui"
)

// CommandRunner executes an external command and returns its buffered
// result. *toolrunner.Runner satisfies this interface.
type CommandRunner interface {
	Exec(ctx context.Context, name string, args ...string) (*toolrunner.CommandResult, error)
}

// Generator runs the external project generator.
//
// Parameters:
//   - runner: Command runner used to spawn the generator
//   - executable: Generator executable name or path
//
// Returns:
//   - None (data structure)
//
// Concurrency:
//   - One generation at a time
//
// Performance:
//   - One subprocess per generation, output fully buffered
type Generator struct {
	runner     CommandRunner
	executable string

	// lookPath is replaceable in tests.
	lookPath func(file string) (string, error)
}

// NewGenerator creates a generator around the given executable.
//
// Parameters:
//   - runner: Command runner used to spawn the generator
//   - executable: Generator executable, "spring" when empty
//
// Returns:
//   - *Generator: Generator instance
//
// Concurrency:
//   - Safe for concurrent use
//
// Performance:
//   - Minimal initialization overhead
func NewGenerator(runner CommandRunner, executable string) *Generator {
	if executable == "" {
		executable = "spring"
	}
	return &Generator{
		runner:     runner,
		executable: executable,
		lookPath:   exec.LookPath,
	}
}

// Generate runs the generator for the given config.
//
// The executable must be resolvable before anything is spawned; a
// missing executable aborts with GeneratorNotFoundError and zero
// subprocess invocations. A nonzero exit code yields GenerationError
// with the buffered stderr. Nothing is retried and no partial output
// is cleaned up.
//
// Parameters:
//   - ctx: Context for cancellation
//   - cfg: Completed project configuration
//
// Returns:
//   - error: Generation error if any
//
// Concurrency:
//   - Single-threaded per generation
//
// Performance:
//   - Bounded by the generator subprocess
func (g *Generator) Generate(ctx context.Context, cfg *ProjectConfig) error {
	if _, err := g.lookPath(g.executable); err != nil {
		return &GeneratorNotFoundError{Executable: g.executable}
	}

	ui.Info("Creating project...")

	result, err := g.runner.Exec(ctx, g.executable, cfg.Args()...)
	if err != nil {
		return fmt.Errorf("failed to run %s: %w", g.executable, err)
	}

	if result.ExitCode != 0 {
		return &GenerationError{ExitCode: result.ExitCode, Stderr: result.Stderr}
	}

	ui.Debug("Generator finished in %s", result.Duration)
	return nil
}
