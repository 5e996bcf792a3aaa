// Package toolrunner provides execution of external tools and commands.
//
// Overview:
//   - Responsibility: Execute spring, java, and arbitrary commands
//   - Key Types: Command runners, output buffers, error handlers
//   - Concurrency Model: Sequential command execution with context support
//   - Error Semantics: Structured errors with captured stderr
//   - Performance Notes: Fully buffered command output
//
// Usage:
//
//	runner := toolrunner.NewRunner(".")
//	result, err := runner.Spring(ctx, "init", "--build=maven", "demo")
package toolrunner

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/forgebyte/bootforge/internal/ui"
)

// Runner provides execution of external tools.
//
// Parameters:
//   - workDir: Working directory for commands
//   - verbose: Whether to show command output
//
// Returns:
//   - None (data structure)
//
// Concurrency:
//   - Safe for concurrent use
//
// Performance:
//   - Minimal state, efficient command execution
type Runner struct {
	workDir string
	verbose bool
}

// CommandResult represents the result of a command execution.
//
// Parameters:
//   - ExitCode: Process exit code
//   - Stdout: Standard output content
//   - Stderr: Standard error content
//   - Duration: Command execution time
//
// Returns:
//   - None (data structure)
//
// Concurrency:
//   - Immutable after creation
//
// Performance:
//   - Captures output in memory
type CommandResult struct {
	ExitCode int
	Stdout   string
	Stderr   string
	Duration time.Duration
}

// NewRunner creates a new tool runner.
//
// Parameters:
//   - workDir: Working directory for commands
//
// Returns:
//   - *Runner: Tool runner instance
//
// Concurrency:
//   - Safe for concurrent use
//
// Performance:
//   - Minimal initialization overhead
func NewRunner(workDir string) *Runner {
	return &Runner{
		workDir: workDir,
		verbose: false,
	}
}

// SetVerbose enables or disables verbose output.
//
// Parameters:
//   - enabled: Whether to show command output
//
// Returns:
//   - None
//
// Concurrency:
//   - Thread-safe
//
// Performance:
//   - O(1) operation
func (r *Runner) SetVerbose(enabled bool) {
	r.verbose = enabled
}

// GetVerbose returns the verbose setting.
func (r *Runner) GetVerbose() bool {
	return r.verbose
}

// execute runs a command and returns the result.
//
// The result is populated even when the command exits nonzero, so
// callers can inspect the exit code and buffered stderr.
//
// Parameters:
//   - ctx: Context for cancellation
//   - name: Command name or path
//   - args: Command arguments
//
// Returns:
//   - *CommandResult: Command execution result
//   - error: Execution error if any
//
// Concurrency:
//   - Single-threaded per command
//
// Performance:
//   - Fully buffered output capture
func (r *Runner) execute(ctx context.Context, name string, args ...string) (*CommandResult, error) {
	start := time.Now()

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = r.workDir

	if r.verbose {
		ui.Debug("Running: %s %s", name, strings.Join(args, " "))
	}

	// Capture output
	var stdout, stderr strings.Builder
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	duration := time.Since(start)

	result := &CommandResult{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		Duration: duration,
	}
	if cmd.ProcessState != nil {
		result.ExitCode = cmd.ProcessState.ExitCode()
	}

	if err != nil {
		if _, ok := err.(*exec.ExitError); ok {
			// Process ran and exited nonzero; the result carries the details.
			return result, nil
		}
		return result, fmt.Errorf("command failed: %w", err)
	}

	return result, nil
}

// Spring runs Spring Boot CLI commands.
//
// Parameters:
//   - ctx: Context for cancellation
//   - args: Spring command arguments
//
// Returns:
//   - *CommandResult: Command execution result
//   - error: Execution error if any
//
// Concurrency:
//   - Single-threaded per command
//
// Performance:
//   - Fully buffered output capture
func (r *Runner) Spring(ctx context.Context, args ...string) (*CommandResult, error) {
	return r.execute(ctx, "spring", args...)
}

// Exec runs arbitrary commands.
//
// Parameters:
//   - ctx: Context for cancellation
//   - name: Command name or path
//   - args: Command arguments
//
// Returns:
//   - *CommandResult: Command execution result
//   - error: Execution error if any
//
// Concurrency:
//   - Single-threaded per command
//
// Performance:
//   - Fully buffered output capture
func (r *Runner) Exec(ctx context.Context, name string, args ...string) (*CommandResult, error) {
	return r.execute(ctx, name, args...)
}

// CheckToolAvailability checks if a tool is available in PATH.
//
// Parameters:
//   - toolName: Name of the tool to check
//
// Returns:
//   - bool: True if tool is available
//   - error: Error if tool is not found
//
// Concurrency:
//   - Single-threaded
//
// Performance:
//   - Fast PATH lookup
func CheckToolAvailability(toolName string) (bool, error) {
	_, err := exec.LookPath(toolName)
	if err != nil {
		return false, fmt.Errorf("tool not found in PATH: %s", toolName)
	}
	return true, nil
}

// GetSpringVersion returns the Spring Boot CLI version.
//
// Parameters:
//   - ctx: Context for cancellation
//
// Returns:
//   - string: Spring Boot CLI version
//   - error: Execution error if any
//
// Concurrency:
//   - Single-threaded per command
//
// Performance:
//   - Fast version check
func GetSpringVersion(ctx context.Context) (string, error) {
	result, err := exec.CommandContext(ctx, "spring", "--version").Output()
	if err != nil {
		return "", fmt.Errorf("failed to get spring version: %w", err)
	}

	return strings.TrimSpace(string(result)), nil
}

// GetJavaVersion returns the Java runtime version.
//
// Parameters:
//   - ctx: Context for cancellation
//
// Returns:
//   - string: Java version banner
//   - error: Execution error if any
//
// Concurrency:
//   - Single-threaded per command
//
// Performance:
//   - Fast version check
func GetJavaVersion(ctx context.Context) (string, error) {
	// java prints the version banner on stderr
	result, err := exec.CommandContext(ctx, "java", "-version").CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("failed to get java version: %w", err)
	}

	return strings.TrimSpace(string(result)), nil
}
