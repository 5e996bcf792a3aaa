package scaffold

import (
	"errors"
	"fmt"
)

// ErrCancelled indicates the user aborted a prompt or form. The
// invocation terminates with no side effects; all prior state,
// including the metadata cache, is left untouched.
var ErrCancelled = errors.New("cancelled by user")

// GeneratorNotFoundError indicates the generator executable is not
// resolvable on the system. No subprocess is spawned in that case.
type GeneratorNotFoundError struct {
	Executable string
}

func (e *GeneratorNotFoundError) Error() string {
	return fmt.Sprintf("%s not found; please install the Spring Boot CLI", e.Executable)
}

// GenerationError indicates the generator subprocess exited nonzero.
// The run is not retried and partially created directories are left
// for the user to inspect.
type GenerationError struct {
	ExitCode int
	Stderr   string
}

func (e *GenerationError) Error() string {
	if e.Stderr != "" {
		return fmt.Sprintf("project generation failed (exit code %d): %s", e.ExitCode, e.Stderr)
	}
	return fmt.Sprintf("project generation failed (exit code %d)", e.ExitCode)
}
