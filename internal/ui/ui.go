// Package ui provides unified output formatting for the bootforge CLI.
//
// Overview:
//   - Responsibility: Standardized logging, prompting, and user interaction
//   - Key Types: Output formatters, line prompts
//   - Concurrency Model: Thread-safe output operations
//   - Error Semantics: User-friendly error messages with suggestions
//   - Performance Notes: Buffered output, minimal allocations
//
// Usage:
//
//	ui.Info("Fetching metadata from %s", url)
//	ui.Error("Failed to create project: %v", err)
package ui

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"
)

var (
	verbose        bool
	nonInteractive bool
	jsonOutput     bool
	input          *bufio.Reader = bufio.NewReader(os.Stdin)
	mu             sync.RWMutex
)

// OutputLevel represents the severity level of a message.
type OutputLevel string

const (
	LevelDebug   OutputLevel = "debug"
	LevelInfo    OutputLevel = "info"
	LevelWarning OutputLevel = "warning"
	LevelError   OutputLevel = "error"
	LevelSuccess OutputLevel = "success"
)

// Message represents a structured output message.
type Message struct {
	Level     OutputLevel `json:"level"`
	Text      string      `json:"text"`
	Data      interface{} `json:"data,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}

// SetVerbose enables or disables verbose output.
//
// Parameters:
//   - enabled: Whether to show debug messages
//
// Returns:
//   - None
//
// Concurrency:
//   - Thread-safe
//
// Performance:
//   - O(1) operation
func SetVerbose(enabled bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = enabled
}

// SetNonInteractive disables interactive prompts.
//
// Parameters:
//   - enabled: Whether to disable interactive prompts
//
// Returns:
//   - None
//
// Concurrency:
//   - Thread-safe
//
// Performance:
//   - O(1) operation
func SetNonInteractive(enabled bool) {
	mu.Lock()
	defer mu.Unlock()
	nonInteractive = enabled
}

// SetJSONOutput enables JSON-formatted output.
//
// Parameters:
//   - enabled: Whether to output in JSON format
//
// Returns:
//   - None
//
// Concurrency:
//   - Thread-safe
//
// Performance:
//   - O(1) operation
func SetJSONOutput(enabled bool) {
	mu.Lock()
	defer mu.Unlock()
	jsonOutput = enabled
}

// SetInput replaces the prompt input source.
// Tests use this to feed scripted answers to prompt chains.
//
// Parameters:
//   - r: Reader to read prompt answers from
//
// Returns:
//   - None
//
// Concurrency:
//   - Thread-safe
//
// Performance:
//   - O(1) operation
func SetInput(r io.Reader) {
	mu.Lock()
	defer mu.Unlock()
	input = bufio.NewReader(r)
}

// IsNonInteractive reports whether interactive prompts are disabled.
func IsNonInteractive() bool {
	mu.RLock()
	defer mu.RUnlock()
	return nonInteractive
}

// output writes a message to the appropriate output stream.
//
// Parameters:
//   - level: Message severity level
//   - format: Printf-style format string
//   - args: Format arguments
//
// Returns:
//   - None
//
// Concurrency:
//   - Thread-safe
//
// Performance:
//   - Buffered output, minimal allocations
func output(level OutputLevel, format string, args ...interface{}) {
	mu.RLock()
	useJSON := jsonOutput
	useVerbose := verbose
	mu.RUnlock()

	// Skip debug messages if not verbose
	if level == LevelDebug && !useVerbose {
		return
	}

	text := fmt.Sprintf(format, args...)
	message := Message{
		Level:     level,
		Text:      text,
		Timestamp: time.Now(),
	}

	if useJSON {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(message); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to encode JSON output: %v\n", err)
		}
		return
	}

	// Choose output stream based on level
	var writer io.Writer = os.Stdout
	if level == LevelError {
		writer = os.Stderr
	}

	// Format with color and prefix
	var prefix string
	switch level {
	case LevelDebug:
		prefix = "🔍 DEBUG:"
	case LevelInfo:
		prefix = "ℹ️  INFO:"
	case LevelWarning:
		prefix = "⚠️  WARN:"
	case LevelError:
		prefix = "❌ ERROR:"
	case LevelSuccess:
		prefix = "✅ SUCCESS:"
	}

	fmt.Fprintf(writer, "%s %s\n", prefix, text)
}

// Debug outputs a debug message.
// Only shown when verbose mode is enabled.
func Debug(format string, args ...interface{}) {
	output(LevelDebug, format, args...)
}

// Info outputs an informational message.
func Info(format string, args ...interface{}) {
	output(LevelInfo, format, args...)
}

// Warning outputs a warning message.
func Warning(format string, args ...interface{}) {
	output(LevelWarning, format, args...)
}

// Error outputs an error message.
// Always shown, goes to stderr.
func Error(format string, args ...interface{}) {
	output(LevelError, format, args...)
}

// Success outputs a success message.
func Success(format string, args ...interface{}) {
	output(LevelSuccess, format, args...)
}

// Plain outputs text with no level prefix.
// Used for listings such as the dependency catalog and file trees.
func Plain(format string, args ...interface{}) {
	mu.RLock()
	useJSON := jsonOutput
	mu.RUnlock()

	if useJSON {
		Info(format, args...)
		return
	}

	fmt.Printf(format+"\n", args...)
}

// Step outputs a step indicator with message.
//
// Parameters:
//   - step: Step number
//   - total: Total number of steps
//   - format: Printf-style format string
//   - args: Format arguments
//
// Returns:
//   - None
//
// Concurrency:
//   - Thread-safe
//
// Performance:
//   - Minimal formatting overhead
func Step(step, total int, format string, args ...interface{}) {
	mu.RLock()
	useJSON := jsonOutput
	mu.RUnlock()

	if useJSON {
		Info(format, args...)
		return
	}

	text := fmt.Sprintf(format, args...)
	fmt.Printf("  [%d/%d] %s\n", step, total, text)
}

// Confirm prompts the user for confirmation.
//
// Parameters:
//   - format: Printf-style format string
//   - args: Format arguments
//
// Returns:
//   - bool: True if user confirmed, false otherwise
//
// Concurrency:
//   - Single-threaded (blocks on user input)
//
// Performance:
//   - Blocks until user responds
func Confirm(format string, args ...interface{}) bool {
	mu.RLock()
	nonInt := nonInteractive
	mu.RUnlock()

	if nonInt {
		return true // Auto-confirm in non-interactive mode
	}

	text := fmt.Sprintf(format, args...)
	fmt.Printf("❓ %s [y/N]: ", text)

	line, err := readLine()
	if err != nil {
		return false
	}
	return line == "y" || line == "Y" || line == "yes"
}

// Prompt asks a single question with a pre-filled default.
// A blank answer yields the default. io.EOF is returned when the input
// source is exhausted, which callers treat as cancellation.
//
// Parameters:
//   - label: Question shown to the user
//   - def: Default value used for blank answers
//
// Returns:
//   - string: The answer, or the default for blank input
//   - error: io.EOF when input is exhausted
//
// Concurrency:
//   - Single-threaded (blocks on user input)
//
// Performance:
//   - Blocks until user responds
func Prompt(label, def string) (string, error) {
	mu.RLock()
	nonInt := nonInteractive
	mu.RUnlock()

	if nonInt {
		return def, nil
	}

	fmt.Printf("❯ %s [%s]: ", label, def)

	line, err := readLine()
	if err != nil {
		return "", err
	}
	if line == "" {
		return def, nil
	}
	return line, nil
}

// ReadLine reads one trimmed line from the prompt input source.
//
// Parameters:
//   - None
//
// Returns:
//   - string: The line without surrounding whitespace
//   - error: io.EOF when input is exhausted
//
// Concurrency:
//   - Single-threaded (blocks on user input)
//
// Performance:
//   - Blocks until a full line is available
func ReadLine() (string, error) {
	return readLine()
}

func readLine() (string, error) {
	mu.RLock()
	r := input
	mu.RUnlock()

	line, err := r.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
