package configschema

// Diagnostic represents a validation issue.
type Diagnostic struct {
	Severity   DiagnosticSeverity `json:"severity"`
	Message    string             `json:"message"`
	Path       string             `json:"path,omitempty"`
	Suggestion string             `json:"suggestion,omitempty"`
}

// DiagnosticSeverity represents the severity of a diagnostic.
type DiagnosticSeverity string

const (
	SeverityError   DiagnosticSeverity = "error"
	SeverityWarning DiagnosticSeverity = "warning"
	SeverityInfo    DiagnosticSeverity = "info"
)

// Diagnostics represents a collection of validation issues.
type Diagnostics struct {
	items []Diagnostic
}

// NewDiagnostics creates a new diagnostics collection.
func NewDiagnostics() *Diagnostics {
	return &Diagnostics{
		items: make([]Diagnostic, 0),
	}
}

// Add adds a diagnostic to the collection.
//
// Parameters:
//   - severity: Diagnostic severity level
//   - message: Human-readable message
//   - path: Optional configuration path
//   - suggestion: Optional fix suggestion
//
// Returns:
//   - None
//
// Concurrency:
//   - Not safe for concurrent use
//
// Performance:
//   - O(1) append operation
func (d *Diagnostics) Add(severity DiagnosticSeverity, message, path, suggestion string) {
	d.items = append(d.items, Diagnostic{
		Severity:   severity,
		Message:    message,
		Path:       path,
		Suggestion: suggestion,
	})
}

// AddError adds an error diagnostic.
func (d *Diagnostics) AddError(message, path, suggestion string) {
	d.Add(SeverityError, message, path, suggestion)
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(message, path, suggestion string) {
	d.Add(SeverityWarning, message, path, suggestion)
}

// AddInfo adds an info diagnostic.
func (d *Diagnostics) AddInfo(message, path, suggestion string) {
	d.Add(SeverityInfo, message, path, suggestion)
}

// HasErrors returns true if there are any error-level diagnostics.
func (d *Diagnostics) HasErrors() bool {
	for _, item := range d.items {
		if item.Severity == SeverityError {
			return true
		}
	}
	return false
}

// HasWarnings returns true if there are any warning-level diagnostics.
func (d *Diagnostics) HasWarnings() bool {
	for _, item := range d.items {
		if item.Severity == SeverityWarning {
			return true
		}
	}
	return false
}

// Items returns all diagnostics.
func (d *Diagnostics) Items() []Diagnostic {
	result := make([]Diagnostic, len(d.items))
	copy(result, d.items)
	return result
}
