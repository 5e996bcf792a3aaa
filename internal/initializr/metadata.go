// Package initializr provides access to the Spring Initializr metadata service.
//
// Overview:
//   - Responsibility: Fetch, decode, and cache generator metadata
//   - Key Types: Metadata document, HTTP client, single-entry TTL cache
//   - Concurrency Model: Cache guarded by a mutex; client is stateless
//   - Error Semantics: Fetch and decode failures are distinct error types
//   - Performance Notes: One cached document, no network call while fresh
//
// Usage:
//
//	svc := initializr.NewService(initializr.DefaultURL, initializr.DefaultTTL, 30*time.Second)
//	meta, err := svc.Metadata(ctx)
package initializr

// Metadata is the generator metadata document returned by the service.
//
// The service returns a much larger document; only the dependency
// catalog substructure is consumed, everything else is ignored by the
// decoder.
type Metadata struct {
	Dependencies DependencyCatalog `json:"dependencies"`
}

// DependencyCatalog is the grouped list of selectable dependencies.
type DependencyCatalog struct {
	Values []DependencyGroup `json:"values"`
}

// DependencyGroup is a named category of dependencies.
type DependencyGroup struct {
	Name   string       `json:"name"`
	Values []Dependency `json:"values"`
}

// Dependency is a single selectable entry in the catalog.
type Dependency struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Groups returns the dependency groups of the catalog.
func (m *Metadata) Groups() []DependencyGroup {
	if m == nil {
		return nil
	}
	return m.Dependencies.Values
}
