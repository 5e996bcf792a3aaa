// Package workspace presents generated projects to the user.
//
// Overview:
//   - Responsibility: Enter the project root and display its source tree
//   - Key Types: Dir workspace, tree listing helpers
//   - Concurrency Model: Single-threaded file system walks
//   - Error Semantics: File system errors with user-friendly messages
//   - Performance Notes: One directory walk per open
//
// Usage:
//
//	ws := workspace.NewDir()
//	err := ws.OpenProject("demo", "java")
package workspace

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/forgebyte/bootforge/internal/ui"
)

// buildOutputDirs are directory names excluded from the presented tree.
var buildOutputDirs = map[string]bool{
	"target":       true,
	"build":        true,
	".gradle":      true,
	".mvn":         true,
	".git":         true,
	"node_modules": true,
}

// Dir is a terminal workspace: it changes the process working
// directory to the project root and prints the source tree.
type Dir struct {
	// chdir is replaceable in tests.
	chdir func(dir string) error
}

// NewDir creates a terminal workspace.
func NewDir() *Dir {
	return &Dir{chdir: os.Chdir}
}

// OpenProject enters the project directory and presents the tree
// rooted at the framework-conventional source path, falling back to
// the project root when that path does not exist.
//
// Parameters:
//   - name: Project directory name
//   - language: Project language, selects src/main/<language>
//
// Returns:
//   - error: File system error if any
//
// Concurrency:
//   - Single-threaded
//
// Performance:
//   - One directory walk
func (d *Dir) OpenProject(name, language string) error {
	if err := d.chdir(name); err != nil {
		return fmt.Errorf("failed to enter project directory %s: %w", name, err)
	}

	root := filepath.Join("src", "main", language)
	if info, err := os.Stat(root); err != nil || !info.IsDir() {
		root = "."
	}

	files, err := ListTree(root)
	if err != nil {
		return fmt.Errorf("failed to list project tree: %w", err)
	}

	ui.Plain("%s", name)
	for _, file := range files {
		ui.Plain("  %s", file)
	}
	return nil
}

// ListTree returns the relative paths of all files under root,
// excluding build-output directories.
//
// Parameters:
//   - root: Directory to walk
//
// Returns:
//   - []string: Relative file paths in walk order
//   - error: File system error if any
//
// Concurrency:
//   - Single-threaded
//
// Performance:
//   - O(n) in the number of directory entries
func ListTree(root string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() {
			if buildOutputDirs[entry.Name()] {
				return filepath.SkipDir
			}
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		files = append(files, rel)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}
