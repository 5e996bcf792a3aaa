package workspace

import (
	"os"
	"path/filepath"
	"testing"
)

// writeFile creates a file (and its parents) under root.
func writeFile(t *testing.T, root, rel string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("failed to create directory: %v", err)
	}
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}
}

func TestListTreeExcludesBuildOutputs(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "com/example/demo/DemoApplication.java")
	writeFile(t, root, "resources/application.properties")
	writeFile(t, root, "target/classes/DemoApplication.class")
	writeFile(t, root, "build/libs/demo.jar")
	writeFile(t, root, ".gradle/caches/lock")

	files, err := ListTree(root)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := map[string]bool{
		filepath.FromSlash("com/example/demo/DemoApplication.java"): true,
		filepath.FromSlash("resources/application.properties"):      true,
	}
	if len(files) != len(want) {
		t.Fatalf("ListTree() = %v, want %d files", files, len(want))
	}
	for _, file := range files {
		if !want[file] {
			t.Errorf("unexpected file in tree: %s", file)
		}
	}
}

func TestOpenProjectEntersDirectoryAndUsesSourcePath(t *testing.T) {
	tmp := t.TempDir()
	writeFile(t, tmp, "demo/src/main/java/com/example/DemoApplication.java")
	writeFile(t, tmp, "demo/target/out.class")
	t.Chdir(tmp)

	ws := NewDir()
	if err := ws.OpenProject("demo", "java"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("failed to get working directory: %v", err)
	}
	if filepath.Base(wd) != "demo" {
		t.Errorf("working directory = %s, want the project root", wd)
	}
}

func TestOpenProjectMissingDirectory(t *testing.T) {
	t.Chdir(t.TempDir())

	ws := NewDir()
	if err := ws.OpenProject("does-not-exist", "java"); err == nil {
		t.Fatal("expected error for missing project directory")
	}
}

func TestOpenProjectFallsBackToProjectRoot(t *testing.T) {
	tmp := t.TempDir()
	writeFile(t, tmp, "flat/README.md")
	t.Chdir(tmp)

	ws := NewDir()
	if err := ws.OpenProject("flat", "java"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
