package scaffold

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestArgsOrder(t *testing.T) {
	cfg := &ProjectConfig{
		BuildType:    "maven",
		Language:     "java",
		JavaVersion:  "17",
		BootVersion:  "3.3.5",
		Packaging:    "jar",
		Dependencies: "web,data-jpa",
		GroupID:      "com.example",
		ArtifactID:   "demo",
		PackageName:  "com.example.demo",
		Name:         "demo",
	}

	want := []string{
		"init",
		"--boot-version=3.3.5",
		"--java-version=17",
		"--build=maven",
		"--dependencies=web,data-jpa",
		"--groupId=com.example",
		"--artifactId=demo",
		"--name=demo",
		"--package-name=com.example.demo",
		"demo",
	}

	if diff := cmp.Diff(want, cfg.Args()); diff != "" {
		t.Errorf("Args() mismatch (-want +got):\n%s", diff)
	}
}

func TestArgsDeterministic(t *testing.T) {
	cfg := &ProjectConfig{}
	cfg.ApplyDefaults(FixedDefaults())

	first := cfg.Args()
	second := cfg.Args()
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("Args() not deterministic (-first +second):\n%s", diff)
	}
}
