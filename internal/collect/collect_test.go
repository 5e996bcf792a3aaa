package collect

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgebyte/bootforge/internal/initializr"
	"github.com/forgebyte/bootforge/internal/scaffold"
	"github.com/forgebyte/bootforge/internal/ui"
)

func catalog() *initializr.Metadata {
	return &initializr.Metadata{
		Dependencies: initializr.DependencyCatalog{
			Values: []initializr.DependencyGroup{
				{
					Name: "Web",
					Values: []initializr.Dependency{
						{ID: "web", Name: "Spring Web", Description: "Build web applications"},
					},
				},
				{
					Name: "SQL",
					Values: []initializr.Dependency{
						{ID: "data-jpa", Name: "Spring Data JPA"},
						{ID: "h2", Name: "H2 Database"},
					},
				},
			},
		},
	}
}

// answers joins prompt answers into a scripted input stream.
func answers(lines ...string) string {
	return strings.Join(lines, "\n") + "\n"
}

func TestInteractiveBlankAnswersUseDefaults(t *testing.T) {
	// Nine blank prompt answers, then an empty dependency submission.
	ui.SetInput(strings.NewReader(answers("", "", "", "", "", "", "", "", "", "")))

	cfg, err := Interactive{}.Collect(context.Background(), scaffold.FixedDefaults(), catalog())
	require.NoError(t, err)

	assert.Equal(t, "demo", cfg.Name)
	assert.Equal(t, "com.example", cfg.GroupID)
	assert.Equal(t, "demo", cfg.ArtifactID)
	assert.Equal(t, "com.example.demo", cfg.PackageName)
	assert.Equal(t, "maven", cfg.BuildType)
	assert.Equal(t, "java", cfg.Language)
	assert.Equal(t, "17", cfg.JavaVersion)
	assert.Equal(t, "3.3.5", cfg.BootVersion)
	assert.Equal(t, "jar", cfg.Packaging)
	assert.Equal(t, "devtools,web,data-jpa,h2,thymeleaf", cfg.Dependencies)
}

func TestInteractivePackageNameDerivedFromAnswers(t *testing.T) {
	ui.SetInput(strings.NewReader(answers(
		"",         // name
		"org.acme", // group id
		"shop",     // artifact id
		"",         // package name: derived
		"", "", "", "", "", // remaining prompts
		"", // empty dependency submission
	)))

	cfg, err := Interactive{}.Collect(context.Background(), scaffold.FixedDefaults(), catalog())
	require.NoError(t, err)

	assert.Equal(t, "org.acme.shop", cfg.PackageName)
	assert.Equal(t, "shop", cfg.ArtifactID)
}

func TestInteractiveDependencyToggling(t *testing.T) {
	ui.SetInput(strings.NewReader(answers(
		"", "", "", "", "", "", "", "", "", // prompt chain
		"web data-jpa", // toggle both on
		"web",          // toggle web back off
		"h2",           // toggle h2 on
		"",             // submit
	)))

	cfg, err := Interactive{}.Collect(context.Background(), scaffold.FixedDefaults(), catalog())
	require.NoError(t, err)

	assert.Equal(t, "data-jpa,h2", cfg.Dependencies)
}

func TestInteractiveUnknownDependencyIDAcceptedVerbatim(t *testing.T) {
	ui.SetInput(strings.NewReader(answers(
		"", "", "", "", "", "", "", "", "",
		"totally-made-up",
		"",
	)))

	cfg, err := Interactive{}.Collect(context.Background(), scaffold.FixedDefaults(), catalog())
	require.NoError(t, err)

	assert.Equal(t, "totally-made-up", cfg.Dependencies)
}

func TestInteractiveCancelledAtFirstPrompt(t *testing.T) {
	ui.SetInput(strings.NewReader("")) // immediate EOF

	cfg, err := Interactive{}.Collect(context.Background(), scaffold.FixedDefaults(), catalog())
	require.ErrorIs(t, err, scaffold.ErrCancelled)
	assert.Nil(t, cfg)
}

func TestInteractiveCancelledInDependencySelection(t *testing.T) {
	ui.SetInput(strings.NewReader(answers(
		"", "", "", "", "", "", "", "", "",
		"q",
	)))

	cfg, err := Interactive{}.Collect(context.Background(), scaffold.FixedDefaults(), catalog())
	require.ErrorIs(t, err, scaffold.ErrCancelled)
	assert.Nil(t, cfg)
}

func TestFormAppliesDefaults(t *testing.T) {
	form := Form{Config: scaffold.ProjectConfig{GroupID: "org.acme", ArtifactID: "shop"}}

	cfg, err := form.Collect(context.Background(), scaffold.FixedDefaults(), nil)
	require.NoError(t, err)

	assert.Equal(t, "org.acme.shop", cfg.PackageName)
	assert.Equal(t, "shop", cfg.Name)
	assert.Equal(t, "maven", cfg.BuildType)
	assert.Equal(t, "devtools,web,data-jpa,h2,thymeleaf", cfg.Dependencies)
}
