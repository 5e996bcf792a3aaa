package scaffold

import "testing"

func TestApplyDefaults(t *testing.T) {
	defaults := FixedDefaults()

	tests := []struct {
		name string
		in   ProjectConfig
		want ProjectConfig
	}{
		{
			name: "all fields blank",
			in:   ProjectConfig{},
			want: ProjectConfig{
				BuildType:    "maven",
				Language:     "java",
				JavaVersion:  "17",
				BootVersion:  "3.3.5",
				Packaging:    "jar",
				Dependencies: "devtools,web,data-jpa,h2,thymeleaf",
				GroupID:      "com.example",
				ArtifactID:   "demo",
				PackageName:  "com.example.demo",
				Name:         "demo",
			},
		},
		{
			name: "whitespace counts as blank",
			in:   ProjectConfig{GroupID: "   ", BuildType: "\t"},
			want: ProjectConfig{
				BuildType:    "maven",
				Language:     "java",
				JavaVersion:  "17",
				BootVersion:  "3.3.5",
				Packaging:    "jar",
				Dependencies: "devtools,web,data-jpa,h2,thymeleaf",
				GroupID:      "com.example",
				ArtifactID:   "demo",
				PackageName:  "com.example.demo",
				Name:         "demo",
			},
		},
		{
			name: "non-blank values used verbatim",
			in: ProjectConfig{
				BuildType:    "gradle",
				Language:     "kotlin",
				JavaVersion:  "21",
				BootVersion:  "3.4.0",
				Packaging:    "war",
				Dependencies: "web,security",
				GroupID:      "org.acme",
				ArtifactID:   "shop",
				PackageName:  "org.acme.store",
				Name:         "shop-backend",
			},
			want: ProjectConfig{
				BuildType:    "gradle",
				Language:     "kotlin",
				JavaVersion:  "21",
				BootVersion:  "3.4.0",
				Packaging:    "war",
				Dependencies: "web,security",
				GroupID:      "org.acme",
				ArtifactID:   "shop",
				PackageName:  "org.acme.store",
				Name:         "shop-backend",
			},
		},
		{
			name: "package name derived from explicit group and artifact",
			in:   ProjectConfig{GroupID: "org.acme", ArtifactID: "shop"},
			want: ProjectConfig{
				BuildType:    "maven",
				Language:     "java",
				JavaVersion:  "17",
				BootVersion:  "3.3.5",
				Packaging:    "jar",
				Dependencies: "devtools,web,data-jpa,h2,thymeleaf",
				GroupID:      "org.acme",
				ArtifactID:   "shop",
				PackageName:  "org.acme.shop",
				Name:         "shop",
			},
		},
		{
			name: "no identifier syntax enforcement",
			in:   ProjectConfig{GroupID: "not a group id!"},
			want: ProjectConfig{
				BuildType:    "maven",
				Language:     "java",
				JavaVersion:  "17",
				BootVersion:  "3.3.5",
				Packaging:    "jar",
				Dependencies: "devtools,web,data-jpa,h2,thymeleaf",
				GroupID:      "not a group id!",
				ArtifactID:   "demo",
				PackageName:  "not a group id!.demo",
				Name:         "demo",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.in
			cfg.ApplyDefaults(defaults)
			if cfg != tt.want {
				t.Errorf("ApplyDefaults() = %+v, want %+v", cfg, tt.want)
			}
		})
	}
}
