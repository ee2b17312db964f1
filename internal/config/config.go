// internal/config/config.go
//
// This package holds the project definition mlscaffold works from: the
// package metadata and the ordered layout of placeholder files. The definition
// is compiled into the binary so every run sees the same list.

package config

import (
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// ProjectPlaceholder is replaced by the package name inside layout entries.
	ProjectPlaceholder = "{project}"

	defaultReadme      = "README.md"
	defaultSourceDir   = "src"
	defaultPackageVers = "0.0.0"
)

const defaultProjectConfigYAML = `# mlscaffold project definition
version: 1

package:
  name: cnnClassifier
  version: 0.0.0
  repository: End-to-End-Chest-Cancer-Classification-using-MLflow-and-DVC
  author: AlyyanAhmed21
  author_email: alyyanawan19@gmail.com
  description: A small python package for CNN app
  readme: README.md
  source_dir: src

# Placeholder files created by "mlscaffold init", in order.
layout:
  - .github/workflows/.gitkeep
  - src/{project}/__init__.py
  - src/{project}/components/__init__.py
  - src/{project}/utils/__init__.py
  - src/{project}/config/__init__.py
  - src/{project}/config/configuration.py
  - src/{project}/pipeline/__init__.py
  - src/{project}/entity/__init__.py
  - src/{project}/constants/__init__.py
  - config/config.yaml
  - dvc.yaml
  - params.yaml
  - requirements.txt
  - setup.py
  - research/trials.ipynb
  - templates/index.html
`

// PackageConfig describes the source package published from the project.
type PackageConfig struct {
	Name        string `yaml:"name"`
	Version     string `yaml:"version"`
	Repository  string `yaml:"repository"`
	Author      string `yaml:"author"`
	AuthorEmail string `yaml:"author_email"`
	Description string `yaml:"description"`
	Readme      string `yaml:"readme"`
	SourceDir   string `yaml:"source_dir"`
}

// ProjectConfig models the built-in project definition.
type ProjectConfig struct {
	Version int           `yaml:"version"`
	Package PackageConfig `yaml:"package"`
	Layout  []string      `yaml:"layout"`
}

// Config holds the runtime configuration for mlscaffold.
type Config struct {
	// ProjectDir is the directory the layout is materialized under
	ProjectDir string

	Project ProjectConfig
}

// NewConfig creates a Config rooted at projectDir from the built-in definition.
func NewConfig(projectDir string) (*Config, error) {
	project, err := ParseProjectConfig([]byte(defaultProjectConfigYAML))
	if err != nil {
		return nil, err
	}
	return &Config{
		ProjectDir: filepath.Clean(projectDir),
		Project:    project,
	}, nil
}

// ParseProjectConfig decodes a project definition and runs the defaults,
// normalize and validate phases over it.
func ParseProjectConfig(data []byte) (ProjectConfig, error) {
	var pc ProjectConfig
	if err := yaml.Unmarshal(data, &pc); err != nil {
		return ProjectConfig{}, fmt.Errorf("config: parse project definition: %w", err)
	}
	pc.applyDefaults()
	pc.normalize()
	if err := pc.validate(); err != nil {
		return ProjectConfig{}, fmt.Errorf("config: %w", err)
	}
	return pc, nil
}

// Entries returns the expanded layout in definition order.
func (c *Config) Entries() []string {
	out := make([]string, len(c.Project.Layout))
	copy(out, c.Project.Layout)
	return out
}

// Package returns the package metadata settings.
func (c *Config) Package() PackageConfig {
	return c.Project.Package
}

// ReadmePath returns the on-disk location of the project README.
func (c *Config) ReadmePath() string {
	return filepath.Join(c.ProjectDir, filepath.FromSlash(c.Project.Package.Readme))
}

func (pc *ProjectConfig) applyDefaults() {
	if pc.Version == 0 {
		pc.Version = 1
	}
	if strings.TrimSpace(pc.Package.Version) == "" {
		pc.Package.Version = defaultPackageVers
	}
	if strings.TrimSpace(pc.Package.Readme) == "" {
		pc.Package.Readme = defaultReadme
	}
	if strings.TrimSpace(pc.Package.SourceDir) == "" {
		pc.Package.SourceDir = defaultSourceDir
	}
}

func (pc *ProjectConfig) normalize() {
	p := &pc.Package
	p.Name = strings.TrimSpace(p.Name)
	p.Version = strings.TrimSpace(p.Version)
	p.Repository = strings.TrimSpace(p.Repository)
	p.Author = strings.TrimSpace(p.Author)
	p.AuthorEmail = strings.TrimSpace(p.AuthorEmail)
	p.Description = strings.TrimSpace(p.Description)
	p.Readme = filepath.ToSlash(strings.TrimSpace(p.Readme))
	p.SourceDir = filepath.ToSlash(strings.TrimSpace(p.SourceDir))
	for i, entry := range pc.Layout {
		pc.Layout[i] = expandEntry(entry, p.Name)
	}
}

func (pc *ProjectConfig) validate() error {
	if pc.Version < 1 {
		return fmt.Errorf("version must be >= 1")
	}
	if pc.Package.Name == "" {
		return fmt.Errorf("package.name is required")
	}
	if len(pc.Layout) == 0 {
		return fmt.Errorf("layout must list at least one entry")
	}
	seen := make(map[string]int, len(pc.Layout))
	for i, entry := range pc.Layout {
		if err := validateEntry(entry); err != nil {
			return fmt.Errorf("layout[%d]: %w", i, err)
		}
		if first, dup := seen[entry]; dup {
			return fmt.Errorf("layout[%d]: %q duplicates layout[%d]", i, entry, first)
		}
		seen[entry] = i
	}
	return nil
}

func expandEntry(entry, project string) string {
	trimmed := strings.TrimSpace(entry)
	trimmed = strings.ReplaceAll(trimmed, ProjectPlaceholder, project)
	return filepath.ToSlash(trimmed)
}

func validateEntry(entry string) error {
	if entry == "" {
		return fmt.Errorf("entry is empty")
	}
	if path.IsAbs(entry) || filepath.IsAbs(entry) {
		return fmt.Errorf("%q must be relative", entry)
	}
	if strings.HasSuffix(entry, "/") {
		return fmt.Errorf("%q must name a file", entry)
	}
	cleaned := path.Clean(entry)
	if cleaned == ".." || strings.HasPrefix(cleaned, "../") {
		return fmt.Errorf("%q escapes the project root", entry)
	}
	return nil
}
