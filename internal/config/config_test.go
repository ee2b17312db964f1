package config

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestNewConfigExpandsBuiltinLayout(t *testing.T) {
	projectDir := t.TempDir()
	c, err := NewConfig(projectDir)
	if err != nil {
		t.Fatalf("NewConfig returned error: %v", err)
	}
	entries := c.Entries()
	if len(entries) != 16 {
		t.Fatalf("expected 16 layout entries, got %d", len(entries))
	}
	if entries[0] != ".github/workflows/.gitkeep" {
		t.Fatalf("unexpected first entry %q", entries[0])
	}
	if entries[1] != "src/cnnClassifier/__init__.py" {
		t.Fatalf("expected project placeholder to be expanded, got %q", entries[1])
	}
	for _, entry := range entries {
		if strings.Contains(entry, ProjectPlaceholder) {
			t.Fatalf("entry %q still carries the placeholder", entry)
		}
	}
	if entries[len(entries)-1] != "templates/index.html" {
		t.Fatalf("unexpected last entry %q", entries[len(entries)-1])
	}
}

func TestNewConfigPackageDefaults(t *testing.T) {
	projectDir := t.TempDir()
	c, err := NewConfig(projectDir)
	if err != nil {
		t.Fatalf("NewConfig returned error: %v", err)
	}
	pkg := c.Package()
	if pkg.Name != "cnnClassifier" {
		t.Fatalf("wrong package name: %s", pkg.Name)
	}
	if pkg.Version != "0.0.0" {
		t.Fatalf("wrong package version: %s", pkg.Version)
	}
	if got, want := c.ReadmePath(), filepath.Join(projectDir, "README.md"); got != want {
		t.Fatalf("ReadmePath = %s, want %s", got, want)
	}
}

func TestEntriesReturnsCopy(t *testing.T) {
	c, err := NewConfig(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	entries := c.Entries()
	entries[0] = "mutated"
	if c.Entries()[0] == "mutated" {
		t.Fatalf("Entries must not expose the underlying layout")
	}
}

func TestParseProjectConfigAppliesDefaults(t *testing.T) {
	pc, err := ParseProjectConfig([]byte(strings.TrimSpace(`
package:
  name: demo
layout:
  - src/{project}/__init__.py
`)))
	if err != nil {
		t.Fatalf("ParseProjectConfig returned error: %v", err)
	}
	if pc.Version != 1 {
		t.Fatalf("expected default version 1, got %d", pc.Version)
	}
	if pc.Package.Readme != "README.md" || pc.Package.SourceDir != "src" {
		t.Fatalf("defaults not applied: %+v", pc.Package)
	}
	if pc.Layout[0] != "src/demo/__init__.py" {
		t.Fatalf("placeholder not expanded: %q", pc.Layout[0])
	}
}

func TestParseProjectConfigValidation(t *testing.T) {
	cases := map[string]string{
		"missing name": `
layout:
  - a.txt
`,
		"empty layout": `
package:
  name: demo
`,
		"absolute entry": `
package:
  name: demo
layout:
  - /etc/passwd
`,
		"escaping entry": `
package:
  name: demo
layout:
  - ../outside.txt
`,
		"directory entry": `
package:
  name: demo
layout:
  - config/
`,
		"duplicate entry": `
package:
  name: demo
layout:
  - src/{project}/__init__.py
  - src/demo/__init__.py
`,
	}
	for name, doc := range cases {
		if _, err := ParseProjectConfig([]byte(strings.TrimSpace(doc))); err == nil {
			t.Fatalf("%s: expected validation error but got none", name)
		}
	}
}

func TestParseProjectConfigRejectsMalformedYAML(t *testing.T) {
	if _, err := ParseProjectConfig([]byte("layout: [unterminated")); err == nil {
		t.Fatalf("expected parse error")
	}
}
