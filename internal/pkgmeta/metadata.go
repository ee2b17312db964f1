// Package pkgmeta builds the distribution metadata for the project's source
// package: identity, links, README long description and the package list
// discovered under the source directory.
package pkgmeta

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/kingrea/mlscaffold/internal/config"
)

const (
	// LongDescriptionType is the content type of the README long description.
	LongDescriptionType = "text/markdown"

	bugTrackerLabel = "Bug Tracker"
	packageMarker   = "__init__.py"
)

// Metadata is the package record consumed by a distribution tool.
type Metadata struct {
	Name                string            `yaml:"name"`
	Version             string            `yaml:"version"`
	Author              string            `yaml:"author"`
	AuthorEmail         string            `yaml:"author_email,omitempty"`
	Description         string            `yaml:"description"`
	LongDescription     string            `yaml:"long_description"`
	LongDescriptionType string            `yaml:"long_description_content_type"`
	URL                 string            `yaml:"url"`
	ProjectURLs         map[string]string `yaml:"project_urls"`
	PackageDir          map[string]string `yaml:"package_dir"`
	Packages            []string          `yaml:"packages"`
}

// Describe reads the README under root once and assembles the metadata for pkg.
func Describe(root string, pkg config.PackageConfig) (Metadata, error) {
	readme, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(pkg.Readme)))
	if err != nil {
		return Metadata{}, fmt.Errorf("pkgmeta: read readme: %w", err)
	}
	packages, err := FindPackages(filepath.Join(root, filepath.FromSlash(pkg.SourceDir)))
	if err != nil {
		return Metadata{}, err
	}
	url := RepositoryURL(pkg.Author, pkg.Repository)
	return Metadata{
		Name:                pkg.Name,
		Version:             pkg.Version,
		Author:              pkg.Author,
		AuthorEmail:         pkg.AuthorEmail,
		Description:         pkg.Description,
		LongDescription:     string(readme),
		LongDescriptionType: LongDescriptionType,
		URL:                 url,
		ProjectURLs:         map[string]string{bugTrackerLabel: url + "/issues"},
		PackageDir:          map[string]string{"": pkg.SourceDir},
		Packages:            packages,
	}, nil
}

// RepositoryURL returns the GitHub URL for author/repository.
func RepositoryURL(author, repository string) string {
	return fmt.Sprintf("https://github.com/%s/%s", author, repository)
}

// FindPackages lists the dotted names of every package below srcDir. A
// directory is a package when it holds __init__.py and its parent below
// srcDir is a package too. A missing srcDir yields no packages.
func FindPackages(srcDir string) ([]string, error) {
	if _, err := os.Stat(srcDir); errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	var packages []string
	err := filepath.WalkDir(srcDir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() || p == srcDir {
			return nil
		}
		if _, err := os.Stat(filepath.Join(p, packageMarker)); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return filepath.SkipDir
			}
			return err
		}
		rel, err := filepath.Rel(srcDir, p)
		if err != nil {
			return err
		}
		packages = append(packages, strings.ReplaceAll(filepath.ToSlash(rel), "/", "."))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("pkgmeta: find packages: %w", err)
	}
	sort.Strings(packages)
	return packages, nil
}

// Render writes m as YAML.
func Render(w io.Writer, m Metadata) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(m); err != nil {
		return fmt.Errorf("pkgmeta: encode metadata: %w", err)
	}
	return enc.Close()
}
