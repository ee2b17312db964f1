// Package scaffold materializes a project layout of empty placeholder files.
package scaffold

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"

	"github.com/kingrea/mlscaffold/internal/logging"
)

// Entry is one slash-separated path, relative to the project root, that must
// exist as a file after a run.
type Entry string

// Entries converts plain layout strings into entries, keeping their order.
func Entries(paths []string) []Entry {
	out := make([]Entry, len(paths))
	for i, p := range paths {
		out[i] = Entry(p)
	}
	return out
}

// Split returns the directory part (empty for top-level files) and the file name.
func (e Entry) Split() (dir, file string) {
	dir, file = path.Split(string(e))
	dir = path.Clean(dir)
	if dir == "." || dir == "/" {
		dir = ""
	}
	return dir, file
}

// Result records what a run did, in entry order.
type Result struct {
	CreatedDirs  []string
	CreatedFiles []Entry
	Existing     []Entry
}

// Scaffolder creates layout entries under a root directory.
type Scaffolder struct {
	root string
	log  *logging.Logger
}

// New returns a scaffolder rooted at root that reports through log.
func New(root string, log *logging.Logger) *Scaffolder {
	return &Scaffolder{root: root, log: log}
}

// Run processes entries in order. Directories are created with their
// ancestors when missing; files are created empty when missing or zero
// length; files with content are left alone. The first filesystem error
// stops the run.
func (s *Scaffolder) Run(entries []Entry) (Result, error) {
	var result Result
	for _, entry := range entries {
		dir, file := entry.Split()

		if dir != "" {
			created, err := s.ensureDir(dir)
			if err != nil {
				return result, err
			}
			if created {
				s.log.Printf("Creating directory: %s for the file %s", dir, file)
				result.CreatedDirs = append(result.CreatedDirs, dir)
			}
		}

		target := s.abs(string(entry))
		empty, err := missingOrEmpty(target)
		if err != nil {
			return result, fmt.Errorf("scaffold: inspect %s: %w", entry, err)
		}
		if !empty {
			s.log.Printf("%s already exists", file)
			result.Existing = append(result.Existing, entry)
			continue
		}
		if err := os.WriteFile(target, nil, 0o644); err != nil {
			return result, fmt.Errorf("scaffold: create file %s: %w", entry, err)
		}
		s.log.Printf("Creating empty file: %s", entry)
		result.CreatedFiles = append(result.CreatedFiles, entry)
	}
	return result, nil
}

func (s *Scaffolder) ensureDir(dir string) (bool, error) {
	target := s.abs(dir)
	exists, err := dirExists(target)
	if err != nil {
		return false, fmt.Errorf("scaffold: inspect directory %s: %w", dir, err)
	}
	if exists {
		return false, nil
	}
	if err := os.MkdirAll(target, 0o755); err != nil {
		return false, fmt.Errorf("scaffold: create directory %s: %w", dir, err)
	}
	return true, nil
}

func (s *Scaffolder) abs(rel string) string {
	return filepath.Join(s.root, filepath.FromSlash(rel))
}

func dirExists(p string) (bool, error) {
	info, err := os.Stat(p)
	if err == nil {
		if !info.IsDir() {
			return false, fmt.Errorf("%s is not a directory", p)
		}
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}

func missingOrEmpty(p string) (bool, error) {
	info, err := os.Stat(p)
	if err == nil {
		return info.Size() == 0, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return true, nil
	}
	return false, err
}
