// Package storage implements the plain-file log store: a base directory
// holding the YAML reference lists and one directory per log entry under
// log-<year>/<timestamp>/. The files on disk are the sole source of
// truth; everything derived from them is rebuilt by re-reading.
package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/starford/daylog/internal/apperr"
	"github.com/starford/daylog/internal/models"
)

const (
	logFileName = "log.txt"
	tmpPrefix   = ".daylog-tmp-"
)

// Store is rooted at the base directory.
type Store struct {
	root string
}

// Open resolves root to an absolute path and creates it if needed.
func Open(root string) (*Store, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("storage: resolve root: %w", err)
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, fmt.Errorf("storage: create root: %w", err)
	}
	return &Store{root: abs}, nil
}

// Root returns the absolute base directory.
func (s *Store) Root() string { return s.root }

// ProjectsPath returns the path of projects.yml.
func (s *Store) ProjectsPath() string { return filepath.Join(s.root, "projects.yml") }

// PeoplePath returns the path of people.yml.
func (s *Store) PeoplePath() string { return filepath.Join(s.root, "people.yml") }

// ConfigPath returns the path of the optional config.yml.
func (s *Store) ConfigPath() string { return filepath.Join(s.root, "config.yml") }

// EntryDir returns the directory holding one entry and its attachments.
func (s *Store) EntryDir(id models.EntryID) string {
	return filepath.Join(s.root, fmt.Sprintf("log-%d", id.Year), id.Stamp)
}

// LogPath returns the path of an entry's log.txt.
func (s *Store) LogPath(id models.EntryID) string {
	return filepath.Join(s.EntryDir(id), logFileName)
}

// ReadEntry returns the raw log.txt bytes plus the sorted attachment
// file names sitting next to it. The file is re-read fresh on every
// call; no handles are cached.
func (s *Store) ReadEntry(id models.EntryID) ([]byte, []string, error) {
	dir := s.EntryDir(id)
	data, err := os.ReadFile(filepath.Join(dir, logFileName))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil, fmt.Errorf("storage: entry %s: %w", id, apperr.ErrNotFound)
		}
		return nil, nil, fmt.Errorf("storage: read entry %s: %w", id, err)
	}
	return data, listAttachments(dir), nil
}

// listAttachments returns every sibling of log.txt, sorted by name.
// Dotfiles (including in-flight temp files) are not attachments.
func listAttachments(dir string) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}
	var out []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || name == logFileName || strings.HasPrefix(name, ".") {
			continue
		}
		out = append(out, name)
	}
	slices.Sort(out)
	return out
}

// writeFileAtomic writes content to a temp file, fsyncs and renames it
// over path so a crash mid-write can never leave a truncated file.
func writeFileAtomic(path string, content []byte) error {
	dir := filepath.Dir(path)

	tmp, err := os.CreateTemp(dir, tmpPrefix+"*")
	if err != nil {
		return fmt.Errorf("storage: create temp: %w", err)
	}
	tmpName := tmp.Name()

	// Clean up on any failure path.
	success := false
	defer func() {
		if !success {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(content); err != nil {
		return fmt.Errorf("storage: write temp: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("storage: fsync: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("storage: close temp: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("storage: rename: %w", err)
	}
	success = true
	return nil
}
