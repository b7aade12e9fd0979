package storage

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/starford/daylog/internal/apperr"
	"github.com/starford/daylog/internal/models"
	"github.com/starford/daylog/internal/parser"
)

// ToggleTodo flips the todo marker named by loc and returns the new
// done state. The sequence is read, verify, write temp, atomic rename:
// the marker at the recorded line and byte offset must still read "[]"
// or "[x]"/"[X]", otherwise the file changed since the last index build
// and the call fails with ErrStaleLocator leaving the file untouched.
// No byte outside the marker substring is modified.
func (s *Store) ToggleTodo(loc models.Locator) (bool, error) {
	path := s.LogPath(loc.Entry)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, fmt.Errorf("storage: toggle %s: %w", loc.Entry, apperr.ErrStaleLocator)
		}
		return false, fmt.Errorf("storage: toggle read %s: %w", loc.Entry, err)
	}

	start, ok := lineStart(data, loc.Line)
	if !ok {
		return false, fmt.Errorf("storage: toggle %s line %d: %w", loc.Entry, loc.Line, apperr.ErrStaleLocator)
	}
	end := len(data)
	if i := bytes.IndexByte(data[start:], '\n'); i >= 0 {
		end = start + i
	}

	pos := start + loc.Offset
	if pos >= end {
		return false, fmt.Errorf("storage: toggle %s offset %d: %w", loc.Entry, loc.Offset, apperr.ErrStaleLocator)
	}
	length, replacement, nowDone, ok := parser.FlipMarker(data[pos:end])
	if !ok {
		return false, fmt.Errorf("storage: toggle %s: marker mismatch: %w", loc.Entry, apperr.ErrStaleLocator)
	}

	updated := make([]byte, 0, len(data)+1)
	updated = append(updated, data[:pos]...)
	updated = append(updated, replacement...)
	updated = append(updated, data[pos+length:]...)

	if err := writeFileAtomic(path, updated); err != nil {
		return false, err
	}
	return nowDone, nil
}

// lineStart returns the byte offset where the zero-based line begins.
func lineStart(data []byte, line int) (int, bool) {
	pos := 0
	for l := 0; l < line; l++ {
		i := bytes.IndexByte(data[pos:], '\n')
		if i < 0 {
			return 0, false
		}
		pos += i + 1
	}
	return pos, true
}
