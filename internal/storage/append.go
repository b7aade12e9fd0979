package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/starford/daylog/internal/apperr"
	"github.com/starford/daylog/internal/models"
)

// AppendEntry creates the year/timestamp directory for id, writes body
// as the entry's log.txt, and copies each attachment into the directory
// preserving its file name. Entries are append-only: a timestamp
// collision fails with ErrAlreadyExists and name collisions between
// attachments fail with ErrAttachmentConflict. Both are surfaced before
// any file is written.
func (s *Store) AppendEntry(id models.EntryID, body []byte, attachments []string) error {
	seen := map[string]struct{}{logFileName: {}}
	for _, a := range attachments {
		name := filepath.Base(a)
		if _, dup := seen[name]; dup {
			return fmt.Errorf("storage: attachment %q: %w", name, apperr.ErrAttachmentConflict)
		}
		seen[name] = struct{}{}
	}

	dir := s.EntryDir(id)
	if _, err := os.Stat(dir); err == nil {
		return fmt.Errorf("storage: entry %s: %w", id, apperr.ErrAlreadyExists)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("storage: create entry dir: %w", err)
	}

	if err := writeFileAtomic(filepath.Join(dir, logFileName), body); err != nil {
		return err
	}

	for _, a := range attachments {
		data, err := os.ReadFile(a)
		if err != nil {
			return fmt.Errorf("storage: read attachment %s: %w", a, err)
		}
		if err := writeFileAtomic(filepath.Join(dir, filepath.Base(a)), data); err != nil {
			return err
		}
	}
	return nil
}
