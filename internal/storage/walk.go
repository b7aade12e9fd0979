package storage

import (
	"iter"
	"os"
	"path/filepath"
	"regexp"
	"strconv"

	"github.com/starford/daylog/internal/models"
)

var (
	yearDirRe  = regexp.MustCompile(`^log-(\d{4})$`)
	stampDirRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}_\d{2}-\d{2}-\d{2}$`)
)

// WalkItem is one discovered entry: its identity plus the absolute
// path of its log.txt.
type WalkItem struct {
	ID   models.EntryID
	Path string
}

// Walk returns a lazy, restartable iterator over every log entry in
// chronological order: year directories first, timestamp directories
// within each year. Directory names not matching the expected pattern
// are skipped silently, as are timestamp directories without a log.txt.
// At most one directory listing is held at a time and no file is opened.
func (s *Store) Walk() iter.Seq[WalkItem] {
	return func(yield func(WalkItem) bool) {
		years, err := os.ReadDir(s.root)
		if err != nil {
			return
		}
		// os.ReadDir sorts by name, which is chronological for both
		// log-<year> and the timestamp layout.
		for _, yd := range years {
			if !yd.IsDir() {
				continue
			}
			m := yearDirRe.FindStringSubmatch(yd.Name())
			if m == nil {
				continue
			}
			year, _ := strconv.Atoi(m[1])

			stamps, err := os.ReadDir(filepath.Join(s.root, yd.Name()))
			if err != nil {
				continue
			}
			for _, sd := range stamps {
				if !sd.IsDir() || !stampDirRe.MatchString(sd.Name()) {
					continue
				}
				path := filepath.Join(s.root, yd.Name(), sd.Name(), logFileName)
				if _, err := os.Stat(path); err != nil {
					continue
				}
				item := WalkItem{
					ID:   models.EntryID{Year: year, Stamp: sd.Name()},
					Path: path,
				}
				if !yield(item) {
					return
				}
			}
		}
	}
}
