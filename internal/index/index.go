// Package index builds the in-memory lookup structures over the log
// store: the chronological entry list, the per-project and per-person
// todo mappings, and the flat todo list. The index is a derived,
// rebuildable cache; the files on disk stay authoritative.
package index

import (
	"log/slog"

	"github.com/starford/daylog/internal/checksum"
	"github.com/starford/daylog/internal/models"
	"github.com/starford/daylog/internal/parser"
	"github.com/starford/daylog/internal/storage"
)

// Index holds one consistent snapshot of the store. It is rebuilt in
// full on structural changes (a new entry, an external edit) and
// patched in place only for todo toggles.
type Index struct {
	entries   []*models.LogEntry // chronological, oldest first
	todos     []*models.Todo     // entry order, then line order
	byProject map[string][]*models.Todo
	byPerson  map[string][]*models.Todo
	byID      map[models.EntryID]*models.LogEntry
	checksums map[models.EntryID]string
}

// Build scans the whole store and constructs a fresh index. Building
// twice from identical disk state yields identical results. prev may be
// nil; when given, entries whose raw content checksum is unchanged are
// reused without re-parsing (their attachment listing is still
// refreshed, since siblings can change without touching log.txt).
// A single unreadable entry is skipped with a warning, never fatal to
// the scan.
func Build(store *storage.Store, prev *Index, logger *slog.Logger) *Index {
	ix := &Index{
		byProject: make(map[string][]*models.Todo),
		byPerson:  make(map[string][]*models.Todo),
		byID:      make(map[models.EntryID]*models.LogEntry),
		checksums: make(map[models.EntryID]string),
	}

	for item := range store.Walk() {
		data, attachments, err := store.ReadEntry(item.ID)
		if err != nil {
			logger.Warn("index: skipping unreadable entry",
				slog.String("entry", item.ID.String()),
				slog.String("error", err.Error()))
			continue
		}
		cs := checksum.Sum(data)

		var entry *models.LogEntry
		if prev != nil && prev.checksums[item.ID] == cs {
			entry = prev.byID[item.ID]
			entry.Attachments = attachments
		} else {
			entry = parser.ParseEntry(item.ID, item.Path, data, attachments)
		}

		ix.entries = append(ix.entries, entry)
		ix.byID[item.ID] = entry
		ix.checksums[item.ID] = cs
	}

	for _, e := range ix.entries {
		for i := range e.Todos {
			t := &e.Todos[i]
			ix.todos = append(ix.todos, t)
			for _, p := range t.Projects {
				ix.byProject[p] = append(ix.byProject[p], t)
			}
			for _, p := range t.People {
				ix.byPerson[p] = append(ix.byPerson[p], t)
			}
		}
	}

	logger.Debug("index: built",
		slog.Int("entries", len(ix.entries)),
		slog.Int("todos", len(ix.todos)))
	return ix
}

// Entries returns the chronological entry list, oldest first.
func (ix *Index) Entries() []*models.LogEntry { return ix.entries }

// EntriesNewestFirst returns the entry list reversed for display. The
// reversal happens only here, at the view boundary.
func (ix *Index) EntriesNewestFirst() []*models.LogEntry {
	out := make([]*models.LogEntry, len(ix.entries))
	for i, e := range ix.entries {
		out[len(out)-1-i] = e
	}
	return out
}

// Todos returns every todo in entry-then-line order.
func (ix *Index) Todos() []*models.Todo { return ix.todos }

// TodosForProject returns the ordered todos tagged with the project.
func (ix *Index) TodosForProject(name string) []*models.Todo { return ix.byProject[name] }

// TodosForPerson returns the ordered todos tagged with the person.
func (ix *Index) TodosForPerson(name string) []*models.Todo { return ix.byPerson[name] }

// Entry looks up one entry by identity.
func (ix *Index) Entry(id models.EntryID) (*models.LogEntry, bool) {
	e, ok := ix.byID[id]
	return e, ok
}

// ApplyToggle flips the cached done flag for the todo at loc after a
// successful on-disk toggle, avoiding a full rebuild. It reports
// whether a matching todo was found. The stored checksum for the entry
// is dropped so the next rebuild re-parses it from disk.
func (ix *Index) ApplyToggle(loc models.Locator, done bool) bool {
	e, ok := ix.byID[loc.Entry]
	if !ok {
		return false
	}
	for i := range e.Todos {
		if e.Todos[i].Loc == loc {
			e.Todos[i].Done = done
			delete(ix.checksums, loc.Entry)
			return true
		}
	}
	return false
}
