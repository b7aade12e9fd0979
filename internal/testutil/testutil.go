// Package testutil provides shared test helpers for building populated
// log stores.
package testutil

import (
	"io"
	"log/slog"
	"strconv"
	"testing"

	"github.com/starford/daylog/internal/models"
	"github.com/starford/daylog/internal/storage"
)

// TestStore creates a store rooted in a temporary directory.
func TestStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	return store
}

// SeedEntry appends an entry under the given timestamp directory name
// (layout 2006-01-02_15-04-05) and returns its identity.
func SeedEntry(t *testing.T, store *storage.Store, stamp, body string) models.EntryID {
	t.Helper()
	year, err := strconv.Atoi(stamp[:4])
	if err != nil {
		t.Fatalf("bad stamp %q: %v", stamp, err)
	}
	id := models.EntryID{Year: year, Stamp: stamp}
	if err := store.AppendEntry(id, []byte(body), nil); err != nil {
		t.Fatalf("seed entry %s: %v", stamp, err)
	}
	return id
}

// DiscardLogger returns a logger for code paths under test that log.
func DiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
