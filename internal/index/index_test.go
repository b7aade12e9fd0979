package index

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/starford/daylog/internal/models"
	"github.com/starford/daylog/internal/storage"
	"github.com/starford/daylog/internal/testutil"
)

func writeAttachment(t *testing.T, store *storage.Store, id models.EntryID, name string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(store.EntryDir(id), name), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestBuild_OrderAndMappings(t *testing.T) {
	store := testutil.TestStore(t)
	a := testutil.SeedEntry(t, store, "2024-11-05_08-00-00", "kickoff #website with @anna\n[] draft plan\n")
	b := testutil.SeedEntry(t, store, "2025-02-10_14-30-00", "status #website\n[x] send minutes @anna\n[] follow up @bob\n")

	ix := Build(store, nil, testutil.DiscardLogger())

	entries := ix.Entries()
	if len(entries) != 2 {
		t.Fatalf("entries = %d, want 2", len(entries))
	}
	if entries[0].ID != a || entries[1].ID != b {
		t.Errorf("entry order = %v, %v", entries[0].ID, entries[1].ID)
	}

	newest := ix.EntriesNewestFirst()
	if newest[0].ID != b || newest[1].ID != a {
		t.Errorf("newest-first order = %v, %v", newest[0].ID, newest[1].ID)
	}

	todos := ix.Todos()
	if len(todos) != 3 {
		t.Fatalf("todos = %d, want 3", len(todos))
	}
	if todos[0].Text != "draft plan" || todos[1].Text != "send minutes @anna" || todos[2].Text != "follow up @bob" {
		t.Errorf("todo order = %q, %q, %q", todos[0].Text, todos[1].Text, todos[2].Text)
	}

	if got := ix.TodosForProject("website"); len(got) != 3 {
		t.Errorf("TodosForProject(website) = %d todos, want 3", len(got))
	}
	anna := ix.TodosForPerson("anna")
	if len(anna) != 3 {
		// Entry a tags anna, so its todo inherits her; entry b's todos both do too.
		t.Errorf("TodosForPerson(anna) = %d todos, want 3", len(anna))
	}
	if got := ix.TodosForPerson("bob"); len(got) != 2 {
		t.Errorf("TodosForPerson(bob) = %d todos, want 2", len(got))
	}

	if _, ok := ix.Entry(a); !ok {
		t.Error("Entry(a) not found")
	}
	if _, ok := ix.Entry(models.EntryID{Year: 2030, Stamp: "2030-01-01_00-00-00"}); ok {
		t.Error("Entry for unknown id should miss")
	}
}

func TestBuild_SkipsUnreadableEntry(t *testing.T) {
	store := testutil.TestStore(t)
	good := testutil.SeedEntry(t, store, "2025-03-01_09-00-00", "readable\n[] still here\n")

	// A log.txt that is a directory passes the walker's stat but fails
	// the read. The scan must carry on past it.
	badDir := filepath.Join(store.Root(), "log-2025", "2025-03-02_10-00-00", "log.txt")
	if err := os.MkdirAll(badDir, 0o755); err != nil {
		t.Fatal(err)
	}

	ix := Build(store, nil, testutil.DiscardLogger())

	entries := ix.Entries()
	if len(entries) != 1 || entries[0].ID != good {
		t.Fatalf("entries = %v, want just %v", entries, good)
	}
	if len(ix.Todos()) != 1 {
		t.Errorf("todos = %d, want 1", len(ix.Todos()))
	}
	if _, ok := ix.Entry(models.EntryID{Year: 2025, Stamp: "2025-03-02_10-00-00"}); ok {
		t.Error("unreadable entry surfaced in the index")
	}
}

func TestBuild_Idempotent(t *testing.T) {
	store := testutil.TestStore(t)
	testutil.SeedEntry(t, store, "2025-03-01_09-00-00", "#p one\n[] a\n")
	testutil.SeedEntry(t, store, "2025-03-02_09-00-00", "@q two\n[x] b\n")

	first := Build(store, nil, testutil.DiscardLogger())
	second := Build(store, nil, testutil.DiscardLogger())

	if !reflect.DeepEqual(first.Entries(), second.Entries()) {
		t.Error("two builds from identical disk state differ")
	}
}

func TestBuild_ReusesUnchangedEntries(t *testing.T) {
	store := testutil.TestStore(t)
	id := testutil.SeedEntry(t, store, "2025-03-01_09-00-00", "stable content\n")

	prev := Build(store, nil, testutil.DiscardLogger())
	prevEntry, _ := prev.Entry(id)

	next := Build(store, prev, testutil.DiscardLogger())
	nextEntry, _ := next.Entry(id)

	if prevEntry != nextEntry {
		t.Error("unchanged entry was re-parsed instead of reused")
	}
}

func TestBuild_ReparsesAfterApplyToggle(t *testing.T) {
	store := testutil.TestStore(t)
	id := testutil.SeedEntry(t, store, "2025-03-01_09-00-00", "[] task\n")

	ix := Build(store, nil, testutil.DiscardLogger())
	loc := models.Locator{Entry: id, Line: 0, Offset: 0}

	done, err := store.ToggleTodo(loc)
	if err != nil {
		t.Fatal(err)
	}
	if !ix.ApplyToggle(loc, done) {
		t.Fatal("ApplyToggle found no matching todo")
	}
	if !ix.Todos()[0].Done {
		t.Error("cached todo not flipped")
	}

	// The checksum was dropped, so the rebuild re-reads the file and
	// still agrees with the patched cache.
	rebuilt := Build(store, ix, testutil.DiscardLogger())
	if !rebuilt.Todos()[0].Done {
		t.Error("rebuild lost the toggled state")
	}
}

func TestApplyToggle_UnknownLocator(t *testing.T) {
	store := testutil.TestStore(t)
	testutil.SeedEntry(t, store, "2025-03-01_09-00-00", "[] task\n")
	ix := Build(store, nil, testutil.DiscardLogger())

	miss := models.Locator{Entry: models.EntryID{Year: 2025, Stamp: "2025-03-01_09-00-00"}, Line: 5, Offset: 0}
	if ix.ApplyToggle(miss, true) {
		t.Error("ApplyToggle matched a locator that points at no todo")
	}
}

func TestBuild_RefreshesAttachmentsOnReuse(t *testing.T) {
	store := testutil.TestStore(t)
	id := testutil.SeedEntry(t, store, "2025-03-01_09-00-00", "content\n")

	prev := Build(store, nil, testutil.DiscardLogger())

	// Drop a new sibling file next to log.txt without touching it.
	writeAttachment(t, store, id, "photo.jpg")

	next := Build(store, prev, testutil.DiscardLogger())
	e, _ := next.Entry(id)
	if len(e.Attachments) != 1 || e.Attachments[0] != "photo.jpg" {
		t.Errorf("attachments = %v, want [photo.jpg]", e.Attachments)
	}
}
