package storage

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/starford/daylog/internal/apperr"
	"github.com/starford/daylog/internal/models"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestOpen_CreatesRoot(t *testing.T) {
	root := filepath.Join(t.TempDir(), "nested", "daylog")
	s, err := Open(root)
	if err != nil {
		t.Fatal(err)
	}
	info, err := os.Stat(s.Root())
	if err != nil || !info.IsDir() {
		t.Fatalf("root %s not created: %v", s.Root(), err)
	}
	if !filepath.IsAbs(s.Root()) {
		t.Errorf("root %q is not absolute", s.Root())
	}
}

func TestStore_Paths(t *testing.T) {
	s := testStore(t)
	id := models.EntryID{Year: 2025, Stamp: "2025-03-01_09-15-00"}

	want := filepath.Join(s.Root(), "log-2025", "2025-03-01_09-15-00", "log.txt")
	if got := s.LogPath(id); got != want {
		t.Errorf("LogPath = %q, want %q", got, want)
	}
	if got := s.ProjectsPath(); got != filepath.Join(s.Root(), "projects.yml") {
		t.Errorf("ProjectsPath = %q", got)
	}
	if got := s.PeoplePath(); got != filepath.Join(s.Root(), "people.yml") {
		t.Errorf("PeoplePath = %q", got)
	}
}

func TestReadEntry_Missing(t *testing.T) {
	s := testStore(t)
	_, _, err := s.ReadEntry(models.EntryID{Year: 2025, Stamp: "2025-01-01_00-00-00"})
	if !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestReadEntry_AttachmentsSortedAndFiltered(t *testing.T) {
	s := testStore(t)
	id := models.EntryID{Year: 2025, Stamp: "2025-03-01_09-15-00"}
	dir := s.EntryDir(id)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	files := map[string]string{
		"log.txt":     "hello",
		"zeta.png":    "z",
		"alpha.pdf":   "a",
		".hidden":     "h",
		".daylog-tmp-123": "t",
	}
	for name, body := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "subdir"), 0o755); err != nil {
		t.Fatal(err)
	}

	data, attachments, err := s.ReadEntry(id)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "hello" {
		t.Errorf("data = %q", data)
	}
	if want := []string{"alpha.pdf", "zeta.png"}; !reflect.DeepEqual(attachments, want) {
		t.Errorf("attachments = %v, want %v", attachments, want)
	}
}

func TestWriteFileAtomic_NoTempLeftovers(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.txt")
	if err := writeFileAtomic(path, []byte("first")); err != nil {
		t.Fatal(err)
	}
	if err := writeFileAtomic(path, []byte("second")); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "second" {
		t.Errorf("content = %q", data)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), tmpPrefix) {
			t.Errorf("temp file %s left behind", e.Name())
		}
	}
}
