package storage

import (
	"bytes"
	"errors"
	"os"
	"testing"

	"github.com/starford/daylog/internal/apperr"
	"github.com/starford/daylog/internal/models"
)

func TestToggleTodo_FlipsOnlyMarkerBytes(t *testing.T) {
	s := testStore(t)
	body := []byte("morning notes\n  [] water plants #home\nmore text\n")
	id := models.EntryID{Year: 2025, Stamp: "2025-03-01_09-00-00"}
	if err := s.AppendEntry(id, body, nil); err != nil {
		t.Fatal(err)
	}
	loc := models.Locator{Entry: id, Line: 1, Offset: 2}

	done, err := s.ToggleTodo(loc)
	if err != nil {
		t.Fatal(err)
	}
	if !done {
		t.Error("toggle of open todo should report done")
	}
	got, err := os.ReadFile(s.LogPath(id))
	if err != nil {
		t.Fatal(err)
	}
	want := []byte("morning notes\n  [x] water plants #home\nmore text\n")
	if !bytes.Equal(got, want) {
		t.Errorf("file = %q, want %q", got, want)
	}
}

func TestToggleTodo_DoubleToggleRestoresBytes(t *testing.T) {
	s := testStore(t)
	body := []byte("[] one\n[x] two\n")
	id := models.EntryID{Year: 2025, Stamp: "2025-03-01_09-00-00"}
	if err := s.AppendEntry(id, body, nil); err != nil {
		t.Fatal(err)
	}
	loc := models.Locator{Entry: id, Line: 0, Offset: 0}

	if _, err := s.ToggleTodo(loc); err != nil {
		t.Fatal(err)
	}
	done, err := s.ToggleTodo(loc)
	if err != nil {
		t.Fatal(err)
	}
	if done {
		t.Error("second toggle should reopen the todo")
	}
	got, _ := os.ReadFile(s.LogPath(id))
	if !bytes.Equal(got, body) {
		t.Errorf("file after double toggle = %q, want original %q", got, body)
	}
}

func TestToggleTodo_UppercaseMarkerOpens(t *testing.T) {
	s := testStore(t)
	id := models.EntryID{Year: 2025, Stamp: "2025-03-01_09-00-00"}
	if err := s.AppendEntry(id, []byte("[X] shout"), nil); err != nil {
		t.Fatal(err)
	}
	done, err := s.ToggleTodo(models.Locator{Entry: id, Line: 0, Offset: 0})
	if err != nil {
		t.Fatal(err)
	}
	if done {
		t.Error("[X] should toggle to open")
	}
	got, _ := os.ReadFile(s.LogPath(id))
	if string(got) != "[] shout" {
		t.Errorf("file = %q", got)
	}
}

func TestToggleTodo_StaleLocator(t *testing.T) {
	s := testStore(t)
	id := models.EntryID{Year: 2025, Stamp: "2025-03-01_09-00-00"}
	body := []byte("[] fine\nplain line\n")
	if err := s.AppendEntry(id, body, nil); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		loc  models.Locator
	}{
		{"marker gone", models.Locator{Entry: id, Line: 1, Offset: 0}},
		{"line past end", models.Locator{Entry: id, Line: 9, Offset: 0}},
		{"offset past line end", models.Locator{Entry: id, Line: 0, Offset: 40}},
		{"missing entry", models.Locator{Entry: models.EntryID{Year: 2025, Stamp: "2025-03-02_00-00-00"}, Line: 0, Offset: 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.ToggleTodo(tt.loc)
			if !errors.Is(err, apperr.ErrStaleLocator) {
				t.Fatalf("err = %v, want ErrStaleLocator", err)
			}
			got, _ := os.ReadFile(s.LogPath(id))
			if !bytes.Equal(got, body) {
				t.Errorf("file changed on failed toggle: %q", got)
			}
		})
	}
}
