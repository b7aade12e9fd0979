// Package models defines the domain types for daylog.
package models

import (
	"fmt"
	"time"
)

// StampLayout is the timestamp layout used for entry directory names.
// It sorts chronologically as a plain string.
const StampLayout = "2006-01-02_15-04-05"

// Project is a reference-list record loadable from projects.yml.
type Project struct {
	Name        string `yaml:"name"`
	Jira        string `yaml:"jira,omitempty"`
	Description string `yaml:"description,omitempty"`
	Status      string `yaml:"status,omitempty"`
	Group       string `yaml:"group,omitempty"`
}

// Person is a reference-list record loadable from people.yml.
type Person struct {
	Name     string `yaml:"name"`
	FullName string `yaml:"full_name,omitempty"`
	Email    string `yaml:"email,omitempty"`
	Tel      string `yaml:"tel,omitempty"`
	Company  string `yaml:"company,omitempty"`
}

// EntryID identifies a log entry by its storage location: the year
// directory plus the timestamp directory name. It is unique and
// immutable for the lifetime of the entry.
type EntryID struct {
	Year  int
	Stamp string
}

// NewEntryID derives an identity from a creation time.
func NewEntryID(t time.Time) EntryID {
	return EntryID{Year: t.Year(), Stamp: t.Format(StampLayout)}
}

// Time parses the timestamp component. The zero time is returned when
// the directory name does not match the expected layout.
func (id EntryID) Time() time.Time {
	t, err := time.ParseInLocation(StampLayout, id.Stamp, time.Local)
	if err != nil {
		return time.Time{}
	}
	return t
}

func (id EntryID) String() string {
	return fmt.Sprintf("log-%d/%s", id.Year, id.Stamp)
}

// IsZero reports whether the identity is unset.
func (id EntryID) IsZero() bool {
	return id.Year == 0 && id.Stamp == ""
}

// Locator pins a todo marker to an exact position on disk: the owning
// entry, the zero-based line index within log.txt, and the byte offset
// of the opening bracket within that line. The mutator re-verifies the
// marker at this position before touching anything.
type Locator struct {
	Entry  EntryID
	Line   int
	Offset int
}

// Todo is an actionable line extracted from a log entry. The tag slices
// are value copies taken from the parent entry at parse time, never
// shared references.
type Todo struct {
	Text     string
	Done     bool
	Projects []string
	People   []string
	Loc      Locator
}

// LogEntry is one saved log: free text plus the tags, todos, and
// attachments derived from it. Entries are immutable once saved except
// for todo done-state toggles.
type LogEntry struct {
	ID          EntryID
	Path        string // absolute path to log.txt
	Content     string
	Projects    []string
	People      []string
	Todos       []Todo
	Attachments []string // sibling file names, sorted
}

// FirstLine returns the first line of the entry for list previews.
func (e *LogEntry) FirstLine() string {
	for i := 0; i < len(e.Content); i++ {
		if e.Content[i] == '\n' {
			return e.Content[:i]
		}
	}
	return e.Content
}
