// Package filter evaluates view predicates over indexed todos and
// entries. Filtering is a pure function of the input list and the
// configuration: it never reorders, it only drops.
package filter

import (
	"slices"
	"time"

	"github.com/starford/daylog/internal/models"
)

// TodoFilter selects todos for the todo-list view. Empty selection
// sets mean "unfiltered on that dimension".
type TodoFilter struct {
	ShowCompleted bool
	Projects      []string
	People        []string
}

// Matches reports whether a single todo passes the filter.
func (f TodoFilter) Matches(t *models.Todo) bool {
	if !f.ShowCompleted && t.Done {
		return false
	}
	if len(f.Projects) > 0 && !intersects(t.Projects, f.Projects) {
		return false
	}
	if len(f.People) > 0 && !intersects(t.People, f.People) {
		return false
	}
	return true
}

// Todos returns the order-preserving subsequence of in that passes f.
func Todos(in []*models.Todo, f TodoFilter) []*models.Todo {
	var out []*models.Todo
	for _, t := range in {
		if f.Matches(t) {
			out = append(out, t)
		}
	}
	return out
}

// EntryFilter selects entries for the log-list view. From and To bound
// the entry date inclusively; nil means unbounded.
type EntryFilter struct {
	Projects []string
	People   []string
	From     *time.Time
	To       *time.Time
}

// Matches reports whether a single entry passes the filter.
func (f EntryFilter) Matches(e *models.LogEntry) bool {
	if len(f.Projects) > 0 && !intersects(e.Projects, f.Projects) {
		return false
	}
	if len(f.People) > 0 && !intersects(e.People, f.People) {
		return false
	}
	if f.From != nil || f.To != nil {
		day := dateOnly(e.ID.Time())
		if f.From != nil && day.Before(dateOnly(*f.From)) {
			return false
		}
		if f.To != nil && day.After(dateOnly(*f.To)) {
			return false
		}
	}
	return true
}

// Entries returns the order-preserving subsequence of in that passes f.
func Entries(in []*models.LogEntry, f EntryFilter) []*models.LogEntry {
	var out []*models.LogEntry
	for _, e := range in {
		if f.Matches(e) {
			out = append(out, e)
		}
	}
	return out
}

func intersects(tags, selected []string) bool {
	for _, t := range tags {
		if slices.Contains(selected, t) {
			return true
		}
	}
	return false
}

// dateOnly normalizes to a location-free calendar date so a local
// entry stamp and a parsed filter bound compare on the day alone.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
