package parser

import (
	"slices"
	"strings"

	"github.com/starford/daylog/internal/models"
)

// ParseEntry builds a LogEntry from raw log.txt bytes plus the identity
// and directory metadata supplied by the store. It never fails: source
// files are hand-edited and unrecognized constructs are simply omitted.
//
// Tag sets are the union across all lines, in order of first
// appearance. Every todo receives value copies of the full entry tag
// sets and a locator recording its line index and marker byte offset.
func ParseEntry(id models.EntryID, path string, raw []byte, attachments []string) *models.LogEntry {
	content := string(raw)
	lines := strings.Split(content, "\n")

	var projects, people []string
	for _, line := range lines {
		for _, t := range ScanTags(line) {
			switch t.Kind {
			case TagProject:
				projects = appendUnique(projects, t.Name)
			case TagPerson:
				people = appendUnique(people, t.Name)
			}
		}
	}

	var todos []models.Todo
	for i, line := range lines {
		tl, ok := ParseTodoLine(line)
		if !ok {
			continue
		}
		todos = append(todos, models.Todo{
			Text:     tl.Text,
			Done:     tl.Done,
			Projects: slices.Clone(projects),
			People:   slices.Clone(people),
			Loc: models.Locator{
				Entry:  id,
				Line:   i,
				Offset: tl.Offset,
			},
		})
	}

	return &models.LogEntry{
		ID:          id,
		Path:        path,
		Content:     content,
		Projects:    projects,
		People:      people,
		Todos:       todos,
		Attachments: attachments,
	}
}

func appendUnique(list []string, s string) []string {
	if slices.Contains(list, s) {
		return list
	}
	return append(list, s)
}
