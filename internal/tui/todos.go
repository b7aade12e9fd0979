package tui

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/starford/daylog/internal/apperr"
	"github.com/starford/daylog/internal/filter"
	"github.com/starford/daylog/internal/index"
	"github.com/starford/daylog/internal/models"
)

type todosState struct {
	cursor  int
	visible []*models.Todo
	f       filter.TodoFilter

	panelOpen bool
	picker    tagPicker
}

// recompute re-derives the visible todo list from the current index and
// filter configuration. Todos are shown newest entry first; the
// reversal happens here, at the view boundary.
func (s *todosState) recompute(m *appModel) {
	s.picker.setCandidates(m.knownProjects(), m.knownPeople())
	s.f.Projects = s.picker.selectedProjects()
	s.f.People = s.picker.selectedPeople()
	s.visible = filter.Todos(todosNewestFirst(m.ix), s.f)
	if s.cursor >= len(s.visible) {
		s.cursor = len(s.visible) - 1
	}
	if s.cursor < 0 {
		s.cursor = 0
	}
}

func todosNewestFirst(ix *index.Index) []*models.Todo {
	var out []*models.Todo
	for _, e := range ix.EntriesNewestFirst() {
		for i := range e.Todos {
			out = append(out, &e.Todos[i])
		}
	}
	return out
}

func (m appModel) updateTodos(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.todos.panelOpen {
		switch key.String() {
		case "up", "k":
			m.todos.picker.up()
		case "down", "j":
			m.todos.picker.down()
		case " ":
			m.todos.picker.toggle()
			m.todos.recompute(&m)
		case "c":
			m.todos.f.ShowCompleted = !m.todos.f.ShowCompleted
			m.todos.recompute(&m)
		case "enter", "esc", "f":
			m.todos.panelOpen = false
		}
		return m, nil
	}

	switch key.String() {
	case "up", "k":
		if m.todos.cursor > 0 {
			m.todos.cursor--
		}
	case "down", "j":
		if m.todos.cursor < len(m.todos.visible)-1 {
			m.todos.cursor++
		}
	case " ", "enter":
		return m.toggleSelectedTodo()
	case "o":
		if t := m.selectedTodo(); t != nil {
			if e, ok := m.ix.Entry(t.Loc.Entry); ok {
				m.logs.openEntry(e, m.width, m.height)
				m.screen = screenViewLog
			}
		}
	case "c":
		m.todos.f.ShowCompleted = !m.todos.f.ShowCompleted
		m.todos.recompute(&m)
	case "f":
		m.todos.panelOpen = true
	case "esc":
		m.screen = screenMenu
	}
	return m, nil
}

func (m appModel) selectedTodo() *models.Todo {
	if m.todos.cursor < 0 || m.todos.cursor >= len(m.todos.visible) {
		return nil
	}
	return m.todos.visible[m.todos.cursor]
}

func (m appModel) toggleSelectedTodo() (tea.Model, tea.Cmd) {
	t := m.selectedTodo()
	if t == nil {
		return m, nil
	}
	nowDone, err := m.deps.Store.ToggleTodo(t.Loc)
	if err != nil {
		if errors.Is(err, apperr.ErrStaleLocator) {
			m.setError(apperr.ErrStaleLocator)
			m.refreshFromDisk()
			return m, nil
		}
		m.setError(err)
		return m, nil
	}
	m.ix.ApplyToggle(t.Loc, nowDone)
	m.todos.recompute(&m)
	return m, nil
}

func (m appModel) viewTodos() string {
	if m.todos.panelOpen {
		head := "c: show completed " + onOff(m.todos.f.ShowCompleted)
		return panelStyle.Render(head + "\n\n" + m.todos.picker.view(true))
	}

	if len(m.todos.visible) == 0 {
		return faintStyle.Render("no todos match the current filter")
	}

	var b strings.Builder
	for i, t := range m.todos.visible {
		marker := "[ ]"
		line := fmt.Sprintf("%s %s", marker, t.Text)
		if t.Done {
			line = doneStyle.Render(fmt.Sprintf("[x] %s", t.Text))
		}
		if i == m.todos.cursor {
			line = selectedStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString(faintStyle.Render("  " + t.Loc.Entry.Stamp))
		b.WriteByte('\n')
	}
	return b.String()
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}
