package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

var menuItems = []string{
	"New log entry",
	"Todo list",
	"Log list",
	"Projects",
	"People",
}

type menuState struct {
	selected int
}

func (m appModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "up", "k":
		if m.menu.selected > 0 {
			m.menu.selected--
		}
	case "down", "j":
		if m.menu.selected < len(menuItems)-1 {
			m.menu.selected++
		}
	case "1", "2", "3", "4", "5":
		m.menu.selected = int(key.String()[0] - '1')
		return m.openMenuItem()
	case "enter":
		return m.openMenuItem()
	case "esc", "q":
		return m, tea.Quit
	}
	return m, nil
}

func (m appModel) openMenuItem() (tea.Model, tea.Cmd) {
	switch m.menu.selected {
	case 0:
		m.compose = newComposeState()
		m.compose.resize(m.width, m.height)
		m.screen = screenCompose
		return m, m.compose.ta.Focus()
	case 1:
		m.todos.recompute(&m)
		m.todos.cursor = 0
		m.screen = screenTodos
	case 2:
		m.logs.recompute(&m)
		m.logs.cursor = 0
		m.screen = screenLogs
	case 3:
		m.projectsUI.cursor = 0
		m.screen = screenProjects
	case 4:
		m.peopleUI.cursor = 0
		m.screen = screenPeople
	}
	return m, nil
}

func (m appModel) viewMenu() string {
	var b strings.Builder
	for i, item := range menuItems {
		line := "  " + item
		if i == m.menu.selected {
			line = selectedStyle.Render("> " + item)
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.String()
}
