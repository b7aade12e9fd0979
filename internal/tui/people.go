package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

type peopleState struct {
	cursor int
	detail int
}

func (m appModel) updatePeople(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "up", "k":
		if m.peopleUI.cursor > 0 {
			m.peopleUI.cursor--
		}
	case "down", "j":
		if m.peopleUI.cursor < len(m.people)-1 {
			m.peopleUI.cursor++
		}
	case "enter":
		if len(m.people) > 0 {
			m.peopleUI.detail = m.peopleUI.cursor
			m.screen = screenPersonDetails
		}
	case "esc":
		m.screen = screenMenu
	}
	return m, nil
}

func (m appModel) updatePersonDetails(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc", "q":
			m.screen = screenPeople
		}
	}
	return m, nil
}

func (m appModel) viewPeople() string {
	if len(m.people) == 0 {
		return faintStyle.Render("no people in people.yml yet")
	}
	var b strings.Builder
	for i, p := range m.people {
		line := fmt.Sprintf("@%-16s %s", p.Name, p.FullName)
		if i == m.peopleUI.cursor {
			line = selectedStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.String()
}

func (m appModel) viewPersonDetails() string {
	i := m.peopleUI.detail
	if i < 0 || i >= len(m.people) {
		return ""
	}
	p := m.people[i]
	todos := m.ix.TodosForPerson(p.Name)
	open := 0
	for _, t := range todos {
		if !t.Done {
			open++
		}
	}

	var b strings.Builder
	b.WriteString(personTagStyle.Render("@"+p.Name) + "\n\n")
	if p.FullName != "" {
		b.WriteString("full name: " + p.FullName + "\n")
	}
	if p.Email != "" {
		b.WriteString("email:     " + p.Email + "\n")
	}
	if p.Tel != "" {
		b.WriteString("tel:       " + p.Tel + "\n")
	}
	if p.Company != "" {
		b.WriteString("company:   " + p.Company + "\n")
	}
	b.WriteString(fmt.Sprintf("todos:     %d open / %d total\n", open, len(todos)))
	return b.String()
}
