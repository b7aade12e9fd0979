package tui

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/starford/daylog/internal/models"
)

type projectsState struct {
	cursor int
	detail int
	form   projectForm
}

// Form fields, in focus order.
const (
	projFieldName = iota
	projFieldJira
	projFieldDesc
	projFieldStatus
	projFieldGroup
	projFieldCount
)

type projectForm struct {
	editing   int // index into the project list, -1 when creating
	name      textinput.Model
	jira      textinput.Model
	desc      textinput.Model
	statusIdx int
	groupIdx  int // 0 = no group, otherwise groups[groupIdx-1]
	focus     int
}

func newProjectForm(statuses, groups []string, editing int, p models.Project) projectForm {
	name := textinput.New()
	name.Prompt = "name>        "
	name.SetValue(p.Name)

	jira := textinput.New()
	jira.Prompt = "jira>        "
	jira.SetValue(p.Jira)

	desc := textinput.New()
	desc.Prompt = "description> "
	desc.SetValue(p.Description)

	f := projectForm{editing: editing, name: name, jira: jira, desc: desc}
	if i := slices.Index(statuses, p.Status); i >= 0 {
		f.statusIdx = i
	}
	if i := slices.Index(groups, p.Group); i >= 0 {
		f.groupIdx = i + 1
	}
	return f
}

func (m appModel) updateProjects(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "up", "k":
		if m.projectsUI.cursor > 0 {
			m.projectsUI.cursor--
		}
	case "down", "j":
		if m.projectsUI.cursor < len(m.projects)-1 {
			m.projectsUI.cursor++
		}
	case "enter":
		if len(m.projects) > 0 {
			m.projectsUI.detail = m.projectsUI.cursor
			m.screen = screenProjectDetails
		}
	case "n":
		return m.openProjectForm(-1, models.Project{})
	case "e":
		if len(m.projects) > 0 {
			i := m.projectsUI.cursor
			return m.openProjectForm(i, m.projects[i])
		}
	case "esc":
		m.screen = screenMenu
	}
	return m, nil
}

func (m appModel) openProjectForm(editing int, p models.Project) (tea.Model, tea.Cmd) {
	m.projectsUI.form = newProjectForm(m.deps.Statuses, m.deps.Groups, editing, p)
	m.screen = screenProjectEdit
	return m, m.projectsUI.form.name.Focus()
}

func (m appModel) updateProjectDetails(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "e":
		i := m.projectsUI.detail
		if i >= 0 && i < len(m.projects) {
			return m.openProjectForm(i, m.projects[i])
		}
	case "esc", "q":
		m.screen = screenProjects
	}
	return m, nil
}

func (m appModel) updateProjectEdit(msg tea.Msg) (tea.Model, tea.Cmd) {
	f := &m.projectsUI.form

	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc":
			m.screen = screenProjects
			return m, nil
		case "ctrl+s":
			return m.saveProjectForm()
		case "tab", "down":
			f.focus = (f.focus + 1) % projFieldCount
			return m, m.refocusProjectForm()
		case "shift+tab", "up":
			f.focus = (f.focus + projFieldCount - 1) % projFieldCount
			return m, m.refocusProjectForm()
		case "left", "right":
			delta := 1
			if key.String() == "left" {
				delta = -1
			}
			switch f.focus {
			case projFieldStatus:
				n := len(m.deps.Statuses)
				if n > 0 {
					f.statusIdx = (f.statusIdx + n + delta) % n
				}
				return m, nil
			case projFieldGroup:
				n := len(m.deps.Groups) + 1
				f.groupIdx = (f.groupIdx + n + delta) % n
				return m, nil
			}
		}
	}

	var cmd tea.Cmd
	switch f.focus {
	case projFieldName:
		f.name, cmd = f.name.Update(msg)
	case projFieldJira:
		f.jira, cmd = f.jira.Update(msg)
	case projFieldDesc:
		f.desc, cmd = f.desc.Update(msg)
	}
	return m, cmd
}

func (m *appModel) refocusProjectForm() tea.Cmd {
	f := &m.projectsUI.form
	f.name.Blur()
	f.jira.Blur()
	f.desc.Blur()
	switch f.focus {
	case projFieldName:
		return f.name.Focus()
	case projFieldJira:
		return f.jira.Focus()
	case projFieldDesc:
		return f.desc.Focus()
	default:
		return nil
	}
}

func (m appModel) saveProjectForm() (tea.Model, tea.Cmd) {
	f := &m.projectsUI.form
	p := models.Project{
		Name:        strings.TrimSpace(f.name.Value()),
		Jira:        strings.TrimSpace(f.jira.Value()),
		Description: strings.TrimSpace(f.desc.Value()),
		Status:      statusAt(m.deps.Statuses, f.statusIdx),
		Group:       groupAt(m.deps.Groups, f.groupIdx),
	}

	if err := validation.Validate(p.Name,
		validation.Required.Error("project name is required"),
	); err != nil {
		m.setError(err)
		return m, nil
	}
	for i, existing := range m.projects {
		if existing.Name == p.Name && i != f.editing {
			m.setStatus("a project named %q already exists", p.Name)
			m.statusIsErr = true
			return m, nil
		}
	}

	list := slices.Clone(m.projects)
	if f.editing >= 0 {
		list[f.editing] = p
	} else {
		list = append(list, p)
	}
	if err := m.deps.Store.SaveProjects(list); err != nil {
		m.setError(err)
		return m, nil
	}
	m.projects = list
	m.screen = screenProjects
	m.setStatus("saved project %s", p.Name)
	return m, nil
}

func statusAt(statuses []string, idx int) string {
	if idx >= 0 && idx < len(statuses) {
		return statuses[idx]
	}
	return ""
}

func groupAt(groups []string, idx int) string {
	if idx >= 1 && idx-1 < len(groups) {
		return groups[idx-1]
	}
	return ""
}

func (m appModel) viewProjects() string {
	if len(m.projects) == 0 {
		return faintStyle.Render("no projects yet, press n to add one")
	}
	var b strings.Builder
	for i, p := range m.projects {
		line := fmt.Sprintf("#%-20s %s", p.Name, p.Status)
		if p.Group != "" {
			line += faintStyle.Render("  [" + p.Group + "]")
		}
		if i == m.projectsUI.cursor {
			line = selectedStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.String()
}

func (m appModel) viewProjectDetails() string {
	i := m.projectsUI.detail
	if i < 0 || i >= len(m.projects) {
		return ""
	}
	p := m.projects[i]
	todos := m.ix.TodosForProject(p.Name)
	open := 0
	for _, t := range todos {
		if !t.Done {
			open++
		}
	}

	var b strings.Builder
	b.WriteString(projectTagStyle.Render("#"+p.Name) + "\n\n")
	b.WriteString("status:      " + p.Status + "\n")
	if p.Group != "" {
		b.WriteString("group:       " + p.Group + "\n")
	}
	if p.Jira != "" {
		b.WriteString("jira:        " + p.Jira + "\n")
	}
	if p.Description != "" {
		b.WriteString("description: " + p.Description + "\n")
	}
	b.WriteString(fmt.Sprintf("todos:       %d open / %d total\n", open, len(todos)))
	return b.String()
}

func (m appModel) viewProjectEdit() string {
	f := &m.projectsUI.form

	status := statusAt(m.deps.Statuses, f.statusIdx)
	group := groupAt(m.deps.Groups, f.groupIdx)
	if group == "" {
		group = "(none)"
	}
	statusLine := "status>      " + status
	groupLine := "group>       " + group
	if f.focus == projFieldStatus {
		statusLine = selectedStyle.Render(statusLine)
	}
	if f.focus == projFieldGroup {
		groupLine = selectedStyle.Render(groupLine)
	}

	lines := []string{
		f.name.View(),
		f.jira.View(),
		f.desc.View(),
		statusLine,
		groupLine,
	}
	return strings.Join(lines, "\n")
}
