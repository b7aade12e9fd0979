// Package tui implements the menu-driven terminal interface: entry
// capture with tag autocomplete, the todo and log list views with their
// filter panels, and the reference-list screens. All mutation goes
// through the store; the UI only ever holds a rebuildable index.
package tui

import (
	"fmt"
	"log/slog"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/starford/daylog/internal/index"
	"github.com/starford/daylog/internal/models"
	"github.com/starford/daylog/internal/storage"
)

// Deps carries the collaborators the UI needs. The reference lists are
// loaded once per session and passed in explicitly.
type Deps struct {
	Store    *storage.Store
	Index    *index.Index
	Projects []models.Project
	People   []models.Person
	Statuses []string // allowed project statuses, in display order
	Groups   []string // allowed project groups, in display order
	Logger   *slog.Logger
}

// StoreChangedMsg tells the UI that files under the store root changed
// outside its own actions. The UI rebuilds the index in response.
type StoreChangedMsg struct{}

type screen int

const (
	screenMenu screen = iota
	screenCompose
	screenTodos
	screenLogs
	screenViewLog
	screenProjects
	screenProjectDetails
	screenProjectEdit
	screenPeople
	screenPersonDetails
)

type appModel struct {
	deps     Deps
	ix       *index.Index
	projects []models.Project
	people   []models.Person

	width  int
	height int

	screen      screen
	status      string
	statusIsErr bool

	menu       menuState
	compose    composeState
	todos      todosState
	logs       logsState
	projectsUI projectsState
	peopleUI   peopleState
}

// NewProgram builds the bubbletea program for the application.
func NewProgram(d Deps) *tea.Program {
	return tea.NewProgram(newAppModel(d), tea.WithAltScreen())
}

func newAppModel(d Deps) appModel {
	m := appModel{
		deps:     d,
		ix:       d.Index,
		projects: d.Projects,
		people:   d.People,
		width:    80,
		height:   24,
		screen:   screenMenu,
	}
	m.compose = newComposeState()
	m.logs = newLogsState()
	m.todos.recompute(&m)
	m.logs.recompute(&m)
	return m
}

func (m appModel) Init() tea.Cmd { return nil }

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.compose.resize(msg.Width, msg.Height)
		m.logs.resize(msg.Width, msg.Height)
		return m, nil

	case StoreChangedMsg:
		m.refreshFromDisk()
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		m.status = ""
		m.statusIsErr = false
	}

	switch m.screen {
	case screenMenu:
		return m.updateMenu(msg)
	case screenCompose:
		return m.updateCompose(msg)
	case screenTodos:
		return m.updateTodos(msg)
	case screenLogs:
		return m.updateLogs(msg)
	case screenViewLog:
		return m.updateViewLog(msg)
	case screenProjects:
		return m.updateProjects(msg)
	case screenProjectDetails:
		return m.updateProjectDetails(msg)
	case screenProjectEdit:
		return m.updateProjectEdit(msg)
	case screenPeople:
		return m.updatePeople(msg)
	case screenPersonDetails:
		return m.updatePersonDetails(msg)
	default:
		return m, nil
	}
}

func (m appModel) View() string {
	var body string
	switch m.screen {
	case screenMenu:
		body = m.viewMenu()
	case screenCompose:
		body = m.viewCompose()
	case screenTodos:
		body = m.viewTodos()
	case screenLogs:
		body = m.viewLogs()
	case screenViewLog:
		body = m.viewViewLog()
	case screenProjects:
		body = m.viewProjects()
	case screenProjectDetails:
		body = m.viewProjectDetails()
	case screenProjectEdit:
		body = m.viewProjectEdit()
	case screenPeople:
		body = m.viewPeople()
	case screenPersonDetails:
		body = m.viewPersonDetails()
	}

	header := titleStyle.Render("daylog") + faintStyle.Render("  "+m.screenTitle())
	parts := []string{header, body}
	if m.status != "" {
		style := statusStyle
		if m.statusIsErr {
			style = errorStyle
		}
		parts = append(parts, style.Render(m.status))
	}
	parts = append(parts, faintStyle.Render(m.footerHints()))
	return strings.Join(parts, "\n\n")
}

func (m appModel) screenTitle() string {
	switch m.screen {
	case screenMenu:
		return "menu"
	case screenCompose:
		return "new log entry"
	case screenTodos:
		return "todos"
	case screenLogs:
		return "log list"
	case screenViewLog:
		return "log entry"
	case screenProjects, screenProjectDetails, screenProjectEdit:
		return "projects"
	case screenPeople, screenPersonDetails:
		return "people"
	default:
		return ""
	}
}

func (m appModel) footerHints() string {
	switch m.screen {
	case screenMenu:
		return "↑/↓: move  enter: select  esc: quit"
	case screenCompose:
		return "ctrl+s: save  ctrl+a: attach  tab: complete  esc: back"
	case screenTodos:
		return "space/enter: toggle  o: open entry  c: completed  f: filter  esc: back"
	case screenLogs:
		return "enter: view  f: filter  esc: back"
	case screenViewLog:
		return "↑/↓: scroll  esc: back"
	case screenProjects:
		return "enter: details  n: new  e: edit  esc: back"
	case screenProjectDetails:
		return "e: edit  esc: back"
	case screenProjectEdit:
		return "tab: next field  ←/→: cycle value  ctrl+s: save  esc: cancel"
	case screenPeople:
		return "enter: details  esc: back"
	case screenPersonDetails:
		return "esc: back"
	default:
		return ""
	}
}

// refreshFromDisk rebuilds the index and reloads the reference lists
// after an external change. Unchanged entries are reused by checksum.
func (m *appModel) refreshFromDisk() {
	m.ix = index.Build(m.deps.Store, m.ix, m.deps.Logger)
	if projects, err := m.deps.Store.LoadProjects(); err == nil {
		m.projects = projects
	}
	if people, err := m.deps.Store.LoadPeople(); err == nil {
		m.people = people
	}
	m.todos.recompute(m)
	m.logs.recompute(m)
}

func (m *appModel) setStatus(format string, args ...any) {
	m.status = fmt.Sprintf(format, args...)
	m.statusIsErr = false
}

func (m *appModel) setError(err error) {
	m.status = err.Error()
	m.statusIsErr = true
}

func (m *appModel) projectNames() []string {
	out := make([]string, 0, len(m.projects))
	for _, p := range m.projects {
		out = append(out, p.Name)
	}
	return out
}

func (m *appModel) peopleNames() []string {
	out := make([]string, 0, len(m.people))
	for _, p := range m.people {
		out = append(out, p.Name)
	}
	return out
}

// knownProjects is the filter-panel vocabulary: reference list names in
// file order, then tags seen in the store that the list does not know.
// Unknown tags stay filterable; the list only ever suggests.
func (m *appModel) knownProjects() []string {
	return mergeKnown(m.projectNames(), m.ix.Entries(), func(e *models.LogEntry) []string { return e.Projects })
}

func (m *appModel) knownPeople() []string {
	return mergeKnown(m.peopleNames(), m.ix.Entries(), func(e *models.LogEntry) []string { return e.People })
}

func mergeKnown(names []string, entries []*models.LogEntry, tags func(*models.LogEntry) []string) []string {
	seen := make(map[string]bool, len(names))
	out := make([]string, 0, len(names))
	for _, n := range names {
		if !seen[n] {
			seen[n] = true
			out = append(out, n)
		}
	}
	for _, e := range entries {
		for _, t := range tags(e) {
			if !seen[t] {
				seen[t] = true
				out = append(out, t)
			}
		}
	}
	return out
}
