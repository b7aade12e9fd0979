package tui

import (
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/starford/daylog/internal/filter"
	"github.com/starford/daylog/internal/models"
)

const dateLayout = "2006-01-02"

// Filter panel focus targets.
const (
	logsPanelPicker = iota
	logsPanelFrom
	logsPanelTo
)

type logsState struct {
	cursor  int
	visible []*models.LogEntry
	f       filter.EntryFilter

	panelOpen  bool
	panelFocus int
	picker     tagPicker
	fromInput  textinput.Model
	toInput    textinput.Model

	viewing *models.LogEntry
	view    viewport.Model
}

func newLogsState() logsState {
	from := textinput.New()
	from.Placeholder = dateLayout
	from.Prompt = "from> "
	from.CharLimit = len(dateLayout)

	to := textinput.New()
	to.Placeholder = dateLayout
	to.Prompt = "to>   "
	to.CharLimit = len(dateLayout)

	return logsState{fromInput: from, toInput: to, view: viewport.New(80, 20)}
}

func (s *logsState) resize(w, h int) {
	vw := w - 2
	if vw < 20 {
		vw = 20
	}
	vh := h - 8
	if vh < 5 {
		vh = 5
	}
	s.view.Width = vw
	s.view.Height = vh
}

// recompute re-derives the visible entry list, newest first.
func (s *logsState) recompute(m *appModel) {
	s.picker.setCandidates(m.knownProjects(), m.knownPeople())
	s.f.Projects = s.picker.selectedProjects()
	s.f.People = s.picker.selectedPeople()
	s.f.From = parseDate(s.fromInput.Value())
	s.f.To = parseDate(s.toInput.Value())
	s.visible = filter.Entries(m.ix.EntriesNewestFirst(), s.f)
	if s.cursor >= len(s.visible) {
		s.cursor = len(s.visible) - 1
	}
	if s.cursor < 0 {
		s.cursor = 0
	}
}

func parseDate(v string) *time.Time {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil
	}
	t, err := time.ParseInLocation(dateLayout, v, time.Local)
	if err != nil {
		return nil
	}
	return &t
}

// openEntry switches the shared entry view to one entry.
func (s *logsState) openEntry(e *models.LogEntry, w, h int) {
	s.viewing = e
	s.resize(w, h)
	s.view.SetContent(renderEntry(e))
	s.view.GotoTop()
}

func renderEntry(e *models.LogEntry) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(e.ID.Time().Format("Mon 2 Jan 2006 15:04")) + "\n\n")
	b.WriteString(e.Content)
	if !strings.HasSuffix(e.Content, "\n") {
		b.WriteByte('\n')
	}
	if len(e.Attachments) > 0 {
		b.WriteString("\n" + faintStyle.Render("attachments: "+strings.Join(e.Attachments, ", ")) + "\n")
	}
	return b.String()
}

func (m appModel) updateLogs(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.logs.panelOpen {
		return m.updateLogsPanel(msg)
	}

	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "up", "k":
		if m.logs.cursor > 0 {
			m.logs.cursor--
		}
	case "down", "j":
		if m.logs.cursor < len(m.logs.visible)-1 {
			m.logs.cursor++
		}
	case "enter":
		if m.logs.cursor >= 0 && m.logs.cursor < len(m.logs.visible) {
			m.logs.openEntry(m.logs.visible[m.logs.cursor], m.width, m.height)
			m.screen = screenViewLog
		}
	case "f":
		m.logs.panelOpen = true
		m.logs.panelFocus = logsPanelPicker
	case "esc":
		m.screen = screenMenu
	}
	return m, nil
}

func (m appModel) updateLogsPanel(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, isKey := msg.(tea.KeyMsg)
	if isKey {
		switch key.String() {
		case "tab":
			m.logs.panelFocus = (m.logs.panelFocus + 1) % 3
			return m.focusPanelField()
		case "enter", "esc":
			m.logs.panelOpen = false
			m.logs.fromInput.Blur()
			m.logs.toInput.Blur()
			m.logs.recompute(&m)
			return m, nil
		}

		if m.logs.panelFocus == logsPanelPicker {
			switch key.String() {
			case "up", "k":
				m.logs.picker.up()
			case "down", "j":
				m.logs.picker.down()
			case " ":
				m.logs.picker.toggle()
				m.logs.recompute(&m)
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	switch m.logs.panelFocus {
	case logsPanelFrom:
		m.logs.fromInput, cmd = m.logs.fromInput.Update(msg)
	case logsPanelTo:
		m.logs.toInput, cmd = m.logs.toInput.Update(msg)
	}
	return m, cmd
}

func (m appModel) focusPanelField() (tea.Model, tea.Cmd) {
	m.logs.fromInput.Blur()
	m.logs.toInput.Blur()
	switch m.logs.panelFocus {
	case logsPanelFrom:
		return m, m.logs.fromInput.Focus()
	case logsPanelTo:
		return m, m.logs.toInput.Focus()
	default:
		return m, nil
	}
}

func (m appModel) viewLogs() string {
	if m.logs.panelOpen {
		var b strings.Builder
		b.WriteString(m.logs.picker.view(m.logs.panelFocus == logsPanelPicker))
		b.WriteString("\n\n" + m.logs.fromInput.View())
		b.WriteString("\n" + m.logs.toInput.View())
		return panelStyle.Render(b.String())
	}

	if len(m.logs.visible) == 0 {
		return faintStyle.Render("no log entries match the current filter")
	}

	var b strings.Builder
	for i, e := range m.logs.visible {
		stamp := e.ID.Time().Format("2006-01-02 15:04")
		line := stamp + "  " + e.FirstLine()
		if n := len(e.Todos); n > 0 {
			line += faintStyle.Render("  (" + strconv.Itoa(n) + " todos)")
		}
		if i == m.logs.cursor {
			line = selectedStyle.Render(stamp+"  "+e.FirstLine()) + faintStyle.Render(tagSummary(e))
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.String()
}

func tagSummary(e *models.LogEntry) string {
	var parts []string
	for _, p := range e.Projects {
		parts = append(parts, "#"+p)
	}
	for _, p := range e.People {
		parts = append(parts, "@"+p)
	}
	if len(parts) == 0 {
		return ""
	}
	return "  " + strings.Join(parts, " ")
}

func (m appModel) updateViewLog(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc", "q":
			m.screen = screenLogs
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.logs.view, cmd = m.logs.view.Update(msg)
	return m, cmd
}

func (m appModel) viewViewLog() string {
	if m.logs.viewing == nil {
		return ""
	}
	return m.logs.view.View()
}
