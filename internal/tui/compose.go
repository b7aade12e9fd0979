package tui

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/starford/daylog/internal/models"
	"github.com/starford/daylog/internal/parser"
)

type composeState struct {
	ta          textarea.Model
	attachInput textinput.Model
	attaching   bool
	attachments []string

	sugActive   bool
	sugKind     parser.TagKind
	sugPartial  string
	sugIndex    int
	suggestions []string
}

func newComposeState() composeState {
	ta := textarea.New()
	ta.Placeholder = "What happened? Use #project and @person tags; [] starts a todo."
	ta.CharLimit = 0
	ta.ShowLineNumbers = false

	ti := textinput.New()
	ti.Placeholder = "/path/to/attachment"
	ti.Prompt = "attach> "

	return composeState{ta: ta, attachInput: ti}
}

func (c *composeState) resize(w, h int) {
	tw := w - 4
	if tw < 20 {
		tw = 20
	}
	th := h - 12
	if th < 5 {
		th = 5
	}
	c.ta.SetWidth(tw)
	c.ta.SetHeight(th)
	c.attachInput.Width = tw
}

func (m appModel) updateCompose(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.compose.attaching {
		return m.updateAttachPrompt(msg)
	}

	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc":
			if m.compose.sugActive {
				m.compose.sugActive = false
				return m, nil
			}
			m.screen = screenMenu
			return m, nil
		case "ctrl+s":
			return m.saveEntry()
		case "ctrl+a":
			m.compose.attaching = true
			return m, m.compose.attachInput.Focus()
		case "tab":
			if m.compose.sugActive && len(m.compose.suggestions) > 0 {
				picked := m.compose.suggestions[m.compose.sugIndex]
				m.compose.ta.InsertString(strings.TrimPrefix(picked, m.compose.sugPartial))
				m.compose.sugActive = false
				return m, nil
			}
		case "up":
			if m.compose.sugActive {
				if m.compose.sugIndex > 0 {
					m.compose.sugIndex--
				}
				return m, nil
			}
		case "down":
			if m.compose.sugActive {
				if m.compose.sugIndex < len(m.compose.suggestions)-1 {
					m.compose.sugIndex++
				}
				return m, nil
			}
		}
	}

	var cmd tea.Cmd
	m.compose.ta, cmd = m.compose.ta.Update(msg)
	m.updateSuggestions()
	return m, cmd
}

func (m appModel) updateAttachPrompt(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "enter":
			path := strings.TrimSpace(m.compose.attachInput.Value())
			if path != "" {
				if _, err := os.Stat(path); err != nil {
					m.setStatus("cannot attach %s: file not found", path)
					m.statusIsErr = true
				} else {
					m.compose.attachments = append(m.compose.attachments, path)
				}
			}
			m.compose.attaching = false
			m.compose.attachInput.Reset()
			m.compose.attachInput.Blur()
			return m, nil
		case "esc":
			m.compose.attaching = false
			m.compose.attachInput.Reset()
			m.compose.attachInput.Blur()
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.compose.attachInput, cmd = m.compose.attachInput.Update(msg)
	return m, cmd
}

func (m appModel) saveEntry() (tea.Model, tea.Cmd) {
	body := m.compose.ta.Value()
	if strings.TrimSpace(body) == "" {
		m.setStatus("nothing to save")
		return m, nil
	}
	id := models.NewEntryID(time.Now())
	if err := m.deps.Store.AppendEntry(id, []byte(body), m.compose.attachments); err != nil {
		m.setError(err)
		return m, nil
	}
	m.refreshFromDisk()
	m.compose = newComposeState()
	m.compose.resize(m.width, m.height)
	m.screen = screenMenu
	m.setStatus("saved %s", id)
	return m, nil
}

// updateSuggestions recomputes the autocomplete popup from the partial
// tag under the caret.
func (m *appModel) updateSuggestions() {
	c := &m.compose
	lines := strings.Split(c.ta.Value(), "\n")
	row := c.ta.Line()
	if row < 0 || row >= len(lines) {
		c.sugActive = false
		return
	}
	info := c.ta.LineInfo()
	caret := byteIndexOfRune(lines[row], info.StartColumn+info.ColumnOffset)

	tag, partial, ok := parser.TokenAt(lines[row], caret)
	if !ok {
		c.sugActive = false
		return
	}
	names := m.projectNames()
	if tag.Kind == parser.TagPerson {
		names = m.peopleNames()
	}
	c.suggestions = parser.Complete(names, partial)
	c.sugKind = tag.Kind
	c.sugPartial = partial
	c.sugIndex = 0
	c.sugActive = len(c.suggestions) > 0
}

// byteIndexOfRune converts a rune column to a byte offset within s.
func byteIndexOfRune(s string, runeIdx int) int {
	if runeIdx <= 0 {
		return 0
	}
	n := 0
	for i := range s {
		if n == runeIdx {
			return i
		}
		n++
	}
	return len(s)
}

func (m appModel) viewCompose() string {
	var b strings.Builder
	b.WriteString(m.compose.ta.View())

	if m.compose.attaching {
		b.WriteString("\n\n" + m.compose.attachInput.View())
	}
	if len(m.compose.attachments) > 0 {
		names := make([]string, len(m.compose.attachments))
		for i, a := range m.compose.attachments {
			names[i] = filepath.Base(a)
		}
		b.WriteString("\n" + faintStyle.Render("attachments: "+strings.Join(names, ", ")))
	}
	if m.compose.sugActive {
		marker := "#"
		style := projectTagStyle
		if m.compose.sugKind == parser.TagPerson {
			marker = "@"
			style = personTagStyle
		}
		var rows []string
		for i, s := range m.compose.suggestions {
			if i >= 6 {
				break
			}
			line := style.Render(marker + s)
			if i == m.compose.sugIndex {
				line = selectedStyle.Render(marker + s)
			}
			rows = append(rows, line)
		}
		b.WriteString("\n" + panelStyle.Render(strings.Join(rows, "\n")))
	}
	return b.String()
}
