package tui

import "strings"

// tagPicker is the shared project/person selection widget used by the
// todo-list and log-list filter panels. Selection order in the
// resulting sets follows candidate display order, keeping filter
// configurations deterministic.
type tagPicker struct {
	projects []string
	people   []string
	cursor   int

	selProjects map[string]bool
	selPeople   map[string]bool
}

func (p *tagPicker) setCandidates(projects, people []string) {
	p.projects = projects
	p.people = people
	if p.selProjects == nil {
		p.selProjects = make(map[string]bool)
	}
	if p.selPeople == nil {
		p.selPeople = make(map[string]bool)
	}
	if p.cursor >= p.total() {
		p.cursor = 0
	}
}

func (p *tagPicker) total() int { return len(p.projects) + len(p.people) }

func (p *tagPicker) up() {
	if p.cursor > 0 {
		p.cursor--
	}
}

func (p *tagPicker) down() {
	if p.cursor < p.total()-1 {
		p.cursor++
	}
}

// toggle flips the selection under the cursor.
func (p *tagPicker) toggle() {
	if p.cursor < len(p.projects) {
		name := p.projects[p.cursor]
		p.selProjects[name] = !p.selProjects[name]
		return
	}
	if i := p.cursor - len(p.projects); i < len(p.people) {
		name := p.people[i]
		p.selPeople[name] = !p.selPeople[name]
	}
}

func (p *tagPicker) selectedProjects() []string {
	return selectedOf(p.projects, p.selProjects)
}

func (p *tagPicker) selectedPeople() []string {
	return selectedOf(p.people, p.selPeople)
}

func selectedOf(candidates []string, sel map[string]bool) []string {
	var out []string
	for _, c := range candidates {
		if sel[c] {
			out = append(out, c)
		}
	}
	return out
}

func (p *tagPicker) view(active bool) string {
	var b strings.Builder
	b.WriteString(faintStyle.Render("projects") + "\n")
	for i, name := range p.projects {
		b.WriteString(p.row(i, "#"+name, p.selProjects[name], active) + "\n")
	}
	b.WriteString(faintStyle.Render("people") + "\n")
	for i, name := range p.people {
		b.WriteString(p.row(len(p.projects)+i, "@"+name, p.selPeople[name], active) + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (p *tagPicker) row(index int, label string, selected, active bool) string {
	check := "[ ] "
	if selected {
		check = "[x] "
	}
	line := check + label
	if active && index == p.cursor {
		return selectedStyle.Render(line)
	}
	return line
}
