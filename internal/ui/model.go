package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// refreshMsg wakes the program after the surface changed.
type refreshMsg struct{}

// Model is the bubbletea model for the notice board view.
type Model struct {
	surface *Surface
	onStart func()

	width  int
	height int
}

func NewModel(surface *Surface, onStart func()) Model {
	return Model{surface: surface, onStart: onStart}
}

func (m Model) Init() tea.Cmd {
	if m.onStart == nil {
		return nil
	}
	onStart := m.onStart
	return func() tea.Msg {
		onStart()
		return refreshMsg{}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case refreshMsg:
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "d", "esc":
			m.surface.fireDismiss()
			return m, nil
		}
	}
	return m, nil
}

func (m Model) View() string {
	s := m.surface.snapshot()

	var b strings.Builder
	if s.bannerVisible {
		b.WriteString(bannerStyle(s.bannerStyle).Render(s.bannerText))
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("press d to dismiss"))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	for _, ln := range s.logLines {
		if isHeader(ln) {
			b.WriteString(headerStyle.Render(ln))
		} else {
			b.WriteString(ln)
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("d dismiss · q quit"))
	return b.String()
}

// isHeader marks the two section headers RenderLog emits (unindented lines).
func isHeader(ln string) bool {
	return ln != "" && !strings.HasPrefix(ln, " ")
}

// NewProgram builds the program and wires the surface to it. onStart runs on
// the program's first command, after the event loop is accepting messages.
func NewProgram(surface *Surface, onStart func()) *tea.Program {
	p := tea.NewProgram(NewModel(surface, onStart), tea.WithAltScreen())
	surface.attach(p)
	return p
}
