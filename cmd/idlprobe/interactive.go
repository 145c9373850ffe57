package main

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const maxHistory = 8

type interactiveModel struct {
	prober  *prober
	input   textinput.Model
	history []entry
	render  renderer
}

type entry struct {
	line string
	out  string
}

type probeResultMsg entry

func newInteractiveModel(p *prober, r renderer) *interactiveModel {
	ti := textinput.New()
	ti.Placeholder = "new Uint8Array([1, 2, 3]).subarray(1)  or  key 42"
	ti.Prompt = "> "
	ti.Width = 60
	ti.Focus()

	r.color = true
	return &interactiveModel{prober: p, input: ti, render: r}
}

func (m *interactiveModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *interactiveModel) probe(line string) tea.Cmd {
	return func() tea.Msg {
		return probeResultMsg{line: line, out: m.render.report(m.prober.run(line))}
	}
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "enter":
			line := strings.TrimSpace(m.input.Value())
			if line == "" {
				return m, nil
			}
			m.input.SetValue("")
			return m, m.probe(line)
		}

	case probeResultMsg:
		m.history = append(m.history, entry(msg))
		if len(m.history) > maxHistory {
			m.history = m.history[len(m.history)-maxHistory:]
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *interactiveModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("IDL Probe"))
	b.WriteString("\n\n")

	for _, e := range m.history {
		b.WriteString(helpStyle.Render("> " + e.line))
		b.WriteByte('\n')
		b.WriteString(e.out)
		b.WriteByte('\n')
	}

	b.WriteString(m.input.View())
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("enter probe • key <name> classify • esc quit"))

	return b.String()
}

func runInteractive(p *prober, r renderer) error {
	prog := tea.NewProgram(newInteractiveModel(p, r), tea.WithAltScreen())
	_, err := prog.Run()
	return err
}
