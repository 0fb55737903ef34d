// Package tui is a terminal keypad for a keycalc.Session.
package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/zephyrtronium/keycalc"
)

// keypad is the button layout. Labels other than ⌫ and AC are the keys they
// send.
var keypad = [][]string{
	{"7", "8", "9", "⌫", "AC"},
	{"4", "5", "6", "×", "÷"},
	{"1", "2", "3", "+", "-"},
	{"0", ".", "(", ")", "="},
}

const displayWidth = 29

var (
	displayStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Width(displayWidth).
			Align(lipgloss.Right)
	answerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	formulaStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	buttonStyle  = lipgloss.NewStyle().Width(5).Align(lipgloss.Center).Padding(0, 0, 0, 1)
	pressedStyle = buttonStyle.Reverse(true)
	helpStyle    = lipgloss.NewStyle().MarginTop(1)
)

// Model is a bubbletea model that sends keystrokes to a session and shows
// its formula and answer above a keypad.
type Model struct {
	session *keycalc.Session
	keys    keyMap
	help    help.Model
	// pressed is the keypad label of the last accepted key.
	pressed string
}

// New creates a model for s.
func New(s *keycalc.Session) Model {
	return Model{
		session: s,
		keys:    defaultKeyMap(),
		help:    help.New(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		case key.Matches(msg, m.keys.Commit):
			m.press(keycalc.KeyCommit)
		case key.Matches(msg, m.keys.Delete):
			m.press(keycalc.KeyDelete)
		case key.Matches(msg, m.keys.Clear):
			m.press(keycalc.KeyClear)
		default:
			if k, ok := formulaKey(msg); ok {
				m.press(k)
			}
		}
	}
	return m, nil
}

func (m *Model) press(k string) {
	m.session.Press(k)
	switch k {
	case keycalc.KeyDelete:
		m.pressed = "⌫"
	case keycalc.KeyClear:
		m.pressed = "AC"
	default:
		m.pressed = k
	}
}

// View implements tea.Model.
func (m Model) View() string {
	answer := answerStyle.Render(m.session.Answer())
	if m.session.Err() != nil {
		answer = errorStyle.Render(m.session.Answer())
	}
	display := displayStyle.Render(lipgloss.JoinVertical(lipgloss.Right,
		answer,
		formulaStyle.Render(m.session.Formula()),
	))

	rows := make([]string, 0, len(keypad))
	for _, row := range keypad {
		cells := make([]string, 0, len(row))
		for _, label := range row {
			style := buttonStyle
			if label == m.pressed {
				style = pressedStyle
			}
			cells = append(cells, style.Render(label))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	var b strings.Builder
	b.WriteString(display)
	b.WriteByte('\n')
	b.WriteString(lipgloss.JoinVertical(lipgloss.Left, rows...))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	b.WriteByte('\n')
	return b.String()
}

// Run runs the keypad on the terminal until the user quits.
func Run(s *keycalc.Session, opts ...tea.ProgramOption) error {
	_, err := tea.NewProgram(New(s), opts...).Run()
	return err
}
