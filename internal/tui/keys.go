package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// keyMap holds the bindings for keys that are not typed into the formula.
type keyMap struct {
	Commit key.Binding
	Delete key.Binding
	Clear  key.Binding
	Help   key.Binding
	Quit   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Commit: key.NewBinding(
			key.WithKeys("enter", "="),
			key.WithHelp("enter/=", "use answer"),
		),
		Delete: key.NewBinding(
			key.WithKeys("backspace"),
			key.WithHelp("⌫", "delete"),
		),
		Clear: key.NewBinding(
			key.WithKeys("esc", "delete"),
			key.WithHelp("esc", "clear"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Commit, k.Delete, k.Clear, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	typing := key.NewBinding(
		key.WithKeys("0", "1", "2", "3", "4", "5", "6", "7", "8", "9", "."),
		key.WithHelp("0-9 .", "number"),
	)
	ops := key.NewBinding(
		key.WithKeys("+", "-", "*", "x", "/", "^"),
		key.WithHelp("+ - * / ^", "operator"),
	)
	parens := key.NewBinding(
		key.WithKeys("(", ")"),
		key.WithHelp("( )", "group"),
	)
	return [][]key.Binding{
		{typing, ops, parens},
		{k.Commit, k.Delete, k.Clear},
		{k.Help, k.Quit},
	}
}

// formulaKey translates a typed key into the keycalc key it stands for. ASCII
// "*", "x", and "/" stand in for "×" and "÷".
func formulaKey(msg tea.KeyMsg) (string, bool) {
	if msg.Type != tea.KeyRunes || len(msg.Runes) != 1 {
		return "", false
	}
	switch r := msg.Runes[0]; r {
	case '*', 'x':
		return "×", true
	case '/':
		return "÷", true
	case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9', '.',
		'^', '×', '÷', '+', '-', '(', ')':
		return string(r), true
	default:
		return "", false
	}
}
