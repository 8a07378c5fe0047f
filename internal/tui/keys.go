package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/lander/internal/input"
)

var arrowKeys = map[tea.KeyType]string{
	tea.KeyUp:    input.KeyArrowUp,
	tea.KeyDown:  input.KeyArrowDown,
	tea.KeyLeft:  input.KeyArrowLeft,
	tea.KeyRight: input.KeyArrowRight,
}

// keyName translates a terminal key to the DOM-style name the keymap uses.
// Printable keys keep their rune, so "w" stays "w".
func keyName(msg tea.KeyMsg) string {
	if name, ok := arrowKeys[msg.Type]; ok {
		return name
	}
	if msg.Type == tea.KeyRunes && len(msg.Runes) == 1 {
		return string(msg.Runes)
	}
	return msg.String()
}

func isQuit(msg tea.KeyMsg) bool {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return true
	}
	return false
}
