package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/idilsaglam/todolists/internal/store/jsonstore"
)

// Run opens the store at path in the terminal UI and writes it back on exit
// when anything changed. saved reports whether a write happened.
func Run(path string) (saved bool, err error) {
	s, err := jsonstore.Load(path)
	if err != nil {
		return false, err
	}

	p := tea.NewProgram(New(s), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return false, fmt.Errorf("run tui: %w", err)
	}
	fm, ok := final.(Model)
	if !ok || !fm.Changed() {
		return false, nil
	}
	if err := jsonstore.Save(path, fm.Store()); err != nil {
		return false, err
	}
	return true, nil
}
