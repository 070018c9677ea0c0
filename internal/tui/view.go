package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/idilsaglam/todolists/internal/model"
	"github.com/idilsaglam/todolists/internal/todo"
)

func header(title string, lists []model.TodoList) string {
	complete := 0
	for _, l := range lists {
		if todo.IsListComplete(l) {
			complete++
		}
	}
	return fmt.Sprintf("%s   %s %d  %s %d  %s %d",
		title,
		successStyle.Render("✔"), complete,
		pendingStyle.Render("•"), len(lists)-complete,
		accentStyle.Render("Total"), len(lists),
	)
}

func todoHeader(l model.TodoList) string {
	done, pending := l.Stats()
	return fmt.Sprintf("%s   %s %d  %s %d  %s %d",
		l.Name,
		successStyle.Render("✔"), done,
		pendingStyle.Render("•"), pending,
		accentStyle.Render("Total"), done+pending,
	)
}

func (m Model) View() string {
	content := m.active().View()

	if m.mode != inputNone {
		bar := frameStyle
		title := map[inputMode]string{
			inputAddList:    "Add new list",
			inputRenameList: "Rename list",
			inputAddTodo:    "Add new todo",
		}[m.mode]
		if m.inputErr != "" {
			title += "  " + errorStyle.Render(m.inputErr)
		}
		content = lipgloss.JoinVertical(lipgloss.Left, content, bar.Render(title+"\n"+m.ti.View()))
	} else if m.status != "" {
		content = lipgloss.JoinVertical(lipgloss.Left, content, mutedStyle.Render(m.status))
	}
	return frameStyle.Render(content)
}
