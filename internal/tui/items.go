package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/idilsaglam/todolists/internal/model"
	"github.com/idilsaglam/todolists/internal/todo"
)

// listItem is one todo list row; index is the list's position in the store.
type listItem struct {
	index int
	list  model.TodoList
}

func (i listItem) Title() string       { return i.list.Name }
func (i listItem) Description() string { return "" }
func (i listItem) FilterValue() string { return i.list.Name }

// todoItem is one todo row; index is the todo's position in its list.
type todoItem struct {
	index int
	todo  model.Todo
}

func (i todoItem) Title() string       { return i.todo.Name }
func (i todoItem) Description() string { return "" }
func (i todoItem) FilterValue() string { return i.todo.Name }

func listItems(s model.Store) []list.Item {
	shown := todo.DisplayLists(s)
	out := make([]list.Item, 0, len(shown))
	for _, l := range shown {
		out = append(out, listItem{index: l.Index, list: l.List})
	}
	return out
}

func todoItems(l model.TodoList) []list.Item {
	shown := todo.DisplayTodos(l)
	out := make([]list.Item, 0, len(shown))
	for _, t := range shown {
		out = append(out, todoItem{index: t.Index, todo: t.Todo})
	}
	return out
}

// rowDelegate renders items on a single line.
type rowDelegate struct{}

func (d rowDelegate) Height() int                               { return 1 }
func (d rowDelegate) Spacing() int                              { return 0 }
func (d rowDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d rowDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	var line string
	switch it := item.(type) {
	case listItem:
		done, pending := it.list.Stats()
		name := it.list.Name
		if todo.IsListComplete(it.list) {
			name = doneStyle.Render(name)
		}
		line = fmt.Sprintf("%s  %s", name, mutedStyle.Render(fmt.Sprintf("%d/%d", pending, done+pending)))
	case todoItem:
		box, text := mutedStyle.Render(boxUnchecked), it.todo.Name
		if it.todo.Completed {
			box, text = successStyle.Render(boxChecked), doneStyle.Render(text)
		}
		line = box + " " + text
	default:
		return
	}

	prefix := "  "
	if index == m.Index() {
		prefix = selectedStyle.Render("> ")
	}
	fmt.Fprint(w, prefix+line)
}
