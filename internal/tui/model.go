// Package tui is the interactive terminal front end: a lists screen and a
// todos screen over one store, saved when the program exits.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/idilsaglam/todolists/internal/model"
	"github.com/idilsaglam/todolists/internal/todo"
)

type screen int

const (
	screenLists screen = iota
	screenTodos
)

type inputMode int

const (
	inputNone inputMode = iota
	inputAddList
	inputRenameList
	inputAddTodo
)

var (
	addBind      = key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add"))
	renameBind   = key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "rename"))
	deleteBind   = key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete"))
	completeBind = key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "complete all"))
	openBind     = key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open"))
	toggleBind   = key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle"))
	backBind     = key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back"))
	quitBind     = key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit"))
)

// Model is the Bubble Tea model. Every mutation goes through the todo package,
// so the TUI enforces the same naming rules as the other front ends.
type Model struct {
	store   model.Store
	changed bool

	screen  screen
	listIdx int // store position of the open list

	lists list.Model
	todos list.Model

	mode     inputMode
	ti       textinput.Model
	inputErr string
	status   string

	width, height int
}

func New(s model.Store) Model {
	lists := newList(listItems(s), "Lists", "list", "lists",
		[]key.Binding{openBind, addBind, renameBind, deleteBind, completeBind})
	todos := newList(nil, "", "todo", "todos",
		[]key.Binding{toggleBind, addBind, deleteBind, completeBind, backBind})

	ti := textinput.New()
	ti.Prompt = "> "
	ti.CharLimit = 200

	m := Model{
		store: s.Clone(),
		lists: lists,
		todos: todos,
		ti:    ti,
	}
	return m.resize(80, 24)
}

func newList(items []list.Item, title, singular, plural string, extra []key.Binding) list.Model {
	l := list.New(items, rowDelegate{}, 0, 0)
	l.Title = title
	l.SetShowHelp(true)
	l.SetShowPagination(true)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = titleStyle
	l.Styles.HelpStyle = helpStyle
	l.Styles.PaginationStyle = helpStyle
	l.FilterInput.Prompt = "/ "
	l.SetStatusBarItemName(singular, plural)
	l.AdditionalShortHelpKeys = func() []key.Binding { return extra }
	l.AdditionalFullHelpKeys = func() []key.Binding { return extra }
	return l
}

// Store returns the current store.
func (m Model) Store() model.Store { return m.store }

// Changed reports whether the store differs from the one the model started with.
func (m Model) Changed() bool { return m.changed }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		return m.resize(size.Width, size.Height), nil
	}
	if m.mode != inputNone {
		return m.updateInput(msg)
	}

	keyMsg, isKey := msg.(tea.KeyMsg)
	if isKey && m.active().FilterState() != list.Filtering {
		m.status = ""
		if key.Matches(keyMsg, quitBind) {
			return m, tea.Quit
		}
		if m.screen == screenLists && key.Matches(keyMsg, backBind) && m.lists.FilterState() == list.Unfiltered {
			return m, tea.Quit
		}
		if m.screen == screenLists {
			if next, handled := m.updateListsKey(keyMsg); handled {
				return next, nil
			}
		} else {
			if next, handled := m.updateTodosKey(keyMsg); handled {
				return next, nil
			}
		}
	}

	var cmd tea.Cmd
	if m.screen == screenLists {
		m.lists, cmd = m.lists.Update(msg)
	} else {
		m.todos, cmd = m.todos.Update(msg)
	}
	return m, cmd
}

func (m Model) updateListsKey(msg tea.KeyMsg) (Model, bool) {
	switch {
	case key.Matches(msg, openBind):
		if it, ok := m.lists.SelectedItem().(listItem); ok {
			m.screen = screenTodos
			m.listIdx = it.index
			m.refresh()
			m.todos.Select(0)
		}
	case key.Matches(msg, addBind):
		m.startInput(inputAddList, "", "New list name...")
	case key.Matches(msg, renameBind):
		if it, ok := m.lists.SelectedItem().(listItem); ok {
			m.listIdx = it.index
			m.startInput(inputRenameList, it.list.Name, "New name...")
		}
	case key.Matches(msg, deleteBind):
		if it, ok := m.lists.SelectedItem().(listItem); ok {
			m.apply(todo.DeleteList(m.store, it.index))
			m.status = fmt.Sprintf("Deleted %q", it.list.Name)
		}
	case key.Matches(msg, completeBind):
		if it, ok := m.lists.SelectedItem().(listItem); ok {
			m.apply(todo.CompleteAll(m.store, it.index))
		}
	default:
		return m, false
	}
	return m, true
}

func (m Model) updateTodosKey(msg tea.KeyMsg) (Model, bool) {
	switch {
	case key.Matches(msg, backBind):
		m.screen = screenLists
		m.refresh()
	case key.Matches(msg, toggleBind):
		if it, ok := m.todos.SelectedItem().(todoItem); ok {
			m.apply(todo.SetTodoCompleted(m.store, m.listIdx, it.index, !it.todo.Completed))
		}
	case key.Matches(msg, addBind):
		m.startInput(inputAddTodo, "", "Something to do...")
	case key.Matches(msg, deleteBind):
		if it, ok := m.todos.SelectedItem().(todoItem); ok {
			m.apply(todo.DeleteTodo(m.store, m.listIdx, it.index))
		}
	case key.Matches(msg, completeBind):
		m.apply(todo.CompleteAll(m.store, m.listIdx))
	default:
		return m, false
	}
	return m, true
}

func (m Model) updateInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	if x, ok := msg.(tea.KeyMsg); ok {
		switch x.String() {
		case "enter":
			value := strings.TrimSpace(m.ti.Value())
			var (
				next model.Store
				err  error
			)
			switch m.mode {
			case inputAddList:
				next, err = todo.CreateList(m.store, value)
			case inputRenameList:
				next, err = todo.RenameList(m.store, m.listIdx, value)
			case inputAddTodo:
				next, err = todo.AddTodo(m.store, m.listIdx, value)
			}
			if err != nil {
				m.inputErr = err.Error()
				return m, nil
			}
			m.stopInput()
			m.apply(next, nil)
			return m, nil
		case "esc":
			m.stopInput()
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.ti, cmd = m.ti.Update(msg)
	return m, cmd
}

func (m *Model) startInput(mode inputMode, value, placeholder string) {
	m.mode = mode
	m.inputErr = ""
	m.ti.SetValue(value)
	m.ti.CursorEnd()
	m.ti.Placeholder = placeholder
	m.ti.Focus()
	m.layout()
}

func (m *Model) stopInput() {
	m.mode = inputNone
	m.inputErr = ""
	m.ti.SetValue("")
	m.ti.Blur()
	m.layout()
}

// apply takes the result of a todo operation. Errors become the status line;
// success replaces the store and redraws both screens.
func (m *Model) apply(next model.Store, err error) {
	if err != nil {
		m.status = err.Error()
		return
	}
	m.store = next
	m.changed = true
	m.refresh()
}

// refresh rebuilds the visible rows from the store, keeping the cursor in range.
func (m *Model) refresh() {
	m.lists.SetItems(listItems(m.store))
	m.lists.Title = header("Lists", m.store.Lists)

	l, err := todo.List(m.store, m.listIdx)
	if err != nil {
		m.screen = screenLists
		m.todos.SetItems(nil)
		return
	}
	m.todos.SetItems(todoItems(l))
	m.todos.Title = todoHeader(l)
}

func (m Model) active() list.Model {
	if m.screen == screenTodos {
		return m.todos
	}
	return m.lists
}

func (m Model) resize(w, h int) Model {
	m.width, m.height = w, h
	m.layout()
	m.refresh()
	return m
}

// layout fits both lists inside the frame (border and padding take 4 columns
// and 2 rows), leaving a row for the status line or 4 for the input bar.
func (m *Model) layout() {
	listHeight := m.height - 3
	if m.mode != inputNone {
		listHeight = m.height - 6
	}
	m.lists.SetSize(max(m.width-4, 1), max(listHeight, 1))
	m.todos.SetSize(max(m.width-4, 1), max(listHeight, 1))
}
