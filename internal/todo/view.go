package todo

import (
	"sort"

	"github.com/idilsaglam/todolists/internal/model"
)

// IndexedList pairs a list with its position in the store, so views can
// reorder for display and still link by index.
type IndexedList struct {
	Index int
	List  model.TodoList
}

// IndexedTodo pairs a todo with its position in its list.
type IndexedTodo struct {
	Index int
	Todo  model.Todo
}

// DisplayLists orders lists incomplete-first, keeping store order otherwise.
func DisplayLists(s model.Store) []IndexedList {
	out := make([]IndexedList, len(s.Lists))
	for i, l := range s.Lists {
		out[i] = IndexedList{Index: i, List: l}
	}
	sort.SliceStable(out, func(a, b int) bool {
		return !IsListComplete(out[a].List) && IsListComplete(out[b].List)
	})
	return out
}

// DisplayTodos orders todos pending-first, keeping list order otherwise.
func DisplayTodos(l model.TodoList) []IndexedTodo {
	out := make([]IndexedTodo, len(l.Todos))
	for i, t := range l.Todos {
		out[i] = IndexedTodo{Index: i, Todo: t}
	}
	sort.SliceStable(out, func(a, b int) bool {
		return !out[a].Todo.Completed && out[b].Todo.Completed
	})
	return out
}
