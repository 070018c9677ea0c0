// Package todo holds the list/todo rules: name validation and the positional
// mutations applied to a session's store.
//
// Every operation takes a store value and returns the updated value. The input
// is never modified; on error it is returned unchanged together with an *Error.
package todo

import "github.com/idilsaglam/todolists/internal/model"

// CreateList appends an empty list named name.
func CreateList(s model.Store, name string) (model.Store, error) {
	if err := ValidateListName(name, s.Lists); err != nil {
		return s, err
	}
	out := s.Clone()
	out.Lists = append(out.Lists, model.TodoList{Name: name, Todos: []model.Todo{}})
	return out, nil
}

// RenameList renames the list at index. Uniqueness is checked against the
// other lists only, so keeping the current name is allowed.
func RenameList(s model.Store, index int, newName string) (model.Store, error) {
	if !validListIndex(s, index) {
		return s, errListNotFound
	}
	others := make([]model.TodoList, 0, len(s.Lists)-1)
	others = append(others, s.Lists[:index]...)
	others = append(others, s.Lists[index+1:]...)
	if err := ValidateListName(newName, others); err != nil {
		return s, err
	}
	out := s.Clone()
	out.Lists[index].Name = newName
	return out, nil
}

// DeleteList removes the list at index; later lists shift down by one.
func DeleteList(s model.Store, index int) (model.Store, error) {
	if !validListIndex(s, index) {
		return s, errListNotFound
	}
	out := s.Clone()
	out.Lists = append(out.Lists[:index], out.Lists[index+1:]...)
	return out, nil
}

// AddTodo appends an incomplete todo to the list at listIndex.
func AddTodo(s model.Store, listIndex int, name string) (model.Store, error) {
	if !validListIndex(s, listIndex) {
		return s, errListNotFound
	}
	if err := ValidateTodoName(name); err != nil {
		return s, err
	}
	out := s.Clone()
	l := &out.Lists[listIndex]
	l.Todos = append(l.Todos, model.Todo{Name: name})
	return out, nil
}

// DeleteTodo removes a todo; later todos in the same list shift down by one.
func DeleteTodo(s model.Store, listIndex, todoIndex int) (model.Store, error) {
	if err := checkTodo(s, listIndex, todoIndex); err != nil {
		return s, err
	}
	out := s.Clone()
	l := &out.Lists[listIndex]
	l.Todos = append(l.Todos[:todoIndex], l.Todos[todoIndex+1:]...)
	return out, nil
}

// SetTodoCompleted sets the completed flag of one todo.
func SetTodoCompleted(s model.Store, listIndex, todoIndex int, completed bool) (model.Store, error) {
	if err := checkTodo(s, listIndex, todoIndex); err != nil {
		return s, err
	}
	out := s.Clone()
	out.Lists[listIndex].Todos[todoIndex].Completed = completed
	return out, nil
}

// CompleteAll marks every todo of the list at listIndex as completed.
func CompleteAll(s model.Store, listIndex int) (model.Store, error) {
	if !validListIndex(s, listIndex) {
		return s, errListNotFound
	}
	out := s.Clone()
	todos := out.Lists[listIndex].Todos
	for i := range todos {
		todos[i].Completed = true
	}
	return out, nil
}

// IsListComplete reports whether l has at least one todo and all are done.
// An empty list is not complete.
func IsListComplete(l model.TodoList) bool {
	done, pending := l.Stats()
	return done > 0 && pending == 0
}

// List returns the list at index.
func List(s model.Store, index int) (model.TodoList, error) {
	if !validListIndex(s, index) {
		return model.TodoList{}, errListNotFound
	}
	return s.Lists[index], nil
}

func validListIndex(s model.Store, i int) bool {
	return i >= 0 && i < len(s.Lists)
}

func checkTodo(s model.Store, listIndex, todoIndex int) error {
	if !validListIndex(s, listIndex) {
		return errListNotFound
	}
	if todoIndex < 0 || todoIndex >= len(s.Lists[listIndex].Todos) {
		return errTodoNotFound
	}
	return nil
}
