package httpserver

import (
	"strings"

	"github.com/idilsaglam/todolists/internal/todo"
	"github.com/labstack/echo/v4"
)

const (
	msgTodoAdded   = "The todo was added."
	msgTodoDeleted = "The todo has been deleted."
	msgTodoUpdated = "The todo has been updated."
)

func (s *Server) registerTodoRoutes(csrf echo.MiddlewareFunc) {
	s.echo.POST("/lists/:id/todos", s.handleAddTodo, csrf)
	s.echo.POST("/lists/:id/todos/:todo_id", s.handleUpdateTodo, csrf)
	s.echo.POST("/lists/:id/todos/:todo_id/destroy", s.handleDeleteTodo, csrf)
}

func (s *Server) handleAddTodo(c echo.Context) error {
	rs, err := s.openSession(c)
	if err != nil {
		return err
	}

	idx := paramIndex(c, "id")
	name := strings.TrimSpace(c.FormValue("todo"))
	next, err := todo.AddTodo(rs.store, idx, name)
	if todo.KindOf(err) == todo.KindInvalidLength {
		s.metrics.Observe("add_todo", string(todo.KindInvalidLength))
		l := rs.store.Lists[idx]
		data := s.page(c, rs, l.Name)
		data.ListID = idx
		data.List = l
		data.Todos = todo.DisplayTodos(l)
		data.TodoName = name
		return s.showError(c, rs, "list.html", data, err)
	}
	return s.applied(c, rs, "add_todo", next, err, idx, msgTodoAdded, listPath(idx))
}

func (s *Server) handleUpdateTodo(c echo.Context) error {
	rs, err := s.openSession(c)
	if err != nil {
		return err
	}

	idx := paramIndex(c, "id")
	completed := todo.ParseCompleted(c.FormValue("completed"))
	next, err := todo.SetTodoCompleted(rs.store, idx, paramIndex(c, "todo_id"), completed)
	return s.applied(c, rs, "set_todo_completed", next, err, idx, msgTodoUpdated, listPath(idx))
}

func (s *Server) handleDeleteTodo(c echo.Context) error {
	rs, err := s.openSession(c)
	if err != nil {
		return err
	}

	idx := paramIndex(c, "id")
	next, err := todo.DeleteTodo(rs.store, idx, paramIndex(c, "todo_id"))
	return s.applied(c, rs, "delete_todo", next, err, idx, msgTodoDeleted, listPath(idx))
}
