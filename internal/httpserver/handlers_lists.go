package httpserver

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/idilsaglam/todolists/internal/model"
	"github.com/idilsaglam/todolists/internal/todo"
	"github.com/labstack/echo/v4"
)

const (
	msgListCreated  = "The list has been created."
	msgListUpdated  = "The list has been updated."
	msgListDeleted  = "The list has been deleted."
	msgAllCompleted = "All todos have been completed."
)

// pageData feeds every template; pages use the fields they need.
type pageData struct {
	Title     string
	Success   string
	Error     string
	CSRFToken string

	Lists []todo.IndexedList

	ListID   int
	List     model.TodoList
	Todos    []todo.IndexedTodo
	ListName string
	TodoName string
}

func (s *Server) registerListRoutes(csrf echo.MiddlewareFunc) {
	s.echo.GET("/lists", s.handleLists, csrf)
	s.echo.POST("/lists", s.handleCreateList, csrf)
	s.echo.GET("/lists/new", s.handleNewList, csrf)
	s.echo.GET("/lists/:id", s.handleShowList, csrf)
	s.echo.POST("/lists/:id", s.handleRenameList, csrf)
	s.echo.GET("/lists/:id/edit", s.handleEditList, csrf)
	s.echo.POST("/lists/:id/destroy", s.handleDeleteList, csrf)
	s.echo.POST("/lists/:id/complete_all", s.handleCompleteAll, csrf)
}

// page pops the flash messages into a fresh pageData.
func (s *Server) page(c echo.Context, rs *requestSession, title string) pageData {
	success, errMsg := rs.popFlash()
	return pageData{
		Title:     title,
		Success:   success,
		Error:     errMsg,
		CSRFToken: csrfToken(c),
	}
}

// show saves the cookie (flash consumed, maybe a new ID) and renders.
func (s *Server) show(c echo.Context, rs *requestSession, status int, name string, data pageData) error {
	if err := s.saveCookie(c, rs); err != nil {
		return err
	}
	return s.renderTemplate(c, status, name, data)
}

// showError re-renders a form with the validation message in place of any flash.
func (s *Server) showError(c echo.Context, rs *requestSession, name string, data pageData, err error) error {
	data.Success = ""
	data.Error = err.Error()
	return s.show(c, rs, http.StatusUnprocessableEntity, name, data)
}

// paramIndex reads a positional path parameter. Unparseable input maps to -1,
// a position that never exists, so the store operation reports NotFound.
func paramIndex(c echo.Context, name string) int {
	i, err := todo.ParseIndex(c.Param(name))
	if err != nil {
		return -1
	}
	return i
}

func listPath(i int) string {
	return "/lists/" + strconv.Itoa(i)
}

// applied finishes a mutation: on success it commits, flashes and redirects to
// target. A NotFound goes through redirectNotFound; other errors are internal.
func (s *Server) applied(c echo.Context, rs *requestSession, op string, next model.Store, err error, listIdx int, success, target string) error {
	s.metrics.Observe(op, resultLabel(err))

	if err != nil {
		if !isUserError(err) {
			return err
		}
		return s.redirectNotFound(c, rs, err, listIdx)
	}

	rs.flashSuccess(success)
	if err := s.commit(c, rs, next); err != nil {
		return err
	}
	slog.InfoContext(c.Request().Context(), "Store updated", "operation", op, "lists", len(next.Lists))
	return c.Redirect(http.StatusFound, target)
}

// redirectNotFound flashes err and sends the user to the closest page that
// still exists: the list when listIdx is valid, otherwise the overview.
func (s *Server) redirectNotFound(c echo.Context, rs *requestSession, err error, listIdx int) error {
	rs.flashError(err.Error())
	if err := s.saveCookie(c, rs); err != nil {
		return err
	}
	dest := "/lists"
	if _, lerr := todo.List(rs.store, listIdx); lerr == nil {
		dest = listPath(listIdx)
	}
	return c.Redirect(http.StatusFound, dest)
}

func (s *Server) handleLists(c echo.Context) error {
	rs, err := s.openSession(c)
	if err != nil {
		return err
	}
	data := s.page(c, rs, "Lists")
	data.Lists = todo.DisplayLists(rs.store)
	return s.show(c, rs, http.StatusOK, "lists.html", data)
}

func (s *Server) handleNewList(c echo.Context) error {
	rs, err := s.openSession(c)
	if err != nil {
		return err
	}
	return s.show(c, rs, http.StatusOK, "new_list.html", s.page(c, rs, "New list"))
}

func (s *Server) handleCreateList(c echo.Context) error {
	rs, err := s.openSession(c)
	if err != nil {
		return err
	}

	name := strings.TrimSpace(c.FormValue("list_name"))
	next, err := todo.CreateList(rs.store, name)
	if kind := todo.KindOf(err); kind == todo.KindInvalidLength || kind == todo.KindDuplicateName {
		s.metrics.Observe("create_list", string(kind))
		data := s.page(c, rs, "New list")
		data.ListName = name
		return s.showError(c, rs, "new_list.html", data, err)
	}
	return s.applied(c, rs, "create_list", next, err, -1, msgListCreated, "/lists")
}

func (s *Server) handleShowList(c echo.Context) error {
	rs, err := s.openSession(c)
	if err != nil {
		return err
	}

	idx := paramIndex(c, "id")
	l, err := todo.List(rs.store, idx)
	if err != nil {
		return s.redirectNotFound(c, rs, err, idx)
	}

	data := s.page(c, rs, l.Name)
	data.ListID = idx
	data.List = l
	data.Todos = todo.DisplayTodos(l)
	return s.show(c, rs, http.StatusOK, "list.html", data)
}

func (s *Server) handleEditList(c echo.Context) error {
	rs, err := s.openSession(c)
	if err != nil {
		return err
	}

	idx := paramIndex(c, "id")
	l, err := todo.List(rs.store, idx)
	if err != nil {
		return s.redirectNotFound(c, rs, err, idx)
	}

	data := s.page(c, rs, fmt.Sprintf("Edit %s", l.Name))
	data.ListID = idx
	data.List = l
	data.ListName = l.Name
	return s.show(c, rs, http.StatusOK, "edit_list.html", data)
}

func (s *Server) handleRenameList(c echo.Context) error {
	rs, err := s.openSession(c)
	if err != nil {
		return err
	}

	idx := paramIndex(c, "id")
	name := strings.TrimSpace(c.FormValue("list_name"))
	next, err := todo.RenameList(rs.store, idx, name)
	if kind := todo.KindOf(err); kind == todo.KindInvalidLength || kind == todo.KindDuplicateName {
		s.metrics.Observe("rename_list", string(kind))
		data := s.page(c, rs, "Edit list")
		data.ListID = idx
		data.List = rs.store.Lists[idx]
		data.ListName = name
		return s.showError(c, rs, "edit_list.html", data, err)
	}
	return s.applied(c, rs, "rename_list", next, err, idx, msgListUpdated, listPath(idx))
}

func (s *Server) handleDeleteList(c echo.Context) error {
	rs, err := s.openSession(c)
	if err != nil {
		return err
	}

	idx := paramIndex(c, "id")
	next, err := todo.DeleteList(rs.store, idx)
	return s.applied(c, rs, "delete_list", next, err, idx, msgListDeleted, "/lists")
}

func (s *Server) handleCompleteAll(c echo.Context) error {
	rs, err := s.openSession(c)
	if err != nil {
		return err
	}

	idx := paramIndex(c, "id")
	next, err := todo.CompleteAll(rs.store, idx)
	return s.applied(c, rs, "complete_all", next, err, idx, msgAllCompleted, listPath(idx))
}
