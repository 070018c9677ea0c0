package httpserver

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"
	"github.com/idilsaglam/todolists/internal/model"
	"github.com/idilsaglam/todolists/internal/session"
	"github.com/labstack/echo/v4"
)

// The cookie only carries the session ID and the flash channels; the store
// itself lives in the session repository.
const (
	cookieName       = "todo-session"
	cookieKeyID      = "sid"
	cookieKeySuccess = "success"
	cookieKeyError   = "error"
)

// requestSession is one request's view of the browser session.
type requestSession struct {
	id     uuid.UUID
	cookie *sessions.Session
	store  model.Store
}

// openSession reads the cookie (issuing a new ID when it is missing or
// unreadable) and loads the session's store by value.
func (s *Server) openSession(c echo.Context) (*requestSession, error) {
	cookie, err := s.cookies.Get(c.Request(), cookieName)
	if err != nil {
		// Tampered or rotated-secret cookie: start over with a fresh session.
		slog.WarnContext(c.Request().Context(), "Discarding unreadable session cookie", "error", err)
	}

	id, ok := sessionID(cookie)
	if !ok {
		id = session.NewID()
		cookie.Values[cookieKeyID] = id.String()
	}

	store, err := s.repo.Load(c.Request().Context(), id)
	if err != nil {
		return nil, fmt.Errorf("failed to load session store: %w", err)
	}

	return &requestSession{id: id, cookie: cookie, store: store}, nil
}

func sessionID(cookie *sessions.Session) (uuid.UUID, bool) {
	raw, ok := cookie.Values[cookieKeyID].(string)
	if !ok {
		return uuid.UUID{}, false
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.UUID{}, false
	}
	return id, true
}

// commit persists the new store, then the cookie. A store with no lists is
// dropped from the repository, since loading an unknown ID yields the same
// empty store.
func (s *Server) commit(c echo.Context, rs *requestSession, store model.Store) error {
	ctx := c.Request().Context()
	if len(store.Lists) == 0 {
		if err := s.repo.Delete(ctx, rs.id); err != nil {
			return fmt.Errorf("failed to drop empty session store: %w", err)
		}
	} else if err := s.repo.Save(ctx, rs.id, store); err != nil {
		return fmt.Errorf("failed to save session store: %w", err)
	}
	rs.store = store
	return s.saveCookie(c, rs)
}

func (s *Server) saveCookie(c echo.Context, rs *requestSession) error {
	if err := rs.cookie.Save(c.Request(), c.Response()); err != nil {
		return fmt.Errorf("failed to save session cookie: %w", err)
	}
	return nil
}

// Success and error messages are mutually exclusive: setting one clears the other.

func (rs *requestSession) flashSuccess(msg string) {
	rs.cookie.Values[cookieKeySuccess] = msg
	delete(rs.cookie.Values, cookieKeyError)
}

func (rs *requestSession) flashError(msg string) {
	rs.cookie.Values[cookieKeyError] = msg
	delete(rs.cookie.Values, cookieKeySuccess)
}

// popFlash returns and clears any pending messages.
func (rs *requestSession) popFlash() (success, errMsg string) {
	success, _ = rs.cookie.Values[cookieKeySuccess].(string)
	errMsg, _ = rs.cookie.Values[cookieKeyError].(string)
	delete(rs.cookie.Values, cookieKeySuccess)
	delete(rs.cookie.Values, cookieKeyError)
	return success, errMsg
}
