package httpserver

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/idilsaglam/todolists/internal/metrics"
	"github.com/idilsaglam/todolists/internal/todo"
	"github.com/labstack/echo/v4"
)

// errorHandlingMiddleware turns unexpected handler errors (session backend
// failures, write errors) into a logged 500. Echo HTTP errors pass through.
func errorHandlingMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			err := next(c)
			if err == nil {
				return nil
			}

			var httpErr *echo.HTTPError
			if errors.As(err, &httpErr) {
				return err
			}

			slog.ErrorContext(c.Request().Context(), "Internal error",
				"path", c.Request().URL.Path,
				"method", c.Request().Method,
				"error", err,
			)
			if c.Response().Committed {
				return nil
			}
			if err := c.String(http.StatusInternalServerError, "Something went wrong. Please try again."); err != nil {
				return fmt.Errorf("failed to write error response: %w", err)
			}
			return nil
		}
	}
}

// resultLabel is the metrics label for an operation outcome.
func resultLabel(err error) string {
	if err == nil {
		return metrics.ResultOK
	}
	if kind := todo.KindOf(err); kind != "" {
		return string(kind)
	}
	return "error"
}

// isUserError reports whether err is a recoverable validation or lookup failure
// to be shown to the user, as opposed to an internal failure.
func isUserError(err error) bool {
	return todo.KindOf(err) != ""
}
