package todo

import "errors"

// Kind classifies why a validation or store operation was refused.
type Kind string

const (
	KindInvalidLength Kind = "invalid_length"
	KindDuplicateName Kind = "duplicate_name"
	KindNotFound      Kind = "not_found"
)

// Error is returned by every validator and store operation in this package.
// All kinds are recoverable; Message is meant to be shown to the user as-is.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Is matches on Kind only, so errors.Is(err, ErrNotFound) holds for both
// list and todo lookups.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// Sentinels for errors.Is.
var (
	ErrInvalidLength = &Error{Kind: KindInvalidLength, Message: "invalid length"}
	ErrDuplicateName = &Error{Kind: KindDuplicateName, Message: "duplicate name"}
	ErrNotFound      = &Error{Kind: KindNotFound, Message: "not found"}
)

const (
	msgListNameLength = "List name must be between 1 and 100 characters."
	msgListNameUnique = "List name must be unique."
	msgTodoNameLength = "Todo must be between 1 and 100 characters."
	msgListNotFound   = "The specified list was not found."
	msgTodoNotFound   = "The specified todo was not found."
)

var (
	errListNameLength = &Error{Kind: KindInvalidLength, Message: msgListNameLength}
	errListNameUnique = &Error{Kind: KindDuplicateName, Message: msgListNameUnique}
	errTodoNameLength = &Error{Kind: KindInvalidLength, Message: msgTodoNameLength}
	errListNotFound   = &Error{Kind: KindNotFound, Message: msgListNotFound}
	errTodoNotFound   = &Error{Kind: KindNotFound, Message: msgTodoNotFound}
)

// KindOf reports the Kind carried by err, or "" when err is not an *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}
