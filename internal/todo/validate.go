package todo

import (
	"unicode/utf8"

	"github.com/idilsaglam/todolists/internal/model"
)

const (
	minNameLen = 1
	maxNameLen = 100
)

// validLength counts characters, not bytes: "café" is 4 long.
func validLength(name string) bool {
	n := utf8.RuneCountInString(name)
	return n >= minNameLen && n <= maxNameLen
}

// ValidateListName checks candidate against the length bounds and against the
// names in existing (exact, case-sensitive match). It returns nil when valid.
func ValidateListName(candidate string, existing []model.TodoList) error {
	if !validLength(candidate) {
		return errListNameLength
	}
	for _, l := range existing {
		if l.Name == candidate {
			return errListNameUnique
		}
	}
	return nil
}

// ValidateTodoName checks candidate against the length bounds.
func ValidateTodoName(candidate string) error {
	if !validLength(candidate) {
		return errTodoNameLength
	}
	return nil
}
