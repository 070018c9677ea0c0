package todo

import (
	"strings"
	"testing"

	"github.com/idilsaglam/todolists/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestValidateListName(t *testing.T) {
	existing := []model.TodoList{{Name: "Groceries"}, {Name: "Work"}}

	tests := []struct {
		name      string
		candidate string
		want      error
	}{
		{"empty", "", ErrInvalidLength},
		{"too long", strings.Repeat("a", 101), ErrInvalidLength},
		{"one char", "a", nil},
		{"exactly 100", strings.Repeat("a", 100), nil},
		{"100 multibyte chars", strings.Repeat("é", 100), nil},
		{"101 multibyte chars", strings.Repeat("é", 101), ErrInvalidLength},
		{"duplicate", "Groceries", ErrDuplicateName},
		{"duplicate differs by case", "groceries", nil},
		{"duplicate with trailing space", "Work ", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateListName(tt.candidate, existing)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestValidateListName_LengthCheckedBeforeUniqueness(t *testing.T) {
	err := ValidateListName("", []model.TodoList{{Name: ""}})
	assert.ErrorIs(t, err, ErrInvalidLength)
	assert.Equal(t, "List name must be between 1 and 100 characters.", err.Error())
}

func TestValidateTodoName(t *testing.T) {
	assert.ErrorIs(t, ValidateTodoName(""), ErrInvalidLength)
	assert.ErrorIs(t, ValidateTodoName(strings.Repeat("x", 101)), ErrInvalidLength)
	assert.NoError(t, ValidateTodoName("x"))
	assert.NoError(t, ValidateTodoName(strings.Repeat("x", 100)))
}

func TestParseCompleted(t *testing.T) {
	assert.True(t, ParseCompleted("true"))
	for _, raw := range []string{"", "false", "TRUE", "True", "1", "yes", " true"} {
		assert.False(t, ParseCompleted(raw), raw)
	}
}

func TestParseIndex(t *testing.T) {
	n, err := ParseIndex("3")
	assert.NoError(t, err)
	assert.Equal(t, 3, n)

	n, err = ParseIndex("007")
	assert.NoError(t, err)
	assert.Equal(t, 7, n)

	for _, raw := range []string{"", "abc", "-1", "+0", "+1", " 1", "1 ", "1e2", "1.5", "٣", "99999999999999999999999"} {
		_, err := ParseIndex(raw)
		assert.ErrorIs(t, err, ErrNotFound, raw)
	}
}

func TestDisplayLists_IncompleteFirst(t *testing.T) {
	s := model.Store{Lists: []model.TodoList{
		{Name: "done", Todos: []model.Todo{{Name: "x", Completed: true}}},
		{Name: "empty"},
		{Name: "open", Todos: []model.Todo{{Name: "y"}}},
	}}

	got := DisplayLists(s)
	assert.Equal(t, "empty", got[0].List.Name)
	assert.Equal(t, 1, got[0].Index)
	assert.Equal(t, "open", got[1].List.Name)
	assert.Equal(t, 2, got[1].Index)
	assert.Equal(t, "done", got[2].List.Name)
	assert.Equal(t, 0, got[2].Index)
}

func TestDisplayTodos_PendingFirst(t *testing.T) {
	l := model.TodoList{Name: "A", Todos: []model.Todo{
		{Name: "a", Completed: true},
		{Name: "b"},
		{Name: "c", Completed: true},
		{Name: "d"},
	}}

	got := DisplayTodos(l)
	var names []string
	var idx []int
	for _, it := range got {
		names = append(names, it.Todo.Name)
		idx = append(idx, it.Index)
	}
	assert.Equal(t, []string{"b", "d", "a", "c"}, names)
	assert.Equal(t, []int{1, 3, 0, 2}, idx)
}
