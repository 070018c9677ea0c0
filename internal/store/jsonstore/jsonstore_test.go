package jsonstore

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/idilsaglam/todolists/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func sample() model.Store {
	return model.Store{Lists: []model.TodoList{
		{Name: "Groceries", Todos: []model.Todo{{Name: "milk"}, {Name: "eggs", Completed: true}}},
		{Name: "Empty", Todos: []model.Todo{}},
	}}
}

func TestLoad_MissingFileIsEmptyStore(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	require.NoError(t, err)
	assert.NotNil(t, s.Lists)
	assert.Empty(t, s.Lists)
}

func TestSaveThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", DefaultFileName)

	require.NoError(t, Save(path, sample()))
	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, sample(), got)
}

func TestLoad_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFileName)
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := Load(path)
	assert.ErrorContains(t, err, "json unmarshal")
}

func TestDecode_NormalisesNullSlices(t *testing.T) {
	s, err := Decode([]byte(`{"lists":[{"name":"A","todos":null}]}`))
	require.NoError(t, err)
	require.Len(t, s.Lists, 1)
	assert.NotNil(t, s.Lists[0].Todos)

	s, err = Decode(nil)
	require.NoError(t, err)
	assert.NotNil(t, s.Lists)
}

func TestEncode_NilListsWritesEmptyArray(t *testing.T) {
	b, err := Encode(model.Store{})
	require.NoError(t, err)
	assert.JSONEq(t, `{"lists":[]}`, string(b))
}

func TestDefaultPath_EnvOverride(t *testing.T) {
	t.Setenv("TODO_FILE", "/tmp/custom.json")
	p, err := DefaultPath()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/custom.json", p)
}

func TestExportYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, ExportYAML(&buf, sample()))

	var back model.Store
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &back))
	assert.Equal(t, sample(), back)
	assert.Contains(t, buf.String(), "name: Groceries")
}
