package jsonstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/idilsaglam/todolists/internal/model"
	"gopkg.in/yaml.v3"
)

// JSON-backed storage for the local CLI session. Single file, human-readable, portable.
// No locking; one user, one process at a time.

const DefaultFileName = "todos.json"

// DefaultPath resolves the data file: $TODO_FILE if set, else todos.json in the working dir.
func DefaultPath() (string, error) {
	if p := os.Getenv("TODO_FILE"); p != "" {
		return p, nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getwd: %w", err)
	}
	return filepath.Join(wd, DefaultFileName), nil
}

// Load reads the store at path. A missing file is an empty store.
func Load(path string) (model.Store, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return model.Store{Lists: []model.TodoList{}}, nil
		}
		return model.Store{}, fmt.Errorf("read file: %w", err)
	}
	return Decode(b)
}

// Save writes the store to path, replacing any previous content.
func Save(path string, s model.Store) error {
	b, err := Encode(s)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir: %w", err)
		}
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	return nil
}

// Encode is the on-disk and in-session wire form of a store.
func Encode(s model.Store) ([]byte, error) {
	if s.Lists == nil {
		s.Lists = []model.TodoList{}
	}
	b, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("json marshal: %w", err)
	}
	return b, nil
}

// Decode parses the output of Encode. Empty input is an empty store.
func Decode(b []byte) (model.Store, error) {
	s := model.Store{Lists: []model.TodoList{}}
	if len(b) == 0 {
		return s, nil
	}
	if err := json.Unmarshal(b, &s); err != nil {
		return model.Store{}, fmt.Errorf("json unmarshal: %w", err)
	}
	if s.Lists == nil {
		s.Lists = []model.TodoList{}
	}
	for i := range s.Lists {
		if s.Lists[i].Todos == nil {
			s.Lists[i].Todos = []model.Todo{}
		}
	}
	return s, nil
}

// ExportYAML writes the store as YAML, for reading or pasting elsewhere.
func ExportYAML(w io.Writer, s model.Store) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("yaml encode: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("yaml close: %w", err)
	}
	return nil
}
