// Package session persists each browser session's store between requests.
//
// A request loads the store by value at its start and saves the new value at
// its end. Two tabs of the same session race with last write wins.
package session

import (
	"context"

	"github.com/google/uuid"
	"github.com/idilsaglam/todolists/internal/model"
)

// Repository loads and saves the store belonging to one session ID.
// Load of an unknown or expired ID returns an empty store, not an error.
type Repository interface {
	Load(ctx context.Context, id uuid.UUID) (model.Store, error)
	Save(ctx context.Context, id uuid.UUID, s model.Store) error
	Delete(ctx context.Context, id uuid.UUID) error
	Ping(ctx context.Context) error
}

// NewID returns a fresh random session ID.
func NewID() uuid.UUID {
	return uuid.New()
}

func emptyStore() model.Store {
	return model.Store{Lists: []model.TodoList{}}
}
