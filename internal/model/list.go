package model

// Todo is a single task entry inside a list.
type Todo struct {
	Name      string `json:"name" yaml:"name"`
	Completed bool   `json:"completed" yaml:"completed"`
}

// TodoList is a named, ordered collection of todos.
// Position in Todos is the todo's address; there are no stable IDs.
type TodoList struct {
	Name  string `json:"name" yaml:"name"`
	Todos []Todo `json:"todos" yaml:"todos"`
}

// Store holds every list belonging to one session.
type Store struct {
	Lists []TodoList `json:"lists" yaml:"lists"`
}

// Stats returns how many todos are done and how many are still pending.
func (l TodoList) Stats() (done, pending int) {
	for _, t := range l.Todos {
		if t.Completed {
			done++
		} else {
			pending++
		}
	}
	return
}

// Clone returns a deep copy so callers can mutate without aliasing the original.
//
// The copy is normalized: nil Lists and nil Todos become empty slices, the same
// shape jsonstore.Decode and empty sessions produce. Store values compared after
// a mutation therefore match s.Clone(), not a nil-holding s.
func (s Store) Clone() Store {
	if s.Lists == nil {
		return Store{Lists: []TodoList{}}
	}
	lists := make([]TodoList, len(s.Lists))
	for i, l := range s.Lists {
		todos := make([]Todo, len(l.Todos))
		copy(todos, l.Todos)
		lists[i] = TodoList{Name: l.Name, Todos: todos}
	}
	return Store{Lists: lists}
}
