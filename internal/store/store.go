// Package store holds todos in memory, in insertion order.
// Nothing is written to disk; a Store lives as long as the process.
// A Store is not safe for concurrent use.
package store

import (
	"slices"

	"github.com/google/uuid"

	"github.com/idilsaglam/todolist/internal/model"
)

// Store is an ordered list of todos. The zero value is not usable; call New.
type Store struct {
	items []*model.Todo
}

// New returns an empty store.
func New() *Store {
	return &Store{}
}

// Add appends a new open todo. Blank titles are ignored and yield nil.
// Duplicate titles are allowed.
func (s *Store) Add(title string) *model.Todo {
	td, err := model.NewTodo(title)
	if err != nil {
		return nil
	}
	s.items = append(s.items, td)
	return td
}

// List returns every todo in insertion order. The slice is a copy but the
// todos are shared with the store.
func (s *Store) List() []*model.Todo {
	out := make([]*model.Todo, len(s.items))
	copy(out, s.items)
	return out
}

// Len is the number of todos in the store.
func (s *Store) Len() int { return len(s.items) }

// Get looks a todo up by id.
func (s *Store) Get(id uuid.UUID) (*model.Todo, bool) {
	i := s.IndexOf(id)
	if i < 0 {
		return nil, false
	}
	return s.items[i], true
}

// IndexOf reports the position of id in the full list, or -1.
func (s *Store) IndexOf(id uuid.UUID) int {
	for i, td := range s.items {
		if td.ID == id {
			return i
		}
	}
	return -1
}

// RemoveAt deletes the todo at index in the full list.
// Out-of-range indexes are a no-op.
func (s *Store) RemoveAt(index int) bool {
	if index < 0 || index >= len(s.items) {
		return false
	}
	s.items = slices.Delete(s.items, index, index+1)
	return true
}

// Remove deletes the todo with the given id. Unknown ids are a no-op.
func (s *Store) Remove(id uuid.UUID) bool {
	return s.RemoveAt(s.IndexOf(id))
}

// Query returns the todos whose Done flag equals completed, keeping order.
func (s *Store) Query(completed bool) []*model.Todo {
	var out []*model.Todo
	for _, td := range s.items {
		if td.Done == completed {
			out = append(out, td)
		}
	}
	return out
}

// RemoveCompleted keeps only open todos and returns how many were dropped.
func (s *Store) RemoveCompleted() int {
	before := len(s.items)
	s.items = s.Query(false)
	return before - len(s.items)
}
