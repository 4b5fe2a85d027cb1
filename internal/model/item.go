package model

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

// ErrEmptyTitle is returned when a todo would end up without a title.
var ErrEmptyTitle = errors.New("empty title")

// Todo is the domain model for a todo entry.
// Identity is the ID; position in a list carries no meaning.
type Todo struct {
	ID    uuid.UUID `json:"id" yaml:"id"`
	Title string    `json:"title" yaml:"title"`
	Done  bool      `json:"done" yaml:"done"`
}

// NewTodo builds an open todo with a fresh time-ordered id.
func NewTodo(title string) (*Todo, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrEmptyTitle
	}
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	return &Todo{ID: id, Title: title}, nil
}

// SetTitle trims and applies title. Blank titles are ignored.
func (t *Todo) SetTitle(title string) bool {
	title = strings.TrimSpace(title)
	if title == "" {
		return false
	}
	t.Title = title
	return true
}

// SetCompleted marks the todo done or open.
func (t *Todo) SetCompleted(done bool) { t.Done = done }
