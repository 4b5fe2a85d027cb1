// Package view holds the presentation state over a todo store: the active
// filter, the new-todo input buffer and which todos are being edited.
//
// A Controller is driven from a single UI event loop and is not safe for
// concurrent use.
package view

import (
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/idilsaglam/todolist/internal/model"
	"github.com/idilsaglam/todolist/internal/store"
)

type Controller struct {
	store    *store.Store
	logger   *slog.Logger
	onChange func()

	input   string
	filter  Filter
	editing map[uuid.UUID]bool
}

func New(st *store.Store, opts ...Option) *Controller {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return &Controller{
		store:    st,
		logger:   o.logger,
		onChange: o.onChange,
		filter:   o.filter,
		editing:  make(map[uuid.UUID]bool),
	}
}

func (c *Controller) changed() {
	if c.onChange != nil {
		c.onChange()
	}
}

// ---------------------------------------------------
// Input buffer
// ---------------------------------------------------

func (c *Controller) Input() string      { return c.input }
func (c *Controller) SetInput(s string) { c.input = s }

// AddTodo moves the input buffer into the store. An empty buffer does
// nothing; a whitespace-only one is rejected by the store but still cleared.
func (c *Controller) AddTodo() bool {
	if c.input == "" {
		return false
	}
	td := c.store.Add(c.input)
	c.input = ""
	if td == nil {
		c.logger.Debug("add ignored", "reason", "blank title")
		return false
	}
	c.logger.Debug("todo added", "id", td.ID, "title", td.Title)
	c.changed()
	return true
}

// ---------------------------------------------------
// Views
// ---------------------------------------------------

// CurrentList returns the todos visible under the current filter.
func (c *Controller) CurrentList() []*model.Todo {
	switch c.filter {
	case Active:
		return c.store.Query(false)
	case Completed:
		return c.store.Query(true)
	default:
		return c.store.List()
	}
}

// AllList returns every todo regardless of filter.
func (c *Controller) AllList() []*model.Todo { return c.store.List() }

// AllCompleted reports whether every todo is done. True for an empty list.
func (c *Controller) AllCompleted() bool {
	return len(c.AllList()) == len(c.store.Query(true))
}

// Counts returns the number of done and open todos.
func (c *Controller) Counts() (done, active int) {
	return len(c.store.Query(true)), len(c.store.Query(false))
}

// ---------------------------------------------------
// Filter
// ---------------------------------------------------

func (c *Controller) Filter() Filter { return c.filter }

// SetFilter is unvalidated; values outside Filters show the full list.
func (c *Controller) SetFilter(f Filter) {
	if c.filter == f {
		return
	}
	c.filter = f
	c.logger.Debug("filter set", "filter", f)
	c.changed()
}

func (c *Controller) IsFilter(f Filter) bool { return c.filter == f }

// ---------------------------------------------------
// Removal
// ---------------------------------------------------

// Remove deletes the todo with the given id from the store.
func (c *Controller) Remove(id uuid.UUID) bool {
	if !c.store.Remove(id) {
		return false
	}
	delete(c.editing, id)
	c.logger.Debug("todo removed", "id", id)
	c.changed()
	return true
}

// RemoveAt deletes the todo at index in CurrentList, the view callers
// obtain indexes from. Out-of-range indexes are a no-op.
func (c *Controller) RemoveAt(index int) bool {
	list := c.CurrentList()
	if index < 0 || index >= len(list) {
		return false
	}
	return c.Remove(list[index].ID)
}

func (c *Controller) RemoveAllCompleted() int {
	for _, td := range c.store.Query(true) {
		delete(c.editing, td.ID)
	}
	n := c.store.RemoveCompleted()
	if n > 0 {
		c.logger.Debug("completed todos removed", "count", n)
		c.changed()
	}
	return n
}

// ---------------------------------------------------
// Completion
// ---------------------------------------------------

func (c *Controller) SetCompleted(id uuid.UUID, done bool) bool {
	td, ok := c.store.Get(id)
	if !ok {
		return false
	}
	if td.Done != done {
		td.SetCompleted(done)
		c.logger.Debug("todo completion set", "id", id, "done", done)
		c.changed()
	}
	return true
}

func (c *Controller) Toggle(id uuid.UUID) bool {
	td, ok := c.store.Get(id)
	if !ok {
		return false
	}
	return c.SetCompleted(id, !td.Done)
}

// SetAllTo marks every todo, in order, as done or open.
func (c *Controller) SetAllTo(completed bool) {
	n := 0
	for _, td := range c.AllList() {
		if td.Done != completed {
			td.SetCompleted(completed)
			n++
		}
	}
	if n > 0 {
		c.logger.Debug("completion set on all", "done", completed, "count", n)
		c.changed()
	}
}

// ---------------------------------------------------
// Editing
// ---------------------------------------------------

func (c *Controller) IsEditing(id uuid.UUID) bool { return c.editing[id] }

func (c *Controller) BeginEdit(id uuid.UUID) bool {
	if _, ok := c.store.Get(id); !ok {
		return false
	}
	if !c.editing[id] {
		c.editing[id] = true
		c.changed()
	}
	return true
}

// CommitEdit applies newTitle to a todo being edited. A blank title deletes
// the todo from the store. Todos not being edited are left alone.
func (c *Controller) CommitEdit(id uuid.UUID, newTitle string) bool {
	if !c.editing[id] {
		return false
	}
	td, ok := c.store.Get(id)
	if !ok {
		delete(c.editing, id)
		return false
	}
	title := strings.TrimSpace(newTitle)
	if title == "" {
		return c.Remove(id)
	}
	td.SetTitle(title)
	delete(c.editing, id)
	c.logger.Debug("todo renamed", "id", id, "title", title)
	c.changed()
	return true
}

func (c *Controller) CancelEdit(id uuid.UUID) {
	if !c.editing[id] {
		return
	}
	delete(c.editing, id)
	c.changed()
}
