package view

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownFilter is returned by ParseFilter for names it does not know.
var ErrUnknownFilter = errors.New("unknown filter")

// Filter selects which todos the current view shows. It never changes the store.
type Filter int

const (
	All Filter = iota
	Active
	Completed
)

// Filters lists the selectable filters in tab order.
var Filters = []Filter{All, Active, Completed}

func (f Filter) String() string {
	switch f {
	case Active:
		return "active"
	case Completed:
		return "completed"
	default:
		return "all"
	}
}

func ParseFilter(s string) (Filter, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "all":
		return All, nil
	case "active":
		return Active, nil
	case "completed", "done":
		return Completed, nil
	}
	return All, fmt.Errorf("%w: %q", ErrUnknownFilter, s)
}

// Next cycles All -> Active -> Completed -> All.
func (f Filter) Next() Filter {
	switch f {
	case All:
		return Active
	case Active:
		return Completed
	default:
		return All
	}
}
