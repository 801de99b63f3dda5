package todo

import (
	"errors"
	"strings"
	"time"
)

// ErrInvalidFilter is returned by ParseFilter for an unknown filter name.
var ErrInvalidFilter = errors.New("invalid filter")

// Filter selects which todos the list shows.
type Filter string

const (
	FilterAll       Filter = "all"
	FilterActive    Filter = "active"
	FilterCompleted Filter = "completed"
)

// Filters returns the filters in display order.
func Filters() []Filter {
	return []Filter{FilterAll, FilterActive, FilterCompleted}
}

// ParseFilter maps a user supplied name onto a Filter.
func ParseFilter(s string) (Filter, error) {
	switch f := Filter(strings.ToLower(strings.TrimSpace(s))); f {
	case FilterAll, FilterActive, FilterCompleted:
		return f, nil
	default:
		return "", ErrInvalidFilter
	}
}

// Title is the capitalized label shown for the filter.
func (f Filter) Title() string {
	if f == "" {
		return ""
	}
	return strings.ToUpper(string(f[:1])) + string(f[1:])
}

// Todo is a single task. DeletedAt marks a soft-deleted todo.
type Todo struct {
	ID        string
	Text      string
	Completed bool
	DeletedAt *time.Time
}

// Deleted reports whether the todo has been soft-deleted.
func (t Todo) Deleted() bool {
	return t.DeletedAt != nil
}

// UIState is the single per-client record driving the list view.
type UIState struct {
	Filter      Filter
	NewTodoText string
}

// DefaultUIState is the state of a client that has never committed uiStateSet.
func DefaultUIState() UIState {
	return UIState{Filter: FilterAll}
}
