package store

import (
	"time"

	"github.com/dmitrijs2005/gophtodo/internal/todo"
)

// state is the materialized view of the journal. todos keeps creation order.
type state struct {
	todos []todo.Todo
	index map[string]int
	ui    todo.UIState
}

func newState() *state {
	return &state{index: make(map[string]int), ui: todo.DefaultUIState()}
}

// apply folds one event into the state. Events for unknown ids are ignored.
func (s *state) apply(ev todo.Event) {
	switch e := ev.(type) {
	case todo.TodoCreated:
		if _, ok := s.index[e.ID]; ok {
			return
		}
		s.index[e.ID] = len(s.todos)
		s.todos = append(s.todos, todo.Todo{ID: e.ID, Text: e.Text})

	case todo.TodoCompleted:
		s.update(e.ID, func(t *todo.Todo) { t.Completed = true })

	case todo.TodoUncompleted:
		s.update(e.ID, func(t *todo.Todo) { t.Completed = false })

	case todo.TodoDeleted:
		s.update(e.ID, func(t *todo.Todo) { markDeleted(t, e.DeletedAt) })

	case todo.TodoClearedCompleted:
		for i := range s.todos {
			if s.todos[i].Completed {
				markDeleted(&s.todos[i], e.DeletedAt)
			}
		}

	case todo.UIStateSet:
		if e.Filter != nil {
			s.ui.Filter = *e.Filter
		}
		if e.NewTodoText != nil {
			s.ui.NewTodoText = *e.NewTodoText
		}
	}
}

func (s *state) update(id string, fn func(*todo.Todo)) {
	if i, ok := s.index[id]; ok {
		fn(&s.todos[i])
	}
}

// markDeleted sets DeletedAt once; a deleted todo stays deleted.
func markDeleted(t *todo.Todo, at time.Time) {
	if t.DeletedAt != nil {
		return
	}
	at = at.UTC()
	t.DeletedAt = &at
}

func (s *state) query(q todo.Query) []todo.Todo {
	out := make([]todo.Todo, 0, len(s.todos))
	for _, t := range s.todos {
		if q.Match(t) {
			out = append(out, t)
		}
	}
	return out
}
