package todo

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Committer accepts domain events for durable recording. Commit never reports
// failure to the caller; the committer owns persistence and its errors.
type Committer interface {
	Commit(events ...Event)
}

// Option configures Actions.
type Option func(*Actions)

// WithIDGenerator replaces the default uuid based id generator.
func WithIDGenerator(fn func() string) Option {
	return func(a *Actions) { a.newID = fn }
}

// WithClock replaces time.Now as the source of deletion timestamps.
func WithClock(fn func() time.Time) Option {
	return func(a *Actions) { a.now = fn }
}

// Actions translates user intents into events committed to a store.
// It holds no todo state; callers pass whatever the operation needs.
type Actions struct {
	store Committer
	newID func() string
	now   func() time.Time
}

// NewActions binds the dispatcher to store.
func NewActions(store Committer, opts ...Option) *Actions {
	a := &Actions{store: store, newID: uuid.NewString, now: time.Now}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// AddTodo creates a todo from the trimmed text. Blank text is ignored.
func (a *Actions) AddTodo(text string) {
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}
	a.store.Commit(TodoCreated{ID: a.newID(), Text: text})
}

// SubmitNewTodo adds text as a todo and empties the input buffer.
func (a *Actions) SubmitNewTodo(text string) {
	a.AddTodo(text)
	a.SetNewTodoText("")
}

// ToggleTodo flips the completion flag; completed is the current value.
func (a *Actions) ToggleTodo(id string, completed bool) {
	if completed {
		a.store.Commit(TodoUncompleted{ID: id})
		return
	}
	a.store.Commit(TodoCompleted{ID: id})
}

func (a *Actions) DeleteTodo(id string) {
	a.store.Commit(TodoDeleted{ID: id, DeletedAt: a.now()})
}

// ClearCompleted emits a single event; the store decides which todos it hits.
func (a *Actions) ClearCompleted() {
	a.store.Commit(TodoClearedCompleted{DeletedAt: a.now()})
}

func (a *Actions) SetFilter(filter Filter) {
	a.store.Commit(UIStateSet{Filter: &filter})
}

func (a *Actions) SetNewTodoText(text string) {
	a.store.Commit(UIStateSet{NewTodoText: &text})
}
