package todo

import "time"

// Event names as they appear in the journal.
const (
	EventTodoCreated          = "todoCreated"
	EventTodoCompleted        = "todoCompleted"
	EventTodoUncompleted      = "todoUncompleted"
	EventTodoDeleted          = "todoDeleted"
	EventTodoClearedCompleted = "todoClearedCompleted"
	EventUIStateSet           = "uiStateSet"
)

// Event is an immutable record of something that happened to the todo list.
type Event interface {
	EventName() string
}

type TodoCreated struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

func (TodoCreated) EventName() string { return EventTodoCreated }

type TodoCompleted struct {
	ID string `json:"id"`
}

func (TodoCompleted) EventName() string { return EventTodoCompleted }

type TodoUncompleted struct {
	ID string `json:"id"`
}

func (TodoUncompleted) EventName() string { return EventTodoUncompleted }

// TodoDeleted soft-deletes a single todo.
type TodoDeleted struct {
	ID        string    `json:"id"`
	DeletedAt time.Time `json:"deletedAt"`
}

func (TodoDeleted) EventName() string { return EventTodoDeleted }

// TodoClearedCompleted soft-deletes every todo that is completed at the time
// the event is applied.
type TodoClearedCompleted struct {
	DeletedAt time.Time `json:"deletedAt"`
}

func (TodoClearedCompleted) EventName() string { return EventTodoClearedCompleted }

// UIStateSet is a partial update of UIState: nil fields are left untouched.
type UIStateSet struct {
	Filter      *Filter `json:"filter,omitempty"`
	NewTodoText *string `json:"newTodoText,omitempty"`
}

func (UIStateSet) EventName() string { return EventUIStateSet }
