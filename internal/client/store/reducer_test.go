package store

import (
	"testing"
	"time"

	"github.com/dmitrijs2005/gophtodo/internal/todo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func applyAll(events ...todo.Event) *state {
	st := newState()
	for _, ev := range events {
		st.apply(ev)
	}
	return st
}

func TestApply_CreateKeepsOrderAndIgnoresDuplicateID(t *testing.T) {
	st := applyAll(
		todo.TodoCreated{ID: "a", Text: "first"},
		todo.TodoCreated{ID: "b", Text: "second"},
		todo.TodoCreated{ID: "a", Text: "again"},
	)

	got := st.query(todo.VisibleTodos)
	require.Len(t, got, 2)
	assert.Equal(t, "first", got[0].Text)
	assert.Equal(t, "b", got[1].ID)
}

func TestApply_ToggleAndUnknownID(t *testing.T) {
	st := applyAll(
		todo.TodoCreated{ID: "a", Text: "x"},
		todo.TodoCompleted{ID: "a"},
		todo.TodoCompleted{ID: "missing"},
	)
	assert.True(t, st.todos[0].Completed)

	st.apply(todo.TodoUncompleted{ID: "a"})
	assert.False(t, st.todos[0].Completed)
	assert.Len(t, st.todos, 1)
}

func TestApply_DeleteIsMonotonic(t *testing.T) {
	first := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	later := first.Add(time.Hour)

	st := applyAll(
		todo.TodoCreated{ID: "a", Text: "x"},
		todo.TodoDeleted{ID: "a", DeletedAt: first},
		todo.TodoDeleted{ID: "a", DeletedAt: later},
		todo.TodoClearedCompleted{DeletedAt: later},
	)

	require.NotNil(t, st.todos[0].DeletedAt)
	assert.True(t, first.Equal(*st.todos[0].DeletedAt))
	assert.Empty(t, st.query(todo.VisibleTodos))
}

func TestApply_ClearCompletedHitsOnlyCompletedAtApplyTime(t *testing.T) {
	at := time.Date(2025, 2, 2, 0, 0, 0, 0, time.UTC)

	st := applyAll(
		todo.TodoCreated{ID: "a", Text: "open"},
		todo.TodoCreated{ID: "b", Text: "done"},
		todo.TodoCreated{ID: "c", Text: "done too"},
		todo.TodoCompleted{ID: "b"},
		todo.TodoCompleted{ID: "c"},
		todo.TodoClearedCompleted{DeletedAt: at},
		todo.TodoCreated{ID: "d", Text: "later"},
		todo.TodoCompleted{ID: "d"},
	)

	visible := st.query(todo.VisibleTodos)
	require.Len(t, visible, 2)
	assert.Equal(t, "a", visible[0].ID)
	assert.Equal(t, "d", visible[1].ID)

	assert.True(t, at.Equal(*st.todos[1].DeletedAt))
	assert.True(t, at.Equal(*st.todos[2].DeletedAt))
	assert.Equal(t, []todo.Todo{st.todos[3]}, st.query(todo.CompletedTodos))
	assert.Equal(t, []todo.Todo{st.todos[0]}, st.query(todo.ActiveTodos))
}

func TestApply_UIStateSetIsPartial(t *testing.T) {
	active := todo.FilterActive
	text := "draft"

	st := applyAll(todo.UIStateSet{NewTodoText: &text})
	assert.Equal(t, todo.UIState{Filter: todo.FilterAll, NewTodoText: "draft"}, st.ui)

	st.apply(todo.UIStateSet{Filter: &active})
	assert.Equal(t, todo.UIState{Filter: todo.FilterActive, NewTodoText: "draft"}, st.ui)
}
