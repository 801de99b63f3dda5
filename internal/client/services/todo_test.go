package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/dmitrijs2005/gophtodo/internal/client/store"
	"github.com/dmitrijs2005/gophtodo/internal/common"
	"github.com/dmitrijs2005/gophtodo/internal/logging"
	"github.com/dmitrijs2005/gophtodo/internal/todo"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) (TodoService, *store.Store) {
	t.Helper()
	st, err := store.Open(context.Background(), store.NewMemoryJournal(), logging.Discard())
	require.NoError(t, err)

	n := 0
	actions := todo.NewActions(st, todo.WithIDGenerator(func() string {
		n++
		return fmt.Sprintf("id%02d", n)
	}))
	return NewTodoService(st, actions), st
}

func addTodos(svc TodoService, texts ...string) {
	for _, text := range texts {
		svc.Type(text)
		svc.Submit()
	}
}

func TestBuildView(t *testing.T) {
	visible := []todo.Todo{
		{ID: "1", Text: "a"},
		{ID: "2", Text: "b", Completed: true},
		{ID: "3", Text: "c"},
	}

	got := BuildView(visible, todo.UIState{Filter: todo.FilterCompleted, NewTodoText: "d"})

	want := View{
		Todos:        []todo.Todo{{ID: "2", Text: "b", Completed: true}},
		Total:        3,
		ActiveCount:  2,
		HasCompleted: true,
		Filter:       todo.FilterCompleted,
		NewTodoText:  "d",
	}
	assert.Empty(t, cmp.Diff(want, got))
}

func TestBuildView_Empty(t *testing.T) {
	got := BuildView(nil, todo.DefaultUIState())
	assert.Empty(t, got.Todos)
	assert.Zero(t, got.Total)
	assert.Zero(t, got.ActiveCount)
	assert.False(t, got.HasCompleted)
}

func TestSubmit_UsesBufferAndClearsIt(t *testing.T) {
	svc, _ := newTestService(t)

	svc.Type("  buy milk ")
	assert.Equal(t, "  buy milk ", svc.View().NewTodoText)

	svc.Submit()

	v := svc.View()
	require.Len(t, v.Todos, 1)
	assert.Equal(t, "buy milk", v.Todos[0].Text)
	assert.Equal(t, "", v.NewTodoText)
}

func TestSubmit_BlankBufferAddsNothing(t *testing.T) {
	svc, _ := newTestService(t)

	svc.Type("   ")
	svc.Submit()

	assert.Zero(t, svc.View().Total)
	assert.Equal(t, "", svc.View().NewTodoText)
}

func TestToggle_ByPositionAndPrefix(t *testing.T) {
	svc, st := newTestService(t)
	addTodos(svc, "one", "two", "three")

	require.NoError(t, svc.Toggle("2"))
	require.NoError(t, svc.Toggle("id03"))

	completed := st.Query(todo.CompletedTodos)
	require.Len(t, completed, 2)
	assert.Equal(t, "two", completed[0].Text)
	assert.Equal(t, "three", completed[1].Text)

	require.NoError(t, svc.Toggle("2"))
	assert.Len(t, st.Query(todo.CompletedTodos), 1)
}

func TestToggle_PositionFollowsFilter(t *testing.T) {
	svc, st := newTestService(t)
	addTodos(svc, "one", "two")
	require.NoError(t, svc.Toggle("1"))

	svc.SetFilter(todo.FilterActive)
	require.Len(t, svc.View().Todos, 1)
	require.NoError(t, svc.Toggle("1"))

	assert.Empty(t, st.Query(todo.ActiveTodos))
}

func TestResolve_Errors(t *testing.T) {
	svc, _ := newTestService(t)
	addTodos(svc, "one", "two")

	err := svc.Toggle("9")
	require.ErrorIs(t, err, common.ErrorNotFound)

	err = svc.Delete("zzz")
	require.ErrorIs(t, err, common.ErrorNotFound)

	err = svc.Delete("id")
	require.ErrorIs(t, err, common.ErrorIncorrectInput)

	err = svc.Toggle(" ")
	require.ErrorIs(t, err, common.ErrorIncorrectInput)
}

func TestDeleteAndClearCompleted(t *testing.T) {
	svc, _ := newTestService(t)
	addTodos(svc, "one", "two", "three")

	require.NoError(t, svc.Delete("1"))
	require.NoError(t, svc.Toggle("id02"))
	svc.ClearCompleted()

	v := svc.View()
	require.Len(t, v.Todos, 1)
	assert.Equal(t, "three", v.Todos[0].Text)
	assert.False(t, v.HasCompleted)
	assert.Equal(t, 1, v.ActiveCount)

	err := svc.Delete("id01")
	require.ErrorIs(t, err, common.ErrorNotFound)
}

func TestWatch_EmitsInitialAndOnChange(t *testing.T) {
	svc, _ := newTestService(t)

	var views []View
	cancel := svc.Watch(func(v View) { views = append(views, v) })

	require.Len(t, views, 1)
	assert.Zero(t, views[0].Total)
	assert.Equal(t, todo.FilterAll, views[0].Filter)

	addTodos(svc, "one")
	last := views[len(views)-1]
	assert.Equal(t, 1, last.Total)
	assert.Equal(t, "", last.NewTodoText)

	svc.SetFilter(todo.FilterCompleted)
	last = views[len(views)-1]
	assert.Equal(t, todo.FilterCompleted, last.Filter)
	assert.Empty(t, last.Todos)

	cancel()
	n := len(views)
	addTodos(svc, "two")
	assert.Len(t, views, n)
}

func TestToggle_NumericIDPrefix(t *testing.T) {
	st, err := store.Open(context.Background(), store.NewMemoryJournal(), logging.Discard())
	require.NoError(t, err)

	ids := []string{"1234abcd", "5678ef01"}
	n := 0
	actions := todo.NewActions(st, todo.WithIDGenerator(func() string {
		id := ids[n]
		n++
		return id
	}))
	svc := NewTodoService(st, actions)
	addTodos(svc, "first", "second")

	// Out of range as a position, so it is matched against ids.
	require.NoError(t, svc.Toggle("5678"))
	assert.True(t, svc.View().Todos[1].Completed)

	// A valid position takes precedence over an id starting with the same digits.
	require.NoError(t, svc.Toggle("1"))
	assert.True(t, svc.View().Todos[0].Completed)

	err = svc.Toggle("9999")
	require.ErrorIs(t, err, common.ErrorNotFound)
}
