package services

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/dmitrijs2005/gophtodo/internal/common"
	"github.com/dmitrijs2005/gophtodo/internal/todo"
)

// Source is the read side of the store the service renders from.
// *store.Store satisfies it.
type Source interface {
	Query(q todo.Query) []todo.Todo
	UIState() todo.UIState
	Subscribe(q todo.Query, fn func([]todo.Todo)) (cancel func())
	SubscribeUIState(fn func(todo.UIState)) (cancel func())
}

// View is everything the todo list screen shows.
type View struct {
	// Todos are the visible todos under the current filter.
	Todos []todo.Todo
	// Total counts visible todos regardless of the filter.
	Total        int
	ActiveCount  int
	HasCompleted bool
	Filter       todo.Filter
	NewTodoText  string
}

// BuildView derives a View from the visible todos and the UI state.
func BuildView(visible []todo.Todo, ui todo.UIState) View {
	return View{
		Todos:        todo.FilterTodos(visible, ui.Filter),
		Total:        len(visible),
		ActiveCount:  todo.CountActiveTodos(visible),
		HasCompleted: todo.HasCompletedTodos(visible),
		Filter:       ui.Filter,
		NewTodoText:  ui.NewTodoText,
	}
}

type TodoService interface {
	View() View
	Watch(fn func(View)) (cancel func())

	Type(text string)
	Submit()
	Toggle(ref string) error
	Delete(ref string) error
	ClearCompleted()
	SetFilter(f todo.Filter)
}

type todoService struct {
	source  Source
	actions *todo.Actions
}

func NewTodoService(source Source, actions *todo.Actions) TodoService {
	return &todoService{source: source, actions: actions}
}

func (s *todoService) View() View {
	return BuildView(s.source.Query(todo.VisibleTodos), s.source.UIState())
}

// Watch calls fn with the current view and again whenever the visible todos
// or the UI state change.
func (s *todoService) Watch(fn func(View)) func() {
	var (
		mu      sync.Mutex
		visible []todo.Todo
		ui      todo.UIState
		started bool
	)

	emit := func(update func()) {
		mu.Lock()
		update()
		if !started {
			mu.Unlock()
			return
		}
		v := BuildView(visible, ui)
		mu.Unlock()
		fn(v)
	}

	cancelTodos := s.source.Subscribe(todo.VisibleTodos, func(t []todo.Todo) {
		emit(func() { visible = t })
	})
	cancelUI := s.source.SubscribeUIState(func(u todo.UIState) {
		emit(func() { ui = u })
	})

	mu.Lock()
	started = true
	v := BuildView(visible, ui)
	mu.Unlock()
	fn(v)

	return func() {
		cancelTodos()
		cancelUI()
	}
}

// Type replaces the new todo input buffer.
func (s *todoService) Type(text string) {
	s.actions.SetNewTodoText(text)
}

// Submit turns the buffered input into a todo and clears the buffer.
func (s *todoService) Submit() {
	s.actions.SubmitNewTodo(s.source.UIState().NewTodoText)
}

func (s *todoService) Toggle(ref string) error {
	t, err := s.resolve(ref)
	if err != nil {
		return err
	}
	s.actions.ToggleTodo(t.ID, t.Completed)
	return nil
}

func (s *todoService) Delete(ref string) error {
	t, err := s.resolve(ref)
	if err != nil {
		return err
	}
	s.actions.DeleteTodo(t.ID)
	return nil
}

func (s *todoService) ClearCompleted() {
	s.actions.ClearCompleted()
}

func (s *todoService) SetFilter(f todo.Filter) {
	s.actions.SetFilter(f)
}

// resolve finds a visible todo by its 1-based position in the current view
// or by a unique id prefix. A number that is a valid position wins; any other
// number is tried as an id prefix.
func (s *todoService) resolve(ref string) (todo.Todo, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return todo.Todo{}, fmt.Errorf("%w: empty todo reference", common.ErrorIncorrectInput)
	}

	if n, err := strconv.Atoi(ref); err == nil {
		if shown := s.View().Todos; n >= 1 && n <= len(shown) {
			return shown[n-1], nil
		}
	}

	var found []todo.Todo
	for _, t := range s.source.Query(todo.VisibleTodos) {
		if strings.HasPrefix(t.ID, ref) {
			found = append(found, t)
		}
	}
	switch len(found) {
	case 0:
		return todo.Todo{}, fmt.Errorf("%w: no todo at position or with id %q", common.ErrorNotFound, ref)
	case 1:
		return found[0], nil
	default:
		return todo.Todo{}, fmt.Errorf("%w: id prefix %q matches %d todos", common.ErrorIncorrectInput, ref, len(found))
	}
}
