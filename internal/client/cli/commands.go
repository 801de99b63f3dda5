package cli

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/gophtodo/internal/todo"
)

func (a *App) List(ctx context.Context) error {
	for _, line := range renderView(a.todos.View()) {
		printlnFn(line)
	}
	return nil
}

// Add creates a todo straight from the command line, leaving the buffer alone.
func (a *App) Add(ctx context.Context, text string) error {
	if strings.TrimSpace(text) == "" {
		printlnFn("Nothing to add.")
		return nil
	}
	draft := a.todos.View().NewTodoText
	a.todos.Type(text)
	a.todos.Submit()
	if draft != "" {
		a.todos.Type(draft)
	}
	return a.List(ctx)
}

func (a *App) Type(ctx context.Context, text string) error {
	a.todos.Type(text)
	return nil
}

func (a *App) Submit(ctx context.Context) error {
	a.todos.Submit()
	return a.List(ctx)
}

func (a *App) Toggle(ctx context.Context, ref string) error {
	if err := a.todos.Toggle(ref); err != nil {
		return err
	}
	return a.List(ctx)
}

func (a *App) Delete(ctx context.Context, ref string) error {
	if err := a.todos.Delete(ref); err != nil {
		return err
	}
	return a.List(ctx)
}

func (a *App) ClearCompleted(ctx context.Context) error {
	a.todos.ClearCompleted()
	return a.List(ctx)
}

func (a *App) Filter(ctx context.Context, name string) error {
	f, err := todo.ParseFilter(name)
	if err != nil {
		return err
	}
	a.todos.SetFilter(f)
	return a.List(ctx)
}
