package cli

import (
	"fmt"
	"strings"

	"github.com/dmitrijs2005/gophtodo/internal/client/services"
	"github.com/dmitrijs2005/gophtodo/internal/todo"
)

const shortIDLen = 8

// renderView lays out the todo list screen as plain text lines.
//
//	1. [ ] buy milk (3f2a9c1d)
//	2. [x] walk the dog (77b0e412)
//	1 item left | [All] Active Completed | clear completed
func renderView(v services.View) []string {
	var lines []string

	switch {
	case v.Total == 0:
		lines = append(lines, "Nothing to do.")
	case len(v.Todos) == 0:
		lines = append(lines, fmt.Sprintf("No %s todos.", v.Filter))
	}

	for i, t := range v.Todos {
		mark := " "
		if t.Completed {
			mark = "x"
		}
		lines = append(lines, fmt.Sprintf("%d. [%s] %s (%s)", i+1, mark, t.Text, shortID(t.ID)))
	}

	if v.Total > 0 {
		parts := []string{todo.ItemsLeft(v.ActiveCount), renderFilters(v.Filter)}
		if v.HasCompleted {
			parts = append(parts, "clear completed")
		}
		lines = append(lines, strings.Join(parts, " | "))
	}

	if v.NewTodoText != "" {
		lines = append(lines, fmt.Sprintf("draft: %s", v.NewTodoText))
	}
	return lines
}

func renderFilters(active todo.Filter) string {
	names := make([]string, 0, len(todo.Filters()))
	for _, f := range todo.Filters() {
		if f == active {
			names = append(names, "["+f.Title()+"]")
			continue
		}
		names = append(names, f.Title())
	}
	return strings.Join(names, " ")
}

func shortID(id string) string {
	if len(id) <= shortIDLen {
		return id
	}
	return id[:shortIDLen]
}
