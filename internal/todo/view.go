package todo

import "fmt"

// FilterTodos returns the todos shown under filter, preserving input order.
// FilterAll (and any unknown filter) returns todos itself.
func FilterTodos(todos []Todo, filter Filter) []Todo {
	switch filter {
	case FilterActive:
		return selectTodos(todos, false)
	case FilterCompleted:
		return selectTodos(todos, true)
	default:
		return todos
	}
}

func selectTodos(todos []Todo, completed bool) []Todo {
	out := make([]Todo, 0, len(todos))
	for _, t := range todos {
		if t.Completed == completed {
			out = append(out, t)
		}
	}
	return out
}

// CountActiveTodos counts todos that are not completed.
func CountActiveTodos(todos []Todo) int {
	n := 0
	for _, t := range todos {
		if !t.Completed {
			n++
		}
	}
	return n
}

// HasCompletedTodos reports whether any todo is completed.
func HasCompletedTodos(todos []Todo) bool {
	for _, t := range todos {
		if t.Completed {
			return true
		}
	}
	return false
}

// ItemsLeft renders the footer counter, e.g. "1 item left" or "3 items left".
func ItemsLeft(n int) string {
	if n == 1 {
		return "1 item left"
	}
	return fmt.Sprintf("%d items left", n)
}
