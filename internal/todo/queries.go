package todo

// Query is a declarative selection over the todo collection. Every query
// excludes soft-deleted todos; Completed, when set, also pins the flag.
type Query struct {
	Name      string
	Completed *bool
}

func completedIs(v bool) *bool { return &v }

var (
	// VisibleTodos selects every todo that has not been deleted.
	VisibleTodos = Query{Name: "visibleTodos"}
	// ActiveTodos selects todos that are neither completed nor deleted.
	ActiveTodos = Query{Name: "activeTodos", Completed: completedIs(false)}
	// CompletedTodos selects completed todos that have not been deleted.
	CompletedTodos = Query{Name: "completedTodos", Completed: completedIs(true)}
)

// Match reports whether t satisfies the query.
func (q Query) Match(t Todo) bool {
	if t.DeletedAt != nil {
		return false
	}
	if q.Completed != nil && *q.Completed != t.Completed {
		return false
	}
	return true
}
