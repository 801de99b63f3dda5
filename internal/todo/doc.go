// Package todo holds the todo domain model and the view logic derived from it.
//
// The package is split the way the data flows through a client:
//
//   - model.go: Todo, UIState and the Filter enumeration
//   - queries.go: declarative selections evaluated by the store
//   - view.go: pure helpers over an already fetched slice of todos
//   - events.go, codec.go: domain events committed to the store
//   - actions.go: the dispatcher turning user intents into events
//
// Nothing here keeps hidden state. State changes happen only inside whatever
// Committer the Actions are bound to.
package todo
