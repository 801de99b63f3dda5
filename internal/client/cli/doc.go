// Package cli provides the interactive todo command-line client.
//
// It wires configuration, the local event journal, the todo store and the
// view service, then runs a line-oriented REPL until the user exits.
//
// Key features:
//   - Add todos directly or through the new todo buffer (type / submit)
//   - Toggle and delete todos by list position or id prefix
//   - Filter the list (all, active, completed) and clear completed todos
//
// The REPL is started via App.Run(ctx), which blocks until stdin is exhausted
// or the user exits. See App and runREPL for details.
package cli
