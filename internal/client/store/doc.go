// Package store is the client's event-sourced todo store.
//
// Commit journals a batch of domain events and then folds them into the
// in-memory state with the reducer. Queries are evaluated against that state;
// subscribers are re-run after every commit and called only when their result
// changed. Open replays the journal, so a restarted client sees the state it
// had before.
//
// A Store is safe for concurrent use. Subscriber callbacks run on the
// committing goroutine after the store lock has been released, one commit at
// a time and in commit order, so a subscriber's last delivery always matches
// the store. Callbacks may read the store but must not Commit or Subscribe.
package store
