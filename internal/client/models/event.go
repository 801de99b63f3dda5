// Package models defines the records the client persists locally.
package models

import "time"

// EventRecord is one committed domain event as stored in the journal.
type EventRecord struct {
	// Seq is the journal position, assigned on append and strictly increasing.
	Seq int64

	// Name is the event name, e.g. "todoCreated".
	Name string

	// Payload is the JSON encoded event body.
	Payload []byte

	// CommittedAt is the wall-clock time the batch was committed, in UTC.
	CommittedAt time.Time
}
