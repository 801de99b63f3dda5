// Package common defines sentinel errors shared by the client layers.
// Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// ErrStoreMismatch is returned when a journal database was created for a
	// different store id than the one configured.
	ErrStoreMismatch = errors.New("database belongs to another store")

	// ErrorIncorrectInput is returned by shell commands given malformed arguments.
	ErrorIncorrectInput = errors.New("incorrect input")
)
