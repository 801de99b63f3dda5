// Package services composes the todo core into the operations the shell
// exposes: a derived View of the list and reference-based edits.
package services
