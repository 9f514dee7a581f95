// SPDX-License-Identifier: MIT
// Package: costar/builder
//
// errors.go - sentinel errors and per-record failure type.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • A record whose cast cannot be extracted is NOT a build failure: it is
//     collected as a RecordError in BuildResult.Skipped and the batch goes on.
//   • Option constructors panic on meaningless values; Build never panics.

package builder

import (
	"errors"
	"fmt"
)

// ErrNilRecord indicates a nil Record in the input slice. Such entries are
// skipped like undecodable ones.
var ErrNilRecord = errors.New("builder: nil record")

// ErrRecordPanic indicates a Record method panicked, e.g. a typed nil
// pointer behind the interface. The record is skipped.
var ErrRecordPanic = errors.New("builder: record panicked")

// ErrBuildCanceled indicates the context was done before all records were
// processed. It wraps the context error.
var ErrBuildCanceled = errors.New("builder: build canceled")

// RecordError describes one skipped record.
type RecordError struct {
	// Index is the record position in the input slice.
	Index int

	// Title is the record title, possibly empty.
	Title string

	// Err is the cast-extraction error.
	Err error
}

// Error implements the error interface.
func (e RecordError) Error() string {
	return fmt.Sprintf("record %d (%q): %v", e.Index, e.Title, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e RecordError) Unwrap() error {
	return e.Err
}
