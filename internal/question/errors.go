package question

import "errors"

var (
	// ErrNotFound is returned when a question or category id does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicate is returned when inserting a question whose text already exists.
	ErrDuplicate = errors.New("question already exists")

	// ErrInvalidQuestion is returned when a create payload is missing a
	// required field or carries an out-of-range difficulty.
	ErrInvalidQuestion = errors.New("invalid question")
)
