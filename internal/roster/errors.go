package roster

import "errors"

var (
	// ErrInvalidDateFormat indicates a date string is not YYYY-MM-DD or names
	// a day that does not exist.
	ErrInvalidDateFormat = errors.New("invalid date format")

	// ErrInvalidRecord indicates a person record cannot be registered.
	ErrInvalidRecord = errors.New("invalid record")

	// ErrPersonNotFound indicates a query named someone outside the roster.
	ErrPersonNotFound = errors.New("person not found")

	// ErrUnknownRule indicates a person record carries an unrecognized rule.
	ErrUnknownRule = errors.New("unknown shift rule")
)
