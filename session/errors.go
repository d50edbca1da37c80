package session

import "errors"

// Sentinel errors for the session package.
var (
	// ErrUnknownCommand is returned for a key or command name with no handler.
	ErrUnknownCommand = errors.New("session: unknown command")

	// ErrBadArgs is returned when a command has the wrong number or kind of
	// arguments. The returned error wraps it with details.
	ErrBadArgs = errors.New("session: bad arguments")
)
