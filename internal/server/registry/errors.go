package registry

import "errors"

// Sentinel errors matched by the dispatcher with errors.Is. Anything else
// escaping the service is an internal fault, not a client error.
var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrAlreadyRegistered  = errors.New("patient already registered")
	ErrBadEntryValue      = errors.New("entry value out of range")
	ErrNotFound           = errors.New("patient not in register")
)
