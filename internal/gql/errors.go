package gql

import "errors"

// Resolver failures surface verbatim in the GraphQL errors list; there is
// no structured error-code taxonomy at the protocol boundary.
var (
	// ErrUnauthenticated is returned by every protected operation invoked
	// without a valid session. Raised before any store access.
	ErrUnauthenticated = errors.New("not authenticated")

	// ErrInvalidCredentials covers both an unknown email and a password
	// mismatch, so sign-in failures don't reveal which one it was.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrNotFound is returned when an operation addresses a task list id
	// that does not exist and the contract requires it to.
	ErrNotFound = errors.New("task list not found")
)
