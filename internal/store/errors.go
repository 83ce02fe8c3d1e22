package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrOperationNotSaved is returned when an INSERT into the
	// pending-operation queue completes without a driver error but reports
	// zero affected rows, meaning nothing was actually persisted. The queue
	// must never fail silently: callers surface this to the user.
	ErrOperationNotSaved = errors.New("pending operation was not saved")

	// ErrOfflineDataNotSaved is the offline-cache counterpart of
	// ErrOperationNotSaved.
	ErrOfflineDataNotSaved = errors.New("offline data record was not saved")

	// ErrLocalSessionNotFound is returned when no saved session row exists.
	// A fresh install and a logged-out client both hit this path.
	ErrLocalSessionNotFound = errors.New("local session not found")
)

// Low-level database operation errors, wrapped by repository methods when a
// SQL-level operation fails before any domain logic can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. an invalid filter combination).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")
)
