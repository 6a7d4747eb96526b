package repositories

import "errors"

// ErrNotFound is returned when a referenced entity does not exist or is
// not owned by the caller. Callers match it with errors.Is.
var ErrNotFound = errors.New("record not found")
