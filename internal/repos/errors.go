package repos

import "errors"

// ErrNotFound is returned when an id has no matching record.
var ErrNotFound = errors.New("record not found")
