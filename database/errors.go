package database

import "errors"

// ErrNotFound is returned when a single-row lookup matches nothing.
var ErrNotFound = errors.New("reading not found")
