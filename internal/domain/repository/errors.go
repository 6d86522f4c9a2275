package repository

import "errors"

// Sentinel errors shared by all repository implementations. Services and
// handlers match on these with errors.Is and never inspect driver errors.
var (
	ErrNotFound         = errors.New("not found")
	ErrDuplicateEmail   = errors.New("email already registered")
	ErrDuplicateRequest = errors.New("connection request already exists")
)
