package db

import "errors"

var (
	// ErrNotFound is returned when a key is not found under an owner.
	ErrNotFound = errors.New("key not found")
	// ErrOwnerNotFound is returned when the owner has no stored keys at all.
	ErrOwnerNotFound = errors.New("owner not found")
)
