package dal

import "errors"

var (
	ErrNotFound = errors.New("orphan not found")
)
