package dal

import "errors"

var (
	ErrNotFound = errors.New("donation not found")
)
