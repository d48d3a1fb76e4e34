package dal

import "errors"

var (
	ErrNotFound = errors.New("donor not found")
)
