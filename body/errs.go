package body

import "errors"

var (
	ErrOutOfRange = errors.New("out of range")
)
