package contract

import "errors"

// Failures shared by every program; each program keeps its own errors.go for
// codes specific to it.
var (
	ErrArithmeticOverflow = errors.New("arithmetic overflow")
	ErrRecordNotFound     = errors.New("record not found")
	ErrRecordExists       = errors.New("record already exists")
)
