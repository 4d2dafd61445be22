package bfeconfigs

import "errors"

var (
	errNotPositive = errors.New("must be positive")
	errNegative    = errors.New("must not be negative")
	errBadEOF      = errors.New("unknown eof mode")
)
