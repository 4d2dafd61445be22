package engines

import "errors"

var (
	ErrNotInitialized   = errors.New("engine not initialized")
	ErrNoProgram        = errors.New("no program loaded")
	ErrUnterminatedLoop = errors.New("unterminated loop")
	ErrStepLimit        = errors.New("step limit exceeded")
)
