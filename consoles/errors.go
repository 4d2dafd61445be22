package consoles

import "errors"

// ErrInterrupted is returned when ctrl-c is read in raw mode, where it raises no signal
var ErrInterrupted = errors.New("interrupted")
