package sigs

import (
	"github.com/boxmeout/coffer/errors"
)

// ErrInvalidSequence is returned when a signature carries a sequence other
// than the one expected for its key.
var ErrInvalidSequence = errors.Register(120, "invalid sequence number")
