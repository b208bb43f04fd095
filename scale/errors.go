package scale

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownRoot      = errors.New("unknown root")
	ErrInvalidFormula   = errors.New("invalid formula")
	ErrUnknownScaleType = errors.New("unknown scale type")
)

type UnknownRootError struct {
	Root string
}

func (e *UnknownRootError) Error() string {
	return fmt.Sprintf("unknown root note %q", e.Root)
}

func (e *UnknownRootError) Is(target error) bool {
	return target == ErrUnknownRoot
}
