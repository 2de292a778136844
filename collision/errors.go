package collision

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidHandle = errors.New("collision: invalid handle")
	ErrRegistryFull  = errors.New("collision: registry exhausted")
	ErrInvalidShape  = errors.New("collision: invalid shape")
	ErrInvalidGroup  = errors.New("collision: invalid group")
)

// fatal panics with err wrapped around a diagnostic. Callers recovering the
// panic can match the sentinel with errors.Is.
func fatal(err error, format string, args ...any) {
	panic(fmt.Errorf("%w: "+format, append([]any{err}, args...)...))
}
