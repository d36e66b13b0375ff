package reflow

import (
	"errors"
	"fmt"
)

// ErrTokenTooLong is returned when a token cannot be placed on a line of
// requested width. It is not recoverable - such block cannot be laid out.
var ErrTokenTooLong = errors.New("token too long")

// TokenTooLongError carries offending token and width it has to fit into.
type TokenTooLongError struct {
	Token string
	Width int
}

func (e *TokenTooLongError) Error() string {
	return fmt.Sprintf("%s: %q does not fit into %d columns", ErrTokenTooLong, e.Token, e.Width)
}

func (e *TokenTooLongError) Is(target error) bool {
	return target == ErrTokenTooLong
}
