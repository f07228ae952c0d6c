package ir

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound   = errors.New("not found")
	ErrInvalidKey = errors.New("invalid key")
)

// TypeErr reports use of an accessor or mutator against the wrong
// variant. These are programmer errors, not data errors.
type TypeErr struct {
	Want Type
	Got  Type
}

func (e *TypeErr) Error() string {
	return fmt.Sprintf("type error: this value is %s but %s was requested", e.Got, e.Want)
}
