// Package ids parses wire-format entity references.
package ids

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// ErrInvalidIDFormat is the sentinel wrapped by every InvalidIDError.
var ErrInvalidIDFormat = errors.New("invalid id format")

// InvalidIDError reports an id string that is not a UUID.
type InvalidIDError struct {
	Input string
	Err   error
}

func (e *InvalidIDError) Error() string {
	return fmt.Sprintf("%q is not a valid id", e.Input)
}

func (e *InvalidIDError) Unwrap() []error {
	return []error{ErrInvalidIDFormat, e.Err}
}

// Parse converts a wire-format id into a UUID.
func Parse(s string) (uuid.UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, &InvalidIDError{Input: s, Err: err}
	}
	return id, nil
}

// ParseAll parses every id in ss, silently dropping the ones that fail.
func ParseAll(ss []string) []uuid.UUID {
	var out []uuid.UUID
	for _, s := range ss {
		if id, err := uuid.Parse(s); err == nil {
			out = append(out, id)
		}
	}
	return out
}
