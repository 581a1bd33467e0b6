package menu

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMalformedInput marks a missing or unparseable mode payload.
var ErrMalformedInput = errors.New("malformed input")

// malformed tags err with ErrMalformedInput and the mode it came from.
func malformed(mode Mode, detail string, err error) error {
	detail = strings.TrimSpace(detail)
	if err != nil {
		return fmt.Errorf("%w: %s: %s: %w", ErrMalformedInput, mode, detail, err)
	}
	return fmt.Errorf("%w: %s: %s", ErrMalformedInput, mode, detail)
}
