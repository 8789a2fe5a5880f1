package prefix

import (
	"fmt"

	"github.com/zeebo/errs"
)

// Error is the class of errors returned by this package.
var Error = errs.Class("prefix")

// ErrNoPrefixAllowed is returned when a custom constraint would permit
// no prefix at all.
var ErrNoPrefixAllowed = Error.New("at least one prefix must be allowed")

// ParseError records text that does not name a prefix.
type ParseError struct {
	Input string
}

// Error implements error.
func (e *ParseError) Error() string {
	return fmt.Sprintf("no such prefix: %q", e.Input)
}
