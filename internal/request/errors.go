package request

import "fmt"

// SyntaxError reports an argument sequence that does not match the
// '<quantity> <unit> [substance] {to|in} <unit> [substance]' shape.
type SyntaxError struct {
	Reason string
}

// Error implements the error interface for SyntaxError.
func (e *SyntaxError) Error() string {
	return "syntax error: " + e.Reason
}

// SubstanceMismatchError reports different substances on the two sides of a
// conversion.
type SubstanceMismatchError struct {
	From string
	To   string
}

// Error implements the error interface for SubstanceMismatchError.
func (e *SubstanceMismatchError) Error() string {
	return fmt.Sprintf("error: cannot convert a quantity of '%s' into one of '%s'", e.From, e.To)
}
