// Package quantity parses the quantity token of a conversion request.
package quantity

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseError reports a quantity token that is not a number.
type ParseError struct {
	Input string
}

// Error implements the error interface for ParseError.
func (e *ParseError) Error() string {
	return fmt.Sprintf("error: could not convert '%s' into a number", e.Input)
}

// Parse converts a quantity token into a float. Three spellings are
// accepted: plain decimals ("1.5"), scientific notation ("5e-2"), and
// fractions of two non-negative integers ("3/4"). Each side of a fraction
// must consume its whole substring, so "3.5/4" is rejected. A zero
// denominator is not guarded and follows IEEE division semantics.
func Parse(s string) (float64, error) {
	if num, den, found := strings.Cut(s, "/"); found {
		up, err := strconv.ParseUint(num, 10, 64)
		if err != nil {
			return 0, &ParseError{Input: s}
		}
		low, err := strconv.ParseUint(den, 10, 64)
		if err != nil {
			return 0, &ParseError{Input: s}
		}
		return float64(up) / float64(low), nil
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, &ParseError{Input: s}
	}
	return v, nil
}
