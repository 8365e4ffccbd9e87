package convert

import (
	"fmt"

	"github.com/vk/kitchenconv/internal/catalog"
)

// MissingSubstanceError reports a weight↔volume conversion with no substance
// to take the density from.
type MissingSubstanceError struct {
	FromUnit     string
	FromCategory catalog.Category
	ToUnit       string
	ToCategory   catalog.Category
}

// Error implements the error interface for MissingSubstanceError.
func (e *MissingSubstanceError) Error() string {
	return fmt.Sprintf(
		"error: converting '%s' (a %s) into '%s' (a %s) requires knowing the substance which is converted",
		e.FromUnit, e.FromCategory, e.ToUnit, e.ToCategory)
}

// IncompatibleCategoryError reports a unit pairing that no table can bridge,
// such as temperature mixed with anything else.
type IncompatibleCategoryError struct {
	FromUnit     string
	FromCategory catalog.Category
	ToUnit       string
	ToCategory   catalog.Category
}

// Error implements the error interface for IncompatibleCategoryError.
func (e *IncompatibleCategoryError) Error() string {
	return fmt.Sprintf("error: cannot convert from '%s' (a %s) into '%s' (a %s)",
		e.FromUnit, e.FromCategory, e.ToUnit, e.ToCategory)
}
