package catalog

import "fmt"

// UnknownUnitError reports a unit name missing from the catalog.
// Suggestions holds every known unit name, closest to the input first.
type UnknownUnitError struct {
	Name        string
	Suggestions []string
}

// Error implements the error interface for UnknownUnitError.
func (e *UnknownUnitError) Error() string {
	return fmt.Sprintf("error: unknown unit '%s'", e.Name)
}

// UnknownSubstanceError reports a substance name missing from the density
// table. Suggestions holds every known substance name, closest first.
type UnknownSubstanceError struct {
	Name        string
	Suggestions []string
}

// Error implements the error interface for UnknownSubstanceError.
func (e *UnknownSubstanceError) Error() string {
	return fmt.Sprintf("error: the density of '%s' is unknown", e.Name)
}
