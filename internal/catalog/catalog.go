// Package catalog holds the unit and density tables and resolves names
// against them. The built-in tables are immutable constants of the program;
// user overlays may extend or override them before the first lookup.
package catalog

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/vk/kitchenconv/internal/suggest"
)

// Category classifies a unit by the kind of quantity it measures.
type Category int

const (
	Weight Category = iota
	Volume
	Temperature
)

// String returns the lower-case category name used in error messages.
func (c Category) String() string {
	switch c {
	case Weight:
		return "weight"
	case Volume:
		return "volume"
	case Temperature:
		return "temperature"
	}
	return fmt.Sprintf("category(%d)", int(c))
}

// Temperature conversion is affine rather than multiplicative, so the factor
// of a temperature unit is not a real SI ratio. It only identifies the scale.
const (
	ScaleCelsius    = 1
	ScaleFahrenheit = 0
)

// Unit describes a single measurement unit. Factor is the multiplicative
// conversion to the category's SI base (kg for weight, L for volume); for
// temperature it holds a scale sentinel.
type Unit struct {
	Factor   float64
	Category Category
}

// Catalog maps unit names to units and substance names to densities. Names
// are stored lower-cased and resolved case-insensitively. Writes are
// last-write-wins, which is what lets overlays shadow built-in entries.
type Catalog struct {
	units     map[string]Unit
	densities map[string]float64
}

// New returns an empty catalog.
func New() *Catalog {
	return &Catalog{
		units:     make(map[string]Unit),
		densities: make(map[string]float64),
	}
}

// SetUnit adds or replaces a unit entry.
func (c *Catalog) SetUnit(name string, u Unit) {
	c.units[strings.ToLower(name)] = u
}

// SetDensity adds or replaces a substance density entry, in kg per liter.
func (c *Catalog) SetDensity(name string, density float64) {
	c.densities[strings.ToLower(name)] = density
}

// Unit resolves a unit name. On a miss it returns an *UnknownUnitError
// carrying every known unit name ranked by similarity to the input.
func (c *Catalog) Unit(name string) (Unit, error) {
	lower := strings.ToLower(name)
	if u, ok := c.units[lower]; ok {
		return u, nil
	}
	return Unit{}, &UnknownUnitError{
		Name:        name,
		Suggestions: suggest.Rank(lower, c.UnitNames()),
	}
}

// Density resolves a substance name to its density in kg per liter. On a
// miss it returns an *UnknownSubstanceError with ranked suggestions.
func (c *Catalog) Density(name string) (float64, error) {
	lower := strings.ToLower(name)
	if d, ok := c.densities[lower]; ok {
		return d, nil
	}
	return 0, &UnknownSubstanceError{
		Name:        name,
		Suggestions: suggest.Rank(lower, c.SubstanceNames()),
	}
}

// UnitNames returns all known unit names, sorted.
func (c *Catalog) UnitNames() []string {
	names := make([]string, 0, len(c.units))
	for name := range c.units {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SubstanceNames returns all known substance names, sorted.
func (c *Catalog) SubstanceNames() []string {
	names := make([]string, 0, len(c.densities))
	for name := range c.densities {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// WriteListing prints the known units grouped by category, followed by the
// known substances with their densities.
func (c *Catalog) WriteListing(w io.Writer) error {
	for _, category := range []Category{Weight, Volume, Temperature} {
		if _, err := fmt.Fprintf(w, "%s units:\n", category); err != nil {
			return err
		}
		for _, name := range c.UnitNames() {
			u := c.units[name]
			if u.Category != category {
				continue
			}
			if category == Temperature {
				if _, err := fmt.Fprintf(w, "  %s\n", name); err != nil {
					return err
				}
				continue
			}
			if _, err := fmt.Fprintf(w, "  %-6s %g\n", name, u.Factor); err != nil {
				return err
			}
		}
	}

	if _, err := fmt.Fprintln(w, "substances (density in kg/l):"); err != nil {
		return err
	}
	for _, name := range c.SubstanceNames() {
		if _, err := fmt.Fprintf(w, "  %-14s %g\n", name, c.densities[name]); err != nil {
			return err
		}
	}
	return nil
}
