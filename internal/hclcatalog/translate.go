package hclcatalog

import (
	"fmt"
	"math"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"

	"github.com/vk/kitchenconv/internal/catalog"
)

// evalNumber evaluates an HCL expression with no variables in scope and
// converts the result to a float. Arithmetic is fine ("0.2366 / 2");
// references to anything are not.
func evalNumber(expr hcl.Expression, what, owner string) (float64, error) {
	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return 0, fmt.Errorf("invalid %s for '%s': %w", what, owner, diags)
	}
	if val.IsNull() || val.Type() != cty.Number {
		return 0, fmt.Errorf("%s for '%s' at %s must be a number", what, owner, expr.Range())
	}

	var f float64
	if err := gocty.FromCtyValue(val, &f); err != nil {
		return 0, fmt.Errorf("invalid %s for '%s' at %s: %w", what, owner, expr.Range(), err)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) || f <= 0 {
		return 0, fmt.Errorf("%s for '%s' at %s must be a finite number greater than zero", what, owner, expr.Range())
	}
	return f, nil
}

// translateUnit converts a unit block into a catalog entry. Temperature is
// rejected: its conversion is affine with hardcoded Celsius/Fahrenheit
// scales, so a factor alone cannot describe a new scale.
func translateUnit(b *unitBlock) (catalog.Unit, error) {
	var category catalog.Category
	switch strings.ToLower(b.Category) {
	case "weight":
		category = catalog.Weight
	case "volume":
		category = catalog.Volume
	case "temperature":
		return catalog.Unit{}, fmt.Errorf("unit '%s': custom temperature scales are not supported", b.Name)
	default:
		return catalog.Unit{}, fmt.Errorf("unit '%s': unknown category '%s' (want 'weight' or 'volume')", b.Name, b.Category)
	}

	factor, err := evalNumber(b.Factor, "factor", b.Name)
	if err != nil {
		return catalog.Unit{}, err
	}
	return catalog.Unit{Factor: factor, Category: category}, nil
}

// translateSubstance converts a substance block into a density in kg/L.
func translateSubstance(b *substanceBlock) (float64, error) {
	return evalNumber(b.Density, "density", b.Name)
}
