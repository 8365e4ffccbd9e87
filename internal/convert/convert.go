// Package convert applies the catalog tables to a parsed request and
// computes the converted quantity.
package convert

import (
	"context"
	"fmt"
	"strconv"

	"github.com/vk/kitchenconv/internal/catalog"
	"github.com/vk/kitchenconv/internal/ctxlog"
	"github.com/vk/kitchenconv/internal/quantity"
	"github.com/vk/kitchenconv/internal/request"
)

// Result carries the computed value together with the request it answers.
type Result struct {
	Value   float64
	Request *request.Request
}

// String renders the result the way the tool prints it: the quantity echoed
// verbatim, the source unit with its optional substance, then "is" and the
// value with six significant digits.
func (r *Result) String() string {
	of := ""
	if substance := r.Request.Substance(); substance != "" {
		of = " of " + substance
	}
	return fmt.Sprintf("  %s %s%s is %s %s",
		r.Request.Quantity,
		r.Request.FromUnit,
		of,
		strconv.FormatFloat(r.Value, 'g', 6, 64),
		r.Request.ToUnit,
	)
}

// Convert resolves the request against the catalog and computes the target
// quantity.
//
// A weight↔volume pairing needs the substance density: the volume side is
// rewritten into an equivalent weight unit (factor times density) before the
// category check, so the ordinary factor ratio applies afterwards.
// Temperature is affine rather than multiplicative because Celsius and
// Fahrenheit do not share a zero.
func Convert(ctx context.Context, cat *catalog.Catalog, req *request.Request) (*Result, error) {
	logger := ctxlog.FromContext(ctx)

	qty, err := quantity.Parse(req.Quantity)
	if err != nil {
		return nil, err
	}

	from, err := cat.Unit(req.FromUnit)
	if err != nil {
		return nil, err
	}
	to, err := cat.Unit(req.ToUnit)
	if err != nil {
		return nil, err
	}
	logger.Debug("Units resolved.",
		"from", req.FromUnit, "from_category", from.Category,
		"to", req.ToUnit, "to_category", to.Category)

	crossesWeightVolume := (from.Category == catalog.Weight && to.Category == catalog.Volume) ||
		(from.Category == catalog.Volume && to.Category == catalog.Weight)
	if crossesWeightVolume {
		substance := req.Substance()
		if substance == "" {
			return nil, &MissingSubstanceError{
				FromUnit:     req.FromUnit,
				FromCategory: from.Category,
				ToUnit:       req.ToUnit,
				ToCategory:   to.Category,
			}
		}

		density, err := cat.Density(substance)
		if err != nil {
			return nil, err
		}
		logger.Debug("Rewriting the volume side through the substance density.",
			"substance", substance, "density_kg_per_l", density)

		if from.Category == catalog.Volume {
			from.Category = catalog.Weight
			from.Factor *= density
		} else {
			to.Category = catalog.Weight
			to.Factor *= density
		}
	}

	if from.Category != to.Category {
		return nil, &IncompatibleCategoryError{
			FromUnit:     req.FromUnit,
			FromCategory: from.Category,
			ToUnit:       req.ToUnit,
			ToCategory:   to.Category,
		}
	}

	var value float64
	if from.Category == catalog.Temperature {
		switch {
		case from.Factor == to.Factor:
			value = qty
		case from.Factor == catalog.ScaleCelsius:
			value = qty*9/5 + 32
		default:
			value = (qty - 32) * 5 / 9
		}
	} else {
		value = qty * from.Factor / to.Factor
	}

	logger.Debug("Conversion computed.", "value", value)
	return &Result{Value: value, Request: req}, nil
}
