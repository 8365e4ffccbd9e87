// Package request turns the raw CLI tokens into a structured conversion
// request. Classification is positional: the first free token is the
// quantity, the next the source unit, and so on, with "to" or "in" marking
// the boundary between the two sides and "of" accepted as filler before a
// substance name.
package request

import "strings"

// Request is a parsed conversion request. All fields are lower-cased. The
// quantity keeps its original spelling (aside from case) so the output line
// can echo it back verbatim.
type Request struct {
	Quantity      string
	FromUnit      string
	FromSubstance string
	ToUnit        string
	ToSubstance   string
}

// Substance returns the effective substance of the request: whichever side
// names one. Parse guarantees both sides agree when both are present.
func (r *Request) Substance() string {
	if r.FromSubstance != "" {
		return r.FromSubstance
	}
	return r.ToSubstance
}

// Parse classifies tokens into a Request. Each token is tried against the
// slots in order: separator, quantity, from-unit, from-substance (before the
// separator), to-unit, to-substance (after it). A second separator or a
// token with no free slot is a syntax error; mismatched substances on the
// two sides are rejected after classification.
func Parse(tokens []string) (*Request, error) {
	var req Request
	separatorFound := false

	for _, raw := range tokens {
		tok := strings.ToLower(raw)
		switch {
		case tok == "to" || tok == "in":
			if separatorFound {
				return nil, &SyntaxError{Reason: "multiple 'to' or 'in' not allowed"}
			}
			separatorFound = true
		case req.Quantity == "":
			req.Quantity = tok
		case req.FromUnit == "":
			req.FromUnit = tok
		case !separatorFound && req.FromSubstance == "":
			if tok != "of" {
				req.FromSubstance = tok
			}
		case separatorFound && req.ToUnit == "":
			req.ToUnit = tok
		case separatorFound && req.ToSubstance == "":
			if tok != "of" {
				req.ToSubstance = tok
			}
		default:
			return nil, &SyntaxError{
				Reason: "expected '<quantity> <unit> [substance] to <unit> [substance]'",
			}
		}
	}

	if req.FromSubstance != "" && req.ToSubstance != "" && req.FromSubstance != req.ToSubstance {
		return nil, &SubstanceMismatchError{From: req.FromSubstance, To: req.ToSubstance}
	}

	return &req, nil
}
