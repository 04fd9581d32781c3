package element

import (
	"regexp"
	"strconv"
	"strings"
)

// tokenRe matches one element symbol (one uppercase letter, optionally
// followed by one lowercase letter) followed by an optional decimal atom
// count; an absent count means 1.
var tokenRe = regexp.MustCompile(`^([A-Z][a-z]?)(\d*)`)

// Parse tokenizes a formula string into a Formula against t. Whitespace is
// insignificant and stripped before tokenizing. Repeated symbols
// accumulate. The empty string is legal and yields an empty Formula.
//
// Returns ErrUnknownElement if a token names a symbol absent from t, or
// ErrMalformedFormula if trailing input cannot be consumed as a token.
func Parse(formula string, t *Table) (Formula, error) {
	s := strings.Join(strings.Fields(formula), "")
	out := Formula{}

	for len(s) > 0 {
		loc := tokenRe.FindStringSubmatchIndex(s)
		if loc == nil || loc[2] < 0 {
			return nil, errorf("Parse", ErrMalformedFormula)
		}

		sym := Symbol(s[loc[2]:loc[3]])
		if !t.Has(sym) {
			return nil, errorf("Parse", ErrUnknownElement)
		}

		count := 1
		if countStart, countEnd := loc[4], loc[5]; countEnd > countStart {
			n, err := strconv.Atoi(s[countStart:countEnd])
			if err != nil {
				return nil, errorf("Parse", ErrMalformedFormula)
			}
			count = n
		}

		out[sym] += count
		s = s[loc[1]:]
	}

	return out, nil
}
