package nfa

import "strings"

// Compile parses a pattern string into a Program, using sep to delimit
// labels in both the pattern and the names matched against it.
//
// Tokens are classified as:
//
//	"*"    wildcard, zero or one segment
//	"+"    wildcard, exactly one segment
//	"**"   wildcard, zero or more segments
//	"**+"  wildcard, one or more segments
//
// Any other token containing '*' or '+' fails with a *ParseError. Any other
// token is an exact literal label. Empty tokens compile to empty literals;
// the matching engine skips empty name segments, so an empty pattern can
// never match a non-empty name.
//
// Adjacent wildcard steps are folded into equivalent but more compact
// forms, bounding the number of live positions the engine must track
// without changing which names match.
func Compile(pattern string, sep rune) (*Program, error) {
	p := &Program{sep: sep, sepStr: string(sep)}

	offset := 0
	rest := pattern
	for {
		i := strings.Index(rest, p.sepStr)
		token := rest
		if i >= 0 {
			token = rest[:i]
		}

		if err := p.appendToken(token, offset, pattern); err != nil {
			return nil, err
		}

		if i < 0 {
			return p, nil
		}
		rest = rest[i+len(p.sepStr):]
		offset += i + len(p.sepStr)
	}
}

// appendToken classifies one raw token and appends the resulting step,
// folding it into the preceding wildcard step where possible. offset is
// the byte position of the token's first byte in pattern, reported in
// ParseError.
func (p *Program) appendToken(token string, offset int, pattern string) error {
	var multi, optional bool
	switch token {
	case "*":
		optional = true
	case "+":
		// exactly one segment
	case "**":
		multi, optional = true, true
	case "**+":
		multi = true
	default:
		if strings.ContainsAny(token, "*+") {
			return &ParseError{Token: token, Position: offset, Pattern: pattern}
		}
		p.steps = append(p.steps, StaticStep(token))
		return nil
	}

	if n := len(p.steps); n > 0 && p.steps[n-1].kind == StepWildcard {
		last := &p.steps[n-1]

		// **.** = **
		if last.multi && last.optional && multi && optional {
			return nil
		}

		// **.+ = **+ and **+.* = **+. At least one side must be multi:
		// +.* is NOT folded, because "+.*" requires the first of the two
		// segments to be present while "**+" does not tie presence to
		// position.
		if optional != last.optional && (last.multi || multi) {
			last.multi = true
			last.optional = false
			return nil
		}

		// **+.+ = +.**+ and **+.**+ = +.**+: shift the repetition one
		// position right so chains cascade into a single trailing
		// repeating step preceded by required single-segment steps.
		if last.multi && !optional && !last.optional {
			last.multi = false
			multi = true
		}
	}

	p.steps = append(p.steps, WildcardStep(multi, optional))
	return nil
}
