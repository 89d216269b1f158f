// Package prefilter provides fast candidate filtering for pattern sets
// using the static labels of compiled patterns.
//
// A prefilter is used to quickly reject names that cannot possibly match
// any pattern containing a literal label. All distinct static labels are
// compiled into a single Aho-Corasick automaton; if the automaton finds no
// occurrence in a name, no pattern with at least one static step can match
// it, and only all-wildcard patterns need to be evaluated. A prefilter hit
// is only a candidate; the caller must verify with the full matching
// engine.
package prefilter

import (
	"github.com/coregx/ahocorasick"

	"github.com/coregx/domainpattern/nfa"
)

// Literals is a quick-reject filter over the static labels of one or more
// compiled patterns. A nil *Literals is valid and filters nothing (every
// name is a candidate).
//
// Literals is immutable once built and safe for concurrent use.
type Literals struct {
	automaton *ahocorasick.Automaton
}

// FromPrograms builds a prefilter from the static labels of the given
// programs. Empty labels are ignored (they can never match a non-empty
// segment). Returns nil if there are no usable literals or the automaton
// cannot be built; a nil prefilter treats every name as a candidate.
func FromPrograms(programs ...*nfa.Program) *Literals {
	seen := make(map[string]struct{})
	builder := ahocorasick.NewBuilder()
	count := 0

	for _, p := range programs {
		for i := 0; i < p.NumSteps(); i++ {
			step := p.Step(i)
			if step.Kind() != nfa.StepStatic || step.Label() == "" {
				continue
			}
			if _, dup := seen[step.Label()]; dup {
				continue
			}
			seen[step.Label()] = struct{}{}
			builder.AddPattern([]byte(step.Label()))
			count++
		}
	}

	if count == 0 {
		return nil
	}
	automaton, err := builder.Build()
	if err != nil {
		return nil
	}
	return &Literals{automaton: automaton}
}

// IsCandidate reports whether name may match a pattern guarded by this
// prefilter. False is definitive: no guarded pattern with a static label
// can match name. True requires verification by the matching engine.
func (l *Literals) IsCandidate(name string) bool {
	if l == nil {
		return true
	}
	return l.automaton.IsMatch([]byte(name))
}

// Find returns the byte index of the first static-label occurrence in name
// at or after start, or -1 if there is none.
func (l *Literals) Find(name string, start int) int {
	if l == nil {
		return -1
	}
	m := l.automaton.Find([]byte(name), start)
	if m == nil {
		return -1
	}
	return m.Start
}
