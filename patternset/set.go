// Package patternset matches a name against many compiled patterns at
// once.
//
// A Set is built once from a collection of patterns and is immutable
// thereafter. Matching consults an Aho-Corasick prefilter over the static
// labels of all patterns first: if a name contains none of them, only the
// all-wildcard patterns can possibly match and the rest are skipped
// without running the engine.
package patternset

import (
	"github.com/coregx/domainpattern/nfa"
	"github.com/coregx/domainpattern/prefilter"
)

// Matcher matches a name against a set of rules.
type Matcher interface {
	// Match reports whether the name is matched.
	Match(name string) bool
}

// Set is an immutable collection of compiled patterns. It is safe for
// concurrent use; each Match call uses its own transient engine state.
type Set struct {
	programs []*nfa.Program

	// literals quick-rejects names against the static labels of all
	// patterns; nil when no pattern has a usable literal.
	literals *prefilter.Literals

	// allWildcard holds indices of patterns with no static labels; these
	// bypass the prefilter.
	allWildcard []int
}

var _ Matcher = (*Set)(nil)

// Builder accumulates patterns for a Set.
type Builder struct {
	programs []*nfa.Program
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Add compiles pattern with '.' as separator and adds it to the builder.
func (b *Builder) Add(pattern string) error {
	return b.AddSeparator(pattern, '.')
}

// AddSeparator compiles pattern with the given separator and adds it to
// the builder. Patterns in one set may use different separators.
func (b *Builder) AddSeparator(pattern string, sep rune) error {
	p, err := nfa.Compile(pattern, sep)
	if err != nil {
		return err
	}
	b.AddProgram(p)
	return nil
}

// AddProgram adds an already compiled program to the builder.
func (b *Builder) AddProgram(p *nfa.Program) {
	b.programs = append(b.programs, p)
}

// Len returns the number of patterns added so far.
func (b *Builder) Len() int {
	return len(b.programs)
}

// Build produces an immutable Set from the accumulated patterns. The
// builder can keep being used afterwards; the Set is unaffected.
func (b *Builder) Build() *Set {
	programs := make([]*nfa.Program, len(b.programs))
	copy(programs, b.programs)

	s := &Set{
		programs: programs,
		literals: prefilter.FromPrograms(programs...),
	}
	for i, p := range programs {
		if !hasStaticLabel(p) {
			s.allWildcard = append(s.allWildcard, i)
		}
	}
	return s
}

func hasStaticLabel(p *nfa.Program) bool {
	for i := 0; i < p.NumSteps(); i++ {
		step := p.Step(i)
		if step.Kind() == nfa.StepStatic && step.Label() != "" {
			return true
		}
	}
	return false
}

// Len returns the number of patterns in the set.
func (s *Set) Len() int {
	return len(s.programs)
}

// Match reports whether any pattern in the set matches name.
func (s *Set) Match(name string) bool {
	state := nfa.NewMachineState()

	if !s.literals.IsCandidate(name) {
		for _, i := range s.allWildcard {
			if s.programs[i].MatchesWithState(name, state) {
				return true
			}
		}
		return false
	}

	for _, p := range s.programs {
		if p.MatchesWithState(name, state) {
			return true
		}
	}
	return false
}

// Matching returns the indices, in insertion order, of all patterns that
// match name. It returns nil when none match.
func (s *Set) Matching(name string) []int {
	state := nfa.NewMachineState()

	if !s.literals.IsCandidate(name) {
		var matched []int
		for _, i := range s.allWildcard {
			if s.programs[i].MatchesWithState(name, state) {
				matched = append(matched, i)
			}
		}
		return matched
	}

	var matched []int
	for i, p := range s.programs {
		if p.MatchesWithState(name, state) {
			matched = append(matched, i)
		}
	}
	return matched
}

// Program returns the compiled pattern at index i, as reported by
// Matching. It panics if i is out of range.
func (s *Set) Program(i int) *nfa.Program {
	return s.programs[i]
}
