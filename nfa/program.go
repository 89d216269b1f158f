package nfa

import "strings"

// Program is a compiled pattern: an ordered, immutable sequence of steps
// plus the separator used to interpret both the pattern and the names it
// matches against. The first step corresponds to the leftmost label of a
// name.
//
// A Program is immutable once built and holds no mutable shared state, so
// it is safe to evaluate matches concurrently from multiple goroutines.
// Matches allocates transient per-call state; MatchesWithState lets callers
// reuse a MachineState across calls (each goroutine must use its own).
type Program struct {
	steps  []Step
	sep    rune
	sepStr string
}

// Separator returns the separator rune fixed at compilation.
func (p *Program) Separator() rune {
	return p.sep
}

// NumSteps returns the number of steps in the compiled sequence.
func (p *Program) NumSteps() int {
	return len(p.steps)
}

// Step returns the step at index i. It panics if i is out of range.
func (p *Program) Step(i int) Step {
	return p.steps[i]
}

// ToOwned returns a copy of the program whose static labels no longer
// share backing memory with the source pattern string.
//
// Compile stores static labels as substrings of the pattern, which pins
// the pattern's backing array for the program's lifetime. Callers that
// compile patterns out of a large buffer and want that buffer released
// should use the ToOwned copy instead.
func (p *Program) ToOwned() *Program {
	steps := make([]Step, len(p.steps))
	copy(steps, p.steps)
	for i := range steps {
		if steps[i].kind == StepStatic {
			steps[i].label = strings.Clone(steps[i].label)
		}
	}
	return &Program{steps: steps, sep: p.sep, sepStr: p.sepStr}
}
