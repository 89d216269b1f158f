package nfa

import (
	"strings"

	"github.com/coregx/domainpattern/internal/conv"
	"github.com/coregx/domainpattern/internal/sparse"
)

// MachineState holds the mutable per-match state of the engine: the current
// and next generation of live pattern positions. States exist so callers
// can amortize the generation buffers across matches (e.g. via sync.Pool).
//
// A MachineState is NOT safe for concurrent use; each goroutine must use
// its own instance. A zero-value state is valid and is sized on first use.
type MachineState struct {
	gen  *sparse.Set
	next *sparse.Set
}

// NewMachineState returns an empty state, sized lazily by the program it
// is first used with.
func NewMachineState() *MachineState {
	return &MachineState{}
}

// InitState prepares state for a match against p, growing the generation
// buffers if p has more steps than any program the state was used with
// before.
func (p *Program) InitState(state *MachineState) {
	n := len(p.steps)
	if state.gen == nil || state.gen.Cap() < n {
		c := conv.IntToUint32(n)
		state.gen = sparse.New(c)
		state.next = sparse.New(c)
		return
	}
	state.gen.Clear()
	state.next.Clear()
}

// Matches reports whether name matches the compiled pattern. It is a total
// function: any input yields a boolean, and matching never fails.
//
// Empty segments produced by leading, trailing, or duplicate separators are
// skipped entirely; a name with no non-empty segments matches nothing.
func (p *Program) Matches(name string) bool {
	return p.MatchesWithState(name, NewMachineState())
}

// MatchesWithState is Matches with caller-provided scratch state, avoiding
// the per-call generation buffer allocations.
//
// The simulation keeps a set of step indices (the "generation") holding
// every pattern position reachable after the segments consumed so far.
// For each non-empty segment, every live position is advanced:
//
//   - a static step survives only if its label equals the segment;
//   - a multi wildcard also stays live at its own index (self-loop);
//   - the position one past the step enters the next generation, and runs
//     of optional wildcards after it are skipped transparently
//     (epsilon-closure), consuming no input.
//
// Reaching the end of the step sequence marks a terminal for the current
// segment; the final answer is whether the LAST segment produced a
// terminal, so the flag is reset before each segment.
//
// The generation sets deduplicate positions, which keeps typical matching
// near-linear. Patterns made of many adjacent single-segment wildcards can
// still fan out combinatorially; that worst case is documented and accepted.
func (p *Program) MatchesWithState(name string, state *MachineState) bool {
	p.InitState(state)

	gen, next := state.gen, state.next

	// Seed the first generation with the epsilon closure of position 0:
	// leading optional wildcards can be skipped before any segment has
	// been consumed. The terminal position is never stored in a
	// generation, so a name with no non-empty segments still cannot match.
	gen.Insert(0)
	for i := 0; i < len(p.steps)-1; i++ {
		step := p.steps[i]
		if step.kind != StepWildcard || !step.optional {
			break
		}
		gen.Insert(uint32(i + 1))
	}

	sawLast := false

	rest := name
	for {
		i := strings.Index(rest, p.sepStr)
		segment := rest
		if i >= 0 {
			segment = rest[:i]
		}

		if segment != "" {
			sawLast = false

			for _, idx := range gen.Values() {
				step := p.steps[idx]
				if step.kind == StepStatic {
					if step.label != segment {
						continue
					}
				} else if step.multi {
					next.Insert(idx)
				}

				ni := int(idx) + 1
				if ni == len(p.steps) {
					sawLast = true
					continue
				}
				next.Insert(uint32(ni))

				for p.steps[ni].kind == StepWildcard && p.steps[ni].optional {
					ni++
					if ni == len(p.steps) {
						sawLast = true
						break
					}
					next.Insert(uint32(ni))
				}
			}

			gen, next = next, gen
			next.Clear()
		}

		if i < 0 {
			return sawLast
		}
		rest = rest[i+len(p.sepStr):]
	}
}
