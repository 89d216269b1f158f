// Package domainpattern matches hierarchical, separator-delimited names
// such as DNS domains against compact wildcard patterns.
//
// A pattern is a sequence of labels separated by '.' (or any separator
// chosen at compile time). Each label is either an exact literal or one of
// four wildcard tokens:
//
//	*    zero or one label
//	+    exactly one label
//	**   zero or more labels
//	**+  one or more labels
//
// For example, against the names below:
//
//	pattern          domain.tld   sub.domain.tld   sub.sub.domain.tld
//	domain.tld       yes          no               no
//	*.domain.tld     yes          yes              no
//	+.domain.tld     no           yes              no
//	**.domain.tld    yes          yes              yes
//	**+.domain.tld   no           yes              yes
//
// Patterns are compiled once into a step sequence with redundant wildcard
// chains folded away, then evaluated with a multi-state NFA simulation
// instead of backtracking, keeping matching near-linear for typical
// patterns. Adjacent runs of many single-label wildcards (`*.*.*.*`) can
// still fan out combinatorially; this worst case is documented and
// accepted. Callers needing a bound should reject such patterns before
// compiling.
//
// Basic usage:
//
//	p, err := domainpattern.Compile("**.domain.tld")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	p.Matches("sub.domain.tld") // true
//	p.Matches("other.tld")      // false
//
// Using '/' as the separator turns the same engine into a path-style
// matcher:
//
//	p := domainpattern.MustCompileSeparator("static/**", '/')
//	p.Matches("static/css/site.css") // true
//
// The package does not validate that inputs are well-formed domain names,
// does not normalize case, and does not handle IDN encoding; names are
// compared label-by-label as raw strings.
package domainpattern

import (
	"strings"
	"sync"

	"github.com/coregx/domainpattern/nfa"
)

// ParseError is an alias for the compiler's error type, so callers do not
// need to import the nfa package to inspect compile failures.
type ParseError = nfa.ParseError

// Pattern is a compiled pattern.
//
// A Pattern is immutable and safe to use concurrently from multiple
// goroutines; each Matches call draws its transient engine state from an
// internal pool.
type Pattern struct {
	prog    *nfa.Program
	pattern string

	// states pools per-match MachineStates, pre-sized for prog.
	states sync.Pool
}

// Compile compiles a pattern with '.' as the label separator.
//
// Compilation fails only when a token contains '*' or '+' without being
// one of the recognized wildcard shorthands; the returned error is a
// *ParseError carrying the token, its byte position, and the full pattern.
func Compile(pattern string) (*Pattern, error) {
	return CompileSeparator(pattern, '.')
}

// CompileSeparator compiles a pattern with an arbitrary separator rune,
// used to split both the pattern and every name matched against it.
func CompileSeparator(pattern string, sep rune) (*Pattern, error) {
	prog, err := nfa.Compile(pattern, sep)
	if err != nil {
		return nil, err
	}
	return newPattern(prog, pattern), nil
}

// MustCompile is like Compile but panics if the pattern cannot be
// compiled. It simplifies safe initialization of global variables holding
// patterns known to be valid.
func MustCompile(pattern string) *Pattern {
	p, err := Compile(pattern)
	if err != nil {
		panic("domainpattern: Compile(`" + pattern + "`): " + err.Error())
	}
	return p
}

// MustCompileSeparator is like CompileSeparator but panics on error.
func MustCompileSeparator(pattern string, sep rune) *Pattern {
	p, err := CompileSeparator(pattern, sep)
	if err != nil {
		panic("domainpattern: CompileSeparator(`" + pattern + "`): " + err.Error())
	}
	return p
}

func newPattern(prog *nfa.Program, pattern string) *Pattern {
	p := &Pattern{prog: prog, pattern: pattern}
	p.states.New = func() any {
		state := nfa.NewMachineState()
		prog.InitState(state)
		return state
	}
	return p
}

// Matches reports whether name matches the pattern. It never fails: any
// string, however malformed as a domain name, yields a boolean.
//
// Empty labels produced by leading, trailing, or duplicate separators are
// skipped; a name with no non-empty labels matches no pattern.
func (p *Pattern) Matches(name string) bool {
	state := p.states.Get().(*nfa.MachineState)
	matched := p.prog.MatchesWithState(name, state)
	p.states.Put(state)
	return matched
}

// ToOwned returns a copy of the pattern whose internal literal data no
// longer shares backing memory with the source pattern string, for callers
// that compiled the pattern out of a larger buffer and want that buffer
// released.
func (p *Pattern) ToOwned() *Pattern {
	return newPattern(p.prog.ToOwned(), strings.Clone(p.pattern))
}

// String returns the source text of the pattern.
func (p *Pattern) String() string {
	return p.pattern
}

// Separator returns the separator rune the pattern was compiled with.
func (p *Pattern) Separator() rune {
	return p.prog.Separator()
}

// Program returns the compiled step program backing the pattern, for use
// with the nfa and patternset packages.
func (p *Pattern) Program() *nfa.Program {
	return p.prog
}
