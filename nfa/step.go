package nfa

import "fmt"

// StepKind identifies the variant of a compiled pattern step.
type StepKind uint8

const (
	// StepStatic is an exact literal label.
	StepStatic StepKind = iota

	// StepWildcard is a segment-consuming placeholder whose multi and
	// optional flags select one of four quantifiers.
	StepWildcard
)

// Step is one compiled position in a pattern: either a literal label that
// must equal the corresponding segment of a name, or a wildcard.
//
// The two wildcard flags combine into exactly four meanings:
//
//	multi=false optional=true   zero or one segment   (*)
//	multi=false optional=false  exactly one segment   (+)
//	multi=true  optional=true   zero or more segments (**)
//	multi=true  optional=false  one or more segments  (**+)
//
// Steps are immutable values; a Program holds an ordered sequence of them.
type Step struct {
	label    string
	kind     StepKind
	multi    bool
	optional bool
}

// StaticStep returns a step matching exactly the given label.
func StaticStep(label string) Step {
	return Step{kind: StepStatic, label: label}
}

// WildcardStep returns a wildcard step with the given flags.
func WildcardStep(multi, optional bool) Step {
	return Step{kind: StepWildcard, multi: multi, optional: optional}
}

// Kind returns the step's variant.
func (s Step) Kind() StepKind {
	return s.kind
}

// Label returns the literal label of a StepStatic step.
// For wildcard steps it returns "".
func (s Step) Label() string {
	return s.label
}

// Wildcard returns the multi and optional flags of a StepWildcard step.
// For static steps both are false.
func (s Step) Wildcard() (multi, optional bool) {
	return s.multi, s.optional
}

// String returns the pattern token this step corresponds to, for
// diagnostics: the label itself for static steps, one of "*", "+", "**",
// "**+" for wildcards.
func (s Step) String() string {
	if s.kind == StepStatic {
		return s.label
	}
	switch {
	case s.multi && s.optional:
		return "**"
	case s.multi:
		return "**+"
	case s.optional:
		return "*"
	default:
		return "+"
	}
}

// GoString implements fmt.GoStringer for test failure output.
func (s Step) GoString() string {
	if s.kind == StepStatic {
		return fmt.Sprintf("nfa.StaticStep(%q)", s.label)
	}
	return fmt.Sprintf("nfa.WildcardStep(%t, %t)", s.multi, s.optional)
}
