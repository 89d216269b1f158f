// Package nfa implements the compiler and matching engine for
// hierarchical-label patterns.
//
// A pattern such as "**.domain.tld" is compiled into an ordered sequence of
// steps (see Step), and a name is matched against that sequence with a
// generation-based NFA simulation rather than backtracking. The package is
// the core of the module; most callers should use the root domainpattern
// package instead of importing this one directly.
package nfa

import "fmt"

// ParseError describes the one way compilation can fail: a token that is
// neither a recognized wildcard shorthand ("*", "+", "**", "**+") nor free
// of the '*' and '+' characters.
//
// The error carries enough context for a precise diagnostic; it is not used
// for control flow.
type ParseError struct {
	// Token is the offending raw token.
	Token string

	// Position is the byte offset of the token's first byte in Pattern.
	Position int

	// Pattern is the full original pattern string.
	Pattern string
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid token %q at position %d in pattern %q", e.Token, e.Position, e.Pattern)
}
