package parser

import "errors"

// Diagnostic errors whose text is shown verbatim to the end user. The exact
// wording is part of the observable contract and must stay byte-identical.
var (
	// ErrNeverTypeGenerics is returned when a bare never-type `!` is
	// followed by a generic-parameter list.
	ErrNeverTypeGenerics = errors.New("Never type `!` does not accept generic parameters")
	// ErrMacroAssociatedItems is returned when a macro-suffixed element is
	// followed by further path segments.
	ErrMacroAssociatedItems = errors.New("Cannot have associated items in macros")
	// ErrNeverTypeAssociatedItem is returned when `!` occupies a non-root
	// path position.
	ErrNeverTypeAssociatedItem = errors.New("Never type `!` is not associated item")
)

// Structural errors for malformed token sequences. Their wording is not part
// of the compatibility contract, but they are still returned as data rather
// than crashing.
var (
	// ErrUnexpectedToken indicates a token the grammar cannot accept at this position.
	ErrUnexpectedToken = errors.New("unexpected token in query")
	// ErrExpectedPathSegment indicates `::` without a following identifier.
	ErrExpectedPathSegment = errors.New("expected identifier after `::`")
	// ErrUnclosedGenerics indicates a `<` without a matching `>`.
	ErrUnclosedGenerics = errors.New("unclosed generic-parameter list")
	// ErrInvalidSingleColon indicates a stray single colon token.
	ErrInvalidSingleColon = errors.New("invalid single colon")
	// ErrNestingTooDeep indicates the generic-parameter nesting limit was exceeded.
	ErrNestingTooDeep = errors.New("generic parameters nested too deeply")
)
