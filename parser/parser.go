// Package parser turns a raw search query string into structured query
// elements, or a precise rejection message.
//
// The grammar is small but contextual: `!` means the never type when it
// stands alone or roots a path, and a macro suffix when written directly
// after an identifier. The parser resolves that with explicit lookahead over
// the token stream instead of guessing from the element text. All rejections
// are returned as data inside ParseResult; Parse never panics on malformed
// input of bounded nesting.
package parser

import (
	"fmt"
	"strings"

	"github.com/docsearch/queryparser/tokenizer"
)

// DefaultMaxDepth bounds `<...>` nesting so adversarial input rejects
// deterministically instead of exhausting the call stack.
const DefaultMaxDepth = 32

// Options control a single Parse call
type Options struct {
	// MaxDepth overrides DefaultMaxDepth when positive.
	MaxDepth int

	// Filters overrides DefaultFilterTable when non-nil.
	Filters *FilterTable
}

// Parse parses query with default options. It is a pure function: no shared
// state, safe to call concurrently, and repeated calls yield identical
// results.
func Parse(query string) ParseResult {
	return ParseWithOptions(query, Options{})
}

// ParseWithOptions parses query with explicit options
func ParseWithOptions(query string, opts Options) ParseResult {
	maxDepth := opts.MaxDepth
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}

	filters := opts.Filters
	if filters == nil {
		filters = DefaultFilterTable()
	}

	tokens := tokenizer.NewQueryTokenizer(query, tokenizer.TokenizerOptions{
		SkipWhitespace: true,
	}).AllTokens()

	p := &elementParser{
		input:    query,
		tokens:   tokens,
		filters:  filters,
		maxDepth: maxDepth,
	}

	elems, err := p.parseList(0, tokenizer.EOF)

	return assemble(query, elems, err)
}

// elementParser is a recursive-descent consumer of one token stream. The
// tokens slice always ends with an EOF token, so peek never runs off the end.
type elementParser struct {
	input    string
	tokens   []tokenizer.Token
	pos      int
	prevEnd  int // byte offset just past the last consumed token
	filters  *FilterTable
	maxDepth int
}

func (p *elementParser) peek() tokenizer.Token {
	return p.tokens[p.pos]
}

func (p *elementParser) next() tokenizer.Token {
	token := p.tokens[p.pos]
	if token.Type != tokenizer.EOF {
		p.pos++
		p.prevEnd = token.End()
	}

	return token
}

// parseList parses elements until the closing token type (EOF at top level,
// GEN_CLOSE inside generics) without consuming it. Elements are separated by
// commas or whitespace; written adjacency like `a!b` is rejected.
func (p *elementParser) parseList(depth int, closing tokenizer.TokenType) ([]*QueryElement, error) {
	elems := make([]*QueryElement, 0, 2)
	separated := true

	for {
		token := p.peek()

		switch {
		case token.Type == closing:
			return elems, nil
		case token.Type == tokenizer.EOF:
			return nil, ErrUnclosedGenerics
		case token.Type == tokenizer.COMMA:
			p.next()

			separated = true
		case token.Type == tokenizer.IDENT || token.Type == tokenizer.BANG:
			if !separated && token.Position.Offset == p.prevEnd {
				return nil, fmt.Errorf("%w: %q", ErrUnexpectedToken, token.Value)
			}

			elem, err := p.parseElement(depth)
			if err != nil {
				return nil, err
			}

			elems = append(elems, elem)
			separated = false
		case token.Type == tokenizer.COLON:
			return nil, ErrInvalidSingleColon
		default:
			return nil, fmt.Errorf("%w: %q", ErrUnexpectedToken, token.Value)
		}
	}
}

// parseElement parses one path element plus its optional generic-parameter
// list. The caller guarantees the next token is IDENT or BANG.
func (p *elementParser) parseElement(depth int) (*QueryElement, error) {
	start := p.peek().Position.Offset

	var (
		segments []string
		macro    bool
		never    bool
	)

	token := p.next()
	switch token.Type {
	case tokenizer.BANG:
		// The never type is always a leaf; it has no generics of its own.
		if p.peek().Type == tokenizer.GEN_OPEN {
			return nil, ErrNeverTypeGenerics
		}

		segments = append(segments, filterNameNever)

		if p.peek().Type != tokenizer.PATH_SEP {
			never = true
		}
	case tokenizer.IDENT:
		segments = append(segments, token.Value)

		if err := p.consumeMacroBang(token, &macro); err != nil {
			return nil, err
		}
	}

	for !macro && !never && p.peek().Type == tokenizer.PATH_SEP {
		p.next()

		segment := p.next()
		switch segment.Type {
		case tokenizer.IDENT:
			segments = append(segments, segment.Value)

			if err := p.consumeMacroBang(segment, &macro); err != nil {
				return nil, err
			}
		case tokenizer.BANG:
			// `!` may only root a path, never fill an associated-item slot.
			return nil, ErrNeverTypeAssociatedItem
		default:
			return nil, fmt.Errorf("%w, got %q", ErrExpectedPathSegment, segment.Value)
		}
	}

	raw := p.input[start:p.prevEnd]

	elem := &QueryElement{
		Generics:   []*QueryElement{},
		TypeFilter: FilterUnspecified,
	}

	switch {
	case never:
		elem.Name = filterNameNever
		elem.TypeFilter = p.filters.Resolve(filterNameNever)
	case macro:
		elem.Name = strings.TrimSuffix(raw, "!")
		elem.TypeFilter = p.filters.Resolve(filterNameMacro)
	default:
		elem.Name = raw
	}

	elem.FullPath = make([]string, 0, len(segments))
	for _, segment := range segments {
		elem.FullPath = append(elem.FullPath, strings.ToLower(segment))
	}

	elem.PathLast = elem.FullPath[len(elem.FullPath)-1]
	elem.PathWithoutLast = elem.FullPath[:len(elem.FullPath)-1]

	if p.peek().Type == tokenizer.GEN_OPEN {
		if depth+1 > p.maxDepth {
			return nil, ErrNestingTooDeep
		}

		p.next()

		generics, err := p.parseList(depth+1, tokenizer.GEN_CLOSE)
		if err != nil {
			return nil, err
		}

		p.next() // GEN_CLOSE

		elem.Generics = generics
	}

	return elem, nil
}

// consumeMacroBang consumes a `!` written directly after ident and marks the
// element as a macro. A macro element is terminal: a following `::` is
// rejected before anything after it is even looked at, so the first
// violation wins regardless of trailing content.
func (p *elementParser) consumeMacroBang(ident tokenizer.Token, macro *bool) error {
	bang := p.peek()
	if bang.Type != tokenizer.BANG || bang.Position.Offset != ident.End() {
		return nil
	}

	p.next()

	*macro = true

	if p.peek().Type == tokenizer.PATH_SEP {
		return ErrMacroAssociatedItems
	}

	return nil
}
