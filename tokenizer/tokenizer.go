package tokenizer

import (
	"iter"
	"unicode"
	"unicode/utf8"
)

// TokenIterator uses the Go 1.23+ iterator pattern. Tokenizing a query never
// fails; malformed sequences (stray colons, unknown runes) are emitted as
// COLON/OTHER tokens and rejected later by the parser, because several shapes
// that look malformed in isolation (a bare `!`) are legal in some positions.
type TokenIterator iter.Seq[Token]

// QueryTokenizer is a tokenizer that returns an iterator
type QueryTokenizer struct {
	input   string
	options TokenizerOptions
}

// TokenizerOptions are options for the tokenizer
type TokenizerOptions struct {
	SkipWhitespace bool
}

// NewQueryTokenizer creates a new QueryTokenizer
func NewQueryTokenizer(input string, options ...TokenizerOptions) *QueryTokenizer {
	opts := TokenizerOptions{
		SkipWhitespace: false,
	}
	if len(options) > 0 {
		opts = options[0]
	}

	return &QueryTokenizer{
		input:   input,
		options: opts,
	}
}

// Tokens returns an iterator of tokens, ending with an EOF token
func (t *QueryTokenizer) Tokens() TokenIterator {
	return func(yield func(Token) bool) {
		lexer := &lexer{
			input:  t.input,
			line:   1,
			column: 0,
		}

		lexer.readChar()

		for {
			token := lexer.nextToken()

			if token.Type == EOF {
				yield(token)
				return
			}

			// Filtering based on options
			if t.options.SkipWhitespace && token.Type == WHITESPACE {
				continue
			}

			if !yield(token) {
				return
			}
		}
	}
}

// AllTokens gets all tokens as a slice, including the trailing EOF token
func (t *QueryTokenizer) AllTokens() []Token {
	tokens := make([]Token, 0, 16)

	for token := range t.Tokens() {
		tokens = append(tokens, token)
		if token.Type == EOF {
			break
		}
	}

	return tokens
}

// Internal lexer implementation
type lexer struct {
	input   string
	pos     int // byte offset of current
	readPos int // byte offset after current
	line    int
	column  int
	current rune
}

// readChar advances to the next rune; current is 0 at end of input
func (l *lexer) readChar() {
	if l.current == '\n' {
		l.line++
		l.column = 0
	}

	if l.readPos >= len(l.input) {
		l.current = 0
		l.pos = len(l.input)
		l.column++

		return
	}

	r, size := utf8.DecodeRuneInString(l.input[l.readPos:])
	l.current = r
	l.pos = l.readPos
	l.readPos += size
	l.column++
}

// peekChar returns the next rune without advancing
func (l *lexer) peekChar() rune {
	if l.readPos >= len(l.input) {
		return 0
	}

	r, _ := utf8.DecodeRuneInString(l.input[l.readPos:])

	return r
}

// nextToken gets the next token
func (l *lexer) nextToken() Token {
	switch {
	case l.current == 0:
		return l.newToken(EOF, "")
	case l.current == ' ' || l.current == '\t' || l.current == '\r' || l.current == '\n':
		return l.readWhitespace()
	case l.current == '!':
		token := l.newToken(BANG, "!")
		l.readChar()

		return token
	case l.current == ':':
		if l.peekChar() == ':' {
			token := l.newToken(PATH_SEP, "::")
			l.readChar()
			l.readChar()

			return token
		}

		token := l.newToken(COLON, ":")
		l.readChar()

		return token
	case l.current == '<':
		token := l.newToken(GEN_OPEN, "<")
		l.readChar()

		return token
	case l.current == '>':
		token := l.newToken(GEN_CLOSE, ">")
		l.readChar()

		return token
	case l.current == ',':
		token := l.newToken(COMMA, ",")
		l.readChar()

		return token
	case isIdentRune(l.current):
		return l.readIdent()
	default:
		token := l.newToken(OTHER, string(l.current))
		l.readChar()

		return token
	}
}

// readWhitespace reads a maximal run of whitespace characters
func (l *lexer) readWhitespace() Token {
	start := l.pos
	startColumn := l.column
	startLine := l.line

	for l.current == ' ' || l.current == '\t' || l.current == '\r' || l.current == '\n' {
		l.readChar()
	}

	return Token{
		Type:  WHITESPACE,
		Value: l.input[start:l.pos],
		Position: Position{
			Line:   startLine,
			Column: startColumn,
			Offset: start,
		},
	}
}

// readIdent reads a maximal run of identifier characters
func (l *lexer) readIdent() Token {
	start := l.pos
	startColumn := l.column

	for isIdentRune(l.current) {
		l.readChar()
	}

	return Token{
		Type:  IDENT,
		Value: l.input[start:l.pos],
		Position: Position{
			Line:   l.line,
			Column: startColumn,
			Offset: start,
		},
	}
}

// newToken creates a token at the current position
func (l *lexer) newToken(tokenType TokenType, value string) Token {
	return Token{
		Type:  tokenType,
		Value: value,
		Position: Position{
			Line:   l.line,
			Column: l.column,
			Offset: l.pos,
		},
	}
}

// isIdentRune reports whether r can appear in an identifier
func isIdentRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
