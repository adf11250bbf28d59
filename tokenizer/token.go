package tokenizer

// TokenType represents the type of a token
type TokenType int

const (
	// Basic tokens
	EOF        TokenType = iota
	WHITESPACE           // spaces, tabs, newlines
	IDENT                // identifier: letters, digits, underscore

	// Punctuation
	BANG      // !
	PATH_SEP  // ::
	COLON     // stray single : (rejected by the parser, not the lexer)
	GEN_OPEN  // <
	GEN_CLOSE // >
	COMMA     // ,

	// Others
	OTHER // any rune outside the query grammar
)

// String returns the string representation of TokenType
func (t TokenType) String() string {
	switch t {
	case EOF:
		return "EOF"
	case WHITESPACE:
		return "WHITESPACE"
	case IDENT:
		return "IDENT"
	case BANG:
		return "BANG"
	case PATH_SEP:
		return "PATH_SEP"
	case COLON:
		return "COLON"
	case GEN_OPEN:
		return "GEN_OPEN"
	case GEN_CLOSE:
		return "GEN_CLOSE"
	case COMMA:
		return "COMMA"
	case OTHER:
		return "OTHER"
	default:
		return "UNKNOWN"
	}
}

// Position represents a position in the query string
type Position struct {
	Line   int
	Column int
	Offset int
}

// Token represents a token
type Token struct {
	Type     TokenType
	Value    string
	Position Position
}

// End returns the byte offset just past the token text. The parser uses it
// to decide whether two tokens were written adjacently (macro `!` detection).
func (t Token) End() int {
	return t.Position.Offset + len(t.Value)
}

// String returns the string representation of Token
func (t Token) String() string {
	return t.Type.String() + ": " + t.Value
}
