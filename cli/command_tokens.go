package cli

import (
	"fmt"

	"github.com/docsearch/queryparser/tokenizer"
)

// TokensCmd represents the tokens command (lexer debugging)
type TokensCmd struct {
	Query string `arg:"" help:"Query to tokenize"`
	All   bool   `help:"Include whitespace tokens"`
}

// Run executes the tokens command
func (t *TokensCmd) Run(ctx *Context) error {
	queryTokenizer := tokenizer.NewQueryTokenizer(t.Query, tokenizer.TokenizerOptions{
		SkipWhitespace: !t.All,
	})

	for token := range queryTokenizer.Tokens() {
		fmt.Printf("%-10s %q @%d\n", token.Type, token.Value, token.Position.Offset)
	}

	return nil
}
