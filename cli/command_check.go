package cli

import (
	"errors"
	"fmt"

	"github.com/fatih/color"

	"github.com/docsearch/queryparser"
	"github.com/docsearch/queryparser/parser"
)

// ErrQueriesRejected is returned when at least one checked query was rejected
var ErrQueriesRejected = errors.New("queries rejected")

// CheckCmd represents the check command
type CheckCmd struct {
	Queries []string `arg:"" help:"Queries to validate"`
}

// Run executes the check command, validating each query and exiting
// non-zero when any of them is rejected
func (c *CheckCmd) Run(ctx *Context) error {
	config, err := queryparser.LoadConfig(ctx.Config)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	options := optionsFromConfig(config)

	rejected := 0

	for _, query := range c.Queries {
		result := parser.ParseWithOptions(query, options)

		if result.Error != nil {
			rejected++

			if !ctx.Quiet {
				color.Red("NG %s: %s", query, *result.Error)
			}

			continue
		}

		if ctx.Verbose {
			color.Green("OK %s (%d elements)", query, result.FoundElems)
		}
	}

	if rejected > 0 {
		return fmt.Errorf("%w: %d of %d", ErrQueriesRejected, rejected, len(c.Queries))
	}

	return nil
}
