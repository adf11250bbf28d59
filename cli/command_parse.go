package cli

import (
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/docsearch/queryparser"
	"github.com/docsearch/queryparser/parser"
)

// ParseCmd represents the parse command
type ParseCmd struct {
	Query      string `arg:"" help:"Search query to parse"`
	Format     string `short:"f" long:"format" help:"Output format (json, yaml); defaults to config"`
	OutputFile string `short:"o" long:"output" help:"Output file (defaults to stdout)" type:"path"`
}

// Run executes the parse command. A rejected query is still a successful
// run: the rejection travels inside the result, the way downstream
// consumers see it.
func (p *ParseCmd) Run(ctx *Context) error {
	config, err := queryparser.LoadConfig(ctx.Config)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	format := p.Format
	if format == "" {
		format = config.Output.DefaultFormat
	}

	result := parser.ParseWithOptions(p.Query, optionsFromConfig(config))

	data, err := renderResult(result, format)
	if err != nil {
		return err
	}

	if p.OutputFile != "" {
		if err := os.WriteFile(p.OutputFile, data, 0o644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}

		if ctx.Verbose {
			color.Blue("Wrote result to %s", p.OutputFile)
		}
	} else {
		_, _ = os.Stdout.Write(data)
	}

	if result.Error != nil && !ctx.Quiet {
		color.Red("query rejected: %s", *result.Error)
	}

	return nil
}
