package cli

import (
	"encoding/json"
	"fmt"

	"github.com/goccy/go-yaml"

	"github.com/docsearch/queryparser"
	"github.com/docsearch/queryparser/parser"
)

// Context represents the global context for commands
type Context struct {
	Config  string
	Verbose bool
	Quiet   bool
}

// renderResult serializes a parse result in the requested format
func renderResult(result parser.ParseResult, format string) ([]byte, error) {
	switch format {
	case "json":
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to render result as JSON: %w", err)
		}

		return append(data, '\n'), nil
	case "yaml":
		data, err := yaml.Marshal(result)
		if err != nil {
			return nil, fmt.Errorf("failed to render result as YAML: %w", err)
		}

		return data, nil
	default:
		return nil, fmt.Errorf("%w: %s", queryparser.ErrInvalidOutputFormat, format)
	}
}

// optionsFromConfig maps the configuration onto parser options
func optionsFromConfig(config *queryparser.Config) parser.Options {
	options := parser.Options{
		MaxDepth: config.Parser.MaxDepth,
	}
	if len(config.Parser.Filters) > 0 {
		options.Filters = parser.NewFilterTable(config.Parser.Filters)
	}

	return options
}
