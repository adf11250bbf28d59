package main

import (
	"github.com/alecthomas/kong"

	"github.com/docsearch/queryparser/cli"
)

var version = "dev"

// CLI represents the command-line interface structure
var CLI struct {
	Config  string `help:"Configuration file path" default:"queryparser.yaml" type:"path"`
	Verbose bool   `short:"v" help:"Enable verbose output"`
	Quiet   bool   `short:"q" help:"Suppress non-essential output"`

	Parse  cli.ParseCmd  `cmd:"" help:"Parse a search query and print the structured result"`
	Check  cli.CheckCmd  `cmd:"" help:"Validate queries; non-zero exit on rejection"`
	Tokens cli.TokensCmd `cmd:"" help:"Dump the token stream for a query"`

	Version kong.VersionFlag `help:"Show version"`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("queryparser"),
		kong.Description("Doc-search query parser: identifiers, paths, generics, and the two meanings of `!`"),
		kong.UsageOnError(),
		kong.Vars{"version": version},
	)

	err := ctx.Run(&cli.Context{
		Config:  CLI.Config,
		Verbose: CLI.Verbose,
		Quiet:   CLI.Quiet,
	})
	ctx.FatalIfErrorf(err)
}
