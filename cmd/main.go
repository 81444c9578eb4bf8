package main

import (
	"log"

	"github.com/alecthomas/kong"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("dnalang: ")

	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("dnalang"),
		kong.Description("DNA-Lang organism compiler"),
		kong.UsageOnError(),
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}

type CLI struct {
	Build   BuildCmd   `cmd:"" help:"Build the project." aliases:"compile"`
	Check   CheckCmd   `cmd:"" help:"Report lex and parse errors in a source file."`
	Tokens  TokensCmd  `cmd:"" help:"Print the token stream of a source file."`
	New     NewCmd     `cmd:"" help:"Create a new project."`
	Serve   ServeCmd   `cmd:"" help:"Serve the compiler over HTTP."`
	Lsp     LspCmd     `cmd:"" help:"Run the LSP server."`
	Version VersionCmd `cmd:"" help:"Show version."`
}
