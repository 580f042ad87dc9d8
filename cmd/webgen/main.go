package main

import (
	"log/slog"
	"os"

	"git.home.luguber.info/inful/webgen/cmd/webgen/commands"
	"github.com/alecthomas/kong"
)

// version is overridden at build time via -ldflags.
var version = "dev"

func main() {
	var cli commands.CLI
	ctx := kong.Parse(&cli,
		kong.Name("webgen"),
		kong.Description("Generate a static website from a YAML descriptor."),
		kong.Vars{"version": version},
	)

	if err := ctx.Run(&commands.Global{Logger: slog.Default()}, &cli); err != nil {
		slog.Error("Run failed", "error", err)
		os.Exit(1)
	}
}
