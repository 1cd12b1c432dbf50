package main

import (
	"log/slog"
	"os"

	"colorimetry/chart"
	"colorimetry/convert"

	"github.com/alecthomas/kong"
)

type cli struct {
	Chart   chart.CLICmd   `cmd:"" help:"Render the visible spectrum to an image"`
	Convert convert.CLICmd `cmd:"" help:"Convert a color between display color spaces"`
}

func main() {
	var c cli
	kctx := kong.Parse(&c,
		kong.Name("colorimetry"),
		kong.Description("Spectral color computation tools"),
		kong.UsageOnError())

	if err := kctx.Run(); err != nil {
		slog.Error("command failed", "command", kctx.Command(), "error", err)
		os.Exit(1)
	}
}
