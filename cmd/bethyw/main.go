package main

import (
	"github.com/alecthomas/kong"

	"github.com/pescuma/bethyw/lib/consoles"
)

var cli struct {
	Show     ShowCmd     `cmd:"" default:"withargs" help:"Show the statistics of the selected areas as text."`
	JSON     JSONCmd     `cmd:"" name:"json" help:"Export the selected areas as JSON."`
	XLSX     XLSXCmd     `cmd:"" name:"xlsx" help:"Export the selected areas as an Excel workbook."`
	Serve    ServeCmd    `cmd:"" help:"Serve the selected areas through a read only HTTP API."`
	Datasets DatasetsCmd `cmd:"" help:"List the known datasets."`
}

type context struct {
	console consoles.Console
}

func main() {
	ctx := kong.Parse(&cli,
		kong.Name("bethyw"),
		kong.Description("Statistics about the areas of Wales, from StatsWales datasets."),
		kong.ShortUsageOnError())

	err := ctx.Run(&context{
		console: consoles.NewStdErrConsole(),
	})
	ctx.FatalIfErrorf(err)
}
