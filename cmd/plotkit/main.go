// Command plotkit renders pairwise similarity and correlation heatmaps from
// YAML or JSON input files.
//
//	plotkit similarity --input groups.yaml --out sim.png
//	plotkit correlation --input series.json --out corr.svg --method spearman --mask upper
package main

import (
	"os"

	"github.com/YuminosukeSato/plotkit/pkg/log"
	"github.com/alecthomas/kong"
)

// CLI is the plotkit command line.
type CLI struct {
	Globals

	Similarity  SimilarityCmd  `cmd:"" help:"Render the similarity heatmap of groups of items."`
	Correlation CorrelationCmd `cmd:"" help:"Render the correlation heatmap of numeric series."`
}

func newParser(cli *CLI, opts ...kong.Option) (*kong.Kong, error) {
	opts = append([]kong.Option{
		kong.Name("plotkit"),
		kong.Description("pairwise similarity and correlation heatmaps"),
		kong.UsageOnError(),
		kong.Bind(&cli.Globals),
	}, opts...)
	return kong.New(cli, opts...)
}

func main() {
	var cli CLI
	parser, err := newParser(&cli)
	if err != nil {
		panic(err)
	}

	ctx, err := parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(err)

	if err = ctx.Run(); err != nil {
		log.GetLoggerWithName("cli").Error("command failed", err, "command", ctx.Command())
		os.Exit(1)
	}
}
