package main

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/YuminosukeSato/plotkit/pairwise"
	"github.com/YuminosukeSato/plotkit/pkg/log"
	"github.com/YuminosukeSato/plotkit/plotting"
)

// RenderFlags are the heatmap and export flags of both commands.
type RenderFlags struct {
	Input    string  `short:"i" required:"" type:"existingfile" placeholder:"FILE" help:"YAML or JSON file with labels and groups."`
	Out      string  `short:"o" required:"" placeholder:"FILE" help:"Output file; the extension selects png, svg or pdf."`
	Mask     string  `default:"none" enum:"none,upper,upperdiag,lower,lowerdiag" help:"Hide a triangle of the matrix (${enum})."`
	Annotate bool    `help:"Print each value into its cell."`
	Format   string  `default:"%.2f" help:"Format of cell values."`
	Cmap     string  `placeholder:"NAME" help:"Colour map: kindlmann, blackbody, bluered, purpleorange, greenpurple, bluetan, greenred."`
	ColorBar bool    `name:"colorbar" default:"true" negatable:"" help:"Draw a colour bar."`
	Title    string  `help:"Axes title."`
	Width    float64 `default:"7" help:"Figure width in inches."`
	Height   float64 `default:"6" help:"Figure height in inches."`
	DPI      int     `name:"dpi" default:"300" help:"Resolution of PNG output."`
	Workers  int     `default:"1" env:"PLOTKIT_WORKERS" help:"Rows computed concurrently; -1 uses every CPU."`
}

func (f RenderFlags) heatmapOptions(labels []string) ([]plotting.HeatmapOption, error) {
	mask, err := plotting.ParseMask(f.Mask)
	if err != nil {
		return nil, err
	}

	opts := []plotting.HeatmapOption{
		plotting.WithMask(mask),
		plotting.WithMatrixOptions(
			pairwise.WithWorkers(f.Workers),
			pairwise.WithLogger(log.GetLoggerWithName("pairwise")),
		),
	}
	if len(labels) > 0 {
		opts = append(opts, plotting.WithTickLabels(labels...))
	}
	if f.Annotate {
		st := plotting.HeatmapAnnotDefaults()
		st.Format = f.Format
		opts = append(opts, plotting.WithAnnotations(st))
	}
	if f.Cmap != "" {
		cm, err := plotting.ColorMapByName(f.Cmap)
		if err != nil {
			return nil, err
		}
		opts = append(opts, plotting.WithColorMap(cm))
	}
	return opts, nil
}

// draw creates the figure, lets heatmap fill the axes and writes the file.
func (f RenderFlags) draw(command string, heatmap func(ax *plotting.Axes, opts []plotting.HeatmapOption) (*plotting.Heatmap, error), labels []string) error {
	start := time.Now()
	logger := log.GetLoggerWithName("cli").With("command", command)

	opts, err := f.heatmapOptions(labels)
	if err != nil {
		return err
	}
	fig, ax, err := plotting.SinglePlot(plotting.WithSize(f.Width, f.Height))
	if err != nil {
		return err
	}

	hm, err := heatmap(ax, opts)
	if err != nil {
		return err
	}
	if f.ColorBar {
		if err := plotting.ColorBar(ax, hm, plotting.HeatmapCBarDefaults()); err != nil {
			return err
		}
	}
	if f.Title != "" {
		if err := plotting.Title(ax, f.Title); err != nil {
			return err
		}
	}
	if err := plotting.RotateTickLabels(ax, "x", 45); err != nil {
		return err
	}
	if err := plotting.AlignTickLabels(ax, "x", "right", "top"); err != nil {
		return err
	}

	if err := f.save(fig); err != nil {
		return err
	}
	n, _ := hm.Matrix.Dims()
	logger.Info("heatmap written",
		log.OutputPathKey, f.Out,
		log.GroupsKey, n,
		log.DurationMsKey, time.Since(start).Milliseconds(),
	)
	return nil
}

func (f RenderFlags) save(fig *plotting.Figure) error {
	if strings.EqualFold(filepath.Ext(f.Out), ".png") {
		return plotting.SavePNG(fig, f.Out, f.DPI)
	}
	return plotting.Save(fig, f.Out)
}
