package plotting

import (
	"math"

	"github.com/YuminosukeSato/plotkit/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg/draw"
)

// Default z orders: patches below lines below text.
const (
	zGrid    = 0.5
	zPatch   = 1
	zLine    = 2
	zText    = 3
	zHeatmap = 0
)

// Title sets the axes title. Options: WithFontSize (default 16),
// WithPad (default 10).
func Title(ax *Axes, title string, opts ...Option) error {
	if err := checkAxes(ax); err != nil {
		return err
	}
	s, err := newStyle(style{fontSize: 16, pad: 10}, opts)
	if err != nil {
		return err
	}
	ax.title = title
	ax.titleSize = s.fontSize
	ax.titlePad = s.pad
	return nil
}

// Labels sets the x and y axis labels. Options: WithFontSize (default 14),
// WithPad (default 5).
func Labels(ax *Axes, xlabel, ylabel string, opts ...Option) error {
	if err := checkAxes(ax); err != nil {
		return err
	}
	s, err := newStyle(style{fontSize: 14, pad: 5}, opts)
	if err != nil {
		return err
	}
	for _, a := range []*axisState{&ax.x, &ax.y} {
		a.labelSize = s.fontSize
		a.labelPad = s.pad
	}
	ax.x.label = xlabel
	ax.y.label = ylabel
	return nil
}

// Diagonal draws the line y = x across the x range of the axes.
// Options: WithAlpha, WithLineStyle (default "--"), WithLineWidth,
// WithColor, WithZOrder.
func Diagonal(ax *Axes, opts ...Option) error {
	if err := checkAxes(ax); err != nil {
		return err
	}
	s, err := newStyle(style{alpha: 1, lineStyle: "--", lineWidth: 1, zorder: zLine}, opts)
	if err != nil {
		return err
	}

	f := plotter.NewFunction(func(x float64) float64 { return x })
	f.LineStyle = s.lineStyleOf(ax.theme.Foreground)
	ax.Add(s.zorder, f)
	return nil
}

// Rectangle draws the rectangle with corners (x1, y1) and (x2, y2).
// Options: WithAlpha, WithLineStyle, WithLineWidth, WithColor, WithFill,
// WithZOrder.
func Rectangle(ax *Axes, x1, x2, y1, y2 float64, opts ...Option) error {
	if err := checkAxes(ax); err != nil {
		return err
	}
	if !finite(x1, x2, y1, y2) {
		return errors.NewValidationError("corners", "must be finite", []float64{x1, x2, y1, y2})
	}
	s, err := newStyle(style{alpha: 1, lineStyle: "-", lineWidth: 1.5, zorder: zPatch}, opts)
	if err != nil {
		return err
	}

	poly, err := plotter.NewPolygon(plotter.XYs{
		{X: x1, Y: y1}, {X: x2, Y: y1}, {X: x2, Y: y2}, {X: x1, Y: y2},
	})
	if err != nil {
		return errors.Wrap(err, "rectangle")
	}
	poly.LineStyle = s.lineStyleOf(ax.theme.Foreground)
	if s.fill {
		poly.Color = s.strokeColor(ax.theme.Foreground)
	}
	ax.Add(s.zorder, poly)
	return nil
}

// Star marks (x, y) with an asterisk. Options: WithColor, WithAlpha,
// WithFontSize (default 20), WithZOrder.
func Star(ax *Axes, x, y float64, opts ...Option) error {
	if err := checkAxes(ax); err != nil {
		return err
	}
	if !finite(x, y) {
		return errors.NewValidationError("position", "must be finite", []float64{x, y})
	}
	s, err := newStyle(style{alpha: 1, fontSize: 20, zorder: zText}, opts)
	if err != nil {
		return err
	}

	lbl, err := plotter.NewLabels(plotter.XYLabels{
		XYs:    plotter.XYs{{X: x, Y: y}},
		Labels: []string{"*"},
	})
	if err != nil {
		return errors.Wrap(err, "star")
	}
	lbl.TextStyle[0] = text.Style{
		Color:   s.strokeColor(ax.theme.Foreground),
		Font:    font.From(plot.DefaultFont, font.Length(s.fontSize)),
		XAlign:  text.XCenter,
		YAlign:  text.YCenter,
		Handler: ax.theme.handler(),
	}
	ax.Add(s.zorder, lbl)
	return nil
}

// Lines draws reference lines spanning the axes: vertical lines at each
// x in pos when which is "x", horizontal lines at each y when which is "y".
// Options: WithAlpha, WithLineStyle (default ":"), WithLineWidth, WithColor,
// WithZOrder.
func Lines(ax *Axes, which string, pos []float64, opts ...Option) error {
	if err := checkAxes(ax); err != nil {
		return err
	}
	if which != "x" && which != "y" {
		return errors.NewValidationError("which", "must be x or y", which)
	}
	if len(pos) == 0 {
		return errors.NewValidationError("pos", "must not be empty", pos)
	}
	if !finite(pos...) {
		return errors.NewValidationError("pos", "must be finite", pos)
	}
	s, err := newStyle(style{alpha: 1, lineStyle: ":", lineWidth: 1, zorder: zLine}, opts)
	if err != nil {
		return err
	}

	p := make([]float64, len(pos))
	copy(p, pos)
	ax.Add(s.zorder, &refLines{
		vertical: which == "x",
		pos:      p,
		style:    s.lineStyleOf(ax.theme.Foreground),
	})
	return nil
}

// refLines draws lines across the whole data area.
type refLines struct {
	vertical bool
	pos      []float64
	style    draw.LineStyle
}

func (r *refLines) Plot(c draw.Canvas, p *plot.Plot) {
	trX, trY := p.Transforms(&c)
	for _, v := range r.pos {
		if r.vertical {
			x := trX(v)
			if c.ContainsX(x) {
				c.StrokeLine2(r.style, x, c.Min.Y, x, c.Max.Y)
			}
			continue
		}
		y := trY(v)
		if c.ContainsY(y) {
			c.StrokeLine2(r.style, c.Min.X, y, c.Max.X, y)
		}
	}
}

// DataRange extends only the axis the lines are positioned on.
func (r *refLines) DataRange() (xmin, xmax, ymin, ymax float64) {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, v := range r.pos {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	if r.vertical {
		return lo, hi, math.Inf(1), math.Inf(-1)
	}
	return math.Inf(1), math.Inf(-1), lo, hi
}

// Grid draws grid lines at the major ticks. Options: WithAlpha,
// WithLineStyle (default "-"), WithLineWidth (default 0.5), WithColor,
// WithZOrder.
func Grid(ax *Axes, opts ...Option) error {
	if err := checkAxes(ax); err != nil {
		return err
	}
	s, err := newStyle(style{alpha: 1, lineStyle: "-", lineWidth: 0.5, zorder: zGrid}, opts)
	if err != nil {
		return err
	}

	g := plotter.NewGrid()
	g.Vertical = s.lineStyleOf(ax.theme.Grid)
	g.Horizontal = g.Vertical
	ax.Add(s.zorder, g)
	return nil
}

var _ plot.DataRanger = (*refLines)(nil)
