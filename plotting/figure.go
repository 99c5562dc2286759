package plotting

import (
	"math"
	"sort"

	"github.com/YuminosukeSato/plotkit/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Figure is a grid of axes rendered onto one canvas.
type Figure struct {
	width, height vg.Length
	rows, cols    int
	axes          [][]*Axes
	theme         Theme
}

// Size returns the figure size.
func (f *Figure) Size() (width, height vg.Length) {
	return f.width, f.height
}

// Axes returns the axes at row, col, or nil when out of range.
func (f *Figure) Axes(row, col int) *Axes {
	if row < 0 || row >= f.rows || col < 0 || col >= f.cols {
		return nil
	}
	return f.axes[row][col]
}

// Theme returns the theme captured when the figure was created.
func (f *Figure) Theme() Theme {
	return f.theme
}

// FigureOption configures SinglePlot.
type FigureOption func(*figureConfig)

type figureConfig struct {
	width, height float64
}

// WithSize sets the figure size in inches.
func WithSize(width, height float64) FigureOption {
	return func(c *figureConfig) {
		c.width, c.height = width, height
	}
}

// SinglePlot creates a figure with one axes, 7×5 inches unless WithSize is
// given.
func SinglePlot(opts ...FigureOption) (*Figure, *Axes, error) {
	cfg := figureConfig{width: 7, height: 5}
	for _, opt := range opts {
		opt(&cfg)
	}
	fig, err := newFigure(1, 1, cfg.width, cfg.height)
	if err != nil {
		return nil, nil, err
	}
	return fig, fig.axes[0][0], nil
}

// MultiPlot creates a figure with an nrows×ncols grid of axes. sizeXY is
// the figure width and height in inches. The returned slice is row-major.
func MultiPlot(nrows, ncols int, sizeXY [2]float64) (*Figure, [][]*Axes, error) {
	if nrows < 1 {
		return nil, nil, errors.NewValidationError("nrows", "must be at least 1", nrows)
	}
	if ncols < 1 {
		return nil, nil, errors.NewValidationError("ncols", "must be at least 1", ncols)
	}
	fig, err := newFigure(nrows, ncols, sizeXY[0], sizeXY[1])
	if err != nil {
		return nil, nil, err
	}
	return fig, fig.axes, nil
}

func newFigure(rows, cols int, width, height float64) (*Figure, error) {
	if !positive(width) {
		return nil, errors.NewValidationError("size", "width must be a positive number of inches", width)
	}
	if !positive(height) {
		return nil, errors.NewValidationError("size", "height must be a positive number of inches", height)
	}

	fig := &Figure{
		width:  vg.Length(width) * vg.Inch,
		height: vg.Length(height) * vg.Inch,
		rows:   rows,
		cols:   cols,
		theme:  CurrentTheme(),
	}
	fig.axes = make([][]*Axes, rows)
	for i := range fig.axes {
		fig.axes[i] = make([]*Axes, cols)
		for j := range fig.axes[i] {
			fig.axes[i][j] = newAxes(fig.theme)
		}
	}
	return fig, nil
}

// Draw renders every axes of the figure onto c. Data areas of the grid are
// aligned; an axes with a colour bar gives part of its tile to the bar.
func (f *Figure) Draw(c draw.Canvas) error {
	if f == nil {
		return errors.NewValidationError("figure", "must not be nil", nil)
	}

	if f.theme.Background != nil {
		c.SetColor(f.theme.Background)
		c.Fill(c.Rectangle.Path())
	}

	plots := make([][]*plot.Plot, f.rows)
	for i, row := range f.axes {
		plots[i] = make([]*plot.Plot, f.cols)
		for j, ax := range row {
			plots[i][j] = ax.Plot()
		}
	}

	pad := vg.Points(10)
	tiles := draw.Tiles{
		Rows:      f.rows,
		Cols:      f.cols,
		PadTop:    pad,
		PadBottom: pad,
		PadLeft:   pad,
		PadRight:  pad,
		PadX:      2 * pad,
		PadY:      2 * pad,
	}

	return errors.SafeExecute("Figure.Draw", func() error {
		canvases := plot.Align(plots, tiles, c)
		for i, row := range f.axes {
			for j, ax := range row {
				dc := canvases[i][j]
				if ax.cbar != nil {
					var bc draw.Canvas
					dc, bc = ax.cbar.split(dc)
					ax.cbar.plot(ax.theme).Draw(bc)
				}
				plots[i][j].Draw(dc)
			}
		}
		return nil
	})
}

// Axes records the content and cosmetics of one plot area.
type Axes struct {
	theme Theme

	title      string
	titleSize  float64
	titlePad   float64
	x, y       axisState
	spines     map[string]bool // hidden spines
	tight      bool
	elements   []element
	cbar       *colorBar
	nextSerial int
}

type axisState struct {
	label     string
	labelSize float64
	labelPad  float64
	limits    []float64
	ticks     []plot.Tick
	tickSize  float64
	rotation  float64
	xAlign    *text.XAlignment
	yAlign    *text.YAlignment
}

// element is a plotter with its drawing order.
type element struct {
	z       float64
	serial  int
	plotter plot.Plotter
}

func newAxes(theme Theme) *Axes {
	return &Axes{
		theme:  theme,
		spines: make(map[string]bool),
	}
}

// Title returns the axes title.
func (ax *Axes) Title() string { return ax.title }

// XLabel returns the x axis label.
func (ax *Axes) XLabel() string { return ax.x.label }

// YLabel returns the y axis label.
func (ax *Axes) YLabel() string { return ax.y.label }

// XLimits returns the x limits set with Limits, or nil.
func (ax *Axes) XLimits() []float64 { return ax.x.limits }

// YLimits returns the y limits set with Limits, or nil.
func (ax *Axes) YLimits() []float64 { return ax.y.limits }

// XTicks returns the explicit x ticks, or nil.
func (ax *Axes) XTicks() []plot.Tick { return ax.x.ticks }

// YTicks returns the explicit y ticks, or nil.
func (ax *Axes) YTicks() []plot.Tick { return ax.y.ticks }

// Len returns the number of plot elements on the axes.
func (ax *Axes) Len() int { return len(ax.elements) }

// SpineHidden reports whether Despine removed the named spine.
func (ax *Axes) SpineHidden(name string) bool { return ax.spines[name] }

// Add places a plotter on the axes with the given z order.
func (ax *Axes) Add(z float64, p plot.Plotter) {
	ax.elements = append(ax.elements, element{z: z, serial: ax.nextSerial, plotter: p})
	ax.nextSerial++
}

// Plot builds a gonum plot from the recorded state.
func (ax *Axes) Plot() *plot.Plot {
	p := themedPlot(ax.theme)

	p.Title.Text = ax.title
	if ax.titleSize > 0 {
		p.Title.TextStyle.Font = font.From(plot.DefaultFont, font.Length(ax.titleSize))
	}
	p.Title.Padding = vg.Points(ax.titlePad)

	elems := make([]element, len(ax.elements))
	copy(elems, ax.elements)
	sort.SliceStable(elems, func(i, j int) bool {
		if elems[i].z != elems[j].z {
			return elems[i].z < elems[j].z
		}
		return elems[i].serial < elems[j].serial
	})
	for _, e := range elems {
		p.Add(e.plotter)
	}

	ax.x.apply(&p.X, ax.spines["bottom"])
	ax.y.apply(&p.Y, ax.spines["left"])
	if ax.tight {
		p.X.Padding, p.Y.Padding = 0, 0
	}

	p.Add(&frame{
		top:   !ax.spines["top"],
		right: !ax.spines["right"],
		style: draw.LineStyle{Color: ax.theme.Foreground, Width: p.X.LineStyle.Width},
	})
	return p
}

// themedPlot returns a new plot whose text and lines follow th.
func themedPlot(th Theme) *plot.Plot {
	p := plot.New()
	hdlr := th.handler()

	p.BackgroundColor = th.Background
	p.TextHandler = hdlr
	p.Legend.TextStyle.Handler = hdlr
	p.Legend.TextStyle.Color = th.Foreground
	p.Title.TextStyle.Handler = hdlr
	p.Title.TextStyle.Color = th.Foreground

	for _, a := range []*plot.Axis{&p.X, &p.Y} {
		a.Label.TextStyle.Handler = hdlr
		a.Label.TextStyle.Color = th.Foreground
		a.LineStyle.Color = th.Foreground
		a.Tick.LineStyle.Color = th.Foreground
		a.Tick.Label.Handler = hdlr
		a.Tick.Label.Color = th.Foreground
	}
	return p
}

func (s axisState) apply(a *plot.Axis, hideSpine bool) {
	a.Label.Text = s.label
	if s.labelSize > 0 {
		a.Label.TextStyle.Font = font.From(plot.DefaultFont, font.Length(s.labelSize))
	}
	a.Label.Padding = vg.Points(s.labelPad)
	if hideSpine {
		a.LineStyle.Width = 0
	}

	if len(s.limits) == 2 {
		lo, hi := s.limits[0], s.limits[1]
		if lo > hi {
			lo, hi = hi, lo
			a.Scale = plot.InvertedScale{Normalizer: a.Scale}
		}
		a.Min, a.Max = lo, hi
	}
	if s.ticks != nil {
		a.Tick.Marker = plot.ConstantTicks(s.ticks)
	}
	if s.tickSize > 0 {
		a.Tick.Label.Font.Size = font.Length(s.tickSize)
	}
	if s.rotation != 0 {
		a.Tick.Label.Rotation = s.rotation
	}
	if s.xAlign != nil {
		a.Tick.Label.XAlign = *s.xAlign
	}
	if s.yAlign != nil {
		a.Tick.Label.YAlign = *s.yAlign
	}
}

// frame draws the top and right spines along the data area.
type frame struct {
	top, right bool
	style      draw.LineStyle
}

func (f *frame) Plot(c draw.Canvas, _ *plot.Plot) {
	if f.top {
		c.StrokeLine2(f.style, c.Min.X, c.Max.Y, c.Max.X, c.Max.Y)
	}
	if f.right {
		c.StrokeLine2(f.style, c.Max.X, c.Min.Y, c.Max.X, c.Max.Y)
	}
}

func checkAxes(ax *Axes) error {
	if ax == nil {
		return errors.WithStack(errors.ErrNilAxes)
	}
	return nil
}

// dataRange widens an empty range so that plotters never divide by zero.
func dataRange(lo, hi float64) (float64, float64) {
	if math.IsInf(lo, 0) || math.IsInf(hi, 0) || math.IsNaN(lo) || math.IsNaN(hi) {
		return 0, 1
	}
	if lo == hi {
		return lo - 0.5, hi + 0.5
	}
	return lo, hi
}
