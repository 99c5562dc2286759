package plotting

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/YuminosukeSato/plotkit/pairwise"
	"github.com/YuminosukeSato/plotkit/pkg/errors"
	"github.com/YuminosukeSato/plotkit/pkg/log"
	"github.com/YuminosukeSato/plotkit/preprocessing"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

const paletteSize = 256

// Mask hides one triangle of a heatmap.
type Mask string

const (
	NoMask        Mask = ""
	MaskUpper     Mask = "upper"     // cells above the diagonal
	MaskUpperDiag Mask = "upperdiag" // cells above and on the diagonal
	MaskLower     Mask = "lower"     // cells below the diagonal
	MaskLowerDiag Mask = "lowerdiag" // cells below and on the diagonal
)

// ParseMask resolves a mask name; "" and "none" mean no mask.
func ParseMask(name string) (Mask, error) {
	switch m := Mask(strings.ToLower(strings.TrimSpace(name))); m {
	case NoMask, MaskUpper, MaskUpperDiag, MaskLower, MaskLowerDiag:
		return m, nil
	case "none":
		return NoMask, nil
	}
	return NoMask, errors.NewValidationError("mask", "must be one of upper, upperdiag, lower, lowerdiag", name)
}

// Hides reports whether cell (i, j) is masked.
func (m Mask) Hides(i, j int) bool {
	switch m {
	case MaskUpper:
		return j > i
	case MaskUpperDiag:
		return j >= i
	case MaskLower:
		return j < i
	case MaskLowerDiag:
		return j <= i
	}
	return false
}

// AnnotStyle controls the values printed into heatmap cells.
type AnnotStyle struct {
	// Format is a fmt verb for one float64.
	Format   string
	FontSize float64
	// Color of the text; nil picks black or white per cell for contrast.
	Color color.Color
}

// HeatmapAnnotDefaults returns the default cell annotation style.
func HeatmapAnnotDefaults() AnnotStyle {
	return AnnotStyle{Format: "%.2f", FontSize: 8}
}

// ColorBarStyle controls the colour bar drawn next to a heatmap.
type ColorBarStyle struct {
	// Vertical places the bar right of the axes, otherwise below it.
	Vertical bool
	// Fraction of the axes tile used by the bar, in (0, 0.5].
	Fraction float64
	// Pad between axes and bar as a fraction of the tile, in [0, 0.5).
	Pad   float64
	Label string
	// Colors is the number of colour steps; 0 uses one per point.
	Colors int
}

// HeatmapCBarDefaults returns the default colour bar style.
func HeatmapCBarDefaults() ColorBarStyle {
	return ColorBarStyle{Vertical: true, Fraction: 0.08, Pad: 0.03}
}

// Heatmap describes a drawn heatmap.
type Heatmap struct {
	Matrix   mat.Matrix
	ColorMap palette.ColorMap
	Mask     Mask
	Min, Max float64
}

// HeatmapOption configures a heatmap.
type HeatmapOption func(*heatmapConfig)

type heatmapConfig struct {
	labels     []string
	annot      *AnnotStyle
	cmap       palette.ColorMap
	lo, hi     float64
	hasRange   bool
	mask       Mask
	matrixOpts []pairwise.Option
}

// WithTickLabels names the rows and columns, one label per group.
func WithTickLabels(labels ...string) HeatmapOption {
	return func(c *heatmapConfig) { c.labels = labels }
}

// WithAnnotations prints each visible value into its cell.
func WithAnnotations(style AnnotStyle) HeatmapOption {
	return func(c *heatmapConfig) { c.annot = &style }
}

// WithColorMap replaces the default colour map.
func WithColorMap(cm palette.ColorMap) HeatmapOption {
	return func(c *heatmapConfig) { c.cmap = cm }
}

// WithRange fixes the values mapped to the ends of the colour map.
func WithRange(lo, hi float64) HeatmapOption {
	return func(c *heatmapConfig) {
		c.lo, c.hi, c.hasRange = lo, hi, true
	}
}

// WithMask hides a triangle of a similarity or correlation heatmap.
func WithMask(m Mask) HeatmapOption {
	return func(c *heatmapConfig) { c.mask = m }
}

// WithMatrixOptions passes options to the pairwise matrix builder.
func WithMatrixOptions(opts ...pairwise.Option) HeatmapOption {
	return func(c *heatmapConfig) { c.matrixOpts = opts }
}

func newHeatmapConfig(opts []HeatmapOption) *heatmapConfig {
	cfg := &heatmapConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// ColorMapByName returns a moreland colour map: kindlmann, blackbody,
// extendedblackbody, bluered, purpleorange, greenpurple, bluetan, greenred.
func ColorMapByName(name string) (palette.ColorMap, error) {
	switch strings.ToLower(name) {
	case "kindlmann":
		return moreland.Kindlmann(), nil
	case "blackbody":
		return moreland.BlackBody(), nil
	case "extendedblackbody":
		return moreland.ExtendedBlackBody(), nil
	case "bluered":
		return moreland.SmoothBlueRed(), nil
	case "purpleorange":
		return moreland.SmoothPurpleOrange(), nil
	case "greenpurple":
		return moreland.SmoothGreenPurple(), nil
	case "bluetan":
		return moreland.SmoothBlueTan(), nil
	case "greenred":
		return moreland.SmoothGreenRed(), nil
	}
	return nil, errors.NewValidationError("colormap", "unknown colour map", name)
}

// SimilarityHeatmap builds the similarity matrix of groups and draws it
// with the colour range fixed to [0, 1].
func SimilarityHeatmap[T comparable](ax *Axes, groups [][]T, method pairwise.SimilarityMethod[T], opts ...HeatmapOption) (*Heatmap, error) {
	if err := checkAxes(ax); err != nil {
		return nil, err
	}
	cfg := newHeatmapConfig(opts)
	m, err := pairwise.SimilarityMatrix(groups, method, cfg.matrixOpts...)
	if err != nil {
		return nil, err
	}
	if !cfg.hasRange {
		cfg.lo, cfg.hi, cfg.hasRange = 0, 1, true
	}
	if cfg.cmap == nil {
		cfg.cmap = moreland.Kindlmann()
	}
	return drawHeatmap(ax, m, cfg)
}

// CorrelationHeatmap builds the correlation matrix of seqs and draws it
// with the colour range fixed to [-1, 1] on a diverging colour map.
func CorrelationHeatmap(ax *Axes, seqs [][]float64, method pairwise.CorrelationMethod, opts ...HeatmapOption) (*Heatmap, error) {
	if err := checkAxes(ax); err != nil {
		return nil, err
	}
	cfg := newHeatmapConfig(opts)
	m, err := pairwise.CorrelationMatrix(seqs, method, cfg.matrixOpts...)
	if err != nil {
		return nil, err
	}
	if !cfg.hasRange {
		cfg.lo, cfg.hi, cfg.hasRange = -1, 1, true
	}
	if cfg.cmap == nil {
		cfg.cmap = moreland.SmoothBlueRed()
	}
	return drawHeatmap(ax, m, cfg)
}

// MaskedHeatmap draws data with the masked triangle left blank. The colour
// range spans the visible finite values unless WithRange is given.
func MaskedHeatmap(ax *Axes, data mat.Matrix, mask Mask, opts ...HeatmapOption) (*Heatmap, error) {
	if err := checkAxes(ax); err != nil {
		return nil, err
	}
	if data == nil {
		return nil, errors.NewValidationError("data", "must not be nil", nil)
	}
	cfg := newHeatmapConfig(opts)
	cfg.mask = mask
	if cfg.cmap == nil {
		cfg.cmap = moreland.Kindlmann()
	}
	return drawHeatmap(ax, data, cfg)
}

func drawHeatmap(ax *Axes, m mat.Matrix, cfg *heatmapConfig) (*Heatmap, error) {
	rows, cols := m.Dims()
	if rows == 0 || cols == 0 {
		return nil, errors.Wrapf(errors.ErrEmptyData, "heatmap of a %dx%d matrix", rows, cols)
	}
	mask, err := ParseMask(string(cfg.mask))
	if err != nil {
		return nil, err
	}
	if cfg.labels != nil && (len(cfg.labels) != rows || rows != cols) {
		return nil, errors.NewValidationError("labels", "must name every row of a square matrix", len(cfg.labels))
	}
	if cfg.annot != nil {
		if cfg.annot.Format == "" {
			return nil, errors.NewValidationError("format", "must not be empty", cfg.annot.Format)
		}
		if cfg.annot.FontSize != 0 && !positive(cfg.annot.FontSize) {
			return nil, errors.NewValidationError("fontsize", "must be a positive number", cfg.annot.FontSize)
		}
	}

	lo, hi := cfg.lo, cfg.hi
	if cfg.hasRange {
		if !finite(lo, hi) || lo > hi {
			return nil, errors.NewValidationError("range", "must be finite with min <= max", []float64{lo, hi})
		}
	} else {
		var ok bool
		if lo, hi, ok = preprocessing.Extent(m, mask.Hides); !ok {
			lo, hi = 0, 1
		}
	}
	lo, hi = dataRange(lo, hi)

	var p palette.Palette
	if err := errors.SafeExecute("heatmap palette", func() error {
		cfg.cmap.SetMin(lo)
		cfg.cmap.SetMax(hi)
		p = cfg.cmap.Palette(paletteSize)
		return nil
	}); err != nil {
		return nil, err
	}
	pal := p.Colors()

	grid := matrixGrid{m: m, mask: mask, rows: rows, cols: cols}
	h := plotter.NewHeatMap(grid, p)
	h.Min, h.Max = lo, hi
	h.Underflow, h.Overflow = pal[0], pal[len(pal)-1]
	ax.Add(zHeatmap, h)

	if cfg.annot != nil {
		lbl := annotations(ax.theme, grid, *cfg.annot, pal, lo, hi)
		if lbl != nil {
			ax.Add(zText, lbl)
		}
	}

	ax.x.ticks = make([]plot.Tick, cols)
	for j := range ax.x.ticks {
		ax.x.ticks[j] = plot.Tick{Value: float64(j), Label: cellLabel(cfg.labels, j)}
	}
	ax.y.ticks = make([]plot.Tick, rows)
	for r := range ax.y.ticks {
		ax.y.ticks[r] = plot.Tick{Value: float64(r), Label: cellLabel(cfg.labels, rows-1-r)}
	}
	ax.tight = true

	logger().Debug("heatmap drawn",
		log.OperationKey, log.OperationHeatmap,
		log.GroupsKey, rows,
		"mask", string(mask),
		"range", []float64{lo, hi},
	)
	return &Heatmap{Matrix: m, ColorMap: cfg.cmap, Mask: mask, Min: lo, Max: hi}, nil
}

func cellLabel(labels []string, i int) string {
	if labels == nil {
		return fmt.Sprint(i)
	}
	return labels[i]
}

// matrixGrid adapts a matrix to plotter.GridXYZ with row 0 drawn on top.
// Masked cells are NaN and stay blank.
type matrixGrid struct {
	m          mat.Matrix
	mask       Mask
	rows, cols int
}

func (g matrixGrid) Dims() (c, r int) { return g.cols, g.rows }

func (g matrixGrid) Z(c, r int) float64 {
	i := g.rows - 1 - r
	if g.mask.Hides(i, c) {
		return math.NaN()
	}
	return g.m.At(i, c)
}

func (g matrixGrid) X(c int) float64 { return float64(c) }

func (g matrixGrid) Y(r int) float64 { return float64(r) }

// annotations labels every visible finite cell with its value.
func annotations(th Theme, g matrixGrid, st AnnotStyle, pal []color.Color, lo, hi float64) *plotter.Labels {
	size := st.FontSize
	if size == 0 {
		size = HeatmapAnnotDefaults().FontSize
	}

	var (
		xys    plotter.XYs
		labels []string
		styles []text.Style
	)
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			v := g.Z(c, r)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				continue
			}
			clr := st.Color
			if clr == nil {
				clr = contrast(pal[paletteIndex(v, lo, hi, len(pal))])
			}
			xys = append(xys, plotter.XY{X: float64(c), Y: float64(r)})
			labels = append(labels, fmt.Sprintf(st.Format, v))
			styles = append(styles, text.Style{
				Color:   clr,
				Font:    font.From(plot.DefaultFont, font.Length(size)),
				XAlign:  text.XCenter,
				YAlign:  text.YCenter,
				Handler: th.handler(),
			})
		}
	}
	if len(xys) == 0 {
		return nil
	}
	return &plotter.Labels{XYs: xys, Labels: labels, TextStyle: styles}
}

// paletteIndex maps v to a palette slot the way plotter.HeatMap does.
func paletteIndex(v, lo, hi float64, n int) int {
	i := int((v-lo)*float64(n-1)/(hi-lo) + 0.5)
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

// contrast picks black or white text for a background colour.
func contrast(bg color.Color) color.Color {
	r, g, b, _ := bg.RGBA()
	lum := (0.299*float64(r) + 0.587*float64(g) + 0.114*float64(b)) / 0xffff
	if lum < 0.5 {
		return color.White
	}
	return color.Black
}

// ColorBar draws a colour bar for hm next to ax. The bar takes
// style.Fraction of the axes tile.
func ColorBar(ax *Axes, hm *Heatmap, style ColorBarStyle) error {
	if err := checkAxes(ax); err != nil {
		return err
	}
	if hm == nil || hm.ColorMap == nil {
		return errors.NewValidationError("heatmap", "must not be nil", nil)
	}
	if math.IsNaN(style.Fraction) || style.Fraction <= 0 || style.Fraction > 0.5 {
		return errors.NewValidationError("fraction", "must be in (0, 0.5]", style.Fraction)
	}
	if math.IsNaN(style.Pad) || style.Pad < 0 || style.Pad >= 0.5 {
		return errors.NewValidationError("pad", "must be in [0, 0.5)", style.Pad)
	}
	if style.Colors < 0 {
		return errors.NewValidationError("colors", "must not be negative", style.Colors)
	}
	ax.cbar = &colorBar{cmap: hm.ColorMap, min: hm.Min, max: hm.Max, style: style}
	return nil
}

type colorBar struct {
	cmap     palette.ColorMap
	min, max float64
	style    ColorBarStyle
}

// split divides an axes tile between the axes and the bar.
func (b *colorBar) split(c draw.Canvas) (axes, bar draw.Canvas) {
	if b.style.Vertical {
		w := c.Max.X - c.Min.X
		bw := w * vg.Length(b.style.Fraction)
		pad := w * vg.Length(b.style.Pad)
		return draw.Crop(c, 0, -(bw + pad), 0, 0), draw.Crop(c, w-bw, 0, 0, 0)
	}
	h := c.Max.Y - c.Min.Y
	bh := h * vg.Length(b.style.Fraction)
	pad := h * vg.Length(b.style.Pad)
	return draw.Crop(c, 0, 0, bh+pad, 0), draw.Crop(c, 0, 0, 0, -(h - bh))
}

func (b *colorBar) plot(th Theme) *plot.Plot {
	p := themedPlot(th)
	b.cmap.SetMin(b.min)
	b.cmap.SetMax(b.max)
	p.Add(&plotter.ColorBar{ColorMap: b.cmap, Vertical: b.style.Vertical, Colors: b.style.Colors})
	if b.style.Vertical {
		p.HideX()
		p.Y.Padding = 0
		p.Y.Label.Text = b.style.Label
	} else {
		p.HideY()
		p.X.Padding = 0
		p.X.Label.Text = b.style.Label
	}
	return p
}
