package plotting

import (
	"image/color"
	"math"
	"strings"

	"github.com/YuminosukeSato/plotkit/pkg/errors"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Option configures the style of an annotation. Invalid values are reported
// by the helper the option is passed to.
type Option func(*style)

type style struct {
	alpha     float64
	lineStyle string
	lineWidth float64
	color     color.Color
	fill      bool
	zorder    float64
	fontSize  float64
	pad       float64
	err       error
}

func (s *style) fail(err error) {
	if s.err == nil {
		s.err = err
	}
}

func newStyle(defaults style, opts []Option) (style, error) {
	s := defaults
	for _, opt := range opts {
		opt(&s)
	}
	return s, s.err
}

// WithAlpha sets the opacity, in [0, 1].
func WithAlpha(alpha float64) Option {
	return func(s *style) {
		if math.IsNaN(alpha) || alpha < 0 || alpha > 1 {
			s.fail(errors.NewValidationError("alpha", "must be in [0, 1]", alpha))
			return
		}
		s.alpha = alpha
	}
}

// WithLineStyle sets the dash pattern: "-", "--", ":", "-." or their names
// solid, dashed, dotted, dashdot.
func WithLineStyle(ls string) Option {
	return func(s *style) {
		if _, ok := dashPatterns[ls]; !ok {
			s.fail(errors.NewValidationError("linestyle", "must be one of - -- : -. solid dashed dotted dashdot", ls))
			return
		}
		s.lineStyle = ls
	}
}

// WithLineWidth sets the line width in points.
func WithLineWidth(width float64) Option {
	return func(s *style) {
		if !positive(width) {
			s.fail(errors.NewValidationError("linewidth", "must be a positive number", width))
			return
		}
		s.lineWidth = width
	}
}

// WithColor sets the line, text or edge colour.
func WithColor(c color.Color) Option {
	return func(s *style) {
		if c == nil {
			s.fail(errors.NewValidationError("color", "must not be nil", nil))
			return
		}
		s.color = c
	}
}

// WithColorName sets the colour from a name ("steelblue") or a hex string.
func WithColorName(name string) Option {
	return func(s *style) {
		c, err := parseColor("color", name)
		if err != nil {
			s.fail(err)
			return
		}
		s.color = c
	}
}

// WithFill fills closed shapes with the colour.
func WithFill(fill bool) Option {
	return func(s *style) {
		s.fill = fill
	}
}

// WithZOrder sets the drawing order; higher values are drawn on top.
func WithZOrder(z float64) Option {
	return func(s *style) {
		if math.IsNaN(z) || math.IsInf(z, 0) {
			s.fail(errors.NewValidationError("zorder", "must be finite", z))
			return
		}
		s.zorder = z
	}
}

// WithFontSize sets the font size in points.
func WithFontSize(size float64) Option {
	return func(s *style) {
		if !positive(size) {
			s.fail(errors.NewValidationError("fontsize", "must be a positive number", size))
			return
		}
		s.fontSize = size
	}
}

// WithPad sets the distance in points between a title or label and the axes.
func WithPad(pad float64) Option {
	return func(s *style) {
		if math.IsNaN(pad) || math.IsInf(pad, 0) || pad < 0 {
			s.fail(errors.NewValidationError("pad", "must be a non-negative number", pad))
			return
		}
		s.pad = pad
	}
}

var dashPatterns = map[string][]vg.Length{
	"-":       nil,
	"solid":   nil,
	"--":      {vg.Points(5), vg.Points(3)},
	"dashed":  {vg.Points(5), vg.Points(3)},
	":":       {vg.Points(1), vg.Points(2)},
	"dotted":  {vg.Points(1), vg.Points(2)},
	"-.":      {vg.Points(5), vg.Points(2), vg.Points(1), vg.Points(2)},
	"dashdot": {vg.Points(5), vg.Points(2), vg.Points(1), vg.Points(2)},
}

// strokeColor is the style colour, or fallback, with alpha applied.
func (s style) strokeColor(fallback color.Color) color.Color {
	c := s.color
	if c == nil {
		c = fallback
	}
	return fade(c, s.alpha)
}

func (s style) lineStyleOf(fallback color.Color) draw.LineStyle {
	return draw.LineStyle{
		Color:  s.strokeColor(fallback),
		Width:  vg.Points(s.lineWidth),
		Dashes: dashPatterns[s.lineStyle],
	}
}

// fade scales the alpha channel of c.
func fade(c color.Color, alpha float64) color.Color {
	if alpha >= 1 {
		return c
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	n.A = uint8(math.Round(float64(n.A) * alpha))
	return n
}

func positive(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v > 0
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// parseWhich expands an axis selector into its x and y parts.
func parseWhich(which string, allowBoth bool) (x, y bool, err error) {
	switch strings.ToLower(which) {
	case "x":
		return true, false, nil
	case "y":
		return false, true, nil
	case "xy", "yx":
		return true, true, nil
	case "both":
		if allowBoth {
			return true, true, nil
		}
	}
	valid := "x, y, xy or yx"
	if allowBoth {
		valid = "x, y, xy, yx or both"
	}
	return false, false, errors.NewValidationError("which", "must be "+valid, which)
}
