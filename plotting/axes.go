package plotting

import (
	"math"
	"strconv"
	"strings"

	"github.com/YuminosukeSato/plotkit/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/text"
)

var spineNames = map[string]bool{"top": true, "left": true, "bottom": true, "right": true}

// Despine hides the named spines (top, left, bottom, right). A nil slice
// hides the top and right spines.
func Despine(ax *Axes, which []string) error {
	if err := checkAxes(ax); err != nil {
		return err
	}
	if which == nil {
		which = []string{"top", "right"}
	}
	for _, name := range which {
		if !spineNames[name] {
			return errors.NewValidationError("which", "spines must be top, left, bottom or right", name)
		}
	}
	for _, name := range which {
		ax.spines[name] = true
	}
	return nil
}

// TickLabelSize sets the font size of the tick labels on both axes.
func TickLabelSize(ax *Axes, size float64) error {
	if err := checkAxes(ax); err != nil {
		return err
	}
	if !positive(size) {
		return errors.NewValidationError("size", "must be a positive number", size)
	}
	ax.x.tickSize = size
	ax.y.tickSize = size
	return nil
}

// Limits sets the visible data range. Each of xlimits and ylimits is nil
// (unchanged) or two finite distinct values; a descending pair inverts the
// axis.
func Limits(ax *Axes, xlimits, ylimits []float64) error {
	if err := checkAxes(ax); err != nil {
		return err
	}
	if err := checkLimits("xlimits", xlimits); err != nil {
		return err
	}
	if err := checkLimits("ylimits", ylimits); err != nil {
		return err
	}
	if xlimits != nil {
		ax.x.limits = []float64{xlimits[0], xlimits[1]}
	}
	if ylimits != nil {
		ax.y.limits = []float64{ylimits[0], ylimits[1]}
	}
	return nil
}

func checkLimits(param string, lim []float64) error {
	switch {
	case lim == nil:
		return nil
	case len(lim) != 2:
		return errors.NewValidationError(param, "must hold exactly two values", lim)
	case !finite(lim...):
		return errors.NewValidationError(param, "must be finite", lim)
	case lim[0] == lim[1]:
		return errors.NewValidationError(param, "must be distinct", lim)
	}
	return nil
}

// TicksAndLabels places ticks at the given positions on the selected axes
// (x, y, xy or yx). labels is nil, in which case the positions are printed,
// or has one label per tick.
func TicksAndLabels(ax *Axes, which string, ticks []float64, labels []string) error {
	if err := checkAxes(ax); err != nil {
		return err
	}
	onX, onY, err := parseWhich(which, false)
	if err != nil {
		return err
	}
	if !finite(ticks...) {
		return errors.NewValidationError("ticks", "must be finite", ticks)
	}
	if labels != nil && len(labels) != len(ticks) {
		return errors.NewValidationError("labels", "must have one label per tick", len(labels))
	}

	marks := make([]plot.Tick, len(ticks))
	for i, v := range ticks {
		marks[i] = plot.Tick{Value: v, Label: strconv.FormatFloat(v, 'g', -1, 64)}
		if labels != nil {
			marks[i].Label = labels[i]
		}
	}
	if onX {
		ax.x.ticks = marks
	}
	if onY {
		ax.y.ticks = marks
	}
	return nil
}

// RotateTickLabels rotates the tick labels of the selected axes
// (x, y, xy, yx or both) counterclockwise by degrees.
func RotateTickLabels(ax *Axes, which string, degrees float64) error {
	if err := checkAxes(ax); err != nil {
		return err
	}
	onX, onY, err := parseWhich(which, true)
	if err != nil {
		return err
	}
	if !finite(degrees) {
		return errors.NewValidationError("rotation", "must be finite", degrees)
	}

	rad := degrees * math.Pi / 180
	if onX {
		ax.x.rotation = rad
	}
	if onY {
		ax.y.rotation = rad
	}
	return nil
}

var (
	horizontalAlign = map[string]text.XAlignment{
		"left":   text.XLeft,
		"center": text.XCenter,
		"right":  text.XRight,
	}
	verticalAlign = map[string]text.YAlignment{
		"top":    text.YTop,
		"center": text.YCenter,
		"bottom": text.YBottom,
	}
)

// AlignTickLabels sets the anchor of the tick labels of the selected axes.
// horizontal is left, center, right or "" (unchanged); vertical is top,
// center, bottom or "".
func AlignTickLabels(ax *Axes, which, horizontal, vertical string) error {
	if err := checkAxes(ax); err != nil {
		return err
	}
	onX, onY, err := parseWhich(which, true)
	if err != nil {
		return err
	}

	var xa *text.XAlignment
	if horizontal != "" {
		a, ok := horizontalAlign[strings.ToLower(horizontal)]
		if !ok {
			return errors.NewValidationError("horizontal", "must be left, center or right", horizontal)
		}
		xa = &a
	}
	var ya *text.YAlignment
	if vertical != "" {
		a, ok := verticalAlign[strings.ToLower(vertical)]
		if !ok {
			return errors.NewValidationError("vertical", "must be top, center or bottom", vertical)
		}
		ya = &a
	}

	for _, st := range []struct {
		on bool
		a  *axisState
	}{{onX, &ax.x}, {onY, &ax.y}} {
		if !st.on {
			continue
		}
		if xa != nil {
			st.a.xAlign = xa
		}
		if ya != nil {
			st.a.yAlign = ya
		}
	}
	return nil
}
