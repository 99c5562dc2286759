package plotting

import (
	"math"
	"testing"

	"github.com/YuminosukeSato/plotkit/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

func assertValidation(t *testing.T, err error) {
	t.Helper()
	var valErr *errors.ValidationError
	require.Error(t, err)
	assert.True(t, errors.As(err, &valErr), "got %T: %v", err, err)
}

func TestSinglePlot(t *testing.T) {
	fig, ax, err := SinglePlot()
	require.NoError(t, err)
	require.NotNil(t, ax)
	w, h := fig.Size()
	assert.Equal(t, 7*vg.Inch, w)
	assert.Equal(t, 5*vg.Inch, h)
	assert.Same(t, ax, fig.Axes(0, 0))
	assert.Nil(t, fig.Axes(1, 0))

	fig, _, err = SinglePlot(WithSize(4, 3))
	require.NoError(t, err)
	w, h = fig.Size()
	assert.Equal(t, 4*vg.Inch, w)
	assert.Equal(t, 3*vg.Inch, h)
}

func TestSinglePlotPathological(t *testing.T) {
	for _, size := range [][2]float64{{0, 5}, {7, -1}, {math.NaN(), 5}, {7, math.Inf(1)}} {
		_, _, err := SinglePlot(WithSize(size[0], size[1]))
		assertValidation(t, err)
	}
}

func TestMultiPlot(t *testing.T) {
	fig, axes, err := MultiPlot(3, 2, [2]float64{20, 12})
	require.NoError(t, err)
	require.Len(t, axes, 3)
	for _, row := range axes {
		assert.Len(t, row, 2)
	}
	assert.Same(t, axes[2][1], fig.Axes(2, 1))
}

func TestMultiPlotPathological(t *testing.T) {
	tests := []struct {
		name         string
		nrows, ncols int
		size         [2]float64
	}{
		{name: "negative rows", nrows: -2, ncols: 5, size: [2]float64{20, 20}},
		{name: "zero rows", nrows: 0, ncols: 5, size: [2]float64{20, 20}},
		{name: "negative cols", nrows: 5, ncols: -2, size: [2]float64{20, 20}},
		{name: "negative width", nrows: 2, ncols: 3, size: [2]float64{-20, 20}},
		{name: "negative height", nrows: 2, ncols: 3, size: [2]float64{20, -20}},
		{name: "nan height", nrows: 2, ncols: 3, size: [2]float64{20, math.NaN()}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := MultiPlot(tt.nrows, tt.ncols, tt.size)
			assertValidation(t, err)
		})
	}
}

func TestAxesZOrder(t *testing.T) {
	_, ax, err := SinglePlot()
	require.NoError(t, err)

	require.NoError(t, Lines(ax, "x", []float64{1}, WithZOrder(5)))
	require.NoError(t, Rectangle(ax, 0, 1, 0, 1))
	require.NoError(t, Grid(ax))

	p := ax.Plot()
	require.NotNil(t, p)
	assert.Equal(t, 3, ax.Len())

	// Plot sorts a copy; recorded order is unchanged.
	assert.Equal(t, 5.0, ax.elements[0].z)
	assert.Equal(t, float64(zPatch), ax.elements[1].z)
	assert.Equal(t, float64(zGrid), ax.elements[2].z)
}

func TestFigureDraw(t *testing.T) {
	fig, axes, err := MultiPlot(2, 2, [2]float64{8, 6})
	require.NoError(t, err)

	require.NoError(t, Title(axes[0][0], "first"))
	require.NoError(t, Diagonal(axes[0][1]))
	require.NoError(t, Star(axes[1][0], 1, 2))
	require.NoError(t, Lines(axes[1][1], "y", []float64{0, 1}))

	c := vgimg.New(8*vg.Inch, 6*vg.Inch)
	require.NoError(t, fig.Draw(draw.New(c)))

	var nilFig *Figure
	assertValidation(t, nilFig.Draw(draw.New(c)))
}
