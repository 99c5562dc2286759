package plotting

import (
	"image/color"
	"math"
	"testing"

	"github.com/YuminosukeSato/plotkit/pairwise"
	"github.com/YuminosukeSato/plotkit/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
)

var testGroups = [][]string{
	{"a", "b", "c"},
	{"b", "c", "d"},
	{"x", "y"},
}

func TestParseMask(t *testing.T) {
	tests := []struct {
		name    string
		want    Mask
		wantErr bool
	}{
		{name: "", want: NoMask},
		{name: "none", want: NoMask},
		{name: "upper", want: MaskUpper},
		{name: "UpperDiag", want: MaskUpperDiag},
		{name: "lower", want: MaskLower},
		{name: " lowerdiag ", want: MaskLowerDiag},
		{name: "diagonal", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseMask(tt.name)
			if tt.wantErr {
				assertValidation(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMaskHides(t *testing.T) {
	// Hidden cells of a 3×3 matrix, row-major.
	tests := []struct {
		mask Mask
		want [3][3]bool
	}{
		{mask: NoMask},
		{mask: MaskUpper, want: [3][3]bool{{false, true, true}, {false, false, true}, {false, false, false}}},
		{mask: MaskUpperDiag, want: [3][3]bool{{true, true, true}, {false, true, true}, {false, false, true}}},
		{mask: MaskLower, want: [3][3]bool{{false, false, false}, {true, false, false}, {true, true, false}}},
		{mask: MaskLowerDiag, want: [3][3]bool{{true, false, false}, {true, true, false}, {true, true, true}}},
	}
	for _, tt := range tests {
		t.Run(string(tt.mask), func(t *testing.T) {
			for i := 0; i < 3; i++ {
				for j := 0; j < 3; j++ {
					assert.Equal(t, tt.want[i][j], tt.mask.Hides(i, j), "cell (%d, %d)", i, j)
				}
			}
		})
	}
}

func TestSimilarityHeatmap(t *testing.T) {
	ax := testAxes(t)
	hm, err := SimilarityHeatmap(ax, testGroups, pairwise.SimilarityPreset[string](pairwise.Jaccard),
		WithTickLabels("first", "second", "third"),
		WithAnnotations(HeatmapAnnotDefaults()),
	)
	require.NoError(t, err)

	assert.Equal(t, 0.0, hm.Min)
	assert.Equal(t, 1.0, hm.Max)
	assert.Equal(t, NoMask, hm.Mask)
	assert.InDelta(t, 0.5, hm.Matrix.At(0, 1), 1e-12)
	assert.True(t, ax.tight)

	// heatmap and cell labels
	require.Equal(t, 2, ax.Len())
	h := ax.elements[0].plotter.(*plotter.HeatMap)
	assert.Equal(t, 0.0, h.Min)
	assert.Equal(t, 1.0, h.Max)

	lbl := ax.elements[1].plotter.(*plotter.Labels)
	assert.Len(t, lbl.Labels, 9)
	assert.Contains(t, lbl.Labels, "0.50")

	// Row 0 is drawn at the top.
	assert.Equal(t, "first", ax.XTicks()[0].Label)
	assert.Equal(t, "third", ax.YTicks()[0].Label)
	assert.Equal(t, "first", ax.YTicks()[2].Label)
}

func TestCorrelationHeatmap(t *testing.T) {
	ax := testAxes(t)
	seqs := [][]float64{
		{1, 2, 3, 4},
		{4, 3, 2, 1},
		{2, 2, 2, 2},
	}
	hm, err := CorrelationHeatmap(ax, seqs, pairwise.CorrelationPreset(pairwise.Pearson),
		WithMask(MaskUpper),
		WithAnnotations(AnnotStyle{Format: "%.1f"}),
		WithMatrixOptions(pairwise.WithWorkers(2)),
	)
	require.NoError(t, err)

	assert.Equal(t, -1.0, hm.Min)
	assert.Equal(t, 1.0, hm.Max)
	assert.Equal(t, MaskUpper, hm.Mask)
	assert.InDelta(t, -1.0, hm.Matrix.At(1, 0), 1e-12)

	// Lower triangle and diagonal of a 3×3 matrix minus the NaN cells of
	// the constant series.
	lbl := ax.elements[1].plotter.(*plotter.Labels)
	assert.Len(t, lbl.Labels, 3)
	assert.NotContains(t, lbl.Labels, "NaN")
}

func TestMaskedHeatmap(t *testing.T) {
	data := mat.NewDense(3, 3, []float64{
		1, 100, 100,
		-2, 1, 100,
		3, 4, 1,
	})

	ax := testAxes(t)
	hm, err := MaskedHeatmap(ax, data, MaskUpper)
	require.NoError(t, err)
	assert.Equal(t, -2.0, hm.Min, "masked cells do not set the range")
	assert.Equal(t, 4.0, hm.Max)

	grid := matrixGrid{m: data, mask: MaskUpper, rows: 3, cols: 3}
	assert.Equal(t, 1.0, grid.Z(0, 2))
	assert.True(t, math.IsNaN(grid.Z(1, 2)))
	assert.Equal(t, 3.0, grid.Z(0, 0))

	for _, mask := range []Mask{MaskUpperDiag, MaskLower, MaskLowerDiag} {
		_, err := MaskedHeatmap(testAxes(t), data, mask)
		assert.NoError(t, err, "mask %s", mask)
	}

	hm, err = MaskedHeatmap(testAxes(t), mat.NewDense(1, 1, []float64{7}), NoMask)
	require.NoError(t, err)
	assert.Equal(t, 6.5, hm.Min, "single values are widened")
	assert.Equal(t, 7.5, hm.Max)
}

func TestHeatmapPathological(t *testing.T) {
	square := mat.NewDense(2, 2, []float64{1, 0.5, 0.5, 1})

	tests := []struct {
		name string
		run  func(ax *Axes) error
	}{
		{name: "unknown mask", run: func(ax *Axes) error {
			_, err := MaskedHeatmap(ax, square, Mask("diagonal"))
			return err
		}},
		{name: "too few labels", run: func(ax *Axes) error {
			_, err := MaskedHeatmap(ax, square, NoMask, WithTickLabels("a"))
			return err
		}},
		{name: "labels on a rectangular matrix", run: func(ax *Axes) error {
			_, err := MaskedHeatmap(ax, mat.NewDense(2, 3, nil), NoMask, WithTickLabels("a", "b"))
			return err
		}},
		{name: "empty format", run: func(ax *Axes) error {
			_, err := MaskedHeatmap(ax, square, NoMask, WithAnnotations(AnnotStyle{}))
			return err
		}},
		{name: "negative annotation size", run: func(ax *Axes) error {
			_, err := MaskedHeatmap(ax, square, NoMask, WithAnnotations(AnnotStyle{Format: "%.1f", FontSize: -1}))
			return err
		}},
		{name: "inverted range", run: func(ax *Axes) error {
			_, err := MaskedHeatmap(ax, square, NoMask, WithRange(1, 0))
			return err
		}},
		{name: "nan range", run: func(ax *Axes) error {
			_, err := MaskedHeatmap(ax, square, NoMask, WithRange(math.NaN(), 1))
			return err
		}},
		{name: "nil data", run: func(ax *Axes) error {
			_, err := MaskedHeatmap(ax, nil, NoMask)
			return err
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ax := testAxes(t)
			assertValidation(t, tt.run(ax))
			assert.Zero(t, ax.Len())
		})
	}
}

func TestHeatmapErrors(t *testing.T) {
	_, err := SimilarityHeatmap(testAxes(t), [][]string{}, pairwise.SimilarityPreset[string](pairwise.Jaccard))
	assert.ErrorIs(t, err, errors.ErrEmptyData)

	_, err = SimilarityHeatmap(testAxes(t), testGroups, pairwise.SimilarityPreset[string](pairwise.Pearson))
	var unsupported *errors.UnsupportedMethodError
	assert.True(t, errors.As(err, &unsupported))

	_, err = CorrelationHeatmap(nil, [][]float64{{1, 2}}, pairwise.CorrelationPreset(pairwise.Kendall))
	assert.ErrorIs(t, err, errors.ErrNilAxes)
}

func TestColorMapByName(t *testing.T) {
	for _, name := range []string{"kindlmann", "BlackBody", "extendedblackbody", "bluered", "purpleorange", "greenpurple", "bluetan", "greenred"} {
		cm, err := ColorMapByName(name)
		require.NoError(t, err, name)
		assert.NotNil(t, cm)
	}
	_, err := ColorMapByName("viridis")
	assertValidation(t, err)
}

func TestColorBar(t *testing.T) {
	ax := testAxes(t)
	hm, err := MaskedHeatmap(ax, mat.NewDense(2, 2, []float64{0, 1, 2, 3}), NoMask,
		WithColorMap(moreland.SmoothGreenRed()))
	require.NoError(t, err)

	style := HeatmapCBarDefaults()
	style.Label = "value"
	require.NoError(t, ColorBar(ax, hm, style))
	require.NotNil(t, ax.cbar)
	assert.Equal(t, 0.0, ax.cbar.min)
	assert.Equal(t, 3.0, ax.cbar.max)

	p := ax.cbar.plot(ax.theme)
	assert.Equal(t, "value", p.Y.Label.Text)
}

func TestColorBarPathological(t *testing.T) {
	ax := testAxes(t)
	hm, err := MaskedHeatmap(ax, mat.NewDense(1, 2, []float64{0, 1}), NoMask)
	require.NoError(t, err)

	withStyle := func(fn func(*ColorBarStyle)) ColorBarStyle {
		s := HeatmapCBarDefaults()
		fn(&s)
		return s
	}
	tests := []struct {
		name  string
		hm    *Heatmap
		style ColorBarStyle
	}{
		{name: "nil heatmap", style: HeatmapCBarDefaults()},
		{name: "zero fraction", hm: hm, style: withStyle(func(s *ColorBarStyle) { s.Fraction = 0 })},
		{name: "large fraction", hm: hm, style: withStyle(func(s *ColorBarStyle) { s.Fraction = 0.8 })},
		{name: "negative pad", hm: hm, style: withStyle(func(s *ColorBarStyle) { s.Pad = -0.1 })},
		{name: "negative colors", hm: hm, style: withStyle(func(s *ColorBarStyle) { s.Colors = -3 })},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertValidation(t, ColorBar(ax, tt.hm, tt.style))
		})
	}
	assert.Nil(t, ax.cbar)
	assert.ErrorIs(t, ColorBar(nil, hm, HeatmapCBarDefaults()), errors.ErrNilAxes)
}

func TestContrast(t *testing.T) {
	assert.Equal(t, color.White, contrast(color.Black))
	assert.Equal(t, color.Black, contrast(color.RGBA{R: 250, G: 240, B: 200, A: 255}))
	assert.Equal(t, 0, paletteIndex(-5, 0, 1, 256))
	assert.Equal(t, 255, paletteIndex(5, 0, 1, 256))
	assert.Equal(t, 128, paletteIndex(0.5, 0, 1, 256))
}
