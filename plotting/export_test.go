package plotting

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/YuminosukeSato/plotkit/pairwise"
	"github.com/YuminosukeSato/plotkit/pkg/errors"
	"github.com/YuminosukeSato/plotkit/pkg/log"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func heatmapFigure(t *testing.T) *Figure {
	t.Helper()
	fig, axes, err := MultiPlot(1, 2, [2]float64{8, 4})
	require.NoError(t, err)

	hm, err := SimilarityHeatmap(axes[0][0], testGroups, pairwise.SimilarityPreset[string](pairwise.Jaccard),
		WithMask(MaskUpper),
		WithAnnotations(HeatmapAnnotDefaults()),
	)
	require.NoError(t, err)
	require.NoError(t, ColorBar(axes[0][0], hm, HeatmapCBarDefaults()))
	require.NoError(t, Title(axes[0][0], "similarity"))

	ax := axes[0][1]
	require.NoError(t, Diagonal(ax))
	require.NoError(t, Rectangle(ax, 0.2, 0.4, 0.2, 0.4, WithFill(true), WithAlpha(0.3)))
	require.NoError(t, Star(ax, 0.5, 0.5))
	require.NoError(t, Lines(ax, "x", []float64{0.25, 0.75}))
	require.NoError(t, Grid(ax))
	require.NoError(t, Limits(ax, []float64{0, 1}, []float64{0, 1}))
	require.NoError(t, Despine(ax, nil))
	require.NoError(t, RotateTickLabels(ax, "x", 30))
	return fig
}

func TestRender(t *testing.T) {
	fig := heatmapFigure(t)

	tests := []struct {
		format string
		magic  string
	}{
		{format: FormatPNG, magic: "\x89PNG"},
		{format: FormatSVG, magic: "<?xml"},
		{format: FormatPDF, magic: "%PDF"},
	}
	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			var buf bytes.Buffer
			n, err := Render(fig, &buf, tt.format, 72)
			require.NoError(t, err)
			assert.Equal(t, int64(buf.Len()), n)
			assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte(tt.magic)))
		})
	}
}

func TestRenderPathological(t *testing.T) {
	fig := heatmapFigure(t)
	var buf bytes.Buffer

	_, err := Render(fig, &buf, "jpeg", 72)
	assertValidation(t, err)
	_, err = Render(fig, &buf, FormatPNG, 0)
	assertValidation(t, err)
	_, err = Render(nil, &buf, FormatSVG, 0)
	assertValidation(t, err)
	assert.Zero(t, buf.Len())
}

func TestSaveFormats(t *testing.T) {
	dir := t.TempDir()
	fig := heatmapFigure(t)

	files := map[string]func(string) error{
		"dpi.png":  func(name string) error { return SavePNG(fig, name, 50) },
		"fig.svg":  func(name string) error { return SaveSVG(fig, name) },
		"fig.pdf":  func(name string) error { return SavePDF(fig, name) },
		"auto.png": func(name string) error { return Save(fig, name) },
		"auto.SVG": func(name string) error { return Save(fig, name) },
	}
	for name, save := range files {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			require.NoError(t, save(path))
			info, err := os.Stat(path)
			require.NoError(t, err)
			assert.Positive(t, info.Size())
		})
	}
}

func TestSavePathological(t *testing.T) {
	dir := t.TempDir()
	fig, _, err := SinglePlot()
	require.NoError(t, err)

	assertValidation(t, SavePNG(fig, "", 300))
	assertValidation(t, SavePNG(fig, filepath.Join(dir, "neg.png"), -12345))
	assertValidation(t, SavePNG(fig, filepath.Join(dir, "zero.png"), 0))
	assertValidation(t, SaveSVG(fig, ""))
	assertValidation(t, SavePDF(nil, filepath.Join(dir, "nil.pdf")))
	assertValidation(t, Save(fig, ""))
	assertValidation(t, Save(fig, filepath.Join(dir, "fig.jpg")))
	assertValidation(t, Save(fig, filepath.Join(dir, "noext")))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries, "rejected exports must not create files")

	err = SaveSVG(fig, filepath.Join(dir, "missing", "fig.svg"))
	var renderErr *errors.RenderError
	assert.True(t, errors.As(err, &renderErr))
}

func TestSaveLogs(t *testing.T) {
	var buf bytes.Buffer
	log.SetLogger(zerolog.New(&buf).Level(zerolog.InfoLevel))
	t.Cleanup(func() { log.SetLogger(zerolog.New(os.Stderr).Level(zerolog.WarnLevel)) })

	fig, _, err := SinglePlot()
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "fig.svg")
	require.NoError(t, Save(fig, path))

	out := buf.String()
	assert.Contains(t, out, `"message":"figure saved"`)
	assert.Contains(t, out, `"figure.format":"svg"`)
	assert.Contains(t, out, `"component":"plotting"`)
	assert.Contains(t, out, `"figure.axes":1`)
}
