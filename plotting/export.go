package plotting

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/YuminosukeSato/plotkit/pkg/errors"
	"github.com/YuminosukeSato/plotkit/pkg/log"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgpdf"
	"gonum.org/v1/plot/vg/vgsvg"
)

// DefaultDPI is the PNG resolution used by Save.
const DefaultDPI = 300

// Export formats.
const (
	FormatPNG = "png"
	FormatSVG = "svg"
	FormatPDF = "pdf"
)

func logger() log.Logger {
	return log.GetLoggerWithName("plotting")
}

// Render draws fig in the given format ("png", "svg" or "pdf") and writes it
// to w. dpi only applies to PNG.
func Render(fig *Figure, w io.Writer, format string, dpi int) (int64, error) {
	if fig == nil {
		return 0, errors.NewValidationError("figure", "must not be nil", nil)
	}

	var (
		canvas vg.CanvasSizer
		out    io.WriterTo
	)
	switch format {
	case FormatPNG:
		if dpi <= 0 {
			return 0, errors.NewValidationError("dpi", "must be a positive integer", dpi)
		}
		c := vgimg.NewWith(vgimg.UseWH(fig.width, fig.height), vgimg.UseDPI(dpi))
		canvas, out = c, vgimg.PngCanvas{Canvas: c}
	case FormatSVG:
		c := vgsvg.New(fig.width, fig.height)
		canvas, out = c, c
	case FormatPDF:
		c := vgpdf.New(fig.width, fig.height)
		canvas, out = c, c
	default:
		return 0, errors.NewValidationError("format", "must be png, svg or pdf", format)
	}

	if err := fig.Draw(draw.New(canvas)); err != nil {
		return 0, errors.NewRenderError("Render", format, err)
	}
	n, err := out.WriteTo(w)
	if err != nil {
		return n, errors.NewRenderError("Render", format, err)
	}
	return n, nil
}

// SavePNG writes fig to filename as a PNG image with the given resolution.
func SavePNG(fig *Figure, filename string, dpi int) error {
	if dpi <= 0 {
		return errors.NewValidationError("dpi", "must be a positive integer", dpi)
	}
	return save(fig, filename, FormatPNG, dpi)
}

// SaveSVG writes fig to filename as an SVG document.
func SaveSVG(fig *Figure, filename string) error {
	return save(fig, filename, FormatSVG, 0)
}

// SavePDF writes fig to filename as a PDF document.
func SavePDF(fig *Figure, filename string) error {
	return save(fig, filename, FormatPDF, 0)
}

// Save writes fig to filename in the format named by its extension
// (.png at DefaultDPI, .svg or .pdf).
func Save(fig *Figure, filename string) error {
	format := strings.TrimPrefix(strings.ToLower(filepath.Ext(filename)), ".")
	switch format {
	case FormatPNG:
		return SavePNG(fig, filename, DefaultDPI)
	case FormatSVG:
		return SaveSVG(fig, filename)
	case FormatPDF:
		return SavePDF(fig, filename)
	}
	if filename == "" {
		return errors.NewValidationError("filename", "must not be empty", filename)
	}
	return errors.NewValidationError("filename", "extension must be .png, .svg or .pdf", filename)
}

func save(fig *Figure, filename, format string, dpi int) (err error) {
	if filename == "" {
		return errors.NewValidationError("filename", "must not be empty", filename)
	}
	if fig == nil {
		return errors.NewValidationError("figure", "must not be nil", nil)
	}

	f, err := os.Create(filename)
	if err != nil {
		return errors.NewRenderError("save", filename, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errors.NewRenderError("save", filename, cerr)
		}
	}()

	n, err := Render(fig, f, format, dpi)
	if err != nil {
		logger().Error("figure export failed", err,
			log.FormatKey, format,
			log.OutputPathKey, filename,
		)
		return err
	}

	logger().Info("figure saved",
		log.OperationKey, log.OperationSave,
		log.FormatKey, format,
		log.OutputPathKey, filename,
		log.BytesKey, n,
		log.DPIKey, dpi,
		log.AxesKey, fig.rows*fig.cols,
	)
	return nil
}
