package plotting

import (
	"fmt"
	"image/color"
	"os"
	"strings"
	"sync"

	"github.com/YuminosukeSato/plotkit/pkg/errors"
	"golang.org/x/image/colornames"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/text"
	"gopkg.in/yaml.v3"
)

// Theme holds the global look of new figures.
type Theme struct {
	Name       string
	Background color.Color
	Foreground color.Color
	Grid       color.Color
	// TeX renders all text through the LaTeX handler.
	TeX bool
}

// handler returns the text handler matching t.TeX.
func (t Theme) handler() text.Handler {
	if t.TeX {
		return text.Latex{Fonts: font.DefaultCache}
	}
	return text.Plain{Fonts: font.DefaultCache}
}

func lightTheme() Theme {
	return Theme{
		Name:       "light",
		Background: colornames.White,
		Foreground: colornames.Black,
		Grid:       colornames.Lightgray,
	}
}

func darkTheme() Theme {
	return Theme{
		Name:       "dark",
		Background: colornames.Black,
		Foreground: colornames.White,
		Grid:       colornames.Dimgray,
	}
}

var (
	themeMu sync.RWMutex
	current = lightTheme()
)

// CurrentTheme returns the theme new figures are created with.
func CurrentTheme() Theme {
	themeMu.RLock()
	defer themeMu.RUnlock()
	return current
}

// SetTheme replaces the global theme. Existing figures keep the theme they
// were created with.
func SetTheme(t Theme) {
	themeMu.Lock()
	defer themeMu.Unlock()
	current = t
}

func updateTheme(fn func(*Theme)) {
	themeMu.Lock()
	defer themeMu.Unlock()
	fn(&current)
}

// TexOn renders text of new figures with the LaTeX handler.
func TexOn() {
	updateTheme(func(t *Theme) { t.TeX = true })
}

// TexOff renders text of new figures as plain text.
func TexOff() {
	updateTheme(func(t *Theme) { t.TeX = false })
}

// LightMode switches to dark text on a white background.
func LightMode() {
	updateTheme(func(t *Theme) {
		tex := t.TeX
		*t = lightTheme()
		t.TeX = tex
	})
}

// DarkMode switches to light text on a black background.
func DarkMode() {
	updateTheme(func(t *Theme) {
		tex := t.TeX
		*t = darkTheme()
		t.TeX = tex
	})
}

// themeFile is the on-disk form of a Theme. Colours are names from
// golang.org/x/image/colornames or hex strings (#rgb, #rrggbb, #rrggbbaa).
type themeFile struct {
	Name       string `yaml:"name"`
	Base       string `yaml:"base"`
	Background string `yaml:"background"`
	Foreground string `yaml:"foreground"`
	Grid       string `yaml:"grid"`
	TeX        bool   `yaml:"tex"`
}

// LoadTheme reads a YAML (or JSON) theme file. Unset colours are taken from
// the base theme, "light" by default.
//
//	name: solarized
//	base: light
//	background: "#fdf6e3"
//	foreground: "#657b83"
//	grid: lightgray
func LoadTheme(path string) (Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Theme{}, errors.Wrapf(err, "read theme %s", path)
	}

	var f themeFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return Theme{}, errors.Wrapf(err, "parse theme %s", path)
	}
	return f.theme()
}

func (f themeFile) theme() (Theme, error) {
	var t Theme
	switch strings.ToLower(f.Base) {
	case "", "light":
		t = lightTheme()
	case "dark":
		t = darkTheme()
	default:
		return Theme{}, errors.NewValidationError("base", "must be light or dark", f.Base)
	}
	if f.Name != "" {
		t.Name = f.Name
	}
	t.TeX = f.TeX

	for _, c := range []struct {
		param string
		value string
		dst   *color.Color
	}{
		{"background", f.Background, &t.Background},
		{"foreground", f.Foreground, &t.Foreground},
		{"grid", f.Grid, &t.Grid},
	} {
		if c.value == "" {
			continue
		}
		clr, err := parseColor(c.param, c.value)
		if err != nil {
			return Theme{}, err
		}
		*c.dst = clr
	}
	return t, nil
}

// parseColor resolves a colour name or a hex string.
func parseColor(param, s string) (color.Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if !strings.HasPrefix(s, "#") {
		if c, ok := colornames.Map[s]; ok {
			return c, nil
		}
		return nil, errors.NewValidationError(param, "unknown colour name", s)
	}

	hex := s[1:]
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	var r, g, b, a uint8
	if len(hex) != 8 {
		return nil, errors.NewValidationError(param, "hex colour must have 3, 6 or 8 digits", s)
	}
	if _, err := fmt.Sscanf(hex, "%02x%02x%02x%02x", &r, &g, &b, &a); err != nil {
		return nil, errors.NewValidationError(param, "invalid hex colour", s)
	}
	return color.NRGBA{R: r, G: g, B: b, A: a}, nil
}
