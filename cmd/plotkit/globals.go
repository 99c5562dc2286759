package main

import (
	"io"

	"github.com/YuminosukeSato/plotkit/pkg/log"
	"github.com/YuminosukeSato/plotkit/plotting"
)

// Globals are the flags shared by every command.
type Globals struct {
	LogLevel string `name:"log-level" default:"warn" enum:"debug,info,warn,error" env:"PLOTKIT_LOG_LEVEL" help:"Minimum level of JSON log lines written to stderr (${enum})."`
	Theme    string `type:"existingfile" env:"PLOTKIT_THEME" placeholder:"FILE" help:"YAML theme file."`
	Dark     bool   `help:"Draw light text on a black background."`
	TeX      bool   `name:"tex" help:"Typeset text with the LaTeX handler."`

	// LogOutput overrides stderr for log lines.
	LogOutput io.Writer `kong:"-"`
}

// setup configures logging and the plotting theme before a command runs.
func (g *Globals) setup() error {
	if err := log.SetupLogger(g.LogLevel, g.LogOutput); err != nil {
		return err
	}

	if g.Theme != "" {
		th, err := plotting.LoadTheme(g.Theme)
		if err != nil {
			return err
		}
		plotting.SetTheme(th)
	}
	if g.Dark {
		plotting.DarkMode()
	}
	if g.TeX {
		plotting.TexOn()
	}
	return nil
}
