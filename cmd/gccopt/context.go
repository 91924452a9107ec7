package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/fatih/color"
	"github.com/shibukawa/gccopt"
	"github.com/shibukawa/gccopt/model"
	"github.com/shibukawa/gccopt/optfile"
	"github.com/shibukawa/gccopt/query"
)

// Context represents the global context for commands
type Context struct {
	Config  string
	Verbose bool
	Quiet   bool
	NoColor bool
	Files   []string

	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger
}

// load reads the configuration and parses the option files named on the
// command line, or the config inputs when none were given.
func (ctx *Context) load() (*gccopt.Config, *model.Model, error) {
	config, err := gccopt.LoadConfig(ctx.Config)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	if ctx.NoColor || !config.Output.ColorEnabled() {
		color.NoColor = true
	}

	files := ctx.Files
	if len(files) == 0 {
		files = config.Inputs
	}

	if len(files) == 0 {
		return nil, nil, ErrNoInputFiles
	}

	m, err := optfile.ParseFiles(files, optfile.WithLogger(ctx.Logger))
	if err != nil {
		return nil, nil, err
	}

	ctx.info("Loaded %d options from %d files", len(m.Options()), len(files))

	return config, m, nil
}

// formatter resolves the output format: the command flag, then the config.
func (ctx *Context) formatter(flag string, config *gccopt.Config) (*query.Formatter, error) {
	name := flag
	if name == "" {
		name = config.Output.Format
	}

	format, err := query.ParseFormat(name)
	if err != nil {
		return nil, err
	}

	return query.NewFormatter(format), nil
}

// info prints a status line on stderr in verbose mode.
func (ctx *Context) info(format string, args ...any) {
	if ctx.Verbose {
		fmt.Fprintln(ctx.Stderr, color.BlueString(format, args...))
	}
}

// warn prints a problem that does not stop the command.
func (ctx *Context) warn(format string, args ...any) {
	if !ctx.Quiet {
		fmt.Fprintln(ctx.Stderr, color.YellowString(format, args...))
	}
}

// success prints a completion message on stdout unless quiet.
func (ctx *Context) success(format string, args ...any) {
	if !ctx.Quiet {
		fmt.Fprintln(ctx.Stdout, color.GreenString(format, args...))
	}
}
