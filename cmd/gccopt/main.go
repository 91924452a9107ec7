package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
)

const version = "v0.1.0"

// CLI is the command line of gccopt.
type CLI struct {
	Config  string   `help:"Configuration file path" default:".gccopt.yaml"`
	Verbose bool     `help:"Enable verbose output" short:"v"`
	Quiet   bool     `help:"Suppress output" short:"q"`
	NoColor bool     `help:"Disable colored output"`
	File    []string `help:"Option definition file (repeatable)" short:"f" type:"path"`

	Show       ShowCmd       `cmd:"" help:"Describe options by name or regular expression"`
	Unreported UnreportedCmd `cmd:"" help:"List warnings not enabled by any umbrella option"`
	Languages  LanguagesCmd  `cmd:"" help:"List declared languages"`
	Enums      EnumsCmd      `cmd:"" help:"List enums and their values"`
	Stats      StatsCmd      `cmd:"" help:"Show model statistics and diagnostics"`
	Export     ExportCmd     `cmd:"" help:"Export the option model to a SQL database"`
	Version    VersionCmd    `cmd:"" help:"Show version information"`
}

type VersionCmd struct{}

func (cmd *VersionCmd) Run(ctx *Context) error {
	_, err := fmt.Fprintln(ctx.Stdout, "gccopt "+version)
	return err
}

// run parses args and executes the selected command.
func run(args []string, stdout, stderr io.Writer) error {
	var cli CLI

	parser, err := kong.New(&cli,
		kong.Name("gccopt"),
		kong.Description("Query GCC option definition (.opt) files"),
		kong.UsageOnError(),
		kong.Writers(stdout, stderr),
	)
	if err != nil {
		return err
	}

	kctx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	appCtx := &Context{
		Config:  cli.Config,
		Verbose: cli.Verbose,
		Quiet:   cli.Quiet,
		NoColor: cli.NoColor,
		Files:   cli.File,
		Stdout:  stdout,
		Stderr:  stderr,
		Logger:  newLogger(stderr, cli.Verbose, cli.Quiet),
	}

	return kctx.Run(appCtx)
}

func main() {
	err := run(os.Args[1:], os.Stdout, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newLogger logs to w at Warn, Debug with verbose or Error with quiet.
func newLogger(w io.Writer, verbose, quiet bool) *slog.Logger {
	level := slog.LevelWarn

	switch {
	case verbose:
		level = slog.LevelDebug
	case quiet:
		level = slog.LevelError
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
