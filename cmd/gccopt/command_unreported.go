package main

import (
	"github.com/shibukawa/gccopt/query"
)

// UnreportedCmd represents the unreported command
type UnreportedCmd struct {
	Umbrella []string `help:"Umbrella option (repeatable); defaults to the configured umbrellas" short:"u"`
	Details  bool     `help:"Describe each option instead of listing names" short:"d"`
	Format   string   `help:"Output format (text, json, yaml, markdown, html, xml)" short:"o"`
}

func (cmd *UnreportedCmd) Run(ctx *Context) error {
	config, m, err := ctx.load()
	if err != nil {
		return err
	}

	formatter, err := ctx.formatter(cmd.Format, config)
	if err != nil {
		return err
	}

	umbrellas := cmd.Umbrella
	if len(umbrellas) == 0 {
		umbrellas = config.Umbrellas
	}

	options := query.UnreportedWarnings(m, umbrellas)
	ctx.info("%d warnings are not enabled by %v", len(options), umbrellas)

	if cmd.Details {
		return formatter.Options(query.Describe(m, options), ctx.Stdout)
	}

	names := make([]string, 0, len(options))
	for _, o := range options {
		names = append(names, o.Name)
	}

	return formatter.Names("Unreported warnings", names, ctx.Stdout)
}
