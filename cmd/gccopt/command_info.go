package main

import (
	"github.com/shibukawa/gccopt/query"
)

// LanguagesCmd represents the languages command
type LanguagesCmd struct {
	Format string `help:"Output format (text, json, yaml, markdown, html, xml)" short:"o"`
}

func (cmd *LanguagesCmd) Run(ctx *Context) error {
	config, m, err := ctx.load()
	if err != nil {
		return err
	}

	formatter, err := ctx.formatter(cmd.Format, config)
	if err != nil {
		return err
	}

	return formatter.List("Languages", m.Languages(), "", ctx.Stdout)
}

// EnumsCmd represents the enums command
type EnumsCmd struct {
	Names  []string `arg:"" optional:"" help:"Enum names; all enums when omitted"`
	Format string   `help:"Output format (text, json, yaml, markdown, html, xml)" short:"o"`
}

func (cmd *EnumsCmd) Run(ctx *Context) error {
	config, m, err := ctx.load()
	if err != nil {
		return err
	}

	formatter, err := ctx.formatter(cmd.Format, config)
	if err != nil {
		return err
	}

	entries := query.DescribeEnums(m)

	if len(cmd.Names) > 0 {
		wanted := make(map[string]bool, len(cmd.Names))

		for _, name := range cmd.Names {
			if _, err := m.Enum(name); err != nil {
				return err
			}

			wanted[name] = true
		}

		var selected []query.EnumEntry

		for _, e := range entries {
			if wanted[e.Name] {
				selected = append(selected, e)
			}
		}

		entries = selected
	}

	return formatter.Enums(entries, ctx.Stdout)
}

// StatsCmd represents the stats command
type StatsCmd struct {
	Details bool   `help:"List suppressed duplicates and dangling references" short:"d"`
	Format  string `help:"Output format (text, json, yaml, markdown, html, xml)" short:"o"`
}

func (cmd *StatsCmd) Run(ctx *Context) error {
	config, m, err := ctx.load()
	if err != nil {
		return err
	}

	formatter, err := ctx.formatter(cmd.Format, config)
	if err != nil {
		return err
	}

	if err := formatter.Summary(query.Summarize(m), ctx.Stdout); err != nil {
		return err
	}

	if cmd.Details {
		for _, d := range m.Duplicates() {
			ctx.warn("duplicate definition of -%s at %s ignored", d.Name, d.Position)
		}

		for _, d := range m.Dangling() {
			ctx.warn("-%s is enabled by unknown option '%s'", d.Option, d.Condition)
		}
	}

	return nil
}
