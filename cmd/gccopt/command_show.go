package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/shibukawa/gccopt/model"
	"github.com/shibukawa/gccopt/query"
)

// ShowCmd represents the show command
type ShowCmd struct {
	Names  []string `arg:"" optional:"" help:"Option names or regular expressions (a leading '-' needs '--' first); all options when omitted"`
	Where  string   `help:"CEL filter expression, e.g. 'warning && !default_on'" short:"w"`
	Lang   string   `help:"Only options available for this language" short:"l"`
	Format string   `help:"Output format (text, json, yaml, markdown, html, xml)" short:"o"`
}

func (cmd *ShowCmd) Run(ctx *Context) error {
	config, m, err := ctx.load()
	if err != nil {
		return err
	}

	formatter, err := ctx.formatter(cmd.Format, config)
	if err != nil {
		return err
	}

	var filter *query.Filter
	if cmd.Where != "" {
		filter, err = query.NewFilter(cmd.Where)
		if err != nil {
			return err
		}
	}

	options, failed := cmd.selectOptions(ctx, m)

	if cmd.Lang != "" {
		options = query.ForLanguage(options, cmd.Lang)
	}

	options, err = filter.Apply(m, options)
	if err != nil {
		return err
	}

	ctx.info("%d options selected", len(options))

	if err := formatter.Options(query.Describe(m, options), ctx.Stdout); err != nil {
		return err
	}

	if failed > 0 {
		return fmt.Errorf("%w: %d of %d", ErrQueriesFailed, failed, len(cmd.Names))
	}

	return nil
}

// selectOptions resolves every name. Unmatched names are reported and do not
// stop the remaining queries.
func (cmd *ShowCmd) selectOptions(ctx *Context, m *model.Model) ([]*model.Option, int) {
	if len(cmd.Names) == 0 {
		return query.All(m), 0
	}

	var (
		options []*model.Option
		failed  int
	)

	seen := make(map[string]bool)

	for _, match := range query.Select(m, cmd.Names) {
		if match.Err != nil {
			failed++

			fmt.Fprintln(ctx.Stderr, color.RedString("%v", match.Err))

			continue
		}

		for _, o := range match.Options {
			if !seen[o.Name] {
				seen[o.Name] = true
				options = append(options, o)
			}
		}
	}

	return options, failed
}
