package main

import (
	"context"
	"fmt"

	"github.com/shibukawa/gccopt/export"
)

// ExportCmd represents the export command
type ExportCmd struct {
	Output string `help:"SQLite database file; defaults to export.output of the config" short:"O"`
	Env    string `help:"Database environment from the config file" short:"e"`
}

func (cmd *ExportCmd) Run(ctx *Context) error {
	if cmd.Output != "" && cmd.Env != "" {
		return ErrOutputAndEnvExclusive
	}

	config, m, err := ctx.load()
	if err != nil {
		return err
	}

	driver, connection := "sqlite3", cmd.Output
	if connection == "" {
		connection = config.Export.Output
	}

	if cmd.Env != "" {
		db, ok := config.Databases[cmd.Env]
		if !ok {
			return fmt.Errorf("%w: '%s'", ErrEnvironmentNotFound, cmd.Env)
		}

		driver, connection = db.Driver, db.Connection
	}

	background := context.Background()

	db, dialect, err := export.Open(background, driver, connection)
	if err != nil {
		return err
	}
	defer db.Close()

	ctx.info("Exporting to %s database", dialect)

	result, err := export.NewExporter(db, dialect, ctx.Logger).Export(background, m)
	if err != nil {
		return err
	}

	ctx.success("Exported %d options, %d enums and %d enables edges", result.Options, result.Enums, result.Enables)

	return nil
}
