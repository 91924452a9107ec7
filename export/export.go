// Package export writes a consolidated option model into relational tables
// (SQLite, PostgreSQL or MySQL) so it can be queried with SQL.
package export

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shibukawa/gccopt"
	"github.com/shibukawa/gccopt/model"
)

// Result identifies an export run and counts the rows written per table.
type Result struct {
	RunID      string
	Languages  int
	Enums      int
	EnumValues int
	Options    int
	Enables    int
	Conditions int
	Properties int
}

// Exporter writes models into one database.
type Exporter struct {
	db      *sql.DB
	dialect gccopt.Dialect
	logger  *slog.Logger
}

// NewExporter creates an exporter. A nil logger discards log output.
func NewExporter(db *sql.DB, dialect gccopt.Dialect, logger *slog.Logger) *Exporter {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Exporter{db: db, dialect: dialect, logger: logger}
}

// Export replaces the content of the option tables with m in a single
// transaction. Tables are created when missing.
func (e *Exporter) Export(ctx context.Context, m *model.Model) (Result, error) {
	var result Result

	tx, err := e.db.BeginTx(ctx, nil)
	if err != nil {
		return result, fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer tx.Rollback()

	for _, ddl := range schemaFor(e.dialect) {
		if _, err := tx.ExecContext(ctx, ddl); err != nil {
			return result, fmt.Errorf("failed to create table: %w", err)
		}
	}

	for _, table := range tables {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return result, fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}

	w := &writer{ctx: ctx, tx: tx, dialect: e.dialect}

	result.Languages, err = w.languages(m)
	if err != nil {
		return result, err
	}

	result.Enums, result.EnumValues, err = w.enums(m)
	if err != nil {
		return result, err
	}

	result.Options, result.Conditions, result.Properties, err = w.options(m)
	if err != nil {
		return result, err
	}

	result.Enables, err = w.enables(m)
	if err != nil {
		return result, err
	}

	result.RunID = uuid.NewString()

	runQuery := insertSQL(e.dialect, "opt_export_runs", "id", "exported_at", "option_count")
	if err := w.exec(runQuery, result.RunID, time.Now().UTC().Format(time.RFC3339), result.Options); err != nil {
		return result, err
	}

	if err := tx.Commit(); err != nil {
		return result, fmt.Errorf("failed to commit export: %w", err)
	}

	e.logger.Info("exported option model",
		"run", result.RunID,
		"dialect", string(e.dialect),
		"languages", result.Languages,
		"enums", result.Enums,
		"options", result.Options,
		"enables", result.Enables)

	return result, nil
}

type writer struct {
	ctx     context.Context
	tx      *sql.Tx
	dialect gccopt.Dialect
}

func (w *writer) exec(query string, args ...any) error {
	if _, err := w.tx.ExecContext(w.ctx, query, args...); err != nil {
		return fmt.Errorf("failed to execute %q: %w", query, err)
	}

	return nil
}

func (w *writer) languages(m *model.Model) (int, error) {
	query := insertSQL(w.dialect, "opt_languages", "name", "ordinal")

	seen := make(map[string]bool)
	count := 0

	for _, lang := range m.Languages() {
		if seen[lang] {
			continue
		}

		seen[lang] = true

		if err := w.exec(query, lang, count); err != nil {
			return count, err
		}

		count++
	}

	return count, nil
}

func (w *writer) enums(m *model.Model) (int, int, error) {
	enumQuery := insertSQL(w.dialect, "opt_enums", "name", "enum_type", "source")
	valueQuery := insertSQL(w.dialect, "opt_enum_values", "enum_name", "string_value", "value_symbol", "ordinal")

	enums, values := 0, 0

	for _, e := range m.Enums() {
		if err := w.exec(enumQuery, e.Name, e.Type, source(e.Position)); err != nil {
			return enums, values, err
		}

		enums++

		for i, str := range e.Strings() {
			if err := w.exec(valueQuery, e.Name, str, e.Values[str], i); err != nil {
				return enums, values, err
			}

			values++
		}
	}

	return enums, values, nil
}

func (w *writer) options(m *model.Model) (int, int, int, error) {
	optionQuery := insertSQL(w.dialect, "opt_options", "name", "raw_properties", "help", "warning", "default_on", "alias_of", "source")
	conditionQuery := insertSQL(w.dialect, "opt_option_conditions", "option_name", "ordinal", "expression", "compound")
	propertyQuery := insertSQL(w.dialect, "opt_option_properties", "option_name", "ordinal", "prop_key", "payload")

	options, conditions, props := 0, 0, 0

	for _, o := range m.Options() {
		var aliasOf sql.NullString
		if target, ok := o.AliasTarget(); ok {
			aliasOf = sql.NullString{String: target, Valid: true}
		}

		err := w.exec(optionQuery, o.Name, o.RawProperties, o.Help(), o.IsWarning(), o.IsByDefault(), aliasOf, source(o.Position))
		if err != nil {
			return options, conditions, props, err
		}

		options++

		enabledBy, _ := o.EnabledBy()
		for i, cond := range enabledBy {
			if err := w.exec(conditionQuery, o.Name, i, cond, model.IsCompound(cond)); err != nil {
				return options, conditions, props, err
			}

			conditions++
		}

		i := 0
		for p := range o.Properties.All() {
			var payload sql.NullString
			if p.HasPayload {
				payload = sql.NullString{String: p.Payload, Valid: true}
			}

			if err := w.exec(propertyQuery, o.Name, i, p.Key, payload); err != nil {
				return options, conditions, props, err
			}

			i++
			props++
		}
	}

	return options, conditions, props, nil
}

func (w *writer) enables(m *model.Model) (int, error) {
	query := insertSQL(w.dialect, "opt_option_enables", "enabler", "enabled")
	count := 0

	for _, o := range m.Options() {
		for _, enabled := range o.Enables {
			if err := w.exec(query, o.Name, enabled); err != nil {
				return count, err
			}

			count++
		}
	}

	return count, nil
}

func source(pos model.Position) sql.NullString {
	if pos.File == "" {
		return sql.NullString{}
	}

	return sql.NullString{String: pos.String(), Valid: true}
}
