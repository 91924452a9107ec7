package export

import (
	"strings"

	"github.com/shibukawa/gccopt"
)

// Table names replaced by Export, children first so deletes respect
// references. opt_export_runs keeps one row per export and is never cleared.
var tables = []string{
	"opt_option_properties",
	"opt_option_conditions",
	"opt_option_enables",
	"opt_options",
	"opt_enum_values",
	"opt_enums",
	"opt_languages",
}

// schema holds the DDL with {key} standing in for the column type of names
// and string keys. See schemaFor.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS opt_export_runs (
	id VARCHAR(36) NOT NULL PRIMARY KEY,
	exported_at VARCHAR(64) NOT NULL,
	option_count INTEGER NOT NULL
)`,
	`CREATE TABLE IF NOT EXISTS opt_languages (
	name {key} NOT NULL PRIMARY KEY,
	ordinal INTEGER NOT NULL
)`,
	`CREATE TABLE IF NOT EXISTS opt_enums (
	name {key} NOT NULL PRIMARY KEY,
	enum_type {key} NOT NULL,
	source {key}
)`,
	`CREATE TABLE IF NOT EXISTS opt_enum_values (
	enum_name {key} NOT NULL,
	string_value {key} NOT NULL,
	value_symbol {key} NOT NULL,
	ordinal INTEGER NOT NULL,
	PRIMARY KEY (enum_name, string_value)
)`,
	`CREATE TABLE IF NOT EXISTS opt_options (
	name {key} NOT NULL PRIMARY KEY,
	raw_properties TEXT NOT NULL,
	help TEXT NOT NULL,
	warning BOOLEAN NOT NULL,
	default_on BOOLEAN NOT NULL,
	alias_of {key},
	source {key}
)`,
	`CREATE TABLE IF NOT EXISTS opt_option_enables (
	enabler {key} NOT NULL,
	enabled {key} NOT NULL,
	PRIMARY KEY (enabler, enabled)
)`,
	`CREATE TABLE IF NOT EXISTS opt_option_conditions (
	option_name {key} NOT NULL,
	ordinal INTEGER NOT NULL,
	expression TEXT NOT NULL,
	compound BOOLEAN NOT NULL,
	PRIMARY KEY (option_name, ordinal)
)`,
	`CREATE TABLE IF NOT EXISTS opt_option_properties (
	option_name {key} NOT NULL,
	ordinal INTEGER NOT NULL,
	prop_key {key} NOT NULL,
	payload TEXT,
	PRIMARY KEY (option_name, ordinal)
)`,
}

// schemaFor returns the DDL for the dialect. GCC option names are
// case-sensitive (W and w, O and o), so MySQL key columns use a binary
// collation instead of the server's case-insensitive default.
func schemaFor(dialect gccopt.Dialect) []string {
	key := "VARCHAR(255)"
	if dialect == gccopt.DialectMySQL {
		key = "VARCHAR(255) COLLATE utf8mb4_bin"
	}

	ddl := make([]string, len(schema))
	for i, stmt := range schema {
		ddl[i] = strings.ReplaceAll(stmt, "{key}", key)
	}

	return ddl
}

// insertSQL builds an INSERT statement with the dialect's bind markers.
func insertSQL(dialect gccopt.Dialect, table string, columns ...string) string {
	markers := make([]string, len(columns))
	for i := range columns {
		markers[i] = dialect.Placeholder(i + 1)
	}

	return "INSERT INTO " + table + " (" + strings.Join(columns, ", ") + ") VALUES (" + strings.Join(markers, ", ") + ")"
}
