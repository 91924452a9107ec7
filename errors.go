package gccopt

import (
	"errors"
	"fmt"
)

// Error kinds. Every specific error below wraps exactly one of them, so
// callers can classify a failure with errors.Is.
var (
	// ErrFormat indicates a line that cannot be decomposed into records or properties.
	ErrFormat = errors.New("format error")
	// ErrReferential indicates a record that names an entity which was never declared.
	ErrReferential = errors.New("referential error")
	// ErrNotFound indicates a lookup or query that matched nothing.
	ErrNotFound = errors.New("not found")
)

var (
	// Property list errors

	// ErrEmptyKey is returned when a parenthesized payload has no key in front of it.
	ErrEmptyKey = fmt.Errorf("%w: property payload without key", ErrFormat)
	// ErrUnterminatedPayload indicates an opening parenthesis without its closing one.
	ErrUnterminatedPayload = fmt.Errorf("%w: unterminated property payload", ErrFormat)

	// Record errors

	// ErrMissingProperty indicates a record header lacking a mandatory property.
	ErrMissingProperty = fmt.Errorf("%w: missing required property", ErrFormat)
	// ErrDuplicateEnumHeader indicates a second header line inside one Enum block.
	ErrDuplicateEnumHeader = fmt.Errorf("%w: more than one header line in Enum record", ErrFormat)
	// ErrInvalidLangEnabledBy indicates a LangEnabledBy payload without a condition field.
	ErrInvalidLangEnabledBy = fmt.Errorf("%w: LangEnabledBy requires languages and a condition", ErrFormat)

	// Referential errors

	// ErrUnknownEnum indicates an EnumValue record referencing an undeclared enum.
	ErrUnknownEnum = fmt.Errorf("%w: unknown enum", ErrReferential)
	// ErrUnknownAliasTarget indicates an Alias property naming an undeclared option.
	ErrUnknownAliasTarget = fmt.Errorf("%w: unknown alias target", ErrReferential)

	// Lookup errors

	// ErrOptionNotFound indicates an option lookup by name failed.
	ErrOptionNotFound = fmt.Errorf("%w: option", ErrNotFound)
	// ErrEnumNotFound indicates an enum lookup by name failed.
	ErrEnumNotFound = fmt.Errorf("%w: enum", ErrNotFound)
	// ErrNoMatch indicates a query name or pattern matched no option.
	ErrNoMatch = fmt.Errorf("%w: no option matches", ErrNotFound)

	// Query and output errors

	// ErrInvalidFilter indicates a filter expression that does not compile to a boolean.
	ErrInvalidFilter = errors.New("invalid filter expression")
	// ErrUnsupportedFormat indicates an unknown output format name.
	ErrUnsupportedFormat = errors.New("unsupported output format")
	// ErrUnsupportedDriver indicates a database driver without a known dialect.
	ErrUnsupportedDriver = errors.New("unsupported database driver")

	// ErrConfigValidation is returned when configuration validation fails
	ErrConfigValidation = errors.New("configuration validation failed")
)
