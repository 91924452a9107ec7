package model

import (
	"fmt"
	"slices"
	"strings"

	"github.com/shibukawa/gccopt"
	"github.com/shibukawa/gccopt/properties"
)

// Position is the source location of a record header.
type Position struct {
	File string
	Line int
}

func (p Position) String() string {
	return fmt.Sprintf("%s:%d", p.File, p.Line)
}

// Option is one option definition record.
type Option struct {
	// Name is the option name with the leading '-' removed.
	Name string
	// Properties is the decoded property list of the definition line.
	Properties *properties.Map
	// RawProperties is the definition line as written. Some predicates
	// (IsByDefault) look at it instead of Properties.
	RawProperties string
	Position      Position

	// Langs lists the languages of a LangEnabledBy property.
	Langs []string
	// Aliases lists the options declaring this option as their Alias target.
	// It is filled by Model.Consolidate.
	Aliases []string
	// Enables lists the options this option enables through a non-compound
	// EnabledBy or LangEnabledBy condition. It is filled by Model.Consolidate.
	Enables []string

	helpLines []string
}

// NewOption creates an Option from its name and property line.
func NewOption(name, rawProperties string, props *properties.Map, pos Position) (*Option, error) {
	o := &Option{
		Name:          strings.TrimPrefix(name, "-"),
		Properties:    props,
		RawProperties: rawProperties,
		Position:      pos,
	}

	if payload, ok := props.Payload("LangEnabledBy"); ok {
		fields := strings.Split(payload, ",")
		if len(fields) < 2 {
			return nil, fmt.Errorf("%w: option '%s': LangEnabledBy(%s)", gccopt.ErrInvalidLangEnabledBy, o.Name, payload)
		}

		o.Langs = strings.Fields(fields[0])
	}

	return o, nil
}

// AppendHelp appends one help line verbatim.
func (o *Option) AppendHelp(line string) {
	o.helpLines = append(o.helpLines, line)
}

// Help returns the help lines concatenated without separators.
func (o *Option) Help() string {
	return strings.Join(o.helpLines, "")
}

// HelpLines returns the help text line by line.
func (o *Option) HelpLines() []string {
	return slices.Clone(o.helpLines)
}

// AliasTarget returns the first comma-separated field of the Alias property.
func (o *Option) AliasTarget() (string, bool) {
	payload, ok := o.Properties.Payload("Alias")
	if !ok {
		return "", false
	}

	target, _, _ := strings.Cut(payload, ",")

	return target, true
}

// IsAlias reports whether the option delegates to another option.
func (o *Option) IsAlias() bool {
	_, ok := o.AliasTarget()
	return ok
}

// IsWarning reports whether the option carries the Warning property.
func (o *Option) IsWarning() bool {
	return o.Properties.Has("Warning")
}

// IsByDefault approximates "enabled unless turned off": the raw property
// line has Init(1) and Var(...) but no Range. Numeric levels and other
// initializers are not evaluated.
func (o *Option) IsByDefault() bool {
	raw := o.RawProperties

	return strings.Contains(raw, "Init(1)") && strings.Contains(raw, "Var(") && !strings.Contains(raw, "Range")
}

// EnabledBy returns the enabling conditions from EnabledBy and LangEnabledBy,
// in that order. ok is false when the option has neither property.
func (o *Option) EnabledBy() (conditions []string, ok bool) {
	if cond, found := o.Properties.Payload("EnabledBy"); found {
		conditions = append(conditions, cond)
		ok = true
	}

	if payload, found := o.Properties.Payload("LangEnabledBy"); found {
		fields := strings.Split(payload, ",")
		if len(fields) >= 2 {
			conditions = append(conditions, strings.TrimPrefix(fields[1], " "))
		}

		ok = true
	}

	return conditions, ok
}

// IsValidForLang reports whether a LangEnabledBy relationship applies to lang.
// Options without LangEnabledBy are valid for every language.
func (o *Option) IsValidForLang(lang string) bool {
	return len(o.Langs) == 0 || slices.Contains(o.Langs, lang)
}

// AppliesTo reports whether the option is available for lang: it is Common,
// declares the language as a property, or lists it in LangEnabledBy.
func (o *Option) AppliesTo(lang string) bool {
	return o.Properties.Has("Common") || o.Properties.Has(lang) || slices.Contains(o.Langs, lang)
}

// IsCompound reports whether an enabling condition combines several options
// with && or ||. Compound conditions are kept as opaque strings.
func IsCompound(condition string) bool {
	return strings.Contains(condition, "&&") || strings.Contains(condition, "||")
}
