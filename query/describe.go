package query

import (
	"strings"

	"github.com/shibukawa/gccopt/model"
)

// PropertyEntry is one property of an option in declaration order. Payload
// is nil for bare flags.
type PropertyEntry struct {
	Key     string  `json:"key" yaml:"key"`
	Payload *string `json:"payload,omitempty" yaml:"payload,omitempty"`
}

// Entry is the printable description of one option.
type Entry struct {
	Name       string          `json:"name" yaml:"name"`
	Warning    bool            `json:"warning" yaml:"warning"`
	DefaultOn  bool            `json:"default_on" yaml:"default_on"`
	AliasOf    string          `json:"alias_of,omitempty" yaml:"alias_of,omitempty"`
	Aliases    []string        `json:"aliases,omitempty" yaml:"aliases,omitempty"`
	EnabledBy  []string        `json:"enabled_by,omitempty" yaml:"enabled_by,omitempty"`
	Enables    []string        `json:"enables,omitempty" yaml:"enables,omitempty"`
	Closure    []string        `json:"closure,omitempty" yaml:"closure,omitempty"`
	Langs      []string        `json:"langs,omitempty" yaml:"langs,omitempty"`
	Help       string          `json:"help,omitempty" yaml:"help,omitempty"`
	Raw        string          `json:"raw" yaml:"raw"`
	Properties []PropertyEntry `json:"properties" yaml:"-"`
	Position   string          `json:"position,omitempty" yaml:"position,omitempty"`
}

// Describe builds the entries for options. Help lines are joined with a
// single space for display.
func Describe(m *model.Model, options []*model.Option) []Entry {
	entries := make([]Entry, 0, len(options))

	for _, o := range options {
		aliasOf, _ := o.AliasTarget()
		enabledBy, _ := o.EnabledBy()

		e := Entry{
			Name:      o.Name,
			Warning:   o.IsWarning(),
			DefaultOn: o.IsByDefault(),
			AliasOf:   aliasOf,
			Aliases:   o.Aliases,
			EnabledBy: trimAll(enabledBy),
			Enables:   o.Enables,
			Closure:   m.EnablementClosure(o),
			Langs:     o.Langs,
			Help:      strings.Join(o.HelpLines(), " "),
			Raw:       o.RawProperties,
		}

		if o.Position.File != "" {
			e.Position = o.Position.String()
		}

		for p := range o.Properties.All() {
			pe := PropertyEntry{Key: p.Key}
			if p.HasPayload {
				payload := p.Payload
				pe.Payload = &payload
			}

			e.Properties = append(e.Properties, pe)
		}

		entries = append(entries, e)
	}

	return entries
}

// EnumValue is one EnumValue record: the accepted string and the value it maps to.
type EnumValue struct {
	String string `json:"string" yaml:"string"`
	Value  string `json:"value" yaml:"value"`
}

// EnumEntry is the printable description of one enum.
type EnumEntry struct {
	Name     string      `json:"name" yaml:"name"`
	Type     string      `json:"type" yaml:"type"`
	Values   []EnumValue `json:"values" yaml:"values"`
	Position string      `json:"position,omitempty" yaml:"position,omitempty"`
}

// DescribeEnums builds the entries for every enum of m.
func DescribeEnums(m *model.Model) []EnumEntry {
	enums := m.Enums()
	entries := make([]EnumEntry, 0, len(enums))

	for _, e := range enums {
		entry := EnumEntry{Name: e.Name, Type: e.Type, Values: []EnumValue{}}
		for _, str := range e.Strings() {
			entry.Values = append(entry.Values, EnumValue{String: str, Value: e.Values[str]})
		}

		if e.Position.File != "" {
			entry.Position = e.Position.String()
		}

		entries = append(entries, entry)
	}

	return entries
}

func trimAll(s []string) []string {
	if s == nil {
		return nil
	}

	result := make([]string, len(s))
	for i, v := range s {
		result[i] = strings.TrimSpace(v)
	}

	return result
}
