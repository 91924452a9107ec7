// Package model holds the records decoded from option definition files and
// the cross references built between them: aliases, enablement edges and
// enablement closures.
package model

import (
	"fmt"
	"slices"

	"github.com/shibukawa/gccopt"
)

// Duplicate is an option definition that was suppressed because an earlier
// definition with the same name already existed.
type Duplicate struct {
	Name     string
	Position Position
}

// DanglingRef is a non-compound enabling condition naming an option that is
// not part of the model. No enables edge is created for it.
type DanglingRef struct {
	Option    string
	Condition string
}

// Model owns every language, enum and option decoded from one or more files.
type Model struct {
	languages []string

	enums     map[string]*Enum
	enumOrder []string

	options     map[string]*Option
	optionOrder []string

	duplicates   []Duplicate
	dangling     []DanglingRef
	consolidated bool
}

// New creates an empty Model
func New() *Model {
	return &Model{
		enums:   make(map[string]*Enum),
		options: make(map[string]*Option),
	}
}

// AddLanguage appends a language name in declaration order.
func (m *Model) AddLanguage(name string) {
	m.languages = append(m.languages, name)
}

// Languages returns the declared languages in declaration order.
func (m *Model) Languages() []string {
	return slices.Clone(m.languages)
}

// AddEnum registers e under its name, replacing an earlier enum of the same name.
func (m *Model) AddEnum(e *Enum) {
	if _, exists := m.enums[e.Name]; !exists {
		m.enumOrder = append(m.enumOrder, e.Name)
	}

	m.enums[e.Name] = e
}

// Enum looks up an enum by name.
func (m *Model) Enum(name string) (*Enum, error) {
	e, ok := m.enums[name]
	if !ok {
		return nil, fmt.Errorf("%w: '%s'", gccopt.ErrEnumNotFound, name)
	}

	return e, nil
}

// Enums returns every enum in declaration order.
func (m *Model) Enums() []*Enum {
	result := make([]*Enum, 0, len(m.enumOrder))
	for _, name := range m.enumOrder {
		result = append(result, m.enums[name])
	}

	return result
}

// AddOption registers o unless an option with the same name exists. The first
// definition wins; AddOption returns false for a suppressed duplicate and
// records it in Duplicates.
func (m *Model) AddOption(o *Option) bool {
	if _, exists := m.options[o.Name]; exists {
		m.duplicates = append(m.duplicates, Duplicate{Name: o.Name, Position: o.Position})
		return false
	}

	m.options[o.Name] = o
	m.optionOrder = append(m.optionOrder, o.Name)

	return true
}

// HasOption reports whether name is registered.
func (m *Model) HasOption(name string) bool {
	_, ok := m.options[name]
	return ok
}

// Option looks up an option by name.
func (m *Model) Option(name string) (*Option, error) {
	o, ok := m.options[name]
	if !ok {
		return nil, fmt.Errorf("%w: '%s'", gccopt.ErrOptionNotFound, name)
	}

	return o, nil
}

// Options returns every option in declaration order.
func (m *Model) Options() []*Option {
	result := make([]*Option, 0, len(m.optionOrder))
	for _, name := range m.optionOrder {
		result = append(result, m.options[name])
	}

	return result
}

// OptionNames returns the option names sorted lexically.
func (m *Model) OptionNames() []string {
	names := slices.Clone(m.optionOrder)
	slices.Sort(names)

	return names
}

// Duplicates returns the suppressed duplicate definitions in encounter order.
func (m *Model) Duplicates() []Duplicate {
	return slices.Clone(m.duplicates)
}

// Dangling returns the enabling conditions that name unknown options.
func (m *Model) Dangling() []DanglingRef {
	return slices.Clone(m.dangling)
}

// Consolidated reports whether Consolidate has completed.
func (m *Model) Consolidated() bool {
	return m.consolidated
}
