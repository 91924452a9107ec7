package query

import (
	"slices"

	"github.com/shibukawa/gccopt/model"
)

// UnreportedWarnings returns the canonical warning options that none of
// umbrellas enables, directly or transitively, and that are not on by
// default. The umbrellas themselves count as covered. The result is sorted
// by name.
func UnreportedWarnings(m *model.Model, umbrellas []string) []*model.Option {
	var result []*model.Option

	for _, o := range All(m) {
		if !o.IsWarning() || o.IsAlias() || o.IsByDefault() {
			continue
		}

		if slices.Contains(umbrellas, o.Name) || m.IsEnabledByAny(o, umbrellas...) {
			continue
		}

		result = append(result, o)
	}

	return result
}

// Summary counts the records of a model.
type Summary struct {
	Languages  int `json:"languages" yaml:"languages"`
	Enums      int `json:"enums" yaml:"enums"`
	Options    int `json:"options" yaml:"options"`
	Warnings   int `json:"warnings" yaml:"warnings"`
	Aliases    int `json:"aliases" yaml:"aliases"`
	DefaultOn  int `json:"default_on" yaml:"default_on"`
	Duplicates int `json:"duplicates" yaml:"duplicates"`
	Dangling   int `json:"dangling" yaml:"dangling"`
}

// Summarize counts the records of m.
func Summarize(m *model.Model) Summary {
	s := Summary{
		Languages:  len(m.Languages()),
		Enums:      len(m.Enums()),
		Duplicates: len(m.Duplicates()),
		Dangling:   len(m.Dangling()),
	}

	for _, o := range m.Options() {
		s.Options++

		if o.IsWarning() {
			s.Warnings++
		}

		if o.IsAlias() {
			s.Aliases++
		}

		if o.IsByDefault() {
			s.DefaultOn++
		}
	}

	return s
}
