// Package query answers lookups against a consolidated option model: name and
// pattern selection, attribute filters, the unreported-warnings report and
// the renderers used to print results.
package query

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shibukawa/gccopt"
	"github.com/shibukawa/gccopt/model"
)

// Match is the result of one name or pattern query. A query that matched
// nothing carries Err and never aborts its siblings.
type Match struct {
	Query   string
	Options []*model.Option
	Err     error
}

// Select resolves every query against m. A query is an option name, with or
// without the leading '-', or a regular expression matched against whole
// option names. Exact names take precedence over patterns.
func Select(m *model.Model, queries []string) []Match {
	matches := make([]Match, 0, len(queries))

	for _, q := range queries {
		matches = append(matches, selectOne(m, q))
	}

	return matches
}

func selectOne(m *model.Model, q string) Match {
	name := strings.TrimPrefix(q, "-")

	if o, err := m.Option(name); err == nil {
		return Match{Query: q, Options: []*model.Option{o}}
	}

	re, err := regexp.Compile("^(?:" + name + ")$")
	if err != nil {
		return Match{Query: q, Err: fmt.Errorf("%w: '%s' (invalid pattern: %v)", gccopt.ErrNoMatch, q, err)}
	}

	var options []*model.Option

	for _, candidate := range m.OptionNames() {
		if re.MatchString(candidate) {
			o, _ := m.Option(candidate)
			options = append(options, o)
		}
	}

	if len(options) == 0 {
		return Match{Query: q, Err: fmt.Errorf("%w: '%s'", gccopt.ErrNoMatch, q)}
	}

	return Match{Query: q, Options: options}
}

// All returns every option of m sorted by name.
func All(m *model.Model) []*model.Option {
	names := m.OptionNames()
	options := make([]*model.Option, 0, len(names))

	for _, name := range names {
		o, _ := m.Option(name)
		options = append(options, o)
	}

	return options
}

// ForLanguage keeps the options that apply to lang.
func ForLanguage(options []*model.Option, lang string) []*model.Option {
	var result []*model.Option

	for _, o := range options {
		if o.AppliesTo(lang) {
			result = append(result, o)
		}
	}

	return result
}
