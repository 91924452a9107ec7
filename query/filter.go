package query

import (
	"fmt"

	"github.com/google/cel-go/cel"
	"github.com/shibukawa/gccopt"
	"github.com/shibukawa/gccopt/model"
)

// Filter is a compiled CEL predicate over option attributes, for example
//
//	warning && !default_on && "Wall" in closure
//
// Available variables: name, help, raw, alias_of (string); warning,
// default_on, alias (bool); enabled_by, enables, aliases, langs, closure
// (list of string); properties (map of string to string, flags map to "").
type Filter struct {
	source  string
	program cel.Program
}

var filterEnv *cel.Env

func init() {
	env, err := cel.NewEnv(
		cel.Variable("name", cel.StringType),
		cel.Variable("help", cel.StringType),
		cel.Variable("raw", cel.StringType),
		cel.Variable("alias_of", cel.StringType),
		cel.Variable("warning", cel.BoolType),
		cel.Variable("default_on", cel.BoolType),
		cel.Variable("alias", cel.BoolType),
		cel.Variable("enabled_by", cel.ListType(cel.StringType)),
		cel.Variable("enables", cel.ListType(cel.StringType)),
		cel.Variable("aliases", cel.ListType(cel.StringType)),
		cel.Variable("langs", cel.ListType(cel.StringType)),
		cel.Variable("closure", cel.ListType(cel.StringType)),
		cel.Variable("properties", cel.MapType(cel.StringType, cel.StringType)),
	)
	if err != nil {
		panic(fmt.Sprintf("query: failed to create CEL environment: %v", err))
	}

	filterEnv = env
}

// NewFilter compiles expression. The expression must evaluate to a bool.
func NewFilter(expression string) (*Filter, error) {
	ast, issues := filterEnv.Compile(expression)
	if issues != nil && issues.Err() != nil {
		return nil, fmt.Errorf("%w '%s': %w", gccopt.ErrInvalidFilter, expression, issues.Err())
	}

	if t := ast.OutputType(); t != nil && t.String() != "bool" && t.String() != "dyn" {
		return nil, fmt.Errorf("%w '%s': result type is %s, not bool", gccopt.ErrInvalidFilter, expression, t)
	}

	program, err := filterEnv.Program(ast)
	if err != nil {
		return nil, fmt.Errorf("%w '%s': %w", gccopt.ErrInvalidFilter, expression, err)
	}

	return &Filter{source: expression, program: program}, nil
}

// String returns the source expression.
func (f *Filter) String() string {
	return f.source
}

// Match evaluates the filter for o.
func (f *Filter) Match(m *model.Model, o *model.Option) (bool, error) {
	result, _, err := f.program.Eval(activation(m, o))
	if err != nil {
		return false, fmt.Errorf("failed to evaluate filter '%s' for option '%s': %w", f.source, o.Name, err)
	}

	matched, ok := result.Value().(bool)
	if !ok {
		return false, fmt.Errorf("%w '%s': option '%s' produced %v", gccopt.ErrInvalidFilter, f.source, o.Name, result.Value())
	}

	return matched, nil
}

// Apply keeps the options matching the filter. A nil filter keeps everything.
func (f *Filter) Apply(m *model.Model, options []*model.Option) ([]*model.Option, error) {
	if f == nil {
		return options, nil
	}

	var result []*model.Option

	for _, o := range options {
		ok, err := f.Match(m, o)
		if err != nil {
			return nil, err
		}

		if ok {
			result = append(result, o)
		}
	}

	return result, nil
}

func activation(m *model.Model, o *model.Option) map[string]any {
	aliasOf, isAlias := o.AliasTarget()
	enabledBy, _ := o.EnabledBy()

	props := make(map[string]string, o.Properties.Len())
	for p := range o.Properties.All() {
		props[p.Key] = p.Payload
	}

	return map[string]any{
		"name":       o.Name,
		"help":       o.Help(),
		"raw":        o.RawProperties,
		"alias_of":   aliasOf,
		"warning":    o.IsWarning(),
		"default_on": o.IsByDefault(),
		"alias":      isAlias,
		"enabled_by": nonNil(enabledBy),
		"enables":    nonNil(o.Enables),
		"aliases":    nonNil(o.Aliases),
		"langs":      nonNil(o.Langs),
		"closure":    nonNil(m.EnablementClosure(o)),
		"properties": props,
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}

	return s
}
