package model

import (
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/shibukawa/gccopt"
	"github.com/shibukawa/gccopt/properties"
)

func buildModel(t *testing.T, defs ...[2]string) *Model {
	t.Helper()

	m := New()
	for _, def := range defs {
		m.AddOption(newOption(t, def[0], def[1]))
	}

	return m
}

func TestConsolidate_EnablesEdge(t *testing.T) {
	m := buildModel(t,
		[2]string{"bar", "Common EnabledBy(foo)"},
		[2]string{"foo", "Common"},
	)
	assert.NoError(t, m.Consolidate())

	foo, err := m.Option("foo")
	assert.NoError(t, err)
	assert.Equal(t, []string{"bar"}, foo.Enables)

	bar, _ := m.Option("bar")
	assert.Equal(t, []string{"foo"}, m.EnablementClosure(bar))
}

func TestConsolidate_EnablesHoldsEachNameOnce(t *testing.T) {
	m := buildModel(t,
		[2]string{"Wall", "Common Warning"},
		[2]string{"Wparentheses", "Common Warning EnabledBy(Wall) LangEnabledBy(C ObjC,Wall)"},
	)
	assert.NoError(t, m.Consolidate())

	wall, _ := m.Option("Wall")
	assert.Equal(t, []string{"Wparentheses"}, wall.Enables)

	wparentheses, _ := m.Option("Wparentheses")
	conditions, ok := wparentheses.EnabledBy()
	assert.True(t, ok)
	assert.Equal(t, []string{"Wall", "Wall"}, conditions)
}

func TestConsolidate_Alias(t *testing.T) {
	m := buildModel(t,
		[2]string{"foo", "Common Var(x)"},
		[2]string{"baz", "Common Alias(foo)"},
	)
	assert.NoError(t, m.Consolidate())

	foo, _ := m.Option("foo")
	assert.Equal(t, []string{"baz"}, foo.Aliases)

	baz, err := m.Option("baz")
	assert.NoError(t, err)
	assert.True(t, baz.IsAlias())
}

func TestConsolidate_AliasNeverDerivesEdges(t *testing.T) {
	m := buildModel(t,
		[2]string{"Wall", "Common Warning"},
		[2]string{"Wfoo", "Common Warning"},
		[2]string{"Wfoo-alias", "Common Alias(Wfoo) EnabledBy(Wall)"},
	)
	assert.NoError(t, m.Consolidate())

	wall, _ := m.Option("Wall")
	assert.Equal(t, 0, len(wall.Enables))
}

func TestConsolidate_UnknownAliasTarget(t *testing.T) {
	m := buildModel(t, [2]string{"baz", "Common Alias(missing)"})

	err := m.Consolidate()
	assert.IsError(t, err, gccopt.ErrUnknownAliasTarget)
	assert.IsError(t, err, gccopt.ErrReferential)
	assert.Contains(t, err.Error(), "missing")
	assert.Contains(t, err.Error(), "baz")
	assert.False(t, m.Consolidated())
}

func TestConsolidate_CompoundConditionsHaveNoEdge(t *testing.T) {
	m := buildModel(t,
		[2]string{"Wall", "Common Warning"},
		[2]string{"Wextra", "Common Warning"},
		[2]string{"Wboth", "Common Warning EnabledBy(Wall && Wextra)"},
		[2]string{"Weither", "Common Warning EnabledBy(Wall || Wextra)"},
	)
	assert.NoError(t, m.Consolidate())

	for _, name := range []string{"Wall", "Wextra"} {
		o, _ := m.Option(name)
		assert.Equal(t, 0, len(o.Enables), "%s", name)
	}

	both, _ := m.Option("Wboth")
	assert.Equal(t, []string{"Wall && Wextra"}, m.EnablementClosure(both))
}

func TestConsolidate_DanglingCondition(t *testing.T) {
	m := buildModel(t, [2]string{"Wfoo", "C LangEnabledBy(C,Wall)"})
	assert.NoError(t, m.Consolidate())
	assert.Equal(t, []DanglingRef{{Option: "Wfoo", Condition: "Wall"}}, m.Dangling())
}

func TestConsolidate_RunsOnce(t *testing.T) {
	m := buildModel(t,
		[2]string{"foo", "Common"},
		[2]string{"bar", "Common EnabledBy(foo) LangEnabledBy(C,foo)"},
	)
	assert.NoError(t, m.Consolidate())
	assert.NoError(t, m.Consolidate())

	foo, _ := m.Option("foo")
	assert.Equal(t, []string{"bar"}, foo.Enables)
}

func TestEnablementClosure_Transitive(t *testing.T) {
	m := buildModel(t,
		[2]string{"Wall", "Common Warning"},
		[2]string{"Wformat", "Common Warning LangEnabledBy(C,Wall)"},
		[2]string{"Wformat-security", "Common Warning EnabledBy(Wformat)"},
		[2]string{"Wformat-y2k", "Common Warning EnabledBy(Wformat-security) LangEnabledBy(C,Wextra && Wformat)"},
	)
	assert.NoError(t, m.Consolidate())

	o, _ := m.Option("Wformat-y2k")
	closure := m.EnablementClosure(o)
	assert.Equal(t, []string{"Wformat-security", "Wformat", "Wall", "Wextra && Wformat"}, closure)
	assert.Equal(t, closure, m.EnablementClosure(o))
	assert.True(t, m.IsEnabledByAny(o, "Wall", "Wextra"))
	assert.False(t, m.IsEnabledByAny(o, "Wextra"))
}

func TestEnablementClosure_CycleTerminates(t *testing.T) {
	m := buildModel(t,
		[2]string{"Wa", "Common EnabledBy(Wb)"},
		[2]string{"Wb", "Common EnabledBy(Wa)"},
	)
	assert.NoError(t, m.Consolidate())

	a, _ := m.Option("Wa")
	assert.Equal(t, []string{"Wb", "Wa"}, m.EnablementClosure(a))
}

func TestModel_DuplicateOptionsFirstWins(t *testing.T) {
	m := New()
	first := newOption(t, "Wfoo", "Common Var(a)")
	first.AppendHelp("first")

	second := newOption(t, "Wfoo", "C Var(b)")
	second.Position.Line = 10

	assert.True(t, m.AddOption(first))
	assert.False(t, m.AddOption(second))

	o, _ := m.Option("Wfoo")
	assert.Equal(t, "Common Var(a)", o.RawProperties)
	assert.Equal(t, []Duplicate{{Name: "Wfoo", Position: Position{File: "test.opt", Line: 10}}}, m.Duplicates())
	assert.Equal(t, 1, len(m.Options()))
}

func TestModel_Lookups(t *testing.T) {
	m := New()
	m.AddLanguage("C")
	m.AddLanguage("Fortran")
	assert.Equal(t, []string{"C", "Fortran"}, m.Languages())

	_, err := m.Option("nope")
	assert.IsError(t, err, gccopt.ErrOptionNotFound)
	assert.IsError(t, err, gccopt.ErrNotFound)

	_, err = m.Enum("nope")
	assert.IsError(t, err, gccopt.ErrEnumNotFound)

	e, err := NewEnum(properties.MustParse("Name(diagnostic_color_rule) Type(int)"), Position{})
	assert.NoError(t, err)
	m.AddEnum(e)
	e.AddValue("never", "DIAGNOSTICS_COLOR_NO")
	e.AddValue("always", "DIAGNOSTICS_COLOR_YES")

	got, err := m.Enum("diagnostic_color_rule")
	assert.NoError(t, err)
	assert.Equal(t, "int", got.Type)
	assert.Equal(t, []string{"never", "always"}, got.Strings())
	assert.Equal(t, "DIAGNOSTICS_COLOR_YES", got.Values["always"])
}

func TestNewEnum_MissingProperties(t *testing.T) {
	_, err := NewEnum(properties.MustParse("Type(int)"), Position{})
	assert.IsError(t, err, gccopt.ErrMissingProperty)

	_, err = NewEnum(properties.MustParse("Name(x)"), Position{})
	assert.IsError(t, err, gccopt.ErrMissingProperty)
}

func TestModel_OptionNamesSorted(t *testing.T) {
	m := buildModel(t,
		[2]string{"Wextra", "Common"},
		[2]string{"Wall", "Common"},
	)
	assert.Equal(t, []string{"Wall", "Wextra"}, m.OptionNames())
	assert.Equal(t, "Wextra", m.Options()[0].Name)
}
