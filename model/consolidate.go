package model

import (
	"fmt"
	"slices"
	"strings"

	"github.com/shibukawa/gccopt"
)

// Consolidate folds aliases into their targets and derives enables edges from
// enabling conditions. It runs once; later calls are no-ops.
//
// An alias naming an unknown option aborts with ErrUnknownAliasTarget. A
// non-compound condition naming an unknown option only produces a DanglingRef.
func (m *Model) Consolidate() error {
	if m.consolidated {
		return nil
	}

	for _, name := range m.optionOrder {
		o := m.options[name]

		target, ok := o.AliasTarget()
		if !ok {
			continue
		}

		t, exists := m.options[target]
		if !exists {
			return fmt.Errorf("%w: '%s' named by Alias of option '%s' at %s", gccopt.ErrUnknownAliasTarget, target, o.Name, o.Position)
		}

		t.Aliases = append(t.Aliases, o.Name)
	}

	for _, name := range m.optionOrder {
		o := m.options[name]
		if o.IsAlias() {
			continue
		}

		conditions, _ := o.EnabledBy()
		for _, cond := range conditions {
			if IsCompound(cond) {
				continue
			}

			enabler, exists := m.options[strings.TrimSpace(cond)]
			if !exists {
				m.dangling = append(m.dangling, DanglingRef{Option: o.Name, Condition: cond})
				continue
			}

			if !slices.Contains(enabler.Enables, o.Name) {
				enabler.Enables = append(enabler.Enables, o.Name)
			}
		}
	}

	m.consolidated = true

	return nil
}
