package model

import (
	"slices"
	"strings"
)

// EnablementClosure returns every condition reachable by following enabling
// conditions backwards from o, in first-visit order. Compound conditions are
// returned as opaque entries and not expanded. Each condition is expanded at
// most once, so cyclic definitions terminate.
func (m *Model) EnablementClosure(o *Option) []string {
	var result []string

	m.collectEnablers(o, make(map[string]bool), &result)

	return result
}

func (m *Model) collectEnablers(o *Option, visited map[string]bool, result *[]string) {
	conditions, _ := o.EnabledBy()

	for _, cond := range conditions {
		if visited[cond] {
			continue
		}

		visited[cond] = true
		*result = append(*result, cond)

		if IsCompound(cond) {
			continue
		}

		if next, ok := m.options[strings.TrimSpace(cond)]; ok {
			m.collectEnablers(next, visited, result)
		}
	}
}

// IsEnabledByAny reports whether any of umbrellas appears in the enablement
// closure of o.
func (m *Model) IsEnabledByAny(o *Option, umbrellas ...string) bool {
	for _, cond := range m.EnablementClosure(o) {
		if slices.Contains(umbrellas, strings.TrimSpace(cond)) {
			return true
		}
	}

	return false
}
