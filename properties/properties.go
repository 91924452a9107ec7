// Package properties holds the ordered key/payload map decoded from a
// property-list line and the grammar that produces it.
package properties

import (
	"iter"
	"strings"
)

// Property is one key with an optional parenthesized payload.
type Property struct {
	Key        string
	Payload    string
	HasPayload bool
}

// String reproduces the source form: key or key(payload).
func (p Property) String() string {
	if !p.HasPayload {
		return p.Key
	}

	return p.Key + "(" + p.Payload + ")"
}

// Map is an ordered mapping from property key to Property. Keys keep the
// position of their first declaration; a re-declaration overwrites the value.
type Map struct {
	order   []string
	entries map[string]Property
}

// NewMap creates an empty Map
func NewMap() *Map {
	return &Map{entries: make(map[string]Property)}
}

// Set stores p under p.Key.
func (m *Map) Set(p Property) {
	if _, exists := m.entries[p.Key]; !exists {
		m.order = append(m.order, p.Key)
	}

	m.entries[p.Key] = p
}

// Lookup returns the property stored under key.
func (m *Map) Lookup(key string) (Property, bool) {
	if m == nil {
		return Property{}, false
	}

	p, ok := m.entries[key]

	return p, ok
}

// Has reports whether key was declared, with or without payload.
func (m *Map) Has(key string) bool {
	_, ok := m.Lookup(key)
	return ok
}

// Payload returns the payload of key. ok is false when the key is absent or
// was declared as a bare flag.
func (m *Map) Payload(key string) (payload string, ok bool) {
	p, found := m.Lookup(key)
	if !found || !p.HasPayload {
		return "", false
	}

	return p.Payload, true
}

// Len returns the number of distinct keys.
func (m *Map) Len() int {
	if m == nil {
		return 0
	}

	return len(m.order)
}

// Keys returns the keys in declaration order.
func (m *Map) Keys() []string {
	if m == nil {
		return nil
	}

	return append([]string(nil), m.order...)
}

// All iterates the properties in declaration order.
func (m *Map) All() iter.Seq[Property] {
	return func(yield func(Property) bool) {
		if m == nil {
			return
		}

		for _, key := range m.order {
			if !yield(m.entries[key]) {
				return
			}
		}
	}
}

// String joins the properties back into a single space-separated line.
func (m *Map) String() string {
	parts := make([]string, 0, m.Len())
	for p := range m.All() {
		parts = append(parts, p.String())
	}

	return strings.Join(parts, " ")
}
