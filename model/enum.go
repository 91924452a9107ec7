package model

import (
	"fmt"
	"slices"

	"github.com/shibukawa/gccopt"
	"github.com/shibukawa/gccopt/properties"
)

// Enum is an Enum record together with the values registered by EnumValue records.
type Enum struct {
	Name       string
	Type       string
	Properties *properties.Map
	Position   Position
	Values     map[string]string

	order []string
}

// NewEnum creates an Enum from its decoded header. Name and Type are required.
func NewEnum(props *properties.Map, pos Position) (*Enum, error) {
	name, ok := props.Payload("Name")
	if !ok {
		return nil, fmt.Errorf("%w: Enum record needs Name(...)", gccopt.ErrMissingProperty)
	}

	typ, ok := props.Payload("Type")
	if !ok {
		return nil, fmt.Errorf("%w: Enum '%s' needs Type(...)", gccopt.ErrMissingProperty, name)
	}

	return &Enum{
		Name:       name,
		Type:       typ,
		Properties: props,
		Position:   pos,
		Values:     make(map[string]string),
	}, nil
}

// AddValue registers values[str] = value.
func (e *Enum) AddValue(str, value string) {
	if _, exists := e.Values[str]; !exists {
		e.order = append(e.order, str)
	}

	e.Values[str] = value
}

// Strings returns the value strings in registration order.
func (e *Enum) Strings() []string {
	return slices.Clone(e.order)
}
