/**
 * Copyright (c) 2019, The Selene Authors.
 *
 * Permission to use, copy, modify, and/or distribute this software for any
 * purpose with or without fee is hereby granted, provided that the above
 * copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES
 * WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF
 * MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR
 * ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES
 * WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN
 * ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF
 * OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package graphql

import (
	"fmt"
)

// SerializeFunc coerces the given value to be returned as the result of a field with the defining
// Scalar type.
type SerializeFunc func(value interface{}) (interface{}, error)

// ParseValueFunc coerces a scalar value supplied through input variables into an eligible Go
// value for the scalar.
type ParseValueFunc func(value interface{}) (interface{}, error)

// ParseLiteralFunc coerces a scalar literal appearing in a source document into an eligible Go
// value for the scalar. The literal arrives as the plain Go value produced by the (external)
// document parser.
type ParseLiteralFunc func(value interface{}) (interface{}, error)

// ScalarConfig provides the specification to define a Scalar type.
type ScalarConfig struct {
	// Name of the defining Scalar
	Name string

	// Description for the Scalar type
	Description string

	// Serialize coerces result values; required.
	Serialize SerializeFunc

	// ParseValue and ParseLiteral coerce input values. Provide both or neither; a scalar that can
	// parse variables but not literals (or the reverse) would behave inconsistently.
	ParseValue   ParseValueFunc
	ParseLiteral ParseLiteralFunc
}

// Scalar Type Definition
//
// The leaf values of any request and input values to arguments are Scalars (or Enums) and are
// defined with a name and a series of functions used to parse input and to ensure validity.
//
// Reference: https://graphql.github.io/graphql-spec/June2018/#sec-Scalars
type Scalar struct {
	name         string
	description  string
	serialize    SerializeFunc
	parseValue   ParseValueFunc
	parseLiteral ParseLiteralFunc
}

var (
	_ Type                = (*Scalar)(nil)
	_ LeafType            = (*Scalar)(nil)
	_ TypeWithName        = (*Scalar)(nil)
	_ TypeWithDescription = (*Scalar)(nil)
)

// NewScalar defines a Scalar type from a ScalarConfig.
func NewScalar(config *ScalarConfig) (*Scalar, error) {
	if len(config.Name) == 0 {
		return nil, NewConfigError("Must provide name for Scalar.")
	}
	if err := checkValidName(config.Name); err != nil {
		return nil, err
	}

	if config.Serialize == nil {
		return nil, NewConfigError(fmt.Sprintf(
			`%s must provide "serialize" as a function.`, config.Name))
	}

	if (config.ParseValue == nil) != (config.ParseLiteral == nil) {
		return nil, NewConfigError(fmt.Sprintf(
			`%s must provide both "parseValue" and "parseLiteral" functions.`, config.Name))
	}

	return &Scalar{
		name:         config.Name,
		description:  config.Description,
		serialize:    config.Serialize,
		parseValue:   config.ParseValue,
		parseLiteral: config.ParseLiteral,
	}, nil
}

// MustNewScalar is a convenience function equivalent to NewScalar but panics on failure instead
// of returning an error.
func MustNewScalar(config *ScalarConfig) *Scalar {
	s, err := NewScalar(config)
	if err != nil {
		panic(err)
	}
	return s
}

// graphqlType implements Type.
func (*Scalar) graphqlType() {}

// graphqlLeafType implements LeafType.
func (*Scalar) graphqlLeafType() {}

// String implements fmt.Stringer.
func (s *Scalar) String() string {
	return s.name
}

// Name implements TypeWithName.
func (s *Scalar) Name() string {
	return s.name
}

// Description implements TypeWithDescription.
func (s *Scalar) Description() string {
	return s.description
}

// Serialize coerces the given result value into a value presentable for this scalar.
func (s *Scalar) Serialize(value interface{}) (interface{}, error) {
	return s.serialize(value)
}

// ParseValue coerces a variable value into a value for this scalar. It returns the value
// unmodified if the scalar doesn't define input coercion.
func (s *Scalar) ParseValue(value interface{}) (interface{}, error) {
	if s.parseValue == nil {
		return value, nil
	}
	return s.parseValue(value)
}

// ParseLiteral coerces a literal value into a value for this scalar. It returns the value
// unmodified if the scalar doesn't define input coercion.
func (s *Scalar) ParseLiteral(value interface{}) (interface{}, error) {
	if s.parseLiteral == nil {
		return value, nil
	}
	return s.parseLiteral(value)
}
