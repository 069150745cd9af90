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
	"sort"
)

// EnumValueConfig provides the definition of a value in an enum.
type EnumValueConfig struct {
	// Description of the enum value
	Description string

	// Value is the internal value to represent the enum value in the system. If omitted, the name
	// of the enum value will be used.
	Value interface{}

	// Deprecation is non-nil when the value is tagged as deprecated.
	Deprecation *Deprecation
}

// EnumValueConfigMap maps value names to their definitions when configuring an Enum. Entries are
// pointers so a misconfigured nil definition is representable and can be reported.
type EnumValueConfigMap map[string]*EnumValueConfig

// EnumValue provides the definition for a value in an enum.
type EnumValue struct {
	name        string
	description string
	value       interface{}
	deprecation *Deprecation
}

// Name of the enum value.
func (v *EnumValue) Name() string {
	return v.name
}

// Description of the enum value
func (v *EnumValue) Description() string {
	return v.description
}

// Value returns the internal value to be used when the enum value is read from input.
func (v *EnumValue) Value() interface{} {
	return v.value
}

// Deprecation is non-nil when the value is tagged as deprecated.
func (v *EnumValue) Deprecation() *Deprecation {
	return v.deprecation
}

// EnumValueList is an ordered collection of enum values, ordered by name.
type EnumValueList []*EnumValue

// Lookup finds the enum value with the given name or returns nil if there's no such one.
func (l EnumValueList) Lookup(name string) *EnumValue {
	for _, value := range l {
		if value.name == name {
			return value
		}
	}
	return nil
}

// EnumConfig provides the specification to define an Enum type.
type EnumConfig struct {
	// Name of the enum type
	Name string

	// Description for the enum type
	Description string

	// Values to be defined in the enum
	Values EnumValueConfigMap
}

// Enum Type Definition
//
// Some leaf values of requests and input values are Enums. The type system serializes Enum values
// as strings, however internally Enums can be represented by any kind of value, often integers.
//
// Reference: https://graphql.github.io/graphql-spec/June2018/#sec-Enums
type Enum struct {
	name        string
	description string
	values      EnumValueList
}

var (
	_ Type                = (*Enum)(nil)
	_ LeafType            = (*Enum)(nil)
	_ TypeWithName        = (*Enum)(nil)
	_ TypeWithDescription = (*Enum)(nil)
)

// NewEnum defines an Enum type from an EnumConfig.
func NewEnum(config *EnumConfig) (*Enum, error) {
	if len(config.Name) == 0 {
		return nil, NewConfigError("Must provide name for Enum.")
	}
	if err := checkValidName(config.Name); err != nil {
		return nil, err
	}

	values, err := buildEnumValues(config.Name, config.Values)
	if err != nil {
		return nil, err
	}

	return &Enum{
		name:        config.Name,
		description: config.Description,
		values:      values,
	}, nil
}

// MustNewEnum is a convenience function equivalent to NewEnum but panics on failure instead of
// returning an error.
func MustNewEnum(config *EnumConfig) *Enum {
	e, err := NewEnum(config)
	if err != nil {
		panic(err)
	}
	return e
}

func buildEnumValues(typeName string, valueConfigMap EnumValueConfigMap) (EnumValueList, error) {
	if len(valueConfigMap) == 0 {
		return nil, NewConfigError(fmt.Sprintf(
			"%s values must be an object with value names as keys.", typeName))
	}

	names := make([]string, 0, len(valueConfigMap))
	for name := range valueConfigMap {
		names = append(names, name)
	}
	sort.Strings(names)

	values := make(EnumValueList, 0, len(names))
	for _, name := range names {
		if err := checkValidName(name); err != nil {
			return nil, err
		}
		// The literal parser reserves these words; an enum value under such name could never be
		// referenced.
		if name == "true" || name == "false" || name == "null" {
			return nil, NewConfigError(fmt.Sprintf(
				`Name "%s" can not be used as an Enum value.`, name))
		}

		valueConfig := valueConfigMap[name]
		if valueConfig == nil {
			return nil, NewConfigError(fmt.Sprintf(
				`%s.%s must refer to an object with a "value" key representing an internal value `+
					"but got: %s.", typeName, name, Inspect(valueConfig)))
		}

		internalValue := valueConfig.Value
		if internalValue == nil {
			internalValue = name
		}

		values = append(values, &EnumValue{
			name:        name,
			description: valueConfig.Description,
			value:       internalValue,
			deprecation: normalizeDeprecation(valueConfig.Deprecation),
		})
	}

	return values, nil
}

// graphqlType implements Type.
func (*Enum) graphqlType() {}

// graphqlLeafType implements LeafType.
func (*Enum) graphqlLeafType() {}

// String implements fmt.Stringer.
func (e *Enum) String() string {
	return e.name
}

// Name implements TypeWithName.
func (e *Enum) Name() string {
	return e.name
}

// Description implements TypeWithDescription.
func (e *Enum) Description() string {
	return e.description
}

// Values returns all enum values defined in this Enum type, ordered by name.
func (e *Enum) Values() EnumValueList {
	return e.values
}
