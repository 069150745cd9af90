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
	"sync"
)

// InputFieldConfig provides the definition of a field when defining an InputObject.
type InputFieldConfig struct {
	// Description of the defining field
	Description string

	// Type of value given to the field; must be an Input Type (checked by ValidateSchema).
	Type Type

	// DefaultValue specifies the value to be assigned to the field when no input is provided. Use
	// NilArgumentDefaultValue for a "null" default.
	DefaultValue interface{}

	// Resolver must never be set. It exists so that a field definition mistakenly carried over
	// from an output type is caught instead of silently dropped.
	Resolver FieldResolver
}

// InputFields maps field name to its definition when configuring an InputObject.
type InputFields map[string]InputFieldConfig

// InputFieldsThunk returns an InputFields on demand, permitting recursive input type definitions.
// A thunk is invoked at most once and its result is memoized.
type InputFieldsThunk func() InputFields

// InputField defines a field in an InputObject. It is much simpler than Field because it doesn't
// resolve a value nor can it have arguments.
type InputField struct {
	name         string
	description  string
	ttype        Type
	defaultValue interface{}
}

// Name of the field
func (f *InputField) Name() string {
	return f.name
}

// Description of the field
func (f *InputField) Description() string {
	return f.description
}

// Type of value given to the field
func (f *InputField) Type() Type {
	return f.ttype
}

// HasDefaultValue returns true if the input field has a default value.
func (f *InputField) HasDefaultValue() bool {
	return f.defaultValue != nil
}

// DefaultValue specifies the value to be assigned to the field when no input is provided.
func (f *InputField) DefaultValue() interface{} {
	if _, ok := f.defaultValue.(argumentNilValueType); ok {
		// We have a default value which is "null".
		return nil
	}
	return f.defaultValue
}

// IsRequiredInputField returns true if a value must be provided for the field.
func IsRequiredInputField(f *InputField) bool {
	return IsNonNullType(f.Type()) && !f.HasDefaultValue()
}

// InputFieldList is an ordered collection of input fields, ordered by name.
type InputFieldList []*InputField

// Lookup finds the input field with the given name or returns nil if there's no such one.
func (l InputFieldList) Lookup(name string) *InputField {
	for _, field := range l {
		if field.name == name {
			return field
		}
	}
	return nil
}

// InputObjectConfig provides the specification to define an InputObject type.
type InputObjectConfig struct {
	// Name of the defining InputObject
	Name string

	// Description for the InputObject type
	Description string

	// Fields of the InputObject; must be given an InputFields or an InputFieldsThunk.
	Fields interface{}
}

// InputObject Type Definition
//
// An input object defines a structured collection of fields which may be supplied to a field
// argument. It is essentially an Object type but with some constraints on the fields so it can be
// used as an input argument: fields cannot define arguments, resolvers, or reference interfaces
// and unions.
//
// Reference: https://graphql.github.io/graphql-spec/June2018/#sec-Input-Objects
type InputObject struct {
	name        string
	description string
	fields      inputFieldsResolver
}

var (
	_ Type                = (*InputObject)(nil)
	_ TypeWithName        = (*InputObject)(nil)
	_ TypeWithDescription = (*InputObject)(nil)
)

// NewInputObject defines an InputObject type from an InputObjectConfig.
func NewInputObject(config *InputObjectConfig) (*InputObject, error) {
	if len(config.Name) == 0 {
		return nil, NewConfigError("Must provide name for InputObject.")
	}
	if err := checkValidName(config.Name); err != nil {
		return nil, err
	}

	o := &InputObject{
		name:        config.Name,
		description: config.Description,
	}
	o.fields.typeName = config.Name
	o.fields.config = config.Fields

	if _, isThunk := config.Fields.(InputFieldsThunk); !isThunk {
		if _, err := o.fields.resolve(); err != nil {
			return nil, err
		}
	}

	return o, nil
}

// MustNewInputObject is a convenience function equivalent to NewInputObject but panics on failure
// instead of returning an error.
func MustNewInputObject(config *InputObjectConfig) *InputObject {
	o, err := NewInputObject(config)
	if err != nil {
		panic(err)
	}
	return o
}

// graphqlType implements Type.
func (*InputObject) graphqlType() {}

// String implements fmt.Stringer.
func (o *InputObject) String() string {
	return o.name
}

// Name implements TypeWithName.
func (o *InputObject) Name() string {
	return o.name
}

// Description implements TypeWithDescription.
func (o *InputObject) Description() string {
	return o.description
}

// Fields returns the ordered set of fields in the input object. It forces a pending fields thunk;
// a shape error in the thunk result is surfaced by NewSchema.
func (o *InputObject) Fields() InputFieldList {
	fields, _ := o.fields.resolve()
	return fields
}

// resolveFields exposes the resolution error to the schema traversal.
func (o *InputObject) resolveFields() (InputFieldList, error) {
	return o.fields.resolve()
}

// inputFieldsResolver is the input-type sibling of fieldsResolver.
type inputFieldsResolver struct {
	once sync.Once

	typeName string
	config   interface{}

	fields InputFieldList
	err    error
}

func (r *inputFieldsResolver) resolve() (InputFieldList, error) {
	r.once.Do(func() {
		var fieldConfigMap InputFields
		switch config := r.config.(type) {
		case InputFields:
			fieldConfigMap = config
		case InputFieldsThunk:
			if config != nil {
				fieldConfigMap = config()
			}
		case nil:
		default:
			r.err = fieldsShapeError(r.typeName)
			return
		}

		if len(fieldConfigMap) == 0 {
			r.err = fieldsShapeError(r.typeName)
			return
		}

		r.fields, r.err = buildInputFieldList(r.typeName, fieldConfigMap)
		r.config = nil
	})
	return r.fields, r.err
}

func buildInputFieldList(typeName string, fieldConfigMap InputFields) (InputFieldList, error) {
	names := make([]string, 0, len(fieldConfigMap))
	for name := range fieldConfigMap {
		names = append(names, name)
	}
	sort.Strings(names)

	fields := make(InputFieldList, 0, len(names))
	for _, name := range names {
		if err := checkValidName(name); err != nil {
			return nil, err
		}

		fieldConfig := fieldConfigMap[name]
		if fieldConfig.Resolver != nil {
			return nil, NewConfigError(fmt.Sprintf(
				"%s.%s field type has a resolve property, but Input Types cannot define "+
					"resolvers.", typeName, name))
		}

		fields = append(fields, &InputField{
			name:         name,
			description:  fieldConfig.Description,
			ttype:        fieldConfig.Type,
			defaultValue: fieldConfig.DefaultValue,
		})
	}

	return fields, nil
}
