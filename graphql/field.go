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
	"context"
	"fmt"
	"sort"
	"sync"
)

// FieldResolver resolves a field value during execution. The execution engine is an external
// collaborator; this core only records the resolver on the field definition.
type FieldResolver interface {
	Resolve(ctx context.Context, source interface{}) (interface{}, error)
}

// FieldResolverFunc is an adapter to allow the use of ordinary functions as FieldResolver.
type FieldResolverFunc func(ctx context.Context, source interface{}) (interface{}, error)

// Resolve calls f(ctx, source).
func (f FieldResolverFunc) Resolve(ctx context.Context, source interface{}) (interface{}, error) {
	return f(ctx, source)
}

// FieldResolverFunc implements FieldResolver.
var _ FieldResolver = FieldResolverFunc(nil)

// Fields maps field name to its definition when configuring an Object or an Interface.
type Fields map[string]FieldConfig

// FieldsThunk returns a Fields on demand. Configuring a type with a thunk instead of a Fields
// defers field resolution until the schema forces it, which permits mutually recursive type
// definitions. A thunk is invoked at most once and its result is memoized.
type FieldsThunk func() Fields

// FieldConfig provides the definition of a field when defining a type.
type FieldConfig struct {
	// Description of the defining field
	Description string

	// Type of value yielded by the field
	Type Type

	// Args is the argument configuration of the field.
	Args ArgumentConfigMap

	// Resolver resolves the field value during execution. Only Object fields may carry one.
	Resolver FieldResolver

	// Deprecation is non-nil when the field is tagged as deprecated.
	Deprecation *Deprecation
}

// Field represents a field in an Object or an Interface. It yields a value of a specific type.
type Field struct {
	name        string
	description string
	ttype       Type
	args        []Argument
	resolver    FieldResolver
	deprecation *Deprecation
}

// Name of the field
func (f *Field) Name() string {
	return f.name
}

// Description of the field
func (f *Field) Description() string {
	return f.description
}

// Type of value yielded by the field
func (f *Field) Type() Type {
	return f.ttype
}

// Args specifies the definitions of arguments being taken when querying this field.
func (f *Field) Args() []Argument {
	return f.args
}

// Resolver determines the result value for the field from the value resolved by parent Object.
func (f *Field) Resolver() FieldResolver {
	return f.resolver
}

// Deprecation is non-nil when the field is tagged as deprecated.
func (f *Field) Deprecation() *Deprecation {
	return f.deprecation
}

// FieldList is an ordered collection of fields. Fields are ordered by name so that every walk
// over a type produces diagnostics deterministically.
type FieldList []*Field

// Lookup finds the field with the given name or returns nil if there's no such one.
func (l FieldList) Lookup(name string) *Field {
	for _, field := range l {
		if field.name == name {
			return field
		}
	}
	return nil
}

// buildFieldList validates and normalizes a Fields configuration into a FieldList.
func buildFieldList(fieldConfigMap Fields) (FieldList, error) {
	names := make([]string, 0, len(fieldConfigMap))
	for name := range fieldConfigMap {
		names = append(names, name)
	}
	sort.Strings(names)

	fields := make(FieldList, 0, len(names))
	for _, name := range names {
		if err := checkValidName(name); err != nil {
			return nil, err
		}

		fieldConfig := fieldConfigMap[name]
		args, err := buildArguments(fieldConfig.Args)
		if err != nil {
			return nil, err
		}

		fields = append(fields, &Field{
			name:        name,
			description: fieldConfig.Description,
			ttype:       fieldConfig.Type,
			args:        args,
			resolver:    fieldConfig.Resolver,
			deprecation: normalizeDeprecation(fieldConfig.Deprecation),
		})
	}

	return fields, nil
}

// normalizeDeprecation ensures an active deprecation always carries a non-empty reason.
func normalizeDeprecation(deprecation *Deprecation) *Deprecation {
	if deprecation.Defined() && len(deprecation.Reason) == 0 {
		return &Deprecation{Reason: DefaultDeprecationReason}
	}
	return deprecation
}

// fieldsResolver normalizes the "map-or-thunk" fields configuration of an Object, an Interface or
// (through its input sibling) an InputObject. The config is resolved at most once, on first use,
// and the outcome is memoized; this is what allows a thunk to reference types that don't exist
// yet at configuration time.
type fieldsResolver struct {
	once sync.Once

	// typeName names the owning type in shape diagnostics.
	typeName string

	// config holds a Fields, a FieldsThunk or garbage. Cleared once resolved.
	config interface{}

	fields FieldList
	err    error
}

func (r *fieldsResolver) resolve() (FieldList, error) {
	r.once.Do(func() {
		var fieldConfigMap Fields
		switch config := r.config.(type) {
		case Fields:
			fieldConfigMap = config
		case FieldsThunk:
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

		r.fields, r.err = buildFieldList(fieldConfigMap)
		r.config = nil
	})
	return r.fields, r.err
}

func fieldsShapeError(typeName string) error {
	return NewConfigError(fmt.Sprintf(
		"%s fields must be an object with field names as keys or a function which returns such "+
			"an object.", typeName))
}

// ArgumentConfigMap maps argument name to its definition.
type ArgumentConfigMap map[string]ArgumentConfig

// An intentionally internal type for marking a "null" as default value for an argument
type argumentNilValueType int

// NilArgumentDefaultValue is a value that has a special meaning when it is given to the
// DefaultValue in ArgumentConfig. It sets the argument with default value set to "null". While
// setting DefaultValue to "nil" or not giving it a value means there's no default value. We need
// this trick because using only "nil" cannot tell whether it's an "undefined" or a "null"
// DefaultValue. The constant has an internal type, therefore there's no way to create one outside
// the package.
const NilArgumentDefaultValue argumentNilValueType = 0

// ArgumentConfig provides definition for defining an argument in a field.
type ArgumentConfig struct {
	// Description of the argument
	Description string

	// Type of the value that can be given to the argument
	Type Type

	// DefaultValue specifies the value to be assigned to the argument when no value is provided.
	DefaultValue interface{}
}

// buildArguments validates and normalizes an ArgumentConfigMap into an ordered argument list.
func buildArguments(argConfigMap ArgumentConfigMap) ([]Argument, error) {
	numArgs := len(argConfigMap)
	if numArgs == 0 {
		return nil, nil
	}

	names := make([]string, 0, numArgs)
	for name := range argConfigMap {
		names = append(names, name)
	}
	sort.Strings(names)

	args := make([]Argument, numArgs)
	for i, name := range names {
		if err := checkValidName(name); err != nil {
			return nil, err
		}

		argConfig := argConfigMap[name]
		args[i] = Argument{
			name:         name,
			description:  argConfig.Description,
			ttype:        argConfig.Type,
			defaultValue: argConfig.DefaultValue,
		}
	}

	return args, nil
}

// Argument is accepted in querying a field to further specify the return value.
type Argument struct {
	name         string
	description  string
	ttype        Type
	defaultValue interface{}
}

// Name of the argument
func (arg *Argument) Name() string {
	return arg.name
}

// Description of the argument
func (arg *Argument) Description() string {
	return arg.description
}

// Type of the value that can be given to the argument
func (arg *Argument) Type() Type {
	return arg.ttype
}

// HasDefaultValue returns true if the argument has a default value.
func (arg *Argument) HasDefaultValue() bool {
	return arg.defaultValue != nil
}

// DefaultValue specifies the value to be assigned to the argument when no value is provided.
func (arg *Argument) DefaultValue() interface{} {
	// Deal with NilArgumentDefaultValue specially.
	if _, ok := arg.defaultValue.(argumentNilValueType); ok {
		// We have default value which is "null".
		return nil
	}
	return arg.defaultValue
}

// IsRequiredArgument returns true if a value must be provided to the argument for execution.
func IsRequiredArgument(arg *Argument) bool {
	return IsNonNullType(arg.Type()) && !arg.HasDefaultValue()
}

// findArgument finds the argument with the given name in an ordered argument list.
func findArgument(args []Argument, name string) *Argument {
	for i := range args {
		if args[i].name == name {
			return &args[i]
		}
	}
	return nil
}

// MockArgument creates an Argument object. This is only used in tests to create an Argument for
// comparing with one in Type instances. We never use this to create an Argument.
func MockArgument(name string, description string, t Type, defaultValue interface{}) Argument {
	return Argument{
		name:         name,
		description:  description,
		ttype:        t,
		defaultValue: defaultValue,
	}
}
