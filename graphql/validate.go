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
	"strings"
)

// Implements schema validation: the graph-level rules that a fully assembled schema must satisfy
// before it can serve queries. Construction-time shape violations abort eagerly in the type
// constructors and in NewSchema; the rules here walk an already well-formed graph and collect
// every violation so that callers obtain the full diagnostic set in one pass.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Type-System

// ValidateSchema checks the given schema against every schema rule and returns the full list of
// violations in a deterministic order, following the type map. An empty list means the schema is
// valid. The returned list is built fresh on every call and the schema is never mutated, so
// concurrent calls are safe.
func ValidateSchema(schema *Schema) Errors {
	v := &schemaValidator{schema: schema}
	v.validateRootTypes()
	v.validateDirectives()
	v.validateTypes()
	return v.errs
}

// AssertValidSchema is the fail-fast form of ValidateSchema. It returns nil for a valid schema and
// otherwise a single error joining every violation message.
func AssertValidSchema(schema *Schema) error {
	errs := ValidateSchema(schema)
	if !errs.HaveOccurred() {
		return nil
	}

	messages := make([]string, len(errs.Errors))
	for i, err := range errs.Errors {
		messages[i] = err.Message
	}
	return NewValidationError(strings.Join(messages, "\n\n"))
}

// schemaValidator carries the collected diagnostics across rule groups.
type schemaValidator struct {
	schema *Schema
	errs   Errors
}

// reportf records one validation error.
func (v *schemaValidator) reportf(format string, args ...interface{}) {
	v.errs.Append(NewValidationError(fmt.Sprintf(format, args...)))
}

// validateRootTypes checks the root operation types. The query root is required and all provided
// roots must be Object types.
func (v *schemaValidator) validateRootTypes() {
	query := v.schema.Query()
	if isNilType(query) {
		v.reportf("Query root type must be provided.")
	} else if !IsObjectType(query) {
		v.reportf("Query root type must be Object type but got: %s.", Inspect(query))
	}

	mutation := v.schema.Mutation()
	if !isNilType(mutation) && !IsObjectType(mutation) {
		v.reportf("Mutation root type must be Object type if provided but got: %s.",
			Inspect(mutation))
	}

	subscription := v.schema.Subscription()
	if !isNilType(subscription) && !IsObjectType(subscription) {
		v.reportf("Subscription root type must be Object type if provided but got: %s.",
			Inspect(subscription))
	}
}

// validateDirectives checks each entry in the schema's directive set and the type position of
// every directive argument.
func (v *schemaValidator) validateDirectives() {
	for _, directive := range v.schema.Directives() {
		if directive == nil {
			v.reportf("Expected directive but got: %s.", Inspect(nil))
			continue
		}

		args := directive.Args()
		for i := range args {
			arg := &args[i]
			if !IsInputType(arg.Type()) {
				v.reportf("@%s(%s:) argument type must be Input Type but got: %s.",
					directive.Name(), arg.Name(), Inspect(arg.Type()))
			}
		}
	}
}

// validateTypes walks every named type in the type map, checking the type-position rule on fields
// and arguments, union membership, and interface conformance. The walk follows the type map's
// insertion order so two validations of the same schema report in the same order.
func (v *schemaValidator) validateTypes() {
	typeMap := v.schema.TypeMap()
	for _, name := range typeMap.Names() {
		switch t := typeMap.Lookup(name).(type) {
		case *Object:
			v.validateFields(t.Name(), t.Fields())
			v.validateObjectInterfaces(t)

		case *Interface:
			v.validateFields(t.Name(), t.Fields())

		case *Union:
			v.validateUnionMembers(t)

		case *InputObject:
			v.validateInputFields(t)

		case *Scalar, *Enum:
			// Leaf types are fully checked at construction time.
		}
	}
}

// validateFields checks that every field of an Object or Interface declares an Output Type and
// that every argument declares an Input Type.
func (v *schemaValidator) validateFields(typeName string, fields FieldList) {
	for _, field := range fields {
		if !IsOutputType(field.Type()) {
			v.reportf("%s.%s field type must be Output Type but got: %s.",
				typeName, field.Name(), Inspect(field.Type()))
		}

		args := field.Args()
		for i := range args {
			arg := &args[i]
			if !IsInputType(arg.Type()) {
				v.reportf("%s.%s(%s:) argument type must be Input Type but got: %s.",
					typeName, field.Name(), arg.Name(), Inspect(arg.Type()))
			}
		}
	}
}

// validateUnionMembers checks that every member of a Union is an Object type. Emptiness and
// duplicate members are rejected by NewUnion.
func (v *schemaValidator) validateUnionMembers(union *Union) {
	for _, member := range union.Types() {
		if isNilType(member) || !IsObjectType(member) {
			v.reportf("Union type %s can only include Object types, it cannot include %s.",
				union.Name(), Inspect(member))
		}
	}
}

// validateInputFields checks that every field of an InputObject declares an Input Type. The
// no-resolver rule is enforced by NewInputObject.
func (v *schemaValidator) validateInputFields(inputObject *InputObject) {
	for _, field := range inputObject.Fields() {
		if !IsInputType(field.Type()) {
			v.reportf("%s.%s field type must be Input Type but got: %s.",
				inputObject.Name(), field.Name(), Inspect(field.Type()))
		}
	}
}
