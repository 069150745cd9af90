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

// Contains interfaces and definitions for a GraphQL schema.

// TypeMap keeps track of all named types referenced within the schema. Iteration (via Names)
// follows the order in which types were first reached during schema construction, so it is
// deterministic for a given schema configuration.
type TypeMap struct {
	// names records the insertion order of keys in types.
	names []string
	types map[string]Type
}

// newTypeMap returns an empty TypeMap ready for incremental insertion.
func newTypeMap() TypeMap {
	return TypeMap{
		types: map[string]Type{},
	}
}

// add puts a type and every type transitively reachable from it into the map. This is only used by
// NewSchema to initialize the type map incrementally. Resolving the reachable set forces any
// pending fields and interfaces thunks, so configuration errors deferred by thunked constructors
// surface here.
func (typeMap *TypeMap) add(t Type) error {
	// stack contains types to be added to the map.
	stack := []Type{t}

	for len(stack) > 0 {
		// Pop a type from stack.
		t, stack = stack[len(stack)-1], stack[:len(stack)-1]

		// Skip nil type quickly. Before validation, we may have a nil Type or a nil type instance
		// wrapped in a Type.
		if isNilType(t) {
			continue
		}

		// Map type name to the corresponding Type.
		if namedType, ok := t.(TypeWithName); ok {
			name := namedType.Name()
			prev, exists := typeMap.types[name]
			if !exists {
				typeMap.names = append(typeMap.names, name)
				typeMap.types[name] = t
			} else {
				if prev != t {
					return NewConfigError(fmt.Sprintf(
						"Schema must contain unique named types but contains multiple types named %q.",
						name))
				}
				// Skip t which has been processed.
				continue
			}
		}

		// Add types referenced by t to stack.
		switch t := t.(type) {
		case *Scalar:
			// Nothing to do.

		case *Object:
			// Add interfaces; resolving may force a pending thunk.
			interfaces, err := t.resolveInterfaces()
			if err != nil {
				return err
			}
			stack = append(stack, interfaces...)

			// Add field types and argument types.
			fields, err := t.resolveFields()
			if err != nil {
				return err
			}
			for _, field := range fields {
				stack = append(stack, field.Type())
				args := field.Args()
				for i := range args {
					stack = append(stack, args[i].Type())
				}
			}

		case *Interface:
			// Add field types and argument types.
			fields, err := t.resolveFields()
			if err != nil {
				return err
			}
			for _, field := range fields {
				stack = append(stack, field.Type())
				args := field.Args()
				for i := range args {
					stack = append(stack, args[i].Type())
				}
			}

		case *Union:
			stack = append(stack, t.Types()...)

		case *Enum:
			// Nothing to do.

		case *InputObject:
			// Add field types.
			fields, err := t.resolveFields()
			if err != nil {
				return err
			}
			for _, field := range fields {
				stack = append(stack, field.Type())
			}

		case *List:
			stack = append(stack, t.ElementType())
		case *NonNull:
			stack = append(stack, t.InnerType())

		default:
			return NewConfigError(fmt.Sprintf("Cannot add %s to schema: unsupported type %T.", t, t))
		}
	}

	return nil
}

// Lookup finds a type with the given name, or returns nil.
func (typeMap TypeMap) Lookup(name string) Type {
	return typeMap.types[name]
}

// Names returns the names of all types in the map in insertion order.
func (typeMap TypeMap) Names() []string {
	return typeMap.names
}

// Size returns the number of types in the map.
func (typeMap TypeMap) Size() int {
	return len(typeMap.names)
}

// SchemaConfig contains configuration to define a GraphQL schema.
type SchemaConfig struct {
	// Query, Mutation and Subscription are the GraphQL Root Operation types defined by the schema.
	// They are declared as Type so that a value of the wrong kind can be diagnosed by
	// ValidateSchema rather than rejected by the Go compiler with a less helpful message.
	Query        Type
	Mutation     Type
	Subscription Type

	// List of types that are declared in the schema but not necessarily reachable from the roots.
	Types []Type

	// List of directives to be added to the schema.
	Directives DirectiveList

	// If true, the standard directives such as @skip will not be included in the defining schema.
	// The directives provided in Directives will be the exact list of directives represented and
	// allowed.
	ExcludeStandardDirectives bool
}

// Schema Definition
//
// A GraphQL service's collective type system capabilities are referred to as that service's
// "schema". A schema is defined in terms of the types and directives it supports as well as the
// root operation types for each kind of operation: query, mutation, and subscription; this
// determines the place in the type system where those operations begin.
//
// Definitions including types and directives in schema are assumed to be immutable after creation.
// This allows us to cache the results for some operations such as PossibleTypes.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Schema
type Schema struct {
	// query, mutation and subscription are root operation types.
	query        Type
	mutation     Type
	subscription Type

	// typeMap contains all named types defined in the schema.
	typeMap TypeMap

	// directives contains all directives defined in the schema.
	directives DirectiveList

	// implementations keeps track of all implementing Object types by interface.
	implementations map[*Interface][]*Object
}

// NewSchema initializes a Schema from the given config. It eagerly builds the type map, forcing
// any thunks along the way, so a malformed type configuration that was deferred at construction
// time fails here. ValidateSchema performs the remaining semantic checks.
func NewSchema(config *SchemaConfig) (*Schema, error) {
	schema := &Schema{
		query:        config.Query,
		mutation:     config.Mutation,
		subscription: config.Subscription,
	}

	// Add standard directives.
	numDirectives := len(config.Directives)
	if config.ExcludeStandardDirectives {
		schema.directives = make(DirectiveList, numDirectives)
		copy(schema.directives, config.Directives)
	} else {
		standardDirectives := StandardDirectives()
		schema.directives = make(DirectiveList, numDirectives, numDirectives+len(standardDirectives))
		copy(schema.directives, config.Directives)
		schema.directives = append(schema.directives, standardDirectives...)
	}

	// Build type map now to detect any errors within this schema. The insertion order is fixed:
	// roots first, then built-in scalars, then explicitly declared types, then types referenced by
	// directive arguments.
	typeMap := newTypeMap()

	// Add root operation types.
	if err := typeMap.add(config.Query); err != nil {
		return nil, err
	}
	if err := typeMap.add(config.Mutation); err != nil {
		return nil, err
	}
	if err := typeMap.add(config.Subscription); err != nil {
		return nil, err
	}

	// Add built-in types.
	if err := typeMap.add(Int()); err != nil {
		return nil, err
	}
	if err := typeMap.add(Float()); err != nil {
		return nil, err
	}
	if err := typeMap.add(String()); err != nil {
		return nil, err
	}
	if err := typeMap.add(Boolean()); err != nil {
		return nil, err
	}
	if err := typeMap.add(ID()); err != nil {
		return nil, err
	}

	// Visit all enumerated types in config.
	for _, t := range config.Types {
		if err := typeMap.add(t); err != nil {
			return nil, err
		}
	}

	// Visit types referenced by directives. A nil entry is tolerated here; ValidateSchema reports
	// it as a malformed directive.
	for _, directive := range schema.directives {
		if directive == nil {
			continue
		}
		args := directive.Args()
		for i := range args {
			if err := typeMap.add(args[i].Type()); err != nil {
				return nil, err
			}
		}
	}

	// Store the resulting map for reference by the schema.
	schema.typeMap = typeMap

	// Keep track of all implementations by interface. Iterating via names keeps the per-interface
	// implementation lists in type map order.
	implementations := map[*Interface][]*Object{}
	for _, name := range typeMap.names {
		if object, ok := typeMap.types[name].(*Object); ok {
			// Create a reverse link from the Interface to the Objects that implement it.
			for _, iface := range object.Interfaces() {
				if iface, ok := iface.(*Interface); ok {
					implementations[iface] = append(implementations[iface], object)
				}
			}
		}
	}
	schema.implementations = implementations

	return schema, nil
}

// MustNewSchema is a convenience function equivalent to NewSchema but panics on failure instead of
// returning an error.
func MustNewSchema(config *SchemaConfig) *Schema {
	schema, err := NewSchema(config)
	if err != nil {
		panic(err)
	}
	return schema
}

// TypeMap keeps track of all named types referenced within the schema.
func (schema *Schema) TypeMap() TypeMap {
	return schema.typeMap
}

// Directives keeps track of all valid directives within the schema.
func (schema *Schema) Directives() DirectiveList {
	return schema.directives
}

// Query is one of the three GraphQL Root Operations.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Root-Operation-Types
func (schema *Schema) Query() Type {
	return schema.query
}

// Mutation is one of the three GraphQL Root Operations.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Root-Operation-Types
func (schema *Schema) Mutation() Type {
	return schema.mutation
}

// Subscription is one of the three GraphQL Root Operations.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Root-Operation-Types
func (schema *Schema) Subscription() Type {
	return schema.subscription
}

// PossibleTypes returns concrete types for an abstract type in the schema. For an Interface, this
// is the list of Object types that implement it. For a Union, this is the list of its member types
// (skipping members that are not Object types; ValidateSchema reports those).
func (schema *Schema) PossibleTypes(t AbstractType) []*Object {
	switch t := t.(type) {
	case *Union:
		members := t.Types()
		objects := make([]*Object, 0, len(members))
		for _, member := range members {
			if object, ok := member.(*Object); ok {
				objects = append(objects, object)
			}
		}
		return objects
	case *Interface:
		return schema.implementations[t]
	default:
		return nil
	}
}

// IsPossibleType returns true if the given Object is one of the concrete types of the given
// abstract type in the schema.
func (schema *Schema) IsPossibleType(abstractType AbstractType, object *Object) bool {
	for _, possibleType := range schema.PossibleTypes(abstractType) {
		if possibleType == object {
			return true
		}
	}
	return false
}
