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
)

// TypeResolver determines the concrete Object type for an abstract type from a resolved value.
// Used by the execution engine; this core only records it on the type definition.
type TypeResolver interface {
	ResolveType(ctx context.Context, value interface{}) (*Object, error)
}

// TypeResolverFunc is an adapter to allow the use of ordinary functions as TypeResolver.
type TypeResolverFunc func(ctx context.Context, value interface{}) (*Object, error)

// ResolveType calls f(ctx, value).
func (f TypeResolverFunc) ResolveType(ctx context.Context, value interface{}) (*Object, error) {
	return f(ctx, value)
}

// TypeResolverFunc implements TypeResolver.
var _ TypeResolver = TypeResolverFunc(nil)

// InterfaceConfig provides the specification to define an Interface type.
type InterfaceConfig struct {
	// Name of the defining Interface
	Name string

	// Description for the Interface type
	Description string

	// Fields that need to be provided when implementing this interface; must be given a Fields or
	// a FieldsThunk.
	Fields interface{}

	// ResolveType resolves the concrete Object type implementing the defining interface from a
	// value.
	ResolveType TypeResolver
}

// Interface Type Definition
//
// When a field can return one of a heterogeneous set of types, an Interface type is used to
// describe what types are possible, and what fields are in common across all types.
//
// Reference: https://graphql.github.io/graphql-spec/June2018/#sec-Interfaces
type Interface struct {
	name         string
	description  string
	fields       fieldsResolver
	typeResolver TypeResolver
}

var (
	_ Type                = (*Interface)(nil)
	_ AbstractType        = (*Interface)(nil)
	_ TypeWithName        = (*Interface)(nil)
	_ TypeWithDescription = (*Interface)(nil)
)

// NewInterface defines an Interface type from an InterfaceConfig.
func NewInterface(config *InterfaceConfig) (*Interface, error) {
	if len(config.Name) == 0 {
		return nil, NewConfigError("Must provide name for Interface.")
	}
	if err := checkValidName(config.Name); err != nil {
		return nil, err
	}

	iface := &Interface{
		name:         config.Name,
		description:  config.Description,
		typeResolver: config.ResolveType,
	}
	iface.fields.typeName = config.Name
	iface.fields.config = config.Fields

	if _, isThunk := config.Fields.(FieldsThunk); !isThunk {
		if _, err := iface.fields.resolve(); err != nil {
			return nil, err
		}
	}

	return iface, nil
}

// MustNewInterface is a convenience function equivalent to NewInterface but panics on failure
// instead of returning an error.
func MustNewInterface(config *InterfaceConfig) *Interface {
	iface, err := NewInterface(config)
	if err != nil {
		panic(err)
	}
	return iface
}

// graphqlType implements Type.
func (*Interface) graphqlType() {}

// graphqlAbstractType implements AbstractType.
func (*Interface) graphqlAbstractType() {}

// String implements fmt.Stringer.
func (iface *Interface) String() string {
	return iface.name
}

// Name implements TypeWithName.
func (iface *Interface) Name() string {
	return iface.name
}

// Description implements TypeWithDescription.
func (iface *Interface) Description() string {
	return iface.description
}

// Fields returns the ordered set of fields that need to be provided when implementing this
// interface. It forces a pending fields thunk; a shape error in the thunk result is surfaced by
// NewSchema.
func (iface *Interface) Fields() FieldList {
	fields, _ := iface.fields.resolve()
	return fields
}

// TypeResolver returns the resolver that determines the concrete Object type for this interface
// from a resolved value.
func (iface *Interface) TypeResolver() TypeResolver {
	return iface.typeResolver
}

// resolveFields exposes the resolution error to the schema traversal.
func (iface *Interface) resolveFields() (FieldList, error) {
	return iface.fields.resolve()
}
