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

// UnionConfig provides the specification to define a Union type.
type UnionConfig struct {
	// Name of the defining Union
	Name string

	// Description for the Union type
	Description string

	// Types lists the member types of the defining union in declaration order. The element type
	// is Type rather than *Object so that ValidateSchema can report non-Object members; listing a
	// member more than once is rejected here.
	Types []Type

	// ResolveType resolves the concrete Object type represented by a value of this union.
	ResolveType TypeResolver
}

// Union Type Definition
//
// When a field can return one of a heterogeneous set of types, a Union type is used to describe
// what types are possible as well as providing a function to determine which type is actually
// used when the field is resolved.
//
// Reference: https://graphql.github.io/graphql-spec/June2018/#sec-Unions
type Union struct {
	name         string
	description  string
	types        []Type
	typeResolver TypeResolver
}

var (
	_ Type                = (*Union)(nil)
	_ AbstractType        = (*Union)(nil)
	_ TypeWithName        = (*Union)(nil)
	_ TypeWithDescription = (*Union)(nil)
)

// NewUnion defines a Union type from a UnionConfig.
func NewUnion(config *UnionConfig) (*Union, error) {
	if len(config.Name) == 0 {
		return nil, NewConfigError("Must provide name for Union.")
	}
	if err := checkValidName(config.Name); err != nil {
		return nil, err
	}

	if len(config.Types) == 0 {
		return nil, NewConfigError(fmt.Sprintf(
			"Must provide Array of types for Union %s.", config.Name))
	}

	// A member may appear only once; comparison is by identity.
	seen := make(map[Type]bool, len(config.Types))
	types := make([]Type, len(config.Types))
	for i, memberType := range config.Types {
		if !isNilType(memberType) {
			if seen[memberType] {
				return nil, NewConfigError(fmt.Sprintf(
					"%s can include %s type only once.", config.Name, memberType.String()))
			}
			seen[memberType] = true
		}
		types[i] = memberType
	}

	return &Union{
		name:         config.Name,
		description:  config.Description,
		types:        types,
		typeResolver: config.ResolveType,
	}, nil
}

// MustNewUnion is a convenience function equivalent to NewUnion but panics on failure instead of
// returning an error.
func MustNewUnion(config *UnionConfig) *Union {
	u, err := NewUnion(config)
	if err != nil {
		panic(err)
	}
	return u
}

// graphqlType implements Type.
func (*Union) graphqlType() {}

// graphqlAbstractType implements AbstractType.
func (*Union) graphqlAbstractType() {}

// String implements fmt.Stringer.
func (u *Union) String() string {
	return u.name
}

// Name implements TypeWithName.
func (u *Union) Name() string {
	return u.name
}

// Description implements TypeWithDescription.
func (u *Union) Description() string {
	return u.description
}

// Types returns the members of the union type in declaration order.
func (u *Union) Types() []Type {
	return u.types
}

// TypeResolver returns the resolver that determines the concrete Object type for this union from
// a resolved value.
func (u *Union) TypeResolver() TypeResolver {
	return u.typeResolver
}
