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
	"reflect"
)

// Type is the interface satisfied by every member of the closed set of type kinds: Scalar,
// Object, Interface, Union, Enum, InputObject and the two structural wrappers List and NonNull.
// Type instances are constructed once and are immutable thereafter; two types are the same type
// exactly when they are the same instance.
//
// Reference: https://graphql.github.io/graphql-spec/June2018/#sec-Types
type Type interface {
	// String representation when printing the type
	fmt.Stringer

	// graphqlType is a special mark to indicate a Type. It makes sure that only the closed set of
	// kinds can be assigned to Type.
	graphqlType()
}

// TypeWithName is implemented by the type definition for named type.
type TypeWithName interface {
	// Name of the defining type
	Name() string
}

// TypeWithDescription is implemented by the types that provide description.
type TypeWithDescription interface {
	// Description provides documentation for the type.
	Description() string
}

// LeafType can represent a leaf value where traversal of the hierarchical type graph terminates.
// Scalar and Enum are the leaf types.
type LeafType interface {
	Type
	TypeWithName
	TypeWithDescription

	// graphqlLeafType puts a special mark for a leaf type.
	graphqlLeafType()
}

// AbstractType indicates an abstract type, namely interfaces and unions. The concrete Object
// types behind an abstract type in a schema are found with Schema.PossibleTypes.
type AbstractType interface {
	Type
	TypeWithName
	TypeWithDescription

	// graphqlAbstractType puts a special mark for an abstract type.
	graphqlAbstractType()
}

// WrappingType is a type that wraps another type. There are two wrapping types: List and NonNull.
// Wrapping types are unnamed structural types.
type WrappingType interface {
	Type

	// UnwrappedType returns the type that is wrapped by this type.
	UnwrappedType() Type

	graphqlWrappingType()
}

// Deprecation contains information about deprecation for a field or an enum value. The Reason is
// never empty on a constructed type; constructors substitute DefaultDeprecationReason when the
// configuration leaves it blank.
type Deprecation struct {
	// Reason provides a description of why the subject is deprecated.
	Reason string
}

// DefaultDeprecationReason is filled in for a Deprecation configured without a reason.
const DefaultDeprecationReason = "No longer supported"

// Defined returns true if the deprecation is active.
func (d *Deprecation) Defined() bool {
	return d != nil
}

//===----------------------------------------------------------------------------------------====//
// Type Predication
//===----------------------------------------------------------------------------------------====//

// NamedTypeOf returns the given type if it is a non-wrapping type. Otherwise, return the
// underlying named type of a wrapping type.
func NamedTypeOf(t Type) Type {
	for {
		switch ttype := t.(type) {
		case *List:
			if ttype == nil {
				return nil
			}
			t = ttype.ElementType()

		case *NonNull:
			if ttype == nil {
				return nil
			}
			t = ttype.InnerType()

		default:
			return t
		}
	}
}

// NullableTypeOf returns the given type if it is not a non-null type. Otherwise, return the inner
// type of the non-null type.
func NullableTypeOf(t Type) Type {
	if t, ok := t.(*NonNull); ok && t != nil {
		return t.InnerType()
	}
	return t
}

// isNilType returns true for both an untyped nil and a nil kind instance wrapped in a Type.
func isNilType(t Type) bool {
	return t == nil || reflect.ValueOf(t).IsNil()
}

// IsInputType returns true if the given type may appear in an input position: the declared type
// of an argument or of an input-object field. Unwrapping List and NonNull, the input types are
// Scalar, Enum and InputObject.
func IsInputType(t Type) bool {
	switch named := NamedTypeOf(t).(type) {
	case *Scalar, *Enum, *InputObject:
		return !isNilType(named)
	default:
		return false
	}
}

// IsOutputType returns true if the given type may appear in an output position: the declared type
// of an object or interface field. Unwrapping List and NonNull, the output types are Scalar,
// Object, Interface, Union and Enum.
func IsOutputType(t Type) bool {
	switch named := NamedTypeOf(t).(type) {
	case *Scalar, *Object, *Interface, *Union, *Enum:
		return !isNilType(named)
	default:
		return false
	}
}

// IsCompositeType returns true if the given type is one of Object, Interface or Union.
func IsCompositeType(t Type) bool {
	switch t.(type) {
	case *Object, *Interface, *Union:
		return true
	default:
		return false
	}
}

// IsNullableType returns true if the type accepts null value.
func IsNullableType(t Type) bool {
	_, ok := t.(*NonNull)
	return !ok
}

// IsNamedType returns true if the type is a non-wrapping type.
func IsNamedType(t Type) bool {
	return !IsWrappingType(t)
}

// The following predications are simple wrappers of type assertions to the corresponding kind.
// This makes the use of predications in "if" easy.

// IsLeafType returns true if the given type is a leaf.
func IsLeafType(t Type) bool {
	_, ok := t.(LeafType)
	return ok
}

// IsAbstractType returns true if the given type is abstract.
func IsAbstractType(t Type) bool {
	_, ok := t.(AbstractType)
	return ok
}

// IsWrappingType returns true if the given type is a wrapping type.
func IsWrappingType(t Type) bool {
	_, ok := t.(WrappingType)
	return ok
}

// IsScalarType returns true if the given type is a Scalar type.
func IsScalarType(t Type) bool {
	_, ok := t.(*Scalar)
	return ok
}

// IsObjectType returns true if the given type is an Object type.
func IsObjectType(t Type) bool {
	_, ok := t.(*Object)
	return ok
}

// IsInterfaceType returns true if the given type is an Interface type.
func IsInterfaceType(t Type) bool {
	_, ok := t.(*Interface)
	return ok
}

// IsUnionType returns true if the given type is a Union type.
func IsUnionType(t Type) bool {
	_, ok := t.(*Union)
	return ok
}

// IsEnumType returns true if the given type is an Enum type.
func IsEnumType(t Type) bool {
	_, ok := t.(*Enum)
	return ok
}

// IsInputObjectType returns true if the given type is an Input Object type.
func IsInputObjectType(t Type) bool {
	_, ok := t.(*InputObject)
	return ok
}

// IsListType returns true if the given type is a List type.
func IsListType(t Type) bool {
	_, ok := t.(*List)
	return ok
}

// IsNonNullType returns true if the given type is a NonNull type.
func IsNonNullType(t Type) bool {
	_, ok := t.(*NonNull)
	return ok
}
