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

// IsEqualType returns true if the two types refer to the same type definition. Named types compare
// by identity; wrapping types compare structurally on their wrapped type.
func IsEqualType(a Type, b Type) bool {
	if a == b {
		return true
	}

	if a, ok := a.(*NonNull); ok {
		if b, ok := b.(*NonNull); ok {
			return IsEqualType(a.InnerType(), b.InnerType())
		}
		return false
	}

	if a, ok := a.(*List); ok {
		if b, ok := b.(*List); ok {
			return IsEqualType(a.ElementType(), b.ElementType())
		}
		return false
	}

	return false
}

// IsTypeSubTypeOf returns true if maybeSubType is either equal to or a subset of superType
// (covariant).
func IsTypeSubTypeOf(schema *Schema, maybeSubType Type, superType Type) bool {
	// Equivalent type is a valid subtype.
	if maybeSubType == superType {
		return true
	}

	// If superType is non-null, maybeSubType must also be non-null.
	if superType, ok := superType.(*NonNull); ok {
		if maybeSubType, ok := maybeSubType.(*NonNull); ok {
			return IsTypeSubTypeOf(schema, maybeSubType.InnerType(), superType.InnerType())
		}
		return false
	}

	// If superType is nullable, maybeSubType may be non-null or nullable.
	if maybeSubType, ok := maybeSubType.(*NonNull); ok {
		return IsTypeSubTypeOf(schema, maybeSubType.InnerType(), superType)
	}

	// If superType is a list, maybeSubType must also be a list.
	if superType, ok := superType.(*List); ok {
		if maybeSubType, ok := maybeSubType.(*List); ok {
			return IsTypeSubTypeOf(schema, maybeSubType.ElementType(), superType.ElementType())
		}
		return false
	}

	// A list is never a subtype of a non-list.
	if _, ok := maybeSubType.(*List); ok {
		return false
	}

	// If superType is an abstract type, maybeSubType may be a currently possible object type.
	if superType, ok := superType.(AbstractType); ok {
		if maybeSubType, ok := maybeSubType.(*Object); ok {
			return schema.IsPossibleType(superType, maybeSubType)
		}
	}

	// Otherwise, the child type is not a valid subtype of the parent type.
	return false
}
