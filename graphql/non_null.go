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

// NonNull Type Modifier
//
// A non-null is a wrapping type which points to another type. Non-null types enforce that their
// values are never null and can ensure an error is raised if this ever occurs during a request.
// A NonNull never wraps another NonNull.
//
// Note: the enforcement of non-nullability occurs within the executor.
//
// Reference: https://graphql.github.io/graphql-spec/June2018/#sec-Type-System.Non-Null
type NonNull struct {
	innerType Type
	// notation is the cached value returned from String() and is initialized in the constructor.
	notation string
}

var (
	_ Type         = (*NonNull)(nil)
	_ WrappingType = (*NonNull)(nil)
)

// NewNonNull defines a NonNull type wrapping the given inner type.
func NewNonNull(innerType Type) (*NonNull, error) {
	if isNilType(innerType) || IsNonNullType(innerType) {
		return nil, NewConfigError(fmt.Sprintf(
			"Can only create NonNull of a Nullable Type but got: %s.", Inspect(innerType)))
	}
	return &NonNull{
		innerType: innerType,
		notation:  fmt.Sprintf("%s!", innerType.String()),
	}, nil
}

// MustNewNonNull is a convenience function equivalent to NewNonNull but panics on failure instead
// of returning an error.
func MustNewNonNull(innerType Type) *NonNull {
	n, err := NewNonNull(innerType)
	if err != nil {
		panic(err)
	}
	return n
}

// graphqlType implements Type.
func (*NonNull) graphqlType() {}

// graphqlWrappingType implements WrappingType.
func (*NonNull) graphqlWrappingType() {}

// String implements fmt.Stringer.
func (n *NonNull) String() string {
	return n.notation
}

// InnerType indicates the type wrapped in this non-null type.
func (n *NonNull) InnerType() Type {
	return n.innerType
}

// UnwrappedType implements WrappingType.
func (n *NonNull) UnwrappedType() Type {
	return n.innerType
}
