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
	"sync"
)

// IsTypeOfFunc determines whether a resolved value belongs to the defining Object type. Used by
// the execution engine when completing values of abstract types.
type IsTypeOfFunc func(ctx context.Context, value interface{}) (bool, error)

// InterfacesThunk returns the interfaces claimed by an Object on demand, permitting forward
// references to interfaces that don't exist yet at configuration time. A thunk is invoked at most
// once and its result is memoized.
type InterfacesThunk func() []Type

// ObjectConfig provides the specification to define an Object type.
type ObjectConfig struct {
	// Name of the defining Object
	Name string

	// Description for the Object type
	Description string

	// Fields in the object; must be given a Fields or a FieldsThunk.
	Fields interface{}

	// Interfaces claimed to be implemented by the defining Object; must be given a []Type or an
	// InterfacesThunk. Whether each claim names an actual Interface and is structurally satisfied
	// is checked by ValidateSchema, not here.
	Interfaces interface{}

	// IsTypeOf determines whether a runtime value belongs to this type.
	IsTypeOf IsTypeOfFunc
}

// Object Type Definition
//
// Queries against a schema are hierarchical and composed, describing a tree of information. While
// Scalar types describe the leaf values of these hierarchical queries, Objects describe the
// intermediate levels.
//
// Reference: https://graphql.github.io/graphql-spec/June2018/#sec-Objects
type Object struct {
	name        string
	description string
	fields      fieldsResolver
	interfaces  interfacesResolver
	isTypeOf    IsTypeOfFunc
}

var (
	_ Type                = (*Object)(nil)
	_ TypeWithName        = (*Object)(nil)
	_ TypeWithDescription = (*Object)(nil)
)

// NewObject defines an Object type from an ObjectConfig.
func NewObject(config *ObjectConfig) (*Object, error) {
	if len(config.Name) == 0 {
		return nil, NewConfigError("Must provide name for Object.")
	}
	if err := checkValidName(config.Name); err != nil {
		return nil, err
	}

	o := &Object{
		name:        config.Name,
		description: config.Description,
		isTypeOf:    config.IsTypeOf,
	}
	o.fields.typeName = config.Name
	o.fields.config = config.Fields
	o.interfaces.typeName = config.Name
	o.interfaces.config = config.Interfaces

	// Thunks are left for the schema to force; everything else is validated eagerly so malformed
	// shapes fail fast.
	if _, isThunk := config.Fields.(FieldsThunk); !isThunk {
		if _, err := o.fields.resolve(); err != nil {
			return nil, err
		}
	}
	if _, isThunk := config.Interfaces.(InterfacesThunk); !isThunk {
		if _, err := o.interfaces.resolve(); err != nil {
			return nil, err
		}
	}

	return o, nil
}

// MustNewObject is a convenience function equivalent to NewObject but panics on failure instead
// of returning an error.
func MustNewObject(config *ObjectConfig) *Object {
	o, err := NewObject(config)
	if err != nil {
		panic(err)
	}
	return o
}

// graphqlType implements Type.
func (*Object) graphqlType() {}

// String implements fmt.Stringer.
func (o *Object) String() string {
	return o.name
}

// Name implements TypeWithName.
func (o *Object) Name() string {
	return o.name
}

// Description implements TypeWithDescription.
func (o *Object) Description() string {
	return o.description
}

// Fields returns the ordered set of fields in the object. It forces a pending fields thunk; a
// shape error in the thunk result is surfaced by NewSchema (which resolves every reachable type),
// so after schema construction this never returns nil.
func (o *Object) Fields() FieldList {
	fields, _ := o.fields.resolve()
	return fields
}

// Interfaces returns the interfaces the Object claims to implement, in declaration order. The
// element type is Type rather than *Interface so that ValidateSchema can report claims which name
// a non-Interface type.
func (o *Object) Interfaces() []Type {
	interfaces, _ := o.interfaces.resolve()
	return interfaces
}

// IsTypeOf returns the function determining whether a runtime value belongs to this type.
func (o *Object) IsTypeOf() IsTypeOfFunc {
	return o.isTypeOf
}

// resolveFields exposes the resolution error to the schema traversal.
func (o *Object) resolveFields() (FieldList, error) {
	return o.fields.resolve()
}

// resolveInterfaces exposes the resolution error to the schema traversal.
func (o *Object) resolveInterfaces() ([]Type, error) {
	return o.interfaces.resolve()
}

// interfacesResolver normalizes the "array-or-thunk" interfaces configuration of an Object. Like
// fieldsResolver, it resolves at most once and memoizes the outcome.
type interfacesResolver struct {
	once sync.Once

	typeName string
	config   interface{}

	interfaces []Type
	err        error
}

func (r *interfacesResolver) resolve() ([]Type, error) {
	r.once.Do(func() {
		switch config := r.config.(type) {
		case []Type:
			r.interfaces = config
		case InterfacesThunk:
			if config != nil {
				r.interfaces = config()
			}
		case nil:
			// No interfaces claimed.
		default:
			r.err = NewConfigError(fmt.Sprintf(
				"%s interfaces must be an Array or a function which returns an Array.", r.typeName))
		}
		r.config = nil
	})
	return r.interfaces, r.err
}
