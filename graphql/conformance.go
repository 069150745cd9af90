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

// This file checks that an Object type structurally satisfies the Interface types it claims to
// implement: every interface field is provided with a covariant-compatible type, every interface
// argument is provided with exactly the same type, and any extra argument on the implementing
// field is optional.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Objects

// validateObjectInterfaces checks the interface list declared on an Object: every claim must name
// an Interface type and no Interface may be claimed twice. Claims that do name an Interface are
// then checked for field conformance.
func (v *schemaValidator) validateObjectInterfaces(object *Object) {
	// The visited set is keyed by identity; two claims are duplicates only if they reference the
	// same Interface instance, which is the only way two claims can share a name in a schema that
	// passed the type map uniqueness check.
	seen := map[*Interface]bool{}

	for _, claimed := range object.Interfaces() {
		iface, ok := claimed.(*Interface)
		if !ok || iface == nil {
			v.reportf("%s must only implement Interface types, it cannot implement %s.",
				object.Name(), Inspect(claimed))
			continue
		}

		if seen[iface] {
			v.reportf("%s must declare it implements %s only once.", object.Name(), iface.Name())
			continue
		}
		seen[iface] = true

		v.validateObjectImplementsInterface(object, iface)
	}
}

// validateObjectImplementsInterface checks that object provides every field that iface expects.
func (v *schemaValidator) validateObjectImplementsInterface(object *Object, iface *Interface) {
	objectFields := object.Fields()

	// Assert each interface field is implemented.
	for _, ifaceField := range iface.Fields() {
		fieldName := ifaceField.Name()
		objectField := objectFields.Lookup(fieldName)

		// Assert interface field exists on object.
		if objectField == nil {
			v.reportf("%q expects field %q but %q does not provide it.",
				iface.Name(), fieldName, object.Name())
			continue
		}

		// Assert interface field type is satisfied by object field type, through covariance.
		if !IsTypeSubTypeOf(v.schema, objectField.Type(), ifaceField.Type()) {
			v.reportf("%s.%s expects type %q but %s.%s is type %q.",
				iface.Name(), fieldName, typeNotation(ifaceField.Type()),
				object.Name(), fieldName, typeNotation(objectField.Type()))
		}

		// Assert each interface field arg is implemented.
		for i := range ifaceField.Args() {
			ifaceArg := &ifaceField.Args()[i]
			argName := ifaceArg.Name()
			objectArg := findArgument(objectField.Args(), argName)

			// Assert interface field arg exists on object field. A missing argument is reported in
			// the same form as a mismatched one; the object side has no type to show.
			if objectArg == nil {
				v.reportf("%s.%s(%s:) expects type %q but %s.%s(%s:) is type %q.",
					iface.Name(), fieldName, argName, typeNotation(ifaceArg.Type()),
					object.Name(), fieldName, argName, "undefined")
				continue
			}

			// Assert interface field arg type matches object field arg type (invariant).
			if !IsEqualType(ifaceArg.Type(), objectArg.Type()) {
				v.reportf("%s.%s(%s:) expects type %q but %s.%s(%s:) is type %q.",
					iface.Name(), fieldName, argName, typeNotation(ifaceArg.Type()),
					object.Name(), fieldName, argName, typeNotation(objectArg.Type()))
			}
		}

		// Assert additional arguments must not be required.
		for i := range objectField.Args() {
			objectArg := &objectField.Args()[i]
			argName := objectArg.Name()
			if findArgument(ifaceField.Args(), argName) == nil && IsRequiredArgument(objectArg) {
				v.reportf("%s.%s(%s:) is of required type %q but is not also provided by the "+
					"interface %s.%s.",
					object.Name(), fieldName, argName, typeNotation(objectArg.Type()),
					iface.Name(), fieldName)
			}
		}
	}
}

// typeNotation renders a type for use inside a quoted diagnostic, tolerating nil.
func typeNotation(t Type) string {
	if isNilType(t) {
		return "null"
	}
	return t.String()
}
