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
	"log"
	"regexp"
	"sync/atomic"
)

// nameRegexp describes the identifier grammar shared by type, field, argument, enum value and
// directive names.
var nameRegexp = regexp.MustCompile("^[_a-zA-Z][_a-zA-Z0-9]*$")

// introspectionNames allowlists the built-in introspection names which legitimately begin with a
// double underscore.
var introspectionNames = map[string]bool{
	"__Schema":            true,
	"__Directive":         true,
	"__DirectiveLocation": true,
	"__Type":              true,
	"__Field":             true,
	"__InputValue":        true,
	"__EnumValue":         true,
	"__TypeKind":          true,
	"__typename":          true,
	"__type":              true,
	"__schema":            true,
}

// NameWarning is the structured event emitted when a definition uses a name that is reserved for
// introspection. It never blocks construction or validation; the surrounding tool decides the
// display policy.
type NameWarning struct {
	// Name is the offending identifier.
	Name string

	// Message explains the reservation.
	Message string
}

// NameWarningHandler receives NameWarning events.
type NameWarningHandler func(warning NameWarning)

// nameWarningHandler holds the active NameWarningHandler.
var nameWarningHandler atomic.Value

// SetNameWarningHandler installs the handler that receives reserved-name warnings and returns the
// previous one. Passing nil restores the default handler which writes the warning via the log
// package.
func SetNameWarningHandler(handler NameWarningHandler) NameWarningHandler {
	prev, _ := nameWarningHandler.Load().(NameWarningHandler)
	if handler == nil {
		handler = logNameWarning
	}
	nameWarningHandler.Store(handler)
	return prev
}

func logNameWarning(warning NameWarning) {
	log.Println(warning.Message)
}

func emitNameWarning(warning NameWarning) {
	handler, _ := nameWarningHandler.Load().(NameWarningHandler)
	if handler == nil {
		handler = logNameWarning
	}
	handler(warning)
}

// checkValidName verifies the identifier grammar and flags (but does not reject) names reserved
// for introspection.
func checkValidName(name string) error {
	if err := checkValidNameWithoutReservation(name); err != nil {
		return err
	}
	if len(name) > 1 && name[0] == '_' && name[1] == '_' && !introspectionNames[name] {
		emitNameWarning(NameWarning{
			Name: name,
			Message: fmt.Sprintf(
				`Name "%s" must not begin with "__", which is reserved by GraphQL introspection.`, name),
		})
	}
	return nil
}

// checkValidNameWithoutReservation verifies only the identifier grammar. Introspection
// definitions use this to register their reserved names without tripping the warning.
func checkValidNameWithoutReservation(name string) error {
	if !nameRegexp.MatchString(name) {
		return NewConfigError(fmt.Sprintf(
			`Names must match /^[_a-zA-Z][_a-zA-Z0-9]*$/ but "%s" does not.`, name))
	}
	return nil
}

func init() {
	nameWarningHandler.Store(NameWarningHandler(logNameWarning))
}
