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

// Package graphql implements the static type system of a GraphQL schema: the closed set of type
// kinds (Scalar, Object, Interface, Union, Enum and InputObject, plus the List and NonNull
// wrappers) and the rules a fully assembled schema must satisfy before it can serve queries.
//
// Error Tiers
//
// Problems are reported in two tiers. Constructors (NewObject, NewEnum, NewSchema, ...) validate
// local shape eagerly and fail fast with a config error: a malformed definition cannot be safely
// walked by later rules. ValidateSchema walks the well-formed type graph of a constructed Schema
// and collects every rule violation (root types, type positions, interface conformance, union
// membership, directives) into one list, so schema authors see the full diagnostic set in a
// single pass.
//
// Thunks and Recursive Types
//
// A type graph is frequently self-referential. Field and interface configurations therefore
// accept either their direct form (e.g. Fields) or a zero-argument thunk returning it (e.g.
// FieldsThunk). A thunk is invoked at most once and its result memoized; NewSchema forces every
// pending thunk while building the type map, so shape errors deferred by a thunk still surface
// before the schema is used.
package graphql
