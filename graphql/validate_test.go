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

package graphql_test

import (
	"github.com/selene-graphql/selene/graphql"
	"github.com/selene-graphql/selene/internal/testutil"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

// simpleQueryType builds the equivalent of `type Query { test: String }`.
func simpleQueryType() *graphql.Object {
	return graphql.MustNewObject(&graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"test": {
				Type: graphql.String(),
			},
		},
	})
}

// schemaWithQueryField wires the given field into a fresh query root and builds a schema around
// it, declaring extraTypes explicitly.
func schemaWithQueryField(fieldName string, field graphql.FieldConfig, extraTypes ...graphql.Type) *graphql.Schema {
	query := graphql.MustNewObject(&graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			fieldName: field,
		},
	})
	return graphql.MustNewSchema(&graphql.SchemaConfig{
		Query: query,
		Types: extraTypes,
	})
}

var _ = Describe("ValidateSchema", func() {
	Describe("root types", func() {
		It("accepts a Schema whose query type is an Object type", func() {
			schema := graphql.MustNewSchema(&graphql.SchemaConfig{
				Query: simpleQueryType(),
			})
			Expect(graphql.ValidateSchema(schema).HaveOccurred()).Should(BeFalse())
		})

		It("accepts a Schema whose query, mutation and subscription types are Object types", func() {
			schema := graphql.MustNewSchema(&graphql.SchemaConfig{
				Query: simpleQueryType(),
				Mutation: graphql.MustNewObject(&graphql.ObjectConfig{
					Name: "Mutation",
					Fields: graphql.Fields{
						"test": {Type: graphql.String()},
					},
				}),
				Subscription: graphql.MustNewObject(&graphql.ObjectConfig{
					Name: "Subscription",
					Fields: graphql.Fields{
						"test": {Type: graphql.String()},
					},
				}),
			})
			Expect(graphql.ValidateSchema(schema).HaveOccurred()).Should(BeFalse())
		})

		It("rejects a Schema without a query type", func() {
			schema := graphql.MustNewSchema(&graphql.SchemaConfig{
				Mutation: graphql.MustNewObject(&graphql.ObjectConfig{
					Name: "Mutation",
					Fields: graphql.Fields{
						"test": {Type: graphql.String()},
					},
				}),
			})

			Expect(graphql.ValidateSchema(schema)).Should(testutil.ConsistOfGraphQLErrors(
				testutil.MatchGraphQLError(
					testutil.MessageEqual("Query root type must be provided."),
					testutil.KindIs(graphql.ErrKindValidation),
				),
			))
		})

		It("rejects a Schema whose query root type is not an Object type", func() {
			input := graphql.MustNewInputObject(&graphql.InputObjectConfig{
				Name: "SomeInputObject",
				Fields: graphql.InputFields{
					"test": {Type: graphql.String()},
				},
			})
			schema := graphql.MustNewSchema(&graphql.SchemaConfig{
				Query: input,
			})

			Expect(graphql.ValidateSchema(schema)).Should(testutil.ConsistOfGraphQLErrors(
				testutil.MatchGraphQLError(
					testutil.MessageEqual("Query root type must be Object type but got: SomeInputObject."),
				),
			))
		})

		It("rejects a Schema whose mutation or subscription type is not an Object type", func() {
			input := graphql.MustNewInputObject(&graphql.InputObjectConfig{
				Name: "SomeInputObject",
				Fields: graphql.InputFields{
					"test": {Type: graphql.String()},
				},
			})
			schema := graphql.MustNewSchema(&graphql.SchemaConfig{
				Query:        simpleQueryType(),
				Mutation:     input,
				Subscription: input,
			})

			Expect(graphql.ValidateSchema(schema)).Should(testutil.ConsistOfGraphQLErrors(
				testutil.MatchGraphQLError(testutil.MessageEqual(
					"Mutation root type must be Object type if provided but got: SomeInputObject.")),
				testutil.MatchGraphQLError(testutil.MessageEqual(
					"Subscription root type must be Object type if provided but got: SomeInputObject.")),
			))
		})
	})

	Describe("type positions", func() {
		It("rejects a field whose type is not an Output Type", func() {
			input := graphql.MustNewInputObject(&graphql.InputObjectConfig{
				Name: "SomeInputObject",
				Fields: graphql.InputFields{
					"test": {Type: graphql.String()},
				},
			})
			schema := schemaWithQueryField("f", graphql.FieldConfig{Type: input})

			Expect(graphql.ValidateSchema(schema)).Should(testutil.ConsistOfGraphQLErrors(
				testutil.MatchGraphQLError(testutil.MessageEqual(
					"Query.f field type must be Output Type but got: SomeInputObject.")),
			))
		})

		It("rejects a field without a type", func() {
			schema := schemaWithQueryField("f", graphql.FieldConfig{})

			Expect(graphql.ValidateSchema(schema)).Should(testutil.ConsistOfGraphQLErrors(
				testutil.MatchGraphQLError(testutil.MessageEqual(
					"Query.f field type must be Output Type but got: null.")),
			))
		})

		It("rejects an argument whose type is not an Input Type", func() {
			someObject := graphql.MustNewObject(&graphql.ObjectConfig{
				Name: "SomeObject",
				Fields: graphql.Fields{
					"test": {Type: graphql.String()},
				},
			})
			schema := schemaWithQueryField("f", graphql.FieldConfig{
				Type: graphql.String(),
				Args: graphql.ArgumentConfigMap{
					"arg": {Type: someObject},
				},
			})

			Expect(graphql.ValidateSchema(schema)).Should(testutil.ConsistOfGraphQLErrors(
				testutil.MatchGraphQLError(testutil.MessageEqual(
					"Query.f(arg:) argument type must be Input Type but got: SomeObject.")),
			))
		})

		It("rejects an input field whose type is not an Input Type", func() {
			someObject := graphql.MustNewObject(&graphql.ObjectConfig{
				Name: "SomeObject",
				Fields: graphql.Fields{
					"test": {Type: graphql.String()},
				},
			})
			input := graphql.MustNewInputObject(&graphql.InputObjectConfig{
				Name: "SomeInputObject",
				Fields: graphql.InputFields{
					"bad": {Type: someObject},
				},
			})
			schema := schemaWithQueryField("f", graphql.FieldConfig{
				Type: graphql.String(),
				Args: graphql.ArgumentConfigMap{
					"arg": {Type: input},
				},
			})

			Expect(graphql.ValidateSchema(schema)).Should(testutil.ConsistOfGraphQLErrors(
				testutil.MatchGraphQLError(testutil.MessageEqual(
					"SomeInputObject.bad field type must be Input Type but got: SomeObject.")),
			))
		})

		It("accepts an Output Type wrapped in List and NonNull", func() {
			schema := schemaWithQueryField("f", graphql.FieldConfig{
				Type: graphql.MustNewNonNull(graphql.MustNewList(graphql.String())),
			})
			Expect(graphql.ValidateSchema(schema).HaveOccurred()).Should(BeFalse())
		})
	})

	Describe("union membership", func() {
		It("rejects a Union member which is not an Object type", func() {
			iface := graphql.MustNewInterface(&graphql.InterfaceConfig{
				Name: "SomeInterface",
				Fields: graphql.Fields{
					"test": {Type: graphql.String()},
				},
			})
			badUnion := graphql.MustNewUnion(&graphql.UnionConfig{
				Name:  "BadUnion",
				Types: []graphql.Type{iface},
			})
			schema := schemaWithQueryField("f", graphql.FieldConfig{Type: badUnion})

			Expect(graphql.ValidateSchema(schema)).Should(testutil.ConsistOfGraphQLErrors(
				testutil.MatchGraphQLError(testutil.MessageEqual(
					"Union type BadUnion can only include Object types, it cannot include "+
						"SomeInterface.")),
			))
		})
	})

	Describe("directives", func() {
		It("rejects a nil entry in the directive set", func() {
			schema := graphql.MustNewSchema(&graphql.SchemaConfig{
				Query:      simpleQueryType(),
				Directives: graphql.DirectiveList{nil},
			})

			Expect(graphql.ValidateSchema(schema)).Should(testutil.ConsistOfGraphQLErrors(
				testutil.MatchGraphQLError(testutil.MessageEqual("Expected directive but got: null.")),
			))
		})

		It("rejects a directive argument whose type is not an Input Type", func() {
			someObject := graphql.MustNewObject(&graphql.ObjectConfig{
				Name: "SomeObject",
				Fields: graphql.Fields{
					"test": {Type: graphql.String()},
				},
			})
			directive := graphql.MustNewDirective(&graphql.DirectiveConfig{
				Name:      "bad",
				Locations: []graphql.DirectiveLocation{graphql.DirectiveLocationField},
				Args: graphql.ArgumentConfigMap{
					"arg": {Type: someObject},
				},
			})
			schema := graphql.MustNewSchema(&graphql.SchemaConfig{
				Query:      simpleQueryType(),
				Directives: graphql.DirectiveList{directive},
			})

			Expect(graphql.ValidateSchema(schema)).Should(testutil.ConsistOfGraphQLErrors(
				testutil.MatchGraphQLError(testutil.MessageEqual(
					"@bad(arg:) argument type must be Input Type but got: SomeObject.")),
			))
		})
	})

	Describe("interface conformance", func() {
		// ifaceWithField builds `interface AnInterface { f: <t> }` with the given arguments.
		ifaceWithField := func(t graphql.Type, args graphql.ArgumentConfigMap) *graphql.Interface {
			return graphql.MustNewInterface(&graphql.InterfaceConfig{
				Name: "AnInterface",
				Fields: graphql.Fields{
					"f": {Type: t, Args: args},
				},
			})
		}

		// implementingSchema builds a schema whose query root exposes an `AnObject` implementing
		// iface with the given field set.
		implementingSchema := func(iface *graphql.Interface, fields graphql.Fields) *graphql.Schema {
			object := graphql.MustNewObject(&graphql.ObjectConfig{
				Name:       "AnObject",
				Fields:     fields,
				Interfaces: []graphql.Type{iface},
			})
			return schemaWithQueryField("test", graphql.FieldConfig{Type: object})
		}

		It("accepts an Object which correctly implements an Interface", func() {
			iface := ifaceWithField(graphql.String(), graphql.ArgumentConfigMap{
				"input": {Type: graphql.String()},
			})
			schema := implementingSchema(iface, graphql.Fields{
				"f": {
					Type: graphql.String(),
					Args: graphql.ArgumentConfigMap{
						"input": {Type: graphql.String()},
					},
				},
			})
			Expect(graphql.ValidateSchema(schema).HaveOccurred()).Should(BeFalse())
		})

		It("rejects an Object missing an Interface field", func() {
			iface := ifaceWithField(graphql.String(), nil)
			schema := implementingSchema(iface, graphql.Fields{
				"g": {Type: graphql.String()},
			})

			Expect(graphql.ValidateSchema(schema)).Should(testutil.ConsistOfGraphQLErrors(
				testutil.MatchGraphQLError(testutil.MessageEqual(
					`"AnInterface" expects field "f" but "AnObject" does not provide it.`)),
			))
		})

		It("rejects an Object with an incompatibly typed Interface field", func() {
			iface := ifaceWithField(graphql.String(), nil)
			schema := implementingSchema(iface, graphql.Fields{
				"f": {Type: graphql.Int()},
			})

			Expect(graphql.ValidateSchema(schema)).Should(testutil.ConsistOfGraphQLErrors(
				testutil.MatchGraphQLError(testutil.MessageEqual(
					`AnInterface.f expects type "String" but AnObject.f is type "Int".`)),
			))
		})

		It("accepts an Object which strengthens an Interface field type to non-null", func() {
			iface := ifaceWithField(graphql.String(), nil)
			schema := implementingSchema(iface, graphql.Fields{
				"f": {Type: graphql.MustNewNonNull(graphql.String())},
			})
			Expect(graphql.ValidateSchema(schema).HaveOccurred()).Should(BeFalse())
		})

		It("accepts an Object field which narrows an abstract Interface field type", func() {
			// AnInterface.f returns AnInterface; AnObject.f returns AnObject which implements it.
			var iface *graphql.Interface
			iface = graphql.MustNewInterface(&graphql.InterfaceConfig{
				Name: "AnInterface",
				Fields: graphql.FieldsThunk(func() graphql.Fields {
					return graphql.Fields{
						"f": {Type: iface},
					}
				}),
			})

			var object *graphql.Object
			object = graphql.MustNewObject(&graphql.ObjectConfig{
				Name: "AnObject",
				Fields: graphql.FieldsThunk(func() graphql.Fields {
					return graphql.Fields{
						"f": {Type: object},
					}
				}),
				Interfaces: []graphql.Type{iface},
			})

			schema := schemaWithQueryField("test", graphql.FieldConfig{Type: object})
			Expect(graphql.ValidateSchema(schema).HaveOccurred()).Should(BeFalse())
		})

		It("rejects an Object with a differently typed Interface field argument", func() {
			iface := ifaceWithField(graphql.String(), graphql.ArgumentConfigMap{
				"input": {Type: graphql.String()},
			})
			schema := implementingSchema(iface, graphql.Fields{
				"f": {
					Type: graphql.String(),
					Args: graphql.ArgumentConfigMap{
						"input": {Type: graphql.Int()},
					},
				},
			})

			Expect(graphql.ValidateSchema(schema)).Should(testutil.ConsistOfGraphQLErrors(
				testutil.MatchGraphQLError(testutil.MessageEqual(
					`AnInterface.f(input:) expects type "String" but AnObject.f(input:) is type "Int".`)),
			))
		})

		It("rejects an Object missing an Interface field argument", func() {
			iface := ifaceWithField(graphql.String(), graphql.ArgumentConfigMap{
				"input": {Type: graphql.String()},
			})
			schema := implementingSchema(iface, graphql.Fields{
				"f": {Type: graphql.String()},
			})

			Expect(graphql.ValidateSchema(schema)).Should(testutil.ConsistOfGraphQLErrors(
				testutil.MatchGraphQLError(testutil.MessageEqual(
					`AnInterface.f(input:) expects type "String" but AnObject.f(input:) is type `+
						`"undefined".`)),
			))
		})

		It("accepts an Object field with an additional optional argument", func() {
			iface := ifaceWithField(graphql.String(), nil)
			schema := implementingSchema(iface, graphql.Fields{
				"f": {
					Type: graphql.String(),
					Args: graphql.ArgumentConfigMap{
						"extra": {Type: graphql.String()},
					},
				},
			})
			Expect(graphql.ValidateSchema(schema).HaveOccurred()).Should(BeFalse())
		})

		It("accepts an Object field with an additional defaulted non-null argument", func() {
			iface := ifaceWithField(graphql.String(), nil)
			schema := implementingSchema(iface, graphql.Fields{
				"f": {
					Type: graphql.String(),
					Args: graphql.ArgumentConfigMap{
						"extra": {
							Type:         graphql.MustNewNonNull(graphql.String()),
							DefaultValue: "value",
						},
					},
				},
			})
			Expect(graphql.ValidateSchema(schema).HaveOccurred()).Should(BeFalse())
		})

		It("rejects an Object field with an additional required argument", func() {
			iface := ifaceWithField(graphql.String(), nil)
			schema := implementingSchema(iface, graphql.Fields{
				"f": {
					Type: graphql.String(),
					Args: graphql.ArgumentConfigMap{
						"extra": {Type: graphql.MustNewNonNull(graphql.String())},
					},
				},
			})

			Expect(graphql.ValidateSchema(schema)).Should(testutil.ConsistOfGraphQLErrors(
				testutil.MatchGraphQLError(testutil.MessageEqual(
					`AnObject.f(extra:) is of required type "String!" but is not also provided by `+
						`the interface AnInterface.f.`)),
			))
		})

		It("rejects an Object claiming to implement a non-Interface type", func() {
			member := graphql.MustNewObject(&graphql.ObjectConfig{
				Name: "Member",
				Fields: graphql.Fields{
					"test": {Type: graphql.String()},
				},
			})
			someUnion := graphql.MustNewUnion(&graphql.UnionConfig{
				Name:  "SomeUnion",
				Types: []graphql.Type{member},
			})
			object := graphql.MustNewObject(&graphql.ObjectConfig{
				Name: "AnObject",
				Fields: graphql.Fields{
					"f": {Type: graphql.String()},
				},
				Interfaces: []graphql.Type{someUnion},
			})
			schema := schemaWithQueryField("test", graphql.FieldConfig{Type: object})

			Expect(graphql.ValidateSchema(schema)).Should(testutil.ConsistOfGraphQLErrors(
				testutil.MatchGraphQLError(testutil.MessageEqual(
					"AnObject must only implement Interface types, it cannot implement SomeUnion.")),
			))
		})

		It("rejects an Object declaring the same Interface twice", func() {
			iface := ifaceWithField(graphql.String(), nil)
			object := graphql.MustNewObject(&graphql.ObjectConfig{
				Name: "AnObject",
				Fields: graphql.Fields{
					"f": {Type: graphql.String()},
				},
				Interfaces: []graphql.Type{iface, iface},
			})
			schema := schemaWithQueryField("test", graphql.FieldConfig{Type: object})

			Expect(graphql.ValidateSchema(schema)).Should(testutil.ConsistOfGraphQLErrors(
				testutil.MatchGraphQLError(testutil.MessageEqual(
					"AnObject must declare it implements AnInterface only once.")),
			))
		})
	})

	It("reports the same error list when invoked twice on the same schema", func() {
		iface := graphql.MustNewInterface(&graphql.InterfaceConfig{
			Name: "AnInterface",
			Fields: graphql.Fields{
				"f": {Type: graphql.String()},
			},
		})
		object := graphql.MustNewObject(&graphql.ObjectConfig{
			Name: "AnObject",
			Fields: graphql.Fields{
				"g": {Type: graphql.Int()},
			},
			Interfaces: []graphql.Type{iface},
		})
		schema := graphql.MustNewSchema(&graphql.SchemaConfig{
			Query: object,
		})

		first := graphql.ValidateSchema(schema)
		second := graphql.ValidateSchema(schema)
		Expect(first.HaveOccurred()).Should(BeTrue())
		Expect(second).Should(Equal(first))
	})
})

var _ = Describe("AssertValidSchema", func() {
	It("returns nil for a valid schema", func() {
		schema := graphql.MustNewSchema(&graphql.SchemaConfig{
			Query: simpleQueryType(),
		})
		Expect(graphql.AssertValidSchema(schema)).ShouldNot(HaveOccurred())
	})

	It("joins all violation messages into a single error", func() {
		input := graphql.MustNewInputObject(&graphql.InputObjectConfig{
			Name: "SomeInputObject",
			Fields: graphql.InputFields{
				"test": {Type: graphql.String()},
			},
		})
		schema := graphql.MustNewSchema(&graphql.SchemaConfig{
			Mutation: input,
		})

		err := graphql.AssertValidSchema(schema)
		Expect(err).Should(HaveOccurred())
		Expect(err).Should(testutil.MatchGraphQLError(
			testutil.MessageEqual("Query root type must be provided.\n\n" +
				"Mutation root type must be Object type if provided but got: SomeInputObject."),
			testutil.KindIs(graphql.ErrKindValidation),
		))
	})
})
