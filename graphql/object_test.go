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
	"fmt"

	"github.com/selene-graphql/selene/graphql"
	"github.com/selene-graphql/selene/internal/testutil"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Object", func() {
	It("defines an object with fields, ordered by name", func() {
		object, err := graphql.NewObject(&graphql.ObjectConfig{
			Name:        "Address",
			Description: "A postal address",
			Fields: graphql.Fields{
				"street": {Type: graphql.String()},
				"city":   {Type: graphql.String()},
				"zip":    {Type: graphql.String()},
			},
		})
		Expect(err).ShouldNot(HaveOccurred())
		Expect(object.Name()).Should(Equal("Address"))
		Expect(object.Description()).Should(Equal("A postal address"))

		fields := object.Fields()
		Expect(fields).Should(HaveLen(3))
		Expect(fields[0].Name()).Should(Equal("city"))
		Expect(fields[1].Name()).Should(Equal("street"))
		Expect(fields[2].Name()).Should(Equal("zip"))
		Expect(fields.Lookup("zip").Type()).Should(Equal(graphql.String()))
		Expect(fields.Lookup("nowhere")).Should(BeNil())
	})

	It("defines field arguments, ordered by name", func() {
		object := graphql.MustNewObject(&graphql.ObjectConfig{
			Name: "Query",
			Fields: graphql.Fields{
				"search": {
					Type: graphql.String(),
					Args: graphql.ArgumentConfigMap{
						"query": {Type: graphql.MustNewNonNull(graphql.String())},
						"limit": {Type: graphql.Int(), DefaultValue: 10},
					},
				},
			},
		})

		args := object.Fields().Lookup("search").Args()
		Expect(args).Should(HaveLen(2))
		Expect(args[0].Name()).Should(Equal("limit"))
		Expect(args[0].HasDefaultValue()).Should(BeTrue())
		Expect(args[0].DefaultValue()).Should(Equal(10))
		Expect(args[1].Name()).Should(Equal("query"))
		Expect(args[1].HasDefaultValue()).Should(BeFalse())
		Expect(graphql.IsRequiredArgument(&args[1])).Should(BeTrue())
	})

	It("treats a null default value as a present default", func() {
		object := graphql.MustNewObject(&graphql.ObjectConfig{
			Name: "Query",
			Fields: graphql.Fields{
				"search": {
					Type: graphql.String(),
					Args: graphql.ArgumentConfigMap{
						"filter": {
							Type:         graphql.MustNewNonNull(graphql.String()),
							DefaultValue: graphql.NilArgumentDefaultValue,
						},
					},
				},
			},
		})

		arg := object.Fields().Lookup("search").Args()[0]
		Expect(arg.HasDefaultValue()).Should(BeTrue())
		Expect(arg.DefaultValue()).Should(BeNil())
		Expect(graphql.IsRequiredArgument(&arg)).Should(BeFalse())
	})

	It("resolves a fields thunk exactly once", func() {
		invocations := 0
		object := graphql.MustNewObject(&graphql.ObjectConfig{
			Name: "Lazy",
			Fields: graphql.FieldsThunk(func() graphql.Fields {
				invocations++
				return graphql.Fields{
					"value": {Type: graphql.Int()},
				}
			}),
		})

		Expect(invocations).Should(Equal(0))
		Expect(object.Fields()).Should(HaveLen(1))
		Expect(object.Fields()).Should(HaveLen(1))
		Expect(invocations).Should(Equal(1))
	})

	It("supports mutually recursive types through thunks", func() {
		var blog, author *graphql.Object
		blog = graphql.MustNewObject(&graphql.ObjectConfig{
			Name: "Blog",
			Fields: graphql.FieldsThunk(func() graphql.Fields {
				return graphql.Fields{
					"author": {Type: author},
				}
			}),
		})
		author = graphql.MustNewObject(&graphql.ObjectConfig{
			Name: "Author",
			Fields: graphql.FieldsThunk(func() graphql.Fields {
				return graphql.Fields{
					"blog": {Type: blog},
				}
			}),
		})

		Expect(blog.Fields().Lookup("author").Type()).Should(Equal(author))
		Expect(author.Fields().Lookup("blog").Type()).Should(Equal(blog))
	})

	It("stringifies to type name", func() {
		object := graphql.MustNewObject(&graphql.ObjectConfig{
			Name: "Thing",
			Fields: graphql.Fields{
				"id": {Type: graphql.ID()},
			},
		})
		Expect(fmt.Sprintf("%s", object)).Should(Equal("Thing"))
		Expect(fmt.Sprintf("%v", object)).Should(Equal("Thing"))
	})

	It("rejects creating type without name", func() {
		_, err := graphql.NewObject(&graphql.ObjectConfig{})
		Expect(err).Should(testutil.MatchGraphQLError(
			testutil.MessageEqual("Must provide name for Object."),
			testutil.KindIs(graphql.ErrKindConfig),
		))

		Expect(func() {
			graphql.MustNewObject(&graphql.ObjectConfig{})
		}).Should(Panic())
	})

	It("rejects an invalid type name", func() {
		_, err := graphql.NewObject(&graphql.ObjectConfig{
			Name: "not-a-name",
			Fields: graphql.Fields{
				"test": {Type: graphql.String()},
			},
		})
		Expect(err).Should(testutil.MatchGraphQLError(
			testutil.MessageEqual(`Names must match /^[_a-zA-Z][_a-zA-Z0-9]*$/ but "not-a-name" ` +
				`does not.`),
		))
	})

	It("rejects an invalid field name", func() {
		_, err := graphql.NewObject(&graphql.ObjectConfig{
			Name: "SomeObject",
			Fields: graphql.Fields{
				"bad name": {Type: graphql.String()},
			},
		})
		Expect(err).Should(testutil.MatchGraphQLError(
			testutil.MessageEqual(`Names must match /^[_a-zA-Z][_a-zA-Z0-9]*$/ but "bad name" ` +
				`does not.`),
		))
	})

	It("rejects a fields configuration which is neither a map nor a thunk", func() {
		_, err := graphql.NewObject(&graphql.ObjectConfig{
			Name:   "SomeObject",
			Fields: "not a field map",
		})
		Expect(err).Should(testutil.MatchGraphQLError(
			testutil.MessageEqual("SomeObject fields must be an object with field names as keys "+
				"or a function which returns such an object."),
			testutil.KindIs(graphql.ErrKindConfig),
		))
	})

	It("rejects an empty fields configuration", func() {
		_, err := graphql.NewObject(&graphql.ObjectConfig{
			Name:   "SomeObject",
			Fields: graphql.Fields{},
		})
		Expect(err).Should(testutil.MatchGraphQLError(
			testutil.MessageEqual("SomeObject fields must be an object with field names as keys " +
				"or a function which returns such an object."),
		))
	})

	It("rejects an interfaces configuration which is neither an array nor a thunk", func() {
		_, err := graphql.NewObject(&graphql.ObjectConfig{
			Name: "SomeObject",
			Fields: graphql.Fields{
				"test": {Type: graphql.String()},
			},
			Interfaces: "not an interface list",
		})
		Expect(err).Should(testutil.MatchGraphQLError(
			testutil.MessageEqual("SomeObject interfaces must be an Array or a function which " +
				"returns an Array."),
		))
	})

	It("accepts an interfaces thunk", func() {
		iface := graphql.MustNewInterface(&graphql.InterfaceConfig{
			Name: "Named",
			Fields: graphql.Fields{
				"name": {Type: graphql.String()},
			},
		})
		object := graphql.MustNewObject(&graphql.ObjectConfig{
			Name: "SomeObject",
			Fields: graphql.Fields{
				"name": {Type: graphql.String()},
			},
			Interfaces: graphql.InterfacesThunk(func() []graphql.Type {
				return []graphql.Type{iface}
			}),
		})

		Expect(object.Interfaces()).Should(Equal([]graphql.Type{iface}))
	})

	It("fills in the default deprecation reason", func() {
		object := graphql.MustNewObject(&graphql.ObjectConfig{
			Name: "SomeObject",
			Fields: graphql.Fields{
				"old": {
					Type:        graphql.String(),
					Deprecation: &graphql.Deprecation{},
				},
				"current": {Type: graphql.String()},
			},
		})

		old := object.Fields().Lookup("old")
		Expect(old.Deprecation().Defined()).Should(BeTrue())
		Expect(old.Deprecation().Reason).Should(Equal(graphql.DefaultDeprecationReason))
		Expect(object.Fields().Lookup("current").Deprecation().Defined()).Should(BeFalse())
	})

	Describe("reserved names", func() {
		var warnings []graphql.NameWarning
		var prevHandler graphql.NameWarningHandler

		BeforeEach(func() {
			warnings = nil
			prevHandler = graphql.SetNameWarningHandler(func(warning graphql.NameWarning) {
				warnings = append(warnings, warning)
			})
		})

		AfterEach(func() {
			graphql.SetNameWarningHandler(prevHandler)
		})

		It("warns on a name reserved for introspection without rejecting it", func() {
			object, err := graphql.NewObject(&graphql.ObjectConfig{
				Name: "SomeObject",
				Fields: graphql.Fields{
					"__badField": {Type: graphql.String()},
				},
			})
			Expect(err).ShouldNot(HaveOccurred())
			Expect(object.Fields().Lookup("__badField")).ShouldNot(BeNil())

			Expect(warnings).Should(HaveLen(1))
			Expect(warnings[0].Name).Should(Equal("__badField"))
			Expect(warnings[0].Message).Should(Equal(`Name "__badField" must not begin with ` +
				`"__", which is reserved by GraphQL introspection.`))
		})

		It("does not warn on allowlisted introspection names", func() {
			_, err := graphql.NewObject(&graphql.ObjectConfig{
				Name: "__Type",
				Fields: graphql.Fields{
					"name": {Type: graphql.String()},
				},
			})
			Expect(err).ShouldNot(HaveOccurred())
			Expect(warnings).Should(BeEmpty())
		})
	})
})
