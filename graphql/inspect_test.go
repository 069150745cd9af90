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
	"io"

	"github.com/selene-graphql/selene/graphql"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

type customInspectValue struct{}

func (customInspectValue) Inspect(out io.Writer) error {
	_, err := io.WriteString(out, "<custom>")
	return err
}

var _ = Describe("Inspect", func() {
	It("prints nil as null", func() {
		Expect(graphql.Inspect(nil)).Should(Equal("null"))
	})

	It("prints a type by its notation", func() {
		Expect(graphql.Inspect(graphql.String())).Should(Equal("String"))
		Expect(graphql.Inspect(
			graphql.MustNewNonNull(graphql.MustNewList(graphql.Int())),
		)).Should(Equal("[Int]!"))
	})

	It("prints a nil type instance as null", func() {
		Expect(graphql.Inspect((*graphql.Object)(nil))).Should(Equal("null"))
	})

	It("quotes strings like JSON", func() {
		Expect(graphql.Inspect("hello")).Should(Equal(`"hello"`))
	})

	It("prints numbers and booleans plainly", func() {
		Expect(graphql.Inspect(42)).Should(Equal("42"))
		Expect(graphql.Inspect(1.5)).Should(Equal("1.5"))
		Expect(graphql.Inspect(true)).Should(Equal("true"))
	})

	It("prints slices with brackets", func() {
		Expect(graphql.Inspect([]interface{}{1, "two", nil})).Should(Equal(`[1, "two", null]`))
		Expect(graphql.Inspect([]int{})).Should(Equal("[]"))
	})

	It("prints empty maps and structs as {}", func() {
		Expect(graphql.Inspect(map[string]int{})).Should(Equal("{}"))
		Expect(graphql.Inspect(struct{}{})).Should(Equal("{}"))
	})

	It("honors a custom inspect implementation", func() {
		Expect(graphql.Inspect(customInspectValue{})).Should(Equal("<custom>"))
	})
})
