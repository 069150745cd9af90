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

var _ = Describe("List", func() {
	It("wraps another type", func() {
		list, err := graphql.NewList(graphql.String())
		Expect(err).ShouldNot(HaveOccurred())
		Expect(list.ElementType()).Should(Equal(graphql.String()))
		Expect(list.UnwrappedType()).Should(Equal(graphql.String()))
		Expect(list.String()).Should(Equal("[String]"))
	})

	It("nests with itself and NonNull", func() {
		nested := graphql.MustNewList(graphql.MustNewNonNull(graphql.MustNewList(graphql.Int())))
		Expect(nested.String()).Should(Equal("[[Int]!]"))
	})

	It("rejects a nil element type", func() {
		_, err := graphql.NewList(nil)
		Expect(err).Should(testutil.MatchGraphQLError(
			testutil.MessageEqual("Can only create List of a Type but got: null."),
			testutil.KindIs(graphql.ErrKindConfig),
		))

		Expect(func() {
			graphql.MustNewList((*graphql.Object)(nil))
		}).Should(Panic())
	})
})
