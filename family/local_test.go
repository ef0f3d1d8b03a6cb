// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package family

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	. "github.com/thediveo/success"
)

var _ = Describe("the local socket address families", func() {

	It("round-trips abstract namespace sockets", func() {
		la := NewLocalAbstract("socket")
		Expect(la.String()).To(Equal("localabstract:socket"))
		Expect(Successful(ParseLocalAbstract("localabstract:socket"))).To(Equal(la))
		Expect(la.Name()).To(Equal("socket"))
		Expect(la.Tag()).To(Equal("localabstract"))
	})

	It("round-trips reserved namespace sockets", func() {
		lr := NewLocalReserved("socket")
		Expect(lr.String()).To(Equal("localreserved:socket"))
		Expect(Successful(ParseLocalReserved("localreserved:socket"))).To(Equal(lr))
		Expect(lr.Tag()).To(Equal("localreserved"))
	})

	It("round-trips file system sockets", func() {
		lfs := NewLocalFileSystem("/path/to/socket")
		Expect(lfs.String()).To(Equal("localfilesystem:/path/to/socket"))
		Expect(Successful(ParseLocalFileSystem("localfilesystem:/path/to/socket"))).To(Equal(lfs))
		Expect(lfs.Path()).To(Equal("/path/to/socket"))
	})

	It("accepts empty names verbatim", func() {
		Expect(Successful(ParseLocalAbstract("localabstract:"))).To(Equal(NewLocalAbstract("")))
		Expect(NewLocalAbstract("").String()).To(Equal("localabstract:"))
	})

	It("insists on the family tag", func() {
		Expect(ParseLocalAbstract("localreserved:socket")).Error().To(HaveOccurred())
		Expect(ParseLocalReserved("localabstract:socket")).Error().To(HaveOccurred())
		Expect(ParseLocalFileSystem("localfilesystem")).Error().To(HaveOccurred())
	})

	It("orders by name", func() {
		Expect(NewLocalAbstract("a").Compare(NewLocalAbstract("b"))).To(Equal(-1))
		Expect(NewLocalFileSystem("/z").Compare(NewLocalFileSystem("/a"))).To(Equal(1))
	})

})
