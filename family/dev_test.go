// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package family

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	. "github.com/thediveo/success"
)

var _ = Describe("the character device address families", func() {

	It("round-trips dev endpoints", func() {
		dev := NewDev("/dev/tty")
		Expect(dev.String()).To(Equal("dev:/dev/tty"))
		Expect(Successful(ParseDev("dev:/dev/tty"))).To(Equal(dev))
		Expect(dev.Path()).To(Equal("/dev/tty"))
		Expect(dev.Tag()).To(Equal("dev"))
	})

	It("round-trips raw-mode dev endpoints", func() {
		devraw := NewDevRaw("/dev/tty")
		Expect(devraw.String()).To(Equal("dev-raw:/dev/tty"))
		Expect(Successful(ParseDevRaw("dev-raw:/dev/tty"))).To(Equal(devraw))
		Expect(devraw.Tag()).To(Equal("dev-raw"))
	})

	It("keeps dev and dev-raw strictly apart", func() {
		Expect(ParseDev("dev-raw:/dev/tty")).Error().To(HaveOccurred())
		Expect(ParseDevRaw("dev:/dev/tty")).Error().To(HaveOccurred())
	})

})
