// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package family

import (
	"fmt"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	. "github.com/thediveo/success"
)

// one beyond the largest acceptable 32 bit field value.
const overflow = uint64(1) << 32

var _ = Describe("the jdwp address family", func() {

	It("round-trips", func() {
		jdwp := NewJdwp(1234)
		Expect(jdwp.String()).To(Equal("jdwp:1234"))
		Expect(Successful(ParseJdwp("jdwp:1234"))).To(Equal(jdwp))
		Expect(jdwp.PID()).To(Equal(uint32(1234)))
	})

	It("accepts the full 32 bit range, but nothing beyond", func() {
		Expect(Successful(ParseJdwp("jdwp:4294967295"))).To(Equal(NewJdwp(4294967295)))
		for _, garbage := range []string{
			"jdwp",
			"jdwp:",
			"jdwp:-1",
			fmt.Sprintf("jdwp:%d", overflow),
		} {
			Expect(ParseJdwp(garbage)).Error().To(HaveOccurred(), garbage)
		}
	})

	It("orders by pid", func() {
		Expect(NewJdwp(1).Compare(NewJdwp(2))).To(Equal(-1))
		Expect(NewJdwp(2).Compare(NewJdwp(2))).To(BeZero())
	})

})
