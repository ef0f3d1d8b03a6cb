// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package dig

import (
	"net/netip"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("endpoint shorthands", func() {

	It("splits host and optional port", func() {
		host, port, haveport, err := splitShorthand("device-farm:5555")
		Expect(err).NotTo(HaveOccurred())
		Expect(host).To(Equal("device-farm"))
		Expect(port).To(Equal(uint16(5555)))
		Expect(haveport).To(BeTrue())

		host, _, haveport, err = splitShorthand("device-farm")
		Expect(err).NotTo(HaveOccurred())
		Expect(host).To(Equal("device-farm"))
		Expect(haveport).To(BeFalse())

		host, port, haveport, err = splitShorthand("[::1]:5555")
		Expect(err).NotTo(HaveOccurred())
		Expect(host).To(Equal("::1"))
		Expect(port).To(Equal(uint16(5555)))
		Expect(haveport).To(BeTrue())
	})

	It("rejects undecodable ports and empty specs", func() {
		_, _, _, err := splitShorthand("device-farm:port")
		Expect(err).To(MatchError(ContainSubstring("invalid port")))
		_, _, _, err = splitShorthand("device-farm:65536")
		Expect(err).To(MatchError(ContainSubstring("invalid port")))
		_, _, _, err = splitShorthand("")
		Expect(err).To(HaveOccurred())
	})

	It("orders IPv4 addresses before IPv6, otherwise stable", func() {
		Expect(v4First([]netip.Addr{
			netip.MustParseAddr("::1"),
			netip.MustParseAddr("127.0.0.1"),
			netip.MustParseAddr("fe80::1"),
			netip.MustParseAddr("192.0.2.1"),
		})).To(Equal([]netip.Addr{
			netip.MustParseAddr("127.0.0.1"),
			netip.MustParseAddr("192.0.2.1"),
			netip.MustParseAddr("::1"),
			netip.MustParseAddr("fe80::1"),
		}))
	})

	It("renders canonical tcp addresses for dug-up IPs", func() {
		Expect(tcpEndpoint(netip.MustParseAddr("192.0.2.1"), 5555, true)).
			To(Equal("tcp:192.0.2.1:5555"))
		Expect(tcpEndpoint(netip.MustParseAddr("::1"), 0, false)).
			To(Equal("tcp:[::1]"))
	})

})
