// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package family

import (
	"net/netip"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	. "github.com/thediveo/success"
)

// tcpWire pairs canonical wire strings with their structured values; these
// must round-trip in both directions.
var tcpWire = []struct {
	wire string
	addr Tcp
}{
	{"tcp:5555", TcpFromPort(5555)},
	{"tcp:65535", TcpFromPort(65535)},
	{"tcp:127.0.0.1", TcpFromIP(netip.MustParseAddr("127.0.0.1"))},
	{"tcp:[::1]", TcpFromIP(netip.MustParseAddr("::1"))},
	{"tcp:127.0.0.1:5555", NewTcp(netip.MustParseAddr("127.0.0.1"), 5555)},
	{"tcp:[::1]:5555", NewTcp(netip.MustParseAddr("::1"), 5555)},
}

// tcpGarbage enumerates inputs the “tcp:” grammar must reject.
var tcpGarbage = []string{
	"",
	"tcp:",
	// incomplete addresses
	"tcp:127.0",
	"tcp:127.0:5555",
	"tcp:[]",
	"tcp:[]:5555",
	"tcp:[:]",
	"tcp:[:5555]",
	"tcp:5555:",
	// IPv6 addresses lacking their mandatory square brackets
	"tcp:::",
	"tcp:::1",
	"tcp:::1:5555",
	"tcp:ffff::1:5555",
	"tcp:1111:2222:3333:4444:5555:6666:7777:8888",
	"tcp:1111:2222:3333:4444:5555:6666:7777:8888:5555",
	// an IPv4 address posing as a bracketed IPv6 address
	"tcp:[1.2.3.4]",
	// zone identifiers aren't part of the wire grammar
	"tcp:[fe80::1%eth0]",
	"tcp:[fe80::1%eth0]:5555",
	// addresses out of range
	"tcp:256.0.0.0",
	"tcp:256.-1.0.0",
	"tcp:[gggg::]",
	"tcp:[::gggg]",
	// ports out of range
	"tcp:-1",
	"tcp:65536",
	// socket addresses out of range
	"tcp:256.0.0.0:-1",
	"tcp:256.0.0.0:5555",
	"tcp:256.0.0.0:65536",
	"tcp:256.-1.0.0:5555",
	"tcp:[gggg::]:5555",
	"tcp:[::gggg]:5555",
	// names and other non-literals
	"tcp:abcd",
	"tcp:a.b.c.d",
	"tcp:a.b.c.d:p",
}

var _ = Describe("the tcp address family", func() {

	It("formats the canonical wire strings", func() {
		for _, tt := range tcpWire {
			Expect(tt.addr.String()).To(Equal(tt.wire), tt.wire)
		}
	})

	It("parses valid wire strings", func() {
		for _, tt := range tcpWire {
			Expect(Successful(ParseTcp(tt.wire))).To(Equal(tt.addr), tt.wire)
		}
	})

	It("rejects malformed wire strings with a ParseError", func() {
		for _, garbage := range tcpGarbage {
			_, err := ParseTcp(garbage)
			Expect(err).To(HaveOccurred(), garbage)
			Expect(err).To(BeAssignableToTypeOf(&ParseError{}), garbage)
		}
	})

	It("keeps the empty sentinel asymmetric", func() {
		sentinel := Tcp{}
		Expect(sentinel.IsZero()).To(BeTrue())
		Expect(sentinel.String()).To(BeEmpty())
		Expect(ParseTcp("tcp:")).Error().To(HaveOccurred())
		Expect(ParseTcp("")).Error().To(HaveOccurred())
	})

	It("tells present fields from absent ones", func() {
		addr := Successful(ParseTcp("tcp:127.0.0.1:5555"))
		ip, ok := addr.IP()
		Expect(ok).To(BeTrue())
		Expect(ip).To(Equal(netip.MustParseAddr("127.0.0.1")))
		port, ok := addr.Port()
		Expect(ok).To(BeTrue())
		Expect(port).To(Equal(uint16(5555)))

		_, ok = TcpFromPort(5555).IP()
		Expect(ok).To(BeFalse())
		_, ok = TcpFromIP(netip.MustParseAddr("::1")).Port()
		Expect(ok).To(BeFalse())
		Expect(TcpFromPort(5555).IsZero()).To(BeFalse())
	})

	It("compares and orders structurally", func() {
		lo := netip.MustParseAddr("127.0.0.1")
		Expect(NewTcp(lo, 5555)).To(Equal(Successful(ParseTcp("tcp:127.0.0.1:5555"))))
		Expect(TcpFromPort(1).Compare(TcpFromPort(2))).To(Equal(-1))
		Expect(TcpFromPort(2).Compare(TcpFromPort(1))).To(Equal(1))
		Expect(TcpFromPort(5555).Compare(TcpFromPort(5555))).To(BeZero())
		// absent host orders before any present host...
		Expect(TcpFromPort(65535).Compare(TcpFromIP(lo))).To(Equal(-1))
		// ...and an absent port before any present port on the same host.
		Expect(TcpFromIP(lo).Compare(NewTcp(lo, 0))).To(Equal(-1))
	})

	It("serves as a map key", func() {
		seen := map[Tcp]bool{}
		seen[Successful(ParseTcp("tcp:[::1]:5555"))] = true
		Expect(seen).To(HaveKey(NewTcp(netip.MustParseAddr("::1"), 5555)))
	})

})
