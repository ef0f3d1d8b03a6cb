// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package family

import (
	"net/netip"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	. "github.com/thediveo/success"
)

var _ = Describe("the address union", func() {

	addresses := []Address{
		NewTcp(netip.MustParseAddr("127.0.0.1"), 5555),
		TcpFromIP(netip.MustParseAddr("::1")),
		TcpFromPort(5555),
		NewLocalAbstract("socket"),
		NewLocalReserved("socket"),
		NewLocalFileSystem("/path/to/socket"),
		NewDev("/dev/tty"),
		NewJdwp(1234),
		NewVsock(1, 2),
		NewAcceptFd(1),
	}

	It("round-trips every member family", func() {
		for _, addr := range addresses {
			Expect(Successful(ParseAddress(addr.String()))).To(Equal(addr), addr.String())
		}
	})

	It("dispatches exclusively on the family tag", func() {
		for _, addr := range addresses {
			parsed := Successful(ParseAddress(addr.String()))
			Expect(parsed.Tag()).To(Equal(addr.Tag()), addr.String())
			Expect(addr.String()).To(HavePrefix(parsed.Tag()+":"), addr.String())
		}
	})

	It("won't dig up raw-mode device endpoints", func() {
		_, err := ParseAddress("dev-raw:/dev/tty")
		Expect(err).To(HaveOccurred())
	})

	It("reports union failures in its own name, without member noise", func() {
		_, err := ParseAddress("warp:9")
		Expect(err).To(HaveOccurred())
		parseErr := err.(*ParseError)
		Expect(parseErr.TargetType).To(Equal("Address"))
		Expect(parseErr.Cause).To(BeNil())
	})

	It("maps the well-known wire examples end to end", func() {
		for _, tt := range []struct {
			wire string
			addr Address
		}{
			{"vsock:1:2", NewVsock(1, 2)},
			{"jdwp:1234", NewJdwp(1234)},
			{"localabstract:socket", NewLocalAbstract("socket")},
			{"tcp:127.0.0.1:5555", NewTcp(netip.MustParseAddr("127.0.0.1"), 5555)},
			{"acceptfd:1", NewAcceptFd(1)},
			{"localfilesystem:/x", NewLocalFileSystem("/x")},
			{"localreserved:backdoor", NewLocalReserved("backdoor")},
			{"dev:/dev/bus/usb/001", NewDev("/dev/bus/usb/001")},
		} {
			parsed := Successful(ParseAddress(tt.wire))
			Expect(parsed).To(Equal(tt.addr), tt.wire)
			Expect(parsed.String()).To(Equal(tt.wire), tt.wire)
		}
	})

	It("never confuses the string-ish families despite shared prefixes", func() {
		// "localabstract" and "localreserved" share "local", "dev" prefixes
		// "dev-raw"; make sure the tag match is exact up to the colon.
		Expect(Successful(ParseAddress("localabstract:x")).Tag()).To(Equal("localabstract"))
		Expect(Successful(ParseAddress("dev:-raw-ish")).Tag()).To(Equal("dev"))
		Expect(strings.HasPrefix("dev-raw:/dev/tty", "dev:")).To(BeFalse())
	})

})
