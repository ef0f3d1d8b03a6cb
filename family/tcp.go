// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package family

import (
	"net/netip"
	"strconv"
	"strings"
)

// Tcp is a TCP socket endpoint address, IPv4 or IPv6.
//
// Wire syntax: “tcp:[host[:port]]”, with at least one of host and port
// present after the tag. IPv6 host literals must be enclosed in square
// brackets; bare IPv6 text is rejected even where it would be unambiguous,
// as the grammar decides on the first colon-delimited token. Hostnames are
// not part of the grammar at all, see [TcpFromHost].
//
// The Tcp value with neither host nor port is the canonical “empty”
// sentinel: it can be constructed (the zero Tcp), it formats to an empty
// string, but it never results from parsing – “tcp:” and “” both fail.
type Tcp struct {
	ip      netip.Addr // zero Addr when no host is present.
	port    uint16
	hasPort bool
}

// NewTcp returns the Tcp address with the given IP address and port. An
// invalid (zero) netip.Addr counts as “no host present”.
func NewTcp(ip netip.Addr, port uint16) Tcp {
	return Tcp{ip: ip, port: port, hasPort: true}
}

// TcpFromIP returns the host-only Tcp address with the given IP address.
func TcpFromIP(ip netip.Addr) Tcp {
	return Tcp{ip: ip}
}

// TcpFromPort returns the port-only Tcp address with the given port.
func TcpFromPort(port uint16) Tcp {
	return Tcp{port: port, hasPort: true}
}

// TcpFromAddrPort returns the Tcp address for a combined netip address+port
// value.
func TcpFromAddrPort(ap netip.AddrPort) Tcp {
	return NewTcp(ap.Addr(), ap.Port())
}

// IP returns the host IP address and whether a host is present at all.
func (t Tcp) IP() (netip.Addr, bool) {
	return t.ip, t.ip.IsValid()
}

// Port returns the port and whether a port is present at all.
func (t Tcp) Port() (uint16, bool) {
	return t.port, t.hasPort
}

// IsZero reports whether this is the empty sentinel with neither host nor
// port present.
func (t Tcp) IsZero() bool {
	return !t.ip.IsValid() && !t.hasPort
}

// Tag returns "tcp".
func (Tcp) Tag() string { return "tcp" }

// String returns the canonical wire representation: “tcp:1.2.3.4:5555”,
// “tcp:[::1]:5555”, “tcp:1.2.3.4”, “tcp:[::1]”, or “tcp:5555”. The empty
// sentinel formats to an empty string instead – the sole, documented
// exception to the non-empty wire format rule.
func (t Tcp) String() string {
	switch {
	case t.ip.IsValid() && t.hasPort:
		return "tcp:" + netip.AddrPortFrom(t.ip, t.port).String()
	case t.ip.IsValid():
		if t.ip.Is4() {
			return "tcp:" + t.ip.String()
		}
		return "tcp:[" + t.ip.String() + "]"
	case t.hasPort:
		return "tcp:" + strconv.FormatUint(uint64(t.port), 10)
	}
	return ""
}

// Compare orders two Tcp addresses structurally: first by host (absent
// before present, then netip ordering), then by port (absent before
// present). It returns -1, 0, or +1.
func (t Tcp) Compare(o Tcp) int {
	if c := t.ip.Compare(o.ip); c != 0 {
		return c
	}
	if t.hasPort != o.hasPort {
		if !t.hasPort {
			return -1
		}
		return 1
	}
	switch {
	case t.port < o.port:
		return -1
	case t.port > o.port:
		return 1
	}
	return 0
}

// ParseTcp parses the “tcp:” wire grammar. The remainder after the tag is
// tried in strict order: bare port number, then host:port socket address,
// then bare IPv4 address, then bracketed IPv6 address. Anything else fails,
// including an empty remainder.
func ParseTcp(s string) (Tcp, error) {
	rest, ok := cutTag(s, "tcp")
	if !ok || rest == "" {
		return Tcp{}, newParseError(s, "Tcp", nil)
	}
	if port, err := strconv.ParseUint(rest, 10, 16); err == nil {
		return TcpFromPort(uint16(port)), nil
	}
	if ap, err := netip.ParseAddrPort(rest); err == nil && ap.Addr().Zone() == "" {
		return TcpFromAddrPort(ap), nil
	}
	if ip, err := netip.ParseAddr(rest); err == nil && ip.Is4() {
		return TcpFromIP(ip), nil
	}
	inner, ok := strings.CutPrefix(rest, "[")
	if ok {
		inner, ok = strings.CutSuffix(inner, "]")
	}
	if !ok {
		return Tcp{}, newParseError(rest, "netip.Addr", nil)
	}
	// netip accepts zone identifiers, the wire grammar doesn't.
	ip, err := netip.ParseAddr(inner)
	if err != nil || !ip.Is6() || ip.Zone() != "" {
		return Tcp{}, newParseError(inner, "netip.Addr", err)
	}
	return TcpFromIP(ip), nil
}
