// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package dig

import (
	"errors"
	"fmt"
	"net"
	"net/netip"
	"strconv"

	"github.com/siemens/adbdig/family"
)

// splitShorthand splits a “host[:port]” endpoint shorthand into its host
// and optional port. A shorthand without a recognizable “:port” suffix is
// taken to be all host; a recognizable but undecodable port is an error,
// and so is an empty shorthand.
func splitShorthand(spec string) (host string, port uint16, haveport bool, err error) {
	if host, portname, err := net.SplitHostPort(spec); err == nil {
		port, err := strconv.ParseUint(portname, 10, 16)
		if err != nil {
			return "", 0, false, fmt.Errorf("invalid port in endpoint %q: %w", spec, err)
		}
		return host, uint16(port), true, nil
	}
	if spec == "" {
		return "", 0, false, errors.New("empty endpoint spec")
	}
	return spec, 0, false, nil
}

// v4First reorders resolved addresses so that IPv4 addresses come first,
// preserving the resolver's order within each IP family: consumers of dug
// addresses prefer IPv4, as does the tcp hostname resolution.
func v4First(addrs []netip.Addr) []netip.Addr {
	ordered := make([]netip.Addr, 0, len(addrs))
	for _, addr := range addrs {
		if addr.Unmap().Is4() {
			ordered = append(ordered, addr)
		}
	}
	for _, addr := range addrs {
		if !addr.Unmap().Is4() {
			ordered = append(ordered, addr)
		}
	}
	return ordered
}

// tcpEndpoint renders the canonical “tcp:” wire address for a resolved IP
// address plus the shorthand's optional port.
func tcpEndpoint(ip netip.Addr, port uint16, haveport bool) string {
	if !haveport {
		return family.TcpFromIP(ip).String()
	}
	return family.NewTcp(ip, port).String()
}
