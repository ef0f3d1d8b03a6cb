// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package family

import (
	"context"
	"net"
	"strconv"
)

// Resolver hook; tests redirect this to avoid asking the platform resolver
// for trouble.
var lookupNetIP = net.DefaultResolver.LookupNetIP

// TcpFromHost returns the [Tcp] address for a “host[:port]” endpoint,
// resolving the hostname through the platform resolver where necessary. A
// full “tcp:” address literal is also accepted and then short-circuits
// without any resolver round trip.
//
// When the resolver offers addresses of both IP families, the first IPv4
// address wins; otherwise the resolver's first offer is taken as-is.
//
// Resolution blocks the caller for as long as the platform resolver
// pleases. Use [ParseTcp] where only the pure, non-blocking literal grammar
// is wanted, or [TcpFromHostContext] to bound the waiting time.
func TcpFromHost(host string) (Tcp, error) {
	return TcpFromHostContext(context.Background(), host)
}

// TcpFromHostContext works like [TcpFromHost], but aborts resolution as
// soon as the passed context gets cancelled or reaches its deadline.
func TcpFromHostContext(ctx context.Context, host string) (Tcp, error) {
	if tcp, err := ParseTcp(host); err == nil {
		return tcp, nil
	}
	tcp, err := resolveHostPort(ctx, host)
	if err == nil {
		return tcp, nil
	}
	// The resolver contract insists on a host:port pair. If the port was
	// missing, retry with a synthetic zero port and discard that port again
	// on success; if the retry fails too, the original error stands.
	if tcp, retryErr := resolveHostPort(ctx, host+":0"); retryErr == nil {
		ip, _ := tcp.IP()
		return TcpFromIP(ip), nil
	}
	return Tcp{}, err
}

// resolveHostPort resolves a “host:port” endpoint into a Tcp address,
// preferring IPv4 addresses. The port must be a decimal 16 bit number;
// service names and an empty port (which the platform resolver would
// happily take for port 0) don't belong to the endpoint grammar. Decoding
// and resolver failures are wrapped as the ParseError cause.
func resolveHostPort(ctx context.Context, hostport string) (Tcp, error) {
	host, portname, err := net.SplitHostPort(hostport)
	if err != nil {
		return Tcp{}, newParseError(hostport, "Tcp", err)
	}
	port, err := strconv.ParseUint(portname, 10, 16)
	if err != nil {
		return Tcp{}, newParseError(hostport, "Tcp", err)
	}
	ips, err := lookupNetIP(ctx, "ip", host)
	if err != nil {
		return Tcp{}, newParseError(hostport, "Tcp", err)
	}
	if len(ips) == 0 {
		return Tcp{}, newParseError(hostport, "Tcp", nil)
	}
	ip := ips[0].Unmap()
	for _, candidate := range ips {
		if candidate := candidate.Unmap(); candidate.Is4() {
			ip = candidate
			break
		}
	}
	return NewTcp(ip, uint16(port)), nil
}
