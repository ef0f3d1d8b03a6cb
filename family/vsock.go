// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package family

import "strings"

// Vsock is a VSOCK endpoint, addressing a context (hypervisor, host, or a
// specific VM) plus a port within that context.
//
// Wire syntax: “vsock:<cid>:<port>”, both fields unsigned decimal 32 bit
// numbers and both mandatory.
type Vsock struct {
	cid  uint32
	port uint32
}

// NewVsock returns the Vsock address with the given context identifier and
// port.
func NewVsock(cid uint32, port uint32) Vsock {
	return Vsock{cid: cid, port: port}
}

// CID returns the context identifier.
func (v Vsock) CID() uint32 { return v.cid }

// Port returns the port within the context.
func (v Vsock) Port() uint32 { return v.port }

// Tag returns "vsock".
func (Vsock) Tag() string { return "vsock" }

// String returns the canonical wire representation.
func (v Vsock) String() string {
	return "vsock:" + formatUint32(v.cid) + ":" + formatUint32(v.port)
}

// Compare orders two Vsock addresses first by context identifier, then by
// port.
func (v Vsock) Compare(o Vsock) int {
	switch {
	case v.cid < o.cid:
		return -1
	case v.cid > o.cid:
		return 1
	case v.port < o.port:
		return -1
	case v.port > o.port:
		return 1
	}
	return 0
}

// ParseVsock parses the “vsock:” wire grammar. The remainder is split once
// on the first colon; a missing separator fails the parse.
func ParseVsock(s string) (Vsock, error) {
	rest, ok := cutTag(s, "vsock")
	if !ok {
		return Vsock{}, newParseError(s, "Vsock", nil)
	}
	cidField, portField, ok := strings.Cut(rest, ":")
	if !ok {
		return Vsock{}, newParseError(s, "Vsock", nil)
	}
	cid, err := parseUint32(cidField, s, "Vsock")
	if err != nil {
		return Vsock{}, err
	}
	port, err := parseUint32(portField, s, "Vsock")
	if err != nil {
		return Vsock{}, err
	}
	return NewVsock(cid, port), nil
}
