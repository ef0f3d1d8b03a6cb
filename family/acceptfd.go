// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package family

// AcceptFd is an endpoint backed by an already accepted socket file
// descriptor, handed over by the caller.
//
// Wire syntax: “acceptfd:<fd>”, the fd being an unsigned decimal 32 bit
// number.
type AcceptFd struct {
	fd uint32
}

// NewAcceptFd returns the AcceptFd address for the given file descriptor.
func NewAcceptFd(fd uint32) AcceptFd {
	return AcceptFd{fd: fd}
}

// FD returns the file descriptor.
func (a AcceptFd) FD() uint32 { return a.fd }

// Tag returns "acceptfd".
func (AcceptFd) Tag() string { return "acceptfd" }

// String returns the canonical wire representation.
func (a AcceptFd) String() string { return "acceptfd:" + formatUint32(a.fd) }

// Compare orders two AcceptFd addresses by file descriptor.
func (a AcceptFd) Compare(o AcceptFd) int {
	switch {
	case a.fd < o.fd:
		return -1
	case a.fd > o.fd:
		return 1
	}
	return 0
}

// ParseAcceptFd parses the “acceptfd:” wire grammar.
func ParseAcceptFd(s string) (AcceptFd, error) {
	rest, ok := cutTag(s, "acceptfd")
	if !ok {
		return AcceptFd{}, newParseError(s, "AcceptFd", nil)
	}
	fd, err := parseUint32(rest, s, "AcceptFd")
	if err != nil {
		return AcceptFd{}, err
	}
	return NewAcceptFd(fd), nil
}
