// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package family

// Jdwp is a Java Debug Wire Protocol process endpoint.
//
// Wire syntax: “jdwp:<pid>”, the pid being an unsigned decimal 32 bit
// number.
type Jdwp struct {
	pid uint32
}

// NewJdwp returns the Jdwp address for the given process identifier.
func NewJdwp(pid uint32) Jdwp {
	return Jdwp{pid: pid}
}

// PID returns the process identifier.
func (j Jdwp) PID() uint32 { return j.pid }

// Tag returns "jdwp".
func (Jdwp) Tag() string { return "jdwp" }

// String returns the canonical wire representation.
func (j Jdwp) String() string { return "jdwp:" + formatUint32(j.pid) }

// Compare orders two Jdwp addresses by process identifier.
func (j Jdwp) Compare(o Jdwp) int {
	switch {
	case j.pid < o.pid:
		return -1
	case j.pid > o.pid:
		return 1
	}
	return 0
}

// ParseJdwp parses the “jdwp:” wire grammar.
func ParseJdwp(s string) (Jdwp, error) {
	rest, ok := cutTag(s, "jdwp")
	if !ok {
		return Jdwp{}, newParseError(s, "Jdwp", nil)
	}
	pid, err := parseUint32(rest, s, "Jdwp")
	if err != nil {
		return Jdwp{}, err
	}
	return NewJdwp(pid), nil
}
