// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package types

import "fmt"

// Quality indicates how far an endpoint spec has made it through digging
// and vetting: from merely known, through in-flight resolution, to a
// terminal valid or invalid verdict.
type Quality int

// The qualities of a device-bridge endpoint spec, ordered so that a later
// stage always compares greater than an earlier one.
const (
	Unresolved Quality = iota // spec known, canonical address not yet established.
	Resolving                 // hostname resolution or vetting in flight.
	Invalid                   // spec neither parses nor resolves into a canonical address.
	Valid                     // canonical wire address established and vetted.
)

// String returns the clear-text representation of a Quality value.
func (q Quality) String() string {
	switch q {
	case Unresolved:
		return "unresolved"
	case Resolving:
		return "resolving"
	case Invalid:
		return "invalid"
	case Valid:
		return "valid"
	}
	return fmt.Sprintf("Quality(%d)", q)
}

// IsPending returns true as long as an endpoint hasn't reached a terminal
// valid or invalid verdict.
func (q Quality) IsPending() bool {
	switch q {
	case Unresolved, Resolving:
		return true
	default:
		return false
	}
}
