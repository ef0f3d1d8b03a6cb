// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package family

import "strings"

// Dev is a character device endpoint.
//
// Wire syntax: “dev:<device path>”.
type Dev struct {
	path string
}

// NewDev returns the Dev address with the given device path.
func NewDev(path string) Dev {
	return Dev{path: path}
}

// Path returns the device path.
func (d Dev) Path() string { return d.path }

// Tag returns "dev".
func (Dev) Tag() string { return "dev" }

// String returns the canonical wire representation.
func (d Dev) String() string { return "dev:" + d.path }

// Compare orders two Dev addresses by device path.
func (d Dev) Compare(o Dev) int {
	return strings.Compare(d.path, o.path)
}

// ParseDev parses the “dev:” wire grammar.
func ParseDev(s string) (Dev, error) {
	rest, ok := cutTag(s, "dev")
	if !ok {
		return Dev{}, newParseError(s, "Dev", nil)
	}
	return NewDev(rest), nil
}

// DevRaw is a character device endpoint opened in raw mode.
//
// Wire syntax: “dev-raw:<device path>”.
//
// DevRaw satisfies the [Family] contract like any other family, yet is no
// [Address] union member: the device bridge only ever spells out raw-mode
// device endpoints explicitly, so [ParseAddress] won't produce them. This
// asymmetry is deliberate.
type DevRaw struct {
	path string
}

// NewDevRaw returns the DevRaw address with the given device path.
func NewDevRaw(path string) DevRaw {
	return DevRaw{path: path}
}

// Path returns the device path.
func (d DevRaw) Path() string { return d.path }

// Tag returns "dev-raw".
func (DevRaw) Tag() string { return "dev-raw" }

// String returns the canonical wire representation.
func (d DevRaw) String() string { return "dev-raw:" + d.path }

// Compare orders two DevRaw addresses by device path.
func (d DevRaw) Compare(o DevRaw) int {
	return strings.Compare(d.path, o.path)
}

// ParseDevRaw parses the “dev-raw:” wire grammar.
func ParseDevRaw(s string) (DevRaw, error) {
	rest, ok := cutTag(s, "dev-raw")
	if !ok {
		return DevRaw{}, newParseError(s, "DevRaw", nil)
	}
	return NewDevRaw(rest), nil
}
