// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package family

import "strings"

// LocalAbstract is a Unix domain socket endpoint in the abstract namespace.
//
// Wire syntax: “localabstract:<socket name>”. The name is taken verbatim,
// an empty name included.
type LocalAbstract struct {
	name string
}

// NewLocalAbstract returns the LocalAbstract address with the given socket
// name.
func NewLocalAbstract(name string) LocalAbstract {
	return LocalAbstract{name: name}
}

// Name returns the abstract namespace socket name.
func (l LocalAbstract) Name() string { return l.name }

// Tag returns "localabstract".
func (LocalAbstract) Tag() string { return "localabstract" }

// String returns the canonical wire representation.
func (l LocalAbstract) String() string { return "localabstract:" + l.name }

// Compare orders two LocalAbstract addresses by socket name.
func (l LocalAbstract) Compare(o LocalAbstract) int {
	return strings.Compare(l.name, o.name)
}

// ParseLocalAbstract parses the “localabstract:” wire grammar.
func ParseLocalAbstract(s string) (LocalAbstract, error) {
	rest, ok := cutTag(s, "localabstract")
	if !ok {
		return LocalAbstract{}, newParseError(s, "LocalAbstract", nil)
	}
	return NewLocalAbstract(rest), nil
}

// LocalReserved is a Unix domain socket endpoint in the reserved namespace.
//
// Wire syntax: “localreserved:<socket name>”.
type LocalReserved struct {
	name string
}

// NewLocalReserved returns the LocalReserved address with the given socket
// name.
func NewLocalReserved(name string) LocalReserved {
	return LocalReserved{name: name}
}

// Name returns the reserved namespace socket name.
func (l LocalReserved) Name() string { return l.name }

// Tag returns "localreserved".
func (LocalReserved) Tag() string { return "localreserved" }

// String returns the canonical wire representation.
func (l LocalReserved) String() string { return "localreserved:" + l.name }

// Compare orders two LocalReserved addresses by socket name.
func (l LocalReserved) Compare(o LocalReserved) int {
	return strings.Compare(l.name, o.name)
}

// ParseLocalReserved parses the “localreserved:” wire grammar.
func ParseLocalReserved(s string) (LocalReserved, error) {
	rest, ok := cutTag(s, "localreserved")
	if !ok {
		return LocalReserved{}, newParseError(s, "LocalReserved", nil)
	}
	return NewLocalReserved(rest), nil
}

// LocalFileSystem is a Unix domain socket endpoint bound in the file
// system.
//
// Wire syntax: “localfilesystem:<socket path>”. The path travels verbatim
// in its display form; this package doesn't clean, resolve, or otherwise
// interpret it.
type LocalFileSystem struct {
	path string
}

// NewLocalFileSystem returns the LocalFileSystem address with the given
// socket path.
func NewLocalFileSystem(path string) LocalFileSystem {
	return LocalFileSystem{path: path}
}

// Path returns the file system socket path.
func (l LocalFileSystem) Path() string { return l.path }

// Tag returns "localfilesystem".
func (LocalFileSystem) Tag() string { return "localfilesystem" }

// String returns the canonical wire representation.
func (l LocalFileSystem) String() string { return "localfilesystem:" + l.path }

// Compare orders two LocalFileSystem addresses by socket path.
func (l LocalFileSystem) Compare(o LocalFileSystem) int {
	return strings.Compare(l.path, o.path)
}

// ParseLocalFileSystem parses the “localfilesystem:” wire grammar.
func ParseLocalFileSystem(s string) (LocalFileSystem, error) {
	rest, ok := cutTag(s, "localfilesystem")
	if !ok {
		return LocalFileSystem{}, newParseError(s, "LocalFileSystem", nil)
	}
	return NewLocalFileSystem(rest), nil
}
