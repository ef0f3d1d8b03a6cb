// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package family

// Address is the closed union over the device-bridge address families: a
// value of exactly one of [Tcp], [LocalAbstract], [LocalReserved],
// [LocalFileSystem], [Dev], [Jdwp], [Vsock], or [AcceptFd]. The union is
// sealed; outside packages cannot add members. [DevRaw] intentionally isn't
// a member, see its type documentation.
//
// All member types are comparable structs, so Address values compare with
// “==” and serve as map keys as long as only members of the same family are
// mixed... and even across families, as differing dynamic types simply
// compare unequal.
type Address interface {
	Family
	// sealed; only the family types declared in this package are members.
	isAddress()
}

func (Tcp) isAddress()             {}
func (LocalAbstract) isAddress()   {}
func (LocalReserved) isAddress()   {}
func (LocalFileSystem) isAddress() {}
func (Dev) isAddress()             {}
func (Jdwp) isAddress()            {}
func (Vsock) isAddress()           {}
func (AcceptFd) isAddress()        {}

// addressParsers lists the member families' parse functions in declaration
// order. As the family tags are mutually exclusive literal prefixes, at
// most one of them can ever match a given input; trying all of them in
// order is a correctness simplification, not an ambiguity.
var addressParsers = []func(string) (Address, error){
	func(s string) (Address, error) { return ParseTcp(s) },
	func(s string) (Address, error) { return ParseLocalAbstract(s) },
	func(s string) (Address, error) { return ParseLocalReserved(s) },
	func(s string) (Address, error) { return ParseLocalFileSystem(s) },
	func(s string) (Address, error) { return ParseDev(s) },
	func(s string) (Address, error) { return ParseJdwp(s) },
	func(s string) (Address, error) { return ParseVsock(s) },
	func(s string) (Address, error) { return ParseAcceptFd(s) },
}

// ParseAddress parses any member family's wire grammar, returning the first
// successful trial parse. When no member matches, the returned ParseError
// names the union itself and carries no cause: the individual members'
// diagnostics hold no insight beyond “not this family either”.
func ParseAddress(s string) (Address, error) {
	for _, parse := range addressParsers {
		if addr, err := parse(s); err == nil {
			return addr, nil
		}
	}
	return nil, newParseError(s, "Address", nil)
}
