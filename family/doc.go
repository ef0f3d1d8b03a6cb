// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

/*
Package family implements the typed representation of device-bridge socket
endpoint addresses: the “tcp:127.0.0.1:5555”, “localabstract:fooh”,
“vsock:1:5555”, et cetera strings an adb-style device bridge slings around on
its wire. Each address family is a small immutable value type in the manner
of [net/netip]: construct it from its fields or parse it from its wire
string, compare it, use it as a map key, and format it back into the exact
wire string – nothing else, and in particular no socket I/O.

# Families

[Tcp], [LocalAbstract], [LocalReserved], [LocalFileSystem], [Dev], [DevRaw],
[Jdwp], [Vsock], and [AcceptFd] each implement the [Family] contract for
exactly one wire grammar. The grammar always is the literal family tag,
a colon, and then the family-specific remainder.

[Address] is the closed union over the families: [ParseAddress] tries each
member family in declaration order and returns the first (and, tags being
mutually exclusive, only possible) match. [DevRaw] satisfies [Family] but
deliberately is not an [Address]: the device bridge accepts “dev-raw:”
endpoints only in places where the family is spelled out explicitly, so the
union doesn't resolve it. Don't “fix” this.

# Parsing Versus Resolving

Parsing is pure and fast; it only ever accepts address literals. Turning
hostnames into [Tcp] values is the resolver's business: [TcpFromHost] (and
its context-aware sibling [TcpFromHostContext]) first tries the literal fast
path and only then asks the platform resolver, preferring IPv4 addresses
when the resolver offers a choice. Resolution blocks; callers wanting
bounded waiting pass a suitable context.

# Errors

Every failure surfaces as a [ParseError] carrying the offending input, the
source and target type names, and – where a lower-level decoder or the
resolver supplied one – a wrapped cause, reachable via [errors.Unwrap] and
friends.
*/
package family
