// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

/*
Package dig implements a device-bridge endpoint spec-to-address digger with
optional resolution of “host[:port]” shorthands. The knack here is that the
only slow part – hostname resolution – runs concurrently, yet under the
constraints of limited goroutines, while address family literals take a
pure and instant parsing fast path.

By default, shorthand hostnames are dug up through the platform resolver,
yielding the single preferred (IPv4-first) address per shorthand. When
pointed at a dedicated DNS server instead (see [WithDNSServer]), the digger
asks that server directly for both A and AAAA records and then reports
every address dug up, IPv4 ones first.

Digging is implemented in pure Go, for the dedicated-server case leveraging
the incredible Go module [miekg/dns].

[miekg/dns]: https://github.com/miekg/dns
*/
package dig
