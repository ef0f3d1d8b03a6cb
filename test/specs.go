// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package test

// GoodSpecs maps address family literal endpoint specs to their canonical
// wire addresses; the two happen to coincide for canonical input. Shared by
// the digging and qualification package tests.
var GoodSpecs = map[string]string{
	"tcp:127.0.0.1:5555":             "tcp:127.0.0.1:5555",
	"tcp:[::1]:5555":                 "tcp:[::1]:5555",
	"tcp:5555":                       "tcp:5555",
	"localabstract:chitchat":         "localabstract:chitchat",
	"localreserved:backdoor":         "localreserved:backdoor",
	"localfilesystem:/run/brdg.sock": "localfilesystem:/run/brdg.sock",
	"dev:/dev/bus/usb/001/002":       "dev:/dev/bus/usb/001/002",
	"jdwp:1234":                      "jdwp:1234",
	"vsock:3:5555":                   "vsock:3:5555",
	"acceptfd:4":                     "acceptfd:4",
}

// ShorthandSpecs maps “host[:port]” endpoint shorthands to their canonical
// wire addresses. Only IP address literals here, so no test ever depends on
// a working name service.
var ShorthandSpecs = map[string]string{
	"127.0.0.1:5555": "tcp:127.0.0.1:5555",
	"[::1]:5555":     "tcp:[::1]:5555",
	"192.0.2.1":      "tcp:192.0.2.1",
}

// BadSpecs enumerates endpoint specs that neither parse as an address
// family literal nor resolve as a shorthand, without ever leaving the
// machine while failing.
var BadSpecs = []string{
	"",
	"dev-raw:/dev/tty", // deliberately not an address union member.
	"tcp:bad:port:",
}
